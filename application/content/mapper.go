package content

import "github.com/krishivishwa/storefront/domain/content"

func toBannerResponses(banners []content.Banner) []BannerResponse {
	out := make([]BannerResponse, 0, len(banners))
	for _, b := range banners {
		if !b.Active {
			continue
		}
		style := b.Style.Normalize()
		words := make([]WordColorResponse, len(style.TitleColors))
		for i, w := range style.TitleColors {
			words[i] = WordColorResponse{Text: w.Text, Color: w.Color}
		}
		out = append(out, BannerResponse{
			ID:          b.ID,
			Page:        b.Page,
			Title:       b.Title,
			Description: b.Description,
			Image:       b.Image,
			Style: BannerStyleResponse{
				Alignment:         style.Alignment,
				UseGradient:       style.UseGradient,
				GradientShape:     style.GradientShape,
				GradientDirection: style.GradientDirection,
				GradientColors:    style.GradientColors[:],
				TitleColors:       words,
				Title: TextStyleResponse{
					FontSize:   style.Title.FontSize,
					FontWeight: style.Title.FontWeight,
					TextShadow: style.Title.TextShadow,
				},
				Description: TextStyleResponse{
					FontSize:   style.Description.FontSize,
					FontWeight: style.Description.FontWeight,
					TextShadow: style.Description.TextShadow,
				},
				DescriptionColor: style.DescriptionColor,
			},
		})
	}
	return out
}

func toTimelineResponses(entries []content.TimelineEntry) []TimelineResponse {
	out := make([]TimelineResponse, len(entries))
	for i, e := range entries {
		out[i] = TimelineResponse{
			Year:        e.Year,
			Title:       e.Title,
			Description: e.Description,
			Achievement: e.Achievement,
			Metric:      e.Metric,
			Highlight:   e.Highlight,
			Icon:        e.Icon,
			Image:       e.Image,
		}
	}
	return out
}

func toTestimonialResponses(testimonials []content.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		out[i] = TestimonialResponse{
			ID:       t.ID,
			Name:     t.Name,
			Quote:    t.Quote,
			Role:     t.Role,
			Location: t.Location,
		}
	}
	return out
}

func toNewsResponses(stories []content.NewsStory, liked map[string]bool) []NewsResponse {
	out := make([]NewsResponse, len(stories))
	for i, s := range stories {
		stats := make([]StoryStatResponse, len(s.Stats))
		for j, st := range s.Stats {
			stats[j] = StoryStatResponse{Label: st.Label, Value: st.Value}
		}
		out[i] = NewsResponse{
			ID:         s.ID,
			Title:      s.Title,
			Excerpt:    s.Excerpt,
			Category:   s.Category,
			Icon:       s.Icon,
			Image:      s.Image,
			Features:   s.Features,
			Stats:      stats,
			Likes:      s.Likes,
			Liked:      liked[s.ID],
			UploadDate: s.UploadDate,
		}
	}
	return out
}

func toVideoResponses(videos []content.Video) []VideoResponse {
	out := make([]VideoResponse, len(videos))
	for i, v := range videos {
		out[i] = VideoResponse{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Category:    v.Category,
			YouTubeID:   v.YouTubeID,
			Thumbnail:   v.Thumbnail,
			Duration:    v.Duration,
		}
	}
	return out
}

func toMarqueeResponses(items []content.MarqueeItem) []MarqueeResponse {
	out := make([]MarqueeResponse, 0, len(items))
	for _, m := range items {
		if !m.Active {
			continue
		}
		out = append(out, MarqueeResponse{ID: m.ID, Text: m.Text})
	}
	return out
}
