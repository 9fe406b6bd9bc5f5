/*
Package content Editorial content served to the site: page banners,
company timeline, testimonials, and the updates feed (news stories,
videos, breaking-news marquee, newsletter).
*/
package content

import "time"

// Banner A page hero banner managed by the back office. Style is fully
// typed; every option has an explicit default filled by Normalize.
type Banner struct {
	ID          string
	Page        string
	Title       string
	Description string
	Image       string
	Style       BannerStyle
	Active      bool
}

// WordColor One word of a multi-colored title.
type WordColor struct {
	Text  string
	Color string
}

// TextStyle Typography for one text block of a banner.
type TextStyle struct {
	FontSize   string
	FontWeight string
	TextShadow string
}

// BannerStyle Every recognized styling option of a banner. Zero values
// mean "use the default".
type BannerStyle struct {
	Alignment         string // left, center, right
	UseGradient       bool
	GradientShape     string // linear or radial
	GradientDirection string
	GradientColors    [2]string
	TitleColors       []WordColor
	Title             TextStyle
	Description       TextStyle
	DescriptionColor  string
}

const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"

	GradientLinear = "linear"
	GradientRadial = "radial"
)

// DefaultBannerStyle The rendering defaults applied when the back office
// leaves an option unset.
func DefaultBannerStyle() BannerStyle {
	return BannerStyle{
		Alignment:         AlignCenter,
		GradientShape:     GradientLinear,
		GradientDirection: "90deg",
		GradientColors:    [2]string{"#ffffff", "#f0f0f0"},
		Title: TextStyle{
			FontSize:   "3.5rem",
			FontWeight: "600",
			TextShadow: "2px 2px 4px rgba(0,0,0,0.5)",
		},
		Description: TextStyle{
			FontSize:   "1.2rem",
			FontWeight: "300",
			TextShadow: "1px 1px 2px rgba(0,0,0,0.3)",
		},
		DescriptionColor: "#ffffff",
	}
}

// Normalize fills every unset style option with its default. A gradient
// title drops the text shadow.
func (s BannerStyle) Normalize() BannerStyle {
	d := DefaultBannerStyle()
	if s.Alignment == "" {
		s.Alignment = d.Alignment
	}
	if s.GradientShape == "" {
		s.GradientShape = d.GradientShape
	}
	if s.GradientDirection == "" {
		s.GradientDirection = d.GradientDirection
	}
	if s.GradientColors[0] == "" {
		s.GradientColors[0] = d.GradientColors[0]
	}
	if s.GradientColors[1] == "" {
		s.GradientColors[1] = d.GradientColors[1]
	}
	if s.Title.FontSize == "" {
		s.Title.FontSize = d.Title.FontSize
	}
	if s.Title.FontWeight == "" {
		s.Title.FontWeight = d.Title.FontWeight
	}
	if s.Title.TextShadow == "" {
		s.Title.TextShadow = d.Title.TextShadow
	}
	if s.UseGradient {
		s.Title.TextShadow = "none"
	}
	if s.Description.FontSize == "" {
		s.Description.FontSize = d.Description.FontSize
	}
	if s.Description.FontWeight == "" {
		s.Description.FontWeight = d.Description.FontWeight
	}
	if s.Description.TextShadow == "" {
		s.Description.TextShadow = d.Description.TextShadow
	}
	if s.DescriptionColor == "" {
		s.DescriptionColor = d.DescriptionColor
	}
	for i := range s.TitleColors {
		if s.TitleColors[i].Color == "" {
			s.TitleColors[i].Color = "#ffffff"
		}
	}
	return s
}

// TimelineEntry One milestone of the company history carousel.
type TimelineEntry struct {
	Year        string
	Title       string
	Description string
	Achievement string
	Metric      string
	Highlight   string
	Icon        string
	Image       string
}

// Testimonial A customer quote shown on the about page.
type Testimonial struct {
	ID       string
	Name     string
	Quote    string
	Role     string
	Location string
}

// StoryStat A headline number attached to a news story.
type StoryStat struct {
	Label string
	Value string
}

// NewsStory A featured story in the updates carousel.
type NewsStory struct {
	ID         string
	Title      string
	Excerpt    string
	Category   string
	Icon       string
	Image      string
	Features   []string
	Stats      []StoryStat
	Likes      int
	UploadDate time.Time
}

// Video A YouTube video in the updates feed.
type Video struct {
	ID          string
	Title       string
	Description string
	Category    string
	YouTubeID   string
	Thumbnail   string
	Duration    string
}

// MarqueeItem One line of the breaking-news ticker. Inactive items are
// kept by the back office but never served.
type MarqueeItem struct {
	ID     string
	Text   string
	Active bool
}

// Subscriber A newsletter signup.
type Subscriber struct {
	Email        string
	SubscribedAt time.Time
}
