package content

import "time"

// WordColorResponse One colored word of a banner title.
type WordColorResponse struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// TextStyleResponse Typography of one banner text block.
type TextStyleResponse struct {
	FontSize   string `json:"font_size"`
	FontWeight string `json:"font_weight"`
	TextShadow string `json:"text_shadow"`
}

// BannerStyleResponse Fully-defaulted banner styling.
type BannerStyleResponse struct {
	Alignment         string              `json:"alignment"`
	UseGradient       bool                `json:"use_gradient"`
	GradientShape     string              `json:"gradient_shape"`
	GradientDirection string              `json:"gradient_direction"`
	GradientColors    []string            `json:"gradient_colors"`
	TitleColors       []WordColorResponse `json:"title_colors,omitempty"`
	Title             TextStyleResponse   `json:"title"`
	Description       TextStyleResponse   `json:"description"`
	DescriptionColor  string              `json:"description_color"`
}

// BannerResponse One page banner.
type BannerResponse struct {
	ID          string              `json:"id"`
	Page        string              `json:"page"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Image       string              `json:"image,omitempty"`
	Style       BannerStyleResponse `json:"style"`
}

// TimelineResponse One company-history milestone.
type TimelineResponse struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Achievement string `json:"achievement,omitempty"`
	Metric      string `json:"metric,omitempty"`
	Highlight   string `json:"highlight,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
}

// TestimonialResponse One customer quote.
type TestimonialResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quote    string `json:"quote"`
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`
}

// StoryStatResponse A headline number on a story.
type StoryStatResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// NewsResponse One featured story, with the client's like state.
type NewsResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Excerpt    string              `json:"excerpt"`
	Category   string              `json:"category"`
	Icon       string              `json:"icon,omitempty"`
	Image      string              `json:"image"`
	Features   []string            `json:"features,omitempty"`
	Stats      []StoryStatResponse `json:"stats,omitempty"`
	Likes      int                 `json:"likes"`
	Liked      bool                `json:"liked"`
	UploadDate time.Time           `json:"upload_date"`
}

// VideoResponse One updates-feed video.
type VideoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	YouTubeID   string `json:"youtube_id"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// MarqueeResponse One breaking-news ticker line.
type MarqueeResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// LikeRequest Story like toggle. Action is "like" or "unlike".
type LikeRequest struct {
	Action string `json:"action"`
}

// LikeResponse Refreshed like count.
type LikeResponse struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// SubscribeRequest Newsletter signup payload.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// SubscribeResponse Newsletter signup acknowledgement.
type SubscribeResponse struct {
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
}
