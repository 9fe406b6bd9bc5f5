package po

import (
	"encoding/json"
	"time"

	"github.com/krishivishwa/storefront/domain/content"
)

// BannerPO Banner persistence object. The typed style struct is stored as
// a JSON column; Normalize runs on the way out, so partial documents
// written by older back-office versions stay valid.
type BannerPO struct {
	ID          string `gorm:"primaryKey;size:64"`
	Page        string `gorm:"size:64;index;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:512"`
	StyleJSON   string `gorm:"type:text"`
	Active      bool   `gorm:"default:true"`
}

func (BannerPO) TableName() string { return "banners" }

// FromBannerDomain Convert domain model to persistence object.
func FromBannerDomain(b content.Banner) BannerPO {
	styleJSON, _ := json.Marshal(b.Style)
	return BannerPO{
		ID:          b.ID,
		Page:        b.Page,
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		StyleJSON:   string(styleJSON),
		Active:      b.Active,
	}
}

// ToDomain Convert persistence object to domain model.
func (po BannerPO) ToDomain() content.Banner {
	var style content.BannerStyle
	if po.StyleJSON != "" {
		_ = json.Unmarshal([]byte(po.StyleJSON), &style)
	}
	return content.Banner{
		ID:          po.ID,
		Page:        po.Page,
		Title:       po.Title,
		Description: po.Description,
		Image:       po.Image,
		Style:       style,
		Active:      po.Active,
	}
}

// TimelineEntryPO Timeline milestone persistence object.
type TimelineEntryPO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Year        string `gorm:"size:10;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Achievement string `gorm:"size:255"`
	Metric      string `gorm:"size:100"`
	Highlight   string `gorm:"size:255"`
	Icon        string `gorm:"size:64"`
	Image       string `gorm:"size:512"`
	Position    int    `gorm:"index"`
}

func (TimelineEntryPO) TableName() string { return "timeline_entries" }

// ToDomain Convert persistence object to domain model.
func (po TimelineEntryPO) ToDomain() content.TimelineEntry {
	return content.TimelineEntry{
		Year:        po.Year,
		Title:       po.Title,
		Description: po.Description,
		Achievement: po.Achievement,
		Metric:      po.Metric,
		Highlight:   po.Highlight,
		Icon:        po.Icon,
		Image:       po.Image,
	}
}

// TestimonialPO Testimonial persistence object.
type TestimonialPO struct {
	ID       string `gorm:"primaryKey;size:64"`
	Name     string `gorm:"size:100;not null"`
	Quote    string `gorm:"type:text;not null"`
	Role     string `gorm:"size:100"`
	Location string `gorm:"size:100"`
}

func (TestimonialPO) TableName() string { return "testimonials" }

// ToDomain Convert persistence object to domain model.
func (po TestimonialPO) ToDomain() content.Testimonial {
	return content.Testimonial{
		ID:       po.ID,
		Name:     po.Name,
		Quote:    po.Quote,
		Role:     po.Role,
		Location: po.Location,
	}
}

// NewsStoryPO News story persistence object. Features and stats are JSON
// columns.
type NewsStoryPO struct {
	ID           string    `gorm:"primaryKey;size:64"`
	Title        string    `gorm:"size:255;not null"`
	Excerpt      string    `gorm:"type:text"`
	Category     string    `gorm:"size:64"`
	Icon         string    `gorm:"size:64"`
	Image        string    `gorm:"size:512"`
	FeaturesJSON string    `gorm:"type:text"`
	StatsJSON    string    `gorm:"type:text"`
	Likes        int       `gorm:"default:0"`
	UploadDate   time.Time `gorm:"index"`
}

func (NewsStoryPO) TableName() string { return "news_stories" }

// ToDomain Convert persistence object to domain model.
func (po NewsStoryPO) ToDomain() content.NewsStory {
	var features []string
	if po.FeaturesJSON != "" {
		_ = json.Unmarshal([]byte(po.FeaturesJSON), &features)
	}
	var stats []content.StoryStat
	if po.StatsJSON != "" {
		_ = json.Unmarshal([]byte(po.StatsJSON), &stats)
	}
	return content.NewsStory{
		ID:         po.ID,
		Title:      po.Title,
		Excerpt:    po.Excerpt,
		Category:   po.Category,
		Icon:       po.Icon,
		Image:      po.Image,
		Features:   features,
		Stats:      stats,
		Likes:      po.Likes,
		UploadDate: po.UploadDate,
	}
}

// VideoPO Updates video persistence object.
type VideoPO struct {
	ID          string `gorm:"primaryKey;size:64"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:64"`
	YouTubeID   string `gorm:"size:32;not null"`
	Thumbnail   string `gorm:"size:512"`
	Duration    string `gorm:"size:16"`
}

func (VideoPO) TableName() string { return "videos" }

// ToDomain Convert persistence object to domain model.
func (po VideoPO) ToDomain() content.Video {
	return content.Video{
		ID:          po.ID,
		Title:       po.Title,
		Description: po.Description,
		Category:    po.Category,
		YouTubeID:   po.YouTubeID,
		Thumbnail:   po.Thumbnail,
		Duration:    po.Duration,
	}
}

// MarqueeItemPO Breaking-news ticker persistence object.
type MarqueeItemPO struct {
	ID       string `gorm:"primaryKey;size:64"`
	Text     string `gorm:"size:512;not null"`
	Active   bool   `gorm:"default:true;index"`
	Position int    `gorm:"index"`
}

func (MarqueeItemPO) TableName() string { return "marquee_items" }

// ToDomain Convert persistence object to domain model.
func (po MarqueeItemPO) ToDomain() content.MarqueeItem {
	return content.MarqueeItem{ID: po.ID, Text: po.Text, Active: po.Active}
}
