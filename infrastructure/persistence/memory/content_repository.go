package memory

import (
	"context"
	"sync"
	"time"

	"github.com/krishivishwa/storefront/domain/content"
)

// ContentRepository In-memory content store, seeded at construction.
type ContentRepository struct {
	mu           sync.RWMutex
	banners      []content.Banner
	timeline     []content.TimelineEntry
	testimonials []content.Testimonial
	news         []content.NewsStory
	videos       []content.Video
	marquee      []content.MarqueeItem
}

// NewContentRepository Create a content repository with the development
// seed.
func NewContentRepository() *ContentRepository {
	return &ContentRepository{
		banners:      seedBanners(),
		timeline:     seedTimeline(),
		testimonials: seedTestimonials(),
		news:         seedNews(),
		videos:       seedVideos(),
		marquee:      seedMarquee(),
	}
}

// BannersByPage Return the page's banners.
func (r *ContentRepository) BannersByPage(ctx context.Context, page string) ([]content.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []content.Banner
	for _, b := range r.banners {
		if b.Page == page {
			out = append(out, b)
		}
	}
	return out, nil
}

// Timeline Return the company history milestones.
func (r *ContentRepository) Timeline(ctx context.Context) ([]content.TimelineEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]content.TimelineEntry, len(r.timeline))
	copy(out, r.timeline)
	return out, nil
}

// Testimonials Return the customer quotes.
func (r *ContentRepository) Testimonials(ctx context.Context) ([]content.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]content.Testimonial, len(r.testimonials))
	copy(out, r.testimonials)
	return out, nil
}

// News Return the featured stories.
func (r *ContentRepository) News(ctx context.Context) ([]content.NewsStory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]content.NewsStory, len(r.news))
	copy(out, r.news)
	return out, nil
}

// Videos Return the video feed.
func (r *ContentRepository) Videos(ctx context.Context) ([]content.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]content.Video, len(r.videos))
	copy(out, r.videos)
	return out, nil
}

// Marquee Return active ticker items.
func (r *ContentRepository) Marquee(ctx context.Context) ([]content.MarqueeItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []content.MarqueeItem
	for _, m := range r.marquee {
		if m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

// AdjustLikes Move a story's like count and return the new value.
func (r *ContentRepository) AdjustLikes(ctx context.Context, storyID string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.news {
		if r.news[i].ID == storyID {
			r.news[i].Likes += delta
			if r.news[i].Likes < 0 {
				r.news[i].Likes = 0
			}
			return r.news[i].Likes, nil
		}
	}
	return 0, content.ErrStoryNotFound
}

func seedBanners() []content.Banner {
	return []content.Banner{
		{
			ID: "banner-home-1", Page: "Home", Active: true,
			Title:       "Science for Every Field",
			Description: "Biofertilizers and crop protection developed in our own labs.",
			Image:       "/uploads/banners/home-hero.jpg",
			Style: content.BannerStyle{
				UseGradient:    true,
				GradientColors: [2]string{"#14532d", "#65a30d"},
				TitleColors: []content.WordColor{
					{Text: "Science", Color: "#facc15"},
					{Text: "for"},
					{Text: "Every"},
					{Text: "Field", Color: "#facc15"},
				},
			},
		},
		{
			ID: "banner-gallery-1", Page: "Gallery", Active: true,
			Title: "Our Work in the Field",
			Image: "/uploads/banners/gallery-hero.jpg",
			Style: content.BannerStyle{Alignment: content.AlignLeft},
		},
		{
			ID: "banner-contact-1", Page: "Contact", Active: true,
			Title:       "Let's Connect and Grow Together",
			Description: "Questions about a product or your soil? Write to us.",
			Image:       "/uploads/banners/contact-hero.jpg",
		},
	}
}

func seedTimeline() []content.TimelineEntry {
	return []content.TimelineEntry{
		{Year: "2014", Title: "Founded", Description: "Started as a two-person soil testing lab in Kolhapur.", Achievement: "First lab", Icon: "flask"},
		{Year: "2017", Title: "First Product Line", Description: "Launched our biofertilizer range after three seasons of field trials.", Achievement: "4 products", Metric: "1,200 farmers", Icon: "leaf"},
		{Year: "2020", Title: "State-wide Network", Description: "Dealer network covering every district of Maharashtra.", Achievement: "140 dealers", Metric: "38,000 farmers", Highlight: "ISO 9001 certified", Icon: "map"},
		{Year: "2023", Title: "Research Wing", Description: "Opened a dedicated R&D facility for microbial formulations.", Achievement: "12 scientists", Icon: "microscope"},
	}
}

func seedTestimonials() []content.Testimonial {
	return []content.Testimonial{
		{ID: "t1", Name: "Ramesh Patil", Quote: "Their soil consultation changed how I farm. Yields are up a third in two seasons.", Role: "Sugarcane farmer", Location: "Kolhapur"},
		{ID: "t2", Name: "Sunita Jadhav", Quote: "Neem Shield keeps my vegetable plot pest-free without harming the bees.", Role: "Market gardener", Location: "Satara"},
		{ID: "t3", Name: "Vilas Deshmukh", Quote: "Honest advice, quick delivery, and products that do what the label says.", Role: "Grape grower", Location: "Nashik"},
	}
}

func seedNews() []content.NewsStory {
	return []content.NewsStory{
		{
			ID: "n1", Title: "Monsoon Soil Health Drive", Category: "Community", Icon: "sprout",
			Excerpt:    "Free soil testing camps across five districts before the sowing season.",
			Image:      "/uploads/news/soil-drive.jpg",
			Features:   []string{"Free pH and NPK testing", "On-the-spot recommendations"},
			Stats:      []content.StoryStat{{Label: "Camps", Value: "32"}, {Label: "Samples", Value: "4,800"}},
			Likes:      214,
			UploadDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "n2", Title: "New Trichoderma Strain Registered", Category: "Research", Icon: "microscope",
			Excerpt:    "Our in-house strain shows stronger wilt suppression in trial plots.",
			Image:      "/uploads/news/tricho-strain.jpg",
			Stats:      []content.StoryStat{{Label: "Trial plots", Value: "60"}},
			Likes:      158,
			UploadDate: time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedVideos() []content.Video {
	return []content.Video{
		{ID: "v1", Title: "Applying Biofertilizers the Right Way", Category: "Tutorial", YouTubeID: "dQ4w9WgXcQ1", Thumbnail: "/uploads/videos/biofert-howto.jpg", Duration: "6:42"},
		{ID: "v2", Title: "Inside Our Research Lab", Category: "Company", YouTubeID: "aB3cD4eF5g6", Thumbnail: "/uploads/videos/lab-tour.jpg", Duration: "4:15"},
	}
}

func seedMarquee() []content.MarqueeItem {
	return []content.MarqueeItem{
		{ID: "m1", Text: "Monsoon soil testing camps now open for registration", Active: true},
		{ID: "m2", Text: "Free shipping on orders above Rs. 500", Active: true},
		{ID: "m3", Text: "Old promo line kept for reference", Active: false},
	}
}
