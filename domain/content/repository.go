package content

import "context"

// Repository Read side of the content store. Writes happen in the back
// office, which is out of scope here, so the storefront only lists,
// likes, and subscribes.
type Repository interface {
	BannersByPage(ctx context.Context, page string) ([]Banner, error)
	Timeline(ctx context.Context) ([]TimelineEntry, error)
	Testimonials(ctx context.Context) ([]Testimonial, error)

	News(ctx context.Context) ([]NewsStory, error)
	Videos(ctx context.Context) ([]Video, error)
	// Marquee returns active items only.
	Marquee(ctx context.Context) ([]MarqueeItem, error)

	// AdjustLikes moves a story's like count by delta and returns the new
	// count, or ErrStoryNotFound.
	AdjustLikes(ctx context.Context, storyID string, delta int) (int, error)
}

// SubscriberRepository Newsletter signups.
type SubscriberRepository interface {
	// Add stores a signup, or returns ErrAlreadySubscribed.
	Add(ctx context.Context, s Subscriber) error
}
