package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/krishivishwa/storefront/domain/content"
)

// CachedContent decorates a content repository with cached updates feeds.
// News, videos, and marquee reads come from snapshots refreshed on the
// site's original cadences; everything else passes through. Likes write
// through to the source and patch the snapshot so counts stay fresh
// between refreshes.
type CachedContent struct {
	source content.Repository

	mu      sync.RWMutex
	news    []content.NewsStory
	videos  []content.Video
	marquee []content.MarqueeItem

	newsFresh    bool
	videosFresh  bool
	marqueeFresh bool
}

// NewCachedContent Create the decorator. Snapshots fill lazily on first
// read or on the first refresher run, whichever comes first.
func NewCachedContent(source content.Repository) *CachedContent {
	return &CachedContent{source: source}
}

// Refreshers returns the three ticker resources at the given cadences.
func (c *CachedContent) Refreshers(marqueeEvery, newsEvery, videosEvery time.Duration) []*Refresher {
	return []*Refresher{
		NewRefresher("marquee", marqueeEvery, c.refreshMarquee),
		NewRefresher("news", newsEvery, c.refreshNews),
		NewRefresher("videos", videosEvery, c.refreshVideos),
	}
}

func (c *CachedContent) refreshNews(ctx context.Context) error {
	stories, err := c.source.News(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.news = stories
	c.newsFresh = true
	c.mu.Unlock()
	return nil
}

func (c *CachedContent) refreshVideos(ctx context.Context) error {
	videos, err := c.source.Videos(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.videos = videos
	c.videosFresh = true
	c.mu.Unlock()
	return nil
}

func (c *CachedContent) refreshMarquee(ctx context.Context) error {
	items, err := c.source.Marquee(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.marquee = items
	c.marqueeFresh = true
	c.mu.Unlock()
	return nil
}

// News Serve the snapshot, filling it on first read.
func (c *CachedContent) News(ctx context.Context) ([]content.NewsStory, error) {
	c.mu.RLock()
	fresh := c.newsFresh
	snapshot := c.news
	c.mu.RUnlock()

	if !fresh {
		if err := c.refreshNews(ctx); err != nil {
			return nil, err
		}
		c.mu.RLock()
		snapshot = c.news
		c.mu.RUnlock()
	}

	out := make([]content.NewsStory, len(snapshot))
	copy(out, snapshot)
	return out, nil
}

// Videos Serve the snapshot, filling it on first read.
func (c *CachedContent) Videos(ctx context.Context) ([]content.Video, error) {
	c.mu.RLock()
	fresh := c.videosFresh
	snapshot := c.videos
	c.mu.RUnlock()

	if !fresh {
		if err := c.refreshVideos(ctx); err != nil {
			return nil, err
		}
		c.mu.RLock()
		snapshot = c.videos
		c.mu.RUnlock()
	}

	out := make([]content.Video, len(snapshot))
	copy(out, snapshot)
	return out, nil
}

// Marquee Serve the snapshot, filling it on first read.
func (c *CachedContent) Marquee(ctx context.Context) ([]content.MarqueeItem, error) {
	c.mu.RLock()
	fresh := c.marqueeFresh
	snapshot := c.marquee
	c.mu.RUnlock()

	if !fresh {
		if err := c.refreshMarquee(ctx); err != nil {
			return nil, err
		}
		c.mu.RLock()
		snapshot = c.marquee
		c.mu.RUnlock()
	}

	out := make([]content.MarqueeItem, len(snapshot))
	copy(out, snapshot)
	return out, nil
}

// AdjustLikes writes through and patches the cached story.
func (c *CachedContent) AdjustLikes(ctx context.Context, storyID string, delta int) (int, error) {
	likes, err := c.source.AdjustLikes(ctx, storyID, delta)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	for i := range c.news {
		if c.news[i].ID == storyID {
			c.news[i].Likes = likes
			break
		}
	}
	c.mu.Unlock()
	return likes, nil
}

// BannersByPage Pass through to the source.
func (c *CachedContent) BannersByPage(ctx context.Context, page string) ([]content.Banner, error) {
	return c.source.BannersByPage(ctx, page)
}

// Timeline Pass through to the source.
func (c *CachedContent) Timeline(ctx context.Context) ([]content.TimelineEntry, error) {
	return c.source.Timeline(ctx)
}

// Testimonials Pass through to the source.
func (c *CachedContent) Testimonials(ctx context.Context) ([]content.Testimonial, error) {
	return c.source.Testimonials(ctx)
}
