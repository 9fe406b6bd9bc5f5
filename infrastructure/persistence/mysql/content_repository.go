package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/krishivishwa/storefront/domain/content"
	"github.com/krishivishwa/storefront/infrastructure/persistence/mysql/po"
)

// ContentRepository MySQL/GORM implementation of the content store.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository Create content repository.
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// BannersByPage Return the page's banners.
func (r *ContentRepository) BannersByPage(ctx context.Context, page string) ([]content.Banner, error) {
	var pos []po.BannerPO
	if err := r.db.WithContext(ctx).Where("page = ?", page).Find(&pos).Error; err != nil {
		return nil, err
	}
	banners := make([]content.Banner, len(pos))
	for i, b := range pos {
		banners[i] = b.ToDomain()
	}
	return banners, nil
}

// Timeline Return the company history milestones in display order.
func (r *ContentRepository) Timeline(ctx context.Context) ([]content.TimelineEntry, error) {
	var pos []po.TimelineEntryPO
	if err := r.db.WithContext(ctx).Order("position").Find(&pos).Error; err != nil {
		return nil, err
	}
	entries := make([]content.TimelineEntry, len(pos))
	for i, e := range pos {
		entries[i] = e.ToDomain()
	}
	return entries, nil
}

// Testimonials Return the customer quotes.
func (r *ContentRepository) Testimonials(ctx context.Context) ([]content.Testimonial, error) {
	var pos []po.TestimonialPO
	if err := r.db.WithContext(ctx).Find(&pos).Error; err != nil {
		return nil, err
	}
	testimonials := make([]content.Testimonial, len(pos))
	for i, t := range pos {
		testimonials[i] = t.ToDomain()
	}
	return testimonials, nil
}

// News Return featured stories, newest first.
func (r *ContentRepository) News(ctx context.Context) ([]content.NewsStory, error) {
	var pos []po.NewsStoryPO
	if err := r.db.WithContext(ctx).Order("upload_date desc").Find(&pos).Error; err != nil {
		return nil, err
	}
	stories := make([]content.NewsStory, len(pos))
	for i, s := range pos {
		stories[i] = s.ToDomain()
	}
	return stories, nil
}

// Videos Return the video feed.
func (r *ContentRepository) Videos(ctx context.Context) ([]content.Video, error) {
	var pos []po.VideoPO
	if err := r.db.WithContext(ctx).Find(&pos).Error; err != nil {
		return nil, err
	}
	videos := make([]content.Video, len(pos))
	for i, v := range pos {
		videos[i] = v.ToDomain()
	}
	return videos, nil
}

// Marquee Return active ticker items in display order.
func (r *ContentRepository) Marquee(ctx context.Context) ([]content.MarqueeItem, error) {
	var pos []po.MarqueeItemPO
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("position").Find(&pos).Error; err != nil {
		return nil, err
	}
	items := make([]content.MarqueeItem, len(pos))
	for i, m := range pos {
		items[i] = m.ToDomain()
	}
	return items, nil
}

// AdjustLikes Atomically move a story's like count and return the new
// value. A zero delta still verifies the story exists.
func (r *ContentRepository) AdjustLikes(ctx context.Context, storyID string, delta int) (int, error) {
	var likes int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if delta != 0 {
			result := tx.Model(&po.NewsStoryPO{}).
				Where("id = ?", storyID).
				Update("likes", gorm.Expr("likes + ?", delta))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return content.ErrStoryNotFound
			}
		}

		var story po.NewsStoryPO
		if err := tx.Select("likes").First(&story, "id = ?", storyID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return content.ErrStoryNotFound
			}
			return err
		}
		likes = story.Likes
		return nil
	})
	return likes, err
}
