/*
Package content Application layer for editorial content: banners,
timeline, testimonials, the updates feed, story likes, and newsletter
signups.
*/
package content

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/krishivishwa/storefront/domain/content"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
	"github.com/krishivishwa/storefront/pkg/logger"
	"github.com/krishivishwa/storefront/pkg/validate"
)

// LikeStore Per-client liked-story sets, so likes stay idempotent: liking
// a story twice from the same client counts once.
type LikeStore interface {
	// Like marks the story liked for the client, reporting whether the
	// state changed.
	Like(clientID, storyID string) bool
	// Unlike removes the mark, reporting whether the state changed.
	Unlike(clientID, storyID string) bool
	// Liked returns the client's liked story ids.
	Liked(clientID string) []string
}

// Service Content read operations plus likes and newsletter signups.
type Service struct {
	repo  content.Repository
	subs  content.SubscriberRepository
	likes LikeStore
}

// NewService Create content application service.
func NewService(repo content.Repository, subs content.SubscriberRepository, likes LikeStore) *Service {
	return &Service{repo: repo, subs: subs, likes: likes}
}

// BannersByPage returns the page's banners with every style option
// normalized to its default.
func (s *Service) BannersByPage(ctx context.Context, page string) ([]BannerResponse, error) {
	banners, err := s.repo.BannersByPage(ctx, page)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load banners")
	}
	return toBannerResponses(banners), nil
}

// Timeline returns the company history milestones.
func (s *Service) Timeline(ctx context.Context) ([]TimelineResponse, error) {
	entries, err := s.repo.Timeline(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load timeline")
	}
	return toTimelineResponses(entries), nil
}

// Testimonials returns the customer quotes.
func (s *Service) Testimonials(ctx context.Context) ([]TestimonialResponse, error) {
	testimonials, err := s.repo.Testimonials(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load testimonials")
	}
	return toTestimonialResponses(testimonials), nil
}

// News returns the featured stories, flagging the ones the client already
// liked.
func (s *Service) News(ctx context.Context, clientID string) ([]NewsResponse, error) {
	stories, err := s.repo.News(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load news")
	}

	liked := make(map[string]bool)
	for _, id := range s.likes.Liked(clientID) {
		liked[id] = true
	}
	return toNewsResponses(stories, liked), nil
}

// Videos returns the updates video feed.
func (s *Service) Videos(ctx context.Context) ([]VideoResponse, error) {
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load videos")
	}
	return toVideoResponses(videos), nil
}

// Marquee returns the active breaking-news ticker items.
func (s *Service) Marquee(ctx context.Context) ([]MarqueeResponse, error) {
	items, err := s.repo.Marquee(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load marquee")
	}
	return toMarqueeResponses(items), nil
}

// LikeStory toggles a story like for the client. Repeating the same action
// is a no-op and returns the unchanged count.
func (s *Service) LikeStory(ctx context.Context, clientID, storyID string, req LikeRequest) (*LikeResponse, error) {
	liking := req.Action != "unlike"

	var changed bool
	if liking {
		changed = s.likes.Like(clientID, storyID)
	} else {
		changed = s.likes.Unlike(clientID, storyID)
	}

	delta := 0
	if changed {
		delta = 1
		if !liking {
			delta = -1
		}
	}

	count, err := s.repo.AdjustLikes(ctx, storyID, delta)
	if err != nil {
		// Roll the client's set back so a retry behaves the same way.
		if changed {
			if liking {
				s.likes.Unlike(clientID, storyID)
			} else {
				s.likes.Like(clientID, storyID)
			}
		}
		return nil, apperrors.FromDomainError(err)
	}

	logger.Debug("story like toggled",
		zap.String("story_id", storyID),
		zap.Bool("liked", liking),
		zap.Int("likes", count))

	return &LikeResponse{Likes: count, Liked: liking}, nil
}

// Subscribe adds an email to the newsletter list. Duplicates are a
// conflict, and the email must be valid.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (*SubscribeResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if msg := validate.Email(email); msg != "" {
		return nil, apperrors.Validation(msg)
	}

	if err := s.subs.Add(ctx, content.Subscriber{Email: email, SubscribedAt: time.Now()}); err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("newsletter subscription", zap.String("email", email))
	return &SubscribeResponse{Email: email, Subscribed: true}, nil
}
