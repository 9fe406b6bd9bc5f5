package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishivishwa/storefront/infrastructure/persistence/memory"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
)

func testService() *Service {
	return NewService(memory.NewContentRepository(), memory.NewSubscriberRepository(), memory.NewLikeStore())
}

func TestBannersByPageNormalizesStyle(t *testing.T) {
	s := testService()

	banners, err := s.BannersByPage(context.Background(), "Home")
	require.NoError(t, err)
	require.NotEmpty(t, banners)

	for _, b := range banners {
		assert.NotEmpty(t, b.Style.Alignment)
		assert.NotEmpty(t, b.Style.Title.FontSize)
	}
}

func TestBannersByPageUnknownPageIsEmpty(t *testing.T) {
	s := testService()

	banners, err := s.BannersByPage(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, banners)
}

func TestMarqueeOnlyActiveItems(t *testing.T) {
	s := testService()

	items, err := s.Marquee(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEqual(t, "m3", item.ID, "inactive item must not be served")
	}
}

func TestLikeStoryIsIdempotentPerClient(t *testing.T) {
	s := testService()
	ctx := context.Background()

	first, err := s.LikeStory(ctx, "client-a", "n1", LikeRequest{})
	require.NoError(t, err)
	assert.True(t, first.Liked)

	// Same client liking again must not bump the count.
	second, err := s.LikeStory(ctx, "client-a", "n1", LikeRequest{})
	require.NoError(t, err)
	assert.Equal(t, first.Likes, second.Likes)

	// A different client does.
	third, err := s.LikeStory(ctx, "client-b", "n1", LikeRequest{})
	require.NoError(t, err)
	assert.Equal(t, first.Likes+1, third.Likes)
}

func TestUnlikeStory(t *testing.T) {
	s := testService()
	ctx := context.Background()

	liked, err := s.LikeStory(ctx, "client-a", "n1", LikeRequest{})
	require.NoError(t, err)

	unliked, err := s.LikeStory(ctx, "client-a", "n1", LikeRequest{Action: "unlike"})
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, liked.Likes-1, unliked.Likes)

	// Unliking a story that was never liked leaves the count alone.
	again, err := s.LikeStory(ctx, "client-a", "n1", LikeRequest{Action: "unlike"})
	require.NoError(t, err)
	assert.Equal(t, unliked.Likes, again.Likes)
}

func TestLikeStoryUnknownStory(t *testing.T) {
	s := testService()

	_, err := s.LikeStory(context.Background(), "client-a", "missing", LikeRequest{})
	assert.True(t, apperrors.Is(err, apperrors.CodeStoryNotFound))
}

func TestNewsFlagsClientLikes(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.LikeStory(ctx, "client-a", "n1", LikeRequest{})
	require.NoError(t, err)

	stories, err := s.News(ctx, "client-a")
	require.NoError(t, err)

	byID := make(map[string]NewsResponse)
	for _, story := range stories {
		byID[story.ID] = story
	}
	assert.True(t, byID["n1"].Liked)
	assert.False(t, byID["n2"].Liked)

	// Another client sees their own flags.
	stories, err = s.News(ctx, "client-b")
	require.NoError(t, err)
	for _, story := range stories {
		assert.False(t, story.Liked)
	}
}

func TestSubscribe(t *testing.T) {
	s := testService()
	ctx := context.Background()

	resp, err := s.Subscribe(ctx, SubscribeRequest{Email: "  Farmer@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "farmer@example.com", resp.Email)
	assert.True(t, resp.Subscribed)

	// Same address again, any casing, is a conflict.
	_, err = s.Subscribe(ctx, SubscribeRequest{Email: "FARMER@example.com"})
	assert.True(t, apperrors.Is(err, apperrors.CodeAlreadySubscribed))
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	s := testService()

	_, err := s.Subscribe(context.Background(), SubscribeRequest{Email: "not-an-email"})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
}
