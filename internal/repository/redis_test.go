package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omayconaguiar/url-shortner/internal/config"
	"github.com/omayconaguiar/url-shortner/internal/model"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	repo := NewRedisRepository(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { repo.Close() })
	return repo, mr
}

func TestRedisRepository_SaveAndGetLink(t *testing.T) {
	repo, mr := newTestRedisRepo(t)
	ctx := context.Background()

	owner := "user-1"
	link := &model.ShortLink{
		ID:          "id-1",
		Slug:        "abc123",
		OriginalURL: "https://example.com/a",
		UserID:      &owner,
		IsActive:    true,
	}

	err := repo.SaveLink(ctx, link, LinkCacheTTL)
	require.NoError(t, err)
	assert.True(t, mr.Exists("link:abc123"))

	got, err := repo.GetLink(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, link.ID, got.ID)
	assert.Equal(t, link.OriginalURL, got.OriginalURL)
	require.NotNil(t, got.UserID)
	assert.Equal(t, "user-1", *got.UserID)
	assert.True(t, got.IsActive)
}

func TestRedisRepository_GetLink_Miss(t *testing.T) {
	repo, _ := newTestRedisRepo(t)

	got, err := repo.GetLink(context.Background(), "nosuch")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisRepository_SaveLink_TTL(t *testing.T) {
	repo, mr := newTestRedisRepo(t)
	ctx := context.Background()

	link := &model.ShortLink{ID: "id-1", Slug: "abc123", OriginalURL: "https://example.com", IsActive: true}
	require.NoError(t, repo.SaveLink(ctx, link, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := repo.GetLink(ctx, "abc123")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisRepository_InvalidateLink(t *testing.T) {
	repo, mr := newTestRedisRepo(t)
	ctx := context.Background()

	for _, slug := range []string{"abc123", "def456"} {
		link := &model.ShortLink{ID: "id-" + slug, Slug: slug, OriginalURL: "https://example.com", IsActive: true}
		require.NoError(t, repo.SaveLink(ctx, link, LinkCacheTTL))
	}

	err := repo.InvalidateLink(ctx, "abc123", "def456")
	require.NoError(t, err)
	assert.False(t, mr.Exists("link:abc123"))
	assert.False(t, mr.Exists("link:def456"))

	// Dropping nothing is a no-op, not an error.
	assert.NoError(t, repo.InvalidateLink(ctx))
}
