package repository

import (
	"context"
	"time"

	"github.com/omayconaguiar/url-shortner/internal/model"
)

// LinkRepositoryInterface defines the interface for MySQL-backed storage
type LinkRepositoryInterface interface {
	CreateLink(ctx context.Context, link *model.ShortLink) error
	GetLinkByID(ctx context.Context, id string) (*model.ShortLink, error)
	GetLinkBySlug(ctx context.Context, slug string) (*model.ShortLink, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdateLink(ctx context.Context, link *model.ShortLink) error
	DeleteLink(ctx context.Context, id string) error
	ListLinks(ctx context.Context, ownerID *string) ([]model.ShortLink, error)
	CreateVisit(ctx context.Context, visit *model.Visit) error
	CountVisits(ctx context.Context, linkID string) (int64, error)
	LastVisitAt(ctx context.Context, linkID string) (*time.Time, error)
	Close() error
}

// CacheRepositoryInterface defines the interface for Redis caching
type CacheRepositoryInterface interface {
	SaveLink(ctx context.Context, link *model.ShortLink, ttl time.Duration) error
	GetLink(ctx context.Context, slug string) (*model.ShortLink, error)
	InvalidateLink(ctx context.Context, slugs ...string) error
	Close() error
}
