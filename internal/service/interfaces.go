package service

import (
	"context"
	"time"

	"github.com/omayconaguiar/url-shortner/internal/model"
)

// LinkRepositoryInterface defines the interface for MySQL operations (for testing)
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
}

// CacheRepositoryInterface defines the interface for Redis operations (for testing)
type CacheRepositoryInterface interface {
	SaveLink(ctx context.Context, link *model.ShortLink, ttl time.Duration) error
	GetLink(ctx context.Context, slug string) (*model.ShortLink, error)
	InvalidateLink(ctx context.Context, slugs ...string) error
}

// LinkServiceInterface defines the interface for link registry operations
type LinkServiceInterface interface {
	Create(ctx context.Context, req *model.CreateLinkRequest, ownerID *string) (*model.ShortLink, error)
	FindAll(ctx context.Context, ownerID *string) ([]model.ShortLink, error)
	Redirect(ctx context.Context, slug string, meta *model.VisitMeta) (*model.ShortLink, error)
	Update(ctx context.Context, id string, req *model.UpdateLinkRequest, ownerID *string) (*model.ShortLink, error)
	Remove(ctx context.Context, id string, ownerID *string) error
	Stats(ctx context.Context, slug string, ownerID *string) (*model.LinkStats, error)
	Dashboard(ctx context.Context, ownerID string) (*model.DashboardStats, error)
}
