package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/omayconaguiar/url-shortner/internal/model"
	"github.com/omayconaguiar/url-shortner/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrInvalidURL is returned when the target URL is not an absolute http(s) URL
	ErrInvalidURL = errors.New("invalid URL")
	// ErrSelfReference is returned when the target URL points back at this service
	ErrSelfReference = errors.New("cannot shorten an already shortened URL")
	// ErrInvalidSlug is returned when a requested slug is malformed
	ErrInvalidSlug = errors.New("slug must be 3-50 characters of letters, numbers, hyphens, and underscores")
	// ErrSlugTaken is returned when a requested slug is already in use
	ErrSlugTaken = errors.New("slug already taken")
	// ErrSlugExhausted is returned when slug allocation fails after the attempt cap
	ErrSlugExhausted = errors.New("unable to generate unique slug")
	// ErrLinkNotFound is returned when a link is absent or inactive
	ErrLinkNotFound = errors.New("short link not found")
	// ErrForbidden is returned on an ownership mismatch
	ErrForbidden = errors.New("you can only manage your own links")
)

// LinkService implements the link registry: slug allocation, lookup,
// mutation, deletion, and visit accounting.
type LinkService struct {
	links  LinkRepositoryInterface
	cache  CacheRepositoryInterface
	domain string
}

// NewLinkService creates a new LinkService
func NewLinkService(links LinkRepositoryInterface, cache CacheRepositoryInterface, domain string) *LinkService {
	return &LinkService{
		links:  links,
		cache:  cache,
		domain: domain,
	}
}

// Create registers a new short link. A requested slug that is taken
// signals a conflict; without one, a 6-character random slug is
// allocated with a bounded retry loop. A duplicate-key error at insert
// time is treated like a pre-check collision, so concurrent creates
// racing on the same slug leave exactly one winner.
func (s *LinkService) Create(ctx context.Context, req *model.CreateLinkRequest, ownerID *string) (*model.ShortLink, error) {
	if err := s.validateTarget(req.OriginalURL); err != nil {
		return nil, err
	}

	if req.CustomSlug != "" {
		if !ValidSlug(req.CustomSlug) {
			return nil, ErrInvalidSlug
		}
		taken, err := s.links.SlugExists(ctx, req.CustomSlug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return nil, ErrSlugTaken
		}

		link := s.newLink(req.OriginalURL, req.CustomSlug, ownerID)
		if err := s.links.CreateLink(ctx, link); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrSlugTaken
			}
			return nil, fmt.Errorf("failed to save link: %w", err)
		}
		return link.WithVisitCount(0), nil
	}

	for attempt := 0; attempt < MaxSlugAttempts; attempt++ {
		slug := GenerateSlug(SlugLength)

		taken, err := s.links.SlugExists(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			continue
		}

		link := s.newLink(req.OriginalURL, slug, ownerID)
		err = s.links.CreateLink(ctx, link)
		if err == nil {
			return link.WithVisitCount(0), nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a check-then-insert race; counts as a collision.
			continue
		}
		return nil, fmt.Errorf("failed to save link: %w", err)
	}

	return nil, ErrSlugExhausted
}

// FindAll lists links newest first with their visit counts. A nil
// ownerID returns the public listing of every link.
func (s *LinkService) FindAll(ctx context.Context, ownerID *string) ([]model.ShortLink, error) {
	links, err := s.links.ListLinks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	for i := range links {
		links[i].Count = &model.VisitTally{Visits: links[i].VisitCount}
	}
	return links, nil
}

// FindBySlug resolves an active link by slug. Absent and inactive links
// are indistinguishable to callers.
func (s *LinkService) FindBySlug(ctx context.Context, slug string) (*model.ShortLink, error) {
	if cached, err := s.cache.GetLink(ctx, slug); err == nil && cached != nil {
		return cached, nil
	}

	link, err := s.links.GetLinkBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to load link: %w", err)
	}
	if !link.IsActive {
		return nil, ErrLinkNotFound
	}

	s.cache.SaveLink(ctx, link, repository.LinkCacheTTL)

	return link, nil
}

// FindByID loads a link by id regardless of its active flag
func (s *LinkService) FindByID(ctx context.Context, id string) (*model.ShortLink, error) {
	link, err := s.links.GetLinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to load link: %w", err)
	}
	return link, nil
}

// Redirect resolves an active slug and records the visit. The visit
// insert is synchronous: when it fails the whole operation fails and no
// target is returned.
func (s *LinkService) Redirect(ctx context.Context, slug string, meta *model.VisitMeta) (*model.ShortLink, error) {
	link, err := s.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	visit := &model.Visit{
		LinkID:    link.ID,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Referer:   meta.Referer,
	}
	if err := s.links.CreateVisit(ctx, visit); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to record visit")
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}

	return link, nil
}

// Update applies the present fields of req to the link after the
// ownership check. A slug change re-checks uniqueness.
func (s *LinkService) Update(ctx context.Context, id string, req *model.UpdateLinkRequest, ownerID *string) (*model.ShortLink, error) {
	link, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !link.CanBeManagedBy(ownerID) {
		return nil, ErrForbidden
	}

	oldSlug := link.Slug
	if req.CustomSlug != nil && *req.CustomSlug != "" && *req.CustomSlug != link.Slug {
		if !ValidSlug(*req.CustomSlug) {
			return nil, ErrInvalidSlug
		}
		taken, err := s.links.SlugExists(ctx, *req.CustomSlug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return nil, ErrSlugTaken
		}
		link.Slug = *req.CustomSlug
	}
	if req.OriginalURL != nil {
		link.OriginalURL = *req.OriginalURL
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err := s.links.UpdateLink(ctx, link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	s.cache.InvalidateLink(ctx, oldSlug, link.Slug)

	count, err := s.links.CountVisits(ctx, link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}
	return link.WithVisitCount(count), nil
}

// Remove deletes the link and all of its visits after the ownership check
func (s *LinkService) Remove(ctx context.Context, id string, ownerID *string) error {
	link, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !link.CanBeManagedBy(ownerID) {
		return ErrForbidden
	}

	if err := s.links.DeleteLink(ctx, link.ID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	s.cache.InvalidateLink(ctx, link.Slug)

	return nil
}

// Stats returns visit statistics for a slug. Inactive links keep their
// stats visible. A supplied caller identity that differs from the
// link's owner is rejected.
func (s *LinkService) Stats(ctx context.Context, slug string, ownerID *string) (*model.LinkStats, error) {
	link, err := s.links.GetLinkBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to load link: %w", err)
	}
	if ownerID != nil && link.UserID != nil && *link.UserID != *ownerID {
		return nil, ErrForbidden
	}

	count, err := s.links.CountVisits(ctx, link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}
	last, err := s.links.LastVisitAt(ctx, link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load last visit: %w", err)
	}

	return &model.LinkStats{
		Slug:        link.Slug,
		OriginalURL: link.OriginalURL,
		TotalVisits: count,
		CreatedAt:   link.CreatedAt,
		LastVisit:   last,
	}, nil
}

// Dashboard aggregates an owner's links: totals plus the five most
// visited links, ties kept in retrieval order.
func (s *LinkService) Dashboard(ctx context.Context, ownerID string) (*model.DashboardStats, error) {
	links, err := s.links.ListLinks(ctx, &ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	var totalVisits int64
	for i := range links {
		totalVisits += links[i].VisitCount
	}

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].VisitCount > links[j].VisitCount
	})

	top := make([]model.TopURL, 0, 5)
	for i := 0; i < len(links) && i < 5; i++ {
		top = append(top, model.TopURL{
			Slug:        links[i].Slug,
			OriginalURL: links[i].OriginalURL,
			Visits:      links[i].VisitCount,
			CreatedAt:   links[i].CreatedAt,
		})
	}

	return &model.DashboardStats{
		TotalURLs:   int64(len(links)),
		TotalVisits: totalVisits,
		TopURLs:     top,
	}, nil
}

// newLink builds a fresh active link entity
func (s *LinkService) newLink(originalURL, slug string, ownerID *string) *model.ShortLink {
	return &model.ShortLink{
		Slug:        slug,
		OriginalURL: originalURL,
		UserID:      ownerID,
		IsActive:    true,
	}
}

// validateTarget rejects malformed targets and URLs pointing back at
// this service's own domain
func (s *LinkService) validateTarget(target string) error {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	if s.domain != "" && strings.Contains(target, s.domain) {
		return ErrSelfReference
	}
	return nil
}
