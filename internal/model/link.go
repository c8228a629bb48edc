package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShortLink represents a short link entity
type ShortLink struct {
	ID          string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	Slug        string  `json:"slug" gorm:"type:varchar(50);uniqueIndex;not null"`
	OriginalURL string  `json:"originalUrl" gorm:"type:varchar(2048);not null"`
	UserID      *string `json:"userId" gorm:"type:varchar(36);index"`
	IsActive    bool    `json:"isActive" gorm:"not null;default:1"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Visits []Visit `json:"-" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`

	// VisitCount is populated by aggregate queries; it is never stored.
	VisitCount int64       `json:"-" gorm:"->;-:migration"`
	Count      *VisitTally `json:"_count,omitempty" gorm:"-"`
}

// VisitTally carries computed visit counts in API responses
type VisitTally struct {
	Visits int64 `json:"visits"`
}

// TableName returns the table name for ShortLink
func (ShortLink) TableName() string {
	return "short_links"
}

// BeforeCreate assigns a UUID if none is set
func (sl *ShortLink) BeforeCreate(_ *gorm.DB) error {
	if sl.ID == "" {
		sl.ID = uuid.NewString()
	}
	return nil
}

// CanBeManagedBy reports whether the caller may mutate this link.
// Anonymous callers may act on anonymous links only; identified callers
// may act on their own links only. An anonymous link cannot be claimed
// by an authenticated caller.
func (sl *ShortLink) CanBeManagedBy(userID *string) bool {
	if userID == nil {
		return sl.UserID == nil
	}
	return sl.UserID != nil && *sl.UserID == *userID
}

// WithVisitCount attaches a computed visit count for serialization
func (sl *ShortLink) WithVisitCount(n int64) *ShortLink {
	sl.VisitCount = n
	sl.Count = &VisitTally{Visits: n}
	return sl
}

// CreateLinkRequest represents the request to create a short link
type CreateLinkRequest struct {
	OriginalURL string `json:"originalUrl" binding:"required,url"`
	CustomSlug  string `json:"customSlug" binding:"omitempty"`
}

// UpdateLinkRequest represents a partial update; nil fields are untouched
type UpdateLinkRequest struct {
	OriginalURL *string `json:"originalUrl" binding:"omitempty,url"`
	CustomSlug  *string `json:"customSlug"`
	IsActive    *bool   `json:"isActive"`
}

// LinkStats represents per-link statistics
type LinkStats struct {
	Slug        string     `json:"slug"`
	OriginalURL string     `json:"originalUrl"`
	TotalVisits int64      `json:"totalVisits"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastVisit   *time.Time `json:"lastVisit"`
}

// DashboardStats represents aggregate statistics for one owner
type DashboardStats struct {
	TotalURLs   int64    `json:"totalUrls"`
	TotalVisits int64    `json:"totalVisits"`
	TopURLs     []TopURL `json:"topUrls"`
}

// TopURL is one entry of the dashboard top list
type TopURL struct {
	Slug        string    `json:"slug"`
	OriginalURL string    `json:"originalUrl"`
	Visits      int64     `json:"visits"`
	CreatedAt   time.Time `json:"createdAt"`
}
