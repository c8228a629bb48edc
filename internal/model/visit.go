package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visit represents one redirect event against a short link
type Visit struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	LinkID    string    `json:"linkId" gorm:"type:varchar(36);index;not null"`
	IPAddress string    `json:"ipAddress,omitempty" gorm:"type:varchar(64)"`
	UserAgent string    `json:"userAgent,omitempty" gorm:"type:varchar(512)"`
	Referer   string    `json:"referer,omitempty" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// TableName returns the table name for Visit
func (Visit) TableName() string {
	return "visits"
}

// BeforeCreate assigns a UUID if none is set
func (v *Visit) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// VisitMeta carries request metadata captured on redirect. Fields are
// stored as given; absence is allowed.
type VisitMeta struct {
	IPAddress string
	UserAgent string
	Referer   string
}
