package mq

import (
	"time"
)

// VisitEvent is published after a visit has been durably recorded. It
// is fan-out for external subscribers only and never feeds the visit
// counts, which are computed from the store.
type VisitEvent struct {
	LinkID    string    `json:"link_id"`
	Slug      string    `json:"slug"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Referer   string    `json:"referer"`
	VisitedAt time.Time `json:"visited_at"`
}
