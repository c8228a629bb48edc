package mq

import (
	"context"
)

// ProducerInterface defines the interface for visit event publication
type ProducerInterface interface {
	SendVisitEvent(ctx context.Context, event *VisitEvent) error
	Close() error
}
