package service

import (
	"context"
	"time"
)

// ProfileEvent announces a successful profile mutation so downstream caches
// and search indexes can invalidate. It carries field names, never values.
type ProfileEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	AccountID     int64     `json:"account_id"`
	ChangedFields []string  `json:"changed_fields"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProfileEventPublisher defines the interface for publishing profile events
// to a message queue. Publishing is best-effort: a failure is logged by the
// caller and never fails the originating update.
type ProfileEventPublisher interface {
	// PublishProfileEvent publishes a profile-updated event for async processing
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
