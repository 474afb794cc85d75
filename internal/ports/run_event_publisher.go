package ports

import (
	"context"
	"time"
)

// Notification emitted after a run has been stored. It never carries file content.
type RunSubmittedEvent struct {
	RunType     string    `json:"run_type"`
	Universe    string    `json:"universe"`
	Filename    *string   `json:"filename"`
	FileSize    int       `json:"file_size"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Contract for publishing run lifecycle events to interested consumers.
type RunEventPublisher interface {
	PublishRunSubmitted(ctx context.Context, evt RunSubmittedEvent) error
}
