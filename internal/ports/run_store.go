package ports

import (
	"context"
	"errors"
	"storyrun-service/internal/domain"
)

// ErrRunNotFound is returned by RunStore.Get before any run has been submitted.
var ErrRunNotFound = errors.New("run not found")

// Port: a boundary holding at most one submitted run.
type RunStore interface {
	// Return the current run, or ErrRunNotFound when none has been submitted.
	Get(ctx context.Context) (*domain.RunRecord, error)
	// Overwrite the current run. There is no merge with the previous record.
	Replace(ctx context.Context, run domain.RunRecord) error
}
