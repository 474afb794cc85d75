package ports

import (
	"context"
	"errors"
	"io"
)

// ErrSourceNotFound is returned when the requested coordinate input does not exist.
var ErrSourceNotFound = errors.New("coordinate source not found")

// Contract for opening a coordinate CSV by location (a path or an object URL).
type CoordinateSource interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}
