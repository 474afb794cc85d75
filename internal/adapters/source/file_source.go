package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"storyrun-service/internal/ports"
)

// FileSource opens coordinate CSVs from the local filesystem.
type FileSource struct{}

func (FileSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open %q: %w", path, ports.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	return f, nil
}
