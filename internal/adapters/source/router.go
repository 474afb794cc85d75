package source

import (
	"context"
	"errors"
	"io"
	"storyrun-service/internal/ports"
)

// Router dispatches s3:// locations to Objects and everything else to Files.
type Router struct {
	Files   ports.CoordinateSource
	Objects ports.CoordinateSource
}

func (r Router) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsObjectLocation(location) {
		if r.Objects == nil {
			return nil, errors.New("object storage is not configured (set MINIO_ENDPOINT)")
		}
		return r.Objects.Open(ctx, location)
	}

	files := r.Files
	if files == nil {
		files = FileSource{}
	}
	return files.Open(ctx, location)
}
