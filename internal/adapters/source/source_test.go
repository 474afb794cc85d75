package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"storyrun-service/internal/ports"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectLocation(t *testing.T) {
	tests := []struct {
		location   string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{location: "s3://routes/nyc/storymap.csv", wantBucket: "routes", wantKey: "nyc/storymap.csv"},
		{location: "s3://routes/", wantErr: true},
		{location: "s3:///key.csv", wantErr: true},
		{location: "https://routes/key.csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			bucket, key, err := ParseObjectLocation(tt.location)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := FileSource{}.Open(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, ports.ErrSourceNotFound)
}

type stubSource struct{ body string }

func (s stubSource) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.body + location)), nil
}

func TestRouterDispatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.csv")
	require.NoError(t, os.WriteFile(path, []byte("X,Y\n"), 0o600))

	r := Router{Objects: stubSource{body: "object:"}}

	rc, err := r.Open(context.Background(), "s3://bucket/key.csv")
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	assert.Equal(t, "object:s3://bucket/key.csv", string(b))

	rc, err = r.Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()
	b, _ = io.ReadAll(rc)
	assert.Equal(t, "X,Y\n", string(b))
}

func TestRouterWithoutObjectStorage(t *testing.T) {
	_, err := Router{}.Open(context.Background(), "s3://bucket/key.csv")
	assert.Error(t, err)
}
