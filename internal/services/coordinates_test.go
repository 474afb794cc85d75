package services

import (
	"os"
	"path/filepath"
	"storyrun-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCoordinatesSkipsMalformedRows(t *testing.T) {
	csv := strings.Join([]string{
		"X,Y,label",
		"40.0,-73.0,start",
		"40.1,-73.1,",
		"bad,-73.2,broken",
		"40.3,-73.3,end",
	}, "\n")

	got := LoadCoordinates(strings.NewReader(csv), DefaultCoordinateFields)

	want := []domain.Coordinates{
		{Lat: 40.0, Lon: -73.0},
		{Lat: 40.1, Lon: -73.1},
		{Lat: 40.3, Lon: -73.3},
	}
	assert.Equal(t, want, got)
}

func TestLoadCoordinatesRowShapes(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want int
	}{
		{name: "short row", csv: "X,Y\n40.0\n40.1,-73.1\n", want: 1},
		{name: "empty values", csv: "X,Y\n,\n40.1,\n,-73.1\n40.2,-73.2\n", want: 1},
		{name: "padded numbers", csv: "X,Y\n 40.0 , -73.0 \n", want: 1},
		{name: "columns reordered", csv: "Y,name,X\n-73.0,a,40.0\n", want: 1},
		{name: "missing lon header", csv: "X,Z\n40.0,-73.0\n", want: 0},
		{name: "header only", csv: "X,Y\n", want: 0},
		{name: "empty input", csv: "", want: 0},
		{name: "bom header", csv: "\ufeffX,Y\n40.0,-73.0\n", want: 1},
		{name: "blank lines", csv: "X,Y\n\n40.0,-73.0\n\n", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadCoordinates(strings.NewReader(tt.csv), DefaultCoordinateFields)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestLoadCoordinatesCustomFields(t *testing.T) {
	csv := "lat,lng\n51.5007,-0.1246\n"
	got := LoadCoordinates(strings.NewReader(csv), CoordinateFields{Lat: "lat", Lon: "lng"})
	require.Len(t, got, 1)
	assert.Equal(t, domain.Coordinates{Lat: 51.5007, Lon: -0.1246}, got[0])
}

func TestLoadCoordinatesFileMissing(t *testing.T) {
	got := LoadCoordinatesFile(filepath.Join(t.TempDir(), "nope.csv"), DefaultCoordinateFields)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadCoordinatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.csv")
	require.NoError(t, os.WriteFile(path, []byte("X,Y\n40.0,-73.0\n40.1,-73.1\n"), 0o600))

	got := LoadCoordinatesFile(path, DefaultCoordinateFields)
	assert.Len(t, got, 2)
}
