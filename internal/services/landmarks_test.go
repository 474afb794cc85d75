package services

import (
	"context"
	"errors"
	"storyrun-service/internal/adapters/textgen"
	"storyrun-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampled = []domain.Coordinates{
	{Lat: 40.7829, Lon: -73.9654},
	{Lat: 40.758, Lon: -73.9855},
	{Lat: 40.7061, Lon: -73.9969},
}

func TestResolvePairsByPositionWithExtraLines(t *testing.T) {
	gen := textgen.NewMockGenerator("- Central Park\n• Times Square\n\n  - Brooklyn Bridge\nStatue of Liberty\nEllis Island\n", nil)
	r := NewLandmarkResolver(gen)

	got := r.Resolve(context.Background(), sampled)

	require.Len(t, got, 3)
	want := []domain.LandmarkRecord{
		{Index: 0, Lon: -73.9654, Lat: 40.7829, Name: "Central Park"},
		{Index: 1, Lon: -73.9855, Lat: 40.758, Name: "Times Square"},
		{Index: 2, Lon: -73.9969, Lat: 40.7061, Name: "Brooklyn Bridge"},
	}
	assert.Equal(t, want, got)
}

func TestResolveFewerLinesThanCoordinates(t *testing.T) {
	r := NewLandmarkResolver(textgen.NewMockGenerator("Central Park", nil))

	got := r.Resolve(context.Background(), sampled)
	require.Len(t, got, 1)
	assert.Equal(t, "Central Park", got[0].Name)
}

func TestResolveDegradesOnFailure(t *testing.T) {
	r := NewLandmarkResolver(textgen.NewMockGenerator("", errors.New("quota exceeded")))

	got := r.Resolve(context.Background(), sampled)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolveWithoutGenerator(t *testing.T) {
	r := NewLandmarkResolver(nil)
	assert.Empty(t, r.Resolve(context.Background(), sampled))
}

func TestResolveNoCoordinatesSkipsCall(t *testing.T) {
	gen := textgen.NewMockGenerator("Central Park", nil)
	r := NewLandmarkResolver(gen)

	assert.Empty(t, r.Resolve(context.Background(), nil))
	assert.Empty(t, gen.Prompts())
}

func TestResolveSendsSinglePrompt(t *testing.T) {
	gen := textgen.NewMockGenerator("A\nB\nC", nil)
	NewLandmarkResolver(gen).Resolve(context.Background(), sampled)

	prompts := gen.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "(40.7829, -73.9654), (40.7580, -73.9855), (40.7061, -73.9969)")
}

func TestBuildLandmarkPromptRoundsToFourDecimals(t *testing.T) {
	p := BuildLandmarkPrompt([]domain.Coordinates{{Lat: 51.500729, Lon: -0.124625}})
	assert.Contains(t, p, "(51.5007, -0.1246)")
	assert.Contains(t, p, "one per line")
	assert.Contains(t, p, "same order")
}

func TestParseLandmarkLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "plain", in: "A\nB", want: []string{"A", "B"}},
		{name: "bullets", in: "- A\n• B\n-- C", want: []string{"A", "B", "C"}},
		{name: "crlf and blanks", in: "\r\nA\r\n\r\n  B  \r\n", want: []string{"A", "B"}},
		{name: "numbered kept", in: "1. A", want: []string{"1. A"}},
		{name: "bare bullet", in: "A\n-\nB", want: []string{"A", "", "B"}},
		{name: "empty", in: "  \n ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLandmarkLines(tt.in))
		})
	}
}

func TestPairLandmarksSwapsToLonLat(t *testing.T) {
	got := PairLandmarks(sampled[:1], []string{"Central Park"})
	require.Len(t, got, 1)
	assert.Equal(t, -73.9654, got[0].Lon)
	assert.Equal(t, 40.7829, got[0].Lat)
}

func TestWriteLandmarkTable(t *testing.T) {
	var b strings.Builder
	err := WriteLandmarkTable(&b, []domain.LandmarkRecord{
		{Index: 0, Lon: -73.9654, Lat: 40.7829, Name: "Central Park"},
	})
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, "Index | X (Longitude) | Y (Latitude) | Landmark\n")
	assert.Contains(t, out, "0 | -73.965400 | 40.782900 | Central Park\n")
}
