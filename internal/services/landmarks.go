package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"storyrun-service/internal/domain"
	"storyrun-service/internal/platform/obs"
	"storyrun-service/internal/ports"
	"strings"
)

var errNoGenerator = errors.New("text generator not configured")

// LandmarkResolver labels sampled route coordinates with landmark names
// using an external text-generation service.
type LandmarkResolver struct {
	Generator ports.TextGenerator
}

func NewLandmarkResolver(gen ports.TextGenerator) *LandmarkResolver {
	return &LandmarkResolver{Generator: gen}
}

// Resolve asks the generator for one landmark per coordinate and pairs the
// returned lines with the coordinates by position.
//
// The generator gives no alignment guarantee: line i is assumed to describe
// coordinate i. Any failure degrades to an empty result.
func (r *LandmarkResolver) Resolve(ctx context.Context, sampled []domain.Coordinates) []domain.LandmarkRecord {
	if len(sampled) == 0 {
		return []domain.LandmarkRecord{}
	}

	text, err := r.generate(ctx, BuildLandmarkPrompt(sampled))
	if err != nil {
		log.Printf("get landmarks failed: %v", err)
		obs.CaptureError(ctx, "landmarks.resolve", err)
		return []domain.LandmarkRecord{}
	}

	names := ParseLandmarkLines(text)
	if len(names) != len(sampled) {
		log.Printf("landmark count mismatch coordinates=%d landmarks=%d (pairing by position)", len(sampled), len(names))
	}

	return PairLandmarks(sampled, names)
}

func (r *LandmarkResolver) generate(ctx context.Context, prompt string) (_ string, err error) {
	defer obs.Time(ctx, "landmarks.generate")(&err)

	if r.Generator == nil {
		return "", errNoGenerator
	}

	log.Printf("Sending coordinates to text generator")
	text, err := r.Generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate landmarks: %w", err)
	}

	return text, nil
}

// BuildLandmarkPrompt embeds the coordinates, in order, as "(lat, lon)" pairs
// with four decimal places.
func BuildLandmarkPrompt(sampled []domain.Coordinates) string {
	pairs := make([]string, 0, len(sampled))
	for _, c := range sampled {
		pairs = append(pairs, fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon))
	}

	return fmt.Sprintf(`
Analyze the following GPS coordinates from a running route in order.
Identify the most prominent, famous, or noteworthy landmarks, parks, cities, or major areas.
Output the landmarks in the same order as the coordinates, one per line.

Coordinates:
%s
`, strings.Join(pairs, ", "))
}

// ParseLandmarkLines splits generated text into non-empty lines with leading
// bullet markers ("-", "•") removed.
func ParseLandmarkLines(text string) []string {
	lines := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(strings.TrimLeft(line, "-• ")))
	}
	return out
}

// PairLandmarks zips coordinates with names by position, stopping at the
// shorter sequence. Records are (index, lon, lat, name).
func PairLandmarks(sampled []domain.Coordinates, names []string) []domain.LandmarkRecord {
	n := min(len(sampled), len(names))

	out := make([]domain.LandmarkRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.LandmarkRecord{
			Index: i,
			Lon:   sampled[i].Lon,
			Lat:   sampled[i].Lat,
			Name:  names[i],
		})
	}
	return out
}
