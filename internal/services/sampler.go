package services

import (
	"log"
	"storyrun-service/internal/domain"
)

const DefaultMaxSamples = 20

// SampleCoordinates picks every stride-th coordinate, stride = max(1, len/maxSamples),
// and makes sure the first and last input coordinates are present.
//
// Presence is checked by value: a route that revisits its start point will not
// get the start prepended again. The result may exceed maxSamples when the
// stride rounds down.
func SampleCoordinates(coords []domain.Coordinates, maxSamples int) []domain.Coordinates {
	if len(coords) == 0 {
		return []domain.Coordinates{}
	}
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}

	stride := max(1, len(coords)/maxSamples)

	sampled := make([]domain.Coordinates, 0, len(coords)/stride+2)
	for i := 0; i < len(coords); i += stride {
		sampled = append(sampled, coords[i])
	}

	first := coords[0]
	if !containsCoordinate(sampled, first) {
		sampled = append([]domain.Coordinates{first}, sampled...)
	}

	last := coords[len(coords)-1]
	if !containsCoordinate(sampled, last) {
		sampled = append(sampled, last)
	}

	log.Printf("Sampling %d points for analysis", len(sampled))
	return sampled
}

func containsCoordinate(coords []domain.Coordinates, c domain.Coordinates) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}
