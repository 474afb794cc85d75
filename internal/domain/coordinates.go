package domain

// Immutable geographic coordinates (latitude, longitude).
// Two Coordinates are the same point when their values are equal.
type Coordinates struct {
	Lat float64
	Lon float64
}
