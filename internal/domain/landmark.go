package domain

// A landmark name paired with a sampled coordinate.
// Index is the position in the sampled sequence; pairing is by order only,
// so a record is only as accurate as the generator's line ordering.
type LandmarkRecord struct {
	Index int
	Lon   float64
	Lat   float64
	Name  string
}
