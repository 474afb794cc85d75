package services

import (
	"fmt"
	"io"
	"storyrun-service/internal/domain"
	"strings"
)

// WriteLandmarkTable prints records as "index | lon | lat | landmark" rows
// framed by a title block.
func WriteLandmarkTable(w io.Writer, records []domain.LandmarkRecord) error {
	sep := strings.Repeat("=", 40)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", sep)
	fmt.Fprintln(&b, "RUNNING ROUTE LANDMARKS (index, X, Y, landmark)")
	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, "Index | X (Longitude) | Y (Latitude) | Landmark")
	for _, r := range records {
		fmt.Fprintf(&b, "%d | %.6f | %.6f | %s\n", r.Index, r.Lon, r.Lat, r.Name)
	}
	fmt.Fprintln(&b, sep)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write landmark table: %w", err)
	}
	return nil
}
