package services

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"storyrun-service/internal/domain"
	"strconv"
	"strings"
)

// CoordinateFields names the CSV header columns holding latitude and longitude.
type CoordinateFields struct {
	Lat string
	Lon string
}

// DefaultCoordinateFields matches the storymap export: X holds latitude, Y longitude.
var DefaultCoordinateFields = CoordinateFields{Lat: "X", Lon: "Y"}

// LoadCoordinatesFile reads coordinates from a CSV file on disk.
// A missing or unreadable file yields an empty result, never an error.
func LoadCoordinatesFile(path string, fields CoordinateFields) []domain.Coordinates {
	log.Printf("Reading CSV file path=%s", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("CSV file not found path=%s", path)
		} else {
			log.Printf("open CSV file failed path=%s err=%v", path, err)
		}
		return []domain.Coordinates{}
	}
	defer f.Close()

	return LoadCoordinates(f, fields)
}

// LoadCoordinates parses a CSV stream whose first row is a header.
// Rows missing either field, or holding non-numeric values, are skipped.
func LoadCoordinates(r io.Reader, fields CoordinateFields) []domain.Coordinates {
	coords := make([]domain.Coordinates, 0, 256)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Printf("read CSV header failed: %v", err)
		}
		log.Printf("Total points found: %d", len(coords))
		return coords
	}

	latIdx, lonIdx := -1, -1
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch name {
		case fields.Lat:
			if latIdx < 0 {
				latIdx = i
			}
		case fields.Lon:
			if lonIdx < 0 {
				lonIdx = i
			}
		}
	}
	if latIdx < 0 || lonIdx < 0 {
		log.Printf("CSV header missing coordinate fields lat=%q lon=%q", fields.Lat, fields.Lon)
	}

	skipped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				skipped++
				continue
			}
			log.Printf("read CSV row failed: %v", err)
			break
		}

		c, ok := parseCoordinateRow(row, latIdx, lonIdx)
		if !ok {
			skipped++
			continue
		}
		coords = append(coords, c)
	}

	if skipped > 0 {
		log.Printf("Skipped malformed rows count=%d", skipped)
	}
	log.Printf("Total points found: %d", len(coords))
	return coords
}

func parseCoordinateRow(row []string, latIdx, lonIdx int) (domain.Coordinates, bool) {
	if latIdx < 0 || lonIdx < 0 || latIdx >= len(row) || lonIdx >= len(row) {
		return domain.Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
	if err != nil {
		return domain.Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(row[lonIdx]), 64)
	if err != nil {
		return domain.Coordinates{}, false
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true
}
