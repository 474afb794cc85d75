package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"storyrun-service/internal/adapters/source"
	"storyrun-service/internal/adapters/textgen"
	"storyrun-service/internal/config"
	"storyrun-service/internal/platform/obs"
	"storyrun-service/internal/ports"
	"storyrun-service/internal/services"
	"strings"
	"time"
)

// main reads route coordinates from a CSV, samples them, asks Gemini for the
// landmark near each sample, and prints the result as a table.
func main() {
	cfg := config.Load()

	input := flag.String("input", cfg.LandmarksInput, "coordinate CSV path or s3://bucket/key")
	maxSamples := flag.Int("max-samples", services.DefaultMaxSamples, "maximum number of sampled coordinates")
	latField := flag.String("lat-field", services.DefaultCoordinateFields.Lat, "CSV column holding latitude")
	lonField := flag.String("lon-field", services.DefaultCoordinateFields.Lon, "CSV column holding longitude")
	model := flag.String("model", cfg.GeminiModel, "Gemini model name")
	timeout := flag.Duration("timeout", 60*time.Second, "timeout for the landmark request")
	flag.Parse()

	if err := obs.InitReporting(obs.ReportingConfig{DSN: cfg.SentryDSN, Environment: cfg.Env, ServerName: "landmarks"}); err != nil {
		log.Printf("error reporting disabled: %v", err)
	}
	defer obs.FlushReporting(2 * time.Second)

	if err := run(cfg, *input, *maxSamples, services.CoordinateFields{Lat: *latField, Lon: *lonField}, *model, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		obs.FlushReporting(2 * time.Second)
		os.Exit(1)
	}
}

func run(cfg config.Config, input string, maxSamples int, fields services.CoordinateFields, model string, timeout time.Duration) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("no input given (use -input or LANDMARKS_INPUT)")
	}
	if !strings.EqualFold(path.Ext(input), ".csv") {
		return fmt.Errorf("input %q is not a CSV file", input)
	}

	if cfg.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY not found in environment or .env")
	}
	log.Printf("API key loaded: %s", config.MaskSecret(cfg.GeminiAPIKey))

	gen, err := textgen.NewGeminiGenerator(cfg.GeminiAPIKey, model)
	if err != nil {
		return err
	}

	src, err := newSource(cfg, input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	rc, err := src.Open(ctx, input)
	if err != nil {
		if errors.Is(err, ports.ErrSourceNotFound) {
			return fmt.Errorf("CSV file not found at %s", input)
		}
		return err
	}
	defer rc.Close()

	log.Printf("Reading CSV input=%s", input)
	coords := services.LoadCoordinates(rc, fields)
	if len(coords) == 0 {
		fmt.Println("No coordinates found in CSV.")
		return nil
	}

	sampled := services.SampleCoordinates(coords, maxSamples)
	if len(sampled) == 0 {
		fmt.Println("No points available for analysis after sampling.")
		return nil
	}

	records := services.NewLandmarkResolver(gen).Resolve(ctx, sampled)

	return services.WriteLandmarkTable(os.Stdout, records)
}

// newSource only builds an object storage client when the input needs one.
func newSource(cfg config.Config, input string) (ports.CoordinateSource, error) {
	r := source.Router{Files: source.FileSource{}}
	if !source.IsObjectLocation(input) {
		return r, nil
	}

	objects, err := source.NewMinioSource(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		return nil, err
	}
	r.Objects = objects
	return r, nil
}
