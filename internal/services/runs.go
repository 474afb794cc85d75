package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"storyrun-service/internal/domain"
	"storyrun-service/internal/platform/obs"
	"storyrun-service/internal/ports"
	"strings"
	"time"
)

var (
	ErrRunTypeRequired  = errors.New("run_type is required")
	ErrUniverseRequired = errors.New("universe is required")
)

type SubmitRunRequest struct {
	RunType  string
	Universe string
	// Filename and File are set together when a track file was uploaded.
	Filename string
	File     io.Reader
}

// RunService accepts run submissions and serves the current run.
type RunService struct {
	Store  ports.RunStore
	Events ports.RunEventPublisher
	Now    func() time.Time
}

func NewRunService(store ports.RunStore, events ports.RunEventPublisher) *RunService {
	return &RunService{Store: store, Events: events, Now: time.Now}
}

// Submit stores the run, replacing any previous one, and announces it.
// The uploaded file is stored as standard base64 text.
func (s *RunService) Submit(ctx context.Context, req SubmitRunRequest) (_ *domain.RunRecord, err error) {
	defer obs.Time(ctx, "runs.Submit")(&err)

	if strings.TrimSpace(req.RunType) == "" {
		return nil, ErrRunTypeRequired
	}
	if strings.TrimSpace(req.Universe) == "" {
		return nil, ErrUniverseRequired
	}

	log.Printf("Run type received: %s, Universe: %s", req.RunType, req.Universe)

	run := domain.RunRecord{
		RunType:  req.RunType,
		Universe: req.Universe,
	}

	size := 0
	if req.File != nil && req.Filename != "" {
		content, err := io.ReadAll(req.File)
		if err != nil {
			return nil, fmt.Errorf("submit run: read file %q: %w", req.Filename, err)
		}
		size = len(content)

		filename := req.Filename
		encoded := base64.StdEncoding.EncodeToString(content)
		run.Filename = &filename
		run.FileData = &encoded

		log.Printf("GPX file received: %s (size: %d)", filename, size)
	}

	if err := s.Store.Replace(ctx, run); err != nil {
		return nil, fmt.Errorf("submit run: %w", err)
	}

	s.publish(ctx, run, size)

	return &run, nil
}

// Current returns the stored run or ports.ErrRunNotFound.
func (s *RunService) Current(ctx context.Context) (*domain.RunRecord, error) {
	run, err := s.Store.Get(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrRunNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("current run: %w", err)
	}
	return run, nil
}

// publish failures never fail the submission; the run is already stored.
func (s *RunService) publish(ctx context.Context, run domain.RunRecord, size int) {
	if s.Events == nil {
		return
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	evt := ports.RunSubmittedEvent{
		RunType:     run.RunType,
		Universe:    run.Universe,
		Filename:    run.Filename,
		FileSize:    size,
		SubmittedAt: now().UTC(),
	}
	if err := s.Events.PublishRunSubmitted(ctx, evt); err != nil {
		log.Printf("req_id=%s publish run submitted failed: %v", obs.RequestID(ctx), err)
		obs.CaptureError(ctx, "runs.publish", err)
	}
}
