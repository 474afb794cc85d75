package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"storyrun-service/internal/adapters/events"
	"storyrun-service/internal/adapters/store"
	"storyrun-service/internal/api"
	"storyrun-service/internal/config"
	"storyrun-service/internal/platform/db"
	"storyrun-service/internal/platform/graceful"
	"storyrun-service/internal/platform/obs"
	"storyrun-service/internal/ports"
	"storyrun-service/internal/services"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (memory or Postgres store, Kafka events) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()

	if err := obs.InitReporting(obs.ReportingConfig{DSN: cfg.SentryDSN, Environment: cfg.Env, ServerName: "storyrun-server"}); err != nil {
		log.Printf("error reporting disabled: %v", err)
	}
	defer obs.FlushReporting(2 * time.Second)

	// The server does not call Gemini; a missing key is reported but does not stop startup.
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set (landmark resolution unavailable)")
	} else {
		log.Printf("API key loaded: %s", config.MaskSecret(cfg.GeminiAPIKey))
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	runStore, closeStore, err := openRunStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	publisher, closePublisher := openPublisher(cfg)
	defer closePublisher()

	runs := services.NewRunService(runStore, publisher)
	router := api.NewRouter(runs, api.RouterConfig{
		CORSOrigin:     cfg.CORSOrigin,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening addr=:%s cors_origin=%s", cfg.Port, cfg.CORSOrigin)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server failed: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}

	log.Println("Server stopped")
}

// openRunStore selects the Postgres store when DATABASE_URL is set, otherwise memory.
// The Postgres table is reset on start so the record lives no longer than the process.
func openRunStore(ctx context.Context, cfg config.Config) (ports.RunStore, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Println("Run store: memory")
		return store.NewMemoryRunStore(), func() {}, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	pg := store.NewPostgresRunStore(conn)
	if err := prepareStore(ctx, pg, cfg.ResetStoreOnStart); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	log.Printf("Run store: postgres reset_on_start=%t", cfg.ResetStoreOnStart)
	return pg, closer(conn), nil
}

func prepareStore(ctx context.Context, pg *store.PostgresRunStore, reset bool) error {
	if err := pg.InitSchema(ctx); err != nil {
		return err
	}
	if reset {
		return pg.Reset(ctx)
	}
	return nil
}

func closer(conn *sql.DB) func() {
	return func() {
		if err := conn.Close(); err != nil {
			log.Printf("close db failed: %v", err)
		}
	}
}

func openPublisher(cfg config.Config) (ports.RunEventPublisher, func()) {
	if cfg.KafkaBroker == "" {
		log.Println("Run events: disabled (KAFKA_BROKER not set)")
		return events.NoopPublisher{}, func() {}
	}

	p := events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
	return p, func() {
		if err := p.Close(); err != nil {
			log.Printf("close kafka publisher failed: %v", err)
		}
	}
}
