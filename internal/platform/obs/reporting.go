package obs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

// ReportingConfig configures external error reporting.
type ReportingConfig struct {
	DSN         string
	Environment string
	ServerName  string
}

var reportingEnabled bool

// InitReporting enables Sentry error reporting. An empty DSN leaves reporting disabled.
func InitReporting(cfg ReportingConfig) error {
	if cfg.DSN == "" {
		log.Println("Sentry DSN not configured (error reporting disabled)")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		ServerName:  cfg.ServerName,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Request != nil && event.Request.Headers != nil {
				delete(event.Request.Headers, "Authorization")
				delete(event.Request.Headers, "Cookie")
			}
			return event
		},
	})
	if err != nil {
		return fmt.Errorf("init reporting: %w", err)
	}

	reportingEnabled = true
	log.Printf("Sentry initialized env=%s", cfg.Environment)
	return nil
}

// CaptureError reports a degraded operation. It is a no-op when reporting is disabled.
func CaptureError(ctx context.Context, op string, err error) {
	if err == nil || !reportingEnabled {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("op", op)
		scope.SetTag("req_id", RequestID(ctx))
		sentry.CaptureException(err)
	})
}

// FlushReporting waits for buffered events to be delivered.
func FlushReporting(timeout time.Duration) {
	if !reportingEnabled {
		return
	}
	sentry.Flush(timeout)
}
