package graceful

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// Context returns a context that is canceled on SIGINT or SIGTERM.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			log.Printf("Received signal=%s, starting graceful shutdown", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
