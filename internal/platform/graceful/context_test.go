package graceful

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"
)

func TestContextCanceledOnSignal(t *testing.T) {
	ctx, cancel := Context(context.Background())
	defer cancel()

	go func() {
		time.Sleep(50 * time.Millisecond)
		if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
			t.Errorf("send SIGINT: %v", err)
		}
	}()

	select {
	case <-ctx.Done():
		if !errors.Is(ctx.Err(), context.Canceled) {
			t.Errorf("ctx.Err() = %v, want context.Canceled", ctx.Err())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for cancellation")
	}
}

func TestContextCanceledByParent(t *testing.T) {
	parent, parentCancel := context.WithCancel(context.Background())
	ctx, cancel := Context(parent)
	defer cancel()

	parentCancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("child context not canceled with parent")
	}
}
