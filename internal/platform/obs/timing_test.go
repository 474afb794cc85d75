package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "abc123")
	err := errors.New("boom")
	Time(ctx, "store.Replace")(&err)

	out := buf.String()
	if !strings.Contains(out, "req_id=abc123") {
		t.Errorf("log missing request id: %q", out)
	}
	if !strings.Contains(out, "op=store.Replace") {
		t.Errorf("log missing op: %q", out)
	}
	if !strings.Contains(out, "err=boom") {
		t.Errorf("log missing error: %q", out)
	}
}

func TestRequestIDOutsideRequest(t *testing.T) {
	if got := RequestID(context.Background()); got != "-" {
		t.Fatalf("RequestID = %q, want -", got)
	}
}

func TestCaptureErrorDisabledIsNoop(t *testing.T) {
	// Reporting is never initialised in tests.
	CaptureError(context.Background(), "landmarks.resolve", errors.New("boom"))
	FlushReporting(0)
}
