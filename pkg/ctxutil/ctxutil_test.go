package ctxutil

import (
	"context"
	"testing"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("request ID: got %q, want %q", got, "req-123")
	}
}

func TestRequestIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty string for missing request ID, got %q", got)
	}
}
