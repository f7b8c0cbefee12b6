package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestErrorKindRetryable(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want bool
	}{
		{KindTimeout, true},
		{KindConnection, true},
		{KindUnavailable, true},
		{KindNetwork, true},
		{KindInvalidRequest, false},
		{KindDecoding, false},
		{KindNotFound, false},
	}

	for _, tt := range tests {
		if got := tt.kind.Retryable(); got != tt.want {
			t.Errorf("%s.Retryable() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"deadline exceeded", context.DeadlineExceeded, KindTimeout},
		{"wrapped deadline", fmt.Errorf("fetch: %w", context.DeadlineExceeded), KindTimeout},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, KindConnection},
		{"timeout message", errors.New("request timed out"), KindTimeout},
		{"connection refused message", errors.New("dial tcp: connection refused"), KindConnection},
		{"gateway message", errors.New("upstream returned 503"), KindUnavailable},
		{"not found message", errors.New("course not found"), KindNotFound},
		{"decode message", errors.New("decode course: unexpected EOF"), KindDecoding},
		{"unknown", errors.New("something odd"), KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Kind != tt.want {
				t.Errorf("Classify(%v).Kind = %s, want %s", tt.err, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyPreservesExisting(t *testing.T) {
	orig := &SyncError{Kind: KindNotFound, Err: errors.New("missing")}
	wrapped := fmt.Errorf("fetch course: %w", orig)

	got := Classify(wrapped)
	if got != orig {
		t.Fatalf("expected original SyncError to pass through, got %v", got)
	}
}

func TestStatusKind(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{400, KindInvalidRequest},
		{401, KindInvalidRequest},
		{403, KindInvalidRequest},
		{404, KindNotFound},
		{408, KindTimeout},
		{422, KindInvalidRequest},
		{500, KindUnavailable},
		{502, KindUnavailable},
		{503, KindUnavailable},
		{504, KindUnavailable},
	}

	for _, tt := range tests {
		if got := statusKind(tt.status); got != tt.want {
			t.Errorf("statusKind(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
}
