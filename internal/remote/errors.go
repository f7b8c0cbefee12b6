package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorKind classifies a sync failure for retry decisions.
type ErrorKind string

const (
	// Retryable kinds.
	KindTimeout     ErrorKind = "timeout"
	KindConnection  ErrorKind = "connection"
	KindUnavailable ErrorKind = "unavailable"
	KindNetwork     ErrorKind = "network"

	// Terminal kinds fail fast, no retry.
	KindInvalidRequest ErrorKind = "invalid_request"
	KindDecoding       ErrorKind = "decoding"
	KindNotFound       ErrorKind = "not_found"
)

// Retryable reports whether failures of this kind are worth retrying.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindTimeout, KindConnection, KindUnavailable, KindNetwork:
		return true
	default:
		return false
	}
}

// SyncError is a classified remote-service failure.
type SyncError struct {
	Kind ErrorKind
	Err  error
}

func (e *SyncError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sync failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("sync failed (%s)", e.Kind)
}

func (e *SyncError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is worth retrying.
func (e *SyncError) Retryable() bool { return e.Kind.Retryable() }

// syncErr wraps a cause under a kind, preserving an existing classification.
func syncErr(kind ErrorKind, err error) *SyncError {
	var existing *SyncError
	if errors.As(err, &existing) {
		return existing
	}
	return &SyncError{Kind: kind, Err: err}
}

// Classify maps a raw transport error onto the SyncError taxonomy. Errors
// that are already classified pass through unchanged. Ambiguous errors are
// resolved by message: anything smelling of timeouts, connection trouble,
// gateway failures, or explicitly temporary conditions is retryable;
// client-side rejections and decode failures are terminal. Unrecognized
// errors default to the retryable network kind.
func Classify(err error) *SyncError {
	var existing *SyncError
	if errors.As(err, &existing) {
		return existing
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &SyncError{Kind: KindTimeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &SyncError{Kind: KindTimeout, Err: err}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &SyncError{Kind: KindConnection, Err: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "timeout", "timed out", "deadline"):
		return &SyncError{Kind: KindTimeout, Err: err}
	case containsAny(msg, "connection refused", "connection reset", "no such host"):
		return &SyncError{Kind: KindConnection, Err: err}
	case containsAny(msg, "502", "503", "504", "unavailable", "temporar"):
		return &SyncError{Kind: KindUnavailable, Err: err}
	case containsAny(msg, "400", "401", "403", "invalid request", "missing identifier"):
		return &SyncError{Kind: KindInvalidRequest, Err: err}
	case containsAny(msg, "404", "not found"):
		return &SyncError{Kind: KindNotFound, Err: err}
	case containsAny(msg, "decode", "unmarshal", "invalid json"):
		return &SyncError{Kind: KindDecoding, Err: err}
	default:
		return &SyncError{Kind: KindNetwork, Err: err}
	}
}

// statusKind maps an HTTP response status onto the taxonomy.
func statusKind(status int) ErrorKind {
	switch {
	case status == 404:
		return KindNotFound
	case status == 400 || status == 401 || status == 403:
		return KindInvalidRequest
	case status == 408:
		return KindTimeout
	case status == 502 || status == 503 || status == 504:
		return KindUnavailable
	case status >= 500:
		return KindUnavailable
	default:
		return KindInvalidRequest
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
