package remote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rooshmintted/courseplay/internal/course"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Millisecond,
	}
}

func unavailable() error {
	return &SyncError{Kind: KindUnavailable, Err: errors.New("down")}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockAPI()
	mock.QueueCourse(&course.Course{ID: "c1"}, nil)
	api := WithRetry(mock, retryConfig())

	c, err := api.FetchCourse(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "c1" {
		t.Fatalf("unexpected course: %+v", c)
	}
	if mock.FetchCourseCalls != 1 {
		t.Fatalf("expected 1 call, got %d", mock.FetchCourseCalls)
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockAPI()
	mock.QueueCourse(nil, unavailable())
	mock.QueueCourse(&course.Course{ID: "c1"}, nil)
	api := WithRetry(mock, retryConfig())

	c, err := api.FetchCourse(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "c1" {
		t.Fatalf("unexpected course: %+v", c)
	}
	if mock.FetchCourseCalls != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.FetchCourseCalls)
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockAPI()
	mock.QueueSubmitError(unavailable())
	mock.QueueSubmitError(unavailable())
	mock.QueueSubmitError(unavailable())
	api := WithRetry(mock, retryConfig())

	err := api.SubmitAnswerEvent(context.Background(), AnswerEvent{QuestionID: "q1"})
	if err == nil {
		t.Fatal("expected error")
	}
	var syncErr *SyncError
	if !errors.As(err, &syncErr) || syncErr.Kind != KindUnavailable {
		t.Fatalf("expected unavailable SyncError, got %v", err)
	}
	if mock.SubmitCalls != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.SubmitCalls)
	}
}

func TestRetry_TerminalNotRetried(t *testing.T) {
	mock := NewMockAPI()
	mock.QueueSubmitError(&SyncError{Kind: KindInvalidRequest, Err: errors.New("bad payload")})
	mock.QueueSubmitError(nil) // Won't be reached.
	api := WithRetry(mock, retryConfig())

	err := api.SubmitAnswerEvent(context.Background(), AnswerEvent{QuestionID: "q1"})
	if err == nil {
		t.Fatal("expected error")
	}
	var syncErr *SyncError
	if !errors.As(err, &syncErr) || syncErr.Kind != KindInvalidRequest {
		t.Fatalf("expected invalid_request SyncError, got %v", err)
	}
	if mock.SubmitCalls != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.SubmitCalls)
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockAPI()
	mock.QueueSubmitError(unavailable())
	mock.QueueSubmitError(unavailable())
	mock.QueueSubmitError(nil)
	api := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	err := api.SubmitAnswerEvent(ctx, AnswerEvent{QuestionID: "q1"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestBackoffDelay_DefaultSchedule(t *testing.T) {
	cfg := DefaultConfig().Retry

	if d := backoffDelay(cfg, 0); d != 1*time.Second {
		t.Errorf("delay after attempt 0 = %v, want 1s", d)
	}
	if d := backoffDelay(cfg, 1); d != 2*time.Second {
		t.Errorf("delay after attempt 1 = %v, want 2s", d)
	}
}
