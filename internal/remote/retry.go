package remote

import (
	"context"
	"time"

	"github.com/rooshmintted/courseplay/internal/course"
)

// retryAPI is a decorator that retries transient failures with exponential
// backoff. Non-retryable failures abort immediately without consuming the
// remaining attempts; on exhaustion the last classified error surfaces.
type retryAPI struct {
	inner API
	cfg   RetryConfig
}

// WithRetry wraps an API with retry logic.
func WithRetry(api API, cfg RetryConfig) API {
	return &retryAPI{inner: api, cfg: cfg}
}

func (r *retryAPI) FetchCourse(ctx context.Context, courseID string) (*course.Course, error) {
	return withBackoff(ctx, r.cfg, func(ctx context.Context) (*course.Course, error) {
		return r.inner.FetchCourse(ctx, courseID)
	})
}

func (r *retryAPI) FetchQuestions(ctx context.Context, courseID string) ([]*course.Question, error) {
	return withBackoff(ctx, r.cfg, func(ctx context.Context) ([]*course.Question, error) {
		return r.inner.FetchQuestions(ctx, courseID)
	})
}

func (r *retryAPI) SubmitAnswerEvent(ctx context.Context, event AnswerEvent) error {
	_, err := withBackoff(ctx, r.cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.inner.SubmitAnswerEvent(ctx, event)
	})
	return err
}

func (r *retryAPI) SubmitEnrollment(ctx context.Context, rec Enrollment) error {
	_, err := withBackoff(ctx, r.cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.inner.SubmitEnrollment(ctx, rec)
	})
	return err
}

// withBackoff runs fn up to cfg.MaxAttempts times. Each individual retry
// sequence is strictly sequential; the wait before attempt n+1 is
// backoffDelay(cfg, n). Context cancellation aborts the wait.
func withBackoff[T any](ctx context.Context, cfg RetryConfig, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr *SyncError

	for attempt := range cfg.MaxAttempts {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		lastErr = Classify(err)
		if !lastErr.Retryable() {
			return zero, lastErr
		}

		// Last attempt, don't sleep, just surface the error.
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(backoffDelay(cfg, attempt)):
		}
	}

	return zero, lastErr
}

// backoffDelay returns the wait after the given zero-based attempt:
// BaseDelay doubled per attempt (1s, 2s, ... with the default config).
func backoffDelay(cfg RetryConfig, attempt int) time.Duration {
	return cfg.BaseDelay << attempt
}
