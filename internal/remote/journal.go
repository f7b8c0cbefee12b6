package remote

import (
	"context"
	"fmt"
	"os"

	"github.com/rooshmintted/courseplay/internal/course"
	"github.com/rooshmintted/courseplay/internal/quiz"
	"github.com/rooshmintted/courseplay/internal/store"
)

// journalAPI is a decorator that mirrors submissions into the local event
// journal. The journal write happens after the remote call so the synced flag
// reflects the actual outcome.
type journalAPI struct {
	inner     API
	repo      store.EventRepo
	sessionID string
}

// WithJournal wraps an API so every answer submission is also recorded in
// the local journal under the given session ID.
func WithJournal(api API, repo store.EventRepo, sessionID string) API {
	return &journalAPI{inner: api, repo: repo, sessionID: sessionID}
}

func (j *journalAPI) FetchCourse(ctx context.Context, courseID string) (*course.Course, error) {
	return j.inner.FetchCourse(ctx, courseID)
}

func (j *journalAPI) FetchQuestions(ctx context.Context, courseID string) ([]*course.Question, error) {
	return j.inner.FetchQuestions(ctx, courseID)
}

func (j *journalAPI) SubmitAnswerEvent(ctx context.Context, event AnswerEvent) error {
	err := j.inner.SubmitAnswerEvent(ctx, event)

	data := store.AnswerEventData{
		EventID:        event.ID,
		SessionID:      j.sessionID,
		CourseID:       event.CourseID,
		QuestionID:     event.QuestionID,
		QuestionType:   event.QuestionType,
		Answer:         event.Answer,
		Correct:        event.Correct,
		Skipped:        event.Answer == quiz.SkippedAnswerText,
		ResponseTimeMs: event.ResponseTimeMs,
		Synced:         err == nil,
	}

	// Journal the event but don't fail a working sync if journaling fails.
	if jErr := j.repo.AppendAnswerEvent(ctx, data); jErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to journal answer event: %v\n", jErr)
	}

	return err
}

func (j *journalAPI) SubmitEnrollment(ctx context.Context, rec Enrollment) error {
	return j.inner.SubmitEnrollment(ctx, rec)
}
