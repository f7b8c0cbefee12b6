package store

import (
	"context"
	"time"
)

// AnswerEventData captures one answered or skipped question.
type AnswerEventData struct {
	EventID        string
	SessionID      string
	CourseID       string
	QuestionID     string
	QuestionType   string
	Answer         string
	Correct        bool
	Skipped        bool
	ResponseTimeMs int64
	Synced         bool
}

// SessionEventData captures a playback session boundary.
type SessionEventData struct {
	SessionID       string
	CourseID        string
	Action          string // "started", "completed", "abandoned"
	QuestionsServed int
	CorrectAnswers  int
	VideoSeconds    float64
}

// CourseStats aggregates a learner's history on one course.
type CourseStats struct {
	CourseID     string
	Sessions     int
	Answered     int
	Correct      int
	Skipped      int
	SuccessRate  float64
	LastActivity time.Time
}

// EventRepo provides append and query access to the local event journal.
type EventRepo interface {
	// AppendAnswerEvent records an answer event.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session boundary event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// CourseStats aggregates the journal for one course.
	CourseStats(ctx context.Context, courseID string) (*CourseStats, error)
}
