package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Events live in separate tables, so per-table auto-increment
// IDs can't establish cross-type ordering. This shared counter assigns a
// single increasing sequence to every event regardless of type.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, event_id, session_id, course_id, question_id, question_type,
			 answer, correct, skipped, response_time_ms, synced)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.EventID, data.SessionID, data.CourseID, data.QuestionID,
		data.QuestionType, data.Answer, data.Correct, data.Skipped,
		data.ResponseTimeMs, data.Synced,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, session_id, course_id, action, questions_served,
			 correct_answers, video_seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.CourseID, data.Action,
		data.QuestionsServed, data.CorrectAnswers, data.VideoSeconds,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) CourseStats(ctx context.Context, courseID string) (*CourseStats, error) {
	stats := &CourseStats{CourseID: courseID}

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM session_events WHERE course_id = ? AND action = 'started'`,
		courseID,
	).Scan(&stats.Sessions)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	var lastActivity sql.NullString
	err = r.db.QueryRowContext(ctx,
		`SELECT
			COUNT(*),
			COALESCE(SUM(correct), 0),
			COALESCE(SUM(skipped), 0),
			MAX(timestamp)
		 FROM answer_events WHERE course_id = ?`,
		courseID,
	).Scan(&stats.Answered, &stats.Correct, &stats.Skipped, &lastActivity)
	if err != nil {
		return nil, fmt.Errorf("aggregate answers: %w", err)
	}

	// Skips count as incorrect, matching the in-session tracker.
	if stats.Answered > 0 {
		stats.SuccessRate = float64(stats.Correct) / float64(stats.Answered)
	}

	if lastActivity.Valid {
		if t, err := time.Parse("2006-01-02 15:04:05", lastActivity.String); err == nil {
			stats.LastActivity = t
		}
	}

	return stats, nil
}
