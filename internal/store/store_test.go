package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAnswerEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		EventID:        "ev-1",
		SessionID:      "sess-1",
		CourseID:       "course-1",
		QuestionID:     "q-1",
		QuestionType:   "multiple_choice",
		Answer:         "Paris",
		Correct:        true,
		ResponseTimeMs: 1200,
		Synced:         true,
	})
	if err != nil {
		t.Fatalf("append answer event: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM answer_events").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("answer events = %d, want 1", count)
	}
}

func TestCourseStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		CourseID:  "course-1",
		Action:    "started",
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}

	events := []AnswerEventData{
		{EventID: "ev-1", SessionID: "sess-1", CourseID: "course-1", QuestionID: "q-1", QuestionType: "multiple_choice", Answer: "Paris", Correct: true},
		{EventID: "ev-2", SessionID: "sess-1", CourseID: "course-1", QuestionID: "q-2", QuestionType: "true_false", Answer: "True", Correct: false},
		{EventID: "ev-3", SessionID: "sess-1", CourseID: "course-1", QuestionID: "q-3", QuestionType: "sequencing", Answer: "skipped", Skipped: true},
	}
	for _, ev := range events {
		if err := repo.AppendAnswerEvent(ctx, ev); err != nil {
			t.Fatalf("append %s: %v", ev.EventID, err)
		}
	}

	stats, err := repo.CourseStats(ctx, "course-1")
	if err != nil {
		t.Fatalf("course stats: %v", err)
	}

	if stats.Sessions != 1 {
		t.Errorf("sessions = %d, want 1", stats.Sessions)
	}
	if stats.Answered != 3 {
		t.Errorf("answered = %d, want 3", stats.Answered)
	}
	if stats.Correct != 1 {
		t.Errorf("correct = %d, want 1", stats.Correct)
	}
	if stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", stats.Skipped)
	}
	if want := 1.0 / 3.0; stats.SuccessRate != want {
		t.Errorf("success rate = %v, want %v", stats.SuccessRate, want)
	}
}

func TestCourseStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	stats, err := repo.CourseStats(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("course stats: %v", err)
	}
	if stats.Answered != 0 || stats.Sessions != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if stats.SuccessRate != 0 {
		t.Errorf("success rate = %v, want 0", stats.SuccessRate)
	}
}
