package quiz

import (
	"errors"
	"math"
	"testing"
)

func TestRecordTime(t *testing.T) {
	p := NewProgress()
	if err := p.RecordTime(12.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.VideoTime() != 12.5 {
		t.Fatalf("unexpected video time: %v", p.VideoTime())
	}
}

func TestRecordTime_Invalid(t *testing.T) {
	p := NewProgress()
	for _, sec := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := p.RecordTime(sec)
		if err == nil {
			t.Fatalf("RecordTime(%v): expected error", sec)
		}
		var invalid *InvalidTimeError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidTimeError, got %T", err)
		}
	}
	if p.VideoTime() != 0 {
		t.Fatal("rejected time must not be recorded")
	}
}

func TestRecordAnswer_DuplicateRejected(t *testing.T) {
	p := NewProgress()
	if err := p.RecordAnswer("q1", Evaluation{Correct: true, AnswerText: "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := p.RecordAnswer("q1", Evaluation{Correct: false, AnswerText: "0"})
	if err == nil {
		t.Fatal("expected duplicate rejection")
	}
	var dup *DuplicateAnswerError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateAnswerError, got %T", err)
	}
	if dup.QuestionID != "q1" {
		t.Fatalf("error carries question %s, want q1", dup.QuestionID)
	}

	// Second call must leave recorded state untouched.
	if p.CorrectCount() != 1 || p.TotalAnswered() != 1 {
		t.Fatalf("duplicate mutated counts: correct=%d answered=%d", p.CorrectCount(), p.TotalAnswered())
	}
	if correct, _ := p.Result("q1"); !correct {
		t.Fatal("duplicate overwrote per-question result")
	}
}

func TestRecordSkip(t *testing.T) {
	p := NewProgress()
	if err := p.RecordSkip("q1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsAnswered("q1") {
		t.Fatal("skipped question should count as answered")
	}
	if p.CorrectCount() != 0 {
		t.Fatal("skip must not increment correct count")
	}
	if err := p.RecordSkip("q1"); err == nil {
		t.Fatal("duplicate skip should be rejected")
	}
	if err := p.RecordAnswer("q1", Evaluation{Correct: true}); err == nil {
		t.Fatal("answer after skip should be rejected")
	}
}

func TestSuccessRate(t *testing.T) {
	p := NewProgress()
	if p.SuccessRate() != 0 {
		t.Fatal("success rate with no answers must be 0")
	}

	_ = p.RecordAnswer("q1", Evaluation{Correct: true})
	_ = p.RecordAnswer("q2", Evaluation{Correct: false})
	_ = p.RecordSkip("q3")

	want := 1.0 / 3.0
	if got := p.SuccessRate(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("success rate = %v, want %v", got, want)
	}
}
