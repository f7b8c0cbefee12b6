package quiz

import (
	"fmt"
	"math"
)

// InvalidTimeError indicates a playback time report that is negative or
// non-finite. These come from UI-discipline bugs and reject the call.
type InvalidTimeError struct {
	Seconds float64
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid playback time: %v", e.Seconds)
}

// DuplicateAnswerError indicates a second submission for an already-answered
// question. Duplicates are rejected, not ignored, to keep exactly-once
// scoring observable.
type DuplicateAnswerError struct {
	QuestionID string
}

func (e *DuplicateAnswerError) Error() string {
	return fmt.Sprintf("question %s already answered", e.QuestionID)
}

// Progress accumulates per-session quiz state: playback position, which
// questions have been answered, and how many were correct. It is owned and
// mutated by a single control thread; it performs no I/O and needs no
// locking. A Progress lives for one session and is discarded at teardown.
type Progress struct {
	videoTime float64
	results   map[string]bool
	correct   int
}

// NewProgress creates an empty session progress.
func NewProgress() *Progress {
	return &Progress{results: make(map[string]bool)}
}

// RecordTime updates the current playback position.
func (p *Progress) RecordTime(seconds float64) error {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return &InvalidTimeError{Seconds: seconds}
	}
	p.videoTime = seconds
	return nil
}

// RecordAnswer records an evaluated submission for a question. A second
// call for the same question fails with *DuplicateAnswerError and leaves
// all counts unchanged.
func (p *Progress) RecordAnswer(questionID string, eval Evaluation) error {
	if _, done := p.results[questionID]; done {
		return &DuplicateAnswerError{QuestionID: questionID}
	}
	p.results[questionID] = eval.Correct
	if eval.Correct {
		p.correct++
	}
	return nil
}

// RecordSkip records a skip for a question. Skips count as answered (the
// question will not be surfaced again) and as incorrect, and follow the
// same duplicate rule as RecordAnswer.
func (p *Progress) RecordSkip(questionID string) error {
	if _, done := p.results[questionID]; done {
		return &DuplicateAnswerError{QuestionID: questionID}
	}
	p.results[questionID] = false
	return nil
}

// VideoTime returns the last recorded playback position in seconds.
func (p *Progress) VideoTime() float64 {
	return p.videoTime
}

// IsAnswered reports whether a question has been answered or skipped.
func (p *Progress) IsAnswered(questionID string) bool {
	_, done := p.results[questionID]
	return done
}

// Result returns the recorded correctness for a question and whether any
// result exists for it.
func (p *Progress) Result(questionID string) (correct, answered bool) {
	correct, answered = p.results[questionID]
	return correct, answered
}

// TotalAnswered returns the count of answered or skipped questions.
func (p *Progress) TotalAnswered() int {
	return len(p.results)
}

// CorrectCount returns the count of correct answers.
func (p *Progress) CorrectCount() int {
	return p.correct
}

// SuccessRate returns correct/answered. It is defined as 0 when nothing
// has been answered yet so the presentation layer never sees NaN.
func (p *Progress) SuccessRate() float64 {
	if len(p.results) == 0 {
		return 0
	}
	return float64(p.correct) / float64(len(p.results))
}
