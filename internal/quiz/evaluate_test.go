package quiz

import (
	"testing"

	"github.com/rooshmintted/courseplay/internal/course"
)

func mcQuestion(correct string) *course.Question {
	return &course.Question{
		ID:            "q1",
		Type:          course.TypeMultipleChoice,
		Options:       []string{"red", "green", "blue"},
		CorrectAnswer: correct,
	}
}

func matchingQuestion(pairs []course.MatchingPair) *course.Question {
	return &course.Question{
		ID:       "qm",
		Type:     course.TypeMatching,
		Metadata: &course.Metadata{MatchingPairs: pairs},
	}
}

// matchingSubmission builds a submission whose item IDs mirror the authored
// pairs, mapping each left item to the right item at the given pair index.
func matchingSubmission(pairs []course.MatchingPair, mapping map[int]int) SubmittedAnswer {
	sub := SubmittedAnswer{
		QuestionID: "qm",
		Type:       course.TypeMatching,
		Matches:    make(map[string]string),
	}
	for i, p := range pairs {
		sub.LeftItems = append(sub.LeftItems, MatchItem{ID: "L" + string(rune('0'+i)), Content: p.Left})
		sub.RightItems = append(sub.RightItems, MatchItem{ID: "R" + string(rune('0'+i)), Content: p.Right})
	}
	for li, ri := range mapping {
		sub.Matches["L"+string(rune('0'+li))] = "R" + string(rune('0'+ri))
	}
	return sub
}

func TestEvaluate_MultipleChoice(t *testing.T) {
	q := mcQuestion("1")

	eval, err := Evaluate(q, SubmittedAnswer{QuestionID: "q1", Type: q.Type, Index: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eval.Correct {
		t.Fatal("index 1 should be correct")
	}
	if eval.AnswerText != "1" {
		t.Fatalf("unexpected answer text: %q", eval.AnswerText)
	}

	eval, err = Evaluate(q, SubmittedAnswer{QuestionID: "q1", Type: q.Type, Index: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Correct {
		t.Fatal("index 0 should be incorrect")
	}
}

func TestEvaluate_TrueFalse(t *testing.T) {
	q := &course.Question{
		ID:            "q2",
		Type:          course.TypeTrueFalse,
		Options:       []string{"True", "False"},
		CorrectAnswer: "0",
	}
	eval, err := Evaluate(q, SubmittedAnswer{QuestionID: "q2", Type: q.Type, Index: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eval.Correct {
		t.Fatal("expected correct")
	}
}

func TestEvaluate_Sequencing(t *testing.T) {
	q := &course.Question{
		ID:            "q3",
		Type:          course.TypeSequencing,
		CorrectAnswer: "2,0,1",
		Metadata:      &course.Metadata{SequenceItems: []string{"first", "second", "third"}},
	}

	eval, err := Evaluate(q, SubmittedAnswer{QuestionID: "q3", Type: q.Type, Order: []int{2, 0, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eval.Correct {
		t.Fatal("matching order should be correct")
	}
	if eval.AnswerText != "2,0,1" {
		t.Fatalf("answer text should round-trip, got %q", eval.AnswerText)
	}

	eval, err = Evaluate(q, SubmittedAnswer{QuestionID: "q3", Type: q.Type, Order: []int{0, 1, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Correct {
		t.Fatal("wrong order should be incorrect")
	}

	// A shorter submission never matches, even as a prefix.
	eval, err = Evaluate(q, SubmittedAnswer{QuestionID: "q3", Type: q.Type, Order: []int{2, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Correct {
		t.Fatal("partial order should be incorrect")
	}
}

func TestEvaluate_MatchingAllCorrect(t *testing.T) {
	pairs := []course.MatchingPair{
		{Left: "cat", Right: "meow"},
		{Left: "dog", Right: "woof"},
		{Left: "cow", Right: "moo"},
	}
	q := matchingQuestion(pairs)
	sub := matchingSubmission(pairs, map[int]int{0: 0, 1: 1, 2: 2})

	eval, err := Evaluate(q, sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eval.Correct {
		t.Fatal("full correct mapping should pass")
	}
	if eval.AnswerText != "3/3" {
		t.Fatalf("unexpected answer text: %q", eval.AnswerText)
	}
}

func TestEvaluate_MatchingMissingOne(t *testing.T) {
	pairs := []course.MatchingPair{
		{Left: "cat", Right: "meow"},
		{Left: "dog", Right: "woof"},
		{Left: "cow", Right: "moo"},
	}
	q := matchingQuestion(pairs)
	sub := matchingSubmission(pairs, map[int]int{0: 0, 1: 1})

	eval, err := Evaluate(q, sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Correct {
		t.Fatal("missing a mapping must fail the question")
	}
	if eval.AnswerText != "2/3" {
		t.Fatalf("unexpected answer text: %q", eval.AnswerText)
	}
}

func TestEvaluate_MatchingWrongPairing(t *testing.T) {
	pairs := []course.MatchingPair{
		{Left: "cat", Right: "meow"},
		{Left: "dog", Right: "woof"},
	}
	q := matchingQuestion(pairs)
	sub := matchingSubmission(pairs, map[int]int{0: 1, 1: 0})

	eval, err := Evaluate(q, sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Correct {
		t.Fatal("swapped mapping must fail")
	}
	if eval.AnswerText != "0/2" {
		t.Fatalf("unexpected answer text: %q", eval.AnswerText)
	}
}

func TestEvaluate_Skip(t *testing.T) {
	q := mcQuestion("1")
	eval, err := Evaluate(q, SubmittedAnswer{QuestionID: "q1", Type: q.Type, Skipped: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Correct {
		t.Fatal("skip is never correct")
	}
	if eval.AnswerText != SkippedAnswerText {
		t.Fatalf("unexpected answer text: %q", eval.AnswerText)
	}
}

func TestEvaluate_MalformedKeySurfaces(t *testing.T) {
	q := mcQuestion("nope")
	_, err := Evaluate(q, SubmittedAnswer{QuestionID: "q1", Type: q.Type, Index: 0})
	if err == nil {
		t.Fatal("expected error for malformed key")
	}
}
