package quiz

import (
	"errors"
	"testing"

	"github.com/rooshmintted/courseplay/internal/course"
)

func TestDeriveAnswerKey_Index(t *testing.T) {
	q := &course.Question{ID: "q1", Type: course.TypeMultipleChoice, CorrectAnswer: "1"}
	key, err := DeriveAnswerKey(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.Index != 1 {
		t.Fatalf("expected index 1, got %d", key.Index)
	}

	tf := &course.Question{ID: "q2", Type: course.TypeTrueFalse, CorrectAnswer: " 0 "}
	key, err = DeriveAnswerKey(tf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.Index != 0 {
		t.Fatalf("expected index 0, got %d", key.Index)
	}
}

func TestDeriveAnswerKey_Order(t *testing.T) {
	q := &course.Question{ID: "q1", Type: course.TypeSequencing, CorrectAnswer: "2,0,1"}
	key, err := DeriveAnswerKey(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ordersEqual(key.Order, []int{2, 0, 1}) {
		t.Fatalf("unexpected order: %v", key.Order)
	}
}

func TestDeriveAnswerKey_Malformed(t *testing.T) {
	cases := []*course.Question{
		{ID: "a", Type: course.TypeMultipleChoice, CorrectAnswer: "two"},
		{ID: "b", Type: course.TypeMultipleChoice, CorrectAnswer: "-1"},
		{ID: "c", Type: course.TypeTrueFalse, CorrectAnswer: ""},
		{ID: "d", Type: course.TypeSequencing, CorrectAnswer: "2,x,1"},
		{ID: "e", Type: course.TypeSequencing, CorrectAnswer: ""},
	}
	for _, q := range cases {
		_, err := DeriveAnswerKey(q)
		if err == nil {
			t.Fatalf("question %s: expected error", q.ID)
		}
		var malformed *MalformedAnswerKeyError
		if !errors.As(err, &malformed) {
			t.Fatalf("question %s: expected MalformedAnswerKeyError, got %T", q.ID, err)
		}
		if malformed.QuestionID != q.ID {
			t.Fatalf("error carries question %s, want %s", malformed.QuestionID, q.ID)
		}
	}
}

func TestDeriveAnswerKey_MatchingWithoutMetadata(t *testing.T) {
	q := &course.Question{ID: "q1", Type: course.TypeMatching}
	key, err := DeriveAnswerKey(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(key.Pairs) != 0 {
		t.Fatalf("expected empty pair set, got %v", key.Pairs)
	}
}

func TestDeriveAnswerKey_Idempotent(t *testing.T) {
	q := &course.Question{ID: "q1", Type: course.TypeSequencing, CorrectAnswer: "1,0"}
	first, err := DeriveAnswerKey(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := DeriveAnswerKey(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ordersEqual(first.Order, second.Order) {
		t.Fatalf("derivation not stable: %v vs %v", first.Order, second.Order)
	}
}
