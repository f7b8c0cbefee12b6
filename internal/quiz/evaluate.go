package quiz

import (
	"fmt"
	"strconv"

	"github.com/rooshmintted/courseplay/internal/course"
)

// SkippedAnswerText is the canonical answer text recorded for a skipped question.
const SkippedAnswerText = "skipped"

// MatchItem is one selectable item of a matching question as presented to
// the learner. IDs are assigned by the presentation layer (it shuffles the
// right-hand column); evaluation resolves them back to content.
type MatchItem struct {
	ID      string
	Content string
}

// SubmittedAnswer is a learner submission as produced by the presentation
// layer. Exactly one payload field is meaningful, selected by Type, unless
// Skipped is set.
type SubmittedAnswer struct {
	QuestionID string
	Type       course.QuestionType

	// Skipped marks a skip action; no payload is evaluated.
	Skipped bool

	// Index is the chosen option for multiple_choice and true_false.
	Index int

	// Order is the chosen ordering for sequencing, as zero-based indices
	// into the original item list.
	Order []int

	// Matches maps left item IDs to right item IDs for matching questions.
	Matches map[string]string

	// LeftItems and RightItems are the item lists the Matches IDs refer to,
	// in their presented order.
	LeftItems  []MatchItem
	RightItems []MatchItem

	// ResponseTimeMs is how long the learner took, when known. Never negative.
	ResponseTimeMs int
}

// Evaluation is the outcome of evaluating a submission.
type Evaluation struct {
	// Correct reports whether the submission matched the answer key.
	Correct bool

	// AnswerText is the canonical string form of the submission, stored
	// locally and sent to the remote service. Comma-joined indices for
	// sequencing, "correct/total" for matching, "skipped" for skips.
	AnswerText string
}

// Evaluate checks a submission against a question's answer key. It is
// stateless and pure: at-most-once acceptance per question is enforced by
// Progress, not here.
func Evaluate(q *course.Question, sub SubmittedAnswer) (Evaluation, error) {
	if sub.Skipped {
		return Evaluation{Correct: false, AnswerText: SkippedAnswerText}, nil
	}

	key, err := DeriveAnswerKey(q)
	if err != nil {
		return Evaluation{}, err
	}

	switch q.Type {
	case course.TypeMultipleChoice, course.TypeTrueFalse:
		return Evaluation{
			Correct:    sub.Index == key.Index,
			AnswerText: strconv.Itoa(sub.Index),
		}, nil

	case course.TypeSequencing:
		return Evaluation{
			Correct:    ordersEqual(sub.Order, key.Order),
			AnswerText: joinIndices(sub.Order),
		}, nil

	case course.TypeMatching:
		return evaluateMatching(key, sub), nil

	default:
		return Evaluation{}, &MalformedAnswerKeyError{QuestionID: q.ID, Reason: fmt.Sprintf("unsupported type %q", q.Type)}
	}
}

// ordersEqual reports element-wise equality of two index lists.
func ordersEqual(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// evaluateMatching scores a matching submission all-or-nothing: every
// submitted left item must resolve to its paired right content, and the
// submission must cover exactly the full pair set. Missing or extra
// mappings both fail the question; the answer text still reports how many
// mappings were right.
func evaluateMatching(key *AnswerKey, sub SubmittedAnswer) Evaluation {
	pairSet := make(map[string]string, len(key.Pairs))
	for _, p := range key.Pairs {
		pairSet[p.Left] = p.Right
	}

	leftByID := itemContentByID(sub.LeftItems)
	rightByID := itemContentByID(sub.RightItems)

	correctMatches := 0
	allMatched := true
	for leftID, rightID := range sub.Matches {
		left, okL := leftByID[leftID]
		right, okR := rightByID[rightID]
		want, okPair := pairSet[left]
		if okL && okR && okPair && want == right {
			correctMatches++
		} else {
			allMatched = false
		}
	}

	total := len(key.Pairs)
	correct := allMatched &&
		correctMatches == total &&
		len(sub.Matches) == total

	return Evaluation{
		Correct:    correct,
		AnswerText: fmt.Sprintf("%d/%d", correctMatches, total),
	}
}

func itemContentByID(items []MatchItem) map[string]string {
	m := make(map[string]string, len(items))
	for _, it := range items {
		m[it.ID] = it.Content
	}
	return m
}
