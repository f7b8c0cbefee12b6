package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rooshmintted/courseplay/internal/course"
)

// MalformedAnswerKeyError indicates a question's correct-answer encoding
// cannot be interpreted for its declared type. Such questions are skipped
// from scheduling rather than presented.
type MalformedAnswerKeyError struct {
	QuestionID string
	Reason     string
}

func (e *MalformedAnswerKeyError) Error() string {
	return fmt.Sprintf("malformed answer key for question %s: %s", e.QuestionID, e.Reason)
}

// AnswerKey is the typed, parsed view of a question's correct answer.
// Exactly one of the payload fields is meaningful, selected by Type.
type AnswerKey struct {
	Type course.QuestionType

	// Index is the correct zero-based option index for multiple_choice
	// and true_false questions.
	Index int

	// Order is the correct ordering for sequencing questions, expressed
	// as zero-based indices into the original item list.
	Order []int

	// Pairs is the correct left/right content pairing for matching
	// questions. Empty when the question carries no matching metadata.
	Pairs []course.MatchingPair
}

// DeriveAnswerKey parses a question's raw correct-answer encoding into an
// AnswerKey. Derivation is pure: the same question always yields the same
// key. Returns *MalformedAnswerKeyError when the encoding cannot be parsed
// for the declared type.
func DeriveAnswerKey(q *course.Question) (*AnswerKey, error) {
	switch q.Type {
	case course.TypeMultipleChoice, course.TypeTrueFalse:
		idx, err := parseIndex(q.CorrectAnswer)
		if err != nil {
			return nil, &MalformedAnswerKeyError{QuestionID: q.ID, Reason: err.Error()}
		}
		return &AnswerKey{Type: q.Type, Index: idx}, nil

	case course.TypeSequencing:
		order, err := parseIndexList(q.CorrectAnswer)
		if err != nil {
			return nil, &MalformedAnswerKeyError{QuestionID: q.ID, Reason: err.Error()}
		}
		return &AnswerKey{Type: q.Type, Order: order}, nil

	case course.TypeMatching:
		// The matching key lives in the authored pair metadata, not in the
		// raw answer string. Missing metadata means zero presentable pairs;
		// callers skip such questions via Displayable.
		return &AnswerKey{Type: q.Type, Pairs: q.MatchingPairs()}, nil

	default:
		// Unsupported types are filtered at ingestion; reaching here is a
		// programming error upstream.
		return nil, &MalformedAnswerKeyError{QuestionID: q.ID, Reason: fmt.Sprintf("unsupported type %q", q.Type)}
	}
}

// parseIndex parses a single zero-based option index.
func parseIndex(raw string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("not a numeric index: %q", raw)
	}
	if idx < 0 {
		return 0, fmt.Errorf("negative index: %d", idx)
	}
	return idx, nil
}

// parseIndexList parses a comma-joined list of zero-based indices, e.g. "2,0,1".
func parseIndexList(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty index list")
	}

	parts := strings.Split(raw, ",")
	order := make([]int, len(parts))
	for i, p := range parts {
		idx, err := parseIndex(p)
		if err != nil {
			return nil, err
		}
		order[i] = idx
	}
	return order, nil
}

// joinIndices renders an index list back to its canonical comma-joined form.
func joinIndices(order []int) string {
	parts := make([]string, len(order))
	for i, idx := range order {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}
