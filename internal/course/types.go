package course

import (
	"fmt"
	"strings"
)

// QuestionType is the closed set of question kinds the engine understands.
// Raw type strings from the remote service are normalized through
// ParseQuestionType at the ingestion boundary; unknown types never reach
// the engine.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeSequencing     QuestionType = "sequencing"
	TypeMatching       QuestionType = "matching"
)

// ParseQuestionType normalizes a raw type string from the service.
// Matching is case-insensitive. Unknown values return an error so the
// fetch layer can filter the question out.
func ParseQuestionType(raw string) (QuestionType, error) {
	switch QuestionType(strings.ToLower(strings.TrimSpace(raw))) {
	case TypeMultipleChoice:
		return TypeMultipleChoice, nil
	case TypeTrueFalse:
		return TypeTrueFalse, nil
	case TypeSequencing:
		return TypeSequencing, nil
	case TypeMatching:
		return TypeMatching, nil
	default:
		return "", fmt.Errorf("unsupported question type: %q", raw)
	}
}

// MatchingPair is one left/right content pair of a matching question.
type MatchingPair struct {
	Left  string
	Right string
}

// Metadata carries the type-specific payload a question may need beyond
// its plain option list.
type Metadata struct {
	// SequenceItems is the ordered list of items for sequencing questions,
	// in their original (correct-answer-relative) order.
	SequenceItems []string

	// MatchingPairs is the authored left/right pairing for matching questions.
	MatchingPairs []MatchingPair
}

// Question is an immutable course question, constructed once from a decoded
// remote record and never mutated afterwards.
type Question struct {
	// ID is the service-assigned question identifier.
	ID string

	// CourseID is the owning course.
	CourseID string

	// Timestamp is the video position in seconds at which the question
	// should interrupt playback. Never negative.
	Timestamp float64

	// Prompt is the question text shown to the learner.
	Prompt string

	// Type selects the answer encoding and presentation.
	Type QuestionType

	// Options is the ordered option list for multiple_choice and true_false
	// questions. May be empty for sequencing/matching.
	Options []string

	// CorrectAnswer is the raw correct-answer encoding. Its format depends
	// on Type: a zero-based index for multiple_choice/true_false, a
	// comma-joined index list for sequencing. Matching questions carry their
	// key in Metadata instead.
	CorrectAnswer string

	// Explanation is optional text shown after the learner answers.
	Explanation string

	// Metadata is the optional type-specific payload.
	Metadata *Metadata
}

// Course is a course record as served by the remote service.
type Course struct {
	ID              string
	Title           string
	Description     string
	VideoURL        string
	DurationSeconds float64
}

// SequenceItems returns the presentable items of a sequencing question,
// or nil when the metadata is missing.
func (q *Question) SequenceItems() []string {
	if q.Metadata == nil {
		return nil
	}
	return q.Metadata.SequenceItems
}

// MatchingPairs returns the authored pairs of a matching question, or nil
// when the metadata is missing.
func (q *Question) MatchingPairs() []MatchingPair {
	if q.Metadata == nil {
		return nil
	}
	return q.Metadata.MatchingPairs
}

// Displayable reports whether the question has enough content to present.
// Sequencing and matching questions without their metadata payload have
// zero presentable options and must be skipped by schedulers.
func (q *Question) Displayable() bool {
	switch q.Type {
	case TypeSequencing:
		return len(q.SequenceItems()) > 0
	case TypeMatching:
		return len(q.MatchingPairs()) > 0
	default:
		return len(q.Options) > 0
	}
}
