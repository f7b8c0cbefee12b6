package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rooshmintted/courseplay/internal/course"
	"github.com/rooshmintted/courseplay/internal/quiz"
)

// API is the remote course service. Implementations must be safe for
// concurrent use; the player submits answer events from background commands
// while fetches may still be in flight.
type API interface {
	// FetchCourse retrieves course metadata by ID.
	FetchCourse(ctx context.Context, courseID string) (*course.Course, error)

	// FetchQuestions retrieves the course's questions sorted ascending by
	// timestamp. Questions with unknown types or unusable answer keys are
	// filtered out rather than surfaced as errors.
	FetchQuestions(ctx context.Context, courseID string) ([]*course.Question, error)

	// SubmitAnswerEvent records one answered or skipped question.
	SubmitAnswerEvent(ctx context.Context, event AnswerEvent) error

	// SubmitEnrollment registers the learner on a course.
	SubmitEnrollment(ctx context.Context, rec Enrollment) error
}

// AnswerEvent is the wire record for one answer submission.
type AnswerEvent struct {
	ID             string    `json:"id"`
	CourseID       string    `json:"course_id"`
	QuestionID     string    `json:"question_id"`
	QuestionType   string    `json:"question_type"`
	Answer         string    `json:"answer"`
	Correct        bool      `json:"correct"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// Enrollment is the wire record registering a learner on a course.
type Enrollment struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id"`
	UserID     string    `json:"user_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type courseRecord struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	VideoURL        string  `json:"video_url"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type matchingPairRecord struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type questionMetadataRecord struct {
	SequenceItems []string             `json:"sequence_items,omitempty"`
	MatchingPairs []matchingPairRecord `json:"matching_pairs,omitempty"`
}

type questionRecord struct {
	ID            string                  `json:"id"`
	CourseID      string                  `json:"course_id"`
	Timestamp     float64                 `json:"timestamp"`
	Question      string                  `json:"question"`
	Type          string                  `json:"type"`
	Options       []string                `json:"options"`
	CorrectAnswer string                  `json:"correct_answer"`
	Explanation   string                  `json:"explanation"`
	Metadata      *questionMetadataRecord `json:"metadata,omitempty"`
}

// HTTPAPI talks to the course service over HTTP.
type HTTPAPI struct {
	cfg    Config
	client *http.Client
}

var _ API = (*HTTPAPI)(nil)

// NewHTTPAPI creates an HTTP-backed API client.
func NewHTTPAPI(cfg Config) *HTTPAPI {
	return &HTTPAPI{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (a *HTTPAPI) FetchCourse(ctx context.Context, courseID string) (*course.Course, error) {
	if courseID == "" {
		return nil, &SyncError{Kind: KindInvalidRequest, Err: fmt.Errorf("missing identifier: course ID")}
	}

	body, err := a.get(ctx, "/courses/"+courseID)
	if err != nil {
		return nil, err
	}

	var rec courseRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, &SyncError{Kind: KindDecoding, Err: fmt.Errorf("decode course: %w", err)}
	}

	return &course.Course{
		ID:              rec.ID,
		Title:           rec.Title,
		Description:     rec.Description,
		VideoURL:        rec.VideoURL,
		DurationSeconds: rec.DurationSeconds,
	}, nil
}

func (a *HTTPAPI) FetchQuestions(ctx context.Context, courseID string) ([]*course.Question, error) {
	if courseID == "" {
		return nil, &SyncError{Kind: KindInvalidRequest, Err: fmt.Errorf("missing identifier: course ID")}
	}

	body, err := a.get(ctx, "/courses/"+courseID+"/questions")
	if err != nil {
		return nil, err
	}

	if err := validateQuestionPayload(body); err != nil {
		return nil, err
	}

	var recs []questionRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, &SyncError{Kind: KindDecoding, Err: fmt.Errorf("decode questions: %w", err)}
	}

	return decodeQuestions(recs), nil
}

func (a *HTTPAPI) SubmitAnswerEvent(ctx context.Context, event AnswerEvent) error {
	if event.QuestionID == "" {
		return &SyncError{Kind: KindInvalidRequest, Err: fmt.Errorf("missing identifier: question ID")}
	}
	return a.post(ctx, "/answer_events", event)
}

func (a *HTTPAPI) SubmitEnrollment(ctx context.Context, rec Enrollment) error {
	if rec.CourseID == "" || rec.UserID == "" {
		return &SyncError{Kind: KindInvalidRequest, Err: fmt.Errorf("missing identifier: course and user IDs")}
	}
	return a.post(ctx, "/enrollments", rec)
}

func (a *HTTPAPI) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url(path), nil)
	if err != nil {
		return nil, &SyncError{Kind: KindInvalidRequest, Err: err}
	}
	return a.do(req)
}

func (a *HTTPAPI) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &SyncError{Kind: KindInvalidRequest, Err: fmt.Errorf("encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url(path), bytes.NewReader(body))
	if err != nil {
		return &SyncError{Kind: KindInvalidRequest, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = a.do(req)
	return err
}

func (a *HTTPAPI) do(req *http.Request) ([]byte, error) {
	if a.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, Classify(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SyncError{
			Kind: statusKind(resp.StatusCode),
			Err:  fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, truncate(string(body), 200)),
		}
	}

	return body, nil
}

func (a *HTTPAPI) url(path string) string {
	return strings.TrimSuffix(a.cfg.BaseURL, "/") + path
}

// decodeQuestions converts wire records into engine questions. Records with
// unknown types or answer keys that cannot be derived are dropped so a single
// bad question never blocks the course. The result is sorted ascending by
// timestamp, which the scheduler relies on.
func decodeQuestions(recs []questionRecord) []*course.Question {
	questions := make([]*course.Question, 0, len(recs))
	for _, rec := range recs {
		qt, err := course.ParseQuestionType(rec.Type)
		if err != nil {
			continue
		}

		q := &course.Question{
			ID:            rec.ID,
			CourseID:      rec.CourseID,
			Timestamp:     rec.Timestamp,
			Prompt:        rec.Question,
			Type:          qt,
			Options:       rec.Options,
			CorrectAnswer: rec.CorrectAnswer,
			Explanation:   rec.Explanation,
		}
		if rec.Metadata != nil {
			meta := &course.Metadata{SequenceItems: rec.Metadata.SequenceItems}
			for _, p := range rec.Metadata.MatchingPairs {
				meta.MatchingPairs = append(meta.MatchingPairs, course.MatchingPair{Left: p.Left, Right: p.Right})
			}
			q.Metadata = meta
		}

		if _, err := quiz.DeriveAnswerKey(q); err != nil {
			continue
		}

		questions = append(questions, q)
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Timestamp < questions[j].Timestamp
	})
	return questions
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
