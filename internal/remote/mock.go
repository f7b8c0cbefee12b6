package remote

import (
	"context"
	"fmt"
	"sync"

	"github.com/rooshmintted/courseplay/internal/course"
)

// MockAPI is a canned-response API for tests and offline previews. Queued
// results are consumed FIFO per method; an empty queue yields a not-found
// error so misconfigured tests fail loudly.
type MockAPI struct {
	mu sync.Mutex

	courseResults   []mockResult[*course.Course]
	questionResults []mockResult[[]*course.Question]
	submitErrs      []error
	enrollErrs      []error

	FetchCourseCalls    int
	FetchQuestionsCalls int
	SubmitCalls         int
	EnrollCalls         int

	SubmittedEvents []AnswerEvent
	Enrollments     []Enrollment
}

type mockResult[T any] struct {
	value T
	err   error
}

var _ API = (*MockAPI)(nil)

// NewMockAPI creates an empty mock.
func NewMockAPI() *MockAPI {
	return &MockAPI{}
}

// QueueCourse queues a FetchCourse result.
func (m *MockAPI) QueueCourse(c *course.Course, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courseResults = append(m.courseResults, mockResult[*course.Course]{value: c, err: err})
}

// QueueQuestions queues a FetchQuestions result.
func (m *MockAPI) QueueQuestions(qs []*course.Question, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questionResults = append(m.questionResults, mockResult[[]*course.Question]{value: qs, err: err})
}

// QueueSubmitError queues a SubmitAnswerEvent result; nil means success.
func (m *MockAPI) QueueSubmitError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitErrs = append(m.submitErrs, err)
}

// QueueEnrollError queues a SubmitEnrollment result; nil means success.
func (m *MockAPI) QueueEnrollError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enrollErrs = append(m.enrollErrs, err)
}

func (m *MockAPI) FetchCourse(ctx context.Context, courseID string) (*course.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCourseCalls++

	if len(m.courseResults) == 0 {
		return nil, &SyncError{Kind: KindNotFound, Err: fmt.Errorf("mock: no course queued for %s", courseID)}
	}
	res := m.courseResults[0]
	m.courseResults = m.courseResults[1:]
	return res.value, res.err
}

func (m *MockAPI) FetchQuestions(ctx context.Context, courseID string) ([]*course.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchQuestionsCalls++

	if len(m.questionResults) == 0 {
		return nil, &SyncError{Kind: KindNotFound, Err: fmt.Errorf("mock: no questions queued for %s", courseID)}
	}
	res := m.questionResults[0]
	m.questionResults = m.questionResults[1:]
	return res.value, res.err
}

func (m *MockAPI) SubmitAnswerEvent(ctx context.Context, event AnswerEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmitCalls++

	var err error
	if len(m.submitErrs) > 0 {
		err = m.submitErrs[0]
		m.submitErrs = m.submitErrs[1:]
	}
	if err == nil {
		m.SubmittedEvents = append(m.SubmittedEvents, event)
	}
	return err
}

func (m *MockAPI) SubmitEnrollment(ctx context.Context, rec Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnrollCalls++

	var err error
	if len(m.enrollErrs) > 0 {
		err = m.enrollErrs[0]
		m.enrollErrs = m.enrollErrs[1:]
	}
	if err == nil {
		m.Enrollments = append(m.Enrollments, rec)
	}
	return err
}
