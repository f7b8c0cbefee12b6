package player

import (
	"time"

	"github.com/rooshmintted/courseplay/internal/course"
)

// courseLoadedMsg is sent when the course and its questions have been fetched.
type courseLoadedMsg struct {
	Course    *course.Course
	Questions []*course.Question
	Err       error
}

// playTickMsg is sent every second to advance simulated playback.
type playTickMsg time.Time

// answerSyncedMsg is sent when a background answer submission finishes.
type answerSyncedMsg struct {
	QuestionID string
	Err        error
}

// sessionEndMsg is sent to trigger the summary flow.
type sessionEndMsg struct{}
