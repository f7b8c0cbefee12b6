package quiz

import "github.com/rooshmintted/courseplay/internal/course"

// NextDue returns the question that should interrupt playback now, or nil.
//
// A question is due when the playback position has reached its trigger
// timestamp and it has not been answered or skipped. Among due questions
// the earliest in the list wins; the fetch layer delivers questions sorted
// ascending by timestamp, so this is the lowest-timestamp due question with
// ties broken by original order. Questions with zero presentable options
// are never surfaced.
//
// NextDue is a pure query over the question list and progress: it mutates
// nothing, and transitions out of the due state happen only through
// Progress.RecordAnswer / Progress.RecordSkip.
func NextDue(questions []*course.Question, p *Progress) *course.Question {
	now := p.VideoTime()
	for _, q := range questions {
		if q.Timestamp > now {
			// Sorted ascending: nothing later can be due either.
			return nil
		}
		if p.IsAnswered(q.ID) || !q.Displayable() {
			continue
		}
		return q
	}
	return nil
}
