package player

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/rooshmintted/courseplay/internal/course"
	"github.com/rooshmintted/courseplay/internal/quiz"
	"github.com/rooshmintted/courseplay/internal/remote"
	"github.com/rooshmintted/courseplay/internal/store"
	"github.com/rooshmintted/courseplay/internal/ui/components"
	"github.com/rooshmintted/courseplay/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseWatching
	phaseQuestion
	phaseFeedback
	phaseSummary
)

// questionKind selects which input component is active.
type questionKind int

const (
	kindChoice questionKind = iota
	kindSequence
	kindMatching
)

// Player is the course playback model. Playback is simulated: a 1-second
// tick advances the position while watching, and pauses while a question
// is on screen.
type Player struct {
	api       remote.API
	eventRepo store.EventRepo
	courseID  string
	sessionID string

	phase     phase
	course    *course.Course
	questions []*course.Question
	progress  *quiz.Progress
	paused    bool

	current       *course.Question
	questionStart time.Time
	kind          questionKind
	choice        components.ChoiceList
	sequence      components.SequenceBuilder
	matcher       components.PairMatcher
	matchSub      quiz.SubmittedAnswer // prepared item lists for the active matcher

	lastEval    quiz.Evaluation
	lastSkipped bool

	spin        spinner.Model
	errMsg      string
	syncWarning string
	width       int
	height      int
}

// New creates a player for the given course.
func New(api remote.API, eventRepo store.EventRepo, courseID, sessionID string) *Player {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &Player{
		api:       api,
		eventRepo: eventRepo,
		courseID:  courseID,
		sessionID: sessionID,
		progress:  quiz.NewProgress(),
		spin:      spin,
		width:     80,
		height:    24,
	}
}

func (p *Player) Init() tea.Cmd {
	return tea.Batch(p.loadCourse(), p.spin.Tick)
}

// loadCourse fetches the course and its questions asynchronously.
func (p *Player) loadCourse() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		c, err := p.api.FetchCourse(ctx, p.courseID)
		if err != nil {
			return courseLoadedMsg{Err: err}
		}
		qs, err := p.api.FetchQuestions(ctx, p.courseID)
		if err != nil {
			return courseLoadedMsg{Err: err}
		}
		return courseLoadedMsg{Course: c, Questions: qs}
	}
}

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		return p, nil

	case courseLoadedMsg:
		return p.handleLoaded(msg)

	case playTickMsg:
		return p.handleTick()

	case answerSyncedMsg:
		if msg.Err != nil {
			p.syncWarning = "answer for " + msg.QuestionID + " not synced"
		}
		return p, nil

	case spinner.TickMsg:
		if p.phase != phaseLoading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd

	case sessionEndMsg:
		return p.handleSessionEnd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *Player) handleLoaded(msg courseLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}

	p.course = msg.Course
	p.questions = msg.Questions
	p.phase = phaseWatching

	_ = p.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID: p.sessionID,
		CourseID:  p.courseID,
		Action:    "started",
	})

	return p, tickCmd()
}

func (p *Player) handleTick() (tea.Model, tea.Cmd) {
	if p.phase != phaseWatching {
		return p, nil
	}
	if p.paused {
		return p, tickCmd()
	}

	if err := p.progress.RecordTime(p.progress.VideoTime() + 1); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	if q := quiz.NextDue(p.questions, p.progress); q != nil {
		return p, p.presentQuestion(q)
	}

	if p.course != nil && p.progress.VideoTime() >= p.course.DurationSeconds {
		return p, func() tea.Msg { return sessionEndMsg{} }
	}

	return p, tickCmd()
}

// presentQuestion pauses playback and sets up the input component for the
// question's type.
func (p *Player) presentQuestion(q *course.Question) tea.Cmd {
	p.current = q
	p.phase = phaseQuestion
	p.questionStart = time.Now()

	key, err := quiz.DeriveAnswerKey(q)
	if err != nil {
		// Unusable questions are filtered upstream; treat a bad key here as
		// a forced skip so playback is never stuck.
		return p.recordSkip()
	}

	switch q.Type {
	case course.TypeMultipleChoice, course.TypeTrueFalse:
		p.kind = kindChoice
		p.choice = components.NewChoiceList(q.Prompt, q.Options, key.Index)

	case course.TypeSequencing:
		p.kind = kindSequence
		p.sequence = components.NewSequenceBuilder(q.Prompt, q.SequenceItems())

	case course.TypeMatching:
		p.kind = kindMatching
		pairs := q.MatchingPairs()

		sub := quiz.SubmittedAnswer{
			QuestionID: q.ID,
			Type:       q.Type,
			Matches:    make(map[string]string),
		}
		left := make([]string, len(pairs))
		for i, pr := range pairs {
			left[i] = pr.Left
			sub.LeftItems = append(sub.LeftItems, quiz.MatchItem{ID: "L" + strconv.Itoa(i), Content: pr.Left})
		}

		// Shuffle the right column so pair order gives nothing away.
		perm := rand.Perm(len(pairs))
		right := make([]string, len(pairs))
		for pos, src := range perm {
			right[pos] = pairs[src].Right
			sub.RightItems = append(sub.RightItems, quiz.MatchItem{ID: "R" + strconv.Itoa(pos), Content: pairs[src].Right})
		}
		p.matchSub = sub
		p.matcher = components.NewPairMatcher(q.Prompt, left, right)
	}

	return nil
}

func (p *Player) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return p, tea.Quit
	}

	if p.errMsg != "" {
		return p, tea.Quit
	}

	switch p.phase {
	case phaseWatching:
		switch key {
		case "q", "esc":
			p.recordSessionEvent("abandoned")
			return p, tea.Quit
		case "space", " ":
			p.paused = !p.paused
		}
		return p, nil

	case phaseQuestion:
		if key == "s" {
			return p, p.recordSkip()
		}
		return p.updateQuestionInput(msg)

	case phaseFeedback:
		// Any key resumes playback.
		p.phase = phaseWatching
		p.current = nil
		return p, tickCmd()

	case phaseSummary:
		return p, tea.Quit
	}

	return p, nil
}

// updateQuestionInput forwards a key to the active component and submits
// once the component reports completion.
func (p *Player) updateQuestionInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch p.kind {
	case kindChoice:
		p.choice, _ = p.choice.Update(msg)
		if p.choice.Submitted {
			return p.submit(quiz.SubmittedAnswer{
				QuestionID: p.current.ID,
				Type:       p.current.Type,
				Index:      p.choice.ChosenIndex,
			})
		}

	case kindSequence:
		p.sequence, _ = p.sequence.Update(msg)
		if p.sequence.Submitted {
			return p.submit(quiz.SubmittedAnswer{
				QuestionID: p.current.ID,
				Type:       p.current.Type,
				Order:      p.sequence.Order,
			})
		}

	case kindMatching:
		p.matcher, _ = p.matcher.Update(msg)
		if p.matcher.Submitted {
			sub := p.matchSub
			for li, ri := range p.matcher.Pairs {
				sub.Matches[sub.LeftItems[li].ID] = sub.RightItems[ri].ID
			}
			return p.submit(sub)
		}
	}

	return p, nil
}

// submit evaluates the answer, records it, and kicks off the background sync.
func (p *Player) submit(sub quiz.SubmittedAnswer) (tea.Model, tea.Cmd) {
	sub.ResponseTimeMs = int(time.Since(p.questionStart).Milliseconds())

	eval, err := quiz.Evaluate(p.current, sub)
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	if err := p.progress.RecordAnswer(p.current.ID, eval); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	p.lastEval = eval
	p.lastSkipped = false
	p.phase = phaseFeedback

	return p, p.syncAnswer(p.current, eval, sub.ResponseTimeMs)
}

// recordSkip marks the current question skipped and resumes playback
// immediately; skips show no feedback overlay.
func (p *Player) recordSkip() tea.Cmd {
	q := p.current
	if q == nil {
		return nil
	}

	if err := p.progress.RecordSkip(q.ID); err != nil {
		p.errMsg = err.Error()
		return nil
	}

	eval := quiz.Evaluation{Correct: false, AnswerText: quiz.SkippedAnswerText}
	elapsed := int(time.Since(p.questionStart).Milliseconds())

	p.lastEval = eval
	p.lastSkipped = true
	p.phase = phaseWatching
	p.current = nil

	return tea.Batch(p.syncAnswer(q, eval, elapsed), tickCmd())
}

// syncAnswer submits the answer event in the background. Failures surface
// as a warning line, never as a blocked session.
func (p *Player) syncAnswer(q *course.Question, eval quiz.Evaluation, responseTimeMs int) tea.Cmd {
	event := remote.AnswerEvent{
		ID:             uuid.New().String(),
		CourseID:       p.courseID,
		QuestionID:     q.ID,
		QuestionType:   string(q.Type),
		Answer:         eval.AnswerText,
		Correct:        eval.Correct,
		ResponseTimeMs: int64(responseTimeMs),
		SubmittedAt:    time.Now().UTC(),
	}
	return func() tea.Msg {
		err := p.api.SubmitAnswerEvent(context.Background(), event)
		return answerSyncedMsg{QuestionID: q.ID, Err: err}
	}
}

func (p *Player) handleSessionEnd() (tea.Model, tea.Cmd) {
	p.phase = phaseSummary
	p.recordSessionEvent("completed")
	return p, nil
}

func (p *Player) recordSessionEvent(action string) {
	_ = p.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:       p.sessionID,
		CourseID:        p.courseID,
		Action:          action,
		QuestionsServed: p.progress.TotalAnswered(),
		CorrectAnswers:  p.progress.CorrectCount(),
		VideoSeconds:    p.progress.VideoTime(),
	})
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}
