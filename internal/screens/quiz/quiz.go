package quiz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/assessment"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/screens/results"
	"github.com/codifymate/caprep/internal/store"
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/layout"
)

// QuizScreen runs one practice or exam attempt. Practice grades each answer
// as it is confirmed; exam collects answers silently and submits the whole
// set at the end.
type QuizScreen struct {
	client *api.Client
	events store.EventRepo

	attempt *assessment.Attempt
	clock   *assessment.Clock
	budget  time.Duration

	choices       components.ChoiceList
	questionStart time.Time

	checking      bool
	noQuestions   bool
	errMsg        string
	clockBanner   string
	confirmQuit   bool
	confirmSubmit bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// NewPractice creates a practice run over one topic or subtopic selection.
func NewPractice(client *api.Client, events store.EventRepo, topic, subtopic string) *QuizScreen {
	return &QuizScreen{
		client:  client,
		events:  events,
		attempt: assessment.NewAttempt(assessment.ModePractice, topic, subtopic),
	}
}

// NewExam creates a timed exam run.
func NewExam(client *api.Client, events store.EventRepo, budget time.Duration) *QuizScreen {
	return &QuizScreen{
		client:  client,
		events:  events,
		attempt: assessment.NewAttempt(assessment.ModeExam, "", ""),
		budget:  budget,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.loadQuestions()
}

func (q *QuizScreen) Title() string {
	if q.attempt.Mode == assessment.ModeExam {
		return "Exam"
	}
	return "Practice"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.confirmQuit || q.confirmSubmit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if q.noQuestions || q.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if q.attempt.Mode == assessment.ModeExam {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Select"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←/→", Description: "Question"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if _, graded := q.attempt.ResultFor(q.currentID()); graded {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "Enter", Description: "Check answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return q.handleQuestionsLoaded(msg)

	case checkResultMsg:
		return q.handleCheckResult(msg)

	case examSubmittedMsg:
		return q.handleExamSubmitted(msg)

	case timerTickMsg:
		return q.handleTimerTick(msg)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) currentID() string {
	if cur := q.attempt.Current(); cur != nil {
		return cur.ID
	}
	return ""
}

// loadQuestions fetches the question set for this attempt.
func (q *QuizScreen) loadQuestions() tea.Cmd {
	client := q.client
	attemptID := q.attempt.ID
	mode := q.attempt.Mode
	sel := api.QuestionSelector{Topic: q.attempt.Topic, Subtopic: q.attempt.Subtopic}

	return func() tea.Msg {
		ctx := context.Background()

		var (
			questions []api.Question
			err       error
		)
		if mode == assessment.ModeExam {
			questions, err = client.ExamQuestions(ctx)
		} else {
			questions, err = client.Questions(ctx, sel)
		}

		return questionsLoadedMsg{AttemptID: attemptID, Questions: questions, Err: err}
	}
}

func (q *QuizScreen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.AttemptID != q.attempt.ID {
		return q, nil
	}

	if msg.Err != nil {
		q.errMsg = msg.Err.Error()
		return q, nil
	}

	now := time.Now()
	if err := q.attempt.Begin(msg.Questions, now); err != nil {
		if errors.Is(err, assessment.ErrNoQuestions) {
			// An empty set is a valid outcome, not a failure.
			q.noQuestions = true
			return q, nil
		}
		q.errMsg = err.Error()
		return q, nil
	}

	q.showCurrentQuestion(now)

	if q.attempt.Mode == assessment.ModeExam {
		q.clock = assessment.NewClock(q.budget, now)
		return q, q.tickCmd()
	}
	return q, nil
}

// showCurrentQuestion rebuilds the choice list for the question under the
// cursor, restoring any saved answer or graded result.
func (q *QuizScreen) showCurrentQuestion(now time.Time) {
	cur := q.attempt.Current()
	if cur == nil {
		return
	}

	q.choices = components.NewChoiceList(cur.Prompt, cur.Choices)
	q.questionStart = now

	if ans, ok := q.attempt.AnswerFor(cur.ID); ok {
		q.choices.SetChosen(ans.Choice)
	}
	if res, ok := q.attempt.ResultFor(cur.ID); ok {
		q.choices.Reveal(res.CorrectAnswer)
	}
}

func (q *QuizScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.AttemptID != q.attempt.ID || q.clock == nil {
		return q, nil
	}
	if q.attempt.Phase == assessment.PhaseCompleted {
		return q, nil
	}

	switch q.clock.Tick(msg.Time) {
	case assessment.WarnTenMinutes:
		q.clockBanner = "10 minutes remaining"
	case assessment.WarnFiveMinutes:
		q.clockBanner = "5 minutes remaining"
	case assessment.WarnOvertime:
		q.clockBanner = "Time is up — you can still finish and submit"
	}

	return q, q.tickCmd()
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" || q.noQuestions {
		if key == "esc" || key == "enter" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	if q.confirmQuit {
		switch key {
		case "y", "Y":
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			q.confirmQuit = false
		}
		return q, nil
	}

	if q.confirmSubmit {
		switch key {
		case "y", "Y":
			q.confirmSubmit = false
			return q, q.submitExam()
		case "n", "N", "esc":
			q.confirmSubmit = false
		}
		return q, nil
	}

	if q.attempt.Phase == assessment.PhaseSubmitting {
		return q, nil
	}
	if q.attempt.Phase != assessment.PhaseActive {
		if key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	switch key {
	case "esc":
		q.confirmQuit = true
		return q, nil
	case "enter":
		return q.handleEnter()
	}

	if q.attempt.Mode == assessment.ModeExam {
		switch key {
		case "left", "h", "p":
			q.savePending()
			q.attempt.Prev()
			q.showCurrentQuestion(time.Now())
			return q, nil
		case "right", "l", "n":
			q.savePending()
			q.attempt.Next()
			q.showCurrentQuestion(time.Now())
			return q, nil
		case "s":
			q.confirmSubmit = true
			return q, nil
		}
	}

	var cmd tea.Cmd
	q.choices, cmd = q.choices.Update(msg)
	return q, cmd
}

func (q *QuizScreen) handleEnter() (screen.Screen, tea.Cmd) {
	cur := q.attempt.Current()
	if cur == nil {
		return q, nil
	}

	if q.attempt.Mode == assessment.ModeExam {
		choice := q.choices.Choose()
		q.attempt.SaveAnswer(cur.ID, choice, q.questionSecs())
		if q.attempt.IsLast() {
			q.confirmSubmit = true
			return q, nil
		}
		q.attempt.Next()
		q.showCurrentQuestion(time.Now())
		return q, nil
	}

	// Practice: first enter grades, second enter moves on.
	if _, graded := q.attempt.ResultFor(cur.ID); graded {
		if q.attempt.IsLast() {
			q.attempt.CompleteSubmit(nil)
			return q, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: results.NewPractice(q.attempt)}
			}
		}
		q.attempt.Next()
		q.showCurrentQuestion(time.Now())
		return q, nil
	}

	if q.checking {
		return q, nil
	}
	return q, q.checkAnswer(cur.ID, q.choices.Choose())
}

// checkAnswer grades one practice answer against the server.
func (q *QuizScreen) checkAnswer(questionID, choice string) tea.Cmd {
	q.checking = true
	q.attempt.SaveAnswer(questionID, choice, q.questionSecs())

	client := q.client
	attemptID := q.attempt.ID
	return func() tea.Msg {
		res, err := client.CheckAnswer(context.Background(), questionID, choice)
		return checkResultMsg{AttemptID: attemptID, QuestionID: questionID, Result: res, Err: err}
	}
}

func (q *QuizScreen) handleCheckResult(msg checkResultMsg) (screen.Screen, tea.Cmd) {
	if msg.AttemptID != q.attempt.ID {
		return q, nil
	}
	q.checking = false

	if msg.Err != nil {
		// The chosen answer survives; the learner can retry the check.
		q.errMsgTransient(msg.Err)
		return q, nil
	}

	q.attempt.RecordResult(msg.QuestionID, *msg.Result)
	if cur := q.attempt.Current(); cur != nil && cur.ID == msg.QuestionID {
		q.choices.Reveal(msg.Result.CorrectAnswer)
	}

	ans, _ := q.attempt.AnswerFor(msg.QuestionID)
	return q, q.recordAttempt(msg.QuestionID, ans, msg.Result.IsCorrect)
}

// errMsgTransient shows a grading failure in the clock banner slot rather
// than the terminal error state, since the attempt can continue.
func (q *QuizScreen) errMsgTransient(err error) {
	q.clockBanner = "Check failed: " + err.Error()
}

// recordAttempt reports a graded answer for progress tracking and appends it
// to the local history. Both are fire-and-forget.
func (q *QuizScreen) recordAttempt(questionID string, ans assessment.Answer, correct bool) tea.Cmd {
	client := q.client
	events := q.events
	data := store.AttemptEventData{
		AttemptID:  q.attempt.ID.String(),
		Mode:       q.attempt.Mode.String(),
		Topic:      q.attempt.Topic,
		Subtopic:   q.attempt.Subtopic,
		QuestionID: questionID,
		UserAnswer: ans.Choice,
		Correct:    correct,
		TimeSecs:   ans.TimeSpent,
	}

	return func() tea.Msg {
		ctx := context.Background()
		if err := client.RecordAttempt(ctx, api.AttemptRecord{
			QuestionID:       questionID,
			UserAnswer:       ans.Choice,
			TimeSpentSeconds: ans.TimeSpent,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record attempt: %v\n", err)
		}
		if events != nil {
			if err := events.AppendAttempt(ctx, data); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to log attempt event: %v\n", err)
			}
		}
		return nil
	}
}

// savePending re-records the confirmed choice before navigating away, so a
// re-answered question carries its latest selection. A bare cursor position
// is not an answer and is never saved.
func (q *QuizScreen) savePending() {
	cur := q.attempt.Current()
	if cur == nil {
		return
	}
	if choice := q.choices.Chosen(); choice != "" {
		q.attempt.SaveAnswer(cur.ID, choice, q.questionSecs())
	}
}

func (q *QuizScreen) questionSecs() int {
	return int(time.Since(q.questionStart).Seconds())
}

// submitExam sends the collected answers. BeginSubmit rejects a second
// submission while one is in flight, so double keypresses yield one call.
func (q *QuizScreen) submitExam() tea.Cmd {
	q.savePending()
	if err := q.attempt.BeginSubmit(); err != nil {
		return nil
	}

	client := q.client
	attemptID := q.attempt.ID
	elapsed := int(q.clock.Elapsed(time.Now()).Seconds())
	sub := q.attempt.Submission(elapsed)

	return func() tea.Msg {
		res, err := client.SubmitExam(context.Background(), sub)
		return examSubmittedMsg{AttemptID: attemptID, Results: res, Err: err}
	}
}

func (q *QuizScreen) handleExamSubmitted(msg examSubmittedMsg) (screen.Screen, tea.Cmd) {
	if msg.AttemptID != q.attempt.ID {
		return q, nil
	}

	if msg.Err != nil {
		// Answers are intact; the learner can resubmit.
		q.attempt.FailSubmit()
		q.clockBanner = "Submit failed: " + msg.Err.Error()
		return q, nil
	}

	q.attempt.CompleteSubmit(msg.Results)

	events := q.events
	data := store.ExamEventData{
		AttemptID:        q.attempt.ID.String(),
		ScorePercentage:  msg.Results.ScorePercentage,
		Passed:           msg.Results.Passed,
		CorrectAnswers:   msg.Results.CorrectAnswers,
		IncorrectAnswers: msg.Results.IncorrectAnswers,
		TotalQuestions:   msg.Results.TotalQuestions,
		TotalTimeSecs:    msg.Results.TotalTime,
	}
	logCmd := func() tea.Msg {
		if events != nil {
			if err := events.AppendExamResult(context.Background(), data); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to log exam event: %v\n", err)
			}
		}
		return nil
	}

	examResults := msg.Results
	return q, tea.Batch(logCmd, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.NewExam(examResults)}
	})
}

// tickCmd schedules the next exam clock tick.
func (q *QuizScreen) tickCmd() tea.Cmd {
	attemptID := q.attempt.ID
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{AttemptID: attemptID, Time: t}
	})
}
