package assessment

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/codifymate/caprep/internal/api"
)

// Mode distinguishes the two assessment flows.
type Mode int

const (
	// ModePractice grades each answer immediately and shows the explanation
	// before moving on.
	ModePractice Mode = iota

	// ModeExam collects answers silently and grades the whole set on submit.
	ModeExam
)

func (m Mode) String() string {
	if m == ModeExam {
		return "exam"
	}
	return "practice"
}

// Phase is the attempt lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseActive
	PhaseSubmitting
	PhaseCompleted
)

var (
	// ErrNoQuestions reports an empty question set. The attempt never
	// becomes active.
	ErrNoQuestions = errors.New("no questions available")

	// ErrNotActive reports a submit request outside the active phase.
	ErrNotActive = errors.New("attempt is not active")
)

// Answer is one recorded answer, keyed by question in the attempt.
type Answer struct {
	QuestionID string
	Choice     string
	TimeSpent  int
}

// Attempt is the state container for one practice or exam run. Each run gets
// a unique ID; responses to questions tagged with a different ID belong to an
// abandoned run and are dropped by the caller.
type Attempt struct {
	ID       uuid.UUID
	Mode     Mode
	Topic    string
	Subtopic string

	Phase     Phase
	Questions []api.Question
	Index     int
	StartedAt time.Time

	answers map[string]Answer
	results map[string]api.CheckResult

	ExamResults *api.ExamResults
}

// NewAttempt creates an attempt in the loading phase.
func NewAttempt(mode Mode, topic, subtopic string) *Attempt {
	return &Attempt{
		ID:       uuid.New(),
		Mode:     mode,
		Topic:    topic,
		Subtopic: subtopic,
		Phase:    PhaseLoading,
		answers:  map[string]Answer{},
		results:  map[string]api.CheckResult{},
	}
}

// Begin installs the fetched question set and activates the attempt.
// An empty set is rejected and the attempt stays in loading.
func (a *Attempt) Begin(questions []api.Question, now time.Time) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	a.Questions = questions
	a.Index = 0
	a.StartedAt = now
	a.Phase = PhaseActive
	return nil
}

// Current returns the question at the cursor, or nil before Begin.
func (a *Attempt) Current() *api.Question {
	if a.Index < 0 || a.Index >= len(a.Questions) {
		return nil
	}
	return &a.Questions[a.Index]
}

// SaveAnswer records or overwrites the answer for a question. Re-answering
// replaces the previous choice; the map never grows beyond one entry per
// question.
func (a *Attempt) SaveAnswer(questionID, choice string, timeSpent int) {
	a.answers[questionID] = Answer{
		QuestionID: questionID,
		Choice:     choice,
		TimeSpent:  timeSpent,
	}
}

// AnswerFor returns the recorded answer for a question.
func (a *Attempt) AnswerFor(questionID string) (Answer, bool) {
	ans, ok := a.answers[questionID]
	return ans, ok
}

// RecordResult stores a grading result. Results persist across navigation:
// revisiting a graded question shows its stored outcome instead of allowing
// a second submission.
func (a *Attempt) RecordResult(questionID string, res api.CheckResult) {
	a.results[questionID] = res
}

// ResultFor returns the stored grading result for a question.
func (a *Attempt) ResultFor(questionID string) (api.CheckResult, bool) {
	res, ok := a.results[questionID]
	return res, ok
}

// GoTo moves the cursor to index i. Out-of-range targets are ignored and
// the cursor stays put.
func (a *Attempt) GoTo(i int) {
	if i < 0 || i >= len(a.Questions) {
		return
	}
	a.Index = i
}

// Next advances the cursor by one.
func (a *Attempt) Next() { a.GoTo(a.Index + 1) }

// Prev moves the cursor back by one.
func (a *Attempt) Prev() { a.GoTo(a.Index - 1) }

// IsFirst reports whether the cursor is on the first question.
func (a *Attempt) IsFirst() bool { return a.Index == 0 }

// IsLast reports whether the cursor is on the last question.
func (a *Attempt) IsLast() bool { return a.Index == len(a.Questions)-1 }

// AnsweredCount returns how many questions have a recorded answer.
func (a *Attempt) AnsweredCount() int { return len(a.answers) }

// Total returns the question count.
func (a *Attempt) Total() int { return len(a.Questions) }

// BeginSubmit transitions to the submitting phase. Only valid from the
// active phase, so a double submit is rejected.
func (a *Attempt) BeginSubmit() error {
	if a.Phase != PhaseActive {
		return ErrNotActive
	}
	a.Phase = PhaseSubmitting
	return nil
}

// CompleteSubmit stores the graded results and completes the attempt.
func (a *Attempt) CompleteSubmit(results *api.ExamResults) {
	a.ExamResults = results
	a.Phase = PhaseCompleted
}

// FailSubmit returns the attempt to the active phase so the user can retry.
func (a *Attempt) FailSubmit() {
	if a.Phase == PhaseSubmitting {
		a.Phase = PhaseActive
	}
}

// Submission builds the grading payload: recorded answers in question
// order. Unanswered questions are omitted.
func (a *Attempt) Submission(totalTime int) api.ExamSubmission {
	answers := make([]api.ExamAnswer, 0, len(a.answers))
	for _, q := range a.Questions {
		ans, ok := a.answers[q.ID]
		if !ok {
			continue
		}
		answers = append(answers, api.ExamAnswer{
			QuestionID: ans.QuestionID,
			UserAnswer: ans.Choice,
			TimeSpent:  ans.TimeSpent,
		})
	}
	return api.ExamSubmission{Answers: answers, TotalTime: totalTime}
}
