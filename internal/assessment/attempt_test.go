package assessment

import (
	"errors"
	"testing"
	"time"

	"github.com/codifymate/caprep/internal/api"
)

func questions(n int) []api.Question {
	qs := make([]api.Question, n)
	for i := range qs {
		qs[i] = api.Question{
			ID:      string(rune('a' + i)),
			Prompt:  "?",
			Choices: []string{"A", "B", "C", "D"},
		}
	}
	return qs
}

func activeAttempt(t *testing.T, mode Mode, n int) *Attempt {
	t.Helper()
	a := NewAttempt(mode, "contracts", "")
	if err := a.Begin(questions(n), time.Now()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	return a
}

func TestBeginEmptySet(t *testing.T) {
	a := NewAttempt(ModePractice, "contracts", "")
	err := a.Begin(nil, time.Now())
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Begin = %v, want ErrNoQuestions", err)
	}
	if a.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", a.Phase)
	}
	if a.Current() != nil {
		t.Error("no current question before Begin")
	}
}

func TestAttemptIDsAreUnique(t *testing.T) {
	a := NewAttempt(ModeExam, "", "")
	b := NewAttempt(ModeExam, "", "")
	if a.ID == b.ID {
		t.Error("two attempts share an ID")
	}
}

func TestGoToOutOfRangeIsNoOp(t *testing.T) {
	a := activeAttempt(t, ModeExam, 3)
	a.GoTo(1)

	a.GoTo(-1)
	if a.Index != 1 {
		t.Errorf("index = %d after GoTo(-1), want 1", a.Index)
	}
	a.GoTo(3)
	if a.Index != 1 {
		t.Errorf("index = %d after GoTo(3), want 1", a.Index)
	}

	a.GoTo(2)
	if a.Index != 2 {
		t.Errorf("index = %d, want 2", a.Index)
	}
}

func TestNextPrevClampAtEdges(t *testing.T) {
	a := activeAttempt(t, ModeExam, 2)

	a.Prev()
	if !a.IsFirst() {
		t.Error("Prev on first question should not move")
	}
	a.Next()
	if !a.IsLast() {
		t.Error("expected last question")
	}
	a.Next()
	if a.Index != 1 {
		t.Errorf("index = %d after Next on last, want 1", a.Index)
	}
}

func TestSaveAnswerOverwrites(t *testing.T) {
	a := activeAttempt(t, ModeExam, 3)

	a.SaveAnswer("a", "B", 12)
	a.SaveAnswer("b", "C", 8)
	a.SaveAnswer("a", "D", 20)

	if a.AnsweredCount() != 2 {
		t.Errorf("answered = %d, want 2", a.AnsweredCount())
	}
	ans, ok := a.AnswerFor("a")
	if !ok || ans.Choice != "D" || ans.TimeSpent != 20 {
		t.Errorf("answer for a = %+v", ans)
	}
}

func TestResultsSurviveNavigation(t *testing.T) {
	a := activeAttempt(t, ModePractice, 3)

	a.SaveAnswer("a", "B", 5)
	a.RecordResult("a", api.CheckResult{IsCorrect: false, CorrectAnswer: "C", Explanation: "because"})

	a.Next()
	a.Next()
	a.GoTo(0)

	res, ok := a.ResultFor("a")
	if !ok {
		t.Fatal("result lost after navigation")
	}
	if res.CorrectAnswer != "C" || res.Explanation != "because" {
		t.Errorf("result = %+v", res)
	}
}

func TestBeginSubmitOnlyFromActive(t *testing.T) {
	a := activeAttempt(t, ModeExam, 2)

	if err := a.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	if a.Phase != PhaseSubmitting {
		t.Errorf("phase = %v, want submitting", a.Phase)
	}

	// Pressing submit again while in flight must be rejected.
	if err := a.BeginSubmit(); !errors.Is(err, ErrNotActive) {
		t.Errorf("second BeginSubmit = %v, want ErrNotActive", err)
	}

	a.CompleteSubmit(&api.ExamResults{Passed: true})
	if err := a.BeginSubmit(); !errors.Is(err, ErrNotActive) {
		t.Errorf("BeginSubmit after completion = %v, want ErrNotActive", err)
	}
}

func TestFailSubmitReturnsToActive(t *testing.T) {
	a := activeAttempt(t, ModeExam, 2)
	_ = a.BeginSubmit()

	a.FailSubmit()
	if a.Phase != PhaseActive {
		t.Errorf("phase = %v, want active", a.Phase)
	}

	// A second submit is allowed after a failed one.
	if err := a.BeginSubmit(); err != nil {
		t.Errorf("resubmit: %v", err)
	}
}

func TestSubmissionOrderedAndSparse(t *testing.T) {
	a := activeAttempt(t, ModeExam, 4)

	// Answer out of order and skip one.
	a.SaveAnswer("c", "A", 3)
	a.SaveAnswer("a", "B", 7)
	a.SaveAnswer("d", "D", 9)

	sub := a.Submission(19)
	if sub.TotalTime != 19 {
		t.Errorf("total time = %d", sub.TotalTime)
	}
	if len(sub.Answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(sub.Answers))
	}
	wantOrder := []string{"a", "c", "d"}
	for i, want := range wantOrder {
		if sub.Answers[i].QuestionID != want {
			t.Errorf("answers[%d] = %q, want %q", i, sub.Answers[i].QuestionID, want)
		}
	}
}
