package quiz

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/assessment"
	"github.com/codifymate/caprep/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []api.Question {
	return []api.Question{
		{
			ID:      "q1",
			Prompt:  "Which agency licenses real estate brokers in California?",
			Choices: []string{"DRE", "HUD", "FHA", "CalHFA"},
			Topic:   "licensing",
		},
		{
			ID:      "q2",
			Prompt:  "What is the standard depth of a commercial acre?",
			Choices: []string{"36,000 sq ft", "43,560 sq ft", "40,000 sq ft", "45,000 sq ft"},
			Topic:   "licensing",
		},
		{
			ID:      "q3",
			Prompt:  "Which deed offers the grantee the most protection?",
			Choices: []string{"Grant deed", "Quitclaim deed", "Warranty deed", "Trust deed"},
			Topic:   "licensing",
		},
	}
}

func activePractice(t *testing.T) *QuizScreen {
	t.Helper()
	q := NewPractice(nil, nil, "licensing", "")
	scr, _ := q.Update(questionsLoadedMsg{AttemptID: q.attempt.ID, Questions: testQuestions()})
	qs := scr.(*QuizScreen)
	if qs.attempt.Phase != assessment.PhaseActive {
		t.Fatal("expected active attempt after questions loaded")
	}
	return qs
}

func activeExam(t *testing.T, budget time.Duration) *QuizScreen {
	t.Helper()
	q := NewExam(nil, nil, budget)
	scr, _ := q.Update(questionsLoadedMsg{AttemptID: q.attempt.ID, Questions: testQuestions()})
	qs := scr.(*QuizScreen)
	if qs.clock == nil {
		t.Fatal("expected exam clock after questions loaded")
	}
	return qs
}

func TestQuizScreen_Title(t *testing.T) {
	if got := NewPractice(nil, nil, "", "").Title(); got != "Practice" {
		t.Errorf("Title = %q, want %q", got, "Practice")
	}
	if got := NewExam(nil, nil, 0).Title(); got != "Exam" {
		t.Errorf("Title = %q, want %q", got, "Exam")
	}
}

func TestQuizScreen_StaleQuestionsDropped(t *testing.T) {
	q := NewPractice(nil, nil, "licensing", "")
	scr, _ := q.Update(questionsLoadedMsg{AttemptID: uuid.New(), Questions: testQuestions()})
	qs := scr.(*QuizScreen)

	if qs.attempt.Phase != assessment.PhaseLoading {
		t.Error("expected a mismatched attempt ID to leave the screen loading")
	}
}

func TestQuizScreen_NoQuestions(t *testing.T) {
	q := NewPractice(nil, nil, "licensing", "")
	scr, _ := q.Update(questionsLoadedMsg{AttemptID: q.attempt.ID})
	qs := scr.(*QuizScreen)

	if !qs.noQuestions {
		t.Error("expected empty-set display state")
	}
	if qs.errMsg != "" {
		t.Errorf("errMsg = %q, want empty", qs.errMsg)
	}

	// Esc leaves the screen.
	_, cmd := qs.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Error("expected a command to leave the screen")
	}
}

func TestQuizScreen_LoadError(t *testing.T) {
	q := NewPractice(nil, nil, "licensing", "")
	scr, _ := q.Update(questionsLoadedMsg{AttemptID: q.attempt.ID, Err: errors.New("connection refused")})
	qs := scr.(*QuizScreen)

	if qs.errMsg == "" {
		t.Error("expected error state after failed load")
	}
	if view := qs.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

func TestQuizScreen_PracticeCheckFlow(t *testing.T) {
	q := activePractice(t)

	// Confirm the highlighted choice.
	scr, cmd := q.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)
	if cmd == nil {
		t.Fatal("expected a grading command")
	}
	if !qs.checking {
		t.Error("expected checking state while the grade is in flight")
	}
	if _, ok := qs.attempt.AnswerFor("q1"); !ok {
		t.Error("expected the answer to be saved before grading")
	}

	// A second enter while checking is a no-op.
	_, cmd = qs.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command while a check is in flight")
	}

	scr, _ = qs.Update(checkResultMsg{
		AttemptID:  qs.attempt.ID,
		QuestionID: "q1",
		Result:     &api.CheckResult{IsCorrect: true, CorrectAnswer: "DRE", Explanation: "The DRE licenses brokers."},
	})
	qs = scr.(*QuizScreen)

	if qs.checking {
		t.Error("expected checking to clear after the result arrives")
	}
	res, ok := qs.attempt.ResultFor("q1")
	if !ok {
		t.Fatal("expected the grading result to be recorded")
	}
	if !res.IsCorrect {
		t.Error("expected a correct verdict")
	}

	// Enter on a graded question advances to the next one.
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)
	if qs.attempt.Index != 1 {
		t.Errorf("Index = %d, want 1", qs.attempt.Index)
	}
}

func TestQuizScreen_PracticeCheckFailure(t *testing.T) {
	q := activePractice(t)

	scr, _ := q.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	scr, _ = qs.Update(checkResultMsg{
		AttemptID:  qs.attempt.ID,
		QuestionID: "q1",
		Err:        errors.New("timeout"),
	})
	qs = scr.(*QuizScreen)

	if qs.checking {
		t.Error("expected checking to clear after a failed check")
	}
	if qs.errMsg != "" {
		t.Error("a failed check must not end the attempt")
	}
	if !strings.Contains(qs.clockBanner, "Check failed") {
		t.Errorf("banner = %q, want check failure notice", qs.clockBanner)
	}
	if _, ok := qs.attempt.AnswerFor("q1"); !ok {
		t.Error("expected the saved answer to survive the failure")
	}

	// The learner can retry.
	_, cmd := qs.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected a fresh grading command on retry")
	}
}

func TestQuizScreen_StaleCheckResultDropped(t *testing.T) {
	q := activePractice(t)
	scr, _ := q.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	scr, _ = qs.Update(checkResultMsg{
		AttemptID:  uuid.New(),
		QuestionID: "q1",
		Result:     &api.CheckResult{IsCorrect: true, CorrectAnswer: "DRE"},
	})
	qs = scr.(*QuizScreen)

	if _, ok := qs.attempt.ResultFor("q1"); ok {
		t.Error("expected a stale check result to be dropped")
	}
}

func TestQuizScreen_ExamAnswerAndAdvance(t *testing.T) {
	q := activeExam(t, 30*time.Minute)

	scr, _ := q.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.attempt.Index != 1 {
		t.Errorf("Index = %d, want 1", qs.attempt.Index)
	}
	if _, ok := qs.attempt.AnswerFor("q1"); !ok {
		t.Error("expected the answer to be recorded")
	}
	if _, graded := qs.attempt.ResultFor("q1"); graded {
		t.Error("exam answers must not be graded before submit")
	}
}

func TestQuizScreen_ExamNavigationKeepsSelection(t *testing.T) {
	q := activeExam(t, 30*time.Minute)

	// Answer the first question, then come back to it.
	scr, _ := q.Update(keyPress('j'))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)
	if qs.attempt.Index != 1 {
		t.Fatalf("Index = %d, want 1", qs.attempt.Index)
	}

	scr, _ = qs.Update(specialKey(tea.KeyLeft))
	qs = scr.(*QuizScreen)
	if got := qs.choices.Chosen(); got != "HUD" {
		t.Errorf("Chosen = %q, want %q", got, "HUD")
	}

	// A bare cursor move on an unanswered question is not an answer.
	scr, _ = qs.Update(specialKey(tea.KeyRight))
	qs = scr.(*QuizScreen)
	scr, _ = qs.Update(keyPress('j'))
	qs = scr.(*QuizScreen)
	scr, _ = qs.Update(specialKey(tea.KeyRight))
	qs = scr.(*QuizScreen)
	if _, ok := qs.attempt.AnswerFor("q2"); ok {
		t.Error("expected no answer recorded for an unconfirmed highlight")
	}
}

func TestQuizScreen_ExamLastQuestionPromptsSubmit(t *testing.T) {
	q := activeExam(t, 30*time.Minute)

	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if !qs.confirmSubmit {
		t.Error("expected submit confirmation after answering the last question")
	}
	if qs.attempt.AnsweredCount() != 3 {
		t.Errorf("AnsweredCount = %d, want 3", qs.attempt.AnsweredCount())
	}
}

func TestQuizScreen_ExamSubmitGuard(t *testing.T) {
	q := activeExam(t, 30*time.Minute)

	scr, _ := q.Update(keyPress('s'))
	qs := scr.(*QuizScreen)
	if !qs.confirmSubmit {
		t.Fatal("expected submit confirmation")
	}

	scr, cmd := qs.Update(keyPress('y'))
	qs = scr.(*QuizScreen)
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if qs.attempt.Phase != assessment.PhaseSubmitting {
		t.Error("expected the attempt to enter the submitting phase")
	}

	// Further submit attempts while in flight are ignored.
	scr, _ = qs.Update(keyPress('s'))
	qs = scr.(*QuizScreen)
	if qs.confirmSubmit {
		t.Error("expected no second confirmation while submitting")
	}
	if cmd := qs.submitExam(); cmd != nil {
		t.Error("expected a second submission to be rejected")
	}
}

func TestQuizScreen_ExamSubmitFailureRestoresAttempt(t *testing.T) {
	q := activeExam(t, 30*time.Minute)

	scr, _ := q.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(keyPress('s'))
	qs = scr.(*QuizScreen)
	scr, _ = qs.Update(keyPress('y'))
	qs = scr.(*QuizScreen)

	scr, _ = qs.Update(examSubmittedMsg{AttemptID: qs.attempt.ID, Err: errors.New("bad gateway")})
	qs = scr.(*QuizScreen)

	if qs.attempt.Phase != assessment.PhaseActive {
		t.Error("expected the attempt to return to active after a failed submit")
	}
	if !strings.Contains(qs.clockBanner, "Submit failed") {
		t.Errorf("banner = %q, want submit failure notice", qs.clockBanner)
	}
	if _, ok := qs.attempt.AnswerFor("q1"); !ok {
		t.Error("expected answers to survive a failed submit")
	}
}

func TestQuizScreen_ExamSubmitSuccess(t *testing.T) {
	q := activeExam(t, 30*time.Minute)

	scr, _ := q.Update(keyPress('s'))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(keyPress('y'))
	qs = scr.(*QuizScreen)

	scr, cmd := qs.Update(examSubmittedMsg{
		AttemptID: qs.attempt.ID,
		Results:   &api.ExamResults{ScorePercentage: 80, Passed: true, TotalQuestions: 3},
	})
	qs = scr.(*QuizScreen)

	if qs.attempt.Phase != assessment.PhaseCompleted {
		t.Error("expected the attempt to complete")
	}
	if cmd == nil {
		t.Error("expected a command to show the results screen")
	}
}

func TestQuizScreen_ClockWarningLatches(t *testing.T) {
	q := activeExam(t, 30*time.Minute)

	tick := timerTickMsg{AttemptID: q.attempt.ID, Time: time.Now().Add(21 * time.Minute)}
	scr, cmd := q.Update(tick)
	qs := scr.(*QuizScreen)

	if qs.clockBanner != "10 minutes remaining" {
		t.Errorf("banner = %q, want ten-minute warning", qs.clockBanner)
	}
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}

	// The same threshold never fires twice.
	qs.clockBanner = ""
	scr, _ = qs.Update(timerTickMsg{AttemptID: qs.attempt.ID, Time: time.Now().Add(22 * time.Minute)})
	qs = scr.(*QuizScreen)
	if qs.clockBanner != "" {
		t.Errorf("banner = %q, want no repeat warning", qs.clockBanner)
	}

	// Overtime latches but the attempt stays usable.
	scr, _ = qs.Update(timerTickMsg{AttemptID: qs.attempt.ID, Time: time.Now().Add(31 * time.Minute)})
	qs = scr.(*QuizScreen)
	if !strings.Contains(qs.clockBanner, "Time is up") {
		t.Errorf("banner = %q, want overtime notice", qs.clockBanner)
	}
	if qs.attempt.Phase != assessment.PhaseActive {
		t.Error("overtime must not end the attempt")
	}
}

func TestQuizScreen_StaleTickIgnored(t *testing.T) {
	q := activeExam(t, 30*time.Minute)

	_, cmd := q.Update(timerTickMsg{AttemptID: uuid.New(), Time: time.Now().Add(25 * time.Minute)})
	if cmd != nil {
		t.Error("expected no rescheduled tick for a stale attempt")
	}
	if q.clockBanner != "" {
		t.Errorf("banner = %q, want empty", q.clockBanner)
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	q := activePractice(t)

	scr, _ := q.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if !qs.confirmQuit {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = qs.Update(specialKey(tea.KeyEscape))
	qs = scr.(*QuizScreen)
	_, cmd := qs.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command to leave the screen")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	q := activePractice(t)
	if len(q.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	e := activeExam(t, 30*time.Minute)
	if len(e.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
