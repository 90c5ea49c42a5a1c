package results

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/assessment"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func gradedPracticeAttempt(t *testing.T) *assessment.Attempt {
	t.Helper()
	a := assessment.NewAttempt(assessment.ModePractice, "financing", "")
	questions := []api.Question{
		{ID: "q1", Prompt: "one", Choices: []string{"a", "b"}},
		{ID: "q2", Prompt: "two", Choices: []string{"a", "b"}},
		{ID: "q3", Prompt: "three", Choices: []string{"a", "b"}},
	}
	if err := a.Begin(questions, time.Now()); err != nil {
		t.Fatal(err)
	}
	a.RecordResult("q1", api.CheckResult{IsCorrect: true})
	a.RecordResult("q2", api.CheckResult{IsCorrect: false})
	a.RecordResult("q3", api.CheckResult{IsCorrect: true})
	return a
}

func testExamResults() *api.ExamResults {
	return &api.ExamResults{
		ScorePercentage:  66.7,
		Passed:           false,
		PassingScore:     70,
		CorrectAnswers:   2,
		IncorrectAnswers: 1,
		TotalQuestions:   3,
		TotalTime:        1800,
		Results: []api.QuestionResult{
			{QuestionID: "q1", Prompt: "one", UserAnswer: "a", CorrectAnswer: "a", IsCorrect: true},
			{QuestionID: "q2", Prompt: "two", UserAnswer: "b", CorrectAnswer: "a", IsCorrect: false, Explanation: "a is right"},
			{QuestionID: "q3", Prompt: "three", CorrectAnswer: "a", IsCorrect: false},
		},
	}
}

func TestResultsScreen_PracticeSummary(t *testing.T) {
	r := NewPractice(gradedPracticeAttempt(t))

	if r.Title() != "Practice Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Practice Results")
	}
	if r.correct != 2 {
		t.Errorf("correct = %d, want 2", r.correct)
	}
	if r.total != 3 {
		t.Errorf("total = %d, want 3", r.total)
	}

	view := r.View(100, 40)
	if !strings.Contains(view, "2 of 3 correct") {
		t.Error("expected the score line in the summary")
	}
}

func TestResultsScreen_ExamSummary(t *testing.T) {
	r := NewExam(testExamResults())

	if r.Title() != "Exam Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Exam Results")
	}

	view := r.View(100, 40)
	if !strings.Contains(view, "NOT PASSED") {
		t.Error("expected the failing verdict")
	}
	if !strings.Contains(view, "66.7%") {
		t.Error("expected the score percentage")
	}
}

func TestResultsScreen_Review(t *testing.T) {
	r := NewExam(testExamResults())

	scr, _ := r.Update(keyPress('r'))
	rs := scr.(*ResultsScreen)
	if !rs.reviewing {
		t.Fatal("expected review mode")
	}

	// Left at the first question stays put.
	scr, _ = rs.Update(specialKey(tea.KeyLeft))
	rs = scr.(*ResultsScreen)
	if rs.reviewIndex != 0 {
		t.Errorf("reviewIndex = %d, want 0", rs.reviewIndex)
	}

	scr, _ = rs.Update(specialKey(tea.KeyRight))
	rs = scr.(*ResultsScreen)
	if rs.reviewIndex != 1 {
		t.Errorf("reviewIndex = %d, want 1", rs.reviewIndex)
	}

	view := rs.View(100, 40)
	if !strings.Contains(view, "a is right") {
		t.Error("expected the explanation for the reviewed question")
	}

	// Unanswered questions are labeled.
	scr, _ = rs.Update(specialKey(tea.KeyRight))
	rs = scr.(*ResultsScreen)
	if !strings.Contains(rs.View(100, 40), "(unanswered)") {
		t.Error("expected the unanswered label")
	}

	// Right at the end stays put.
	scr, _ = rs.Update(specialKey(tea.KeyRight))
	rs = scr.(*ResultsScreen)
	if rs.reviewIndex != 2 {
		t.Errorf("reviewIndex = %d, want 2", rs.reviewIndex)
	}

	scr, _ = rs.Update(specialKey(tea.KeyEscape))
	rs = scr.(*ResultsScreen)
	if rs.reviewing {
		t.Error("expected review mode to end")
	}
}

func TestResultsScreen_PracticeHasNoReview(t *testing.T) {
	r := NewPractice(gradedPracticeAttempt(t))

	scr, _ := r.Update(keyPress('r'))
	rs := scr.(*ResultsScreen)
	if rs.reviewing {
		t.Error("practice results must not enter review mode")
	}
}

func TestResultsScreen_Done(t *testing.T) {
	r := NewExam(testExamResults())
	_, cmd := r.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected a command to leave the screen")
	}
}
