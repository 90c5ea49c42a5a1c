package results

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/assessment"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/layout"
	"github.com/codifymate/caprep/internal/ui/theme"
)

// ResultsScreen shows the outcome of a finished attempt. Exam results come
// graded from the server and support per-question review; practice results
// are summarized from the answers graded along the way.
type ResultsScreen struct {
	mode assessment.Mode

	// Practice summary.
	total   int
	correct int

	// Exam results.
	exam *api.ExamResults

	reviewing   bool
	reviewIndex int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewPractice summarizes a completed practice attempt.
func NewPractice(attempt *assessment.Attempt) *ResultsScreen {
	r := &ResultsScreen{
		mode:  assessment.ModePractice,
		total: attempt.Total(),
	}
	for _, question := range attempt.Questions {
		if res, ok := attempt.ResultFor(question.ID); ok && res.IsCorrect {
			r.correct++
		}
	}
	return r
}

// NewExam wraps graded exam results.
func NewExam(exam *api.ExamResults) *ResultsScreen {
	return &ResultsScreen{
		mode: assessment.ModeExam,
		exam: exam,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	if r.mode == assessment.ModeExam {
		return "Exam Results"
	}
	return "Practice Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.reviewing {
		return []layout.KeyHint{
			{Key: "←/→", Description: "Question"},
			{Key: "Esc", Description: "Back to summary"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	if r.mode == assessment.ModeExam && len(r.exam.Results) > 0 {
		hints = append([]layout.KeyHint{{Key: "R", Description: "Review answers"}}, hints...)
	}
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	if r.reviewing {
		switch kmsg.String() {
		case "left", "h", "p":
			if r.reviewIndex > 0 {
				r.reviewIndex--
			}
		case "right", "l", "n":
			if r.reviewIndex < len(r.exam.Results)-1 {
				r.reviewIndex++
			}
		case "esc", "q":
			r.reviewing = false
		}
		return r, nil
	}

	switch kmsg.String() {
	case "r", "R":
		if r.mode == assessment.ModeExam && len(r.exam.Results) > 0 {
			r.reviewing = true
			r.reviewIndex = 0
		}
	case "enter", "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	if r.reviewing {
		return r.renderReview(width, height)
	}
	if r.mode == assessment.ModeExam {
		return r.renderExamSummary(width, height)
	}
	return r.renderPracticeSummary(width, height)
}

func (r *ResultsScreen) renderPracticeSummary(width, height int) string {
	accuracy := 0.0
	if r.total > 0 {
		accuracy = float64(r.correct) / float64(r.total)
	}

	title := theme.Title.Render("Practice complete")
	score := theme.Body.Render(fmt.Sprintf("%d of %d correct", r.correct, r.total))
	bar := components.NewAccuracyBar("Accuracy", accuracy, 44)

	card := theme.Card.Width(52).Render(
		lipgloss.JoinVertical(lipgloss.Left, score, "", bar.View()))

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) renderExamSummary(width, height int) string {
	verdict := theme.Correct.Render("PASSED")
	if !r.exam.Passed {
		verdict = theme.Incorrect.Render("NOT PASSED")
	}

	title := theme.Title.Render("Exam complete")
	score := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Score: %.1f%%", r.exam.ScorePercentage))
	passing := theme.Hint.Render(fmt.Sprintf("Passing score: %.0f%%", r.exam.PassingScore))

	breakdown := theme.Body.Render(fmt.Sprintf(
		"%d correct · %d incorrect · %d total",
		r.exam.CorrectAnswers, r.exam.IncorrectAnswers, r.exam.TotalQuestions))

	elapsed := theme.Hint.Render(fmt.Sprintf(
		"Time: %d:%02d", r.exam.TotalTime/60, r.exam.TotalTime%60))

	card := theme.Card.Width(52).Render(
		lipgloss.JoinVertical(lipgloss.Center, verdict, "", score, passing, "", breakdown, elapsed))

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) renderReview(width, height int) string {
	res := r.exam.Results[r.reviewIndex]

	position := theme.Hint.Render(
		fmt.Sprintf("Review %d of %d", r.reviewIndex+1, len(r.exam.Results)))

	verdict := theme.Correct.Render("✓ Correct")
	if !res.IsCorrect {
		verdict = theme.Incorrect.Render("✗ Incorrect")
	}

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Width(min(width-8, 76)).Render(res.Prompt)

	yours := theme.Body.Render("Your answer: ") + r.answerStyle(res.IsCorrect).Render(res.UserAnswer)
	if res.UserAnswer == "" {
		yours = theme.Body.Render("Your answer: ") + theme.Hint.Render("(unanswered)")
	}
	correct := theme.Body.Render("Correct answer: ") + theme.Correct.Render(res.CorrectAnswer)

	body := lipgloss.JoinVertical(lipgloss.Left, verdict, "", prompt, "", yours, correct)
	if res.Explanation != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "",
			theme.Body.Width(min(width-8, 76)).Render(res.Explanation))
	}

	card := theme.Card.Width(min(width-4, 84)).Render(body)

	content := lipgloss.JoinVertical(lipgloss.Left, position, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) answerStyle(correct bool) lipgloss.Style {
	if correct {
		return theme.Correct
	}
	return theme.Incorrect
}
