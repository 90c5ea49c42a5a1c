package quiz

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/assessment"
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch {
	case q.errMsg != "":
		return centered(width, height, theme.FieldError.Render(q.errMsg)+
			"\n\n"+theme.Hint.Render("Press Esc to go back"))
	case q.noQuestions:
		return centered(width, height,
			theme.Body.Render("No questions available for this selection yet.")+
				"\n\n"+theme.Hint.Render("Press Esc to go back"))
	case q.attempt.Phase == assessment.PhaseLoading:
		return centered(width, height, theme.Hint.Render("Loading questions..."))
	case q.attempt.Phase == assessment.PhaseSubmitting:
		return centered(width, height, theme.Hint.Render("Submitting your exam..."))
	case q.confirmQuit:
		return centered(width, height,
			theme.Body.Render("Leave this attempt? Your progress here will be lost.")+
				"\n\n"+theme.Hint.Render("Y to leave, N to keep going"))
	case q.confirmSubmit:
		return centered(width, height, q.renderSubmitConfirm())
	}

	return q.renderQuestion(width, height)
}

func (q *QuizScreen) renderSubmitConfirm() string {
	answered := q.attempt.AnsweredCount()
	total := q.attempt.Total()

	msg := fmt.Sprintf("Submit your exam? %d of %d questions answered.", answered, total)
	if answered < total {
		msg += "\n" + theme.FieldError.Render(
			fmt.Sprintf("%d unanswered questions will be marked incorrect.", total-answered))
	}
	return theme.Body.Render(msg) + "\n\n" + theme.Hint.Render("Y to submit, N to go back")
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	cur := q.attempt.Current()
	if cur == nil {
		return ""
	}

	status := q.renderStatusLine(width)

	body := q.choices.View()

	if q.attempt.Mode == assessment.ModePractice {
		if res, ok := q.attempt.ResultFor(cur.ID); ok {
			verdict := theme.Correct.Render("Correct!")
			if !res.IsCorrect {
				verdict = theme.Incorrect.Render("Incorrect.")
			}
			body += "\n" + verdict
			if res.Explanation != "" {
				body += "\n" + theme.Body.Width(min(width-8, 76)).Render(res.Explanation)
			}
		} else if q.checking {
			body += "\n" + theme.Hint.Render("Checking...")
		}
	}

	var banner string
	if q.clockBanner != "" {
		banner = lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true).
			Render(q.clockBanner)
	}

	card := theme.Card.Width(min(width-4, 84)).Render(body)

	content := lipgloss.JoinVertical(lipgloss.Left, status, "", card)
	if banner != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, banner, "", content)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) renderStatusLine(width int) string {
	position := fmt.Sprintf("Question %d of %d", q.attempt.Index+1, q.attempt.Total())

	if q.attempt.Mode == assessment.ModePractice {
		bar := components.NewProgressBar(position,
			float64(q.attempt.Index+1)/float64(q.attempt.Total()), false, min(width-8, 60))
		return bar.View()
	}

	answered := fmt.Sprintf("%d answered", q.attempt.AnsweredCount())
	remaining := q.renderRemaining()
	return theme.Body.Render(position) +
		theme.Hint.Render("  ·  "+answered+"  ·  ") + remaining
}

func (q *QuizScreen) renderRemaining() string {
	if q.clock == nil {
		return ""
	}

	rem := q.clock.Remaining(time.Now())
	style := lipgloss.NewStyle().Foreground(theme.Secondary)
	if rem < 0 {
		style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		rem = -rem
		return style.Render(fmt.Sprintf("-%s over", formatClock(rem)))
	}
	if rem <= 10*time.Minute {
		style = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}
	return style.Render(formatClock(rem) + " left")
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
