package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/screen"
	"github.com/codifymate/caprep/internal/store"
	"github.com/codifymate/caprep/internal/ui/components"
	"github.com/codifymate/caprep/internal/ui/layout"
	"github.com/codifymate/caprep/internal/ui/theme"
)

const snapshotKeep = 10

// ProgressScreen shows the server-computed progress dashboard: overall stats,
// per-topic accuracy, weak areas, and recent activity. The latest summary is
// cached in the local snapshot store so something useful still renders when
// the backend is unreachable.
type ProgressScreen struct {
	client *api.Client
	snaps  store.SnapshotRepo

	loaded   bool
	offline  bool
	errMsg   string
	fetched  time.Time
	summary  *api.ProgressSummary
	topics   []api.TopicProgress
	weak     []api.WeakArea
	activity []api.Activity
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// dashboardMsg carries everything the dashboard renders.
type dashboardMsg struct {
	Summary  *api.ProgressSummary
	Topics   []api.TopicProgress
	Weak     []api.WeakArea
	Activity []api.Activity
	Err      error
}

// cachedSummaryMsg carries the snapshot fallback after a fetch failure.
type cachedSummaryMsg struct {
	Snapshot *store.Snapshot
	FetchErr error
}

// New creates the progress dashboard.
func New(client *api.Client, snaps store.SnapshotRepo) *ProgressScreen {
	return &ProgressScreen{client: client, snaps: snaps}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return p.fetch()
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) fetch() tea.Cmd {
	client := p.client
	return func() tea.Msg {
		ctx := context.Background()

		summary, err := client.ProgressSummary(ctx)
		if err != nil {
			return dashboardMsg{Err: err}
		}
		topics, err := client.TopicProgress(ctx)
		if err != nil {
			return dashboardMsg{Err: err}
		}
		weak, err := client.WeakAreas(ctx)
		if err != nil {
			return dashboardMsg{Err: err}
		}
		activity, err := client.RecentActivity(ctx)
		if err != nil {
			return dashboardMsg{Err: err}
		}

		return dashboardMsg{Summary: summary, Topics: topics, Weak: weak, Activity: activity}
	}
}

// loadCached reads the latest snapshot after a failed fetch.
func (p *ProgressScreen) loadCached(fetchErr error) tea.Cmd {
	snaps := p.snaps
	return func() tea.Msg {
		if snaps == nil {
			return cachedSummaryMsg{FetchErr: fetchErr}
		}
		snap, err := snaps.Latest(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to read progress snapshot: %v\n", err)
			snap = nil
		}
		return cachedSummaryMsg{Snapshot: snap, FetchErr: fetchErr}
	}
}

// saveSnapshot caches the fresh summary for offline display.
func (p *ProgressScreen) saveSnapshot(summary *api.ProgressSummary) tea.Cmd {
	snaps := p.snaps
	if snaps == nil {
		return nil
	}

	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:         1,
			TotalAttempted:  summary.TotalQuestionsAttempted,
			TotalCorrect:    summary.TotalCorrect,
			OverallAccuracy: summary.OverallAccuracy,
			StreakDays:      summary.CurrentStreakDays,
		},
	}
	return func() tea.Msg {
		ctx := context.Background()
		if err := snaps.Save(ctx, snap); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save progress snapshot: %v\n", err)
			return nil
		}
		if err := snaps.Prune(ctx, snapshotKeep); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to prune progress snapshots: %v\n", err)
		}
		return nil
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardMsg:
		if msg.Err != nil {
			return p, p.loadCached(msg.Err)
		}
		p.loaded = true
		p.offline = false
		p.errMsg = ""
		p.fetched = time.Now()
		p.summary = msg.Summary
		p.topics = msg.Topics
		p.weak = msg.Weak
		p.activity = msg.Activity
		return p, p.saveSnapshot(msg.Summary)

	case cachedSummaryMsg:
		p.errMsg = msg.FetchErr.Error()
		if msg.Snapshot != nil {
			p.loaded = true
			p.offline = true
			p.fetched = msg.Snapshot.Timestamp
			p.summary = &api.ProgressSummary{
				TotalQuestionsAttempted: msg.Snapshot.Data.TotalAttempted,
				TotalCorrect:            msg.Snapshot.Data.TotalCorrect,
				OverallAccuracy:         msg.Snapshot.Data.OverallAccuracy,
				CurrentStreakDays:       msg.Snapshot.Data.StreakDays,
			}
			p.topics = nil
			p.weak = nil
			p.activity = nil
		}
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			return p, p.fetch()
		}
	}

	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	if !p.loaded {
		if p.errMsg != "" {
			content := theme.FieldError.Render(p.errMsg) +
				"\n\n" + theme.Hint.Render("R to retry, Esc to go back")
			return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading progress..."))
	}

	sections := []string{p.renderSummary(width)}
	if p.offline {
		sections = append([]string{
			lipgloss.NewStyle().Foreground(theme.Warning).Render(
				fmt.Sprintf("Offline — showing cached stats from %s", p.fetched.Format("Jan 2 15:04"))),
		}, sections...)
	}
	if len(p.topics) > 0 {
		sections = append(sections, p.renderTopics(width))
	}
	if len(p.weak) > 0 {
		sections = append(sections, p.renderWeakAreas(width))
	}
	if len(p.activity) > 0 {
		sections = append(sections, p.renderActivity())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, joinSections(sections)...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func joinSections(sections []string) []string {
	out := make([]string, 0, len(sections)*2)
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}

func (p *ProgressScreen) renderSummary(width int) string {
	s := p.summary

	line1 := theme.Body.Render(fmt.Sprintf(
		"%d questions attempted · %d correct", s.TotalQuestionsAttempted, s.TotalCorrect))
	bar := components.NewAccuracyBar("Overall", s.OverallAccuracy/100, min(width-12, 50))
	line3 := theme.Hint.Render(fmt.Sprintf(
		"Streak: %d days (best %d) · %d questions this week",
		s.CurrentStreakDays, s.LongestStreakDays, s.QuestionsLast7Days))

	return theme.Card.Width(min(width-4, 64)).Render(
		lipgloss.JoinVertical(lipgloss.Left, line1, "", bar.View(), "", line3))
}

func (p *ProgressScreen) renderTopics(width int) string {
	heading := theme.Subtitle.Align(lipgloss.Left).Render("By topic")
	rows := []string{heading}
	for _, tp := range p.topics {
		label := fmt.Sprintf("%-32s", truncate(tp.TopicDisplay, 32))
		bar := components.NewAccuracyBar(label, tp.Accuracy/100, min(width-12, 60))
		rows = append(rows, bar.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p *ProgressScreen) renderWeakAreas(width int) string {
	heading := theme.Subtitle.Align(lipgloss.Left).Render("Weak areas")
	rows := []string{heading}
	for _, w := range p.weak {
		rows = append(rows, theme.FieldError.Render("▾ ")+
			theme.Body.Render(truncate(w.SubtopicDisplay, 40))+
			theme.Hint.Render(fmt.Sprintf("  %.0f%% over %d attempts", w.Accuracy, w.Attempts)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p *ProgressScreen) renderActivity() string {
	heading := theme.Subtitle.Align(lipgloss.Left).Render("Recent activity")
	rows := []string{heading}
	for _, a := range p.activity {
		rows = append(rows, theme.Hint.Render(a.Date)+
			theme.Body.Render(fmt.Sprintf("  %d questions, %d correct", a.Questions, a.Correct)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
