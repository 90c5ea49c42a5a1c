package progress

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/router"
	"github.com/codifymate/caprep/internal/store"
)

// fakeSnapshots is a scriptable in-memory SnapshotRepo.
type fakeSnapshots struct {
	saved     []*store.Snapshot
	latest    *store.Snapshot
	latestErr error
	pruneKeep []int
}

func (f *fakeSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	return f.latest, f.latestErr
}

func (f *fakeSnapshots) Prune(_ context.Context, keep int) error {
	f.pruneKeep = append(f.pruneKeep, keep)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func freshDashboard() dashboardMsg {
	return dashboardMsg{
		Summary: &api.ProgressSummary{
			TotalQuestionsAttempted: 120,
			TotalCorrect:            90,
			OverallAccuracy:         75,
			CurrentStreakDays:       4,
			LongestStreakDays:       9,
			QuestionsLast7Days:      30,
		},
		Topics: []api.TopicProgress{
			{Topic: "contracts", TopicDisplay: "Contracts", Attempted: 40, Correct: 30, Accuracy: 75},
		},
		Weak: []api.WeakArea{
			{SubtopicDisplay: "Listing agreements", Accuracy: 40, Attempts: 10},
		},
		Activity: []api.Activity{
			{Date: "2026-08-30", Questions: 12, Correct: 9},
		},
	}
}

func TestProgressScreen_SuccessfulFetchSavesSnapshot(t *testing.T) {
	snaps := &fakeSnapshots{}
	p := New(nil, snaps)

	scr, cmd := p.Update(freshDashboard())
	p = scr.(*ProgressScreen)
	if cmd == nil {
		t.Fatal("expected a snapshot save command")
	}
	_ = cmd()

	if len(snaps.saved) != 1 {
		t.Fatalf("saved snapshots = %d, want 1", len(snaps.saved))
	}
	data := snaps.saved[0].Data
	if data.TotalAttempted != 120 || data.TotalCorrect != 90 || data.StreakDays != 4 {
		t.Errorf("snapshot data = %+v", data)
	}
	if len(snaps.pruneKeep) != 1 || snaps.pruneKeep[0] != snapshotKeep {
		t.Errorf("prune calls = %v, want one call keeping %d", snaps.pruneKeep, snapshotKeep)
	}

	view := p.View(100, 40)
	if !strings.Contains(view, "120 questions attempted") {
		t.Error("expected summary totals in the view")
	}
	if strings.Contains(view, "Offline") {
		t.Error("a fresh fetch must not render the offline banner")
	}
	if !strings.Contains(view, "Contracts") || !strings.Contains(view, "Listing agreements") {
		t.Error("expected topic and weak-area sections")
	}
}

func TestProgressScreen_FetchFailureFallsBackToSnapshot(t *testing.T) {
	snaps := &fakeSnapshots{
		latest: &store.Snapshot{
			Timestamp: time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
			Data: store.SnapshotData{
				Version:         1,
				TotalAttempted:  80,
				TotalCorrect:    60,
				OverallAccuracy: 75,
				StreakDays:      2,
			},
		},
	}
	p := New(nil, snaps)

	scr, cmd := p.Update(dashboardMsg{Err: errors.New("backend down")})
	p = scr.(*ProgressScreen)
	if cmd == nil {
		t.Fatal("expected the cached-snapshot command")
	}
	msg := cmd()
	cached, ok := msg.(cachedSummaryMsg)
	if !ok {
		t.Fatalf("msg = %T, want cachedSummaryMsg", msg)
	}
	if cached.Snapshot == nil {
		t.Fatal("expected the stored snapshot")
	}

	scr, _ = p.Update(cached)
	p = scr.(*ProgressScreen)

	view := p.View(100, 40)
	if !strings.Contains(view, "Offline") {
		t.Error("expected the offline banner")
	}
	if !strings.Contains(view, "80 questions attempted") {
		t.Error("expected cached totals in the view")
	}
	// The snapshot only carries the summary; stale detail sections must not
	// render as if they were fresh.
	if strings.Contains(view, "By topic") || strings.Contains(view, "Weak areas") {
		t.Error("cached view must be summary-only")
	}
}

func TestProgressScreen_FetchFailureWithoutSnapshotShowsError(t *testing.T) {
	p := New(nil, &fakeSnapshots{})

	scr, cmd := p.Update(dashboardMsg{Err: errors.New("backend down")})
	p = scr.(*ProgressScreen)
	scr, _ = p.Update(cmd().(cachedSummaryMsg))
	p = scr.(*ProgressScreen)

	view := p.View(100, 40)
	if !strings.Contains(view, "backend down") {
		t.Error("expected the fetch error in the view")
	}
	if !strings.Contains(view, "R to retry") {
		t.Error("expected the retry hint")
	}
}

func TestProgressScreen_UnreadableSnapshotStillShowsError(t *testing.T) {
	p := New(nil, &fakeSnapshots{latestErr: errors.New("corrupt store")})

	scr, cmd := p.Update(dashboardMsg{Err: errors.New("backend down")})
	p = scr.(*ProgressScreen)
	cached := cmd().(cachedSummaryMsg)
	if cached.Snapshot != nil {
		t.Fatal("an unreadable snapshot must not be rendered")
	}
	scr, _ = p.Update(cached)
	p = scr.(*ProgressScreen)

	if view := p.View(100, 40); !strings.Contains(view, "backend down") {
		t.Error("expected the fetch error in the view")
	}
}

func TestProgressScreen_RetryRefetches(t *testing.T) {
	p := New(nil, &fakeSnapshots{})

	scr, cmd := p.Update(dashboardMsg{Err: errors.New("backend down")})
	p = scr.(*ProgressScreen)
	scr, _ = p.Update(cmd().(cachedSummaryMsg))
	p = scr.(*ProgressScreen)

	_, cmd = p.Update(keyPress('r'))
	if cmd == nil {
		t.Error("expected a refetch command")
	}
}

func TestProgressScreen_EscapePops(t *testing.T) {
	p := New(nil, &fakeSnapshots{})

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
