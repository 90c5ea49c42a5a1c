package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptStatsByTopic(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{AttemptID: "a1", Mode: "practice", Topic: "contracts", QuestionID: "q1", UserAnswer: "A", Correct: true, TimeSecs: 10},
		{AttemptID: "a1", Mode: "practice", Topic: "contracts", QuestionID: "q2", UserAnswer: "B", Correct: false, TimeSecs: 25},
		{AttemptID: "a2", Mode: "exam", Topic: "financing", QuestionID: "q3", UserAnswer: "C", Correct: true, TimeSecs: 31},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	all, err := repo.AttemptStats(ctx, "")
	if err != nil {
		t.Fatalf("attempt stats: %v", err)
	}
	if all.Total != 3 || all.Correct != 2 {
		t.Errorf("all = %+v", all)
	}

	contracts, err := repo.AttemptStats(ctx, "contracts")
	if err != nil {
		t.Fatalf("attempt stats (topic): %v", err)
	}
	if contracts.Total != 2 || contracts.Correct != 1 {
		t.Errorf("contracts = %+v", contracts)
	}
	if got := contracts.Accuracy(); got != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
}

func TestExamSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	empty, err := repo.ExamSummary(ctx)
	if err != nil {
		t.Fatalf("exam summary (empty): %v", err)
	}
	if empty.Attempts != 0 {
		t.Errorf("empty summary = %+v", empty)
	}

	results := []ExamEventData{
		{AttemptID: "e1", ScorePercentage: 62, Passed: false, CorrectAnswers: 62, IncorrectAnswers: 38, TotalQuestions: 100, TotalTimeSecs: 4200},
		{AttemptID: "e2", ScorePercentage: 78, Passed: true, CorrectAnswers: 78, IncorrectAnswers: 22, TotalQuestions: 100, TotalTimeSecs: 3900},
	}
	for _, r := range results {
		if err := repo.AppendExamResult(ctx, r); err != nil {
			t.Fatalf("append exam result: %v", err)
		}
	}

	sum, err := repo.ExamSummary(ctx)
	if err != nil {
		t.Fatalf("exam summary: %v", err)
	}
	if sum.Attempts != 2 || sum.Passed != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.BestScore != 78 {
		t.Errorf("best = %v", sum.BestScore)
	}
	if sum.AvgScore != 70 {
		t.Errorf("avg = %v", sum.AvgScore)
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "concept-explanation", InputTokens: 120, OutputTokens: 300, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "concept-explanation", InputTokens: 80, OutputTokens: 0, Success: false, ErrorMessage: "timeout"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("llm usage: %v", err)
	}
	if usage.Requests != 2 || usage.Failures != 1 {
		t.Errorf("usage = %+v", usage)
	}
	if usage.InputTokens != 200 || usage.OutputTokens != 300 {
		t.Errorf("tokens = %+v", usage)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, TotalAttempted: 310, TotalCorrect: 248, OverallAccuracy: 80, StreakDays: 6},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.TotalAttempted != 310 || snap.Data.StreakDays != 6 {
		t.Errorf("data = %+v", snap.Data)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap.Sequence != 5 {
		t.Errorf("latest sequence = %d, want 5", snap.Sequence)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots after prune = %d, want 2", count)
	}
}
