package store

import (
	"context"
	"time"
)

// AttemptEventData captures one answered question.
type AttemptEventData struct {
	AttemptID  string
	Mode       string // "practice" or "exam"
	Topic      string
	Subtopic   string
	QuestionID string
	UserAnswer string
	Correct    bool
	TimeSecs   int
}

// ExamEventData captures one graded exam submission.
type ExamEventData struct {
	AttemptID        string
	ScorePercentage  float64
	Passed           bool
	CorrectAnswers   int
	IncorrectAnswers int
	TotalQuestions   int
	TotalTimeSecs    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AttemptStats aggregates the local attempt log.
type AttemptStats struct {
	Total   int
	Correct int
}

// Accuracy returns the correct ratio, or 0 when nothing was attempted.
func (s AttemptStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// ExamSummary aggregates locally recorded exam submissions.
type ExamSummary struct {
	Attempts  int
	Passed    int
	BestScore float64
	AvgScore  float64
}

// LLMUsage aggregates LLM spend for the stats command.
type LLMUsage struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// ModelUsage is LLM usage grouped by model, for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendAttempt records one answered question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendExamResult records one graded exam submission.
	AppendExamResult(ctx context.Context, data ExamEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AttemptStats aggregates attempts, optionally scoped to one topic
	// (empty topic means all).
	AttemptStats(ctx context.Context, topic string) (AttemptStats, error)

	// ExamSummary aggregates all recorded exam submissions.
	ExamSummary(ctx context.Context) (ExamSummary, error)

	// LLMUsage aggregates LLM requests grouped into one total.
	LLMUsage(ctx context.Context) (LLMUsage, error)

	// LLMUsageByModel aggregates LLM requests per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// SnapshotData caches server-derived progress state for instant display.
type SnapshotData struct {
	Version         int     `json:"version"`
	TotalAttempted  int     `json:"total_attempted"`
	TotalCorrect    int     `json:"total_correct"`
	OverallAccuracy float64 `json:"overall_accuracy"`
	StreakDays      int     `json:"streak_days"`
}

// Snapshot represents a point-in-time capture of cached progress state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
