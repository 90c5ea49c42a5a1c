package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/codifymate/caprep/internal/api"
)

// questionsLoadedMsg is sent when the question set for an attempt arrives.
// AttemptID ties the response to the run that requested it; a mismatch means
// the run was abandoned and the message is dropped.
type questionsLoadedMsg struct {
	AttemptID uuid.UUID
	Questions []api.Question
	Err       error
}

// checkResultMsg is sent when the server grades a practice answer.
type checkResultMsg struct {
	AttemptID  uuid.UUID
	QuestionID string
	Result     *api.CheckResult
	Err        error
}

// examSubmittedMsg is sent when the exam submission round-trip completes.
type examSubmittedMsg struct {
	AttemptID uuid.UUID
	Results   *api.ExamResults
	Err       error
}

// timerTickMsg drives the exam clock, once per second.
type timerTickMsg struct {
	AttemptID uuid.UUID
	Time      time.Time
}
