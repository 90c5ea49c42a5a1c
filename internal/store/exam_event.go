package store

import (
	"context"
	"fmt"

	"github.com/codifymate/caprep/ent"
	"github.com/codifymate/caprep/ent/examevent"
)

func (r *eventRepo) AppendExamResult(ctx context.Context, data ExamEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetScorePercentage(data.ScorePercentage).
		SetPassed(data.Passed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetIncorrectAnswers(data.IncorrectAnswers).
		SetTotalQuestions(data.TotalQuestions).
		SetTotalTimeSecs(data.TotalTimeSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}
	return nil
}

func (r *eventRepo) ExamSummary(ctx context.Context) (ExamSummary, error) {
	events, err := r.client.ExamEvent.Query().
		Order(ent.Asc(examevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return ExamSummary{}, fmt.Errorf("query exam events: %w", err)
	}

	sum := ExamSummary{Attempts: len(events)}
	if len(events) == 0 {
		return sum, nil
	}

	var scoreTotal float64
	for _, e := range events {
		if e.Passed {
			sum.Passed++
		}
		if e.ScorePercentage > sum.BestScore {
			sum.BestScore = e.ScorePercentage
		}
		scoreTotal += e.ScorePercentage
	}
	sum.AvgScore = scoreTotal / float64(len(events))
	return sum, nil
}
