package store

import (
	"context"
	"fmt"

	"github.com/codifymate/caprep/ent"
	"github.com/codifymate/caprep/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetMode(data.Mode).
		SetTopic(data.Topic).
		SetSubtopic(data.Subtopic).
		SetQuestionID(data.QuestionID).
		SetUserAnswer(data.UserAnswer).
		SetCorrect(data.Correct).
		SetTimeSecs(data.TimeSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AttemptStats(ctx context.Context, topic string) (AttemptStats, error) {
	q := r.client.AttemptEvent.Query()
	if topic != "" {
		q = q.Where(attemptevent.Topic(topic))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("count attempts: %w", err)
	}

	correct, err := q.Where(attemptevent.Correct(true)).Count(ctx)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("count correct attempts: %w", err)
	}

	return AttemptStats{Total: total, Correct: correct}, nil
}
