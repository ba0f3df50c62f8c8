package session

import (
	"context"
	"errors"

	"github.com/yeshu2004/real-time-pooling/logging"
	"github.com/yeshu2004/real-time-pooling/storage"
)

// Ledger records at most one answer per (poll, respondent) pair, leaning on
// the answer store's conditional insert for atomicity under concurrent
// submissions.
type Ledger struct {
	answers storage.AnswerStorage
}

func NewLedger(answers storage.AnswerStorage) *Ledger {
	return &Ledger{answers: answers}
}

// TryRecord stores the answer and reports whether it was the first one for
// the pair. A duplicate is not an error; the first recorded value wins.
func (l *Ledger) TryRecord(ctx context.Context, pollID, respondentID string, selectedOption int) (bool, error) {
	err := l.answers.Create(ctx, &storage.Answer{
		PollID:         pollID,
		RespondentID:   respondentID,
		SelectedOption: selectedOption,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAnswerExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CountByOption returns one count per option index, zero included for
// options nobody picked.
func (l *Ledger) CountByOption(ctx context.Context, pollID string, optionCount int) ([]int, error) {
	answers, err := l.answers.ListByPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	counts := make([]int, optionCount)
	for _, answer := range answers {
		if answer.SelectedOption < 0 || answer.SelectedOption >= optionCount {
			logging.Log.Warnf("LEDGER: answer for poll %s references option %d outside range", pollID, answer.SelectedOption)
			continue
		}
		counts[answer.SelectedOption]++
	}
	return counts, nil
}

func (l *Ledger) TotalCount(ctx context.Context, pollID string) (int, error) {
	answers, err := l.answers.ListByPoll(ctx, pollID)
	if err != nil {
		return 0, err
	}
	return len(answers), nil
}
