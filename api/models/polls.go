package models

import (
	"time"

	"github.com/yeshu2004/real-time-pooling/storage"
)

type PollOptionEntry struct {
	Content   string `json:"content"`
	IsCorrect bool   `json:"isCorrect"`
}

type CreatePollRequest struct {
	Question         string            `json:"question"`
	Options          []PollOptionEntry `json:"options"`
	TimeLimitSeconds int               `json:"timeLimitSeconds"`
	CreatorID        string            `json:"creatorId"`
}

// PollResponse is the presenter's view of a created poll. Correctness flags
// are included here; the presenter authored them.
type PollResponse struct {
	ID               string            `json:"id"`
	Question         string            `json:"question"`
	Options          []PollOptionEntry `json:"options"`
	TimeLimitSeconds int               `json:"timeLimitSeconds"`
	Active           bool              `json:"active"`
	CreatedBy        string            `json:"createdBy"`
	CreatedAt        time.Time         `json:"createdAt"`
}

type SubmitAnswerRequest struct {
	PollID         string `json:"pollId"`
	RespondentID   string `json:"respondentId"`
	SelectedOption int    `json:"selectedOption"`
}

type SubmitAnswerResponse struct {
	Message string `json:"message"`
}

func TransformOptionsToStorage(entries []PollOptionEntry) []storage.Option {
	options := make([]storage.Option, 0, len(entries))
	for _, entry := range entries {
		options = append(options, storage.Option{Content: entry.Content, IsCorrect: entry.IsCorrect})
	}
	return options
}

func TransformPollToResponse(poll *storage.Poll) PollResponse {
	options := make([]PollOptionEntry, 0, len(poll.Options))
	for _, option := range poll.Options {
		options = append(options, PollOptionEntry{Content: option.Content, IsCorrect: option.IsCorrect})
	}
	return PollResponse{
		ID:               poll.ID,
		Question:         poll.Question,
		Options:          options,
		TimeLimitSeconds: poll.TimeLimitSeconds,
		Active:           poll.Active,
		CreatedBy:        poll.CreatedBy,
		CreatedAt:        poll.CreatedAt,
	}
}
