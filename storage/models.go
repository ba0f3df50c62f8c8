package storage

import "time"

const (
	RolePresenter  = "presenter"
	RoleRespondent = "respondent"
)

type Identity struct {
	ID        string    `dynamodbav:"PK"`
	Name      string    `dynamodbav:"Name"`
	Role      string    `dynamodbav:"Role"`
	CreatedAt time.Time `dynamodbav:"CreatedAt"`
}

type Option struct {
	Content   string `dynamodbav:"Content"`
	IsCorrect bool   `dynamodbav:"IsCorrect"`
}

type Poll struct {
	ID               string    `dynamodbav:"PK"`
	Question         string    `dynamodbav:"Question"`
	Options          []Option  `dynamodbav:"Options"`
	TimeLimitSeconds int       `dynamodbav:"TimeLimitSeconds"`
	Active           bool      `dynamodbav:"Active"`
	CreatedBy        string    `dynamodbav:"CreatedBy"`
	CreatedAt        time.Time `dynamodbav:"CreatedAt"`
}

type Answer struct {
	PollID         string    `dynamodbav:"PK"` // Poll id
	RespondentID   string    `dynamodbav:"SK"` // One answer per (poll, respondent) pair
	SelectedOption int       `dynamodbav:"SelectedOption"`
	Timestamp      time.Time `dynamodbav:"Timestamp"`
}
