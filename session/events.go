package session

// EventType enumerates the full event contract published by the coordinator.
type EventType string

const (
	EventPollStarted EventType = "poll-started"
	EventTick        EventType = "tick"
	EventPollEnded   EventType = "poll-ended"
)

// OptionView is an option as respondents see it: content only, no
// correctness flag.
type OptionView struct {
	Content string `json:"content"`
}

type PollStartedPayload struct {
	PollID           string       `json:"pollId"`
	Question         string       `json:"question"`
	Options          []OptionView `json:"options"`
	TimeLimitSeconds int          `json:"timeLimitSeconds"`
}

type TickPayload struct {
	RemainingSeconds int `json:"remainingSeconds"`
}

type PollEndedPayload struct {
	PollID               string    `json:"pollId"`
	Results              []float64 `json:"results"`
	CorrectOptionIndices []int     `json:"correctOptionIndices"`
}

// Event is the union carried through the broadcast gateway. Exactly one
// payload field is set, matching Type.
type Event struct {
	Type        EventType           `json:"type"`
	PollStarted *PollStartedPayload `json:"pollStarted,omitempty"`
	Tick        *TickPayload        `json:"tick,omitempty"`
	PollEnded   *PollEndedPayload   `json:"pollEnded,omitempty"`
}

// Payload returns the populated payload for serialization on the wire.
func (e Event) Payload() interface{} {
	switch e.Type {
	case EventPollStarted:
		return e.PollStarted
	case EventTick:
		return e.Tick
	case EventPollEnded:
		return e.PollEnded
	}
	return nil
}
