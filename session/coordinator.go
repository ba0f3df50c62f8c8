package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yeshu2004/real-time-pooling/logging"
	"github.com/yeshu2004/real-time-pooling/storage"
)

// Broadcaster is the coordinator's view of the broadcast gateway.
type Broadcaster interface {
	Publish(event Event)
}

// Coordinator owns the single active poll. It supersedes the previous poll
// on creation, runs the countdown, filters answer submissions, and publishes
// lifecycle events. The active poll reference and its timer are only ever
// swapped together, under the coordinator's lock.
type Coordinator struct {
	polls      storage.PollStorage
	identities storage.IdentityStorage
	ledger     *Ledger
	gateway    Broadcaster

	tickInterval time.Duration

	mu     sync.Mutex
	active *activePoll
}

type activePoll struct {
	poll  *storage.Poll
	timer *Timer
}

func NewCoordinator(polls storage.PollStorage, identities storage.IdentityStorage, ledger *Ledger, gateway Broadcaster, tickInterval time.Duration) *Coordinator {
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	return &Coordinator{
		polls:        polls,
		identities:   identities,
		ledger:       ledger,
		gateway:      gateway,
		tickInterval: tickInterval,
	}
}

// CreatePoll validates the request, supersedes any currently active poll
// (its timer is cancelled and no results are emitted for it), persists the
// new poll as active, broadcasts poll-started without correctness flags, and
// starts the countdown.
func (c *Coordinator) CreatePoll(ctx context.Context, question string, options []storage.Option, timeLimitSeconds int, creatorID string) (*storage.Poll, error) {
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", ErrInvalidPollSpec)
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 options, got %d", ErrInvalidPollSpec, len(options))
	}
	if timeLimitSeconds <= 0 {
		return nil, fmt.Errorf("%w: time limit must be positive, got %d", ErrInvalidPollSpec, timeLimitSeconds)
	}

	creator, err := c.identities.Get(ctx, creatorID)
	if err != nil {
		if errors.Is(err, storage.ErrIdentityNotFound) {
			return nil, ErrInvalidCreator
		}
		return nil, err
	}
	if creator.Role != storage.RolePresenter {
		return nil, ErrInvalidCreator
	}

	poll := &storage.Poll{
		ID:               uuid.NewString(),
		Question:         question,
		Options:          options,
		TimeLimitSeconds: timeLimitSeconds,
		Active:           true,
		CreatedBy:        creatorID,
		CreatedAt:        time.Now().UTC(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		superseded := c.active
		superseded.timer.Cancel()
		c.active = nil
		if err := c.polls.SetActive(ctx, superseded.poll.ID, false); err != nil {
			logging.Log.Errorf("COORDINATOR: failed to deactivate superseded poll %s: %v", superseded.poll.ID, err)
		}
		logging.Log.Infof("COORDINATOR: poll %s superseded", superseded.poll.ID)
	}

	if err := c.polls.Create(ctx, poll); err != nil {
		return nil, err
	}

	c.gateway.Publish(Event{
		Type:        EventPollStarted,
		PollStarted: pollStartedPayload(poll),
	})

	// Ticks cannot outrun the started event above: the tick callback takes
	// the same lock this method still holds.
	timer := StartTimer(poll.ID, timeLimitSeconds, c.tickInterval, c.onTick, c.onTimerExpiry)
	c.active = &activePoll{poll: poll, timer: timer}

	logging.Log.Infof("COORDINATOR: poll %s started, %d options, %ds limit", poll.ID, len(options), timeLimitSeconds)
	return poll, nil
}

// SubmitAnswer records one answer per respondent for the active poll.
// Stale polls, out-of-range options, and duplicates are all dropped without
// surfacing an error; a late click should not produce a visible failure.
func (c *Coordinator) SubmitAnswer(ctx context.Context, pollID, respondentID string, selectedOption int) {
	c.mu.Lock()
	var activeID string
	var optionCount int
	if c.active != nil {
		activeID = c.active.poll.ID
		optionCount = len(c.active.poll.Options)
	}
	c.mu.Unlock()

	if activeID == "" || activeID != pollID {
		logging.Log.Debugf("COORDINATOR: dropped answer from %s for inactive poll %s", respondentID, pollID)
		return
	}
	if selectedOption < 0 || selectedOption >= optionCount {
		logging.Log.Debugf("COORDINATOR: dropped answer from %s with option %d outside range", respondentID, selectedOption)
		return
	}

	recorded, err := c.ledger.TryRecord(ctx, pollID, respondentID, selectedOption)
	if err != nil {
		logging.Log.Errorf("COORDINATOR: failed to record answer from %s for poll %s: %v", respondentID, pollID, err)
		return
	}
	if !recorded {
		logging.Log.Debugf("COORDINATOR: dropped duplicate answer from %s for poll %s", respondentID, pollID)
	}
}

// Snapshot is the active poll as late joiners see it: no correctness flags,
// plus the seconds still left on the countdown.
type Snapshot struct {
	PollID           string       `json:"pollId"`
	Question         string       `json:"question"`
	Options          []OptionView `json:"options"`
	TimeLimitSeconds int          `json:"timeLimitSeconds"`
	RemainingSeconds int          `json:"remainingSeconds"`
}

// ActivePollSnapshot returns the sanitized active poll, or nil when no poll
// is running.
func (c *Coordinator) ActivePollSnapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return nil
	}

	poll := c.active.poll
	return &Snapshot{
		PollID:           poll.ID,
		Question:         poll.Question,
		Options:          sanitizeOptions(poll.Options),
		TimeLimitSeconds: poll.TimeLimitSeconds,
		RemainingSeconds: c.active.timer.Remaining(),
	}
}

func (c *Coordinator) onTick(pollID string, remaining int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil || c.active.poll.ID != pollID {
		return
	}
	c.gateway.Publish(Event{Type: EventTick, Tick: &TickPayload{RemainingSeconds: remaining}})
}

// onTimerExpiry runs in the timer goroutine, at most once per poll. It marks
// the poll inactive, aggregates the ledger, and reveals results plus the
// correct options.
func (c *Coordinator) onTimerExpiry(pollID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil || c.active.poll.ID != pollID {
		// Superseded between the last tick and this callback.
		return
	}
	poll := c.active.poll
	c.active = nil

	if err := c.polls.SetActive(ctx, poll.ID, false); err != nil {
		logging.Log.Errorf("COORDINATOR: failed to persist poll %s as inactive: %v", poll.ID, err)
	}

	counts, err := c.ledger.CountByOption(ctx, poll.ID, len(poll.Options))
	if err != nil {
		logging.Log.Errorf("COORDINATOR: failed to aggregate answers for poll %s: %v", poll.ID, err)
		counts = make([]int, len(poll.Options))
	}

	correct := make([]int, 0)
	for i, option := range poll.Options {
		if option.IsCorrect {
			correct = append(correct, i)
		}
	}

	c.gateway.Publish(Event{
		Type: EventPollEnded,
		PollEnded: &PollEndedPayload{
			PollID:               poll.ID,
			Results:              ComputeResults(counts),
			CorrectOptionIndices: correct,
		},
	})
	logging.Log.Infof("COORDINATOR: poll %s ended", poll.ID)
}

func pollStartedPayload(poll *storage.Poll) *PollStartedPayload {
	return &PollStartedPayload{
		PollID:           poll.ID,
		Question:         poll.Question,
		Options:          sanitizeOptions(poll.Options),
		TimeLimitSeconds: poll.TimeLimitSeconds,
	}
}

func sanitizeOptions(options []storage.Option) []OptionView {
	views := make([]OptionView, 0, len(options))
	for _, option := range options {
		views = append(views, OptionView{Content: option.Content})
	}
	return views
}
