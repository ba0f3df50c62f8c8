package storage

import (
	"context"
	"sync"
	"time"
)

// In-memory implementations of the storage interfaces, used for local runs
// without AWS and for tests. Same semantics as the Dynamo implementations,
// including the atomic check-and-insert on answers.

type MemoryIdentityStorage struct {
	mu         sync.RWMutex
	identities map[string]*Identity
}

func NewMemoryIdentityStorage() *MemoryIdentityStorage {
	return &MemoryIdentityStorage{identities: map[string]*Identity{}}
}

func (s *MemoryIdentityStorage) Get(_ context.Context, id string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.identities[id]
	if !ok {
		return nil, ErrIdentityNotFound
	}
	copied := *identity
	return &copied, nil
}

func (s *MemoryIdentityStorage) FindByNameAndRole(_ context.Context, name, role string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, identity := range s.identities {
		if identity.Name == name && identity.Role == role {
			copied := *identity
			return &copied, nil
		}
	}
	return nil, ErrIdentityNotFound
}

func (s *MemoryIdentityStorage) Create(_ context.Context, identity *Identity) error {
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *identity
	s.identities[identity.ID] = &copied
	return nil
}

type MemoryPollStorage struct {
	mu    sync.RWMutex
	polls map[string]*Poll
}

func NewMemoryPollStorage() *MemoryPollStorage {
	return &MemoryPollStorage{polls: map[string]*Poll{}}
}

func (s *MemoryPollStorage) Get(_ context.Context, id string) (*Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	poll, ok := s.polls[id]
	if !ok {
		return nil, ErrPollNotFound
	}
	copied := *poll
	return &copied, nil
}

func (s *MemoryPollStorage) GetActive(_ context.Context) (*Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, poll := range s.polls {
		if poll.Active {
			copied := *poll
			return &copied, nil
		}
	}
	return nil, ErrPollNotFound
}

func (s *MemoryPollStorage) Create(_ context.Context, poll *Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *poll
	s.polls[poll.ID] = &copied
	return nil
}

func (s *MemoryPollStorage) SetActive(_ context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	poll, ok := s.polls[id]
	if !ok {
		return ErrPollNotFound
	}
	poll.Active = active
	return nil
}

type MemoryAnswerStorage struct {
	mu      sync.Mutex
	answers map[string]map[string]*Answer // pollID -> respondentID -> answer
}

func NewMemoryAnswerStorage() *MemoryAnswerStorage {
	return &MemoryAnswerStorage{answers: map[string]map[string]*Answer{}}
}

func (s *MemoryAnswerStorage) Create(_ context.Context, answer *Answer) error {
	if answer.Timestamp.IsZero() {
		answer.Timestamp = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	byRespondent, ok := s.answers[answer.PollID]
	if !ok {
		byRespondent = map[string]*Answer{}
		s.answers[answer.PollID] = byRespondent
	}
	if _, exists := byRespondent[answer.RespondentID]; exists {
		return ErrAnswerExists
	}
	copied := *answer
	byRespondent[answer.RespondentID] = &copied
	return nil
}

func (s *MemoryAnswerStorage) ListByPoll(_ context.Context, pollID string) ([]*Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var answers []*Answer
	for _, answer := range s.answers[pollID] {
		copied := *answer
		answers = append(answers, &copied)
	}
	return answers, nil
}
