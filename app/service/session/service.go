package session

import (
	"sync"

	"github.com/samber/do"
)

const historySize = 5

// Store keeps per-user conversational state: a bounded exchange history and
// the current stage. Lock serializes whole turns for one user identity;
// messages from different identities proceed independently.
type Store interface {
	Record(userID, query, response string)
	Fetch(userID string) []Exchange
	Stage(userID string) Stage
	SetStage(userID string, stage Stage)
	Lock(userID string) (unlock func())
}

var _ Store = (*Service)(nil)

type Service struct {
	mu       sync.RWMutex
	sessions map[string]*userSession
	locks    map[string]*sync.Mutex
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		sessions: make(map[string]*userSession),
		locks:    make(map[string]*sync.Mutex),
	}, nil
}

// Record appends an exchange, evicting the oldest entry beyond the history
// bound. Creates the session if the user is unknown.
func (s *Service) Record(userID, query, response string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreate(userID)

	exchange := Exchange{Query: query, Response: response}

	if len(sess.history) >= historySize {
		sess.history = append(sess.history[1:], exchange)
	} else {
		sess.history = append(sess.history, exchange)
	}
}

// Fetch returns a copy of the user's history in arrival order, empty for
// unknown users.
func (s *Service) Fetch(userID string) []Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}

	history := make([]Exchange, len(sess.history))
	copy(history, sess.history)

	return history
}

func (s *Service) Stage(userID string) Stage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return StageUninitialized
	}

	return sess.stage
}

func (s *Service) SetStage(userID string, stage Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.getOrCreate(userID).stage = stage
}

// Lock acquires the per-user turn lock and returns its release func.
func (s *Service) Lock(userID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}

func (s *Service) getOrCreate(userID string) *userSession {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &userSession{}
		s.sessions[userID] = sess
	}

	return sess
}
