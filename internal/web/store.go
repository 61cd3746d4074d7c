package web

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/justinabrahms/hotseat/internal/chess"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrTooManySessions = errors.New("too many active games")
)

// Session is one hot-seat game. The engine is not safe for concurrent use,
// so every access goes through Do.
type Session struct {
	ID      string
	Created time.Time

	mu         sync.Mutex
	engine     *chess.Engine
	lastActive time.Time
}

// Do runs fn with exclusive access to the session's engine and marks the
// session active.
func (s *Session) Do(fn func(e *chess.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return fn(s.engine)
}

// View runs fn with exclusive access to the engine without counting as
// activity. fn must not change the game.
func (s *Session) View(fn func(e *chess.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Snapshot returns the current position under the session lock.
func (s *Session) Snapshot() chess.Snapshot {
	var snap chess.Snapshot
	s.View(func(e *chess.Engine) {
		snap = e.Snapshot()
	})
	return snap
}

// GameStore keeps sessions in memory, keyed by a random UUID.
type GameStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	max      int

	// notifier builds the engine's notification sink for a new game
	notifier func(gameID string) chess.Notifier
}

func NewGameStore(max int, notifier func(gameID string) chess.Notifier) *GameStore {
	return &GameStore{
		sessions: make(map[string]*Session),
		max:      max,
		notifier: notifier,
	}
}

// Create starts a new game in the standard position.
func (s *GameStore) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.max {
		return nil, ErrTooManySessions
	}

	id := uuid.NewString()
	var n chess.Notifier
	if s.notifier != nil {
		n = s.notifier(id)
	}
	now := time.Now()
	session := &Session{
		ID:         id,
		Created:    now,
		engine:     chess.NewGame(n),
		lastActive: now,
	}
	s.sessions[id] = session
	return session, nil
}

func (s *GameStore) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrGameNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (s *GameStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrGameNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *GameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// List returns every session, oldest first.
func (s *GameStore) List() []*Session {
	s.mu.RLock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Created.Before(sessions[j].Created)
	})
	return sessions
}

// Prune drops sessions with no activity since cutoff and returns their IDs.
func (s *GameStore) Prune(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stale []string
	for id, session := range s.sessions {
		if session.LastActive().Before(cutoff) {
			delete(s.sessions, id)
			stale = append(stale, id)
		}
	}
	sort.Strings(stale)
	return stale
}
