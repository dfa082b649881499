package storage

import (
	"sync"
	"time"

	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

type sessionEntry struct {
	session   *service.Session
	touchedAt time.Time
}

// SessionStorage keeps active game sessions in memory by id.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	idleTTL  time.Duration
	now      func() time.Time
	onEvict  []func(id string)
}

// NewSessionStorage creates a storage whose sessions expire after idleTTL
// without activity.
func NewSessionStorage(idleTTL time.Duration) *SessionStorage {
	return &SessionStorage{
		sessions: make(map[string]*sessionEntry),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// OnEvict registers fn to be called with the id of every session that is
// deleted or swept. Register hooks before serving requests.
func (s *SessionStorage) OnEvict(fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = append(s.onEvict, fn)
}

func (s *SessionStorage) evicted(session *service.Session) {
	session.Leave()

	s.mu.RLock()
	hooks := s.onEvict
	s.mu.RUnlock()

	for _, fn := range hooks {
		fn(session.ID())
	}
}

// Store saves a session, leaving any session previously stored under the same id.
func (s *SessionStorage) Store(session *service.Session) {
	s.mu.Lock()
	prev, hadPrev := s.sessions[session.ID()]
	s.sessions[session.ID()] = &sessionEntry{session: session, touchedAt: s.now()}
	s.mu.Unlock()

	if hadPrev && prev.session != session {
		prev.session.Leave()
	}
}

// Get returns the session with the given id and marks it as used.
func (s *SessionStorage) Get(id string) (*service.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.touchedAt = s.now()
	return e.session, true
}

// Delete leaves and removes the session. It reports whether it existed.
func (s *SessionStorage) Delete(id string) bool {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		s.evicted(e.session)
	}
	return ok
}

// SweepIdle leaves and removes sessions untouched for longer than the idle TTL.
// It returns the number of evicted sessions.
func (s *SessionStorage) SweepIdle() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	var evicted []*service.Session
	for id, e := range s.sessions {
		if e.touchedAt.Before(cutoff) {
			evicted = append(evicted, e.session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range evicted {
		s.evicted(session)
	}
	return len(evicted)
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
