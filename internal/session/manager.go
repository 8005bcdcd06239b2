package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Factory builds a session for a new id
type Factory func(id string) *Session

// Manager owns the live sessions of the web UI
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  Factory
	timeout  time.Duration
}

// NewManager creates a session manager. Sessions idle for longer than timeout
// are removed by Expire; a zero timeout disables expiry.
func NewManager(timeout time.Duration, factory Factory) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		factory:  factory,
		timeout:  timeout,
	}
}

// Create starts a session under a fresh id
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createLocked(uuid.NewString())
}

// createLocked must be called with the lock held
func (m *Manager) createLocked(id string) *Session {
	s := m.factory(id)
	m.sessions[s.ID()] = s
	return s
}

// Get returns an existing session
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, starting a new one (under a new id)
// when id is unknown. created reports whether a new session was started.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok && id != "" {
		return s, false
	}
	return m.createLocked(uuid.NewString()), true
}

// Delete ends a session
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.Do(func(s *Session) { s.Close() })
	}
	return ok
}

// Expire ends every session idle since before now-timeout and returns how
// many were removed
func (m *Manager) Expire(now time.Time) int {
	if m.timeout <= 0 {
		return 0
	}

	// LastUsed waits on a busy session, so it is never read under m.mu
	m.mu.Lock()
	snapshot := make(map[string]*Session, len(m.sessions))
	for id, s := range m.sessions {
		snapshot[id] = s
	}
	m.mu.Unlock()

	idle := make(map[string]*Session)
	for id, s := range snapshot {
		if now.Sub(s.LastUsed()) > m.timeout {
			idle[id] = s
		}
	}

	m.mu.Lock()
	var expired []*Session
	for id, s := range idle {
		if m.sessions[id] == s {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Do(func(s *Session) { s.Close() })
	}
	return len(expired)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CloseAll ends every session
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Do(func(s *Session) { s.Close() })
	}
}
