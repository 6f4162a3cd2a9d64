package session

import (
	"fmt"
	"sync"
)

// Manager owns the live sessions, keyed by (channel, thread_ts).
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Get retrieves the session for a thread.
func (m *Manager) Get(channelID, threadTS string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[KeyOf(channelID, threadTS)]
	if !ok {
		return nil, fmt.Errorf("no session for thread %s", KeyOf(channelID, threadTS))
	}
	return s, nil
}

// GetOrCreate returns the thread's session, creating it on first use.
// The second return reports whether the session already existed.
func (m *Manager) GetOrCreate(channelID, threadTS, userID string) (*Session, bool) {
	key := KeyOf(channelID, threadTS)

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[key]; ok {
		return s, true
	}
	s := New(channelID, threadTS, userID)
	m.sessions[key] = s
	return s, false
}

// Replace installs a fresh session for a thread, finishing any
// pre-existing one. Start always replaces.
func (m *Manager) Replace(channelID, threadTS, userID string) *Session {
	key := KeyOf(channelID, threadTS)

	m.mu.Lock()
	old := m.sessions[key]
	s := New(channelID, threadTS, userID)
	m.sessions[key] = s
	m.mu.Unlock()

	if old != nil && !old.Completed {
		old.Finish(ThreadCanceled)
	}
	return s
}

// Remove drops a session from the registry. The session itself is
// finished by its owner, not here.
func (m *Manager) Remove(channelID, threadTS string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, KeyOf(channelID, threadTS))
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
