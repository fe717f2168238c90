package session

import (
	"sync"
	"time"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
)

// Manager tracks live sessions by id and evicts idle ones.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	language assistant.Language
}

// NewManager creates a manager. Sessions idle longer than ttl are dropped by
// Sweep; zero ttl disables eviction.
func NewManager(defaultLanguage assistant.Language, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		language: defaultLanguage,
	}
}

// Get returns the session for id, creating it on first use.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := New(id, m.language)
	m.sessions[id] = s
	return s
}

// Sweep drops sessions idle longer than the ttl and returns how many went.
func (m *Manager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-m.ttl)
	dropped := 0
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
