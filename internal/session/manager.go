package session

import (
	"sync"

	"github.com/google/uuid"
)

// ContextFactory builds a Context for a new session ID.
type ContextFactory func(sessionID string) Context

// Manager hands out one Context per session ID. The transport layer owns
// session identity (header in, header out); the domain layer only ever
// sees the Context it is explicitly given.
type Manager struct {
	mu       sync.Mutex
	factory  ContextFactory
	sessions map[string]Context
}

// NewManager constructs a Manager. A nil factory defaults to in-memory
// contexts.
func NewManager(factory ContextFactory) *Manager {
	if factory == nil {
		factory = func(string) Context { return NewContext() }
	}
	return &Manager{factory: factory, sessions: make(map[string]Context)}
}

// Acquire returns the Context for sessionID, creating it on first use. A
// blank sessionID gets a fresh generated ID. The returned ID should be
// echoed back to the caller.
func (m *Manager) Acquire(sessionID string) (string, Context) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ctx, ok := m.sessions[sessionID]
	if !ok {
		ctx = m.factory(sessionID)
		m.sessions[sessionID] = ctx
	}
	return sessionID, ctx
}

// Drop discards the Context for sessionID.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
