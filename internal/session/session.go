package session

import (
	"sync"
	"time"

	"github.com/rakeshutekar/github-mcp/internal/dispatch"
	"github.com/rakeshutekar/github-mcp/internal/protocol"
	"github.com/rakeshutekar/github-mcp/internal/registry"

	"github.com/zeromicro/go-zero/core/logx"
)

// Session is one caller-scoped binding: an opaque identifier plus the
// dispatcher that serves it. Sessions are owned exclusively by the Manager;
// the transport only holds references.
type Session struct {
	ID         string
	CreatedAt  time.Time
	LastActive time.Time
	Dispatcher *dispatch.Dispatcher
}

// ManagerOptions configures a session Manager.
type ManagerOptions struct {
	// OnCreate is the session-initialization callback, run after a new
	// session is recorded and before it serves its first message. May be nil.
	OnCreate func(*Session)

	// IdleTimeout evicts sessions with no traffic for this long. <= 0
	// disables eviction and sessions live until explicit termination.
	IdleTimeout time.Duration

	// SweepInterval is how often the sweeper looks for idle sessions.
	// Defaults to 5 minutes when eviction is enabled.
	SweepInterval time.Duration
}

const defaultSweepInterval = 5 * time.Minute

// Manager owns the session table. Lookups take the read lock and proceed in
// parallel; creation and termination serialize on the write lock so that an
// insert for a given identifier is a single atomic step.
type Manager struct {
	registry *registry.Registry
	onCreate func(*Session)

	idleTimeout   time.Duration
	sweepInterval time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	sweepOnce sync.Once
	stopOnce  sync.Once
	sweepStop chan struct{}
}

// NewManager creates a session manager over the shared registry. opt may be
// nil for defaults (no eviction).
func NewManager(reg *registry.Registry, opt *ManagerOptions) *Manager {
	if opt == nil {
		opt = &ManagerOptions{}
	}
	sweepInterval := opt.SweepInterval
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	return &Manager{
		registry:      reg,
		onCreate:      opt.OnCreate,
		idleTimeout:   opt.IdleTimeout,
		sweepInterval: sweepInterval,
		sessions:      make(map[string]*Session),
		sweepStop:     make(chan struct{}),
	}
}

// Resolve returns the session for the presented identifier, creating a fresh
// one when the identifier is absent or unrecognized. An unrecognized
// identifier is never adopted; the caller is handed a newly generated token
// distinct from any currently active one.
func (m *Manager) Resolve(id string) (*Session, bool) {
	if id != "" {
		m.mu.RLock()
		existing := m.sessions[id]
		m.mu.RUnlock()
		if existing != nil {
			m.touch(existing)
			return existing, false
		}
	}

	now := time.Now()
	s := &Session{CreatedAt: now, LastActive: now}

	m.mu.Lock()
	s.ID = protocol.NewSessionID()
	for m.sessions[s.ID] != nil {
		// Practically unreachable, but an insert must never overwrite
		// another session's registration.
		s.ID = protocol.NewSessionID()
	}
	s.Dispatcher = dispatch.New(s.ID, m.registry)
	m.sessions[s.ID] = s
	m.mu.Unlock()

	logx.Debugf("Created new session, session_id=%s", s.ID)
	if m.onCreate != nil {
		m.onCreate(s)
	}
	return s, true
}

// Get returns the session for the identifier, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Terminate removes the binding for the identifier and reports whether one
// existed. Terminating twice yields true then false, never an error.
func (m *Manager) Terminate(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		logx.Debugf("Session not found, session_id=%s", id)
		return false
	}
	delete(m.sessions, id)
	logx.Debugf("Session terminated, session_id=%s", id)
	return true
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// List returns the active session identifiers.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// touch records traffic on a session so the sweeper keeps it alive. The
// session may have been terminated since the lookup; that is fine, the write
// is then invisible.
func (m *Manager) touch(s *Session) {
	m.mu.Lock()
	s.LastActive = time.Now()
	m.mu.Unlock()
}

// StartSweeper launches the idle-eviction goroutine and returns a stop
// function. It is a no-op when eviction is disabled.
func (m *Manager) StartSweeper() func() {
	if m.idleTimeout <= 0 {
		return func() {}
	}
	m.sweepOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(m.sweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-m.sweepStop:
					return
				case <-ticker.C:
					m.sweep(time.Now())
				}
			}
		}()
	})
	return func() {
		m.stopOnce.Do(func() { close(m.sweepStop) })
	}
}

// sweep evicts sessions idle longer than the configured timeout.
func (m *Manager) sweep(now time.Time) {
	cutoff := now.Add(-m.idleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.LastActive.Before(cutoff) {
			delete(m.sessions, id)
			logx.Debugf("Evicted idle session, session_id=%s, idle=%s", id, now.Sub(s.LastActive))
		}
	}
}
