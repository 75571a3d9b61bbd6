package models

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
)

// DefaultSessionTTL is how long an idle visitor's page state is kept
const DefaultSessionTTL = 30 * time.Minute

// DefaultMaxSessions caps live sessions when no limit is configured
const DefaultMaxSessions = 10000

// PageSession is one visitor's page state. All access goes through Do so
// that interactions for the same visitor run one at a time.
type PageSession struct {
	ID string

	mu       sync.Mutex
	register *RegistrationPage
	login    *LoginPage
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's pages
func (s *PageSession) Do(fn func(reg *RegistrationPage, login *LoginPage)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.register, s.login)
}

// SessionStore keeps page sessions in memory. Nothing is written to disk.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*PageSession
	ttl      time.Duration
	limit    int
	now      func() time.Time
}

// NewSessionStore returns an empty store; a non-positive ttl uses DefaultSessionTTL
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*PageSession),
		ttl:      ttl,
		limit:    DefaultMaxSessions,
		now:      time.Now,
	}
}

// SetLimit caps the number of live sessions. When the store is full the
// least recently seen session makes room for a new one. Zero removes the cap.
func (st *SessionStore) SetLimit(n int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.limit = n
}

// NewSessionID returns a fresh random session id
func NewSessionID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating fresh pages when it is new or expired
func (st *SessionStore) Get(id string) *PageSession {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	s, ok := st.sessions[id]
	if !ok && st.limit > 0 && len(st.sessions) >= st.limit {
		st.evictOldest()
	}
	if !ok || now.Sub(s.lastSeen) > st.ttl {
		s = &PageSession{
			ID:       id,
			register: NewRegistrationPage(),
			login:    NewLoginPage(),
		}
		st.sessions[id] = s
	}
	s.lastSeen = now
	return s
}

// evictOldest drops the least recently seen session. Callers hold st.mu.
func (st *SessionStore) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, s := range st.sessions {
		if oldestID == "" || s.lastSeen.Before(oldest) {
			oldestID, oldest = id, s.lastSeen
		}
	}
	if oldestID != "" {
		delete(st.sessions, oldestID)
		logger.Debug("Evicted page session to stay under the limit", "limit", st.limit)
	}
}

// Len is the number of live sessions
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle longer than the TTL and returns how many went
func (st *SessionStore) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps on every interval until ctx is done
func (st *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				logger.Debug("Swept idle page sessions", "removed", n, "remaining", st.Len())
			}
		}
	}
}
