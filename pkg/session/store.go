package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an untouched session is kept.
const DefaultTTL = 24 * time.Hour

// Store keeps sessions in memory, keyed by the id in the session cookie.
// Sessions idle for longer than the TTL are dropped: lookups treat them as
// unknown and Create sweeps them out.
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{sessions: map[string]*Session{}, ttl: ttl, now: time.Now}
}

// Get returns the session and marks it as seen.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if now.Sub(s.lastSeen) > st.ttl {
		delete(st.sessions, id)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

// Create registers a fresh signed-out session under a new random id.
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString())
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	st.sweep(now)
	s.lastSeen = now
	st.sessions[s.ID] = s
	return s
}

// sweep drops idle sessions, at most once per sweepInterval.
func (st *Store) sweep(now time.Time) {
	if now.Sub(st.lastSweep) < st.sweepInterval() {
		return
	}
	st.lastSweep = now
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.ttl {
			delete(st.sessions, id)
		}
	}
}

func (st *Store) sweepInterval() time.Duration {
	if st.ttl < time.Minute {
		return st.ttl
	}
	return time.Minute
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
