package chat

import (
	"PharmaCS/internal/lib/sl"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps one Context per live conversation, keyed by an opaque
// session id owned by the caller. Contexts never leak across sessions;
// sessions idle longer than the TTL are evicted by the janitor.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	sweep    time.Duration
	log      *slog.Logger
}

type session struct {
	ctx     Context
	touched time.Time
}

func NewSessionStore(ttl, sweep time.Duration, log *slog.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		sweep:    sweep,
		log:      log.With(sl.Module("chat.sessions")),
	}
}

// Issue creates a fresh session id for a new conversation.
func (s *SessionStore) Issue() string {
	return uuid.NewString()
}

// Get returns the context for a session; an unknown session yields a fresh
// empty context.
func (s *SessionStore) Get(id string) Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[id]; ok {
		return sess.ctx
	}
	return Context{}
}

// Put stores the successor context after a turn and refreshes the idle
// timer.
func (s *SessionStore) Put(id string, ctx Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &session{
		ctx:     ctx,
		touched: time.Now(),
	}
}

// Reset drops a session's context. Called when the conversation ends.
func (s *SessionStore) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Run sweeps stale sessions until the process exits. Call in a goroutine.
func (s *SessionStore) Run() {
	ticker := time.NewTicker(s.sweep)
	defer ticker.Stop()

	for range ticker.C {
		evicted := s.evictStale(time.Now())
		if evicted > 0 {
			s.log.With(slog.Int("evicted", evicted)).Debug("stale sessions evicted")
		}
	}
}

func (s *SessionStore) evictStale(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.touched) > s.ttl {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}
