package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/pricing"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/scenarios"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/pkg/logger"
)

// DefaultSessionID is used when a request carries no session header, so a
// bare curl workflow behaves like the original single-user page.
const DefaultSessionID = "default"

// Session holds everything the server remembers for one client session: the
// current pricing result, the saved scenarios, and the in-flight quote guard.
// All state lives in process memory and dies with the session.
type Session struct {
	mu        sync.Mutex
	current   *pricing.Result
	scenarios *scenarios.Registry
	inFlight  bool
	lastSeen  time.Time
}

// BeginQuote claims the session's single quote slot; false means a previous
// oracle call is still outstanding.
func (s *Session) BeginQuote() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	s.lastSeen = time.Now()
	return true
}

func (s *Session) EndQuote() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.lastSeen = time.Now()
}

func (s *Session) SetCurrent(result *pricing.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = result
	s.lastSeen = time.Now()
}

func (s *Session) Current() *pricing.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.current
}

func (s *Session) Scenarios() *scenarios.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.scenarios
}

func (s *Session) idle(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.inFlight && now.Sub(s.lastSeen) > ttl
}

// Store keeps all live sessions, created lazily on first touch. A sweeper
// evicts idle sessions so the in-memory-only store stays bounded.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *logger.Logger
}

func NewStore(ttl time.Duration, log *logger.Logger) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      log,
	}
}

// Session returns the session for id, creating it on first use. An empty id
// maps to the shared default session.
func (st *Store) Session(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}

	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return sess
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if sess, ok = st.sessions[id]; ok {
		return sess
	}
	sess = &Session{
		scenarios: scenarios.NewRegistry(),
		lastSeen:  time.Now(),
	}
	st.sessions[id] = sess
	return sess
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle longer than the store TTL and returns how many
// were removed. Sessions with an outstanding quote are never evicted.
func (st *Store) Sweep() int {
	now := time.Now()

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, sess := range st.sessions {
		if sess.idle(now, st.ttl) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until ctx is cancelled.
func (st *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := st.Sweep(); removed > 0 {
					st.log.Info("expired sessions evicted",
						slog.Int("removed", removed),
						slog.Int("remaining", st.Len()),
					)
				}
			}
		}
	}()
}
