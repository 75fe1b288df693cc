// File path: internal/session/registry.go

// Package session gives every visitor an exclusively owned wizard and record
// store. Sessions live in memory only and disappear after an idle timeout.
package session

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/immensecng/cylinder-retest/internal/records"
	"github.com/immensecng/cylinder-retest/internal/wizard"
)

const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 10000
)

// Session is one visitor's state. Access the wizard and records through Do.
type Session struct {
	id string

	mu      sync.Mutex
	wizard  *wizard.Controller
	records *records.Store

	// guarded by Registry.mu
	lastSeen time.Time
}

// ID returns the session identifier carried in the cookie.
func (s *Session) ID() string {
	return s.id
}

// Do runs fn with exclusive access to the session's state.
func (s *Session) Do(fn func(w *wizard.Controller, r *records.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.wizard, s.records)
}

// Option configures a Registry.
type Option func(*Registry)

// WithTTL sets the idle timeout.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithMaxSessions caps live sessions; the least recently seen is evicted
// first.
func WithMaxSessions(max int) Option {
	return func(r *Registry) {
		if max > 0 {
			r.max = max
		}
	}
}

// WithSeedRecords preloads the demonstration records into new sessions.
func WithSeedRecords(enabled bool) Option {
	return func(r *Registry) {
		r.seed = enabled
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// Registry maps session ids to sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl  time.Duration
	max  int
	seed bool
	now  func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
		max:      DefaultMaxSessions,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Resolve returns the live session for id, or a new session when id is
// empty, unknown or expired. created reports which case applied.
func (r *Registry) Resolve(id string) (sess *Session, created bool) {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[strings.TrimSpace(id)]; ok {
		if now.Sub(existing.lastSeen) <= r.ttl {
			existing.lastSeen = now
			return existing, false
		}
		delete(r.sessions, existing.id)
	}
	return r.createLocked(now), true
}

// lookup returns a live session without creating or touching it.
func (r *Registry) lookup(id string) (*Session, bool) {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[strings.TrimSpace(id)]
	if !ok || now.Sub(sess.lastSeen) > r.ttl {
		return nil, false
	}
	return sess, true
}

// Len returns the number of tracked sessions, expired ones included until
// the next sweep.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, sess := range r.sessions {
		if now.Sub(sess.lastSeen) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled. onSweep, when set, sees
// the number of sessions removed and the number left.
func (r *Registry) Run(ctx context.Context, interval time.Duration, onSweep func(removed, live int)) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed := r.Sweep(r.now())
			if onSweep != nil {
				onSweep(removed, r.Len())
			}
		}
	}
}

func (r *Registry) createLocked(now time.Time) *Session {
	if len(r.sessions) >= r.max {
		r.evictOldestLocked(len(r.sessions) - r.max + 1)
	}
	var opts []records.Option
	if r.seed {
		opts = append(opts, records.WithRecords(records.SeedRecords()...))
	}
	sess := &Session{
		id:       r.freshIDLocked(),
		wizard:   wizard.New(),
		records:  records.NewStore(opts...),
		lastSeen: now,
	}
	r.sessions[sess.id] = sess
	return sess
}

func (r *Registry) freshIDLocked() string {
	for {
		id := uuid.NewString()
		if _, taken := r.sessions[id]; !taken {
			return id
		}
	}
}

func (r *Registry) evictOldestLocked(n int) {
	if n <= 0 {
		return
	}
	type aged struct {
		id   string
		seen time.Time
	}
	all := make([]aged, 0, len(r.sessions))
	for id, sess := range r.sessions {
		all = append(all, aged{id: id, seen: sess.lastSeen})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seen.Before(all[j].seen) })
	for i := 0; i < n && i < len(all); i++ {
		delete(r.sessions, all[i].id)
	}
}
