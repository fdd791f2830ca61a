package editing

import (
	"errors"
	"sync"
	"time"

	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/metrics"

	"github.com/google/uuid"
)

// Reasons a session leaves the registry without being submitted.
const (
	DiscardReasonUser = "user"
	DiscardReasonIdle = "idle"
)

// ErrSessionNotFound is the cause of lookups for unknown or expired sessions.
var ErrSessionNotFound = errors.New("editing session not found")

type registryEntry struct {
	session     *Session
	lastTouched time.Time
}

// Registry holds the open sessions of the process.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*registryEntry
	clock    ports.Clock
}

func NewRegistry(clock ports.Clock) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*registryEntry),
		clock:    clock,
	}
}

// Add registers s.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID()] = &registryEntry{session: s, lastTouched: r.clock.Now()}
	metrics.ActiveSessions.WithLabelValues(string(s.Mode())).Inc()
}

// Get returns the session and refreshes its idle timer.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause("session", id, ErrSessionNotFound)
	}
	e.lastTouched = r.clock.Now()
	return e.session, nil
}

// Remove closes and forgets the session. It reports whether it was present.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.removeLocked(id)
}

// Discard removes a session that was abandoned, recording why.
func (r *Registry) Discard(id uuid.UUID, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.removeLocked(id) {
		return errs.NewObjectNotFoundErrorWithCause("session", id, ErrSessionNotFound)
	}
	metrics.SessionsDiscarded.WithLabelValues(reason).Inc()
	return nil
}

// DiscardIdle drops sessions not touched within ttl. Sessions with a submission
// in flight are kept. The ids of dropped sessions are returned.
func (r *Registry) DiscardIdle(ttl time.Duration) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.clock.Now().Add(-ttl)
	var dropped []uuid.UUID
	for id, e := range r.sessions {
		if !e.lastTouched.Before(cutoff) || e.session.IsBusy() {
			continue
		}
		r.removeLocked(id)
		metrics.SessionsDiscarded.WithLabelValues(DiscardReasonIdle).Inc()
		dropped = append(dropped, id)
	}
	return dropped
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) removeLocked(id uuid.UUID) bool {
	e, ok := r.sessions[id]
	if !ok {
		return false
	}
	delete(r.sessions, id)
	e.session.close()
	metrics.ActiveSessions.WithLabelValues(string(e.session.Mode())).Dec()
	return true
}
