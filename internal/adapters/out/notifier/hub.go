// Package notifier implements the in-process notification broadcaster.
// It owns the set of currently connected staff subscriber sessions and fans
// lifecycle events out to all of them, best-effort.
package notifier

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ayobami7/click-and-collect-notif/internal/core/ports"

	"github.com/google/uuid"
)

// DefaultSessionBuffer is the per-session event buffer used when the
// configured size is not positive.
const DefaultSessionBuffer = 16

// Hub maintains the active staff subscriber set and implements
// ports.EventPublisher.
//
// Delivery semantics are at-most-once with no replay: a session that
// unsubscribes before a publish receives nothing, one that subscribes during
// a publish may or may not receive that specific event, and a session whose
// buffer is full has the event dropped. Publish never blocks on a slow
// subscriber and never holds the registry lock while delivering.
type Hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	bufferSize int
	logger     *slog.Logger
}

// NewHub creates an empty broadcaster hub.
func NewHub(bufferSize int, logger *slog.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultSessionBuffer
	}
	return &Hub{
		sessions:   make(map[uuid.UUID]*Session),
		bufferSize: bufferSize,
		logger:     logger.With("component", "notifier_hub"),
	}
}

// Subscribe registers a new staff subscriber session and immediately
// enqueues the connection_status acknowledgement for that session only.
func (h *Hub) Subscribe() *Session {
	session := newSession(uuid.New(), h.bufferSize)

	h.mu.Lock()
	h.sessions[session.ID()] = session
	h.mu.Unlock()

	session.send(ports.NewConnectionStatusEvent())

	h.logger.Info("staff device connected", "session_id", session.ID().String())
	return session
}

// Unsubscribe removes a session from the active set and closes its event
// channel. Idempotent: unknown or already removed IDs are a no-op.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	session, ok := h.sessions[id]
	if ok {
		delete(h.sessions, id)
	}
	h.mu.Unlock()

	if !ok {
		return
	}

	session.close()
	h.logger.Info("staff device disconnected", "session_id", id.String())
}

// Publish delivers the event to every session currently in the active set.
// The session map is snapshotted under the read lock and delivery happens
// outside it, so connects and disconnects never wait on a fan-out in
// progress. Publishing with no subscribers is a no-op, not an error.
func (h *Hub) Publish(ctx context.Context, event ports.Event) {
	h.mu.RLock()
	snapshot := make([]*Session, 0, len(h.sessions))
	for _, session := range h.sessions {
		snapshot = append(snapshot, session)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, session := range snapshot {
		if session.send(event) {
			delivered++
		} else {
			h.logger.WarnContext(ctx, "event dropped for session",
				"event", event.Name,
				"session_id", session.ID().String(),
			)
		}
	}

	h.logger.DebugContext(ctx, "event published",
		"event", event.Name,
		"subscribers", len(snapshot),
		"delivered", delivered,
	)
}

// SessionCount returns the number of currently connected sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Session is one connected staff device. The transport layer drains Events
// and forwards them over its wire connection.
type Session struct {
	id     uuid.UUID
	events chan ports.Event

	mu     sync.Mutex
	closed bool
}

func newSession(id uuid.UUID, bufferSize int) *Session {
	return &Session{
		id:     id,
		events: make(chan ports.Event, bufferSize),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Events returns the channel of events queued for this session. The channel
// is closed when the session is unsubscribed.
func (s *Session) Events() <-chan ports.Event {
	return s.events
}

// send enqueues an event without blocking. Returns false when the session is
// closed or its buffer is full; the event is then simply dropped.
func (s *Session) send(event ports.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.events <- event:
		return true
	default:
		return false
	}
}

// close marks the session closed and closes its channel exactly once.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}
