// Package realtime pushes fired notifications to connected console
// clients over WebSocket. The hub only carries live pushes; clients
// always re-sync their inbox from the REST snapshot on (re)connect.
package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"memberhub.io/memberhub/internal/pkg/logger"
)

// EventNewNotification is the event name on pushed frames.
const EventNewNotification = "new_notification"

// Envelope is the wire frame sent to clients.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// EncodeNewNotification builds the push frame for one inbox item.
func EncodeNewNotification(item interface{}) ([]byte, error) {
	payload, err := json.Marshal(Envelope{Event: EventNewNotification, Data: item})
	if err != nil {
		return nil, fmt.Errorf("encode push frame: %w", err)
	}
	return payload, nil
}

// Session is one client connection's view of the hub. Each session has
// its own buffered outbox so one slow client cannot stall the others.
type Session struct {
	recipientID string

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

// RecipientID returns the member the session belongs to.
func (s *Session) RecipientID() string {
	return s.recipientID
}

// Outbox is the channel the connection's write pump drains. It is closed
// when the session is unsubscribed or dropped.
func (s *Session) Outbox() <-chan []byte {
	return s.send
}

// close and trySend share the session mutex so a concurrent Publish can
// never send on a closed outbox.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

// trySend queues the payload without blocking. open reports whether the
// outbox was still accepting frames; delivered=false with open=true
// means the buffer was full.
func (s *Session) trySend(payload []byte) (delivered, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, false
	}
	select {
	case s.send <- payload:
		return true, true
	default:
		return false, true
	}
}

// Hub indexes live sessions by recipient. A recipient may hold several
// sessions (multiple tabs or devices); every one receives each push.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*Session]struct{}

	sendBuffer int
	closed     bool
}

// NewHub creates a hub whose sessions buffer up to sendBuffer frames.
func NewHub(sendBuffer int) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = 16
	}
	return &Hub{
		sessions:   make(map[string]map[*Session]struct{}),
		sendBuffer: sendBuffer,
	}
}

// Subscribe registers a new session for the recipient.
func (h *Hub) Subscribe(recipientID string) *Session {
	s := &Session{
		recipientID: recipientID,
		send:        make(chan []byte, h.sendBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		s.close()
		return s
	}
	if h.sessions[recipientID] == nil {
		h.sessions[recipientID] = make(map[*Session]struct{})
	}
	h.sessions[recipientID][s] = struct{}{}
	return s
}

// Unsubscribe removes the session and closes its outbox. Safe to call
// more than once.
func (h *Hub) Unsubscribe(s *Session) {
	h.mu.Lock()
	if set := h.sessions[s.recipientID]; set != nil {
		delete(set, s)
		if len(set) == 0 {
			delete(h.sessions, s.recipientID)
		}
	}
	h.mu.Unlock()

	s.close()
}

// HasSession reports whether the recipient currently has at least one
// live session. Fanout uses this to decide the delivery channel before
// pushing.
func (h *Hub) HasSession(recipientID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[recipientID]) > 0
}

// Publish sends the payload to every session of the recipient without
// blocking. A session whose outbox is full is dropped; the client's
// reconnect logic restores a consistent inbox from the snapshot, so
// dropping is safe.
func (h *Hub) Publish(recipientID string, payload []byte) int {
	h.mu.RLock()
	set := h.sessions[recipientID]
	targets := make([]*Session, 0, len(set))
	for s := range set {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, s := range targets {
		sent, open := s.trySend(payload)
		switch {
		case sent:
			delivered++
		case open:
			logger.Warn("dropping slow realtime session",
				zap.String("recipient", recipientID),
			)
			h.Unsubscribe(s)
		default:
			// Session closed between the snapshot and the send; it is
			// already unsubscribed or about to be.
		}
	}
	return delivered
}

// Close drops every session. New subscriptions after Close get an
// already-closed outbox.
func (h *Hub) Close() {
	h.mu.Lock()
	all := make([]*Session, 0)
	for _, set := range h.sessions {
		for s := range set {
			all = append(all, s)
		}
	}
	h.sessions = make(map[string]map[*Session]struct{})
	h.closed = true
	h.mu.Unlock()

	for _, s := range all {
		s.close()
	}
}
