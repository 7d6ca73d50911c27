// Package inboxsync keeps a client's local notification inbox consistent
// with the server. It merges two racing data sources, a one-shot REST
// snapshot and a long-lived push stream, into a single deduplicated view
// with a derived unread counter. Console frontends and headless clients
// embed a Reconciler per signed-in recipient.
package inboxsync

import (
	"context"
	"errors"
	"time"
)

// Notification is one inbox entry as the client sees it.
type Notification struct {
	InstanceID string     `json:"id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Type       string     `json:"type"`
	FiredAt    time.Time  `json:"created_at"`
	IsRead     bool       `json:"is_read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
}

// SnapshotFetcher loads the authoritative inbox for a recipient,
// newest first.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, recipientID string) ([]Notification, error)
}

// Stream opens a live push subscription scoped to one recipient. The
// returned channel is closed when the stream drops; the caller decides
// when and how to resubscribe.
type Stream interface {
	Subscribe(ctx context.Context, recipientID string) (<-chan Notification, error)
}

// ReadStateWriter issues read-state mutations to the server so other
// sessions of the same recipient eventually observe them.
type ReadStateWriter interface {
	MarkRead(ctx context.Context, instanceID string) error
	MarkAllRead(ctx context.Context, recipientID string) error
}

// Alerter receives exactly one call per newly pushed notification. It is
// the hook for audio cues or desktop notifications; implementations must
// not block.
type Alerter interface {
	Alert(n Notification)
}

// AlerterFunc adapts a function to the Alerter interface.
type AlerterFunc func(n Notification)

// Alert calls f(n).
func (f AlerterFunc) Alert(n Notification) { f(n) }

// Backoff returns how long to wait before reconnect attempt n (n starts
// at 1). The counter resets after a successful resync.
type Backoff func(attempt int) time.Duration

// DefaultBackoff doubles from one second and caps at thirty.
func DefaultBackoff(attempt int) time.Duration {
	d := time.Second
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= 30*time.Second {
			return 30 * time.Second
		}
	}
	return d
}

// ErrClosed is returned by Reconciler methods after Run has returned.
var ErrClosed = errors.New("inboxsync: reconciler closed")
