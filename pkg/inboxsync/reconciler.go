package inboxsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Options configures a Reconciler. RecipientID, Snapshots, Stream and
// ReadState are required.
type Options struct {
	RecipientID string
	Snapshots   SnapshotFetcher
	Stream      Stream
	ReadState   ReadStateWriter

	// Alerter fires once per live-pushed notification. Optional.
	Alerter Alerter
	// Backoff paces reconnect attempts. Defaults to DefaultBackoff.
	Backoff Backoff
	// Logger defaults to a nop logger.
	Logger *zap.Logger
}

// Reconciler owns one recipient's local inbox view. All state lives on
// the Run goroutine; public methods hand work to that goroutine over a
// command channel and wait for the result, so callers never race the
// merge logic.
type Reconciler struct {
	recipientID string
	snapshots   SnapshotFetcher
	stream      Stream
	readState   ReadStateWriter
	alerter     Alerter
	backoff     Backoff
	log         *zap.Logger

	cmds chan command
	done chan struct{}

	// loop-owned state
	entries map[string]Notification
	order   []string // instance ids, newest first
}

type command struct {
	fn    func(ctx context.Context) error
	reply chan error
}

// New validates opts and builds a Reconciler. Run must be called before
// any other method is useful.
func New(opts Options) (*Reconciler, error) {
	if opts.RecipientID == "" {
		return nil, errors.New("inboxsync: recipient id is required")
	}
	if opts.Snapshots == nil || opts.Stream == nil || opts.ReadState == nil {
		return nil, errors.New("inboxsync: snapshots, stream and read-state writer are required")
	}
	if opts.Backoff == nil {
		opts.Backoff = DefaultBackoff
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Reconciler{
		recipientID: opts.RecipientID,
		snapshots:   opts.Snapshots,
		stream:      opts.Stream,
		readState:   opts.ReadState,
		alerter:     opts.Alerter,
		backoff:     opts.Backoff,
		log:         opts.Logger,
		cmds:        make(chan command),
		done:        make(chan struct{}),
		entries:     make(map[string]Notification),
	}, nil
}

// Run drives the session until ctx is cancelled: subscribe, snapshot,
// merge pushes, and on any stream drop resubscribe with a fresh snapshot
// first. Pushes during an outage are unrecoverable from the stream alone,
// which is why a reconnect never resumes without resyncing.
func (r *Reconciler) Run(ctx context.Context) error {
	defer close(r.done)

	attempt := 0
	for {
		synced, err := r.runSession(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if synced {
			attempt = 0
		}
		attempt++
		delay := r.backoff(attempt)
		r.log.Warn("notification stream dropped, reconnecting",
			zap.String("recipient_id", r.recipientID),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err := r.waitReconnect(ctx, delay); err != nil {
			return err
		}
	}
}

// runSession opens the subscription before fetching the snapshot so no
// firing can fall between the two; anything pushed while the snapshot is
// in flight buffers on the stream channel and the merge deduplicates it.
// Returns synced=true once the snapshot was applied.
func (r *Reconciler) runSession(ctx context.Context) (bool, error) {
	updates, err := r.stream.Subscribe(ctx, r.recipientID)
	if err != nil {
		return false, fmt.Errorf("subscribe: %w", err)
	}

	snap, err := r.snapshots.FetchSnapshot(ctx, r.recipientID)
	if err != nil {
		return false, fmt.Errorf("fetch snapshot: %w", err)
	}
	r.applySnapshot(snap)

	for {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case cmd := <-r.cmds:
			cmd.reply <- cmd.fn(ctx)
		case n, ok := <-updates:
			if !ok {
				return true, errors.New("stream closed")
			}
			r.applyPush(n)
		}
	}
}

// waitReconnect sleeps the backoff delay while still serving commands so
// a markAsRead issued during an outage fails fast at the transport
// instead of hanging behind the reconnect.
func (r *Reconciler) waitReconnect(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.cmds:
			cmd.reply <- cmd.fn(ctx)
		case <-timer.C:
			return nil
		}
	}
}

// applySnapshot merges the authoritative snapshot into the local view.
// Entries only the local view knows (pushed after the snapshot was taken
// server-side) stay at the head; read state is monotonic, so a record
// read locally never flips back on a stale snapshot.
func (r *Reconciler) applySnapshot(items []Notification) {
	inSnapshot := make(map[string]struct{}, len(items))
	for _, n := range items {
		inSnapshot[n.InstanceID] = struct{}{}
	}

	merged := make([]string, 0, len(r.order)+len(items))
	for _, id := range r.order {
		if _, ok := inSnapshot[id]; !ok {
			merged = append(merged, id)
		}
	}
	for _, n := range items {
		if prev, ok := r.entries[n.InstanceID]; ok && prev.IsRead {
			n.IsRead = true
			n.ReadAt = prev.ReadAt
		}
		r.entries[n.InstanceID] = n
		merged = append(merged, n.InstanceID)
	}
	r.order = merged
}

// applyPush inserts a pushed notification at the head of the view. The
// wire is at-least-once, so a duplicate instance id is an idempotent
// no-op and never re-alerts.
func (r *Reconciler) applyPush(n Notification) {
	if _, ok := r.entries[n.InstanceID]; ok {
		return
	}
	r.entries[n.InstanceID] = n
	r.order = append([]string{n.InstanceID}, r.order...)
	if r.alerter != nil {
		r.alerter.Alert(n)
	}
}

func (r *Reconciler) unread() int {
	n := 0
	for _, e := range r.entries {
		if !e.IsRead {
			n++
		}
	}
	return n
}

// do runs fn on the loop goroutine and waits for its result.
func (r *Reconciler) do(ctx context.Context, fn func(ctx context.Context) error) error {
	cmd := command{fn: fn, reply: make(chan error, 1)}
	select {
	case r.cmds <- cmd:
	case <-r.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.reply:
		return err
	case <-r.done:
		return ErrClosed
	}
}

// Inbox returns the current local view, newest first.
func (r *Reconciler) Inbox(ctx context.Context) ([]Notification, error) {
	var out []Notification
	err := r.do(ctx, func(context.Context) error {
		out = make([]Notification, 0, len(r.order))
		for _, id := range r.order {
			out = append(out, r.entries[id])
		}
		return nil
	})
	return out, err
}

// UnreadCount returns the derived unread counter. It is recomputed from
// the entries on every call rather than tracked as its own number, so it
// cannot drift from the records.
func (r *Reconciler) UnreadCount(ctx context.Context) (int, error) {
	var n int
	err := r.do(ctx, func(context.Context) error {
		n = r.unread()
		return nil
	})
	return n, err
}

// MarkAsRead marks one notification read. Idempotent: an already-read
// entry returns nil without touching the server. The server mutation
// lands before the local flip so a transport failure leaves the view
// honest.
func (r *Reconciler) MarkAsRead(ctx context.Context, instanceID string) error {
	return r.do(ctx, func(context.Context) error {
		if e, ok := r.entries[instanceID]; ok && e.IsRead {
			return nil
		}
		if err := r.readState.MarkRead(ctx, instanceID); err != nil {
			return fmt.Errorf("mark read %s: %w", instanceID, err)
		}
		if e, ok := r.entries[instanceID]; ok {
			now := time.Now().UTC()
			e.IsRead = true
			e.ReadAt = &now
			r.entries[instanceID] = e
		}
		return nil
	})
}

// MarkAllAsRead snapshots the currently-unread id set and marks exactly
// those read. A notification pushed concurrently with the call is not in
// that set and stays unread.
func (r *Reconciler) MarkAllAsRead(ctx context.Context) error {
	return r.do(ctx, func(context.Context) error {
		unreadIDs := make([]string, 0, len(r.order))
		for _, id := range r.order {
			if !r.entries[id].IsRead {
				unreadIDs = append(unreadIDs, id)
			}
		}
		if len(unreadIDs) == 0 {
			return nil
		}
		if err := r.readState.MarkAllRead(ctx, r.recipientID); err != nil {
			return fmt.Errorf("mark all read: %w", err)
		}
		now := time.Now().UTC()
		for _, id := range unreadIDs {
			e := r.entries[id]
			e.IsRead = true
			e.ReadAt = &now
			r.entries[id] = e
		}
		return nil
	})
}
