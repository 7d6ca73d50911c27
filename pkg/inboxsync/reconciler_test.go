package inboxsync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	mu         sync.Mutex
	current    chan Notification
	subscribes int
	subscribed chan struct{}
}

func newFakeStream() *fakeStream {
	return &fakeStream{subscribed: make(chan struct{}, 16)}
}

func (f *fakeStream) Subscribe(_ context.Context, _ string) (<-chan Notification, error) {
	f.mu.Lock()
	ch := make(chan Notification, 16)
	f.current = ch
	f.subscribes++
	f.mu.Unlock()
	f.subscribed <- struct{}{}
	return ch, nil
}

func (f *fakeStream) push(n Notification) {
	f.mu.Lock()
	ch := f.current
	f.mu.Unlock()
	ch <- n
}

func (f *fakeStream) drop() {
	f.mu.Lock()
	ch := f.current
	f.current = nil
	f.mu.Unlock()
	close(ch)
}

func (f *fakeStream) subscribeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subscribes
}

type fakeSnapshots struct {
	mu      sync.Mutex
	queue   [][]Notification
	fetches int
	gate    chan struct{}
}

func (f *fakeSnapshots) FetchSnapshot(ctx context.Context, _ string) ([]Notification, error) {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if len(f.queue) == 0 {
		return nil, nil
	}
	snap := f.queue[0]
	if len(f.queue) > 1 {
		f.queue = f.queue[1:]
	}
	return snap, nil
}

func (f *fakeSnapshots) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

type fakeWriter struct {
	mu           sync.Mutex
	markReadIDs  []string
	markAllCalls int
	err          error
}

func (f *fakeWriter) MarkRead(_ context.Context, instanceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.markReadIDs = append(f.markReadIDs, instanceID)
	return nil
}

func (f *fakeWriter) MarkAllRead(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.markAllCalls++
	return nil
}

func (f *fakeWriter) markReadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.markReadIDs)
}

type fakeAlerter struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFakeAlerter() *fakeAlerter {
	return &fakeAlerter{counts: make(map[string]int)}
}

func (f *fakeAlerter) Alert(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[n.InstanceID]++
}

func (f *fakeAlerter) count(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[id]
}

func unreadNotification(id string) Notification {
	return Notification{InstanceID: id, Title: "t-" + id, Message: "m", Type: "ANNOUNCEMENT", FiredAt: time.Now().UTC()}
}

func readNotification(id string) Notification {
	n := unreadNotification(id)
	n.IsRead = true
	at := n.FiredAt.Add(time.Minute)
	n.ReadAt = &at
	return n
}

type fixture struct {
	r       *Reconciler
	stream  *fakeStream
	snaps   *fakeSnapshots
	writer  *fakeWriter
	alerter *fakeAlerter
	runErr  chan error
}

func startReconciler(t *testing.T, snaps *fakeSnapshots) (*fixture, context.Context) {
	t.Helper()

	fx := &fixture{
		stream:  newFakeStream(),
		snaps:   snaps,
		writer:  &fakeWriter{},
		alerter: newFakeAlerter(),
		runErr:  make(chan error, 1),
	}

	r, err := New(Options{
		RecipientID: "member-anna",
		Snapshots:   snaps,
		Stream:      fx.stream,
		ReadState:   fx.writer,
		Alerter:     fx.alerter,
		Backoff:     func(int) time.Duration { return time.Millisecond },
	})
	require.NoError(t, err)
	fx.r = r

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { fx.runErr <- r.Run(ctx) }()
	return fx, ctx
}

func requireUnread(t *testing.T, ctx context.Context, r *Reconciler, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		n, err := r.UnreadCount(ctx)
		return err == nil && n == want
	}, 2*time.Second, 5*time.Millisecond, "unread count never reached %d", want)
}

func TestNewValidatesOptions(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{}
	stream := newFakeStream()
	writer := &fakeWriter{}

	cases := []struct {
		name string
		opts Options
	}{
		{"missing recipient", Options{Snapshots: snaps, Stream: stream, ReadState: writer}},
		{"missing snapshots", Options{RecipientID: "m", Stream: stream, ReadState: writer}},
		{"missing stream", Options{RecipientID: "m", Snapshots: snaps, ReadState: writer}},
		{"missing writer", Options{RecipientID: "m", Snapshots: snaps, Stream: stream}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opts); err == nil {
				t.Fatal("New() error = nil, want error")
			}
		})
	}
}

func TestInitialSnapshotPopulatesView(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{queue: [][]Notification{{
		unreadNotification("n5"),
		readNotification("n4"),
		unreadNotification("n3"),
		readNotification("n2"),
		unreadNotification("n1"),
	}}}
	fx, ctx := startReconciler(t, snaps)

	inbox, err := fx.r.Inbox(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 5)
	require.Equal(t, "n5", inbox[0].InstanceID, "snapshot order must be preserved, newest first")

	requireUnread(t, ctx, fx.r, 3)
	require.Zero(t, fx.alerter.count("n5"), "snapshot items must not alert")
}

func TestPushBeforeSnapshotCompletesDeduplicates(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	snaps := &fakeSnapshots{
		gate: gate,
		queue: [][]Notification{{
			unreadNotification("n-x"),
			readNotification("n-old"),
		}},
	}
	fx, ctx := startReconciler(t, snaps)

	// The subscription is open but the snapshot is still in flight.
	<-fx.stream.subscribed
	fx.stream.push(unreadNotification("n-x"))
	close(gate)

	requireUnread(t, ctx, fx.r, 1)
	inbox, err := fx.r.Inbox(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 2, "instance seen from both sources must appear exactly once")
	require.Equal(t, "n-x", inbox[0].InstanceID)
}

func TestLivePushAlertsExactlyOnce(t *testing.T) {
	t.Parallel()

	fx, ctx := startReconciler(t, &fakeSnapshots{})
	requireUnread(t, ctx, fx.r, 0)

	n := unreadNotification("n-live")
	fx.stream.push(n)
	fx.stream.push(n) // at-least-once wire: duplicate frame

	requireUnread(t, ctx, fx.r, 1)
	inbox, err := fx.r.Inbox(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	require.Equal(t, 1, fx.alerter.count("n-live"), "duplicate push must not re-alert")
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{queue: [][]Notification{{unreadNotification("n1")}}}
	fx, ctx := startReconciler(t, snaps)
	requireUnread(t, ctx, fx.r, 1)

	require.NoError(t, fx.r.MarkAsRead(ctx, "n1"))
	requireUnread(t, ctx, fx.r, 0)

	require.NoError(t, fx.r.MarkAsRead(ctx, "n1"))
	requireUnread(t, ctx, fx.r, 0)
	require.Equal(t, 1, fx.writer.markReadCount(), "second MarkAsRead must not hit the server")
}

func TestMarkAsReadServerFailureLeavesViewUnchanged(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{queue: [][]Notification{{unreadNotification("n1")}}}
	fx, ctx := startReconciler(t, snaps)
	requireUnread(t, ctx, fx.r, 1)

	fx.writer.mu.Lock()
	fx.writer.err = errors.New("boom")
	fx.writer.mu.Unlock()

	require.Error(t, fx.r.MarkAsRead(ctx, "n1"))
	requireUnread(t, ctx, fx.r, 1)
}

func TestMarkAllAsReadSnapshotsTheUnreadSet(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{queue: [][]Notification{{
		unreadNotification("n5"),
		readNotification("n4"),
		unreadNotification("n3"),
		readNotification("n2"),
		unreadNotification("n1"),
	}}}
	fx, ctx := startReconciler(t, snaps)
	requireUnread(t, ctx, fx.r, 3)

	fx.stream.push(unreadNotification("n6"))
	requireUnread(t, ctx, fx.r, 4)

	require.NoError(t, fx.r.MarkAllAsRead(ctx))
	requireUnread(t, ctx, fx.r, 0)
	require.Equal(t, 1, fx.writer.markAllCalls)

	// A push arriving after the sweep stays unread.
	fx.stream.push(unreadNotification("n7"))
	requireUnread(t, ctx, fx.r, 1)

	inbox, err := fx.r.Inbox(ctx)
	require.NoError(t, err)
	unread := 0
	for _, n := range inbox {
		if !n.IsRead {
			unread++
			require.Equal(t, "n7", n.InstanceID)
		}
	}
	require.Equal(t, 1, unread, "derived counter must match the records")
}

func TestReconnectFetchesFreshSnapshot(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{queue: [][]Notification{
		{unreadNotification("n1")},
		{unreadNotification("n-missed"), unreadNotification("n1")},
	}}
	fx, ctx := startReconciler(t, snaps)
	requireUnread(t, ctx, fx.r, 1)

	fx.stream.drop()

	require.Eventually(t, func() bool { return fx.stream.subscribeCount() == 2 }, 2*time.Second, 5*time.Millisecond)
	requireUnread(t, ctx, fx.r, 2)
	require.Equal(t, 2, snaps.fetchCount(), "every resubscribe needs a fresh snapshot")
	require.Zero(t, fx.alerter.count("n-missed"), "snapshot-recovered items must not alert")
}

func TestStaleSnapshotNeverUnreads(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{queue: [][]Notification{
		{unreadNotification("n1")},
		{unreadNotification("n1")}, // server has not seen the read yet
	}}
	fx, ctx := startReconciler(t, snaps)
	requireUnread(t, ctx, fx.r, 1)

	require.NoError(t, fx.r.MarkAsRead(ctx, "n1"))
	requireUnread(t, ctx, fx.r, 0)

	fx.stream.drop()
	require.Eventually(t, func() bool { return snaps.fetchCount() == 2 }, 2*time.Second, 5*time.Millisecond)

	requireUnread(t, ctx, fx.r, 0)
	inbox, err := fx.r.Inbox(ctx)
	require.NoError(t, err)
	require.True(t, inbox[0].IsRead, "read state is monotonic across resyncs")
}

func TestMethodsAfterRunReturnsErrClosed(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{}
	fx := &fixture{
		stream:  newFakeStream(),
		snaps:   snaps,
		writer:  &fakeWriter{},
		alerter: newFakeAlerter(),
	}
	r, err := New(Options{
		RecipientID: "member-anna",
		Snapshots:   snaps,
		Stream:      fx.stream,
		ReadState:   fx.writer,
		Alerter:     fx.alerter,
		Backoff:     func(int) time.Duration { return time.Millisecond },
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	requireUnread(t, ctx, r, 0)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	err = r.MarkAsRead(context.Background(), "n1")
	require.ErrorIs(t, err, ErrClosed)
}
