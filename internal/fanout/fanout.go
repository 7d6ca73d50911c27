// Package fanout turns one fired notification instance into per-recipient
// delivery records and live pushes.
package fanout

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/internal/pkg/logger"
	"memberhub.io/memberhub/internal/pkg/worker"
	"memberhub.io/memberhub/internal/realtime"
	"memberhub.io/memberhub/internal/store"
)

// DeliveryWriter persists delivery records. created=false means the
// record already existed and the write was skipped.
type DeliveryWriter interface {
	CreateDelivery(ctx context.Context, instanceID, recipientID string, via deliveryrecord.DeliveredVia) (created bool, err error)
}

// Pusher delivers frames to live client sessions.
type Pusher interface {
	HasSession(recipientID string) bool
	Publish(recipientID string, payload []byte) int
}

// Result summarizes one fanout run.
type Result struct {
	Created int // delivery records written
	Skipped int // records that already existed (retry)
	Pushed  int // recipients that received a live push
	Failed  int // recipients whose record could not be written
}

// Engine fans a fired instance out to its recipient snapshot. Recipients
// are handled in parallel on the fanout pool and failures stay isolated:
// one recipient's error never blocks the others.
type Engine struct {
	deliveries DeliveryWriter
	pusher     Pusher
	pool       *worker.Pool
}

// New creates an Engine. pool may be nil, in which case recipients are
// processed sequentially (used by tests).
func New(deliveries DeliveryWriter, pusher Pusher, pool *worker.Pool) *Engine {
	return &Engine{deliveries: deliveries, pusher: pusher, pool: pool}
}

// Deliver writes one delivery record per recipient and pushes the frame
// to recipients with a live session. The delivery channel is fixed at
// record creation: LIVE_PUSH when a session is attached at that moment,
// INITIAL_SYNC otherwise. Reruns over the same snapshot are idempotent.
func (e *Engine) Deliver(ctx context.Context, item store.InboxItem, recipients []string) Result {
	if len(recipients) == 0 {
		return Result{}
	}

	payload, err := realtime.EncodeNewNotification(item)
	if err != nil {
		logger.Error("fanout frame encoding failed",
			zap.String("instance", item.InstanceID),
			zap.Error(err),
		)
		// Records are still written; only the live push is lost.
		payload = nil
	}

	var (
		mu  sync.Mutex
		res Result
		wg  sync.WaitGroup
	)

	for _, recipientID := range recipients {
		recipientID := recipientID
		wg.Add(1)
		task := func() {
			defer wg.Done()
			created, skipped, pushed, failed := e.deliverOne(ctx, item.InstanceID, recipientID, payload)
			mu.Lock()
			res.Created += created
			res.Skipped += skipped
			res.Pushed += pushed
			res.Failed += failed
			mu.Unlock()
		}

		if e.pool == nil {
			task()
			continue
		}
		// Submit with a background context so a cancellation while queued
		// cannot skip the task and strand the WaitGroup; deliverOne still
		// observes ctx through the closure.
		if err := e.pool.Submit(context.Background(), func(context.Context) { task() }); err != nil {
			task()
		}
	}
	wg.Wait()

	if res.Failed > 0 {
		logger.Error("fanout completed with failures",
			zap.String("instance", item.InstanceID),
			zap.Int("failed", res.Failed),
			zap.Int("created", res.Created),
		)
	}
	return res
}

func (e *Engine) deliverOne(ctx context.Context, instanceID, recipientID string, payload []byte) (created, skipped, pushed, failed int) {
	via := deliveryrecord.DeliveredViaINITIAL_SYNC
	if e.pusher != nil && e.pusher.HasSession(recipientID) {
		via = deliveryrecord.DeliveredViaLIVE_PUSH
	}

	wrote, err := e.deliveries.CreateDelivery(ctx, instanceID, recipientID, via)
	if err != nil {
		logger.Error("delivery record write failed",
			zap.String("instance", instanceID),
			zap.String("recipient", recipientID),
			zap.Error(err),
		)
		return 0, 0, 0, 1
	}
	if !wrote {
		return 0, 1, 0, 0
	}

	if via == deliveryrecord.DeliveredViaLIVE_PUSH && payload != nil {
		if n := e.pusher.Publish(recipientID, payload); n > 0 {
			return 1, 0, 1, 0
		}
	}
	return 1, 0, 0, 0
}
