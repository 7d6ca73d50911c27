package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"memberhub.io/memberhub/internal/pkg/logger"
	"memberhub.io/memberhub/internal/store"
)

const (
	// DefaultDeliveryRetention is the retention baseline for read inbox
	// entries. Unread entries are never purged.
	DefaultDeliveryRetention = 90 * 24 * time.Hour
)

// DeliveryCleanupArgs is a periodic maintenance job that removes old read
// delivery records from recipient inboxes.
type DeliveryCleanupArgs struct{}

// Kind returns the job kind identifier for periodic delivery cleanup.
func (DeliveryCleanupArgs) Kind() string { return "delivery_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (DeliveryCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// DeliveryCleanupWorker deletes read delivery records older than the
// configured retention duration.
type DeliveryCleanupWorker struct {
	river.WorkerDefaults[DeliveryCleanupArgs]
	store     *store.Store
	retention time.Duration
}

// NewDeliveryCleanupWorker creates a cleanup worker. Non-positive retention
// falls back to the 90-day default.
func NewDeliveryCleanupWorker(s *store.Store, retention time.Duration) *DeliveryCleanupWorker {
	if retention <= 0 {
		retention = DefaultDeliveryRetention
	}
	return &DeliveryCleanupWorker{store: s, retention: retention}
}

// Work removes expired read delivery rows.
func (w *DeliveryCleanupWorker) Work(ctx context.Context, _ *river.Job[DeliveryCleanupArgs]) error {
	if w == nil || w.store == nil {
		return fmt.Errorf("delivery cleanup worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.store.PurgeReadBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	logger.Info("delivery cleanup completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}
