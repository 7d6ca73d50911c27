// Package jobs defines River Queue job types for async processing.
// Jobs carry only identifiers; workers reload state from the store so a
// stale payload can never overwrite newer data.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/internal/fanout"
	apperrors "memberhub.io/memberhub/internal/pkg/errors"
	"memberhub.io/memberhub/internal/pkg/logger"
	"memberhub.io/memberhub/internal/scheduler"
	"memberhub.io/memberhub/internal/store"
	"memberhub.io/memberhub/internal/targeting"
)

// ---------------------------------------------------------------------------
// Job Args
// ---------------------------------------------------------------------------

// NotificationFireArgs identifies one logical firing: a definition plus
// the occurrence instant (claim-check, full state lives in the database).
type NotificationFireArgs struct {
	DefinitionID string    `json:"definition_id"`
	Occurrence   time.Time `json:"occurrence"`
}

// Kind returns the job kind identifier for notification firings.
func (NotificationFireArgs) Kind() string { return "notification_fire" }

// InsertOpts dedupes double-inserted firings by (definition, occurrence).
func (NotificationFireArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueNotifications,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// QueueNotifications is the dedicated queue for firing and fanout work.
const QueueNotifications = "notifications"

// ---------------------------------------------------------------------------
// Worker
// ---------------------------------------------------------------------------

// NotificationFireWorker executes one firing of a definition:
//
//  1. Load the definition; cancelled or missing definitions end the chain
//  2. Idempotency check: skip the firing if its instance already exists
//  3. Resolve the target to the recipient set as of now
//  4. Persist the instance with the frozen recipient snapshot
//  5. Fan out delivery records and live pushes
//  6. Schedule the next occurrence, or mark the definition exhausted
//
// Failed firings (for example a deleted target group) are recorded as
// FAILED instances and never break the recurrence chain.
type NotificationFireWorker struct {
	river.WorkerDefaults[NotificationFireArgs]
	store    *store.Store
	resolver *targeting.Resolver
	engine   *fanout.Engine
}

// NewNotificationFireWorker creates a fire worker with its dependencies.
func NewNotificationFireWorker(s *store.Store, resolver *targeting.Resolver, engine *fanout.Engine) *NotificationFireWorker {
	return &NotificationFireWorker{store: s, resolver: resolver, engine: engine}
}

// Work executes the firing.
func (w *NotificationFireWorker) Work(ctx context.Context, job *river.Job[NotificationFireArgs]) error {
	definitionID := job.Args.DefinitionID
	occurrence := job.Args.Occurrence.UTC()

	logger.Info("processing notification firing",
		zap.String("definition_id", definitionID),
		zap.Time("occurrence", occurrence),
		zap.Int("attempt", job.Attempt),
	)

	def, err := w.store.GetDefinition(ctx, definitionID)
	if err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok && appErr.Code == apperrors.CodeDefinitionNotFound {
			logger.Warn("definition vanished, ending firing chain",
				zap.String("definition_id", definitionID),
			)
			return nil
		}
		return err
	}

	switch def.State {
	case notificationdefinition.StateCANCELLED:
		logger.Info("definition cancelled, skipping firing",
			zap.String("definition_id", definitionID),
		)
		return nil
	case notificationdefinition.StateEXHAUSTED:
		// A stale follow-up job for a finished series.
		return nil
	}

	// Idempotency: a retried job must not fire twice.
	existing, err := w.store.FindInstance(ctx, definitionID, occurrence)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Info("firing already recorded, resuming fanout",
			zap.String("definition_id", definitionID),
			zap.String("instance_id", existing.ID),
		)
		// Fanout is idempotent per recipient; rerun it to fill any
		// records lost to a mid-fanout crash.
		w.engine.Deliver(ctx, inboxItemFor(def, existing.ID, occurrence), existing.RecipientSnapshot)
		return w.scheduleNext(ctx, def, occurrence)
	}

	recipients, err := w.resolver.Resolve(ctx, targetSpecOf(def))
	if err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok && appErr.HTTPStatus < 500 {
			// Unresolvable target (deleted group, bad spec): record the
			// failed firing and keep the chain alive.
			if _, ferr := w.store.CreateFailedInstance(ctx, definitionID, occurrence, appErr.Error()); ferr != nil {
				return ferr
			}
			logger.Warn("firing failed to resolve target",
				zap.String("definition_id", definitionID),
				zap.Error(err),
			)
			return w.scheduleNext(ctx, def, occurrence)
		}
		// Transient resolution error: retry the job.
		return err
	}

	inst, err := w.store.CreateInstance(ctx, definitionID, occurrence, recipients)
	if err != nil {
		return err
	}

	res := w.engine.Deliver(ctx, inboxItemFor(def, inst.ID, occurrence), recipients)
	logger.Info("notification fired",
		zap.String("definition_id", definitionID),
		zap.String("instance_id", inst.ID),
		zap.Int("recipients", len(recipients)),
		zap.Int("pushed", res.Pushed),
		zap.Int("failed", res.Failed),
	)

	return w.scheduleNext(ctx, def, occurrence)
}

// scheduleNext inserts the follow-up firing job or closes the series.
func (w *NotificationFireWorker) scheduleNext(ctx context.Context, def *ent.NotificationDefinition, occurrence time.Time) error {
	rec := scheduler.Recurrence(def.Recurrence)
	anchor := occurrence
	if def.ScheduledAt != nil {
		anchor = def.ScheduledAt.UTC()
	}

	next, ok := scheduler.Next(rec, anchor, occurrence)
	if !ok {
		return w.store.SetDefinitionState(ctx, def.ID, notificationdefinition.StateEXHAUSTED)
	}

	client, err := river.ClientFromContextSafely[pgx.Tx](ctx)
	if err != nil {
		return fmt.Errorf("river client unavailable: %w", err)
	}
	if _, err := client.Insert(ctx, NotificationFireArgs{
		DefinitionID: def.ID,
		Occurrence:   next,
	}, &river.InsertOpts{ScheduledAt: next}); err != nil {
		return fmt.Errorf("schedule next firing of %s: %w", def.ID, err)
	}

	logger.Debug("next firing scheduled",
		zap.String("definition_id", def.ID),
		zap.Time("next", next),
	)
	return w.store.SetDefinitionState(ctx, def.ID, notificationdefinition.StateACTIVE)
}

// targetSpecOf maps the persisted target columns back to a spec.
func targetSpecOf(def *ent.NotificationDefinition) targeting.Spec {
	return targeting.Spec{
		Kind:  targeting.Kind(def.TargetKind),
		Value: def.TargetValue,
	}
}

// inboxItemFor builds the recipient-facing item for fanout frames.
func inboxItemFor(def *ent.NotificationDefinition, instanceID string, firedAt time.Time) store.InboxItem {
	return store.InboxItem{
		InstanceID: instanceID,
		Title:      def.Title,
		Message:    def.Message,
		Type:       string(def.Type),
		FiredAt:    firedAt,
	}
}
