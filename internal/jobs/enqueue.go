package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"memberhub.io/memberhub/internal/pkg/logger"
)

// EnqueueFiring inserts the fire job for one occurrence of a definition.
// Immediate notifications pass the current time; scheduled ones pass
// their scheduled_at. Duplicate inserts for the same occurrence are
// absorbed by the job's uniqueness options.
func EnqueueFiring(ctx context.Context, client *river.Client[pgx.Tx], definitionID string, occurrence time.Time) error {
	occurrence = occurrence.UTC()
	res, err := client.Insert(ctx, NotificationFireArgs{
		DefinitionID: definitionID,
		Occurrence:   occurrence,
	}, &river.InsertOpts{ScheduledAt: occurrence})
	if err != nil {
		return fmt.Errorf("enqueue firing of %s: %w", definitionID, err)
	}

	logger.Info("firing enqueued",
		zap.String("definition_id", definitionID),
		zap.Time("occurrence", occurrence),
		zap.Bool("duplicate", res.UniqueSkippedAsDuplicate),
	)
	return nil
}
