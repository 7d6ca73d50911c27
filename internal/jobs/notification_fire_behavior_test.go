package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
	"memberhub.io/memberhub/internal/fanout"
	"memberhub.io/memberhub/internal/pkg/logger"
	"memberhub.io/memberhub/internal/roster"
	"memberhub.io/memberhub/internal/store"
	"memberhub.io/memberhub/internal/targeting"
	"memberhub.io/memberhub/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// fireWorkerHarness wires a worker against a real database. The fanout
// engine runs sequentially and without a pusher; delivery records are
// still written.
func fireWorkerHarness(t *testing.T, prefix string) (*NotificationFireWorker, *store.Store, *ent.Client) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	s := store.New(client)
	resolver := targeting.NewResolver(roster.NewEntRoster(client))
	w := NewNotificationFireWorker(s, resolver, fanout.New(s, nil, nil))
	return w, s, client
}

func fireJob(definitionID string, occurrence time.Time) *river.Job[NotificationFireArgs] {
	return &river.Job[NotificationFireArgs]{
		JobRow: &rivertype.JobRow{Attempt: 1},
		Args: NotificationFireArgs{
			DefinitionID: definitionID,
			Occurrence:   occurrence,
		},
	}
}

func seedChoir(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	m1, err := client.Member.Create().
		SetID("m-anna").SetDisplayName("Anna").SetMemberType("member").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	m2, err := client.Member.Create().
		SetID("m-ben").SetDisplayName("Ben").SetMemberType("member").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	if _, err := client.Group.Create().
		SetID("g-choir").SetName("Choir").
		AddMembers(m1, m2).
		Save(ctx); err != nil {
		t.Fatalf("seed group: %v", err)
	}
}

func TestFireWorker_FiresGroupAndClosesOneShotSeries(t *testing.T) {
	t.Parallel()

	w, s, client := fireWorkerHarness(t, "jobs_fire_group")
	seedChoir(t, client)
	ctx := context.Background()

	def, err := s.CreateDefinition(ctx, store.DefinitionParams{
		Title:       "Rehearsal moved",
		Message:     "7pm tonight",
		Type:        notificationdefinition.TypeREMINDER,
		TargetKind:  notificationdefinition.TargetKindGROUP,
		TargetValue: "g-choir",
		Recurrence:  notificationdefinition.RecurrenceNONE,
		CreatedBy:   "admin-1",
	})
	if err != nil {
		t.Fatalf("seed definition: %v", err)
	}

	occurrence := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	if err := w.Work(ctx, fireJob(def.ID, occurrence)); err != nil {
		t.Fatalf("work: %v", err)
	}

	inst, err := s.FindInstance(ctx, def.ID, occurrence)
	if err != nil {
		t.Fatalf("find instance: %v", err)
	}
	if inst == nil || inst.Status != notificationinstance.StatusFIRED {
		t.Fatalf("instance = %+v, want FIRED", inst)
	}
	if len(inst.RecipientSnapshot) != 2 {
		t.Fatalf("snapshot = %v, want both choir members", inst.RecipientSnapshot)
	}

	for _, recipient := range []string{"m-anna", "m-ben"} {
		count, err := s.UnreadCount(ctx, recipient)
		if err != nil {
			t.Fatalf("unread count for %s: %v", recipient, err)
		}
		if count != 1 {
			t.Fatalf("unread for %s = %d, want 1", recipient, count)
		}
	}

	got, err := s.GetDefinition(ctx, def.ID)
	if err != nil {
		t.Fatalf("reload definition: %v", err)
	}
	if got.State != notificationdefinition.StateEXHAUSTED {
		t.Fatalf("state = %s, want EXHAUSTED after a one-shot firing", got.State)
	}
}

func TestFireWorker_RerunDoesNotDuplicate(t *testing.T) {
	t.Parallel()

	w, s, client := fireWorkerHarness(t, "jobs_fire_rerun")
	seedChoir(t, client)
	ctx := context.Background()

	def, err := s.CreateDefinition(ctx, store.DefinitionParams{
		Title:       "Potluck",
		Message:     "Bring a dish",
		Type:        notificationdefinition.TypeANNOUNCEMENT,
		TargetKind:  notificationdefinition.TargetKindGROUP,
		TargetValue: "g-choir",
		Recurrence:  notificationdefinition.RecurrenceNONE,
		CreatedBy:   "admin-1",
	})
	if err != nil {
		t.Fatalf("seed definition: %v", err)
	}

	occurrence := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	if err := w.Work(ctx, fireJob(def.ID, occurrence)); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// A retried job observes the definition mid-flight, before the
	// terminal transition landed.
	if err := s.SetDefinitionState(ctx, def.ID, notificationdefinition.StateACTIVE); err != nil {
		t.Fatalf("reset state: %v", err)
	}
	if err := w.Work(ctx, fireJob(def.ID, occurrence)); err != nil {
		t.Fatalf("rerun: %v", err)
	}

	instances, err := client.NotificationInstance.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count instances: %v", err)
	}
	if instances != 1 {
		t.Fatalf("instances = %d, want 1 after rerun", instances)
	}

	deliveries, err := client.DeliveryRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count deliveries: %v", err)
	}
	if deliveries != 2 {
		t.Fatalf("deliveries = %d, want 2 after rerun", deliveries)
	}
}

func TestFireWorker_UnresolvableTargetRecordsFailedFiring(t *testing.T) {
	t.Parallel()

	w, s, _ := fireWorkerHarness(t, "jobs_fire_failed")
	ctx := context.Background()

	def, err := s.CreateDefinition(ctx, store.DefinitionParams{
		Title:       "Orphaned",
		Message:     "Target group was deleted",
		Type:        notificationdefinition.TypeANNOUNCEMENT,
		TargetKind:  notificationdefinition.TargetKindGROUP,
		TargetValue: "g-gone",
		Recurrence:  notificationdefinition.RecurrenceNONE,
		CreatedBy:   "admin-1",
	})
	if err != nil {
		t.Fatalf("seed definition: %v", err)
	}

	occurrence := time.Date(2026, time.April, 3, 9, 0, 0, 0, time.UTC)
	if err := w.Work(ctx, fireJob(def.ID, occurrence)); err != nil {
		t.Fatalf("work must not error on an unresolvable target: %v", err)
	}

	inst, err := s.FindInstance(ctx, def.ID, occurrence)
	if err != nil {
		t.Fatalf("find instance: %v", err)
	}
	if inst == nil || inst.Status != notificationinstance.StatusFAILED {
		t.Fatalf("instance = %+v, want FAILED", inst)
	}
	if inst.Failure == "" {
		t.Fatal("failed instance must record the failure reason")
	}

	// The chain still advanced: a one-shot series closes instead of the
	// job erroring and retrying forever.
	got, err := s.GetDefinition(ctx, def.ID)
	if err != nil {
		t.Fatalf("reload definition: %v", err)
	}
	if got.State != notificationdefinition.StateEXHAUSTED {
		t.Fatalf("state = %s, want EXHAUSTED", got.State)
	}
}

func TestFireWorker_SkipsTerminalDefinition(t *testing.T) {
	t.Parallel()

	w, s, client := fireWorkerHarness(t, "jobs_fire_cancelled")
	seedChoir(t, client)
	ctx := context.Background()

	def, err := s.CreateDefinition(ctx, store.DefinitionParams{
		Title:       "Cancelled series",
		Message:     "Never fires",
		Type:        notificationdefinition.TypeREMINDER,
		TargetKind:  notificationdefinition.TargetKindGROUP,
		TargetValue: "g-choir",
		Recurrence:  notificationdefinition.RecurrenceDAILY,
		CreatedBy:   "admin-1",
	})
	if err != nil {
		t.Fatalf("seed definition: %v", err)
	}
	if err := s.CancelDefinition(ctx, def.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	occurrence := time.Date(2026, time.April, 4, 9, 0, 0, 0, time.UTC)
	if err := w.Work(ctx, fireJob(def.ID, occurrence)); err != nil {
		t.Fatalf("work: %v", err)
	}

	instances, err := client.NotificationInstance.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count instances: %v", err)
	}
	if instances != 0 {
		t.Fatalf("instances = %d, want 0 for a cancelled definition", instances)
	}
}
