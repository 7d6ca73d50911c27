package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/notificationdefinition"
	apperrors "memberhub.io/memberhub/internal/pkg/errors"
	"memberhub.io/memberhub/internal/testutil"
)

func seedDefinition(t *testing.T, s *Store) *ent.NotificationDefinition {
	t.Helper()

	def, err := s.CreateDefinition(context.Background(), DefinitionParams{
		Title:      "Choir rehearsal",
		Message:    "Rehearsal moved to 7pm",
		Type:       notificationdefinition.TypeREMINDER,
		TargetKind: notificationdefinition.TargetKindALL,
		Recurrence: notificationdefinition.RecurrenceNONE,
		CreatedBy:  "admin-1",
	})
	if err != nil {
		t.Fatalf("seed definition: %v", err)
	}
	return def
}

func seedInstance(t *testing.T, s *Store, definitionID string, snapshot []string) *ent.NotificationInstance {
	t.Helper()

	inst, err := s.CreateInstance(context.Background(), definitionID, time.Now().UTC(), snapshot)
	if err != nil {
		t.Fatalf("seed instance: %v", err)
	}
	return inst
}

func TestStoreDeliveryUniquePerInstanceAndRecipient(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "store_delivery_unique")
	s := New(client)
	ctx := context.Background()

	def := seedDefinition(t, s)
	inst := seedInstance(t, s, def.ID, []string{"m-anna"})

	created, err := s.CreateDelivery(ctx, inst.ID, "m-anna", deliveryrecord.DeliveredViaLIVE_PUSH)
	if err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if !created {
		t.Fatal("first delivery should report created")
	}

	created, err = s.CreateDelivery(ctx, inst.ID, "m-anna", deliveryrecord.DeliveredViaLIVE_PUSH)
	if err != nil {
		t.Fatalf("repeated delivery: %v", err)
	}
	if created {
		t.Fatal("repeated delivery should not create a second record")
	}

	n, err := client.DeliveryRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count deliveries: %v", err)
	}
	if n != 1 {
		t.Fatalf("delivery count = %d, want 1", n)
	}
}

func TestStoreMarkReadIsMonotonic(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "store_mark_read")
	s := New(client)
	ctx := context.Background()

	def := seedDefinition(t, s)
	inst := seedInstance(t, s, def.ID, []string{"m-anna"})
	if _, err := s.CreateDelivery(ctx, inst.ID, "m-anna", deliveryrecord.DeliveredViaINITIAL_SYNC); err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	if err := s.MarkRead(ctx, inst.ID, "m-anna"); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	rec, err := client.DeliveryRecord.Query().
		Where(deliveryrecord.InstanceID(inst.ID), deliveryrecord.RecipientID("m-anna")).
		Only(ctx)
	if err != nil {
		t.Fatalf("load delivery: %v", err)
	}
	if !rec.IsRead {
		t.Fatal("delivery should be read")
	}
	if rec.ReadAt == nil {
		t.Fatal("read_at should be set")
	}
	firstReadAt := *rec.ReadAt

	// A second mark is a no-op and keeps the original read_at.
	if err := s.MarkRead(ctx, inst.ID, "m-anna"); err != nil {
		t.Fatalf("repeated mark read: %v", err)
	}
	rec, err = client.DeliveryRecord.Query().
		Where(deliveryrecord.InstanceID(inst.ID), deliveryrecord.RecipientID("m-anna")).
		Only(ctx)
	if err != nil {
		t.Fatalf("reload delivery: %v", err)
	}
	if !rec.ReadAt.Equal(firstReadAt) {
		t.Fatalf("read_at changed on repeat: %v -> %v", firstReadAt, rec.ReadAt)
	}
}

func TestStoreMarkReadUnknownDelivery(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "store_mark_read_missing")
	s := New(client)

	err := s.MarkRead(context.Background(), uuid.NewString(), "m-ghost")
	if err == nil {
		t.Fatal("expected error for unknown delivery")
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeDeliveryNotFound {
		t.Fatalf("error = %v, want code %s", err, apperrors.CodeDeliveryNotFound)
	}
}

func TestStoreMarkAllReadOnlyFlipsExistingUnread(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "store_mark_all_read")
	s := New(client)
	ctx := context.Background()

	def := seedDefinition(t, s)
	first := seedInstance(t, s, def.ID, []string{"m-anna"})
	second := seedInstance(t, s, def.ID, []string{"m-anna"})
	if _, err := s.CreateDelivery(ctx, first.ID, "m-anna", deliveryrecord.DeliveredViaINITIAL_SYNC); err != nil {
		t.Fatalf("create delivery: %v", err)
	}
	if _, err := s.CreateDelivery(ctx, second.ID, "m-anna", deliveryrecord.DeliveredViaINITIAL_SYNC); err != nil {
		t.Fatalf("create delivery: %v", err)
	}
	// Another recipient's record must stay untouched.
	if _, err := s.CreateDelivery(ctx, first.ID, "m-ben", deliveryrecord.DeliveredViaINITIAL_SYNC); err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	flipped, err := s.MarkAllRead(ctx, "m-anna")
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if flipped != 2 {
		t.Fatalf("flipped = %d, want 2", flipped)
	}

	count, err := s.UnreadCount(ctx, "m-anna")
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 0 {
		t.Fatalf("unread count = %d, want 0", count)
	}

	benCount, err := s.UnreadCount(ctx, "m-ben")
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if benCount != 1 {
		t.Fatalf("other recipient unread = %d, want 1", benCount)
	}

	// A delivery arriving after the sweep stays unread.
	third := seedInstance(t, s, def.ID, []string{"m-anna"})
	if _, err := s.CreateDelivery(ctx, third.ID, "m-anna", deliveryrecord.DeliveredViaLIVE_PUSH); err != nil {
		t.Fatalf("create delivery: %v", err)
	}
	count, err = s.UnreadCount(ctx, "m-anna")
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 1 {
		t.Fatalf("unread count after new delivery = %d, want 1", count)
	}
}

func TestStoreListForRecipientNewestFirst(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "store_list_inbox")
	s := New(client)
	ctx := context.Background()

	def := seedDefinition(t, s)
	older := seedInstance(t, s, def.ID, []string{"m-anna"})
	newer := seedInstance(t, s, def.ID, []string{"m-anna"})

	// Insert in firing order with distinct created_at values.
	if _, err := s.CreateDelivery(ctx, older.ID, "m-anna", deliveryrecord.DeliveredViaINITIAL_SYNC); err != nil {
		t.Fatalf("create delivery: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := s.CreateDelivery(ctx, newer.ID, "m-anna", deliveryrecord.DeliveredViaLIVE_PUSH); err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	items, err := s.ListForRecipient(ctx, "m-anna")
	if err != nil {
		t.Fatalf("list inbox: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("inbox size = %d, want 2", len(items))
	}
	if items[0].InstanceID != newer.ID || items[1].InstanceID != older.ID {
		t.Fatalf("inbox order = [%s %s], want newest first", items[0].InstanceID, items[1].InstanceID)
	}
	if items[0].Title != "Choir rehearsal" {
		t.Fatalf("title = %q", items[0].Title)
	}
	if items[0].IsRead {
		t.Fatal("new delivery should be unread")
	}
}

func TestStorePurgeReadBeforeKeepsUnread(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "store_purge_read")
	s := New(client)
	ctx := context.Background()

	def := seedDefinition(t, s)
	inst := seedInstance(t, s, def.ID, []string{"m-anna", "m-ben"})
	if _, err := s.CreateDelivery(ctx, inst.ID, "m-anna", deliveryrecord.DeliveredViaINITIAL_SYNC); err != nil {
		t.Fatalf("create delivery: %v", err)
	}
	if _, err := s.CreateDelivery(ctx, inst.ID, "m-ben", deliveryrecord.DeliveredViaINITIAL_SYNC); err != nil {
		t.Fatalf("create delivery: %v", err)
	}
	if err := s.MarkRead(ctx, inst.ID, "m-anna"); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	// Cutoff in the future: only the read record qualifies.
	purged, err := s.PurgeReadBefore(ctx, time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 1 {
		t.Fatalf("purged = %d, want 1", purged)
	}

	remaining, err := client.DeliveryRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count remaining: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("remaining = %d, want unread record kept", remaining)
	}
}

func TestStoreInstanceSnapshotIsFrozen(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "store_snapshot_frozen")
	s := New(client)
	ctx := context.Background()

	def := seedDefinition(t, s)
	inst := seedInstance(t, s, def.ID, []string{"m-anna", "m-ben"})

	got, err := s.GetInstance(ctx, inst.ID)
	if err != nil {
		t.Fatalf("get instance: %v", err)
	}
	if len(got.RecipientSnapshot) != 2 {
		t.Fatalf("snapshot size = %d, want 2", len(got.RecipientSnapshot))
	}
}
