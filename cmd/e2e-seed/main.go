// Package main seeds deterministic fixtures for live end-to-end tests.
//
// This command is test-environment only and is intentionally idempotent.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"memberhub.io/memberhub/ent"
	entdeliveryrecord "memberhub.io/memberhub/ent/deliveryrecord"
	entnotificationdefinition "memberhub.io/memberhub/ent/notificationdefinition"
	entnotificationinstance "memberhub.io/memberhub/ent/notificationinstance"
	"memberhub.io/memberhub/internal/config"
	"memberhub.io/memberhub/internal/infrastructure"
	"memberhub.io/memberhub/internal/pkg/logger"
)

const (
	defaultGroupID      = "e2e-group"
	defaultGroupName    = "E2E Test Group"
	defaultReaderID     = "e2e-member-reader"
	defaultStreamerID   = "e2e-member-streamer"
	defaultDefinitionID = "def-e2e-announcement"
	defaultInstanceID   = "inst-e2e-announcement"
)

// firedAtFixture is the frozen fire time of the pre-fired instance so
// repeated seeding never creates a second logical firing.
var firedAtFixture = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

type fixtureConfig struct {
	GroupID      string
	GroupName    string
	ReaderID     string
	StreamerID   string
	DefinitionID string
	InstanceID   string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "e2e-seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	fx := loadFixtureConfig()
	client := db.EntClient

	if err := ensureRoster(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure roster: %w", err)
	}
	if err := ensureFiredAnnouncement(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure fired announcement: %w", err)
	}

	logger.Info("E2E fixtures ready")
	return nil
}

func loadFixtureConfig() fixtureConfig {
	fx := fixtureConfig{
		GroupID:      defaultGroupID,
		GroupName:    defaultGroupName,
		ReaderID:     defaultReaderID,
		StreamerID:   defaultStreamerID,
		DefinitionID: defaultDefinitionID,
		InstanceID:   defaultInstanceID,
	}
	if v := os.Getenv("E2E_GROUP_ID"); v != "" {
		fx.GroupID = v
	}
	if v := os.Getenv("E2E_READER_ID"); v != "" {
		fx.ReaderID = v
	}
	if v := os.Getenv("E2E_STREAMER_ID"); v != "" {
		fx.StreamerID = v
	}
	return fx
}

// ensureRoster creates the fixture group and its two members. The reader
// member starts with a read inbox item, the streamer with an unread one.
func ensureRoster(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	err := client.Group.Create().
		SetID(fx.GroupID).
		SetName(fx.GroupName).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("create group: %w", err)
	}

	members := []struct {
		id   string
		name string
	}{
		{fx.ReaderID, "E2E Reader"},
		{fx.StreamerID, "E2E Streamer"},
	}
	for _, m := range members {
		err := client.Member.Create().
			SetID(m.id).
			SetDisplayName(m.name).
			SetMemberType("member").
			AddGroupIDs(fx.GroupID).
			Exec(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("create member %s: %w", m.id, err)
		}
	}
	return nil
}

// ensureFiredAnnouncement creates an already-fired announcement so e2e
// flows can exercise inbox listing, unread counts and mark-read without
// waiting for the scheduler.
func ensureFiredAnnouncement(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	err := client.NotificationDefinition.Create().
		SetID(fx.DefinitionID).
		SetTitle("E2E Announcement").
		SetMessage("Deterministic fixture announcement for end-to-end tests.").
		SetType(entnotificationdefinition.TypeANNOUNCEMENT).
		SetTargetKind(entnotificationdefinition.TargetKindGROUP).
		SetTargetValue(fx.GroupID).
		SetRecurrence(entnotificationdefinition.RecurrenceNONE).
		SetState(entnotificationdefinition.StateEXHAUSTED).
		SetCreatedBy("e2e-seed").
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("create definition: %w", err)
	}

	err = client.NotificationInstance.Create().
		SetID(fx.InstanceID).
		SetDefinitionID(fx.DefinitionID).
		SetFiredAt(firedAtFixture).
		SetRecipientSnapshot([]string{fx.ReaderID, fx.StreamerID}).
		SetStatus(entnotificationinstance.StatusFIRED).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("create instance: %w", err)
	}

	deliveries := []struct {
		id        string
		recipient string
		read      bool
	}{
		{fx.InstanceID + "-reader", fx.ReaderID, true},
		{fx.InstanceID + "-streamer", fx.StreamerID, false},
	}
	for _, d := range deliveries {
		create := client.DeliveryRecord.Create().
			SetID(d.id).
			SetInstanceID(fx.InstanceID).
			SetRecipientID(d.recipient).
			SetDeliveredVia(entdeliveryrecord.DeliveredViaINITIAL_SYNC).
			SetIsRead(d.read)
		if d.read {
			create = create.SetReadAt(firedAtFixture.Add(time.Minute))
		}
		if err := create.Exec(ctx); err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("create delivery %s: %w", d.id, err)
		}
	}
	return nil
}
