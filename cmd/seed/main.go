// Package main provides roster seeding for MemberHub.
//
// Membership CRUD lives in the admin console; this command bootstraps a
// local roster so notification targeting has something to resolve against.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/internal/config"
	"memberhub.io/memberhub/internal/infrastructure"
	"memberhub.io/memberhub/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
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

	client := db.EntClient

	logger.Info("Starting roster seeding...")

	// Database and River migrations are expected to be executed before seeding.
	// This command only performs idempotent data bootstrap.

	if err := seedDepartments(ctx, client); err != nil {
		return fmt.Errorf("seed departments: %w", err)
	}
	if err := seedGroups(ctx, client); err != nil {
		return fmt.Errorf("seed groups: %w", err)
	}
	if err := seedMembers(ctx, client); err != nil {
		return fmt.Errorf("seed members: %w", err)
	}

	logger.Info("Roster seeding completed successfully")
	return nil
}

type seedDepartment struct {
	ID   string
	Name string
}

type seedGroup struct {
	ID   string
	Name string
}

type seedMember struct {
	ID           string
	DisplayName  string
	MemberType   string
	DepartmentID string
	GroupIDs     []string
}

func departmentFixtures() []seedDepartment {
	return []seedDepartment{
		{ID: "dept-worship", Name: "Worship"},
		{ID: "dept-youth", Name: "Youth"},
		{ID: "dept-outreach", Name: "Outreach"},
	}
}

func groupFixtures() []seedGroup {
	return []seedGroup{
		{ID: "group-choir", Name: "Choir"},
		{ID: "group-ushers", Name: "Ushers"},
		{ID: "group-volunteers", Name: "Volunteers"},
	}
}

func memberFixtures() []seedMember {
	return []seedMember{
		{
			ID: "member-anna", DisplayName: "Anna Park", MemberType: "leader",
			DepartmentID: "dept-worship", GroupIDs: []string{"group-choir"},
		},
		{
			ID: "member-ben", DisplayName: "Ben Okafor", MemberType: "member",
			DepartmentID: "dept-worship", GroupIDs: []string{"group-choir", "group-ushers"},
		},
		{
			ID: "member-carla", DisplayName: "Carla Reyes", MemberType: "member",
			DepartmentID: "dept-youth", GroupIDs: []string{"group-volunteers"},
		},
		{
			ID: "member-dmitri", DisplayName: "Dmitri Volkov", MemberType: "first_timer",
			DepartmentID: "dept-outreach",
		},
	}
}

// seedDepartments creates departments using ON CONFLICT DO NOTHING semantics.
func seedDepartments(ctx context.Context, client *ent.Client) error {
	for _, d := range departmentFixtures() {
		_, err := client.Department.Create().
			SetID(d.ID).
			SetName(d.Name).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Department already exists, skipping", zap.String("department", d.Name))
				continue
			}
			return fmt.Errorf("create department %s: %w", d.Name, err)
		}
		logger.Info("Seeded department", zap.String("department", d.Name))
	}
	return nil
}

func seedGroups(ctx context.Context, client *ent.Client) error {
	for _, g := range groupFixtures() {
		_, err := client.Group.Create().
			SetID(g.ID).
			SetName(g.Name).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Group already exists, skipping", zap.String("group", g.Name))
				continue
			}
			return fmt.Errorf("create group %s: %w", g.Name, err)
		}
		logger.Info("Seeded group", zap.String("group", g.Name))
	}
	return nil
}

func seedMembers(ctx context.Context, client *ent.Client) error {
	for _, m := range memberFixtures() {
		create := client.Member.Create().
			SetID(m.ID).
			SetDisplayName(m.DisplayName).
			SetMemberType(m.MemberType)
		if m.DepartmentID != "" {
			create = create.SetDepartmentID(m.DepartmentID)
		}
		if len(m.GroupIDs) > 0 {
			create = create.AddGroupIDs(m.GroupIDs...)
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Member already exists, skipping", zap.String("member", m.ID))
				continue
			}
			return fmt.Errorf("create member %s: %w", m.ID, err)
		}
		logger.Info("Seeded member",
			zap.String("member", m.ID),
			zap.String("member_type", m.MemberType),
		)
	}
	return nil
}
