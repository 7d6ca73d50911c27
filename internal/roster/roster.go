// Package roster adapts the membership directory tables to the targeting
// layer's Roster interface.
package roster

import (
	"context"
	"fmt"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/ent/member"
	apperrors "memberhub.io/memberhub/internal/pkg/errors"
	"memberhub.io/memberhub/internal/targeting"
)

// EntRoster reads membership from the Ent-managed directory tables.
// Queries reflect the directory as of call time; there is no caching,
// so a firing always sees the current membership.
type EntRoster struct {
	client *ent.Client
}

// NewEntRoster creates a roster over the given ent client.
func NewEntRoster(client *ent.Client) *EntRoster {
	return &EntRoster{client: client}
}

// GroupMembers returns the ids of the group's current members.
func (r *EntRoster) GroupMembers(ctx context.Context, groupID string) ([]string, error) {
	g, err := r.client.Group.Get(ctx, groupID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrGroupNotFoundf("group %s not found", groupID)
		}
		return nil, fmt.Errorf("load group %s: %w", groupID, err)
	}

	ids, err := g.QueryMembers().IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query members of group %s: %w", groupID, err)
	}
	return ids, nil
}

// DepartmentMembers returns the ids of the department's current members.
func (r *EntRoster) DepartmentMembers(ctx context.Context, departmentID string) ([]string, error) {
	d, err := r.client.Department.Get(ctx, departmentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrDepartmentNotFoundf("department %s not found", departmentID)
		}
		return nil, fmt.Errorf("load department %s: %w", departmentID, err)
	}

	ids, err := d.QueryMembers().IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query members of department %s: %w", departmentID, err)
	}
	return ids, nil
}

// MembersOfType returns the ids of all members with the given classification.
// An unknown classification is not an error; it resolves to an empty set.
func (r *EntRoster) MembersOfType(ctx context.Context, memberType string) ([]string, error) {
	ids, err := r.client.Member.Query().
		Where(member.MemberType(memberType)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query members of type %s: %w", memberType, err)
	}
	return ids, nil
}

// AllMembers returns every member id in the directory.
func (r *EntRoster) AllMembers(ctx context.Context) ([]string, error) {
	ids, err := r.client.Member.Query().IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all members: %w", err)
	}
	return ids, nil
}

// compile-time check
var _ targeting.Roster = (*EntRoster)(nil)
