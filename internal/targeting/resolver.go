package targeting

import (
	"context"
	"sort"

	apperrors "memberhub.io/memberhub/internal/pkg/errors"
)

// Roster answers membership queries against the directory at call time.
// Implementations must return a NotFound error when the named group or
// department does not exist; an existing but empty container resolves to
// an empty slice, not an error.
type Roster interface {
	GroupMembers(ctx context.Context, groupID string) ([]string, error)
	DepartmentMembers(ctx context.Context, departmentID string) ([]string, error)
	MembersOfType(ctx context.Context, memberType string) ([]string, error)
	AllMembers(ctx context.Context) ([]string, error)
}

// Resolver resolves target specs to recipient-id sets.
type Resolver struct {
	roster Roster
}

// NewResolver wires a Resolver over the given roster.
func NewResolver(roster Roster) *Resolver {
	return &Resolver{roster: roster}
}

// Resolve evaluates the spec against the roster as of now. The result is
// deduplicated and sorted so repeated resolutions of the same directory
// state yield identical snapshots. An empty result is valid and means the
// firing produces no deliveries.
func (r *Resolver) Resolve(ctx context.Context, spec Spec) ([]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, apperrors.ErrTargetInvalidf("%v", err)
	}

	var (
		ids []string
		err error
	)
	switch spec.Kind {
	case KindGroup:
		ids, err = r.roster.GroupMembers(ctx, spec.Value)
	case KindDepartment:
		ids, err = r.roster.DepartmentMembers(ctx, spec.Value)
	case KindMemberType:
		ids, err = r.roster.MembersOfType(ctx, spec.Value)
	case KindAll:
		ids, err = r.roster.AllMembers(ctx)
	case KindMember:
		ids = []string{spec.Value}
	default:
		return nil, apperrors.ErrTargetInvalidf("unknown target kind %q", string(spec.Kind))
	}
	if err != nil {
		return nil, err
	}

	return dedupe(ids), nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
