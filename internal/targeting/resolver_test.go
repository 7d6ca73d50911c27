package targeting

import (
	"context"
	"reflect"
	"testing"

	apperrors "memberhub.io/memberhub/internal/pkg/errors"
)

// fakeRoster serves a fixed directory state.
type fakeRoster struct {
	groups      map[string][]string
	departments map[string][]string
	byType      map[string][]string
	all         []string
}

func (f *fakeRoster) GroupMembers(_ context.Context, id string) ([]string, error) {
	members, ok := f.groups[id]
	if !ok {
		return nil, apperrors.ErrGroupNotFoundf("group %s not found", id)
	}
	return members, nil
}

func (f *fakeRoster) DepartmentMembers(_ context.Context, id string) ([]string, error) {
	members, ok := f.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFoundf("department %s not found", id)
	}
	return members, nil
}

func (f *fakeRoster) MembersOfType(_ context.Context, memberType string) ([]string, error) {
	return f.byType[memberType], nil
}

func (f *fakeRoster) AllMembers(_ context.Context) ([]string, error) {
	return f.all, nil
}

func testRoster() *fakeRoster {
	return &fakeRoster{
		groups: map[string][]string{
			"g-choir":  {"m-anna", "m-ben", "m-anna"},
			"g-empty":  {},
			"g-ushers": {"m-ben", "m-cara"},
		},
		departments: map[string][]string{
			"d-youth": {"m-cara", "m-dan"},
			"d-bare":  {},
		},
		byType: map[string][]string{
			"VOLUNTEER": {"m-ben", "m-dan"},
		},
		all: []string{"m-anna", "m-ben", "m-cara", "m-dan"},
	}
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()

	r := NewResolver(testRoster())
	ctx := context.Background()

	tests := []struct {
		name string
		spec Spec
		want []string
	}{
		{name: "group deduplicates", spec: Group("g-choir"), want: []string{"m-anna", "m-ben"}},
		{name: "empty group is valid", spec: Group("g-empty"), want: []string{}},
		{name: "department", spec: Department("d-youth"), want: []string{"m-cara", "m-dan"}},
		{name: "empty department is valid", spec: Department("d-bare"), want: []string{}},
		{name: "member type", spec: MemberType("VOLUNTEER"), want: []string{"m-ben", "m-dan"}},
		{name: "member type with no members", spec: MemberType("STAFF"), want: []string{}},
		{name: "all", spec: All(), want: []string{"m-anna", "m-ben", "m-cara", "m-dan"}},
		{name: "single member", spec: Member("m-anna"), want: []string{"m-anna"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(ctx, tt.spec)
			if err != nil {
				t.Fatalf("Resolve(%s): unexpected error: %v", tt.spec, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Resolve(%s) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestResolverResolveErrors(t *testing.T) {
	t.Parallel()

	r := NewResolver(testRoster())
	ctx := context.Background()

	tests := []struct {
		name     string
		spec     Spec
		wantCode string
	}{
		{name: "missing group", spec: Group("g-nope"), wantCode: apperrors.CodeGroupNotFound},
		{name: "missing department", spec: Department("d-nope"), wantCode: apperrors.CodeDepartmentNotFound},
		{name: "group without value", spec: Spec{Kind: KindGroup}, wantCode: apperrors.CodeTargetInvalid},
		{name: "all with value", spec: Spec{Kind: KindAll, Value: "x"}, wantCode: apperrors.CodeTargetInvalid},
		{name: "unknown kind", spec: Spec{Kind: "PLANET", Value: "earth"}, wantCode: apperrors.CodeTargetInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(ctx, tt.spec)
			if err == nil {
				t.Fatalf("Resolve(%s): expected error", tt.spec)
			}
			appErr, ok := apperrors.IsAppError(err)
			if !ok {
				t.Fatalf("Resolve(%s): error %v is not an AppError", tt.spec, err)
			}
			if appErr.Code != tt.wantCode {
				t.Fatalf("Resolve(%s): code = %s, want %s", tt.spec, appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestParseAPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      APITarget
		want    Spec
		wantErr bool
	}{
		{name: "group", in: APITarget{GroupID: "g-1"}, want: Group("g-1")},
		{name: "department", in: APITarget{DepartmentID: "d-1"}, want: Department("d-1")},
		{name: "member type", in: APITarget{MemberType: "STAFF"}, want: MemberType("STAFF")},
		{name: "global", in: APITarget{IsGlobal: true}, want: All()},
		{name: "member", in: APITarget{MemberID: "m-1"}, want: Member("m-1")},
		{name: "empty", in: APITarget{}, wantErr: true},
		{name: "ambiguous", in: APITarget{GroupID: "g-1", MemberID: "m-1"}, wantErr: true},
		{name: "global plus member type", in: APITarget{IsGlobal: true, MemberType: "STAFF"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAPI(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAPI(%+v): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAPI(%+v): unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseAPI(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
