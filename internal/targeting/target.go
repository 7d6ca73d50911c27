// Package targeting turns a notification target spec into a concrete,
// deduplicated recipient-id set at the moment of resolution.
package targeting

import (
	"fmt"
)

// Kind is the discriminant of the target spec union.
type Kind string

// Target kinds. Exactly one variant of the union is ever populated.
const (
	KindGroup      Kind = "GROUP"
	KindDepartment Kind = "DEPARTMENT"
	KindMemberType Kind = "MEMBER_TYPE"
	KindAll        Kind = "ALL"
	KindMember     Kind = "MEMBER"
)

// Spec is a tagged target specification. Value carries the group, department
// or member id, or the member-type classification; it is empty for KindAll.
type Spec struct {
	Kind  Kind
	Value string
}

// Constructors for each variant.

// Group targets the current members of a group.
func Group(id string) Spec { return Spec{Kind: KindGroup, Value: id} }

// Department targets the current members of a department.
func Department(id string) Spec { return Spec{Kind: KindDepartment, Value: id} }

// MemberType targets all members with the given classification.
func MemberType(value string) Spec { return Spec{Kind: KindMemberType, Value: value} }

// All targets every member.
func All() Spec { return Spec{Kind: KindAll} }

// Member targets a single member.
func Member(id string) Spec { return Spec{Kind: KindMember, Value: id} }

// Validate checks structural validity of the spec.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindAll:
		if s.Value != "" {
			return fmt.Errorf("target %s must not carry a value", s.Kind)
		}
		return nil
	case KindGroup, KindDepartment, KindMemberType, KindMember:
		if s.Value == "" {
			return fmt.Errorf("target %s requires a value", s.Kind)
		}
		return nil
	default:
		return fmt.Errorf("unknown target kind %q", string(s.Kind))
	}
}

// String renders the spec for logs.
func (s Spec) String() string {
	if s.Kind == KindAll {
		return string(KindAll)
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Value)
}

// APITarget is the wire shape of a target in the console REST API. Exactly
// one field must be populated.
type APITarget struct {
	GroupID      string `json:"group_id,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
	MemberType   string `json:"member_type,omitempty"`
	IsGlobal     bool   `json:"is_global,omitempty"`
	MemberID     string `json:"member_id,omitempty"`
}

// ParseAPI converts the duck-typed wire target into a tagged Spec,
// rejecting missing or ambiguous variants.
func ParseAPI(t APITarget) (Spec, error) {
	var specs []Spec
	if t.GroupID != "" {
		specs = append(specs, Group(t.GroupID))
	}
	if t.DepartmentID != "" {
		specs = append(specs, Department(t.DepartmentID))
	}
	if t.MemberType != "" {
		specs = append(specs, MemberType(t.MemberType))
	}
	if t.IsGlobal {
		specs = append(specs, All())
	}
	if t.MemberID != "" {
		specs = append(specs, Member(t.MemberID))
	}

	switch len(specs) {
	case 0:
		return Spec{}, fmt.Errorf("target is required: set exactly one of group_id, department_id, member_type, is_global, member_id")
	case 1:
		return specs[0], nil
	default:
		return Spec{}, fmt.Errorf("ambiguous target: %d variants populated, want exactly one", len(specs))
	}
}
