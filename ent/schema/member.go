package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Member is the roster entry notifications are targeted at. The membership
// CRUD surface lives in the admin console; this service only reads members
// to resolve notification targets.
type Member struct {
	ent.Schema
}

// Mixin of the Member.
func (Member) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Member.
func (Member) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("display_name").
			NotEmpty().
			MaxLen(255),
		field.String("member_type").
			NotEmpty().
			Comment("Classification, e.g. member, first_timer, leader"),
		field.String("department_id").
			Optional(),
	}
}

// Edges of the Member.
func (Member) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("department", Department.Type).
			Ref("members").
			Unique().
			Field("department_id"),
		edge.From("groups", Group.Type).
			Ref("members"),
	}
}

// Indexes of the Member.
func (Member) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_type"), // memberType target resolution
	}
}
