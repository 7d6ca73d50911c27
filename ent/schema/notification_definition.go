package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationDefinition is a user-authored notification rule: what to say,
// who to target, and when (once or recurring). Immutable after creation
// except for the scheduling state transitions.
type NotificationDefinition struct {
	ent.Schema
}

// Mixin of the NotificationDefinition.
func (NotificationDefinition) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only; definitions never change content
	}
}

// Fields of the NotificationDefinition.
func (NotificationDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(255).
			Immutable(),
		field.String("message").
			NotEmpty().
			MaxLen(2048).
			Immutable(),
		field.Enum("type").
			Values("REMINDER", "ANNOUNCEMENT").
			Immutable(),
		field.Enum("target_kind").
			Values("GROUP", "DEPARTMENT", "MEMBER_TYPE", "ALL", "MEMBER").
			Immutable().
			Comment("Discriminant of the target spec union"),
		field.String("target_value").
			Optional().
			Immutable().
			Comment("Group/department/member id or member-type value; empty for ALL"),
		field.Time("scheduled_at").
			Optional().
			Nillable().
			Immutable().
			Comment("First fire time; nil means fire immediately"),
		field.Enum("recurrence").
			Values("NONE", "DAILY", "WEEKLY", "MONTHLY").
			Immutable(),
		field.Enum("state").
			Values("PENDING", "ACTIVE", "EXHAUSTED", "CANCELLED").
			Default("PENDING"),
		field.String("created_by").
			Immutable(),
	}
}

// Edges of the NotificationDefinition.
func (NotificationDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("instances", NotificationInstance.Type),
	}
}

// Indexes of the NotificationDefinition.
func (NotificationDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("created_at"),
	}
}
