package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationInstance is one concrete firing of a definition. The recipient
// set is resolved at fire time and frozen here permanently, so later roster
// changes never rewrite delivery history.
type NotificationInstance struct {
	ent.Schema
}

// Mixin of the NotificationInstance.
func (NotificationInstance) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the NotificationInstance.
func (NotificationInstance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("definition_id").
			Immutable(),
		field.Time("fired_at").
			Immutable(),
		field.JSON("recipient_snapshot", []string{}).
			Immutable().
			Comment("Recipient ids resolved at fire time, frozen"),
		field.Enum("status").
			Values("FIRED", "FAILED").
			Default("FIRED"),
		field.String("failure").
			Optional().
			MaxLen(2048).
			Comment("Resolution error for FAILED firings"),
	}
}

// Edges of the NotificationInstance.
func (NotificationInstance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("definition", NotificationDefinition.Type).
			Ref("instances").
			Unique().
			Required().
			Immutable().
			Field("definition_id"),
		edge.To("deliveries", DeliveryRecord.Type),
	}
}

// Indexes of the NotificationInstance.
func (NotificationInstance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("definition_id", "fired_at"),
	}
}
