package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeliveryRecord is the per-recipient receipt/read-state row for one
// instance. Exactly one record per (instance, recipient) pair ever exists;
// is_read only transitions false to true.
type DeliveryRecord struct {
	ent.Schema
}

// Mixin of the DeliveryRecord.
func (DeliveryRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the DeliveryRecord.
func (DeliveryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.String("recipient_id").
			NotEmpty().
			Immutable(),
		field.Bool("is_read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
		field.Enum("delivered_via").
			Values("INITIAL_SYNC", "LIVE_PUSH").
			Immutable().
			Comment("How the recipient was reachable at fanout time"),
	}
}

// Edges of the DeliveryRecord.
func (DeliveryRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", NotificationInstance.Type).
			Ref("deliveries").
			Unique().
			Required().
			Immutable().
			Field("instance_id"),
	}
}

// Indexes of the DeliveryRecord.
func (DeliveryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id", "recipient_id").Unique(), // one record per pair
		index.Fields("recipient_id", "is_read"),              // fast unread count
		index.Fields("recipient_id", "created_at"),           // snapshot listing
	}
}
