// Code generated by ent, DO NOT EDIT.

package deliveryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"memberhub.io/memberhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldInstanceID, v))
}

// RecipientID applies equality check predicate on the "recipient_id" field. It's identical to RecipientIDEQ.
func RecipientID(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldRecipientID, v))
}

// IsRead applies equality check predicate on the "is_read" field. It's identical to IsReadEQ.
func IsRead(v bool) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldIsRead, v))
}

// ReadAt applies equality check predicate on the "read_at" field. It's identical to ReadAtEQ.
func ReadAt(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldReadAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContainsFold(FieldInstanceID, v))
}

// RecipientIDEQ applies the EQ predicate on the "recipient_id" field.
func RecipientIDEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldRecipientID, v))
}

// RecipientIDNEQ applies the NEQ predicate on the "recipient_id" field.
func RecipientIDNEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldRecipientID, v))
}

// RecipientIDIn applies the In predicate on the "recipient_id" field.
func RecipientIDIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldRecipientID, vs...))
}

// RecipientIDNotIn applies the NotIn predicate on the "recipient_id" field.
func RecipientIDNotIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldRecipientID, vs...))
}

// RecipientIDGT applies the GT predicate on the "recipient_id" field.
func RecipientIDGT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldRecipientID, v))
}

// RecipientIDGTE applies the GTE predicate on the "recipient_id" field.
func RecipientIDGTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldRecipientID, v))
}

// RecipientIDLT applies the LT predicate on the "recipient_id" field.
func RecipientIDLT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldRecipientID, v))
}

// RecipientIDLTE applies the LTE predicate on the "recipient_id" field.
func RecipientIDLTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldRecipientID, v))
}

// RecipientIDContains applies the Contains predicate on the "recipient_id" field.
func RecipientIDContains(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContains(FieldRecipientID, v))
}

// RecipientIDHasPrefix applies the HasPrefix predicate on the "recipient_id" field.
func RecipientIDHasPrefix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasPrefix(FieldRecipientID, v))
}

// RecipientIDHasSuffix applies the HasSuffix predicate on the "recipient_id" field.
func RecipientIDHasSuffix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasSuffix(FieldRecipientID, v))
}

// RecipientIDEqualFold applies the EqualFold predicate on the "recipient_id" field.
func RecipientIDEqualFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEqualFold(FieldRecipientID, v))
}

// RecipientIDContainsFold applies the ContainsFold predicate on the "recipient_id" field.
func RecipientIDContainsFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContainsFold(FieldRecipientID, v))
}

// IsReadEQ applies the EQ predicate on the "is_read" field.
func IsReadEQ(v bool) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldIsRead, v))
}

// IsReadNEQ applies the NEQ predicate on the "is_read" field.
func IsReadNEQ(v bool) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldIsRead, v))
}

// ReadAtEQ applies the EQ predicate on the "read_at" field.
func ReadAtEQ(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldReadAt, v))
}

// ReadAtNEQ applies the NEQ predicate on the "read_at" field.
func ReadAtNEQ(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldReadAt, v))
}

// ReadAtIn applies the In predicate on the "read_at" field.
func ReadAtIn(vs ...time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldReadAt, vs...))
}

// ReadAtNotIn applies the NotIn predicate on the "read_at" field.
func ReadAtNotIn(vs ...time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldReadAt, vs...))
}

// ReadAtGT applies the GT predicate on the "read_at" field.
func ReadAtGT(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldReadAt, v))
}

// ReadAtGTE applies the GTE predicate on the "read_at" field.
func ReadAtGTE(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldReadAt, v))
}

// ReadAtLT applies the LT predicate on the "read_at" field.
func ReadAtLT(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldReadAt, v))
}

// ReadAtLTE applies the LTE predicate on the "read_at" field.
func ReadAtLTE(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldReadAt, v))
}

// ReadAtIsNil applies the IsNil predicate on the "read_at" field.
func ReadAtIsNil() predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIsNull(FieldReadAt))
}

// ReadAtNotNil applies the NotNil predicate on the "read_at" field.
func ReadAtNotNil() predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotNull(FieldReadAt))
}

// DeliveredViaEQ applies the EQ predicate on the "delivered_via" field.
func DeliveredViaEQ(v DeliveredVia) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldDeliveredVia, v))
}

// DeliveredViaNEQ applies the NEQ predicate on the "delivered_via" field.
func DeliveredViaNEQ(v DeliveredVia) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldDeliveredVia, v))
}

// DeliveredViaIn applies the In predicate on the "delivered_via" field.
func DeliveredViaIn(vs ...DeliveredVia) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldDeliveredVia, vs...))
}

// DeliveredViaNotIn applies the NotIn predicate on the "delivered_via" field.
func DeliveredViaNotIn(vs ...DeliveredVia) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldDeliveredVia, vs...))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.DeliveryRecord {
	return predicate.DeliveryRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.NotificationInstance) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeliveryRecord) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeliveryRecord) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeliveryRecord) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.NotPredicates(p))
}
