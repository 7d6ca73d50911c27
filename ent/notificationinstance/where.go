// Code generated by ent, DO NOT EDIT.

package notificationinstance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"memberhub.io/memberhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// DefinitionID applies equality check predicate on the "definition_id" field. It's identical to DefinitionIDEQ.
func DefinitionID(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldDefinitionID, v))
}

// FiredAt applies equality check predicate on the "fired_at" field. It's identical to FiredAtEQ.
func FiredAt(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldFiredAt, v))
}

// Failure applies equality check predicate on the "failure" field. It's identical to FailureEQ.
func Failure(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldFailure, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLTE(FieldCreatedAt, v))
}

// DefinitionIDEQ applies the EQ predicate on the "definition_id" field.
func DefinitionIDEQ(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldDefinitionID, v))
}

// DefinitionIDNEQ applies the NEQ predicate on the "definition_id" field.
func DefinitionIDNEQ(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNEQ(FieldDefinitionID, v))
}

// DefinitionIDIn applies the In predicate on the "definition_id" field.
func DefinitionIDIn(vs ...string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldIn(FieldDefinitionID, vs...))
}

// DefinitionIDNotIn applies the NotIn predicate on the "definition_id" field.
func DefinitionIDNotIn(vs ...string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNotIn(FieldDefinitionID, vs...))
}

// DefinitionIDGT applies the GT predicate on the "definition_id" field.
func DefinitionIDGT(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGT(FieldDefinitionID, v))
}

// DefinitionIDGTE applies the GTE predicate on the "definition_id" field.
func DefinitionIDGTE(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGTE(FieldDefinitionID, v))
}

// DefinitionIDLT applies the LT predicate on the "definition_id" field.
func DefinitionIDLT(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLT(FieldDefinitionID, v))
}

// DefinitionIDLTE applies the LTE predicate on the "definition_id" field.
func DefinitionIDLTE(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLTE(FieldDefinitionID, v))
}

// DefinitionIDContains applies the Contains predicate on the "definition_id" field.
func DefinitionIDContains(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldContains(FieldDefinitionID, v))
}

// DefinitionIDHasPrefix applies the HasPrefix predicate on the "definition_id" field.
func DefinitionIDHasPrefix(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldHasPrefix(FieldDefinitionID, v))
}

// DefinitionIDHasSuffix applies the HasSuffix predicate on the "definition_id" field.
func DefinitionIDHasSuffix(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldHasSuffix(FieldDefinitionID, v))
}

// DefinitionIDEqualFold applies the EqualFold predicate on the "definition_id" field.
func DefinitionIDEqualFold(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEqualFold(FieldDefinitionID, v))
}

// DefinitionIDContainsFold applies the ContainsFold predicate on the "definition_id" field.
func DefinitionIDContainsFold(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldContainsFold(FieldDefinitionID, v))
}

// FiredAtEQ applies the EQ predicate on the "fired_at" field.
func FiredAtEQ(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldFiredAt, v))
}

// FiredAtNEQ applies the NEQ predicate on the "fired_at" field.
func FiredAtNEQ(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNEQ(FieldFiredAt, v))
}

// FiredAtIn applies the In predicate on the "fired_at" field.
func FiredAtIn(vs ...time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldIn(FieldFiredAt, vs...))
}

// FiredAtNotIn applies the NotIn predicate on the "fired_at" field.
func FiredAtNotIn(vs ...time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNotIn(FieldFiredAt, vs...))
}

// FiredAtGT applies the GT predicate on the "fired_at" field.
func FiredAtGT(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGT(FieldFiredAt, v))
}

// FiredAtGTE applies the GTE predicate on the "fired_at" field.
func FiredAtGTE(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGTE(FieldFiredAt, v))
}

// FiredAtLT applies the LT predicate on the "fired_at" field.
func FiredAtLT(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLT(FieldFiredAt, v))
}

// FiredAtLTE applies the LTE predicate on the "fired_at" field.
func FiredAtLTE(v time.Time) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLTE(FieldFiredAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNotIn(FieldStatus, vs...))
}

// FailureEQ applies the EQ predicate on the "failure" field.
func FailureEQ(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEQ(FieldFailure, v))
}

// FailureNEQ applies the NEQ predicate on the "failure" field.
func FailureNEQ(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNEQ(FieldFailure, v))
}

// FailureIn applies the In predicate on the "failure" field.
func FailureIn(vs ...string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldIn(FieldFailure, vs...))
}

// FailureNotIn applies the NotIn predicate on the "failure" field.
func FailureNotIn(vs ...string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNotIn(FieldFailure, vs...))
}

// FailureGT applies the GT predicate on the "failure" field.
func FailureGT(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGT(FieldFailure, v))
}

// FailureGTE applies the GTE predicate on the "failure" field.
func FailureGTE(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldGTE(FieldFailure, v))
}

// FailureLT applies the LT predicate on the "failure" field.
func FailureLT(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLT(FieldFailure, v))
}

// FailureLTE applies the LTE predicate on the "failure" field.
func FailureLTE(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldLTE(FieldFailure, v))
}

// FailureContains applies the Contains predicate on the "failure" field.
func FailureContains(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldContains(FieldFailure, v))
}

// FailureHasPrefix applies the HasPrefix predicate on the "failure" field.
func FailureHasPrefix(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldHasPrefix(FieldFailure, v))
}

// FailureHasSuffix applies the HasSuffix predicate on the "failure" field.
func FailureHasSuffix(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldHasSuffix(FieldFailure, v))
}

// FailureIsNil applies the IsNil predicate on the "failure" field.
func FailureIsNil() predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldIsNull(FieldFailure))
}

// FailureNotNil applies the NotNil predicate on the "failure" field.
func FailureNotNil() predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldNotNull(FieldFailure))
}

// FailureEqualFold applies the EqualFold predicate on the "failure" field.
func FailureEqualFold(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldEqualFold(FieldFailure, v))
}

// FailureContainsFold applies the ContainsFold predicate on the "failure" field.
func FailureContainsFold(v string) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.FieldContainsFold(FieldFailure, v))
}

// HasDefinition applies the HasEdge predicate on the "definition" edge.
func HasDefinition() predicate.NotificationInstance {
	return predicate.NotificationInstance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefinitionWith applies the HasEdge predicate on the "definition" edge with a given conditions (other predicates).
func HasDefinitionWith(preds ...predicate.NotificationDefinition) predicate.NotificationInstance {
	return predicate.NotificationInstance(func(s *sql.Selector) {
		step := newDefinitionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDeliveries applies the HasEdge predicate on the "deliveries" edge.
func HasDeliveries() predicate.NotificationInstance {
	return predicate.NotificationInstance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DeliveriesTable, DeliveriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeliveriesWith applies the HasEdge predicate on the "deliveries" edge with a given conditions (other predicates).
func HasDeliveriesWith(preds ...predicate.DeliveryRecord) predicate.NotificationInstance {
	return predicate.NotificationInstance(func(s *sql.Selector) {
		step := newDeliveriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationInstance) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationInstance) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationInstance) predicate.NotificationInstance {
	return predicate.NotificationInstance(sql.NotPredicates(p))
}
