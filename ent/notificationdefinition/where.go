// Code generated by ent, DO NOT EDIT.

package notificationdefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"memberhub.io/memberhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldTitle, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldMessage, v))
}

// TargetValue applies equality check predicate on the "target_value" field. It's identical to TargetValueEQ.
func TargetValue(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldTargetValue, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldScheduledAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLTE(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContainsFold(FieldTitle, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContainsFold(FieldMessage, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldType, vs...))
}

// TargetKindEQ applies the EQ predicate on the "target_kind" field.
func TargetKindEQ(v TargetKind) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldTargetKind, v))
}

// TargetKindNEQ applies the NEQ predicate on the "target_kind" field.
func TargetKindNEQ(v TargetKind) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldTargetKind, v))
}

// TargetKindIn applies the In predicate on the "target_kind" field.
func TargetKindIn(vs ...TargetKind) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldTargetKind, vs...))
}

// TargetKindNotIn applies the NotIn predicate on the "target_kind" field.
func TargetKindNotIn(vs ...TargetKind) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldTargetKind, vs...))
}

// TargetValueEQ applies the EQ predicate on the "target_value" field.
func TargetValueEQ(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldTargetValue, v))
}

// TargetValueNEQ applies the NEQ predicate on the "target_value" field.
func TargetValueNEQ(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldTargetValue, v))
}

// TargetValueIn applies the In predicate on the "target_value" field.
func TargetValueIn(vs ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldTargetValue, vs...))
}

// TargetValueNotIn applies the NotIn predicate on the "target_value" field.
func TargetValueNotIn(vs ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldTargetValue, vs...))
}

// TargetValueGT applies the GT predicate on the "target_value" field.
func TargetValueGT(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGT(FieldTargetValue, v))
}

// TargetValueGTE applies the GTE predicate on the "target_value" field.
func TargetValueGTE(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGTE(FieldTargetValue, v))
}

// TargetValueLT applies the LT predicate on the "target_value" field.
func TargetValueLT(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLT(FieldTargetValue, v))
}

// TargetValueLTE applies the LTE predicate on the "target_value" field.
func TargetValueLTE(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLTE(FieldTargetValue, v))
}

// TargetValueContains applies the Contains predicate on the "target_value" field.
func TargetValueContains(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContains(FieldTargetValue, v))
}

// TargetValueHasPrefix applies the HasPrefix predicate on the "target_value" field.
func TargetValueHasPrefix(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldHasPrefix(FieldTargetValue, v))
}

// TargetValueHasSuffix applies the HasSuffix predicate on the "target_value" field.
func TargetValueHasSuffix(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldHasSuffix(FieldTargetValue, v))
}

// TargetValueIsNil applies the IsNil predicate on the "target_value" field.
func TargetValueIsNil() predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIsNull(FieldTargetValue))
}

// TargetValueNotNil applies the NotNil predicate on the "target_value" field.
func TargetValueNotNil() predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotNull(FieldTargetValue))
}

// TargetValueEqualFold applies the EqualFold predicate on the "target_value" field.
func TargetValueEqualFold(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEqualFold(FieldTargetValue, v))
}

// TargetValueContainsFold applies the ContainsFold predicate on the "target_value" field.
func TargetValueContainsFold(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContainsFold(FieldTargetValue, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLTE(FieldScheduledAt, v))
}

// ScheduledAtIsNil applies the IsNil predicate on the "scheduled_at" field.
func ScheduledAtIsNil() predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIsNull(FieldScheduledAt))
}

// ScheduledAtNotNil applies the NotNil predicate on the "scheduled_at" field.
func ScheduledAtNotNil() predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotNull(FieldScheduledAt))
}

// RecurrenceEQ applies the EQ predicate on the "recurrence" field.
func RecurrenceEQ(v Recurrence) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldRecurrence, v))
}

// RecurrenceNEQ applies the NEQ predicate on the "recurrence" field.
func RecurrenceNEQ(v Recurrence) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldRecurrence, v))
}

// RecurrenceIn applies the In predicate on the "recurrence" field.
func RecurrenceIn(vs ...Recurrence) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldRecurrence, vs...))
}

// RecurrenceNotIn applies the NotIn predicate on the "recurrence" field.
func RecurrenceNotIn(vs ...Recurrence) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldRecurrence, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldState, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasInstances applies the HasEdge predicate on the "instances" edge.
func HasInstances() predicate.NotificationDefinition {
	return predicate.NotificationDefinition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InstancesTable, InstancesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstancesWith applies the HasEdge predicate on the "instances" edge with a given conditions (other predicates).
func HasInstancesWith(preds ...predicate.NotificationInstance) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(func(s *sql.Selector) {
		step := newInstancesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationDefinition) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationDefinition) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationDefinition) predicate.NotificationDefinition {
	return predicate.NotificationDefinition(sql.NotPredicates(p))
}
