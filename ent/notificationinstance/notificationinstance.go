// Code generated by ent, DO NOT EDIT.

package notificationinstance

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the notificationinstance type in the database.
	Label = "notification_instance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDefinitionID holds the string denoting the definition_id field in the database.
	FieldDefinitionID = "definition_id"
	// FieldFiredAt holds the string denoting the fired_at field in the database.
	FieldFiredAt = "fired_at"
	// FieldRecipientSnapshot holds the string denoting the recipient_snapshot field in the database.
	FieldRecipientSnapshot = "recipient_snapshot"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFailure holds the string denoting the failure field in the database.
	FieldFailure = "failure"
	// EdgeDefinition holds the string denoting the definition edge name in mutations.
	EdgeDefinition = "definition"
	// EdgeDeliveries holds the string denoting the deliveries edge name in mutations.
	EdgeDeliveries = "deliveries"
	// Table holds the table name of the notificationinstance in the database.
	Table = "notification_instances"
	// DefinitionTable is the table that holds the definition relation/edge.
	DefinitionTable = "notification_instances"
	// DefinitionInverseTable is the table name for the NotificationDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "notificationdefinition" package.
	DefinitionInverseTable = "notification_definitions"
	// DefinitionColumn is the table column denoting the definition relation/edge.
	DefinitionColumn = "definition_id"
	// DeliveriesTable is the table that holds the deliveries relation/edge.
	DeliveriesTable = "delivery_records"
	// DeliveriesInverseTable is the table name for the DeliveryRecord entity.
	// It exists in this package in order to avoid circular dependency with the "deliveryrecord" package.
	DeliveriesInverseTable = "delivery_records"
	// DeliveriesColumn is the table column denoting the deliveries relation/edge.
	DeliveriesColumn = "instance_id"
)

// Columns holds all SQL columns for notificationinstance fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldDefinitionID,
	FieldFiredAt,
	FieldRecipientSnapshot,
	FieldStatus,
	FieldFailure,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// FailureValidator is a validator for the "failure" field. It is called by the builders before save.
	FailureValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusFIRED is the default value of the Status enum.
const DefaultStatus = StatusFIRED

// Status values.
const (
	StatusFIRED  Status = "FIRED"
	StatusFAILED Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusFIRED, StatusFAILED:
		return nil
	default:
		return fmt.Errorf("notificationinstance: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the NotificationInstance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDefinitionID orders the results by the definition_id field.
func ByDefinitionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefinitionID, opts...).ToFunc()
}

// ByFiredAt orders the results by the fired_at field.
func ByFiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFiredAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFailure orders the results by the failure field.
func ByFailure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailure, opts...).ToFunc()
}

// ByDefinitionField orders the results by definition field.
func ByDefinitionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefinitionStep(), sql.OrderByField(field, opts...))
	}
}

// ByDeliveriesCount orders the results by deliveries count.
func ByDeliveriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeliveriesStep(), opts...)
	}
}

// ByDeliveries orders the results by deliveries terms.
func ByDeliveries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeliveriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDefinitionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefinitionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
	)
}
func newDeliveriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeliveriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeliveriesTable, DeliveriesColumn),
	)
}
