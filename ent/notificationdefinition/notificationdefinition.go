// Code generated by ent, DO NOT EDIT.

package notificationdefinition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the notificationdefinition type in the database.
	Label = "notification_definition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTargetKind holds the string denoting the target_kind field in the database.
	FieldTargetKind = "target_kind"
	// FieldTargetValue holds the string denoting the target_value field in the database.
	FieldTargetValue = "target_value"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldRecurrence holds the string denoting the recurrence field in the database.
	FieldRecurrence = "recurrence"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeInstances holds the string denoting the instances edge name in mutations.
	EdgeInstances = "instances"
	// Table holds the table name of the notificationdefinition in the database.
	Table = "notification_definitions"
	// InstancesTable is the table that holds the instances relation/edge.
	InstancesTable = "notification_instances"
	// InstancesInverseTable is the table name for the NotificationInstance entity.
	// It exists in this package in order to avoid circular dependency with the "notificationinstance" package.
	InstancesInverseTable = "notification_instances"
	// InstancesColumn is the table column denoting the instances relation/edge.
	InstancesColumn = "definition_id"
)

// Columns holds all SQL columns for notificationdefinition fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTitle,
	FieldMessage,
	FieldType,
	FieldTargetKind,
	FieldTargetValue,
	FieldScheduledAt,
	FieldRecurrence,
	FieldState,
	FieldCreatedBy,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeREMINDER     Type = "REMINDER"
	TypeANNOUNCEMENT Type = "ANNOUNCEMENT"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeREMINDER, TypeANNOUNCEMENT:
		return nil
	default:
		return fmt.Errorf("notificationdefinition: invalid enum value for type field: %q", _type)
	}
}

// TargetKind defines the type for the "target_kind" enum field.
type TargetKind string

// TargetKind values.
const (
	TargetKindGROUP       TargetKind = "GROUP"
	TargetKindDEPARTMENT  TargetKind = "DEPARTMENT"
	TargetKindMEMBER_TYPE TargetKind = "MEMBER_TYPE"
	TargetKindALL         TargetKind = "ALL"
	TargetKindMEMBER      TargetKind = "MEMBER"
)

func (tk TargetKind) String() string {
	return string(tk)
}

// TargetKindValidator is a validator for the "target_kind" field enum values. It is called by the builders before save.
func TargetKindValidator(tk TargetKind) error {
	switch tk {
	case TargetKindGROUP, TargetKindDEPARTMENT, TargetKindMEMBER_TYPE, TargetKindALL, TargetKindMEMBER:
		return nil
	default:
		return fmt.Errorf("notificationdefinition: invalid enum value for target_kind field: %q", tk)
	}
}

// Recurrence defines the type for the "recurrence" enum field.
type Recurrence string

// Recurrence values.
const (
	RecurrenceNONE    Recurrence = "NONE"
	RecurrenceDAILY   Recurrence = "DAILY"
	RecurrenceWEEKLY  Recurrence = "WEEKLY"
	RecurrenceMONTHLY Recurrence = "MONTHLY"
)

func (r Recurrence) String() string {
	return string(r)
}

// RecurrenceValidator is a validator for the "recurrence" field enum values. It is called by the builders before save.
func RecurrenceValidator(r Recurrence) error {
	switch r {
	case RecurrenceNONE, RecurrenceDAILY, RecurrenceWEEKLY, RecurrenceMONTHLY:
		return nil
	default:
		return fmt.Errorf("notificationdefinition: invalid enum value for recurrence field: %q", r)
	}
}

// State defines the type for the "state" enum field.
type State string

// StatePENDING is the default value of the State enum.
const DefaultState = StatePENDING

// State values.
const (
	StatePENDING   State = "PENDING"
	StateACTIVE    State = "ACTIVE"
	StateEXHAUSTED State = "EXHAUSTED"
	StateCANCELLED State = "CANCELLED"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePENDING, StateACTIVE, StateEXHAUSTED, StateCANCELLED:
		return nil
	default:
		return fmt.Errorf("notificationdefinition: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the NotificationDefinition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByTargetKind orders the results by the target_kind field.
func ByTargetKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetKind, opts...).ToFunc()
}

// ByTargetValue orders the results by the target_value field.
func ByTargetValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetValue, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
}

// ByRecurrence orders the results by the recurrence field.
func ByRecurrence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrence, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByInstancesCount orders the results by instances count.
func ByInstancesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInstancesStep(), opts...)
	}
}

// ByInstances orders the results by instances terms.
func ByInstances(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstancesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInstancesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstancesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InstancesTable, InstancesColumn),
	)
}
