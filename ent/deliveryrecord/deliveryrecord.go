// Code generated by ent, DO NOT EDIT.

package deliveryrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the deliveryrecord type in the database.
	Label = "delivery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldRecipientID holds the string denoting the recipient_id field in the database.
	FieldRecipientID = "recipient_id"
	// FieldIsRead holds the string denoting the is_read field in the database.
	FieldIsRead = "is_read"
	// FieldReadAt holds the string denoting the read_at field in the database.
	FieldReadAt = "read_at"
	// FieldDeliveredVia holds the string denoting the delivered_via field in the database.
	FieldDeliveredVia = "delivered_via"
	// EdgeInstance holds the string denoting the instance edge name in mutations.
	EdgeInstance = "instance"
	// Table holds the table name of the deliveryrecord in the database.
	Table = "delivery_records"
	// InstanceTable is the table that holds the instance relation/edge.
	InstanceTable = "delivery_records"
	// InstanceInverseTable is the table name for the NotificationInstance entity.
	// It exists in this package in order to avoid circular dependency with the "notificationinstance" package.
	InstanceInverseTable = "notification_instances"
	// InstanceColumn is the table column denoting the instance relation/edge.
	InstanceColumn = "instance_id"
)

// Columns holds all SQL columns for deliveryrecord fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldInstanceID,
	FieldRecipientID,
	FieldIsRead,
	FieldReadAt,
	FieldDeliveredVia,
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
	// RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	RecipientIDValidator func(string) error
	// DefaultIsRead holds the default value on creation for the "is_read" field.
	DefaultIsRead bool
)

// DeliveredVia defines the type for the "delivered_via" enum field.
type DeliveredVia string

// DeliveredVia values.
const (
	DeliveredViaINITIAL_SYNC DeliveredVia = "INITIAL_SYNC"
	DeliveredViaLIVE_PUSH    DeliveredVia = "LIVE_PUSH"
)

func (dv DeliveredVia) String() string {
	return string(dv)
}

// DeliveredViaValidator is a validator for the "delivered_via" field enum values. It is called by the builders before save.
func DeliveredViaValidator(dv DeliveredVia) error {
	switch dv {
	case DeliveredViaINITIAL_SYNC, DeliveredViaLIVE_PUSH:
		return nil
	default:
		return fmt.Errorf("deliveryrecord: invalid enum value for delivered_via field: %q", dv)
	}
}

// OrderOption defines the ordering options for the DeliveryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByRecipientID orders the results by the recipient_id field.
func ByRecipientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientID, opts...).ToFunc()
}

// ByIsRead orders the results by the is_read field.
func ByIsRead(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRead, opts...).ToFunc()
}

// ByReadAt orders the results by the read_at field.
func ByReadAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadAt, opts...).ToFunc()
}

// ByDeliveredVia orders the results by the delivered_via field.
func ByDeliveredVia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredVia, opts...).ToFunc()
}

// ByInstanceField orders the results by instance field.
func ByInstanceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstanceStep(), sql.OrderByField(field, opts...))
	}
}
func newInstanceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstanceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
	)
}
