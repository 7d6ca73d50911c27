// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/notificationinstance"
)

// DeliveryRecord is the model entity for the DeliveryRecord schema.
type DeliveryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// RecipientID holds the value of the "recipient_id" field.
	RecipientID string `json:"recipient_id,omitempty"`
	// IsRead holds the value of the "is_read" field.
	IsRead bool `json:"is_read,omitempty"`
	// ReadAt holds the value of the "read_at" field.
	ReadAt *time.Time `json:"read_at,omitempty"`
	// How the recipient was reachable at fanout time
	DeliveredVia deliveryrecord.DeliveredVia `json:"delivered_via,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeliveryRecordQuery when eager-loading is set.
	Edges        DeliveryRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeliveryRecordEdges holds the relations/edges for other nodes in the graph.
type DeliveryRecordEdges struct {
	// Instance holds the value of the instance edge.
	Instance *NotificationInstance `json:"instance,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstanceOrErr returns the Instance value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeliveryRecordEdges) InstanceOrErr() (*NotificationInstance, error) {
	if e.Instance != nil {
		return e.Instance, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: notificationinstance.Label}
	}
	return nil, &NotLoadedError{edge: "instance"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeliveryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliveryrecord.FieldIsRead:
			values[i] = new(sql.NullBool)
		case deliveryrecord.FieldID, deliveryrecord.FieldInstanceID, deliveryrecord.FieldRecipientID, deliveryrecord.FieldDeliveredVia:
			values[i] = new(sql.NullString)
		case deliveryrecord.FieldCreatedAt, deliveryrecord.FieldReadAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeliveryRecord fields.
func (_m *DeliveryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliveryrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deliveryrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deliveryrecord.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case deliveryrecord.FieldRecipientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_id", values[i])
			} else if value.Valid {
				_m.RecipientID = value.String
			}
		case deliveryrecord.FieldIsRead:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_read", values[i])
			} else if value.Valid {
				_m.IsRead = value.Bool
			}
		case deliveryrecord.FieldReadAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field read_at", values[i])
			} else if value.Valid {
				_m.ReadAt = new(time.Time)
				*_m.ReadAt = value.Time
			}
		case deliveryrecord.FieldDeliveredVia:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_via", values[i])
			} else if value.Valid {
				_m.DeliveredVia = deliveryrecord.DeliveredVia(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeliveryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *DeliveryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstance queries the "instance" edge of the DeliveryRecord entity.
func (_m *DeliveryRecord) QueryInstance() *NotificationInstanceQuery {
	return NewDeliveryRecordClient(_m.config).QueryInstance(_m)
}

// Update returns a builder for updating this DeliveryRecord.
// Note that you need to call DeliveryRecord.Unwrap() before calling this method if this DeliveryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeliveryRecord) Update() *DeliveryRecordUpdateOne {
	return NewDeliveryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeliveryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeliveryRecord) Unwrap() *DeliveryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeliveryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeliveryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("DeliveryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("recipient_id=")
	builder.WriteString(_m.RecipientID)
	builder.WriteString(", ")
	builder.WriteString("is_read=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRead))
	builder.WriteString(", ")
	if v := _m.ReadAt; v != nil {
		builder.WriteString("read_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("delivered_via=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveredVia))
	builder.WriteByte(')')
	return builder.String()
}

// DeliveryRecords is a parsable slice of DeliveryRecord.
type DeliveryRecords []*DeliveryRecord
