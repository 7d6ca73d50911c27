// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
)

// NotificationInstance is the model entity for the NotificationInstance schema.
type NotificationInstance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DefinitionID holds the value of the "definition_id" field.
	DefinitionID string `json:"definition_id,omitempty"`
	// FiredAt holds the value of the "fired_at" field.
	FiredAt time.Time `json:"fired_at,omitempty"`
	// Recipient ids resolved at fire time, frozen
	RecipientSnapshot []string `json:"recipient_snapshot,omitempty"`
	// Status holds the value of the "status" field.
	Status notificationinstance.Status `json:"status,omitempty"`
	// Resolution error for FAILED firings
	Failure string `json:"failure,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NotificationInstanceQuery when eager-loading is set.
	Edges        NotificationInstanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NotificationInstanceEdges holds the relations/edges for other nodes in the graph.
type NotificationInstanceEdges struct {
	// Definition holds the value of the definition edge.
	Definition *NotificationDefinition `json:"definition,omitempty"`
	// Deliveries holds the value of the deliveries edge.
	Deliveries []*DeliveryRecord `json:"deliveries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DefinitionOrErr returns the Definition value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NotificationInstanceEdges) DefinitionOrErr() (*NotificationDefinition, error) {
	if e.Definition != nil {
		return e.Definition, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: notificationdefinition.Label}
	}
	return nil, &NotLoadedError{edge: "definition"}
}

// DeliveriesOrErr returns the Deliveries value or an error if the edge
// was not loaded in eager-loading.
func (e NotificationInstanceEdges) DeliveriesOrErr() ([]*DeliveryRecord, error) {
	if e.loadedTypes[1] {
		return e.Deliveries, nil
	}
	return nil, &NotLoadedError{edge: "deliveries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationInstance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationinstance.FieldRecipientSnapshot:
			values[i] = new([]byte)
		case notificationinstance.FieldID, notificationinstance.FieldDefinitionID, notificationinstance.FieldStatus, notificationinstance.FieldFailure:
			values[i] = new(sql.NullString)
		case notificationinstance.FieldCreatedAt, notificationinstance.FieldFiredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationInstance fields.
func (_m *NotificationInstance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationinstance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case notificationinstance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationinstance.FieldDefinitionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field definition_id", values[i])
			} else if value.Valid {
				_m.DefinitionID = value.String
			}
		case notificationinstance.FieldFiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fired_at", values[i])
			} else if value.Valid {
				_m.FiredAt = value.Time
			}
		case notificationinstance.FieldRecipientSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecipientSnapshot); err != nil {
					return fmt.Errorf("unmarshal field recipient_snapshot: %w", err)
				}
			}
		case notificationinstance.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = notificationinstance.Status(value.String)
			}
		case notificationinstance.FieldFailure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure", values[i])
			} else if value.Valid {
				_m.Failure = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationInstance.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationInstance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDefinition queries the "definition" edge of the NotificationInstance entity.
func (_m *NotificationInstance) QueryDefinition() *NotificationDefinitionQuery {
	return NewNotificationInstanceClient(_m.config).QueryDefinition(_m)
}

// QueryDeliveries queries the "deliveries" edge of the NotificationInstance entity.
func (_m *NotificationInstance) QueryDeliveries() *DeliveryRecordQuery {
	return NewNotificationInstanceClient(_m.config).QueryDeliveries(_m)
}

// Update returns a builder for updating this NotificationInstance.
// Note that you need to call NotificationInstance.Unwrap() before calling this method if this NotificationInstance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationInstance) Update() *NotificationInstanceUpdateOne {
	return NewNotificationInstanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationInstance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationInstance) Unwrap() *NotificationInstance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationInstance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationInstance) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationInstance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("definition_id=")
	builder.WriteString(_m.DefinitionID)
	builder.WriteString(", ")
	builder.WriteString("fired_at=")
	builder.WriteString(_m.FiredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("recipient_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecipientSnapshot))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("failure=")
	builder.WriteString(_m.Failure)
	builder.WriteByte(')')
	return builder.String()
}

// NotificationInstances is a parsable slice of NotificationInstance.
type NotificationInstances []*NotificationInstance
