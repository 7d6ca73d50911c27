// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"memberhub.io/memberhub/ent/notificationdefinition"
)

// NotificationDefinition is the model entity for the NotificationDefinition schema.
type NotificationDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Type holds the value of the "type" field.
	Type notificationdefinition.Type `json:"type,omitempty"`
	// Discriminant of the target spec union
	TargetKind notificationdefinition.TargetKind `json:"target_kind,omitempty"`
	// Group/department/member id or member-type value; empty for ALL
	TargetValue string `json:"target_value,omitempty"`
	// First fire time; nil means fire immediately
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	// Recurrence holds the value of the "recurrence" field.
	Recurrence notificationdefinition.Recurrence `json:"recurrence,omitempty"`
	// State holds the value of the "state" field.
	State notificationdefinition.State `json:"state,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NotificationDefinitionQuery when eager-loading is set.
	Edges        NotificationDefinitionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NotificationDefinitionEdges holds the relations/edges for other nodes in the graph.
type NotificationDefinitionEdges struct {
	// Instances holds the value of the instances edge.
	Instances []*NotificationInstance `json:"instances,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstancesOrErr returns the Instances value or an error if the edge
// was not loaded in eager-loading.
func (e NotificationDefinitionEdges) InstancesOrErr() ([]*NotificationInstance, error) {
	if e.loadedTypes[0] {
		return e.Instances, nil
	}
	return nil, &NotLoadedError{edge: "instances"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationdefinition.FieldID, notificationdefinition.FieldTitle, notificationdefinition.FieldMessage, notificationdefinition.FieldType, notificationdefinition.FieldTargetKind, notificationdefinition.FieldTargetValue, notificationdefinition.FieldRecurrence, notificationdefinition.FieldState, notificationdefinition.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case notificationdefinition.FieldCreatedAt, notificationdefinition.FieldScheduledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationDefinition fields.
func (_m *NotificationDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationdefinition.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case notificationdefinition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationdefinition.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case notificationdefinition.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case notificationdefinition.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = notificationdefinition.Type(value.String)
			}
		case notificationdefinition.FieldTargetKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_kind", values[i])
			} else if value.Valid {
				_m.TargetKind = notificationdefinition.TargetKind(value.String)
			}
		case notificationdefinition.FieldTargetValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_value", values[i])
			} else if value.Valid {
				_m.TargetValue = value.String
			}
		case notificationdefinition.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = new(time.Time)
				*_m.ScheduledAt = value.Time
			}
		case notificationdefinition.FieldRecurrence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence", values[i])
			} else if value.Valid {
				_m.Recurrence = notificationdefinition.Recurrence(value.String)
			}
		case notificationdefinition.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = notificationdefinition.State(value.String)
			}
		case notificationdefinition.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstances queries the "instances" edge of the NotificationDefinition entity.
func (_m *NotificationDefinition) QueryInstances() *NotificationInstanceQuery {
	return NewNotificationDefinitionClient(_m.config).QueryInstances(_m)
}

// Update returns a builder for updating this NotificationDefinition.
// Note that you need to call NotificationDefinition.Unwrap() before calling this method if this NotificationDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationDefinition) Update() *NotificationDefinitionUpdateOne {
	return NewNotificationDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationDefinition) Unwrap() *NotificationDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("target_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetKind))
	builder.WriteString(", ")
	builder.WriteString("target_value=")
	builder.WriteString(_m.TargetValue)
	builder.WriteString(", ")
	if v := _m.ScheduledAt; v != nil {
		builder.WriteString("scheduled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("recurrence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recurrence))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// NotificationDefinitions is a parsable slice of NotificationDefinition.
type NotificationDefinitions []*NotificationDefinition
