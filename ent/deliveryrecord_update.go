// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/predicate"
)

// DeliveryRecordUpdate is the builder for updating DeliveryRecord entities.
type DeliveryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DeliveryRecordMutation
}

// Where appends a list predicates to the DeliveryRecordUpdate builder.
func (_u *DeliveryRecordUpdate) Where(ps ...predicate.DeliveryRecord) *DeliveryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsRead sets the "is_read" field.
func (_u *DeliveryRecordUpdate) SetIsRead(v bool) *DeliveryRecordUpdate {
	_u.mutation.SetIsRead(v)
	return _u
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_u *DeliveryRecordUpdate) SetNillableIsRead(v *bool) *DeliveryRecordUpdate {
	if v != nil {
		_u.SetIsRead(*v)
	}
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *DeliveryRecordUpdate) SetReadAt(v time.Time) *DeliveryRecordUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *DeliveryRecordUpdate) SetNillableReadAt(v *time.Time) *DeliveryRecordUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *DeliveryRecordUpdate) ClearReadAt() *DeliveryRecordUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// Mutation returns the DeliveryRecordMutation object of the builder.
func (_u *DeliveryRecordUpdate) Mutation() *DeliveryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliveryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliveryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryRecordUpdate) check() error {
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeliveryRecord.instance"`)
	}
	return nil
}

func (_u *DeliveryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliveryrecord.Table, deliveryrecord.Columns, sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsRead(); ok {
		_spec.SetField(deliveryrecord.FieldIsRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(deliveryrecord.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(deliveryrecord.FieldReadAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliveryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliveryRecordUpdateOne is the builder for updating a single DeliveryRecord entity.
type DeliveryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliveryRecordMutation
}

// SetIsRead sets the "is_read" field.
func (_u *DeliveryRecordUpdateOne) SetIsRead(v bool) *DeliveryRecordUpdateOne {
	_u.mutation.SetIsRead(v)
	return _u
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_u *DeliveryRecordUpdateOne) SetNillableIsRead(v *bool) *DeliveryRecordUpdateOne {
	if v != nil {
		_u.SetIsRead(*v)
	}
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *DeliveryRecordUpdateOne) SetReadAt(v time.Time) *DeliveryRecordUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *DeliveryRecordUpdateOne) SetNillableReadAt(v *time.Time) *DeliveryRecordUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *DeliveryRecordUpdateOne) ClearReadAt() *DeliveryRecordUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// Mutation returns the DeliveryRecordMutation object of the builder.
func (_u *DeliveryRecordUpdateOne) Mutation() *DeliveryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeliveryRecordUpdate builder.
func (_u *DeliveryRecordUpdateOne) Where(ps ...predicate.DeliveryRecord) *DeliveryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliveryRecordUpdateOne) Select(field string, fields ...string) *DeliveryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeliveryRecord entity.
func (_u *DeliveryRecordUpdateOne) Save(ctx context.Context) (*DeliveryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryRecordUpdateOne) SaveX(ctx context.Context) *DeliveryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliveryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryRecordUpdateOne) check() error {
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeliveryRecord.instance"`)
	}
	return nil
}

func (_u *DeliveryRecordUpdateOne) sqlSave(ctx context.Context) (_node *DeliveryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliveryrecord.Table, deliveryrecord.Columns, sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeliveryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliveryrecord.FieldID)
		for _, f := range fields {
			if !deliveryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliveryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsRead(); ok {
		_spec.SetField(deliveryrecord.FieldIsRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(deliveryrecord.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(deliveryrecord.FieldReadAt, field.TypeTime)
	}
	_node = &DeliveryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliveryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
