// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/notificationinstance"
	"memberhub.io/memberhub/ent/predicate"
)

// NotificationInstanceUpdate is the builder for updating NotificationInstance entities.
type NotificationInstanceUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationInstanceMutation
}

// Where appends a list predicates to the NotificationInstanceUpdate builder.
func (_u *NotificationInstanceUpdate) Where(ps ...predicate.NotificationInstance) *NotificationInstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationInstanceUpdate) SetStatus(v notificationinstance.Status) *NotificationInstanceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationInstanceUpdate) SetNillableStatus(v *notificationinstance.Status) *NotificationInstanceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailure sets the "failure" field.
func (_u *NotificationInstanceUpdate) SetFailure(v string) *NotificationInstanceUpdate {
	_u.mutation.SetFailure(v)
	return _u
}

// SetNillableFailure sets the "failure" field if the given value is not nil.
func (_u *NotificationInstanceUpdate) SetNillableFailure(v *string) *NotificationInstanceUpdate {
	if v != nil {
		_u.SetFailure(*v)
	}
	return _u
}

// ClearFailure clears the value of the "failure" field.
func (_u *NotificationInstanceUpdate) ClearFailure() *NotificationInstanceUpdate {
	_u.mutation.ClearFailure()
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the DeliveryRecord entity by IDs.
func (_u *NotificationInstanceUpdate) AddDeliveryIDs(ids ...string) *NotificationInstanceUpdate {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the DeliveryRecord entity.
func (_u *NotificationInstanceUpdate) AddDeliveries(v ...*DeliveryRecord) *NotificationInstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the NotificationInstanceMutation object of the builder.
func (_u *NotificationInstanceUpdate) Mutation() *NotificationInstanceMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the DeliveryRecord entity.
func (_u *NotificationInstanceUpdate) ClearDeliveries() *NotificationInstanceUpdate {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to DeliveryRecord entities by IDs.
func (_u *NotificationInstanceUpdate) RemoveDeliveryIDs(ids ...string) *NotificationInstanceUpdate {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to DeliveryRecord entities.
func (_u *NotificationInstanceUpdate) RemoveDeliveries(v ...*DeliveryRecord) *NotificationInstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationInstanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationInstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationInstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationInstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationInstanceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := notificationinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationInstance.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failure(); ok {
		if err := notificationinstance.FailureValidator(v); err != nil {
			return &ValidationError{Name: "failure", err: fmt.Errorf(`ent: validator failed for field "NotificationInstance.failure": %w`, err)}
		}
	}
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationInstance.definition"`)
	}
	return nil
}

func (_u *NotificationInstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationinstance.Table, notificationinstance.Columns, sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notificationinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Failure(); ok {
		_spec.SetField(notificationinstance.FieldFailure, field.TypeString, value)
	}
	if _u.mutation.FailureCleared() {
		_spec.ClearField(notificationinstance.FieldFailure, field.TypeString)
	}
	if _u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationinstance.DeliveriesTable,
			Columns: []string{notificationinstance.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationinstance.DeliveriesTable,
			Columns: []string{notificationinstance.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationinstance.DeliveriesTable,
			Columns: []string{notificationinstance.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationInstanceUpdateOne is the builder for updating a single NotificationInstance entity.
type NotificationInstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationInstanceMutation
}

// SetStatus sets the "status" field.
func (_u *NotificationInstanceUpdateOne) SetStatus(v notificationinstance.Status) *NotificationInstanceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationInstanceUpdateOne) SetNillableStatus(v *notificationinstance.Status) *NotificationInstanceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailure sets the "failure" field.
func (_u *NotificationInstanceUpdateOne) SetFailure(v string) *NotificationInstanceUpdateOne {
	_u.mutation.SetFailure(v)
	return _u
}

// SetNillableFailure sets the "failure" field if the given value is not nil.
func (_u *NotificationInstanceUpdateOne) SetNillableFailure(v *string) *NotificationInstanceUpdateOne {
	if v != nil {
		_u.SetFailure(*v)
	}
	return _u
}

// ClearFailure clears the value of the "failure" field.
func (_u *NotificationInstanceUpdateOne) ClearFailure() *NotificationInstanceUpdateOne {
	_u.mutation.ClearFailure()
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the DeliveryRecord entity by IDs.
func (_u *NotificationInstanceUpdateOne) AddDeliveryIDs(ids ...string) *NotificationInstanceUpdateOne {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the DeliveryRecord entity.
func (_u *NotificationInstanceUpdateOne) AddDeliveries(v ...*DeliveryRecord) *NotificationInstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the NotificationInstanceMutation object of the builder.
func (_u *NotificationInstanceUpdateOne) Mutation() *NotificationInstanceMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the DeliveryRecord entity.
func (_u *NotificationInstanceUpdateOne) ClearDeliveries() *NotificationInstanceUpdateOne {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to DeliveryRecord entities by IDs.
func (_u *NotificationInstanceUpdateOne) RemoveDeliveryIDs(ids ...string) *NotificationInstanceUpdateOne {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to DeliveryRecord entities.
func (_u *NotificationInstanceUpdateOne) RemoveDeliveries(v ...*DeliveryRecord) *NotificationInstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Where appends a list predicates to the NotificationInstanceUpdate builder.
func (_u *NotificationInstanceUpdateOne) Where(ps ...predicate.NotificationInstance) *NotificationInstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationInstanceUpdateOne) Select(field string, fields ...string) *NotificationInstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationInstance entity.
func (_u *NotificationInstanceUpdateOne) Save(ctx context.Context) (*NotificationInstance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationInstanceUpdateOne) SaveX(ctx context.Context) *NotificationInstance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationInstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationInstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationInstanceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := notificationinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationInstance.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failure(); ok {
		if err := notificationinstance.FailureValidator(v); err != nil {
			return &ValidationError{Name: "failure", err: fmt.Errorf(`ent: validator failed for field "NotificationInstance.failure": %w`, err)}
		}
	}
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationInstance.definition"`)
	}
	return nil
}

func (_u *NotificationInstanceUpdateOne) sqlSave(ctx context.Context) (_node *NotificationInstance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationinstance.Table, notificationinstance.Columns, sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationInstance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationinstance.FieldID)
		for _, f := range fields {
			if !notificationinstance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationinstance.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notificationinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Failure(); ok {
		_spec.SetField(notificationinstance.FieldFailure, field.TypeString, value)
	}
	if _u.mutation.FailureCleared() {
		_spec.ClearField(notificationinstance.FieldFailure, field.TypeString)
	}
	if _u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationinstance.DeliveriesTable,
			Columns: []string{notificationinstance.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationinstance.DeliveriesTable,
			Columns: []string{notificationinstance.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationinstance.DeliveriesTable,
			Columns: []string{notificationinstance.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NotificationInstance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
