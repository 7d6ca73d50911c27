// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
	"memberhub.io/memberhub/ent/predicate"
)

// NotificationDefinitionUpdate is the builder for updating NotificationDefinition entities.
type NotificationDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationDefinitionMutation
}

// Where appends a list predicates to the NotificationDefinitionUpdate builder.
func (_u *NotificationDefinitionUpdate) Where(ps ...predicate.NotificationDefinition) *NotificationDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *NotificationDefinitionUpdate) SetState(v notificationdefinition.State) *NotificationDefinitionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *NotificationDefinitionUpdate) SetNillableState(v *notificationdefinition.State) *NotificationDefinitionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// AddInstanceIDs adds the "instances" edge to the NotificationInstance entity by IDs.
func (_u *NotificationDefinitionUpdate) AddInstanceIDs(ids ...string) *NotificationDefinitionUpdate {
	_u.mutation.AddInstanceIDs(ids...)
	return _u
}

// AddInstances adds the "instances" edges to the NotificationInstance entity.
func (_u *NotificationDefinitionUpdate) AddInstances(v ...*NotificationInstance) *NotificationDefinitionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstanceIDs(ids...)
}

// Mutation returns the NotificationDefinitionMutation object of the builder.
func (_u *NotificationDefinitionUpdate) Mutation() *NotificationDefinitionMutation {
	return _u.mutation
}

// ClearInstances clears all "instances" edges to the NotificationInstance entity.
func (_u *NotificationDefinitionUpdate) ClearInstances() *NotificationDefinitionUpdate {
	_u.mutation.ClearInstances()
	return _u
}

// RemoveInstanceIDs removes the "instances" edge to NotificationInstance entities by IDs.
func (_u *NotificationDefinitionUpdate) RemoveInstanceIDs(ids ...string) *NotificationDefinitionUpdate {
	_u.mutation.RemoveInstanceIDs(ids...)
	return _u
}

// RemoveInstances removes "instances" edges to NotificationInstance entities.
func (_u *NotificationDefinitionUpdate) RemoveInstances(v ...*NotificationInstance) *NotificationDefinitionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstanceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationDefinitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationDefinitionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := notificationdefinition.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "NotificationDefinition.state": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationdefinition.Table, notificationdefinition.Columns, sqlgraph.NewFieldSpec(notificationdefinition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TargetValueCleared() {
		_spec.ClearField(notificationdefinition.FieldTargetValue, field.TypeString)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(notificationdefinition.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(notificationdefinition.FieldState, field.TypeEnum, value)
	}
	if _u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationdefinition.InstancesTable,
			Columns: []string{notificationdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !_u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationdefinition.InstancesTable,
			Columns: []string{notificationdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationdefinition.InstancesTable,
			Columns: []string{notificationdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationDefinitionUpdateOne is the builder for updating a single NotificationDefinition entity.
type NotificationDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationDefinitionMutation
}

// SetState sets the "state" field.
func (_u *NotificationDefinitionUpdateOne) SetState(v notificationdefinition.State) *NotificationDefinitionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *NotificationDefinitionUpdateOne) SetNillableState(v *notificationdefinition.State) *NotificationDefinitionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// AddInstanceIDs adds the "instances" edge to the NotificationInstance entity by IDs.
func (_u *NotificationDefinitionUpdateOne) AddInstanceIDs(ids ...string) *NotificationDefinitionUpdateOne {
	_u.mutation.AddInstanceIDs(ids...)
	return _u
}

// AddInstances adds the "instances" edges to the NotificationInstance entity.
func (_u *NotificationDefinitionUpdateOne) AddInstances(v ...*NotificationInstance) *NotificationDefinitionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstanceIDs(ids...)
}

// Mutation returns the NotificationDefinitionMutation object of the builder.
func (_u *NotificationDefinitionUpdateOne) Mutation() *NotificationDefinitionMutation {
	return _u.mutation
}

// ClearInstances clears all "instances" edges to the NotificationInstance entity.
func (_u *NotificationDefinitionUpdateOne) ClearInstances() *NotificationDefinitionUpdateOne {
	_u.mutation.ClearInstances()
	return _u
}

// RemoveInstanceIDs removes the "instances" edge to NotificationInstance entities by IDs.
func (_u *NotificationDefinitionUpdateOne) RemoveInstanceIDs(ids ...string) *NotificationDefinitionUpdateOne {
	_u.mutation.RemoveInstanceIDs(ids...)
	return _u
}

// RemoveInstances removes "instances" edges to NotificationInstance entities.
func (_u *NotificationDefinitionUpdateOne) RemoveInstances(v ...*NotificationInstance) *NotificationDefinitionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstanceIDs(ids...)
}

// Where appends a list predicates to the NotificationDefinitionUpdate builder.
func (_u *NotificationDefinitionUpdateOne) Where(ps ...predicate.NotificationDefinition) *NotificationDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationDefinitionUpdateOne) Select(field string, fields ...string) *NotificationDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationDefinition entity.
func (_u *NotificationDefinitionUpdateOne) Save(ctx context.Context) (*NotificationDefinition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationDefinitionUpdateOne) SaveX(ctx context.Context) *NotificationDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := notificationdefinition.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "NotificationDefinition.state": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *NotificationDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationdefinition.Table, notificationdefinition.Columns, sqlgraph.NewFieldSpec(notificationdefinition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationdefinition.FieldID)
		for _, f := range fields {
			if !notificationdefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationdefinition.FieldID {
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
	if _u.mutation.TargetValueCleared() {
		_spec.ClearField(notificationdefinition.FieldTargetValue, field.TypeString)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(notificationdefinition.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(notificationdefinition.FieldState, field.TypeEnum, value)
	}
	if _u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationdefinition.InstancesTable,
			Columns: []string{notificationdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !_u.mutation.InstancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationdefinition.InstancesTable,
			Columns: []string{notificationdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notificationdefinition.InstancesTable,
			Columns: []string{notificationdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NotificationDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
