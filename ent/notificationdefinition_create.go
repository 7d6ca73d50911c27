// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
)

// NotificationDefinitionCreate is the builder for creating a NotificationDefinition entity.
type NotificationDefinitionCreate struct {
	config
	mutation *NotificationDefinitionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationDefinitionCreate) SetCreatedAt(v time.Time) *NotificationDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationDefinitionCreate) SetNillableCreatedAt(v *time.Time) *NotificationDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *NotificationDefinitionCreate) SetTitle(v string) *NotificationDefinitionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *NotificationDefinitionCreate) SetMessage(v string) *NotificationDefinitionCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetType sets the "type" field.
func (_c *NotificationDefinitionCreate) SetType(v notificationdefinition.Type) *NotificationDefinitionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTargetKind sets the "target_kind" field.
func (_c *NotificationDefinitionCreate) SetTargetKind(v notificationdefinition.TargetKind) *NotificationDefinitionCreate {
	_c.mutation.SetTargetKind(v)
	return _c
}

// SetTargetValue sets the "target_value" field.
func (_c *NotificationDefinitionCreate) SetTargetValue(v string) *NotificationDefinitionCreate {
	_c.mutation.SetTargetValue(v)
	return _c
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_c *NotificationDefinitionCreate) SetNillableTargetValue(v *string) *NotificationDefinitionCreate {
	if v != nil {
		_c.SetTargetValue(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *NotificationDefinitionCreate) SetScheduledAt(v time.Time) *NotificationDefinitionCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *NotificationDefinitionCreate) SetNillableScheduledAt(v *time.Time) *NotificationDefinitionCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetRecurrence sets the "recurrence" field.
func (_c *NotificationDefinitionCreate) SetRecurrence(v notificationdefinition.Recurrence) *NotificationDefinitionCreate {
	_c.mutation.SetRecurrence(v)
	return _c
}

// SetState sets the "state" field.
func (_c *NotificationDefinitionCreate) SetState(v notificationdefinition.State) *NotificationDefinitionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *NotificationDefinitionCreate) SetNillableState(v *notificationdefinition.State) *NotificationDefinitionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *NotificationDefinitionCreate) SetCreatedBy(v string) *NotificationDefinitionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationDefinitionCreate) SetID(v string) *NotificationDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddInstanceIDs adds the "instances" edge to the NotificationInstance entity by IDs.
func (_c *NotificationDefinitionCreate) AddInstanceIDs(ids ...string) *NotificationDefinitionCreate {
	_c.mutation.AddInstanceIDs(ids...)
	return _c
}

// AddInstances adds the "instances" edges to the NotificationInstance entity.
func (_c *NotificationDefinitionCreate) AddInstances(v ...*NotificationInstance) *NotificationDefinitionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInstanceIDs(ids...)
}

// Mutation returns the NotificationDefinitionMutation object of the builder.
func (_c *NotificationDefinitionCreate) Mutation() *NotificationDefinitionMutation {
	return _c.mutation
}

// Save creates the NotificationDefinition in the database.
func (_c *NotificationDefinitionCreate) Save(ctx context.Context) (*NotificationDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationDefinitionCreate) SaveX(ctx context.Context) *NotificationDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationDefinitionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationdefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := notificationdefinition.DefaultState
		_c.mutation.SetState(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationDefinitionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "NotificationDefinition.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := notificationdefinition.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "NotificationDefinition.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "NotificationDefinition.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := notificationdefinition.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "NotificationDefinition.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "NotificationDefinition.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := notificationdefinition.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "NotificationDefinition.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetKind(); !ok {
		return &ValidationError{Name: "target_kind", err: errors.New(`ent: missing required field "NotificationDefinition.target_kind"`)}
	}
	if v, ok := _c.mutation.TargetKind(); ok {
		if err := notificationdefinition.TargetKindValidator(v); err != nil {
			return &ValidationError{Name: "target_kind", err: fmt.Errorf(`ent: validator failed for field "NotificationDefinition.target_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recurrence(); !ok {
		return &ValidationError{Name: "recurrence", err: errors.New(`ent: missing required field "NotificationDefinition.recurrence"`)}
	}
	if v, ok := _c.mutation.Recurrence(); ok {
		if err := notificationdefinition.RecurrenceValidator(v); err != nil {
			return &ValidationError{Name: "recurrence", err: fmt.Errorf(`ent: validator failed for field "NotificationDefinition.recurrence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "NotificationDefinition.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := notificationdefinition.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "NotificationDefinition.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "NotificationDefinition.created_by"`)}
	}
	return nil
}

func (_c *NotificationDefinitionCreate) sqlSave(ctx context.Context) (*NotificationDefinition, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected NotificationDefinition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationDefinitionCreate) createSpec() (*NotificationDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationdefinition.Table, sqlgraph.NewFieldSpec(notificationdefinition.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationdefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(notificationdefinition.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(notificationdefinition.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(notificationdefinition.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.TargetKind(); ok {
		_spec.SetField(notificationdefinition.FieldTargetKind, field.TypeEnum, value)
		_node.TargetKind = value
	}
	if value, ok := _c.mutation.TargetValue(); ok {
		_spec.SetField(notificationdefinition.FieldTargetValue, field.TypeString, value)
		_node.TargetValue = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(notificationdefinition.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = &value
	}
	if value, ok := _c.mutation.Recurrence(); ok {
		_spec.SetField(notificationdefinition.FieldRecurrence, field.TypeEnum, value)
		_node.Recurrence = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(notificationdefinition.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(notificationdefinition.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.InstancesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NotificationDefinitionCreateBulk is the builder for creating many NotificationDefinition entities in bulk.
type NotificationDefinitionCreateBulk struct {
	config
	err      error
	builders []*NotificationDefinitionCreate
}

// Save creates the NotificationDefinition entities in the database.
func (_c *NotificationDefinitionCreateBulk) Save(ctx context.Context) ([]*NotificationDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationDefinitionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NotificationDefinitionCreateBulk) SaveX(ctx context.Context) []*NotificationDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
