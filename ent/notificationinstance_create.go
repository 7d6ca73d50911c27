// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
)

// NotificationInstanceCreate is the builder for creating a NotificationInstance entity.
type NotificationInstanceCreate struct {
	config
	mutation *NotificationInstanceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationInstanceCreate) SetCreatedAt(v time.Time) *NotificationInstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationInstanceCreate) SetNillableCreatedAt(v *time.Time) *NotificationInstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDefinitionID sets the "definition_id" field.
func (_c *NotificationInstanceCreate) SetDefinitionID(v string) *NotificationInstanceCreate {
	_c.mutation.SetDefinitionID(v)
	return _c
}

// SetFiredAt sets the "fired_at" field.
func (_c *NotificationInstanceCreate) SetFiredAt(v time.Time) *NotificationInstanceCreate {
	_c.mutation.SetFiredAt(v)
	return _c
}

// SetRecipientSnapshot sets the "recipient_snapshot" field.
func (_c *NotificationInstanceCreate) SetRecipientSnapshot(v []string) *NotificationInstanceCreate {
	_c.mutation.SetRecipientSnapshot(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *NotificationInstanceCreate) SetStatus(v notificationinstance.Status) *NotificationInstanceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NotificationInstanceCreate) SetNillableStatus(v *notificationinstance.Status) *NotificationInstanceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailure sets the "failure" field.
func (_c *NotificationInstanceCreate) SetFailure(v string) *NotificationInstanceCreate {
	_c.mutation.SetFailure(v)
	return _c
}

// SetNillableFailure sets the "failure" field if the given value is not nil.
func (_c *NotificationInstanceCreate) SetNillableFailure(v *string) *NotificationInstanceCreate {
	if v != nil {
		_c.SetFailure(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationInstanceCreate) SetID(v string) *NotificationInstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDefinition sets the "definition" edge to the NotificationDefinition entity.
func (_c *NotificationInstanceCreate) SetDefinition(v *NotificationDefinition) *NotificationInstanceCreate {
	return _c.SetDefinitionID(v.ID)
}

// AddDeliveryIDs adds the "deliveries" edge to the DeliveryRecord entity by IDs.
func (_c *NotificationInstanceCreate) AddDeliveryIDs(ids ...string) *NotificationInstanceCreate {
	_c.mutation.AddDeliveryIDs(ids...)
	return _c
}

// AddDeliveries adds the "deliveries" edges to the DeliveryRecord entity.
func (_c *NotificationInstanceCreate) AddDeliveries(v ...*DeliveryRecord) *NotificationInstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeliveryIDs(ids...)
}

// Mutation returns the NotificationInstanceMutation object of the builder.
func (_c *NotificationInstanceCreate) Mutation() *NotificationInstanceMutation {
	return _c.mutation
}

// Save creates the NotificationInstance in the database.
func (_c *NotificationInstanceCreate) Save(ctx context.Context) (*NotificationInstance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationInstanceCreate) SaveX(ctx context.Context) *NotificationInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationInstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationInstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationInstanceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationinstance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := notificationinstance.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationInstanceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationInstance.created_at"`)}
	}
	if _, ok := _c.mutation.DefinitionID(); !ok {
		return &ValidationError{Name: "definition_id", err: errors.New(`ent: missing required field "NotificationInstance.definition_id"`)}
	}
	if _, ok := _c.mutation.FiredAt(); !ok {
		return &ValidationError{Name: "fired_at", err: errors.New(`ent: missing required field "NotificationInstance.fired_at"`)}
	}
	if _, ok := _c.mutation.RecipientSnapshot(); !ok {
		return &ValidationError{Name: "recipient_snapshot", err: errors.New(`ent: missing required field "NotificationInstance.recipient_snapshot"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "NotificationInstance.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := notificationinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationInstance.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Failure(); ok {
		if err := notificationinstance.FailureValidator(v); err != nil {
			return &ValidationError{Name: "failure", err: fmt.Errorf(`ent: validator failed for field "NotificationInstance.failure": %w`, err)}
		}
	}
	if len(_c.mutation.DefinitionIDs()) == 0 {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required edge "NotificationInstance.definition"`)}
	}
	return nil
}

func (_c *NotificationInstanceCreate) sqlSave(ctx context.Context) (*NotificationInstance, error) {
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
			return nil, fmt.Errorf("unexpected NotificationInstance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationInstanceCreate) createSpec() (*NotificationInstance, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationInstance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationinstance.Table, sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationinstance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FiredAt(); ok {
		_spec.SetField(notificationinstance.FieldFiredAt, field.TypeTime, value)
		_node.FiredAt = value
	}
	if value, ok := _c.mutation.RecipientSnapshot(); ok {
		_spec.SetField(notificationinstance.FieldRecipientSnapshot, field.TypeJSON, value)
		_node.RecipientSnapshot = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(notificationinstance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Failure(); ok {
		_spec.SetField(notificationinstance.FieldFailure, field.TypeString, value)
		_node.Failure = value
	}
	if nodes := _c.mutation.DefinitionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notificationinstance.DefinitionTable,
			Columns: []string{notificationinstance.DefinitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationdefinition.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DefinitionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DeliveriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NotificationInstanceCreateBulk is the builder for creating many NotificationInstance entities in bulk.
type NotificationInstanceCreateBulk struct {
	config
	err      error
	builders []*NotificationInstanceCreate
}

// Save creates the NotificationInstance entities in the database.
func (_c *NotificationInstanceCreateBulk) Save(ctx context.Context) ([]*NotificationInstance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationInstance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationInstanceMutation)
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
func (_c *NotificationInstanceCreateBulk) SaveX(ctx context.Context) []*NotificationInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationInstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationInstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
