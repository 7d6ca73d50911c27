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
	"memberhub.io/memberhub/ent/notificationinstance"
)

// DeliveryRecordCreate is the builder for creating a DeliveryRecord entity.
type DeliveryRecordCreate struct {
	config
	mutation *DeliveryRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeliveryRecordCreate) SetCreatedAt(v time.Time) *DeliveryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeliveryRecordCreate) SetNillableCreatedAt(v *time.Time) *DeliveryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *DeliveryRecordCreate) SetInstanceID(v string) *DeliveryRecordCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetRecipientID sets the "recipient_id" field.
func (_c *DeliveryRecordCreate) SetRecipientID(v string) *DeliveryRecordCreate {
	_c.mutation.SetRecipientID(v)
	return _c
}

// SetIsRead sets the "is_read" field.
func (_c *DeliveryRecordCreate) SetIsRead(v bool) *DeliveryRecordCreate {
	_c.mutation.SetIsRead(v)
	return _c
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_c *DeliveryRecordCreate) SetNillableIsRead(v *bool) *DeliveryRecordCreate {
	if v != nil {
		_c.SetIsRead(*v)
	}
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *DeliveryRecordCreate) SetReadAt(v time.Time) *DeliveryRecordCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *DeliveryRecordCreate) SetNillableReadAt(v *time.Time) *DeliveryRecordCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetDeliveredVia sets the "delivered_via" field.
func (_c *DeliveryRecordCreate) SetDeliveredVia(v deliveryrecord.DeliveredVia) *DeliveryRecordCreate {
	_c.mutation.SetDeliveredVia(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DeliveryRecordCreate) SetID(v string) *DeliveryRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInstance sets the "instance" edge to the NotificationInstance entity.
func (_c *DeliveryRecordCreate) SetInstance(v *NotificationInstance) *DeliveryRecordCreate {
	return _c.SetInstanceID(v.ID)
}

// Mutation returns the DeliveryRecordMutation object of the builder.
func (_c *DeliveryRecordCreate) Mutation() *DeliveryRecordMutation {
	return _c.mutation
}

// Save creates the DeliveryRecord in the database.
func (_c *DeliveryRecordCreate) Save(ctx context.Context) (*DeliveryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliveryRecordCreate) SaveX(ctx context.Context) *DeliveryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliveryRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deliveryrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsRead(); !ok {
		v := deliveryrecord.DefaultIsRead
		_c.mutation.SetIsRead(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliveryRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeliveryRecord.created_at"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "DeliveryRecord.instance_id"`)}
	}
	if _, ok := _c.mutation.RecipientID(); !ok {
		return &ValidationError{Name: "recipient_id", err: errors.New(`ent: missing required field "DeliveryRecord.recipient_id"`)}
	}
	if v, ok := _c.mutation.RecipientID(); ok {
		if err := deliveryrecord.RecipientIDValidator(v); err != nil {
			return &ValidationError{Name: "recipient_id", err: fmt.Errorf(`ent: validator failed for field "DeliveryRecord.recipient_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsRead(); !ok {
		return &ValidationError{Name: "is_read", err: errors.New(`ent: missing required field "DeliveryRecord.is_read"`)}
	}
	if _, ok := _c.mutation.DeliveredVia(); !ok {
		return &ValidationError{Name: "delivered_via", err: errors.New(`ent: missing required field "DeliveryRecord.delivered_via"`)}
	}
	if v, ok := _c.mutation.DeliveredVia(); ok {
		if err := deliveryrecord.DeliveredViaValidator(v); err != nil {
			return &ValidationError{Name: "delivered_via", err: fmt.Errorf(`ent: validator failed for field "DeliveryRecord.delivered_via": %w`, err)}
		}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "DeliveryRecord.instance"`)}
	}
	return nil
}

func (_c *DeliveryRecordCreate) sqlSave(ctx context.Context) (*DeliveryRecord, error) {
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
			return nil, fmt.Errorf("unexpected DeliveryRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeliveryRecordCreate) createSpec() (*DeliveryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &DeliveryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliveryrecord.Table, sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deliveryrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RecipientID(); ok {
		_spec.SetField(deliveryrecord.FieldRecipientID, field.TypeString, value)
		_node.RecipientID = value
	}
	if value, ok := _c.mutation.IsRead(); ok {
		_spec.SetField(deliveryrecord.FieldIsRead, field.TypeBool, value)
		_node.IsRead = value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(deliveryrecord.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	if value, ok := _c.mutation.DeliveredVia(); ok {
		_spec.SetField(deliveryrecord.FieldDeliveredVia, field.TypeEnum, value)
		_node.DeliveredVia = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deliveryrecord.InstanceTable,
			Columns: []string{deliveryrecord.InstanceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InstanceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeliveryRecordCreateBulk is the builder for creating many DeliveryRecord entities in bulk.
type DeliveryRecordCreateBulk struct {
	config
	err      error
	builders []*DeliveryRecordCreate
}

// Save creates the DeliveryRecord entities in the database.
func (_c *DeliveryRecordCreateBulk) Save(ctx context.Context) ([]*DeliveryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeliveryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliveryRecordMutation)
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
func (_c *DeliveryRecordCreateBulk) SaveX(ctx context.Context) []*DeliveryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
