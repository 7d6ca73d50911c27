// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"memberhub.io/memberhub/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/department"
	"memberhub.io/memberhub/ent/group"
	"memberhub.io/memberhub/ent/member"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeliveryRecord is the client for interacting with the DeliveryRecord builders.
	DeliveryRecord *DeliveryRecordClient
	// Department is the client for interacting with the Department builders.
	Department *DepartmentClient
	// Group is the client for interacting with the Group builders.
	Group *GroupClient
	// Member is the client for interacting with the Member builders.
	Member *MemberClient
	// NotificationDefinition is the client for interacting with the NotificationDefinition builders.
	NotificationDefinition *NotificationDefinitionClient
	// NotificationInstance is the client for interacting with the NotificationInstance builders.
	NotificationInstance *NotificationInstanceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeliveryRecord = NewDeliveryRecordClient(c.config)
	c.Department = NewDepartmentClient(c.config)
	c.Group = NewGroupClient(c.config)
	c.Member = NewMemberClient(c.config)
	c.NotificationDefinition = NewNotificationDefinitionClient(c.config)
	c.NotificationInstance = NewNotificationInstanceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		DeliveryRecord:         NewDeliveryRecordClient(cfg),
		Department:             NewDepartmentClient(cfg),
		Group:                  NewGroupClient(cfg),
		Member:                 NewMemberClient(cfg),
		NotificationDefinition: NewNotificationDefinitionClient(cfg),
		NotificationInstance:   NewNotificationInstanceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		DeliveryRecord:         NewDeliveryRecordClient(cfg),
		Department:             NewDepartmentClient(cfg),
		Group:                  NewGroupClient(cfg),
		Member:                 NewMemberClient(cfg),
		NotificationDefinition: NewNotificationDefinitionClient(cfg),
		NotificationInstance:   NewNotificationInstanceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeliveryRecord.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.DeliveryRecord, c.Department, c.Group, c.Member, c.NotificationDefinition,
		c.NotificationInstance,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DeliveryRecord, c.Department, c.Group, c.Member, c.NotificationDefinition,
		c.NotificationInstance,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeliveryRecordMutation:
		return c.DeliveryRecord.mutate(ctx, m)
	case *DepartmentMutation:
		return c.Department.mutate(ctx, m)
	case *GroupMutation:
		return c.Group.mutate(ctx, m)
	case *MemberMutation:
		return c.Member.mutate(ctx, m)
	case *NotificationDefinitionMutation:
		return c.NotificationDefinition.mutate(ctx, m)
	case *NotificationInstanceMutation:
		return c.NotificationInstance.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeliveryRecordClient is a client for the DeliveryRecord schema.
type DeliveryRecordClient struct {
	config
}

// NewDeliveryRecordClient returns a client for the DeliveryRecord from the given config.
func NewDeliveryRecordClient(c config) *DeliveryRecordClient {
	return &DeliveryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deliveryrecord.Hooks(f(g(h())))`.
func (c *DeliveryRecordClient) Use(hooks ...Hook) {
	c.hooks.DeliveryRecord = append(c.hooks.DeliveryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deliveryrecord.Intercept(f(g(h())))`.
func (c *DeliveryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeliveryRecord = append(c.inters.DeliveryRecord, interceptors...)
}

// Create returns a builder for creating a DeliveryRecord entity.
func (c *DeliveryRecordClient) Create() *DeliveryRecordCreate {
	mutation := newDeliveryRecordMutation(c.config, OpCreate)
	return &DeliveryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeliveryRecord entities.
func (c *DeliveryRecordClient) CreateBulk(builders ...*DeliveryRecordCreate) *DeliveryRecordCreateBulk {
	return &DeliveryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeliveryRecordClient) MapCreateBulk(slice any, setFunc func(*DeliveryRecordCreate, int)) *DeliveryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeliveryRecordCreateBulk{err: fmt.Errorf("calling to DeliveryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeliveryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeliveryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeliveryRecord.
func (c *DeliveryRecordClient) Update() *DeliveryRecordUpdate {
	mutation := newDeliveryRecordMutation(c.config, OpUpdate)
	return &DeliveryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeliveryRecordClient) UpdateOne(_m *DeliveryRecord) *DeliveryRecordUpdateOne {
	mutation := newDeliveryRecordMutation(c.config, OpUpdateOne, withDeliveryRecord(_m))
	return &DeliveryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeliveryRecordClient) UpdateOneID(id string) *DeliveryRecordUpdateOne {
	mutation := newDeliveryRecordMutation(c.config, OpUpdateOne, withDeliveryRecordID(id))
	return &DeliveryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeliveryRecord.
func (c *DeliveryRecordClient) Delete() *DeliveryRecordDelete {
	mutation := newDeliveryRecordMutation(c.config, OpDelete)
	return &DeliveryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeliveryRecordClient) DeleteOne(_m *DeliveryRecord) *DeliveryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeliveryRecordClient) DeleteOneID(id string) *DeliveryRecordDeleteOne {
	builder := c.Delete().Where(deliveryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeliveryRecordDeleteOne{builder}
}

// Query returns a query builder for DeliveryRecord.
func (c *DeliveryRecordClient) Query() *DeliveryRecordQuery {
	return &DeliveryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeliveryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a DeliveryRecord entity by its id.
func (c *DeliveryRecordClient) Get(ctx context.Context, id string) (*DeliveryRecord, error) {
	return c.Query().Where(deliveryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeliveryRecordClient) GetX(ctx context.Context, id string) *DeliveryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstance queries the instance edge of a DeliveryRecord.
func (c *DeliveryRecordClient) QueryInstance(_m *DeliveryRecord) *NotificationInstanceQuery {
	query := (&NotificationInstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deliveryrecord.Table, deliveryrecord.FieldID, id),
			sqlgraph.To(notificationinstance.Table, notificationinstance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deliveryrecord.InstanceTable, deliveryrecord.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeliveryRecordClient) Hooks() []Hook {
	return c.hooks.DeliveryRecord
}

// Interceptors returns the client interceptors.
func (c *DeliveryRecordClient) Interceptors() []Interceptor {
	return c.inters.DeliveryRecord
}

func (c *DeliveryRecordClient) mutate(ctx context.Context, m *DeliveryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeliveryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeliveryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeliveryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeliveryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeliveryRecord mutation op: %q", m.Op())
	}
}

// DepartmentClient is a client for the Department schema.
type DepartmentClient struct {
	config
}

// NewDepartmentClient returns a client for the Department from the given config.
func NewDepartmentClient(c config) *DepartmentClient {
	return &DepartmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `department.Hooks(f(g(h())))`.
func (c *DepartmentClient) Use(hooks ...Hook) {
	c.hooks.Department = append(c.hooks.Department, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `department.Intercept(f(g(h())))`.
func (c *DepartmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Department = append(c.inters.Department, interceptors...)
}

// Create returns a builder for creating a Department entity.
func (c *DepartmentClient) Create() *DepartmentCreate {
	mutation := newDepartmentMutation(c.config, OpCreate)
	return &DepartmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Department entities.
func (c *DepartmentClient) CreateBulk(builders ...*DepartmentCreate) *DepartmentCreateBulk {
	return &DepartmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DepartmentClient) MapCreateBulk(slice any, setFunc func(*DepartmentCreate, int)) *DepartmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DepartmentCreateBulk{err: fmt.Errorf("calling to DepartmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DepartmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DepartmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Department.
func (c *DepartmentClient) Update() *DepartmentUpdate {
	mutation := newDepartmentMutation(c.config, OpUpdate)
	return &DepartmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DepartmentClient) UpdateOne(_m *Department) *DepartmentUpdateOne {
	mutation := newDepartmentMutation(c.config, OpUpdateOne, withDepartment(_m))
	return &DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DepartmentClient) UpdateOneID(id string) *DepartmentUpdateOne {
	mutation := newDepartmentMutation(c.config, OpUpdateOne, withDepartmentID(id))
	return &DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Department.
func (c *DepartmentClient) Delete() *DepartmentDelete {
	mutation := newDepartmentMutation(c.config, OpDelete)
	return &DepartmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DepartmentClient) DeleteOne(_m *Department) *DepartmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DepartmentClient) DeleteOneID(id string) *DepartmentDeleteOne {
	builder := c.Delete().Where(department.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DepartmentDeleteOne{builder}
}

// Query returns a query builder for Department.
func (c *DepartmentClient) Query() *DepartmentQuery {
	return &DepartmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDepartment},
		inters: c.Interceptors(),
	}
}

// Get returns a Department entity by its id.
func (c *DepartmentClient) Get(ctx context.Context, id string) (*Department, error) {
	return c.Query().Where(department.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DepartmentClient) GetX(ctx context.Context, id string) *Department {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembers queries the members edge of a Department.
func (c *DepartmentClient) QueryMembers(_m *Department) *MemberQuery {
	query := (&MemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(department.Table, department.FieldID, id),
			sqlgraph.To(member.Table, member.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, department.MembersTable, department.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DepartmentClient) Hooks() []Hook {
	return c.hooks.Department
}

// Interceptors returns the client interceptors.
func (c *DepartmentClient) Interceptors() []Interceptor {
	return c.inters.Department
}

func (c *DepartmentClient) mutate(ctx context.Context, m *DepartmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DepartmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DepartmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DepartmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Department mutation op: %q", m.Op())
	}
}

// GroupClient is a client for the Group schema.
type GroupClient struct {
	config
}

// NewGroupClient returns a client for the Group from the given config.
func NewGroupClient(c config) *GroupClient {
	return &GroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `group.Hooks(f(g(h())))`.
func (c *GroupClient) Use(hooks ...Hook) {
	c.hooks.Group = append(c.hooks.Group, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `group.Intercept(f(g(h())))`.
func (c *GroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Group = append(c.inters.Group, interceptors...)
}

// Create returns a builder for creating a Group entity.
func (c *GroupClient) Create() *GroupCreate {
	mutation := newGroupMutation(c.config, OpCreate)
	return &GroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Group entities.
func (c *GroupClient) CreateBulk(builders ...*GroupCreate) *GroupCreateBulk {
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupClient) MapCreateBulk(slice any, setFunc func(*GroupCreate, int)) *GroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupCreateBulk{err: fmt.Errorf("calling to GroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Group.
func (c *GroupClient) Update() *GroupUpdate {
	mutation := newGroupMutation(c.config, OpUpdate)
	return &GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupClient) UpdateOne(_m *Group) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroup(_m))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupClient) UpdateOneID(id string) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroupID(id))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Group.
func (c *GroupClient) Delete() *GroupDelete {
	mutation := newGroupMutation(c.config, OpDelete)
	return &GroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupClient) DeleteOne(_m *Group) *GroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupClient) DeleteOneID(id string) *GroupDeleteOne {
	builder := c.Delete().Where(group.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDeleteOne{builder}
}

// Query returns a query builder for Group.
func (c *GroupClient) Query() *GroupQuery {
	return &GroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a Group entity by its id.
func (c *GroupClient) Get(ctx context.Context, id string) (*Group, error) {
	return c.Query().Where(group.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupClient) GetX(ctx context.Context, id string) *Group {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembers queries the members edge of a Group.
func (c *GroupClient) QueryMembers(_m *Group) *MemberQuery {
	query := (&MemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(member.Table, member.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, group.MembersTable, group.MembersPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupClient) Hooks() []Hook {
	return c.hooks.Group
}

// Interceptors returns the client interceptors.
func (c *GroupClient) Interceptors() []Interceptor {
	return c.inters.Group
}

func (c *GroupClient) mutate(ctx context.Context, m *GroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Group mutation op: %q", m.Op())
	}
}

// MemberClient is a client for the Member schema.
type MemberClient struct {
	config
}

// NewMemberClient returns a client for the Member from the given config.
func NewMemberClient(c config) *MemberClient {
	return &MemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `member.Hooks(f(g(h())))`.
func (c *MemberClient) Use(hooks ...Hook) {
	c.hooks.Member = append(c.hooks.Member, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `member.Intercept(f(g(h())))`.
func (c *MemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.Member = append(c.inters.Member, interceptors...)
}

// Create returns a builder for creating a Member entity.
func (c *MemberClient) Create() *MemberCreate {
	mutation := newMemberMutation(c.config, OpCreate)
	return &MemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Member entities.
func (c *MemberClient) CreateBulk(builders ...*MemberCreate) *MemberCreateBulk {
	return &MemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemberClient) MapCreateBulk(slice any, setFunc func(*MemberCreate, int)) *MemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemberCreateBulk{err: fmt.Errorf("calling to MemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Member.
func (c *MemberClient) Update() *MemberUpdate {
	mutation := newMemberMutation(c.config, OpUpdate)
	return &MemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemberClient) UpdateOne(_m *Member) *MemberUpdateOne {
	mutation := newMemberMutation(c.config, OpUpdateOne, withMember(_m))
	return &MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemberClient) UpdateOneID(id string) *MemberUpdateOne {
	mutation := newMemberMutation(c.config, OpUpdateOne, withMemberID(id))
	return &MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Member.
func (c *MemberClient) Delete() *MemberDelete {
	mutation := newMemberMutation(c.config, OpDelete)
	return &MemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemberClient) DeleteOne(_m *Member) *MemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemberClient) DeleteOneID(id string) *MemberDeleteOne {
	builder := c.Delete().Where(member.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemberDeleteOne{builder}
}

// Query returns a query builder for Member.
func (c *MemberClient) Query() *MemberQuery {
	return &MemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMember},
		inters: c.Interceptors(),
	}
}

// Get returns a Member entity by its id.
func (c *MemberClient) Get(ctx context.Context, id string) (*Member, error) {
	return c.Query().Where(member.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemberClient) GetX(ctx context.Context, id string) *Member {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDepartment queries the department edge of a Member.
func (c *MemberClient) QueryDepartment(_m *Member) *DepartmentQuery {
	query := (&DepartmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(member.Table, member.FieldID, id),
			sqlgraph.To(department.Table, department.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, member.DepartmentTable, member.DepartmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroups queries the groups edge of a Member.
func (c *MemberClient) QueryGroups(_m *Member) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(member.Table, member.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, member.GroupsTable, member.GroupsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemberClient) Hooks() []Hook {
	return c.hooks.Member
}

// Interceptors returns the client interceptors.
func (c *MemberClient) Interceptors() []Interceptor {
	return c.inters.Member
}

func (c *MemberClient) mutate(ctx context.Context, m *MemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Member mutation op: %q", m.Op())
	}
}

// NotificationDefinitionClient is a client for the NotificationDefinition schema.
type NotificationDefinitionClient struct {
	config
}

// NewNotificationDefinitionClient returns a client for the NotificationDefinition from the given config.
func NewNotificationDefinitionClient(c config) *NotificationDefinitionClient {
	return &NotificationDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationdefinition.Hooks(f(g(h())))`.
func (c *NotificationDefinitionClient) Use(hooks ...Hook) {
	c.hooks.NotificationDefinition = append(c.hooks.NotificationDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationdefinition.Intercept(f(g(h())))`.
func (c *NotificationDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationDefinition = append(c.inters.NotificationDefinition, interceptors...)
}

// Create returns a builder for creating a NotificationDefinition entity.
func (c *NotificationDefinitionClient) Create() *NotificationDefinitionCreate {
	mutation := newNotificationDefinitionMutation(c.config, OpCreate)
	return &NotificationDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationDefinition entities.
func (c *NotificationDefinitionClient) CreateBulk(builders ...*NotificationDefinitionCreate) *NotificationDefinitionCreateBulk {
	return &NotificationDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationDefinitionClient) MapCreateBulk(slice any, setFunc func(*NotificationDefinitionCreate, int)) *NotificationDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationDefinitionCreateBulk{err: fmt.Errorf("calling to NotificationDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationDefinition.
func (c *NotificationDefinitionClient) Update() *NotificationDefinitionUpdate {
	mutation := newNotificationDefinitionMutation(c.config, OpUpdate)
	return &NotificationDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationDefinitionClient) UpdateOne(_m *NotificationDefinition) *NotificationDefinitionUpdateOne {
	mutation := newNotificationDefinitionMutation(c.config, OpUpdateOne, withNotificationDefinition(_m))
	return &NotificationDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationDefinitionClient) UpdateOneID(id string) *NotificationDefinitionUpdateOne {
	mutation := newNotificationDefinitionMutation(c.config, OpUpdateOne, withNotificationDefinitionID(id))
	return &NotificationDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationDefinition.
func (c *NotificationDefinitionClient) Delete() *NotificationDefinitionDelete {
	mutation := newNotificationDefinitionMutation(c.config, OpDelete)
	return &NotificationDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationDefinitionClient) DeleteOne(_m *NotificationDefinition) *NotificationDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationDefinitionClient) DeleteOneID(id string) *NotificationDefinitionDeleteOne {
	builder := c.Delete().Where(notificationdefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDefinitionDeleteOne{builder}
}

// Query returns a query builder for NotificationDefinition.
func (c *NotificationDefinitionClient) Query() *NotificationDefinitionQuery {
	return &NotificationDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationDefinition entity by its id.
func (c *NotificationDefinitionClient) Get(ctx context.Context, id string) (*NotificationDefinition, error) {
	return c.Query().Where(notificationdefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationDefinitionClient) GetX(ctx context.Context, id string) *NotificationDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstances queries the instances edge of a NotificationDefinition.
func (c *NotificationDefinitionClient) QueryInstances(_m *NotificationDefinition) *NotificationInstanceQuery {
	query := (&NotificationInstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notificationdefinition.Table, notificationdefinition.FieldID, id),
			sqlgraph.To(notificationinstance.Table, notificationinstance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, notificationdefinition.InstancesTable, notificationdefinition.InstancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationDefinitionClient) Hooks() []Hook {
	return c.hooks.NotificationDefinition
}

// Interceptors returns the client interceptors.
func (c *NotificationDefinitionClient) Interceptors() []Interceptor {
	return c.inters.NotificationDefinition
}

func (c *NotificationDefinitionClient) mutate(ctx context.Context, m *NotificationDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationDefinition mutation op: %q", m.Op())
	}
}

// NotificationInstanceClient is a client for the NotificationInstance schema.
type NotificationInstanceClient struct {
	config
}

// NewNotificationInstanceClient returns a client for the NotificationInstance from the given config.
func NewNotificationInstanceClient(c config) *NotificationInstanceClient {
	return &NotificationInstanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationinstance.Hooks(f(g(h())))`.
func (c *NotificationInstanceClient) Use(hooks ...Hook) {
	c.hooks.NotificationInstance = append(c.hooks.NotificationInstance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationinstance.Intercept(f(g(h())))`.
func (c *NotificationInstanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationInstance = append(c.inters.NotificationInstance, interceptors...)
}

// Create returns a builder for creating a NotificationInstance entity.
func (c *NotificationInstanceClient) Create() *NotificationInstanceCreate {
	mutation := newNotificationInstanceMutation(c.config, OpCreate)
	return &NotificationInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationInstance entities.
func (c *NotificationInstanceClient) CreateBulk(builders ...*NotificationInstanceCreate) *NotificationInstanceCreateBulk {
	return &NotificationInstanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationInstanceClient) MapCreateBulk(slice any, setFunc func(*NotificationInstanceCreate, int)) *NotificationInstanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationInstanceCreateBulk{err: fmt.Errorf("calling to NotificationInstanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationInstanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationInstanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationInstance.
func (c *NotificationInstanceClient) Update() *NotificationInstanceUpdate {
	mutation := newNotificationInstanceMutation(c.config, OpUpdate)
	return &NotificationInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationInstanceClient) UpdateOne(_m *NotificationInstance) *NotificationInstanceUpdateOne {
	mutation := newNotificationInstanceMutation(c.config, OpUpdateOne, withNotificationInstance(_m))
	return &NotificationInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationInstanceClient) UpdateOneID(id string) *NotificationInstanceUpdateOne {
	mutation := newNotificationInstanceMutation(c.config, OpUpdateOne, withNotificationInstanceID(id))
	return &NotificationInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationInstance.
func (c *NotificationInstanceClient) Delete() *NotificationInstanceDelete {
	mutation := newNotificationInstanceMutation(c.config, OpDelete)
	return &NotificationInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationInstanceClient) DeleteOne(_m *NotificationInstance) *NotificationInstanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationInstanceClient) DeleteOneID(id string) *NotificationInstanceDeleteOne {
	builder := c.Delete().Where(notificationinstance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationInstanceDeleteOne{builder}
}

// Query returns a query builder for NotificationInstance.
func (c *NotificationInstanceClient) Query() *NotificationInstanceQuery {
	return &NotificationInstanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationInstance},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationInstance entity by its id.
func (c *NotificationInstanceClient) Get(ctx context.Context, id string) (*NotificationInstance, error) {
	return c.Query().Where(notificationinstance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationInstanceClient) GetX(ctx context.Context, id string) *NotificationInstance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDefinition queries the definition edge of a NotificationInstance.
func (c *NotificationInstanceClient) QueryDefinition(_m *NotificationInstance) *NotificationDefinitionQuery {
	query := (&NotificationDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notificationinstance.Table, notificationinstance.FieldID, id),
			sqlgraph.To(notificationdefinition.Table, notificationdefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notificationinstance.DefinitionTable, notificationinstance.DefinitionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDeliveries queries the deliveries edge of a NotificationInstance.
func (c *NotificationInstanceClient) QueryDeliveries(_m *NotificationInstance) *DeliveryRecordQuery {
	query := (&DeliveryRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notificationinstance.Table, notificationinstance.FieldID, id),
			sqlgraph.To(deliveryrecord.Table, deliveryrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, notificationinstance.DeliveriesTable, notificationinstance.DeliveriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationInstanceClient) Hooks() []Hook {
	return c.hooks.NotificationInstance
}

// Interceptors returns the client interceptors.
func (c *NotificationInstanceClient) Interceptors() []Interceptor {
	return c.inters.NotificationInstance
}

func (c *NotificationInstanceClient) mutate(ctx context.Context, m *NotificationInstanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationInstance mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeliveryRecord, Department, Group, Member, NotificationDefinition,
		NotificationInstance []ent.Hook
	}
	inters struct {
		DeliveryRecord, Department, Group, Member, NotificationDefinition,
		NotificationInstance []ent.Interceptor
	}
)
