// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/ent/notificationinstance"
	"memberhub.io/memberhub/ent/predicate"
)

// NotificationInstanceQuery is the builder for querying NotificationInstance entities.
type NotificationInstanceQuery struct {
	config
	ctx            *QueryContext
	order          []notificationinstance.OrderOption
	inters         []Interceptor
	predicates     []predicate.NotificationInstance
	withDefinition *NotificationDefinitionQuery
	withDeliveries *DeliveryRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the NotificationInstanceQuery builder.
func (_q *NotificationInstanceQuery) Where(ps ...predicate.NotificationInstance) *NotificationInstanceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *NotificationInstanceQuery) Limit(limit int) *NotificationInstanceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *NotificationInstanceQuery) Offset(offset int) *NotificationInstanceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *NotificationInstanceQuery) Unique(unique bool) *NotificationInstanceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *NotificationInstanceQuery) Order(o ...notificationinstance.OrderOption) *NotificationInstanceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDefinition chains the current query on the "definition" edge.
func (_q *NotificationInstanceQuery) QueryDefinition() *NotificationDefinitionQuery {
	query := (&NotificationDefinitionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(notificationinstance.Table, notificationinstance.FieldID, selector),
			sqlgraph.To(notificationdefinition.Table, notificationdefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notificationinstance.DefinitionTable, notificationinstance.DefinitionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDeliveries chains the current query on the "deliveries" edge.
func (_q *NotificationInstanceQuery) QueryDeliveries() *DeliveryRecordQuery {
	query := (&DeliveryRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(notificationinstance.Table, notificationinstance.FieldID, selector),
			sqlgraph.To(deliveryrecord.Table, deliveryrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, notificationinstance.DeliveriesTable, notificationinstance.DeliveriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first NotificationInstance entity from the query.
// Returns a *NotFoundError when no NotificationInstance was found.
func (_q *NotificationInstanceQuery) First(ctx context.Context) (*NotificationInstance, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{notificationinstance.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *NotificationInstanceQuery) FirstX(ctx context.Context) *NotificationInstance {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first NotificationInstance ID from the query.
// Returns a *NotFoundError when no NotificationInstance ID was found.
func (_q *NotificationInstanceQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{notificationinstance.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *NotificationInstanceQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single NotificationInstance entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one NotificationInstance entity is found.
// Returns a *NotFoundError when no NotificationInstance entities are found.
func (_q *NotificationInstanceQuery) Only(ctx context.Context) (*NotificationInstance, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{notificationinstance.Label}
	default:
		return nil, &NotSingularError{notificationinstance.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *NotificationInstanceQuery) OnlyX(ctx context.Context) *NotificationInstance {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only NotificationInstance ID in the query.
// Returns a *NotSingularError when more than one NotificationInstance ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *NotificationInstanceQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{notificationinstance.Label}
	default:
		err = &NotSingularError{notificationinstance.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *NotificationInstanceQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of NotificationInstances.
func (_q *NotificationInstanceQuery) All(ctx context.Context) ([]*NotificationInstance, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*NotificationInstance, *NotificationInstanceQuery]()
	return withInterceptors[[]*NotificationInstance](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *NotificationInstanceQuery) AllX(ctx context.Context) []*NotificationInstance {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of NotificationInstance IDs.
func (_q *NotificationInstanceQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(notificationinstance.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *NotificationInstanceQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *NotificationInstanceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*NotificationInstanceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *NotificationInstanceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *NotificationInstanceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *NotificationInstanceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the NotificationInstanceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *NotificationInstanceQuery) Clone() *NotificationInstanceQuery {
	if _q == nil {
		return nil
	}
	return &NotificationInstanceQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]notificationinstance.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.NotificationInstance{}, _q.predicates...),
		withDefinition: _q.withDefinition.Clone(),
		withDeliveries: _q.withDeliveries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDefinition tells the query-builder to eager-load the nodes that are connected to
// the "definition" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *NotificationInstanceQuery) WithDefinition(opts ...func(*NotificationDefinitionQuery)) *NotificationInstanceQuery {
	query := (&NotificationDefinitionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDefinition = query
	return _q
}

// WithDeliveries tells the query-builder to eager-load the nodes that are connected to
// the "deliveries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *NotificationInstanceQuery) WithDeliveries(opts ...func(*DeliveryRecordQuery)) *NotificationInstanceQuery {
	query := (&DeliveryRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDeliveries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.NotificationInstance.Query().
//		GroupBy(notificationinstance.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *NotificationInstanceQuery) GroupBy(field string, fields ...string) *NotificationInstanceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &NotificationInstanceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = notificationinstance.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.NotificationInstance.Query().
//		Select(notificationinstance.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *NotificationInstanceQuery) Select(fields ...string) *NotificationInstanceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &NotificationInstanceSelect{NotificationInstanceQuery: _q}
	sbuild.label = notificationinstance.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a NotificationInstanceSelect configured with the given aggregations.
func (_q *NotificationInstanceQuery) Aggregate(fns ...AggregateFunc) *NotificationInstanceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *NotificationInstanceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !notificationinstance.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *NotificationInstanceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*NotificationInstance, error) {
	var (
		nodes       = []*NotificationInstance{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDefinition != nil,
			_q.withDeliveries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*NotificationInstance).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &NotificationInstance{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDefinition; query != nil {
		if err := _q.loadDefinition(ctx, query, nodes, nil,
			func(n *NotificationInstance, e *NotificationDefinition) { n.Edges.Definition = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDeliveries; query != nil {
		if err := _q.loadDeliveries(ctx, query, nodes,
			func(n *NotificationInstance) { n.Edges.Deliveries = []*DeliveryRecord{} },
			func(n *NotificationInstance, e *DeliveryRecord) { n.Edges.Deliveries = append(n.Edges.Deliveries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *NotificationInstanceQuery) loadDefinition(ctx context.Context, query *NotificationDefinitionQuery, nodes []*NotificationInstance, init func(*NotificationInstance), assign func(*NotificationInstance, *NotificationDefinition)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*NotificationInstance)
	for i := range nodes {
		fk := nodes[i].DefinitionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(notificationdefinition.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "definition_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *NotificationInstanceQuery) loadDeliveries(ctx context.Context, query *DeliveryRecordQuery, nodes []*NotificationInstance, init func(*NotificationInstance), assign func(*NotificationInstance, *DeliveryRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*NotificationInstance)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(deliveryrecord.FieldInstanceID)
	}
	query.Where(predicate.DeliveryRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(notificationinstance.DeliveriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InstanceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "instance_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *NotificationInstanceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *NotificationInstanceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(notificationinstance.Table, notificationinstance.Columns, sqlgraph.NewFieldSpec(notificationinstance.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationinstance.FieldID)
		for i := range fields {
			if fields[i] != notificationinstance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDefinition != nil {
			_spec.Node.AddColumnOnce(notificationinstance.FieldDefinitionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *NotificationInstanceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(notificationinstance.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = notificationinstance.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// NotificationInstanceGroupBy is the group-by builder for NotificationInstance entities.
type NotificationInstanceGroupBy struct {
	selector
	build *NotificationInstanceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *NotificationInstanceGroupBy) Aggregate(fns ...AggregateFunc) *NotificationInstanceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *NotificationInstanceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*NotificationInstanceQuery, *NotificationInstanceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *NotificationInstanceGroupBy) sqlScan(ctx context.Context, root *NotificationInstanceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// NotificationInstanceSelect is the builder for selecting fields of NotificationInstance entities.
type NotificationInstanceSelect struct {
	*NotificationInstanceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *NotificationInstanceSelect) Aggregate(fns ...AggregateFunc) *NotificationInstanceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *NotificationInstanceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*NotificationInstanceQuery, *NotificationInstanceSelect](ctx, _s.NotificationInstanceQuery, _s, _s.inters, v)
}

func (_s *NotificationInstanceSelect) sqlScan(ctx context.Context, root *NotificationInstanceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
