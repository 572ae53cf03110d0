// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Volpestyle/paystub-extractor/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Volpestyle/paystub-extractor/gen/ent/extractjob"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystub"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystubfile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// Paystub is the client for interacting with the Paystub builders.
	Paystub *PaystubClient
	// PaystubFile is the client for interacting with the PaystubFile builders.
	PaystubFile *PaystubFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.Paystub = NewPaystubClient(c.config)
	c.PaystubFile = NewPaystubFileClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		ExtractJob:  NewExtractJobClient(cfg),
		Paystub:     NewPaystubClient(cfg),
		PaystubFile: NewPaystubFileClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		ExtractJob:  NewExtractJobClient(cfg),
		Paystub:     NewPaystubClient(cfg),
		PaystubFile: NewPaystubFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractJob.
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
	c.ExtractJob.Use(hooks...)
	c.Paystub.Use(hooks...)
	c.PaystubFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractJob.Intercept(interceptors...)
	c.Paystub.Intercept(interceptors...)
	c.PaystubFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *PaystubMutation:
		return c.Paystub.mutate(ctx, m)
	case *PaystubFileMutation:
		return c.PaystubFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractJobClient is a client for the ExtractJob schema.
type ExtractJobClient struct {
	config
}

// NewExtractJobClient returns a client for the ExtractJob from the given config.
func NewExtractJobClient(c config) *ExtractJobClient {
	return &ExtractJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractjob.Hooks(f(g(h())))`.
func (c *ExtractJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractJob = append(c.hooks.ExtractJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractjob.Intercept(f(g(h())))`.
func (c *ExtractJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractJob = append(c.inters.ExtractJob, interceptors...)
}

// Create returns a builder for creating a ExtractJob entity.
func (c *ExtractJobClient) Create() *ExtractJobCreate {
	mutation := newExtractJobMutation(c.config, OpCreate)
	return &ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractJob entities.
func (c *ExtractJobClient) CreateBulk(builders ...*ExtractJobCreate) *ExtractJobCreateBulk {
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractJobClient) MapCreateBulk(slice any, setFunc func(*ExtractJobCreate, int)) *ExtractJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractJobCreateBulk{err: fmt.Errorf("calling to ExtractJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractJob.
func (c *ExtractJobClient) Update() *ExtractJobUpdate {
	mutation := newExtractJobMutation(c.config, OpUpdate)
	return &ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractJobClient) UpdateOne(_m *ExtractJob) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJob(_m))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractJobClient) UpdateOneID(id uuid.UUID) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJobID(id))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractJob.
func (c *ExtractJobClient) Delete() *ExtractJobDelete {
	mutation := newExtractJobMutation(c.config, OpDelete)
	return &ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractJobClient) DeleteOne(_m *ExtractJob) *ExtractJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractJobClient) DeleteOneID(id uuid.UUID) *ExtractJobDeleteOne {
	builder := c.Delete().Where(extractjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractJobDeleteOne{builder}
}

// Query returns a query builder for ExtractJob.
func (c *ExtractJobClient) Query() *ExtractJobQuery {
	return &ExtractJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractJob entity by its id.
func (c *ExtractJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractJob, error) {
	return c.Query().Where(extractjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ExtractJob.
func (c *ExtractJobClient) QueryFile(_m *ExtractJob) *PaystubFileQuery {
	query := (&PaystubFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(paystubfile.Table, paystubfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPaystub queries the paystub edge of a ExtractJob.
func (c *ExtractJobClient) QueryPaystub(_m *ExtractJob) *PaystubQuery {
	query := (&PaystubClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(paystub.Table, paystub.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.PaystubTable, extractjob.PaystubColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractJobClient) Hooks() []Hook {
	return c.hooks.ExtractJob
}

// Interceptors returns the client interceptors.
func (c *ExtractJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractJob
}

func (c *ExtractJobClient) mutate(ctx context.Context, m *ExtractJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractJob mutation op: %q", m.Op())
	}
}

// PaystubClient is a client for the Paystub schema.
type PaystubClient struct {
	config
}

// NewPaystubClient returns a client for the Paystub from the given config.
func NewPaystubClient(c config) *PaystubClient {
	return &PaystubClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paystub.Hooks(f(g(h())))`.
func (c *PaystubClient) Use(hooks ...Hook) {
	c.hooks.Paystub = append(c.hooks.Paystub, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paystub.Intercept(f(g(h())))`.
func (c *PaystubClient) Intercept(interceptors ...Interceptor) {
	c.inters.Paystub = append(c.inters.Paystub, interceptors...)
}

// Create returns a builder for creating a Paystub entity.
func (c *PaystubClient) Create() *PaystubCreate {
	mutation := newPaystubMutation(c.config, OpCreate)
	return &PaystubCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Paystub entities.
func (c *PaystubClient) CreateBulk(builders ...*PaystubCreate) *PaystubCreateBulk {
	return &PaystubCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaystubClient) MapCreateBulk(slice any, setFunc func(*PaystubCreate, int)) *PaystubCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaystubCreateBulk{err: fmt.Errorf("calling to PaystubClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaystubCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaystubCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Paystub.
func (c *PaystubClient) Update() *PaystubUpdate {
	mutation := newPaystubMutation(c.config, OpUpdate)
	return &PaystubUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaystubClient) UpdateOne(_m *Paystub) *PaystubUpdateOne {
	mutation := newPaystubMutation(c.config, OpUpdateOne, withPaystub(_m))
	return &PaystubUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaystubClient) UpdateOneID(id uuid.UUID) *PaystubUpdateOne {
	mutation := newPaystubMutation(c.config, OpUpdateOne, withPaystubID(id))
	return &PaystubUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Paystub.
func (c *PaystubClient) Delete() *PaystubDelete {
	mutation := newPaystubMutation(c.config, OpDelete)
	return &PaystubDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaystubClient) DeleteOne(_m *Paystub) *PaystubDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaystubClient) DeleteOneID(id uuid.UUID) *PaystubDeleteOne {
	builder := c.Delete().Where(paystub.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaystubDeleteOne{builder}
}

// Query returns a query builder for Paystub.
func (c *PaystubClient) Query() *PaystubQuery {
	return &PaystubQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaystub},
		inters: c.Interceptors(),
	}
}

// Get returns a Paystub entity by its id.
func (c *PaystubClient) Get(ctx context.Context, id uuid.UUID) (*Paystub, error) {
	return c.Query().Where(paystub.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaystubClient) GetX(ctx context.Context, id uuid.UUID) *Paystub {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a Paystub.
func (c *PaystubClient) QueryFile(_m *Paystub) *PaystubFileQuery {
	query := (&PaystubFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paystub.Table, paystub.FieldID, id),
			sqlgraph.To(paystubfile.Table, paystubfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paystub.FileTable, paystub.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Paystub.
func (c *PaystubClient) QueryJobs(_m *Paystub) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paystub.Table, paystub.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paystub.JobsTable, paystub.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaystubClient) Hooks() []Hook {
	return c.hooks.Paystub
}

// Interceptors returns the client interceptors.
func (c *PaystubClient) Interceptors() []Interceptor {
	return c.inters.Paystub
}

func (c *PaystubClient) mutate(ctx context.Context, m *PaystubMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaystubCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaystubUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaystubUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaystubDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Paystub mutation op: %q", m.Op())
	}
}

// PaystubFileClient is a client for the PaystubFile schema.
type PaystubFileClient struct {
	config
}

// NewPaystubFileClient returns a client for the PaystubFile from the given config.
func NewPaystubFileClient(c config) *PaystubFileClient {
	return &PaystubFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paystubfile.Hooks(f(g(h())))`.
func (c *PaystubFileClient) Use(hooks ...Hook) {
	c.hooks.PaystubFile = append(c.hooks.PaystubFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paystubfile.Intercept(f(g(h())))`.
func (c *PaystubFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaystubFile = append(c.inters.PaystubFile, interceptors...)
}

// Create returns a builder for creating a PaystubFile entity.
func (c *PaystubFileClient) Create() *PaystubFileCreate {
	mutation := newPaystubFileMutation(c.config, OpCreate)
	return &PaystubFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaystubFile entities.
func (c *PaystubFileClient) CreateBulk(builders ...*PaystubFileCreate) *PaystubFileCreateBulk {
	return &PaystubFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaystubFileClient) MapCreateBulk(slice any, setFunc func(*PaystubFileCreate, int)) *PaystubFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaystubFileCreateBulk{err: fmt.Errorf("calling to PaystubFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaystubFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaystubFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaystubFile.
func (c *PaystubFileClient) Update() *PaystubFileUpdate {
	mutation := newPaystubFileMutation(c.config, OpUpdate)
	return &PaystubFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaystubFileClient) UpdateOne(_m *PaystubFile) *PaystubFileUpdateOne {
	mutation := newPaystubFileMutation(c.config, OpUpdateOne, withPaystubFile(_m))
	return &PaystubFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaystubFileClient) UpdateOneID(id uuid.UUID) *PaystubFileUpdateOne {
	mutation := newPaystubFileMutation(c.config, OpUpdateOne, withPaystubFileID(id))
	return &PaystubFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaystubFile.
func (c *PaystubFileClient) Delete() *PaystubFileDelete {
	mutation := newPaystubFileMutation(c.config, OpDelete)
	return &PaystubFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaystubFileClient) DeleteOne(_m *PaystubFile) *PaystubFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaystubFileClient) DeleteOneID(id uuid.UUID) *PaystubFileDeleteOne {
	builder := c.Delete().Where(paystubfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaystubFileDeleteOne{builder}
}

// Query returns a query builder for PaystubFile.
func (c *PaystubFileClient) Query() *PaystubFileQuery {
	return &PaystubFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaystubFile},
		inters: c.Interceptors(),
	}
}

// Get returns a PaystubFile entity by its id.
func (c *PaystubFileClient) Get(ctx context.Context, id uuid.UUID) (*PaystubFile, error) {
	return c.Query().Where(paystubfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaystubFileClient) GetX(ctx context.Context, id uuid.UUID) *PaystubFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a PaystubFile.
func (c *PaystubFileClient) QueryJobs(_m *PaystubFile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paystubfile.Table, paystubfile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paystubfile.JobsTable, paystubfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPaystubs queries the paystubs edge of a PaystubFile.
func (c *PaystubFileClient) QueryPaystubs(_m *PaystubFile) *PaystubQuery {
	query := (&PaystubClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paystubfile.Table, paystubfile.FieldID, id),
			sqlgraph.To(paystub.Table, paystub.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paystubfile.PaystubsTable, paystubfile.PaystubsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaystubFileClient) Hooks() []Hook {
	return c.hooks.PaystubFile
}

// Interceptors returns the client interceptors.
func (c *PaystubFileClient) Interceptors() []Interceptor {
	return c.inters.PaystubFile
}

func (c *PaystubFileClient) mutate(ctx context.Context, m *PaystubFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaystubFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaystubFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaystubFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaystubFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaystubFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractJob, Paystub, PaystubFile []ent.Hook
	}
	inters struct {
		ExtractJob, Paystub, PaystubFile []ent.Interceptor
	}
)
