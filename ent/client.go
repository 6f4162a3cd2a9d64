// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hugocool/fateforger/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/hugocool/fateforger/ent/constraintrecord"
	"github.com/hugocool/fateforger/ent/reflection"
	"github.com/hugocool/fateforger/ent/syncrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConstraintRecord is the client for interacting with the ConstraintRecord builders.
	ConstraintRecord *ConstraintRecordClient
	// Reflection is the client for interacting with the Reflection builders.
	Reflection *ReflectionClient
	// SyncRecord is the client for interacting with the SyncRecord builders.
	SyncRecord *SyncRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConstraintRecord = NewConstraintRecordClient(c.config)
	c.Reflection = NewReflectionClient(c.config)
	c.SyncRecord = NewSyncRecordClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ConstraintRecord: NewConstraintRecordClient(cfg),
		Reflection:       NewReflectionClient(cfg),
		SyncRecord:       NewSyncRecordClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ConstraintRecord: NewConstraintRecordClient(cfg),
		Reflection:       NewReflectionClient(cfg),
		SyncRecord:       NewSyncRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConstraintRecord.
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
	c.ConstraintRecord.Use(hooks...)
	c.Reflection.Use(hooks...)
	c.SyncRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ConstraintRecord.Intercept(interceptors...)
	c.Reflection.Intercept(interceptors...)
	c.SyncRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConstraintRecordMutation:
		return c.ConstraintRecord.mutate(ctx, m)
	case *ReflectionMutation:
		return c.Reflection.mutate(ctx, m)
	case *SyncRecordMutation:
		return c.SyncRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConstraintRecordClient is a client for the ConstraintRecord schema.
type ConstraintRecordClient struct {
	config
}

// NewConstraintRecordClient returns a client for the ConstraintRecord from the given config.
func NewConstraintRecordClient(c config) *ConstraintRecordClient {
	return &ConstraintRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `constraintrecord.Hooks(f(g(h())))`.
func (c *ConstraintRecordClient) Use(hooks ...Hook) {
	c.hooks.ConstraintRecord = append(c.hooks.ConstraintRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `constraintrecord.Intercept(f(g(h())))`.
func (c *ConstraintRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConstraintRecord = append(c.inters.ConstraintRecord, interceptors...)
}

// Create returns a builder for creating a ConstraintRecord entity.
func (c *ConstraintRecordClient) Create() *ConstraintRecordCreate {
	mutation := newConstraintRecordMutation(c.config, OpCreate)
	return &ConstraintRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConstraintRecord entities.
func (c *ConstraintRecordClient) CreateBulk(builders ...*ConstraintRecordCreate) *ConstraintRecordCreateBulk {
	return &ConstraintRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConstraintRecordClient) MapCreateBulk(slice any, setFunc func(*ConstraintRecordCreate, int)) *ConstraintRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConstraintRecordCreateBulk{err: fmt.Errorf("calling to ConstraintRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConstraintRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConstraintRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConstraintRecord.
func (c *ConstraintRecordClient) Update() *ConstraintRecordUpdate {
	mutation := newConstraintRecordMutation(c.config, OpUpdate)
	return &ConstraintRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConstraintRecordClient) UpdateOne(_m *ConstraintRecord) *ConstraintRecordUpdateOne {
	mutation := newConstraintRecordMutation(c.config, OpUpdateOne, withConstraintRecord(_m))
	return &ConstraintRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConstraintRecordClient) UpdateOneID(id string) *ConstraintRecordUpdateOne {
	mutation := newConstraintRecordMutation(c.config, OpUpdateOne, withConstraintRecordID(id))
	return &ConstraintRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConstraintRecord.
func (c *ConstraintRecordClient) Delete() *ConstraintRecordDelete {
	mutation := newConstraintRecordMutation(c.config, OpDelete)
	return &ConstraintRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConstraintRecordClient) DeleteOne(_m *ConstraintRecord) *ConstraintRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConstraintRecordClient) DeleteOneID(id string) *ConstraintRecordDeleteOne {
	builder := c.Delete().Where(constraintrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConstraintRecordDeleteOne{builder}
}

// Query returns a query builder for ConstraintRecord.
func (c *ConstraintRecordClient) Query() *ConstraintRecordQuery {
	return &ConstraintRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConstraintRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ConstraintRecord entity by its id.
func (c *ConstraintRecordClient) Get(ctx context.Context, id string) (*ConstraintRecord, error) {
	return c.Query().Where(constraintrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConstraintRecordClient) GetX(ctx context.Context, id string) *ConstraintRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConstraintRecordClient) Hooks() []Hook {
	return c.hooks.ConstraintRecord
}

// Interceptors returns the client interceptors.
func (c *ConstraintRecordClient) Interceptors() []Interceptor {
	return c.inters.ConstraintRecord
}

func (c *ConstraintRecordClient) mutate(ctx context.Context, m *ConstraintRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConstraintRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConstraintRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConstraintRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConstraintRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConstraintRecord mutation op: %q", m.Op())
	}
}

// ReflectionClient is a client for the Reflection schema.
type ReflectionClient struct {
	config
}

// NewReflectionClient returns a client for the Reflection from the given config.
func NewReflectionClient(c config) *ReflectionClient {
	return &ReflectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reflection.Hooks(f(g(h())))`.
func (c *ReflectionClient) Use(hooks ...Hook) {
	c.hooks.Reflection = append(c.hooks.Reflection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reflection.Intercept(f(g(h())))`.
func (c *ReflectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Reflection = append(c.inters.Reflection, interceptors...)
}

// Create returns a builder for creating a Reflection entity.
func (c *ReflectionClient) Create() *ReflectionCreate {
	mutation := newReflectionMutation(c.config, OpCreate)
	return &ReflectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Reflection entities.
func (c *ReflectionClient) CreateBulk(builders ...*ReflectionCreate) *ReflectionCreateBulk {
	return &ReflectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReflectionClient) MapCreateBulk(slice any, setFunc func(*ReflectionCreate, int)) *ReflectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReflectionCreateBulk{err: fmt.Errorf("calling to ReflectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReflectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReflectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Reflection.
func (c *ReflectionClient) Update() *ReflectionUpdate {
	mutation := newReflectionMutation(c.config, OpUpdate)
	return &ReflectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReflectionClient) UpdateOne(_m *Reflection) *ReflectionUpdateOne {
	mutation := newReflectionMutation(c.config, OpUpdateOne, withReflection(_m))
	return &ReflectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReflectionClient) UpdateOneID(id string) *ReflectionUpdateOne {
	mutation := newReflectionMutation(c.config, OpUpdateOne, withReflectionID(id))
	return &ReflectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Reflection.
func (c *ReflectionClient) Delete() *ReflectionDelete {
	mutation := newReflectionMutation(c.config, OpDelete)
	return &ReflectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReflectionClient) DeleteOne(_m *Reflection) *ReflectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReflectionClient) DeleteOneID(id string) *ReflectionDeleteOne {
	builder := c.Delete().Where(reflection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReflectionDeleteOne{builder}
}

// Query returns a query builder for Reflection.
func (c *ReflectionClient) Query() *ReflectionQuery {
	return &ReflectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReflection},
		inters: c.Interceptors(),
	}
}

// Get returns a Reflection entity by its id.
func (c *ReflectionClient) Get(ctx context.Context, id string) (*Reflection, error) {
	return c.Query().Where(reflection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReflectionClient) GetX(ctx context.Context, id string) *Reflection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReflectionClient) Hooks() []Hook {
	return c.hooks.Reflection
}

// Interceptors returns the client interceptors.
func (c *ReflectionClient) Interceptors() []Interceptor {
	return c.inters.Reflection
}

func (c *ReflectionClient) mutate(ctx context.Context, m *ReflectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReflectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReflectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReflectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReflectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Reflection mutation op: %q", m.Op())
	}
}

// SyncRecordClient is a client for the SyncRecord schema.
type SyncRecordClient struct {
	config
}

// NewSyncRecordClient returns a client for the SyncRecord from the given config.
func NewSyncRecordClient(c config) *SyncRecordClient {
	return &SyncRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncrecord.Hooks(f(g(h())))`.
func (c *SyncRecordClient) Use(hooks ...Hook) {
	c.hooks.SyncRecord = append(c.hooks.SyncRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncrecord.Intercept(f(g(h())))`.
func (c *SyncRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncRecord = append(c.inters.SyncRecord, interceptors...)
}

// Create returns a builder for creating a SyncRecord entity.
func (c *SyncRecordClient) Create() *SyncRecordCreate {
	mutation := newSyncRecordMutation(c.config, OpCreate)
	return &SyncRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncRecord entities.
func (c *SyncRecordClient) CreateBulk(builders ...*SyncRecordCreate) *SyncRecordCreateBulk {
	return &SyncRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncRecordClient) MapCreateBulk(slice any, setFunc func(*SyncRecordCreate, int)) *SyncRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncRecordCreateBulk{err: fmt.Errorf("calling to SyncRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncRecord.
func (c *SyncRecordClient) Update() *SyncRecordUpdate {
	mutation := newSyncRecordMutation(c.config, OpUpdate)
	return &SyncRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncRecordClient) UpdateOne(_m *SyncRecord) *SyncRecordUpdateOne {
	mutation := newSyncRecordMutation(c.config, OpUpdateOne, withSyncRecord(_m))
	return &SyncRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncRecordClient) UpdateOneID(id string) *SyncRecordUpdateOne {
	mutation := newSyncRecordMutation(c.config, OpUpdateOne, withSyncRecordID(id))
	return &SyncRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncRecord.
func (c *SyncRecordClient) Delete() *SyncRecordDelete {
	mutation := newSyncRecordMutation(c.config, OpDelete)
	return &SyncRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncRecordClient) DeleteOne(_m *SyncRecord) *SyncRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncRecordClient) DeleteOneID(id string) *SyncRecordDeleteOne {
	builder := c.Delete().Where(syncrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncRecordDeleteOne{builder}
}

// Query returns a query builder for SyncRecord.
func (c *SyncRecordClient) Query() *SyncRecordQuery {
	return &SyncRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncRecord entity by its id.
func (c *SyncRecordClient) Get(ctx context.Context, id string) (*SyncRecord, error) {
	return c.Query().Where(syncrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncRecordClient) GetX(ctx context.Context, id string) *SyncRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncRecordClient) Hooks() []Hook {
	return c.hooks.SyncRecord
}

// Interceptors returns the client interceptors.
func (c *SyncRecordClient) Interceptors() []Interceptor {
	return c.inters.SyncRecord
}

func (c *SyncRecordClient) mutate(ctx context.Context, m *SyncRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConstraintRecord, Reflection, SyncRecord []ent.Hook
	}
	inters struct {
		ConstraintRecord, Reflection, SyncRecord []ent.Interceptor
	}
)
