// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/oikos-sh/brigade/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/courseevent"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/enrolltoken"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/ent/runner"
	"github.com/oikos-sh/brigade/ent/runnerjob"
	"github.com/oikos-sh/brigade/ent/thread"
	"github.com/oikos-sh/brigade/ent/threadmessage"
	"github.com/oikos-sh/brigade/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CommisJob is the client for interacting with the CommisJob builders.
	CommisJob *CommisJobClient
	// Course is the client for interacting with the Course builders.
	Course *CourseClient
	// CourseEvent is the client for interacting with the CourseEvent builders.
	CourseEvent *CourseEventClient
	// Deployment is the client for interacting with the Deployment builders.
	Deployment *DeploymentClient
	// EnrollToken is the client for interacting with the EnrollToken builders.
	EnrollToken *EnrollTokenClient
	// Fiche is the client for interacting with the Fiche builders.
	Fiche *FicheClient
	// Instance is the client for interacting with the Instance builders.
	Instance *InstanceClient
	// Runner is the client for interacting with the Runner builders.
	Runner *RunnerClient
	// RunnerJob is the client for interacting with the RunnerJob builders.
	RunnerJob *RunnerJobClient
	// Thread is the client for interacting with the Thread builders.
	Thread *ThreadClient
	// ThreadMessage is the client for interacting with the ThreadMessage builders.
	ThreadMessage *ThreadMessageClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CommisJob = NewCommisJobClient(c.config)
	c.Course = NewCourseClient(c.config)
	c.CourseEvent = NewCourseEventClient(c.config)
	c.Deployment = NewDeploymentClient(c.config)
	c.EnrollToken = NewEnrollTokenClient(c.config)
	c.Fiche = NewFicheClient(c.config)
	c.Instance = NewInstanceClient(c.config)
	c.Runner = NewRunnerClient(c.config)
	c.RunnerJob = NewRunnerJobClient(c.config)
	c.Thread = NewThreadClient(c.config)
	c.ThreadMessage = NewThreadMessageClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		CommisJob:     NewCommisJobClient(cfg),
		Course:        NewCourseClient(cfg),
		CourseEvent:   NewCourseEventClient(cfg),
		Deployment:    NewDeploymentClient(cfg),
		EnrollToken:   NewEnrollTokenClient(cfg),
		Fiche:         NewFicheClient(cfg),
		Instance:      NewInstanceClient(cfg),
		Runner:        NewRunnerClient(cfg),
		RunnerJob:     NewRunnerJobClient(cfg),
		Thread:        NewThreadClient(cfg),
		ThreadMessage: NewThreadMessageClient(cfg),
		User:          NewUserClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		CommisJob:     NewCommisJobClient(cfg),
		Course:        NewCourseClient(cfg),
		CourseEvent:   NewCourseEventClient(cfg),
		Deployment:    NewDeploymentClient(cfg),
		EnrollToken:   NewEnrollTokenClient(cfg),
		Fiche:         NewFicheClient(cfg),
		Instance:      NewInstanceClient(cfg),
		Runner:        NewRunnerClient(cfg),
		RunnerJob:     NewRunnerJobClient(cfg),
		Thread:        NewThreadClient(cfg),
		ThreadMessage: NewThreadMessageClient(cfg),
		User:          NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CommisJob.
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
		c.CommisJob, c.Course, c.CourseEvent, c.Deployment, c.EnrollToken, c.Fiche,
		c.Instance, c.Runner, c.RunnerJob, c.Thread, c.ThreadMessage, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CommisJob, c.Course, c.CourseEvent, c.Deployment, c.EnrollToken, c.Fiche,
		c.Instance, c.Runner, c.RunnerJob, c.Thread, c.ThreadMessage, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CommisJobMutation:
		return c.CommisJob.mutate(ctx, m)
	case *CourseMutation:
		return c.Course.mutate(ctx, m)
	case *CourseEventMutation:
		return c.CourseEvent.mutate(ctx, m)
	case *DeploymentMutation:
		return c.Deployment.mutate(ctx, m)
	case *EnrollTokenMutation:
		return c.EnrollToken.mutate(ctx, m)
	case *FicheMutation:
		return c.Fiche.mutate(ctx, m)
	case *InstanceMutation:
		return c.Instance.mutate(ctx, m)
	case *RunnerMutation:
		return c.Runner.mutate(ctx, m)
	case *RunnerJobMutation:
		return c.RunnerJob.mutate(ctx, m)
	case *ThreadMutation:
		return c.Thread.mutate(ctx, m)
	case *ThreadMessageMutation:
		return c.ThreadMessage.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CommisJobClient is a client for the CommisJob schema.
type CommisJobClient struct {
	config
}

// NewCommisJobClient returns a client for the CommisJob from the given config.
func NewCommisJobClient(c config) *CommisJobClient {
	return &CommisJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commisjob.Hooks(f(g(h())))`.
func (c *CommisJobClient) Use(hooks ...Hook) {
	c.hooks.CommisJob = append(c.hooks.CommisJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commisjob.Intercept(f(g(h())))`.
func (c *CommisJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommisJob = append(c.inters.CommisJob, interceptors...)
}

// Create returns a builder for creating a CommisJob entity.
func (c *CommisJobClient) Create() *CommisJobCreate {
	mutation := newCommisJobMutation(c.config, OpCreate)
	return &CommisJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommisJob entities.
func (c *CommisJobClient) CreateBulk(builders ...*CommisJobCreate) *CommisJobCreateBulk {
	return &CommisJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommisJobClient) MapCreateBulk(slice any, setFunc func(*CommisJobCreate, int)) *CommisJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommisJobCreateBulk{err: fmt.Errorf("calling to CommisJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommisJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommisJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommisJob.
func (c *CommisJobClient) Update() *CommisJobUpdate {
	mutation := newCommisJobMutation(c.config, OpUpdate)
	return &CommisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommisJobClient) UpdateOne(_m *CommisJob) *CommisJobUpdateOne {
	mutation := newCommisJobMutation(c.config, OpUpdateOne, withCommisJob(_m))
	return &CommisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommisJobClient) UpdateOneID(id int) *CommisJobUpdateOne {
	mutation := newCommisJobMutation(c.config, OpUpdateOne, withCommisJobID(id))
	return &CommisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommisJob.
func (c *CommisJobClient) Delete() *CommisJobDelete {
	mutation := newCommisJobMutation(c.config, OpDelete)
	return &CommisJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommisJobClient) DeleteOne(_m *CommisJob) *CommisJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommisJobClient) DeleteOneID(id int) *CommisJobDeleteOne {
	builder := c.Delete().Where(commisjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommisJobDeleteOne{builder}
}

// Query returns a query builder for CommisJob.
func (c *CommisJobClient) Query() *CommisJobQuery {
	return &CommisJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommisJob},
		inters: c.Interceptors(),
	}
}

// Get returns a CommisJob entity by its id.
func (c *CommisJobClient) Get(ctx context.Context, id int) (*CommisJob, error) {
	return c.Query().Where(commisjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommisJobClient) GetX(ctx context.Context, id int) *CommisJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a CommisJob.
func (c *CommisJobClient) QueryOwner(_m *CommisJob) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commisjob.Table, commisjob.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commisjob.OwnerTable, commisjob.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConciergeCourse queries the concierge_course edge of a CommisJob.
func (c *CommisJobClient) QueryConciergeCourse(_m *CommisJob) *CourseQuery {
	query := (&CourseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commisjob.Table, commisjob.FieldID, id),
			sqlgraph.To(course.Table, course.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commisjob.ConciergeCourseTable, commisjob.ConciergeCourseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommisJobClient) Hooks() []Hook {
	return c.hooks.CommisJob
}

// Interceptors returns the client interceptors.
func (c *CommisJobClient) Interceptors() []Interceptor {
	return c.inters.CommisJob
}

func (c *CommisJobClient) mutate(ctx context.Context, m *CommisJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommisJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommisJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommisJob mutation op: %q", m.Op())
	}
}

// CourseClient is a client for the Course schema.
type CourseClient struct {
	config
}

// NewCourseClient returns a client for the Course from the given config.
func NewCourseClient(c config) *CourseClient {
	return &CourseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `course.Hooks(f(g(h())))`.
func (c *CourseClient) Use(hooks ...Hook) {
	c.hooks.Course = append(c.hooks.Course, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `course.Intercept(f(g(h())))`.
func (c *CourseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Course = append(c.inters.Course, interceptors...)
}

// Create returns a builder for creating a Course entity.
func (c *CourseClient) Create() *CourseCreate {
	mutation := newCourseMutation(c.config, OpCreate)
	return &CourseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Course entities.
func (c *CourseClient) CreateBulk(builders ...*CourseCreate) *CourseCreateBulk {
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseClient) MapCreateBulk(slice any, setFunc func(*CourseCreate, int)) *CourseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseCreateBulk{err: fmt.Errorf("calling to CourseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Course.
func (c *CourseClient) Update() *CourseUpdate {
	mutation := newCourseMutation(c.config, OpUpdate)
	return &CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseClient) UpdateOne(_m *Course) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourse(_m))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseClient) UpdateOneID(id int) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourseID(id))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Course.
func (c *CourseClient) Delete() *CourseDelete {
	mutation := newCourseMutation(c.config, OpDelete)
	return &CourseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseClient) DeleteOne(_m *Course) *CourseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseClient) DeleteOneID(id int) *CourseDeleteOne {
	builder := c.Delete().Where(course.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseDeleteOne{builder}
}

// Query returns a query builder for Course.
func (c *CourseClient) Query() *CourseQuery {
	return &CourseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourse},
		inters: c.Interceptors(),
	}
}

// Get returns a Course entity by its id.
func (c *CourseClient) Get(ctx context.Context, id int) (*Course, error) {
	return c.Query().Where(course.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseClient) GetX(ctx context.Context, id int) *Course {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiche queries the fiche edge of a Course.
func (c *CourseClient) QueryFiche(_m *Course) *FicheQuery {
	query := (&FicheClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(course.Table, course.FieldID, id),
			sqlgraph.To(fiche.Table, fiche.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, course.FicheTable, course.FicheColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOwner queries the owner edge of a Course.
func (c *CourseClient) QueryOwner(_m *Course) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(course.Table, course.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, course.OwnerTable, course.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommisJobs queries the commis_jobs edge of a Course.
func (c *CourseClient) QueryCommisJobs(_m *Course) *CommisJobQuery {
	query := (&CommisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(course.Table, course.FieldID, id),
			sqlgraph.To(commisjob.Table, commisjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, course.CommisJobsTable, course.CommisJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Course.
func (c *CourseClient) QueryEvents(_m *Course) *CourseEventQuery {
	query := (&CourseEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(course.Table, course.FieldID, id),
			sqlgraph.To(courseevent.Table, courseevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, course.EventsTable, course.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CourseClient) Hooks() []Hook {
	return c.hooks.Course
}

// Interceptors returns the client interceptors.
func (c *CourseClient) Interceptors() []Interceptor {
	return c.inters.Course
}

func (c *CourseClient) mutate(ctx context.Context, m *CourseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Course mutation op: %q", m.Op())
	}
}

// CourseEventClient is a client for the CourseEvent schema.
type CourseEventClient struct {
	config
}

// NewCourseEventClient returns a client for the CourseEvent from the given config.
func NewCourseEventClient(c config) *CourseEventClient {
	return &CourseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `courseevent.Hooks(f(g(h())))`.
func (c *CourseEventClient) Use(hooks ...Hook) {
	c.hooks.CourseEvent = append(c.hooks.CourseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `courseevent.Intercept(f(g(h())))`.
func (c *CourseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseEvent = append(c.inters.CourseEvent, interceptors...)
}

// Create returns a builder for creating a CourseEvent entity.
func (c *CourseEventClient) Create() *CourseEventCreate {
	mutation := newCourseEventMutation(c.config, OpCreate)
	return &CourseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseEvent entities.
func (c *CourseEventClient) CreateBulk(builders ...*CourseEventCreate) *CourseEventCreateBulk {
	return &CourseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseEventClient) MapCreateBulk(slice any, setFunc func(*CourseEventCreate, int)) *CourseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseEventCreateBulk{err: fmt.Errorf("calling to CourseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseEvent.
func (c *CourseEventClient) Update() *CourseEventUpdate {
	mutation := newCourseEventMutation(c.config, OpUpdate)
	return &CourseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseEventClient) UpdateOne(_m *CourseEvent) *CourseEventUpdateOne {
	mutation := newCourseEventMutation(c.config, OpUpdateOne, withCourseEvent(_m))
	return &CourseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseEventClient) UpdateOneID(id int) *CourseEventUpdateOne {
	mutation := newCourseEventMutation(c.config, OpUpdateOne, withCourseEventID(id))
	return &CourseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseEvent.
func (c *CourseEventClient) Delete() *CourseEventDelete {
	mutation := newCourseEventMutation(c.config, OpDelete)
	return &CourseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseEventClient) DeleteOne(_m *CourseEvent) *CourseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseEventClient) DeleteOneID(id int) *CourseEventDeleteOne {
	builder := c.Delete().Where(courseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseEventDeleteOne{builder}
}

// Query returns a query builder for CourseEvent.
func (c *CourseEventClient) Query() *CourseEventQuery {
	return &CourseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseEvent entity by its id.
func (c *CourseEventClient) Get(ctx context.Context, id int) (*CourseEvent, error) {
	return c.Query().Where(courseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseEventClient) GetX(ctx context.Context, id int) *CourseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCourse queries the course edge of a CourseEvent.
func (c *CourseEventClient) QueryCourse(_m *CourseEvent) *CourseQuery {
	query := (&CourseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(courseevent.Table, courseevent.FieldID, id),
			sqlgraph.To(course.Table, course.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, courseevent.CourseTable, courseevent.CourseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CourseEventClient) Hooks() []Hook {
	return c.hooks.CourseEvent
}

// Interceptors returns the client interceptors.
func (c *CourseEventClient) Interceptors() []Interceptor {
	return c.inters.CourseEvent
}

func (c *CourseEventClient) mutate(ctx context.Context, m *CourseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseEvent mutation op: %q", m.Op())
	}
}

// DeploymentClient is a client for the Deployment schema.
type DeploymentClient struct {
	config
}

// NewDeploymentClient returns a client for the Deployment from the given config.
func NewDeploymentClient(c config) *DeploymentClient {
	return &DeploymentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deployment.Hooks(f(g(h())))`.
func (c *DeploymentClient) Use(hooks ...Hook) {
	c.hooks.Deployment = append(c.hooks.Deployment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deployment.Intercept(f(g(h())))`.
func (c *DeploymentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Deployment = append(c.inters.Deployment, interceptors...)
}

// Create returns a builder for creating a Deployment entity.
func (c *DeploymentClient) Create() *DeploymentCreate {
	mutation := newDeploymentMutation(c.config, OpCreate)
	return &DeploymentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Deployment entities.
func (c *DeploymentClient) CreateBulk(builders ...*DeploymentCreate) *DeploymentCreateBulk {
	return &DeploymentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeploymentClient) MapCreateBulk(slice any, setFunc func(*DeploymentCreate, int)) *DeploymentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeploymentCreateBulk{err: fmt.Errorf("calling to DeploymentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeploymentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeploymentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Deployment.
func (c *DeploymentClient) Update() *DeploymentUpdate {
	mutation := newDeploymentMutation(c.config, OpUpdate)
	return &DeploymentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeploymentClient) UpdateOne(_m *Deployment) *DeploymentUpdateOne {
	mutation := newDeploymentMutation(c.config, OpUpdateOne, withDeployment(_m))
	return &DeploymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeploymentClient) UpdateOneID(id string) *DeploymentUpdateOne {
	mutation := newDeploymentMutation(c.config, OpUpdateOne, withDeploymentID(id))
	return &DeploymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Deployment.
func (c *DeploymentClient) Delete() *DeploymentDelete {
	mutation := newDeploymentMutation(c.config, OpDelete)
	return &DeploymentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeploymentClient) DeleteOne(_m *Deployment) *DeploymentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeploymentClient) DeleteOneID(id string) *DeploymentDeleteOne {
	builder := c.Delete().Where(deployment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeploymentDeleteOne{builder}
}

// Query returns a query builder for Deployment.
func (c *DeploymentClient) Query() *DeploymentQuery {
	return &DeploymentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeployment},
		inters: c.Interceptors(),
	}
}

// Get returns a Deployment entity by its id.
func (c *DeploymentClient) Get(ctx context.Context, id string) (*Deployment, error) {
	return c.Query().Where(deployment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeploymentClient) GetX(ctx context.Context, id string) *Deployment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstances queries the instances edge of a Deployment.
func (c *DeploymentClient) QueryInstances(_m *Deployment) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deployment.Table, deployment.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deployment.InstancesTable, deployment.InstancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeploymentClient) Hooks() []Hook {
	return c.hooks.Deployment
}

// Interceptors returns the client interceptors.
func (c *DeploymentClient) Interceptors() []Interceptor {
	return c.inters.Deployment
}

func (c *DeploymentClient) mutate(ctx context.Context, m *DeploymentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeploymentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeploymentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeploymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeploymentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Deployment mutation op: %q", m.Op())
	}
}

// EnrollTokenClient is a client for the EnrollToken schema.
type EnrollTokenClient struct {
	config
}

// NewEnrollTokenClient returns a client for the EnrollToken from the given config.
func NewEnrollTokenClient(c config) *EnrollTokenClient {
	return &EnrollTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `enrolltoken.Hooks(f(g(h())))`.
func (c *EnrollTokenClient) Use(hooks ...Hook) {
	c.hooks.EnrollToken = append(c.hooks.EnrollToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `enrolltoken.Intercept(f(g(h())))`.
func (c *EnrollTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnrollToken = append(c.inters.EnrollToken, interceptors...)
}

// Create returns a builder for creating a EnrollToken entity.
func (c *EnrollTokenClient) Create() *EnrollTokenCreate {
	mutation := newEnrollTokenMutation(c.config, OpCreate)
	return &EnrollTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnrollToken entities.
func (c *EnrollTokenClient) CreateBulk(builders ...*EnrollTokenCreate) *EnrollTokenCreateBulk {
	return &EnrollTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnrollTokenClient) MapCreateBulk(slice any, setFunc func(*EnrollTokenCreate, int)) *EnrollTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnrollTokenCreateBulk{err: fmt.Errorf("calling to EnrollTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnrollTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnrollTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnrollToken.
func (c *EnrollTokenClient) Update() *EnrollTokenUpdate {
	mutation := newEnrollTokenMutation(c.config, OpUpdate)
	return &EnrollTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnrollTokenClient) UpdateOne(_m *EnrollToken) *EnrollTokenUpdateOne {
	mutation := newEnrollTokenMutation(c.config, OpUpdateOne, withEnrollToken(_m))
	return &EnrollTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnrollTokenClient) UpdateOneID(id int) *EnrollTokenUpdateOne {
	mutation := newEnrollTokenMutation(c.config, OpUpdateOne, withEnrollTokenID(id))
	return &EnrollTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnrollToken.
func (c *EnrollTokenClient) Delete() *EnrollTokenDelete {
	mutation := newEnrollTokenMutation(c.config, OpDelete)
	return &EnrollTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnrollTokenClient) DeleteOne(_m *EnrollToken) *EnrollTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnrollTokenClient) DeleteOneID(id int) *EnrollTokenDeleteOne {
	builder := c.Delete().Where(enrolltoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnrollTokenDeleteOne{builder}
}

// Query returns a query builder for EnrollToken.
func (c *EnrollTokenClient) Query() *EnrollTokenQuery {
	return &EnrollTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnrollToken},
		inters: c.Interceptors(),
	}
}

// Get returns a EnrollToken entity by its id.
func (c *EnrollTokenClient) Get(ctx context.Context, id int) (*EnrollToken, error) {
	return c.Query().Where(enrolltoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnrollTokenClient) GetX(ctx context.Context, id int) *EnrollToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EnrollTokenClient) Hooks() []Hook {
	return c.hooks.EnrollToken
}

// Interceptors returns the client interceptors.
func (c *EnrollTokenClient) Interceptors() []Interceptor {
	return c.inters.EnrollToken
}

func (c *EnrollTokenClient) mutate(ctx context.Context, m *EnrollTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnrollTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnrollTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnrollTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnrollTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnrollToken mutation op: %q", m.Op())
	}
}

// FicheClient is a client for the Fiche schema.
type FicheClient struct {
	config
}

// NewFicheClient returns a client for the Fiche from the given config.
func NewFicheClient(c config) *FicheClient {
	return &FicheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fiche.Hooks(f(g(h())))`.
func (c *FicheClient) Use(hooks ...Hook) {
	c.hooks.Fiche = append(c.hooks.Fiche, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fiche.Intercept(f(g(h())))`.
func (c *FicheClient) Intercept(interceptors ...Interceptor) {
	c.inters.Fiche = append(c.inters.Fiche, interceptors...)
}

// Create returns a builder for creating a Fiche entity.
func (c *FicheClient) Create() *FicheCreate {
	mutation := newFicheMutation(c.config, OpCreate)
	return &FicheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Fiche entities.
func (c *FicheClient) CreateBulk(builders ...*FicheCreate) *FicheCreateBulk {
	return &FicheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FicheClient) MapCreateBulk(slice any, setFunc func(*FicheCreate, int)) *FicheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FicheCreateBulk{err: fmt.Errorf("calling to FicheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FicheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FicheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Fiche.
func (c *FicheClient) Update() *FicheUpdate {
	mutation := newFicheMutation(c.config, OpUpdate)
	return &FicheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FicheClient) UpdateOne(_m *Fiche) *FicheUpdateOne {
	mutation := newFicheMutation(c.config, OpUpdateOne, withFiche(_m))
	return &FicheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FicheClient) UpdateOneID(id int) *FicheUpdateOne {
	mutation := newFicheMutation(c.config, OpUpdateOne, withFicheID(id))
	return &FicheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Fiche.
func (c *FicheClient) Delete() *FicheDelete {
	mutation := newFicheMutation(c.config, OpDelete)
	return &FicheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FicheClient) DeleteOne(_m *Fiche) *FicheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FicheClient) DeleteOneID(id int) *FicheDeleteOne {
	builder := c.Delete().Where(fiche.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FicheDeleteOne{builder}
}

// Query returns a query builder for Fiche.
func (c *FicheClient) Query() *FicheQuery {
	return &FicheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFiche},
		inters: c.Interceptors(),
	}
}

// Get returns a Fiche entity by its id.
func (c *FicheClient) Get(ctx context.Context, id int) (*Fiche, error) {
	return c.Query().Where(fiche.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FicheClient) GetX(ctx context.Context, id int) *Fiche {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Fiche.
func (c *FicheClient) QueryOwner(_m *Fiche) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fiche.Table, fiche.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fiche.OwnerTable, fiche.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryThreads queries the threads edge of a Fiche.
func (c *FicheClient) QueryThreads(_m *Fiche) *ThreadQuery {
	query := (&ThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fiche.Table, fiche.FieldID, id),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fiche.ThreadsTable, fiche.ThreadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCourses queries the courses edge of a Fiche.
func (c *FicheClient) QueryCourses(_m *Fiche) *CourseQuery {
	query := (&CourseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fiche.Table, fiche.FieldID, id),
			sqlgraph.To(course.Table, course.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fiche.CoursesTable, fiche.CoursesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FicheClient) Hooks() []Hook {
	return c.hooks.Fiche
}

// Interceptors returns the client interceptors.
func (c *FicheClient) Interceptors() []Interceptor {
	return c.inters.Fiche
}

func (c *FicheClient) mutate(ctx context.Context, m *FicheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FicheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FicheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FicheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FicheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Fiche mutation op: %q", m.Op())
	}
}

// InstanceClient is a client for the Instance schema.
type InstanceClient struct {
	config
}

// NewInstanceClient returns a client for the Instance from the given config.
func NewInstanceClient(c config) *InstanceClient {
	return &InstanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `instance.Hooks(f(g(h())))`.
func (c *InstanceClient) Use(hooks ...Hook) {
	c.hooks.Instance = append(c.hooks.Instance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `instance.Intercept(f(g(h())))`.
func (c *InstanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Instance = append(c.inters.Instance, interceptors...)
}

// Create returns a builder for creating a Instance entity.
func (c *InstanceClient) Create() *InstanceCreate {
	mutation := newInstanceMutation(c.config, OpCreate)
	return &InstanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Instance entities.
func (c *InstanceClient) CreateBulk(builders ...*InstanceCreate) *InstanceCreateBulk {
	return &InstanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstanceClient) MapCreateBulk(slice any, setFunc func(*InstanceCreate, int)) *InstanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstanceCreateBulk{err: fmt.Errorf("calling to InstanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Instance.
func (c *InstanceClient) Update() *InstanceUpdate {
	mutation := newInstanceMutation(c.config, OpUpdate)
	return &InstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstanceClient) UpdateOne(_m *Instance) *InstanceUpdateOne {
	mutation := newInstanceMutation(c.config, OpUpdateOne, withInstance(_m))
	return &InstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstanceClient) UpdateOneID(id int) *InstanceUpdateOne {
	mutation := newInstanceMutation(c.config, OpUpdateOne, withInstanceID(id))
	return &InstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Instance.
func (c *InstanceClient) Delete() *InstanceDelete {
	mutation := newInstanceMutation(c.config, OpDelete)
	return &InstanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstanceClient) DeleteOne(_m *Instance) *InstanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstanceClient) DeleteOneID(id int) *InstanceDeleteOne {
	builder := c.Delete().Where(instance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstanceDeleteOne{builder}
}

// Query returns a query builder for Instance.
func (c *InstanceClient) Query() *InstanceQuery {
	return &InstanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstance},
		inters: c.Interceptors(),
	}
}

// Get returns a Instance entity by its id.
func (c *InstanceClient) Get(ctx context.Context, id int) (*Instance, error) {
	return c.Query().Where(instance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstanceClient) GetX(ctx context.Context, id int) *Instance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeployment queries the deployment edge of a Instance.
func (c *InstanceClient) QueryDeployment(_m *Instance) *DeploymentQuery {
	query := (&DeploymentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(deployment.Table, deployment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, instance.DeploymentTable, instance.DeploymentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstanceClient) Hooks() []Hook {
	return c.hooks.Instance
}

// Interceptors returns the client interceptors.
func (c *InstanceClient) Interceptors() []Interceptor {
	return c.inters.Instance
}

func (c *InstanceClient) mutate(ctx context.Context, m *InstanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Instance mutation op: %q", m.Op())
	}
}

// RunnerClient is a client for the Runner schema.
type RunnerClient struct {
	config
}

// NewRunnerClient returns a client for the Runner from the given config.
func NewRunnerClient(c config) *RunnerClient {
	return &RunnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runner.Hooks(f(g(h())))`.
func (c *RunnerClient) Use(hooks ...Hook) {
	c.hooks.Runner = append(c.hooks.Runner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runner.Intercept(f(g(h())))`.
func (c *RunnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Runner = append(c.inters.Runner, interceptors...)
}

// Create returns a builder for creating a Runner entity.
func (c *RunnerClient) Create() *RunnerCreate {
	mutation := newRunnerMutation(c.config, OpCreate)
	return &RunnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Runner entities.
func (c *RunnerClient) CreateBulk(builders ...*RunnerCreate) *RunnerCreateBulk {
	return &RunnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunnerClient) MapCreateBulk(slice any, setFunc func(*RunnerCreate, int)) *RunnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunnerCreateBulk{err: fmt.Errorf("calling to RunnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Runner.
func (c *RunnerClient) Update() *RunnerUpdate {
	mutation := newRunnerMutation(c.config, OpUpdate)
	return &RunnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunnerClient) UpdateOne(_m *Runner) *RunnerUpdateOne {
	mutation := newRunnerMutation(c.config, OpUpdateOne, withRunner(_m))
	return &RunnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunnerClient) UpdateOneID(id int) *RunnerUpdateOne {
	mutation := newRunnerMutation(c.config, OpUpdateOne, withRunnerID(id))
	return &RunnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Runner.
func (c *RunnerClient) Delete() *RunnerDelete {
	mutation := newRunnerMutation(c.config, OpDelete)
	return &RunnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunnerClient) DeleteOne(_m *Runner) *RunnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunnerClient) DeleteOneID(id int) *RunnerDeleteOne {
	builder := c.Delete().Where(runner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunnerDeleteOne{builder}
}

// Query returns a query builder for Runner.
func (c *RunnerClient) Query() *RunnerQuery {
	return &RunnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunner},
		inters: c.Interceptors(),
	}
}

// Get returns a Runner entity by its id.
func (c *RunnerClient) Get(ctx context.Context, id int) (*Runner, error) {
	return c.Query().Where(runner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunnerClient) GetX(ctx context.Context, id int) *Runner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Runner.
func (c *RunnerClient) QueryJobs(_m *Runner) *RunnerJobQuery {
	query := (&RunnerJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runner.Table, runner.FieldID, id),
			sqlgraph.To(runnerjob.Table, runnerjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runner.JobsTable, runner.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunnerClient) Hooks() []Hook {
	return c.hooks.Runner
}

// Interceptors returns the client interceptors.
func (c *RunnerClient) Interceptors() []Interceptor {
	return c.inters.Runner
}

func (c *RunnerClient) mutate(ctx context.Context, m *RunnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Runner mutation op: %q", m.Op())
	}
}

// RunnerJobClient is a client for the RunnerJob schema.
type RunnerJobClient struct {
	config
}

// NewRunnerJobClient returns a client for the RunnerJob from the given config.
func NewRunnerJobClient(c config) *RunnerJobClient {
	return &RunnerJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runnerjob.Hooks(f(g(h())))`.
func (c *RunnerJobClient) Use(hooks ...Hook) {
	c.hooks.RunnerJob = append(c.hooks.RunnerJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runnerjob.Intercept(f(g(h())))`.
func (c *RunnerJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunnerJob = append(c.inters.RunnerJob, interceptors...)
}

// Create returns a builder for creating a RunnerJob entity.
func (c *RunnerJobClient) Create() *RunnerJobCreate {
	mutation := newRunnerJobMutation(c.config, OpCreate)
	return &RunnerJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunnerJob entities.
func (c *RunnerJobClient) CreateBulk(builders ...*RunnerJobCreate) *RunnerJobCreateBulk {
	return &RunnerJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunnerJobClient) MapCreateBulk(slice any, setFunc func(*RunnerJobCreate, int)) *RunnerJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunnerJobCreateBulk{err: fmt.Errorf("calling to RunnerJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunnerJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunnerJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunnerJob.
func (c *RunnerJobClient) Update() *RunnerJobUpdate {
	mutation := newRunnerJobMutation(c.config, OpUpdate)
	return &RunnerJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunnerJobClient) UpdateOne(_m *RunnerJob) *RunnerJobUpdateOne {
	mutation := newRunnerJobMutation(c.config, OpUpdateOne, withRunnerJob(_m))
	return &RunnerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunnerJobClient) UpdateOneID(id int) *RunnerJobUpdateOne {
	mutation := newRunnerJobMutation(c.config, OpUpdateOne, withRunnerJobID(id))
	return &RunnerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunnerJob.
func (c *RunnerJobClient) Delete() *RunnerJobDelete {
	mutation := newRunnerJobMutation(c.config, OpDelete)
	return &RunnerJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunnerJobClient) DeleteOne(_m *RunnerJob) *RunnerJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunnerJobClient) DeleteOneID(id int) *RunnerJobDeleteOne {
	builder := c.Delete().Where(runnerjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunnerJobDeleteOne{builder}
}

// Query returns a query builder for RunnerJob.
func (c *RunnerJobClient) Query() *RunnerJobQuery {
	return &RunnerJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunnerJob},
		inters: c.Interceptors(),
	}
}

// Get returns a RunnerJob entity by its id.
func (c *RunnerJobClient) Get(ctx context.Context, id int) (*RunnerJob, error) {
	return c.Query().Where(runnerjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunnerJobClient) GetX(ctx context.Context, id int) *RunnerJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRunner queries the runner edge of a RunnerJob.
func (c *RunnerJobClient) QueryRunner(_m *RunnerJob) *RunnerQuery {
	query := (&RunnerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runnerjob.Table, runnerjob.FieldID, id),
			sqlgraph.To(runner.Table, runner.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runnerjob.RunnerTable, runnerjob.RunnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunnerJobClient) Hooks() []Hook {
	return c.hooks.RunnerJob
}

// Interceptors returns the client interceptors.
func (c *RunnerJobClient) Interceptors() []Interceptor {
	return c.inters.RunnerJob
}

func (c *RunnerJobClient) mutate(ctx context.Context, m *RunnerJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunnerJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunnerJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunnerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunnerJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunnerJob mutation op: %q", m.Op())
	}
}

// ThreadClient is a client for the Thread schema.
type ThreadClient struct {
	config
}

// NewThreadClient returns a client for the Thread from the given config.
func NewThreadClient(c config) *ThreadClient {
	return &ThreadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thread.Hooks(f(g(h())))`.
func (c *ThreadClient) Use(hooks ...Hook) {
	c.hooks.Thread = append(c.hooks.Thread, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thread.Intercept(f(g(h())))`.
func (c *ThreadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Thread = append(c.inters.Thread, interceptors...)
}

// Create returns a builder for creating a Thread entity.
func (c *ThreadClient) Create() *ThreadCreate {
	mutation := newThreadMutation(c.config, OpCreate)
	return &ThreadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Thread entities.
func (c *ThreadClient) CreateBulk(builders ...*ThreadCreate) *ThreadCreateBulk {
	return &ThreadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThreadClient) MapCreateBulk(slice any, setFunc func(*ThreadCreate, int)) *ThreadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThreadCreateBulk{err: fmt.Errorf("calling to ThreadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThreadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThreadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Thread.
func (c *ThreadClient) Update() *ThreadUpdate {
	mutation := newThreadMutation(c.config, OpUpdate)
	return &ThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThreadClient) UpdateOne(_m *Thread) *ThreadUpdateOne {
	mutation := newThreadMutation(c.config, OpUpdateOne, withThread(_m))
	return &ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThreadClient) UpdateOneID(id int) *ThreadUpdateOne {
	mutation := newThreadMutation(c.config, OpUpdateOne, withThreadID(id))
	return &ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Thread.
func (c *ThreadClient) Delete() *ThreadDelete {
	mutation := newThreadMutation(c.config, OpDelete)
	return &ThreadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThreadClient) DeleteOne(_m *Thread) *ThreadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThreadClient) DeleteOneID(id int) *ThreadDeleteOne {
	builder := c.Delete().Where(thread.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThreadDeleteOne{builder}
}

// Query returns a query builder for Thread.
func (c *ThreadClient) Query() *ThreadQuery {
	return &ThreadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThread},
		inters: c.Interceptors(),
	}
}

// Get returns a Thread entity by its id.
func (c *ThreadClient) Get(ctx context.Context, id int) (*Thread, error) {
	return c.Query().Where(thread.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThreadClient) GetX(ctx context.Context, id int) *Thread {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiche queries the fiche edge of a Thread.
func (c *ThreadClient) QueryFiche(_m *Thread) *FicheQuery {
	query := (&FicheClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thread.Table, thread.FieldID, id),
			sqlgraph.To(fiche.Table, fiche.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, thread.FicheTable, thread.FicheColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Thread.
func (c *ThreadClient) QueryMessages(_m *Thread) *ThreadMessageQuery {
	query := (&ThreadMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thread.Table, thread.FieldID, id),
			sqlgraph.To(threadmessage.Table, threadmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, thread.MessagesTable, thread.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThreadClient) Hooks() []Hook {
	return c.hooks.Thread
}

// Interceptors returns the client interceptors.
func (c *ThreadClient) Interceptors() []Interceptor {
	return c.inters.Thread
}

func (c *ThreadClient) mutate(ctx context.Context, m *ThreadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThreadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThreadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Thread mutation op: %q", m.Op())
	}
}

// ThreadMessageClient is a client for the ThreadMessage schema.
type ThreadMessageClient struct {
	config
}

// NewThreadMessageClient returns a client for the ThreadMessage from the given config.
func NewThreadMessageClient(c config) *ThreadMessageClient {
	return &ThreadMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `threadmessage.Hooks(f(g(h())))`.
func (c *ThreadMessageClient) Use(hooks ...Hook) {
	c.hooks.ThreadMessage = append(c.hooks.ThreadMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `threadmessage.Intercept(f(g(h())))`.
func (c *ThreadMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThreadMessage = append(c.inters.ThreadMessage, interceptors...)
}

// Create returns a builder for creating a ThreadMessage entity.
func (c *ThreadMessageClient) Create() *ThreadMessageCreate {
	mutation := newThreadMessageMutation(c.config, OpCreate)
	return &ThreadMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThreadMessage entities.
func (c *ThreadMessageClient) CreateBulk(builders ...*ThreadMessageCreate) *ThreadMessageCreateBulk {
	return &ThreadMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThreadMessageClient) MapCreateBulk(slice any, setFunc func(*ThreadMessageCreate, int)) *ThreadMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThreadMessageCreateBulk{err: fmt.Errorf("calling to ThreadMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThreadMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThreadMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThreadMessage.
func (c *ThreadMessageClient) Update() *ThreadMessageUpdate {
	mutation := newThreadMessageMutation(c.config, OpUpdate)
	return &ThreadMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThreadMessageClient) UpdateOne(_m *ThreadMessage) *ThreadMessageUpdateOne {
	mutation := newThreadMessageMutation(c.config, OpUpdateOne, withThreadMessage(_m))
	return &ThreadMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThreadMessageClient) UpdateOneID(id int) *ThreadMessageUpdateOne {
	mutation := newThreadMessageMutation(c.config, OpUpdateOne, withThreadMessageID(id))
	return &ThreadMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThreadMessage.
func (c *ThreadMessageClient) Delete() *ThreadMessageDelete {
	mutation := newThreadMessageMutation(c.config, OpDelete)
	return &ThreadMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThreadMessageClient) DeleteOne(_m *ThreadMessage) *ThreadMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThreadMessageClient) DeleteOneID(id int) *ThreadMessageDeleteOne {
	builder := c.Delete().Where(threadmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThreadMessageDeleteOne{builder}
}

// Query returns a query builder for ThreadMessage.
func (c *ThreadMessageClient) Query() *ThreadMessageQuery {
	return &ThreadMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThreadMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ThreadMessage entity by its id.
func (c *ThreadMessageClient) Get(ctx context.Context, id int) (*ThreadMessage, error) {
	return c.Query().Where(threadmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThreadMessageClient) GetX(ctx context.Context, id int) *ThreadMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryThread queries the thread edge of a ThreadMessage.
func (c *ThreadMessageClient) QueryThread(_m *ThreadMessage) *ThreadQuery {
	query := (&ThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(threadmessage.Table, threadmessage.FieldID, id),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, threadmessage.ThreadTable, threadmessage.ThreadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThreadMessageClient) Hooks() []Hook {
	return c.hooks.ThreadMessage
}

// Interceptors returns the client interceptors.
func (c *ThreadMessageClient) Interceptors() []Interceptor {
	return c.inters.ThreadMessage
}

func (c *ThreadMessageClient) mutate(ctx context.Context, m *ThreadMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThreadMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThreadMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThreadMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThreadMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThreadMessage mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiches queries the fiches edge of a User.
func (c *UserClient) QueryFiches(_m *User) *FicheQuery {
	query := (&FicheClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(fiche.Table, fiche.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.FichesTable, user.FichesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCourses queries the courses edge of a User.
func (c *UserClient) QueryCourses(_m *User) *CourseQuery {
	query := (&CourseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(course.Table, course.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CoursesTable, user.CoursesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommisJobs queries the commis_jobs edge of a User.
func (c *UserClient) QueryCommisJobs(_m *User) *CommisJobQuery {
	query := (&CommisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(commisjob.Table, commisjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CommisJobsTable, user.CommisJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CommisJob, Course, CourseEvent, Deployment, EnrollToken, Fiche, Instance,
		Runner, RunnerJob, Thread, ThreadMessage, User []ent.Hook
	}
	inters struct {
		CommisJob, Course, CourseEvent, Deployment, EnrollToken, Fiche, Instance,
		Runner, RunnerJob, Thread, ThreadMessage, User []ent.Interceptor
	}
)
