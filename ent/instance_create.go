// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/instance"
)

// InstanceCreate is the builder for creating a Instance entity.
type InstanceCreate struct {
	config
	mutation *InstanceMutation
	hooks    []Hook
}

// SetSubdomain sets the "subdomain" field.
func (_c *InstanceCreate) SetSubdomain(v string) *InstanceCreate {
	_c.mutation.SetSubdomain(v)
	return _c
}

// SetContainerName sets the "container_name" field.
func (_c *InstanceCreate) SetContainerName(v string) *InstanceCreate {
	_c.mutation.SetContainerName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InstanceCreate) SetStatus(v instance.Status) *InstanceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableStatus(v *instance.Status) *InstanceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDeployRing sets the "deploy_ring" field.
func (_c *InstanceCreate) SetDeployRing(v int) *InstanceCreate {
	_c.mutation.SetDeployRing(v)
	return _c
}

// SetNillableDeployRing sets the "deploy_ring" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableDeployRing(v *int) *InstanceCreate {
	if v != nil {
		_c.SetDeployRing(*v)
	}
	return _c
}

// SetDeployState sets the "deploy_state" field.
func (_c *InstanceCreate) SetDeployState(v instance.DeployState) *InstanceCreate {
	_c.mutation.SetDeployState(v)
	return _c
}

// SetNillableDeployState sets the "deploy_state" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableDeployState(v *instance.DeployState) *InstanceCreate {
	if v != nil {
		_c.SetDeployState(*v)
	}
	return _c
}

// SetCurrentImage sets the "current_image" field.
func (_c *InstanceCreate) SetCurrentImage(v string) *InstanceCreate {
	_c.mutation.SetCurrentImage(v)
	return _c
}

// SetNillableCurrentImage sets the "current_image" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableCurrentImage(v *string) *InstanceCreate {
	if v != nil {
		_c.SetCurrentImage(*v)
	}
	return _c
}

// SetLastHealthyImage sets the "last_healthy_image" field.
func (_c *InstanceCreate) SetLastHealthyImage(v string) *InstanceCreate {
	_c.mutation.SetLastHealthyImage(v)
	return _c
}

// SetNillableLastHealthyImage sets the "last_healthy_image" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableLastHealthyImage(v *string) *InstanceCreate {
	if v != nil {
		_c.SetLastHealthyImage(*v)
	}
	return _c
}

// SetImageDigest sets the "image_digest" field.
func (_c *InstanceCreate) SetImageDigest(v string) *InstanceCreate {
	_c.mutation.SetImageDigest(v)
	return _c
}

// SetNillableImageDigest sets the "image_digest" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableImageDigest(v *string) *InstanceCreate {
	if v != nil {
		_c.SetImageDigest(*v)
	}
	return _c
}

// SetDeployID sets the "deploy_id" field.
func (_c *InstanceCreate) SetDeployID(v string) *InstanceCreate {
	_c.mutation.SetDeployID(v)
	return _c
}

// SetNillableDeployID sets the "deploy_id" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableDeployID(v *string) *InstanceCreate {
	if v != nil {
		_c.SetDeployID(*v)
	}
	return _c
}

// SetDeployError sets the "deploy_error" field.
func (_c *InstanceCreate) SetDeployError(v string) *InstanceCreate {
	_c.mutation.SetDeployError(v)
	return _c
}

// SetNillableDeployError sets the "deploy_error" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableDeployError(v *string) *InstanceCreate {
	if v != nil {
		_c.SetDeployError(*v)
	}
	return _c
}

// SetLastHealthAt sets the "last_health_at" field.
func (_c *InstanceCreate) SetLastHealthAt(v time.Time) *InstanceCreate {
	_c.mutation.SetLastHealthAt(v)
	return _c
}

// SetNillableLastHealthAt sets the "last_health_at" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableLastHealthAt(v *time.Time) *InstanceCreate {
	if v != nil {
		_c.SetLastHealthAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstanceCreate) SetCreatedAt(v time.Time) *InstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableCreatedAt(v *time.Time) *InstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeploymentID sets the "deployment" edge to the Deployment entity by ID.
func (_c *InstanceCreate) SetDeploymentID(id string) *InstanceCreate {
	_c.mutation.SetDeploymentID(id)
	return _c
}

// SetNillableDeploymentID sets the "deployment" edge to the Deployment entity by ID if the given value is not nil.
func (_c *InstanceCreate) SetNillableDeploymentID(id *string) *InstanceCreate {
	if id != nil {
		_c = _c.SetDeploymentID(*id)
	}
	return _c
}

// SetDeployment sets the "deployment" edge to the Deployment entity.
func (_c *InstanceCreate) SetDeployment(v *Deployment) *InstanceCreate {
	return _c.SetDeploymentID(v.ID)
}

// Mutation returns the InstanceMutation object of the builder.
func (_c *InstanceCreate) Mutation() *InstanceMutation {
	return _c.mutation
}

// Save creates the Instance in the database.
func (_c *InstanceCreate) Save(ctx context.Context) (*Instance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstanceCreate) SaveX(ctx context.Context) *Instance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstanceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := instance.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DeployRing(); !ok {
		v := instance.DefaultDeployRing
		_c.mutation.SetDeployRing(v)
	}
	if _, ok := _c.mutation.DeployState(); !ok {
		v := instance.DefaultDeployState
		_c.mutation.SetDeployState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := instance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstanceCreate) check() error {
	if _, ok := _c.mutation.Subdomain(); !ok {
		return &ValidationError{Name: "subdomain", err: errors.New(`ent: missing required field "Instance.subdomain"`)}
	}
	if _, ok := _c.mutation.ContainerName(); !ok {
		return &ValidationError{Name: "container_name", err: errors.New(`ent: missing required field "Instance.container_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Instance.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := instance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Instance.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeployRing(); !ok {
		return &ValidationError{Name: "deploy_ring", err: errors.New(`ent: missing required field "Instance.deploy_ring"`)}
	}
	if _, ok := _c.mutation.DeployState(); !ok {
		return &ValidationError{Name: "deploy_state", err: errors.New(`ent: missing required field "Instance.deploy_state"`)}
	}
	if v, ok := _c.mutation.DeployState(); ok {
		if err := instance.DeployStateValidator(v); err != nil {
			return &ValidationError{Name: "deploy_state", err: fmt.Errorf(`ent: validator failed for field "Instance.deploy_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Instance.created_at"`)}
	}
	return nil
}

func (_c *InstanceCreate) sqlSave(ctx context.Context) (*Instance, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InstanceCreate) createSpec() (*Instance, *sqlgraph.CreateSpec) {
	var (
		_node = &Instance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(instance.Table, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Subdomain(); ok {
		_spec.SetField(instance.FieldSubdomain, field.TypeString, value)
		_node.Subdomain = value
	}
	if value, ok := _c.mutation.ContainerName(); ok {
		_spec.SetField(instance.FieldContainerName, field.TypeString, value)
		_node.ContainerName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(instance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DeployRing(); ok {
		_spec.SetField(instance.FieldDeployRing, field.TypeInt, value)
		_node.DeployRing = value
	}
	if value, ok := _c.mutation.DeployState(); ok {
		_spec.SetField(instance.FieldDeployState, field.TypeEnum, value)
		_node.DeployState = value
	}
	if value, ok := _c.mutation.CurrentImage(); ok {
		_spec.SetField(instance.FieldCurrentImage, field.TypeString, value)
		_node.CurrentImage = value
	}
	if value, ok := _c.mutation.LastHealthyImage(); ok {
		_spec.SetField(instance.FieldLastHealthyImage, field.TypeString, value)
		_node.LastHealthyImage = &value
	}
	if value, ok := _c.mutation.ImageDigest(); ok {
		_spec.SetField(instance.FieldImageDigest, field.TypeString, value)
		_node.ImageDigest = &value
	}
	if value, ok := _c.mutation.DeployError(); ok {
		_spec.SetField(instance.FieldDeployError, field.TypeString, value)
		_node.DeployError = &value
	}
	if value, ok := _c.mutation.LastHealthAt(); ok {
		_spec.SetField(instance.FieldLastHealthAt, field.TypeTime, value)
		_node.LastHealthAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(instance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DeploymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   instance.DeploymentTable,
			Columns: []string{instance.DeploymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DeployID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InstanceCreateBulk is the builder for creating many Instance entities in bulk.
type InstanceCreateBulk struct {
	config
	err      error
	builders []*InstanceCreate
}

// Save creates the Instance entities in the database.
func (_c *InstanceCreateBulk) Save(ctx context.Context) ([]*Instance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Instance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstanceMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *InstanceCreateBulk) SaveX(ctx context.Context) []*Instance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
