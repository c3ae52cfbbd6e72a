// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/ent/predicate"
)

// InstanceUpdate is the builder for updating Instance entities.
type InstanceUpdate struct {
	config
	hooks    []Hook
	mutation *InstanceMutation
}

// Where appends a list predicates to the InstanceUpdate builder.
func (_u *InstanceUpdate) Where(ps ...predicate.Instance) *InstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubdomain sets the "subdomain" field.
func (_u *InstanceUpdate) SetSubdomain(v string) *InstanceUpdate {
	_u.mutation.SetSubdomain(v)
	return _u
}

// SetNillableSubdomain sets the "subdomain" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableSubdomain(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetSubdomain(*v)
	}
	return _u
}

// SetContainerName sets the "container_name" field.
func (_u *InstanceUpdate) SetContainerName(v string) *InstanceUpdate {
	_u.mutation.SetContainerName(v)
	return _u
}

// SetNillableContainerName sets the "container_name" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableContainerName(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetContainerName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InstanceUpdate) SetStatus(v instance.Status) *InstanceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableStatus(v *instance.Status) *InstanceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeployRing sets the "deploy_ring" field.
func (_u *InstanceUpdate) SetDeployRing(v int) *InstanceUpdate {
	_u.mutation.ResetDeployRing()
	_u.mutation.SetDeployRing(v)
	return _u
}

// SetNillableDeployRing sets the "deploy_ring" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableDeployRing(v *int) *InstanceUpdate {
	if v != nil {
		_u.SetDeployRing(*v)
	}
	return _u
}

// AddDeployRing adds value to the "deploy_ring" field.
func (_u *InstanceUpdate) AddDeployRing(v int) *InstanceUpdate {
	_u.mutation.AddDeployRing(v)
	return _u
}

// SetDeployState sets the "deploy_state" field.
func (_u *InstanceUpdate) SetDeployState(v instance.DeployState) *InstanceUpdate {
	_u.mutation.SetDeployState(v)
	return _u
}

// SetNillableDeployState sets the "deploy_state" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableDeployState(v *instance.DeployState) *InstanceUpdate {
	if v != nil {
		_u.SetDeployState(*v)
	}
	return _u
}

// SetCurrentImage sets the "current_image" field.
func (_u *InstanceUpdate) SetCurrentImage(v string) *InstanceUpdate {
	_u.mutation.SetCurrentImage(v)
	return _u
}

// SetNillableCurrentImage sets the "current_image" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableCurrentImage(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetCurrentImage(*v)
	}
	return _u
}

// ClearCurrentImage clears the value of the "current_image" field.
func (_u *InstanceUpdate) ClearCurrentImage() *InstanceUpdate {
	_u.mutation.ClearCurrentImage()
	return _u
}

// SetLastHealthyImage sets the "last_healthy_image" field.
func (_u *InstanceUpdate) SetLastHealthyImage(v string) *InstanceUpdate {
	_u.mutation.SetLastHealthyImage(v)
	return _u
}

// SetNillableLastHealthyImage sets the "last_healthy_image" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableLastHealthyImage(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetLastHealthyImage(*v)
	}
	return _u
}

// ClearLastHealthyImage clears the value of the "last_healthy_image" field.
func (_u *InstanceUpdate) ClearLastHealthyImage() *InstanceUpdate {
	_u.mutation.ClearLastHealthyImage()
	return _u
}

// SetImageDigest sets the "image_digest" field.
func (_u *InstanceUpdate) SetImageDigest(v string) *InstanceUpdate {
	_u.mutation.SetImageDigest(v)
	return _u
}

// SetNillableImageDigest sets the "image_digest" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableImageDigest(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetImageDigest(*v)
	}
	return _u
}

// ClearImageDigest clears the value of the "image_digest" field.
func (_u *InstanceUpdate) ClearImageDigest() *InstanceUpdate {
	_u.mutation.ClearImageDigest()
	return _u
}

// SetDeployID sets the "deploy_id" field.
func (_u *InstanceUpdate) SetDeployID(v string) *InstanceUpdate {
	_u.mutation.SetDeployID(v)
	return _u
}

// SetNillableDeployID sets the "deploy_id" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableDeployID(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetDeployID(*v)
	}
	return _u
}

// ClearDeployID clears the value of the "deploy_id" field.
func (_u *InstanceUpdate) ClearDeployID() *InstanceUpdate {
	_u.mutation.ClearDeployID()
	return _u
}

// SetDeployError sets the "deploy_error" field.
func (_u *InstanceUpdate) SetDeployError(v string) *InstanceUpdate {
	_u.mutation.SetDeployError(v)
	return _u
}

// SetNillableDeployError sets the "deploy_error" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableDeployError(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetDeployError(*v)
	}
	return _u
}

// ClearDeployError clears the value of the "deploy_error" field.
func (_u *InstanceUpdate) ClearDeployError() *InstanceUpdate {
	_u.mutation.ClearDeployError()
	return _u
}

// SetLastHealthAt sets the "last_health_at" field.
func (_u *InstanceUpdate) SetLastHealthAt(v time.Time) *InstanceUpdate {
	_u.mutation.SetLastHealthAt(v)
	return _u
}

// SetNillableLastHealthAt sets the "last_health_at" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableLastHealthAt(v *time.Time) *InstanceUpdate {
	if v != nil {
		_u.SetLastHealthAt(*v)
	}
	return _u
}

// ClearLastHealthAt clears the value of the "last_health_at" field.
func (_u *InstanceUpdate) ClearLastHealthAt() *InstanceUpdate {
	_u.mutation.ClearLastHealthAt()
	return _u
}

// SetDeploymentID sets the "deployment" edge to the Deployment entity by ID.
func (_u *InstanceUpdate) SetDeploymentID(id string) *InstanceUpdate {
	_u.mutation.SetDeploymentID(id)
	return _u
}

// SetNillableDeploymentID sets the "deployment" edge to the Deployment entity by ID if the given value is not nil.
func (_u *InstanceUpdate) SetNillableDeploymentID(id *string) *InstanceUpdate {
	if id != nil {
		_u = _u.SetDeploymentID(*id)
	}
	return _u
}

// SetDeployment sets the "deployment" edge to the Deployment entity.
func (_u *InstanceUpdate) SetDeployment(v *Deployment) *InstanceUpdate {
	return _u.SetDeploymentID(v.ID)
}

// Mutation returns the InstanceMutation object of the builder.
func (_u *InstanceUpdate) Mutation() *InstanceMutation {
	return _u.mutation
}

// ClearDeployment clears the "deployment" edge to the Deployment entity.
func (_u *InstanceUpdate) ClearDeployment() *InstanceUpdate {
	_u.mutation.ClearDeployment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstanceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := instance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Instance.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeployState(); ok {
		if err := instance.DeployStateValidator(v); err != nil {
			return &ValidationError{Name: "deploy_state", err: fmt.Errorf(`ent: validator failed for field "Instance.deploy_state": %w`, err)}
		}
	}
	return nil
}

func (_u *InstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instance.Table, instance.Columns, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subdomain(); ok {
		_spec.SetField(instance.FieldSubdomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContainerName(); ok {
		_spec.SetField(instance.FieldContainerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(instance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeployRing(); ok {
		_spec.SetField(instance.FieldDeployRing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeployRing(); ok {
		_spec.AddField(instance.FieldDeployRing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeployState(); ok {
		_spec.SetField(instance.FieldDeployState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentImage(); ok {
		_spec.SetField(instance.FieldCurrentImage, field.TypeString, value)
	}
	if _u.mutation.CurrentImageCleared() {
		_spec.ClearField(instance.FieldCurrentImage, field.TypeString)
	}
	if value, ok := _u.mutation.LastHealthyImage(); ok {
		_spec.SetField(instance.FieldLastHealthyImage, field.TypeString, value)
	}
	if _u.mutation.LastHealthyImageCleared() {
		_spec.ClearField(instance.FieldLastHealthyImage, field.TypeString)
	}
	if value, ok := _u.mutation.ImageDigest(); ok {
		_spec.SetField(instance.FieldImageDigest, field.TypeString, value)
	}
	if _u.mutation.ImageDigestCleared() {
		_spec.ClearField(instance.FieldImageDigest, field.TypeString)
	}
	if value, ok := _u.mutation.DeployError(); ok {
		_spec.SetField(instance.FieldDeployError, field.TypeString, value)
	}
	if _u.mutation.DeployErrorCleared() {
		_spec.ClearField(instance.FieldDeployError, field.TypeString)
	}
	if value, ok := _u.mutation.LastHealthAt(); ok {
		_spec.SetField(instance.FieldLastHealthAt, field.TypeTime, value)
	}
	if _u.mutation.LastHealthAtCleared() {
		_spec.ClearField(instance.FieldLastHealthAt, field.TypeTime)
	}
	if _u.mutation.DeploymentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstanceUpdateOne is the builder for updating a single Instance entity.
type InstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstanceMutation
}

// SetSubdomain sets the "subdomain" field.
func (_u *InstanceUpdateOne) SetSubdomain(v string) *InstanceUpdateOne {
	_u.mutation.SetSubdomain(v)
	return _u
}

// SetNillableSubdomain sets the "subdomain" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableSubdomain(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetSubdomain(*v)
	}
	return _u
}

// SetContainerName sets the "container_name" field.
func (_u *InstanceUpdateOne) SetContainerName(v string) *InstanceUpdateOne {
	_u.mutation.SetContainerName(v)
	return _u
}

// SetNillableContainerName sets the "container_name" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableContainerName(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetContainerName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InstanceUpdateOne) SetStatus(v instance.Status) *InstanceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableStatus(v *instance.Status) *InstanceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeployRing sets the "deploy_ring" field.
func (_u *InstanceUpdateOne) SetDeployRing(v int) *InstanceUpdateOne {
	_u.mutation.ResetDeployRing()
	_u.mutation.SetDeployRing(v)
	return _u
}

// SetNillableDeployRing sets the "deploy_ring" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableDeployRing(v *int) *InstanceUpdateOne {
	if v != nil {
		_u.SetDeployRing(*v)
	}
	return _u
}

// AddDeployRing adds value to the "deploy_ring" field.
func (_u *InstanceUpdateOne) AddDeployRing(v int) *InstanceUpdateOne {
	_u.mutation.AddDeployRing(v)
	return _u
}

// SetDeployState sets the "deploy_state" field.
func (_u *InstanceUpdateOne) SetDeployState(v instance.DeployState) *InstanceUpdateOne {
	_u.mutation.SetDeployState(v)
	return _u
}

// SetNillableDeployState sets the "deploy_state" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableDeployState(v *instance.DeployState) *InstanceUpdateOne {
	if v != nil {
		_u.SetDeployState(*v)
	}
	return _u
}

// SetCurrentImage sets the "current_image" field.
func (_u *InstanceUpdateOne) SetCurrentImage(v string) *InstanceUpdateOne {
	_u.mutation.SetCurrentImage(v)
	return _u
}

// SetNillableCurrentImage sets the "current_image" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableCurrentImage(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetCurrentImage(*v)
	}
	return _u
}

// ClearCurrentImage clears the value of the "current_image" field.
func (_u *InstanceUpdateOne) ClearCurrentImage() *InstanceUpdateOne {
	_u.mutation.ClearCurrentImage()
	return _u
}

// SetLastHealthyImage sets the "last_healthy_image" field.
func (_u *InstanceUpdateOne) SetLastHealthyImage(v string) *InstanceUpdateOne {
	_u.mutation.SetLastHealthyImage(v)
	return _u
}

// SetNillableLastHealthyImage sets the "last_healthy_image" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableLastHealthyImage(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetLastHealthyImage(*v)
	}
	return _u
}

// ClearLastHealthyImage clears the value of the "last_healthy_image" field.
func (_u *InstanceUpdateOne) ClearLastHealthyImage() *InstanceUpdateOne {
	_u.mutation.ClearLastHealthyImage()
	return _u
}

// SetImageDigest sets the "image_digest" field.
func (_u *InstanceUpdateOne) SetImageDigest(v string) *InstanceUpdateOne {
	_u.mutation.SetImageDigest(v)
	return _u
}

// SetNillableImageDigest sets the "image_digest" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableImageDigest(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetImageDigest(*v)
	}
	return _u
}

// ClearImageDigest clears the value of the "image_digest" field.
func (_u *InstanceUpdateOne) ClearImageDigest() *InstanceUpdateOne {
	_u.mutation.ClearImageDigest()
	return _u
}

// SetDeployID sets the "deploy_id" field.
func (_u *InstanceUpdateOne) SetDeployID(v string) *InstanceUpdateOne {
	_u.mutation.SetDeployID(v)
	return _u
}

// SetNillableDeployID sets the "deploy_id" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableDeployID(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetDeployID(*v)
	}
	return _u
}

// ClearDeployID clears the value of the "deploy_id" field.
func (_u *InstanceUpdateOne) ClearDeployID() *InstanceUpdateOne {
	_u.mutation.ClearDeployID()
	return _u
}

// SetDeployError sets the "deploy_error" field.
func (_u *InstanceUpdateOne) SetDeployError(v string) *InstanceUpdateOne {
	_u.mutation.SetDeployError(v)
	return _u
}

// SetNillableDeployError sets the "deploy_error" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableDeployError(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetDeployError(*v)
	}
	return _u
}

// ClearDeployError clears the value of the "deploy_error" field.
func (_u *InstanceUpdateOne) ClearDeployError() *InstanceUpdateOne {
	_u.mutation.ClearDeployError()
	return _u
}

// SetLastHealthAt sets the "last_health_at" field.
func (_u *InstanceUpdateOne) SetLastHealthAt(v time.Time) *InstanceUpdateOne {
	_u.mutation.SetLastHealthAt(v)
	return _u
}

// SetNillableLastHealthAt sets the "last_health_at" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableLastHealthAt(v *time.Time) *InstanceUpdateOne {
	if v != nil {
		_u.SetLastHealthAt(*v)
	}
	return _u
}

// ClearLastHealthAt clears the value of the "last_health_at" field.
func (_u *InstanceUpdateOne) ClearLastHealthAt() *InstanceUpdateOne {
	_u.mutation.ClearLastHealthAt()
	return _u
}

// SetDeploymentID sets the "deployment" edge to the Deployment entity by ID.
func (_u *InstanceUpdateOne) SetDeploymentID(id string) *InstanceUpdateOne {
	_u.mutation.SetDeploymentID(id)
	return _u
}

// SetNillableDeploymentID sets the "deployment" edge to the Deployment entity by ID if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableDeploymentID(id *string) *InstanceUpdateOne {
	if id != nil {
		_u = _u.SetDeploymentID(*id)
	}
	return _u
}

// SetDeployment sets the "deployment" edge to the Deployment entity.
func (_u *InstanceUpdateOne) SetDeployment(v *Deployment) *InstanceUpdateOne {
	return _u.SetDeploymentID(v.ID)
}

// Mutation returns the InstanceMutation object of the builder.
func (_u *InstanceUpdateOne) Mutation() *InstanceMutation {
	return _u.mutation
}

// ClearDeployment clears the "deployment" edge to the Deployment entity.
func (_u *InstanceUpdateOne) ClearDeployment() *InstanceUpdateOne {
	_u.mutation.ClearDeployment()
	return _u
}

// Where appends a list predicates to the InstanceUpdate builder.
func (_u *InstanceUpdateOne) Where(ps ...predicate.Instance) *InstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstanceUpdateOne) Select(field string, fields ...string) *InstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Instance entity.
func (_u *InstanceUpdateOne) Save(ctx context.Context) (*Instance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstanceUpdateOne) SaveX(ctx context.Context) *Instance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstanceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := instance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Instance.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeployState(); ok {
		if err := instance.DeployStateValidator(v); err != nil {
			return &ValidationError{Name: "deploy_state", err: fmt.Errorf(`ent: validator failed for field "Instance.deploy_state": %w`, err)}
		}
	}
	return nil
}

func (_u *InstanceUpdateOne) sqlSave(ctx context.Context) (_node *Instance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instance.Table, instance.Columns, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Instance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instance.FieldID)
		for _, f := range fields {
			if !instance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != instance.FieldID {
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
	if value, ok := _u.mutation.Subdomain(); ok {
		_spec.SetField(instance.FieldSubdomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContainerName(); ok {
		_spec.SetField(instance.FieldContainerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(instance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeployRing(); ok {
		_spec.SetField(instance.FieldDeployRing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeployRing(); ok {
		_spec.AddField(instance.FieldDeployRing, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeployState(); ok {
		_spec.SetField(instance.FieldDeployState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentImage(); ok {
		_spec.SetField(instance.FieldCurrentImage, field.TypeString, value)
	}
	if _u.mutation.CurrentImageCleared() {
		_spec.ClearField(instance.FieldCurrentImage, field.TypeString)
	}
	if value, ok := _u.mutation.LastHealthyImage(); ok {
		_spec.SetField(instance.FieldLastHealthyImage, field.TypeString, value)
	}
	if _u.mutation.LastHealthyImageCleared() {
		_spec.ClearField(instance.FieldLastHealthyImage, field.TypeString)
	}
	if value, ok := _u.mutation.ImageDigest(); ok {
		_spec.SetField(instance.FieldImageDigest, field.TypeString, value)
	}
	if _u.mutation.ImageDigestCleared() {
		_spec.ClearField(instance.FieldImageDigest, field.TypeString)
	}
	if value, ok := _u.mutation.DeployError(); ok {
		_spec.SetField(instance.FieldDeployError, field.TypeString, value)
	}
	if _u.mutation.DeployErrorCleared() {
		_spec.ClearField(instance.FieldDeployError, field.TypeString)
	}
	if value, ok := _u.mutation.LastHealthAt(); ok {
		_spec.SetField(instance.FieldLastHealthAt, field.TypeTime, value)
	}
	if _u.mutation.LastHealthAtCleared() {
		_spec.ClearField(instance.FieldLastHealthAt, field.TypeTime)
	}
	if _u.mutation.DeploymentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Instance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
