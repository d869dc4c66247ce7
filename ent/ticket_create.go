// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/ent/ticketevent"
)

// TicketCreate is the builder for creating a Ticket entity.
type TicketCreate struct {
	config
	mutation *TicketMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TicketCreate) SetTenantID(v string) *TicketCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TicketCreate) SetProjectID(v string) *TicketCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetBuildID sets the "build_id" field.
func (_c *TicketCreate) SetBuildID(v string) *TicketCreate {
	_c.mutation.SetBuildID(v)
	return _c
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableBuildID(v *string) *TicketCreate {
	if v != nil {
		_c.SetBuildID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *TicketCreate) SetTitle(v string) *TicketCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TicketCreate) SetDescription(v string) *TicketCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDescription(v *string) *TicketCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_c *TicketCreate) SetAcceptanceCriteria(v string) *TicketCreate {
	_c.mutation.SetAcceptanceCriteria(v)
	return _c
}

// SetNillableAcceptanceCriteria sets the "acceptance_criteria" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAcceptanceCriteria(v *string) *TicketCreate {
	if v != nil {
		_c.SetAcceptanceCriteria(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *TicketCreate) SetState(v ticket.State) *TicketCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *TicketCreate) SetNillableState(v *ticket.State) *TicketCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *TicketCreate) SetDependsOn(v []string) *TicketCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetAssigneeID sets the "assignee_id" field.
func (_c *TicketCreate) SetAssigneeID(v string) *TicketCreate {
	_c.mutation.SetAssigneeID(v)
	return _c
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAssigneeID(v *string) *TicketCreate {
	if v != nil {
		_c.SetAssigneeID(*v)
	}
	return _c
}

// SetAssigneeType sets the "assignee_type" field.
func (_c *TicketCreate) SetAssigneeType(v ticket.AssigneeType) *TicketCreate {
	_c.mutation.SetAssigneeType(v)
	return _c
}

// SetNillableAssigneeType sets the "assignee_type" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAssigneeType(v *ticket.AssigneeType) *TicketCreate {
	if v != nil {
		_c.SetAssigneeType(*v)
	}
	return _c
}

// SetVMID sets the "vm_id" field.
func (_c *TicketCreate) SetVMID(v string) *TicketCreate {
	_c.mutation.SetVMID(v)
	return _c
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableVMID(v *string) *TicketCreate {
	if v != nil {
		_c.SetVMID(*v)
	}
	return _c
}

// SetEngineID sets the "engine_id" field.
func (_c *TicketCreate) SetEngineID(v string) *TicketCreate {
	_c.mutation.SetEngineID(v)
	return _c
}

// SetNillableEngineID sets the "engine_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableEngineID(v *string) *TicketCreate {
	if v != nil {
		_c.SetEngineID(*v)
	}
	return _c
}

// SetExecutionMode sets the "execution_mode" field.
func (_c *TicketCreate) SetExecutionMode(v ticket.ExecutionMode) *TicketCreate {
	_c.mutation.SetExecutionMode(v)
	return _c
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_c *TicketCreate) SetNillableExecutionMode(v *ticket.ExecutionMode) *TicketCreate {
	if v != nil {
		_c.SetExecutionMode(*v)
	}
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *TicketCreate) SetWorkflowID(v string) *TicketCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableWorkflowID(v *string) *TicketCreate {
	if v != nil {
		_c.SetWorkflowID(*v)
	}
	return _c
}

// SetSize sets the "size" field.
func (_c *TicketCreate) SetSize(v ticket.Size) *TicketCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *TicketCreate) SetNillableSize(v *ticket.Size) *TicketCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *TicketCreate) SetBranchName(v string) *TicketCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *TicketCreate) SetNillableBranchName(v *string) *TicketCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *TicketCreate) SetPrURL(v string) *TicketCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *TicketCreate) SetNillablePrURL(v *string) *TicketCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TicketCreate) SetRetryCount(v int) *TicketCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRetryCount(v *int) *TicketCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetRejectionCount sets the "rejection_count" field.
func (_c *TicketCreate) SetRejectionCount(v int) *TicketCreate {
	_c.mutation.SetRejectionCount(v)
	return _c
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRejectionCount(v *int) *TicketCreate {
	if v != nil {
		_c.SetRejectionCount(*v)
	}
	return _c
}

// SetRetryStrategy sets the "retry_strategy" field.
func (_c *TicketCreate) SetRetryStrategy(v map[string]interface{}) *TicketCreate {
	_c.mutation.SetRetryStrategy(v)
	return _c
}

// SetVerificationStatus sets the "verification_status" field.
func (_c *TicketCreate) SetVerificationStatus(v ticket.VerificationStatus) *TicketCreate {
	_c.mutation.SetVerificationStatus(v)
	return _c
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_c *TicketCreate) SetNillableVerificationStatus(v *ticket.VerificationStatus) *TicketCreate {
	if v != nil {
		_c.SetVerificationStatus(*v)
	}
	return _c
}

// SetHoldReason sets the "hold_reason" field.
func (_c *TicketCreate) SetHoldReason(v string) *TicketCreate {
	_c.mutation.SetHoldReason(v)
	return _c
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_c *TicketCreate) SetNillableHoldReason(v *string) *TicketCreate {
	if v != nil {
		_c.SetHoldReason(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *TicketCreate) SetError(v string) *TicketCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *TicketCreate) SetNillableError(v *string) *TicketCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *TicketCreate) SetInputs(v map[string]interface{}) *TicketCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *TicketCreate) SetOutputs(v map[string]interface{}) *TicketCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *TicketCreate) SetMetadata(v map[string]interface{}) *TicketCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TicketCreate) SetStartedAt(v time.Time) *TicketCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableStartedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TicketCreate) SetCompletedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCompletedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *TicketCreate) SetLastHeartbeat(v time.Time) *TicketCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *TicketCreate) SetNillableLastHeartbeat(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetLeaseExpires sets the "lease_expires" field.
func (_c *TicketCreate) SetLeaseExpires(v time.Time) *TicketCreate {
	_c.mutation.SetLeaseExpires(v)
	return _c
}

// SetNillableLeaseExpires sets the "lease_expires" field if the given value is not nil.
func (_c *TicketCreate) SetNillableLeaseExpires(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetLeaseExpires(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCreate) SetCreatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCreatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TicketCreate) SetUpdatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpdatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketCreate) SetID(v string) *TicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TicketCreate) SetProject(v *Project) *TicketCreate {
	return _c.SetProjectID(v.ID)
}

// AddArtifactIDs adds the "artifacts" edge to the TicketArtifact entity by IDs.
func (_c *TicketCreate) AddArtifactIDs(ids ...string) *TicketCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the TicketArtifact entity.
func (_c *TicketCreate) AddArtifacts(v ...*TicketArtifact) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the TicketEvent entity by IDs.
func (_c *TicketCreate) AddEventIDs(ids ...string) *TicketCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the TicketEvent entity.
func (_c *TicketCreate) AddEvents(v ...*TicketEvent) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_c *TicketCreate) Mutation() *TicketMutation {
	return _c.mutation
}

// Save creates the Ticket in the database.
func (_c *TicketCreate) Save(ctx context.Context) (*Ticket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCreate) SaveX(ctx context.Context) *Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := ticket.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.ExecutionMode(); !ok {
		v := ticket.DefaultExecutionMode
		_c.mutation.SetExecutionMode(v)
	}
	if _, ok := _c.mutation.Size(); !ok {
		v := ticket.DefaultSize
		_c.mutation.SetSize(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := ticket.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.RejectionCount(); !ok {
		v := ticket.DefaultRejectionCount
		_c.mutation.SetRejectionCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Ticket.tenant_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Ticket.project_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Ticket.title"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Ticket.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AssigneeType(); ok {
		if err := ticket.AssigneeTypeValidator(v); err != nil {
			return &ValidationError{Name: "assignee_type", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionMode(); !ok {
		return &ValidationError{Name: "execution_mode", err: errors.New(`ent: missing required field "Ticket.execution_mode"`)}
	}
	if v, ok := _c.mutation.ExecutionMode(); ok {
		if err := ticket.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Ticket.execution_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "Ticket.size"`)}
	}
	if v, ok := _c.mutation.Size(); ok {
		if err := ticket.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "Ticket.size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Ticket.retry_count"`)}
	}
	if _, ok := _c.mutation.RejectionCount(); !ok {
		return &ValidationError{Name: "rejection_count", err: errors.New(`ent: missing required field "Ticket.rejection_count"`)}
	}
	if v, ok := _c.mutation.VerificationStatus(); ok {
		if err := ticket.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.verification_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ticket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ticket.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Ticket.project"`)}
	}
	return nil
}

func (_c *TicketCreate) sqlSave(ctx context.Context) (*Ticket, error) {
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
			return nil, fmt.Errorf("unexpected Ticket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCreate) createSpec() (*Ticket, *sqlgraph.CreateSpec) {
	var (
		_node = &Ticket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticket.Table, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(ticket.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.BuildID(); ok {
		_spec.SetField(ticket.FieldBuildID, field.TypeString, value)
		_node.BuildID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeString, value)
		_node.AcceptanceCriteria = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(ticket.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.AssigneeID(); ok {
		_spec.SetField(ticket.FieldAssigneeID, field.TypeString, value)
		_node.AssigneeID = &value
	}
	if value, ok := _c.mutation.AssigneeType(); ok {
		_spec.SetField(ticket.FieldAssigneeType, field.TypeEnum, value)
		_node.AssigneeType = &value
	}
	if value, ok := _c.mutation.VMID(); ok {
		_spec.SetField(ticket.FieldVMID, field.TypeString, value)
		_node.VMID = &value
	}
	if value, ok := _c.mutation.EngineID(); ok {
		_spec.SetField(ticket.FieldEngineID, field.TypeString, value)
		_node.EngineID = &value
	}
	if value, ok := _c.mutation.ExecutionMode(); ok {
		_spec.SetField(ticket.FieldExecutionMode, field.TypeEnum, value)
		_node.ExecutionMode = value
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(ticket.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = &value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(ticket.FieldSize, field.TypeEnum, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
		_node.BranchName = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
		_node.RejectionCount = value
	}
	if value, ok := _c.mutation.RetryStrategy(); ok {
		_spec.SetField(ticket.FieldRetryStrategy, field.TypeJSON, value)
		_node.RetryStrategy = value
	}
	if value, ok := _c.mutation.VerificationStatus(); ok {
		_spec.SetField(ticket.FieldVerificationStatus, field.TypeEnum, value)
		_node.VerificationStatus = &value
	}
	if value, ok := _c.mutation.HoldReason(); ok {
		_spec.SetField(ticket.FieldHoldReason, field.TypeString, value)
		_node.HoldReason = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(ticket.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(ticket.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(ticket.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(ticket.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ticket.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(ticket.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(ticket.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.LeaseExpires(); ok {
		_spec.SetField(ticket.FieldLeaseExpires, field.TypeTime, value)
		_node.LeaseExpires = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticket.ProjectTable,
			Columns: []string{ticket.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.ArtifactsTable,
			Columns: []string{ticket.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticketartifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.EventsTable,
			Columns: []string{ticket.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticketevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TicketCreateBulk is the builder for creating many Ticket entities in bulk.
type TicketCreateBulk struct {
	config
	err      error
	builders []*TicketCreate
}

// Save creates the Ticket entities in the database.
func (_c *TicketCreateBulk) Save(ctx context.Context) ([]*Ticket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ticket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMutation)
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
func (_c *TicketCreateBulk) SaveX(ctx context.Context) []*Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
