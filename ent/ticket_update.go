// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/forge/ent/predicate"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/ent/ticketevent"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TicketUpdate) SetProjectID(v string) *TicketUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableProjectID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetBuildID sets the "build_id" field.
func (_u *TicketUpdate) SetBuildID(v string) *TicketUpdate {
	_u.mutation.SetBuildID(v)
	return _u
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableBuildID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetBuildID(*v)
	}
	return _u
}

// ClearBuildID clears the value of the "build_id" field.
func (_u *TicketUpdate) ClearBuildID() *TicketUpdate {
	_u.mutation.ClearBuildID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdate) SetTitle(v string) *TicketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTitle(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdate) SetDescription(v string) *TicketUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TicketUpdate) ClearDescription() *TicketUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *TicketUpdate) SetAcceptanceCriteria(v string) *TicketUpdate {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// SetNillableAcceptanceCriteria sets the "acceptance_criteria" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAcceptanceCriteria(v *string) *TicketUpdate {
	if v != nil {
		_u.SetAcceptanceCriteria(*v)
	}
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *TicketUpdate) ClearAcceptanceCriteria() *TicketUpdate {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetState sets the "state" field.
func (_u *TicketUpdate) SetState(v ticket.State) *TicketUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableState(v *ticket.State) *TicketUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TicketUpdate) SetDependsOn(v []string) *TicketUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TicketUpdate) AppendDependsOn(v []string) *TicketUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TicketUpdate) ClearDependsOn() *TicketUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *TicketUpdate) SetAssigneeID(v string) *TicketUpdate {
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAssigneeID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (_u *TicketUpdate) ClearAssigneeID() *TicketUpdate {
	_u.mutation.ClearAssigneeID()
	return _u
}

// SetAssigneeType sets the "assignee_type" field.
func (_u *TicketUpdate) SetAssigneeType(v ticket.AssigneeType) *TicketUpdate {
	_u.mutation.SetAssigneeType(v)
	return _u
}

// SetNillableAssigneeType sets the "assignee_type" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAssigneeType(v *ticket.AssigneeType) *TicketUpdate {
	if v != nil {
		_u.SetAssigneeType(*v)
	}
	return _u
}

// ClearAssigneeType clears the value of the "assignee_type" field.
func (_u *TicketUpdate) ClearAssigneeType() *TicketUpdate {
	_u.mutation.ClearAssigneeType()
	return _u
}

// SetVMID sets the "vm_id" field.
func (_u *TicketUpdate) SetVMID(v string) *TicketUpdate {
	_u.mutation.SetVMID(v)
	return _u
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableVMID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetVMID(*v)
	}
	return _u
}

// ClearVMID clears the value of the "vm_id" field.
func (_u *TicketUpdate) ClearVMID() *TicketUpdate {
	_u.mutation.ClearVMID()
	return _u
}

// SetEngineID sets the "engine_id" field.
func (_u *TicketUpdate) SetEngineID(v string) *TicketUpdate {
	_u.mutation.SetEngineID(v)
	return _u
}

// SetNillableEngineID sets the "engine_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableEngineID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetEngineID(*v)
	}
	return _u
}

// ClearEngineID clears the value of the "engine_id" field.
func (_u *TicketUpdate) ClearEngineID() *TicketUpdate {
	_u.mutation.ClearEngineID()
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *TicketUpdate) SetExecutionMode(v ticket.ExecutionMode) *TicketUpdate {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableExecutionMode(v *ticket.ExecutionMode) *TicketUpdate {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *TicketUpdate) SetWorkflowID(v string) *TicketUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableWorkflowID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *TicketUpdate) ClearWorkflowID() *TicketUpdate {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetSize sets the "size" field.
func (_u *TicketUpdate) SetSize(v ticket.Size) *TicketUpdate {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableSize(v *ticket.Size) *TicketUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TicketUpdate) SetBranchName(v string) *TicketUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableBranchName(v *string) *TicketUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TicketUpdate) ClearBranchName() *TicketUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TicketUpdate) SetPrURL(v string) *TicketUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePrURL(v *string) *TicketUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TicketUpdate) ClearPrURL() *TicketUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TicketUpdate) SetRetryCount(v int) *TicketUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRetryCount(v *int) *TicketUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TicketUpdate) AddRetryCount(v int) *TicketUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetRejectionCount sets the "rejection_count" field.
func (_u *TicketUpdate) SetRejectionCount(v int) *TicketUpdate {
	_u.mutation.ResetRejectionCount()
	_u.mutation.SetRejectionCount(v)
	return _u
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRejectionCount(v *int) *TicketUpdate {
	if v != nil {
		_u.SetRejectionCount(*v)
	}
	return _u
}

// AddRejectionCount adds value to the "rejection_count" field.
func (_u *TicketUpdate) AddRejectionCount(v int) *TicketUpdate {
	_u.mutation.AddRejectionCount(v)
	return _u
}

// SetRetryStrategy sets the "retry_strategy" field.
func (_u *TicketUpdate) SetRetryStrategy(v map[string]interface{}) *TicketUpdate {
	_u.mutation.SetRetryStrategy(v)
	return _u
}

// ClearRetryStrategy clears the value of the "retry_strategy" field.
func (_u *TicketUpdate) ClearRetryStrategy() *TicketUpdate {
	_u.mutation.ClearRetryStrategy()
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *TicketUpdate) SetVerificationStatus(v ticket.VerificationStatus) *TicketUpdate {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableVerificationStatus(v *ticket.VerificationStatus) *TicketUpdate {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// ClearVerificationStatus clears the value of the "verification_status" field.
func (_u *TicketUpdate) ClearVerificationStatus() *TicketUpdate {
	_u.mutation.ClearVerificationStatus()
	return _u
}

// SetHoldReason sets the "hold_reason" field.
func (_u *TicketUpdate) SetHoldReason(v string) *TicketUpdate {
	_u.mutation.SetHoldReason(v)
	return _u
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableHoldReason(v *string) *TicketUpdate {
	if v != nil {
		_u.SetHoldReason(*v)
	}
	return _u
}

// ClearHoldReason clears the value of the "hold_reason" field.
func (_u *TicketUpdate) ClearHoldReason() *TicketUpdate {
	_u.mutation.ClearHoldReason()
	return _u
}

// SetError sets the "error" field.
func (_u *TicketUpdate) SetError(v string) *TicketUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableError(v *string) *TicketUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TicketUpdate) ClearError() *TicketUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *TicketUpdate) SetInputs(v map[string]interface{}) *TicketUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *TicketUpdate) ClearInputs() *TicketUpdate {
	_u.mutation.ClearInputs()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *TicketUpdate) SetOutputs(v map[string]interface{}) *TicketUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *TicketUpdate) ClearOutputs() *TicketUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TicketUpdate) SetMetadata(v map[string]interface{}) *TicketUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TicketUpdate) ClearMetadata() *TicketUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TicketUpdate) SetStartedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStartedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TicketUpdate) ClearStartedAt() *TicketUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TicketUpdate) SetCompletedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCompletedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TicketUpdate) ClearCompletedAt() *TicketUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *TicketUpdate) SetLastHeartbeat(v time.Time) *TicketUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableLastHeartbeat(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *TicketUpdate) ClearLastHeartbeat() *TicketUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetLeaseExpires sets the "lease_expires" field.
func (_u *TicketUpdate) SetLeaseExpires(v time.Time) *TicketUpdate {
	_u.mutation.SetLeaseExpires(v)
	return _u
}

// SetNillableLeaseExpires sets the "lease_expires" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableLeaseExpires(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetLeaseExpires(*v)
	}
	return _u
}

// ClearLeaseExpires clears the value of the "lease_expires" field.
func (_u *TicketUpdate) ClearLeaseExpires() *TicketUpdate {
	_u.mutation.ClearLeaseExpires()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *TicketUpdate) SetProject(v *Project) *TicketUpdate {
	return _u.SetProjectID(v.ID)
}

// AddArtifactIDs adds the "artifacts" edge to the TicketArtifact entity by IDs.
func (_u *TicketUpdate) AddArtifactIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the TicketArtifact entity.
func (_u *TicketUpdate) AddArtifacts(v ...*TicketArtifact) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the TicketEvent entity by IDs.
func (_u *TicketUpdate) AddEventIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TicketEvent entity.
func (_u *TicketUpdate) AddEvents(v ...*TicketEvent) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *TicketUpdate) ClearProject() *TicketUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearArtifacts clears all "artifacts" edges to the TicketArtifact entity.
func (_u *TicketUpdate) ClearArtifacts() *TicketUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to TicketArtifact entities by IDs.
func (_u *TicketUpdate) RemoveArtifactIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to TicketArtifact entities.
func (_u *TicketUpdate) RemoveArtifacts(v ...*TicketArtifact) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearEvents clears all "events" edges to the TicketEvent entity.
func (_u *TicketUpdate) ClearEvents() *TicketUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TicketEvent entities by IDs.
func (_u *TicketUpdate) RemoveEventIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TicketEvent entities.
func (_u *TicketUpdate) RemoveEvents(v ...*TicketEvent) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeType(); ok {
		if err := ticket.AssigneeTypeValidator(v); err != nil {
			return &ValidationError{Name: "assignee_type", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionMode(); ok {
		if err := ticket.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Ticket.execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Size(); ok {
		if err := ticket.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "Ticket.size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := ticket.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.verification_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ticket.project"`)
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BuildID(); ok {
		_spec.SetField(ticket.FieldBuildID, field.TypeString, value)
	}
	if _u.mutation.BuildIDCleared() {
		_spec.ClearField(ticket.FieldBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ticket.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeString, value)
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(ticket.FieldAcceptanceCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(ticket.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(ticket.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(ticket.FieldAssigneeID, field.TypeString, value)
	}
	if _u.mutation.AssigneeIDCleared() {
		_spec.ClearField(ticket.FieldAssigneeID, field.TypeString)
	}
	if value, ok := _u.mutation.AssigneeType(); ok {
		_spec.SetField(ticket.FieldAssigneeType, field.TypeEnum, value)
	}
	if _u.mutation.AssigneeTypeCleared() {
		_spec.ClearField(ticket.FieldAssigneeType, field.TypeEnum)
	}
	if value, ok := _u.mutation.VMID(); ok {
		_spec.SetField(ticket.FieldVMID, field.TypeString, value)
	}
	if _u.mutation.VMIDCleared() {
		_spec.ClearField(ticket.FieldVMID, field.TypeString)
	}
	if value, ok := _u.mutation.EngineID(); ok {
		_spec.SetField(ticket.FieldEngineID, field.TypeString, value)
	}
	if _u.mutation.EngineIDCleared() {
		_spec.ClearField(ticket.FieldEngineID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(ticket.FieldExecutionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(ticket.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(ticket.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(ticket.FieldSize, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(ticket.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(ticket.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectionCount(); ok {
		_spec.AddField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryStrategy(); ok {
		_spec.SetField(ticket.FieldRetryStrategy, field.TypeJSON, value)
	}
	if _u.mutation.RetryStrategyCleared() {
		_spec.ClearField(ticket.FieldRetryStrategy, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(ticket.FieldVerificationStatus, field.TypeEnum, value)
	}
	if _u.mutation.VerificationStatusCleared() {
		_spec.ClearField(ticket.FieldVerificationStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.HoldReason(); ok {
		_spec.SetField(ticket.FieldHoldReason, field.TypeString, value)
	}
	if _u.mutation.HoldReasonCleared() {
		_spec.ClearField(ticket.FieldHoldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(ticket.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(ticket.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(ticket.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(ticket.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(ticket.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(ticket.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(ticket.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(ticket.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ticket.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(ticket.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(ticket.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(ticket.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(ticket.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(ticket.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseExpires(); ok {
		_spec.SetField(ticket.FieldLeaseExpires, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresCleared() {
		_spec.ClearField(ticket.FieldLeaseExpires, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetProjectID sets the "project_id" field.
func (_u *TicketUpdateOne) SetProjectID(v string) *TicketUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableProjectID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetBuildID sets the "build_id" field.
func (_u *TicketUpdateOne) SetBuildID(v string) *TicketUpdateOne {
	_u.mutation.SetBuildID(v)
	return _u
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableBuildID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetBuildID(*v)
	}
	return _u
}

// ClearBuildID clears the value of the "build_id" field.
func (_u *TicketUpdateOne) ClearBuildID() *TicketUpdateOne {
	_u.mutation.ClearBuildID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdateOne) SetTitle(v string) *TicketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTitle(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdateOne) SetDescription(v string) *TicketUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TicketUpdateOne) ClearDescription() *TicketUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *TicketUpdateOne) SetAcceptanceCriteria(v string) *TicketUpdateOne {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// SetNillableAcceptanceCriteria sets the "acceptance_criteria" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAcceptanceCriteria(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetAcceptanceCriteria(*v)
	}
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *TicketUpdateOne) ClearAcceptanceCriteria() *TicketUpdateOne {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetState sets the "state" field.
func (_u *TicketUpdateOne) SetState(v ticket.State) *TicketUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableState(v *ticket.State) *TicketUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TicketUpdateOne) SetDependsOn(v []string) *TicketUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TicketUpdateOne) AppendDependsOn(v []string) *TicketUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TicketUpdateOne) ClearDependsOn() *TicketUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *TicketUpdateOne) SetAssigneeID(v string) *TicketUpdateOne {
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAssigneeID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (_u *TicketUpdateOne) ClearAssigneeID() *TicketUpdateOne {
	_u.mutation.ClearAssigneeID()
	return _u
}

// SetAssigneeType sets the "assignee_type" field.
func (_u *TicketUpdateOne) SetAssigneeType(v ticket.AssigneeType) *TicketUpdateOne {
	_u.mutation.SetAssigneeType(v)
	return _u
}

// SetNillableAssigneeType sets the "assignee_type" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAssigneeType(v *ticket.AssigneeType) *TicketUpdateOne {
	if v != nil {
		_u.SetAssigneeType(*v)
	}
	return _u
}

// ClearAssigneeType clears the value of the "assignee_type" field.
func (_u *TicketUpdateOne) ClearAssigneeType() *TicketUpdateOne {
	_u.mutation.ClearAssigneeType()
	return _u
}

// SetVMID sets the "vm_id" field.
func (_u *TicketUpdateOne) SetVMID(v string) *TicketUpdateOne {
	_u.mutation.SetVMID(v)
	return _u
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableVMID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetVMID(*v)
	}
	return _u
}

// ClearVMID clears the value of the "vm_id" field.
func (_u *TicketUpdateOne) ClearVMID() *TicketUpdateOne {
	_u.mutation.ClearVMID()
	return _u
}

// SetEngineID sets the "engine_id" field.
func (_u *TicketUpdateOne) SetEngineID(v string) *TicketUpdateOne {
	_u.mutation.SetEngineID(v)
	return _u
}

// SetNillableEngineID sets the "engine_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableEngineID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetEngineID(*v)
	}
	return _u
}

// ClearEngineID clears the value of the "engine_id" field.
func (_u *TicketUpdateOne) ClearEngineID() *TicketUpdateOne {
	_u.mutation.ClearEngineID()
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *TicketUpdateOne) SetExecutionMode(v ticket.ExecutionMode) *TicketUpdateOne {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableExecutionMode(v *ticket.ExecutionMode) *TicketUpdateOne {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *TicketUpdateOne) SetWorkflowID(v string) *TicketUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableWorkflowID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *TicketUpdateOne) ClearWorkflowID() *TicketUpdateOne {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetSize sets the "size" field.
func (_u *TicketUpdateOne) SetSize(v ticket.Size) *TicketUpdateOne {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableSize(v *ticket.Size) *TicketUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TicketUpdateOne) SetBranchName(v string) *TicketUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableBranchName(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TicketUpdateOne) ClearBranchName() *TicketUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TicketUpdateOne) SetPrURL(v string) *TicketUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePrURL(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TicketUpdateOne) ClearPrURL() *TicketUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TicketUpdateOne) SetRetryCount(v int) *TicketUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRetryCount(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TicketUpdateOne) AddRetryCount(v int) *TicketUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetRejectionCount sets the "rejection_count" field.
func (_u *TicketUpdateOne) SetRejectionCount(v int) *TicketUpdateOne {
	_u.mutation.ResetRejectionCount()
	_u.mutation.SetRejectionCount(v)
	return _u
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRejectionCount(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetRejectionCount(*v)
	}
	return _u
}

// AddRejectionCount adds value to the "rejection_count" field.
func (_u *TicketUpdateOne) AddRejectionCount(v int) *TicketUpdateOne {
	_u.mutation.AddRejectionCount(v)
	return _u
}

// SetRetryStrategy sets the "retry_strategy" field.
func (_u *TicketUpdateOne) SetRetryStrategy(v map[string]interface{}) *TicketUpdateOne {
	_u.mutation.SetRetryStrategy(v)
	return _u
}

// ClearRetryStrategy clears the value of the "retry_strategy" field.
func (_u *TicketUpdateOne) ClearRetryStrategy() *TicketUpdateOne {
	_u.mutation.ClearRetryStrategy()
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *TicketUpdateOne) SetVerificationStatus(v ticket.VerificationStatus) *TicketUpdateOne {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableVerificationStatus(v *ticket.VerificationStatus) *TicketUpdateOne {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// ClearVerificationStatus clears the value of the "verification_status" field.
func (_u *TicketUpdateOne) ClearVerificationStatus() *TicketUpdateOne {
	_u.mutation.ClearVerificationStatus()
	return _u
}

// SetHoldReason sets the "hold_reason" field.
func (_u *TicketUpdateOne) SetHoldReason(v string) *TicketUpdateOne {
	_u.mutation.SetHoldReason(v)
	return _u
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableHoldReason(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetHoldReason(*v)
	}
	return _u
}

// ClearHoldReason clears the value of the "hold_reason" field.
func (_u *TicketUpdateOne) ClearHoldReason() *TicketUpdateOne {
	_u.mutation.ClearHoldReason()
	return _u
}

// SetError sets the "error" field.
func (_u *TicketUpdateOne) SetError(v string) *TicketUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableError(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TicketUpdateOne) ClearError() *TicketUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *TicketUpdateOne) SetInputs(v map[string]interface{}) *TicketUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *TicketUpdateOne) ClearInputs() *TicketUpdateOne {
	_u.mutation.ClearInputs()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *TicketUpdateOne) SetOutputs(v map[string]interface{}) *TicketUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *TicketUpdateOne) ClearOutputs() *TicketUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TicketUpdateOne) SetMetadata(v map[string]interface{}) *TicketUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TicketUpdateOne) ClearMetadata() *TicketUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TicketUpdateOne) SetStartedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStartedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TicketUpdateOne) ClearStartedAt() *TicketUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TicketUpdateOne) SetCompletedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCompletedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TicketUpdateOne) ClearCompletedAt() *TicketUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *TicketUpdateOne) SetLastHeartbeat(v time.Time) *TicketUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableLastHeartbeat(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *TicketUpdateOne) ClearLastHeartbeat() *TicketUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetLeaseExpires sets the "lease_expires" field.
func (_u *TicketUpdateOne) SetLeaseExpires(v time.Time) *TicketUpdateOne {
	_u.mutation.SetLeaseExpires(v)
	return _u
}

// SetNillableLeaseExpires sets the "lease_expires" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableLeaseExpires(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetLeaseExpires(*v)
	}
	return _u
}

// ClearLeaseExpires clears the value of the "lease_expires" field.
func (_u *TicketUpdateOne) ClearLeaseExpires() *TicketUpdateOne {
	_u.mutation.ClearLeaseExpires()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *TicketUpdateOne) SetProject(v *Project) *TicketUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddArtifactIDs adds the "artifacts" edge to the TicketArtifact entity by IDs.
func (_u *TicketUpdateOne) AddArtifactIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the TicketArtifact entity.
func (_u *TicketUpdateOne) AddArtifacts(v ...*TicketArtifact) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the TicketEvent entity by IDs.
func (_u *TicketUpdateOne) AddEventIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TicketEvent entity.
func (_u *TicketUpdateOne) AddEvents(v ...*TicketEvent) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *TicketUpdateOne) ClearProject() *TicketUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearArtifacts clears all "artifacts" edges to the TicketArtifact entity.
func (_u *TicketUpdateOne) ClearArtifacts() *TicketUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to TicketArtifact entities by IDs.
func (_u *TicketUpdateOne) RemoveArtifactIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to TicketArtifact entities.
func (_u *TicketUpdateOne) RemoveArtifacts(v ...*TicketArtifact) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearEvents clears all "events" edges to the TicketEvent entity.
func (_u *TicketUpdateOne) ClearEvents() *TicketUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TicketEvent entities by IDs.
func (_u *TicketUpdateOne) RemoveEventIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TicketEvent entities.
func (_u *TicketUpdateOne) RemoveEvents(v ...*TicketEvent) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeType(); ok {
		if err := ticket.AssigneeTypeValidator(v); err != nil {
			return &ValidationError{Name: "assignee_type", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionMode(); ok {
		if err := ticket.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Ticket.execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Size(); ok {
		if err := ticket.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "Ticket.size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := ticket.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.verification_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ticket.project"`)
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
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
	if value, ok := _u.mutation.BuildID(); ok {
		_spec.SetField(ticket.FieldBuildID, field.TypeString, value)
	}
	if _u.mutation.BuildIDCleared() {
		_spec.ClearField(ticket.FieldBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ticket.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeString, value)
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(ticket.FieldAcceptanceCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(ticket.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(ticket.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(ticket.FieldAssigneeID, field.TypeString, value)
	}
	if _u.mutation.AssigneeIDCleared() {
		_spec.ClearField(ticket.FieldAssigneeID, field.TypeString)
	}
	if value, ok := _u.mutation.AssigneeType(); ok {
		_spec.SetField(ticket.FieldAssigneeType, field.TypeEnum, value)
	}
	if _u.mutation.AssigneeTypeCleared() {
		_spec.ClearField(ticket.FieldAssigneeType, field.TypeEnum)
	}
	if value, ok := _u.mutation.VMID(); ok {
		_spec.SetField(ticket.FieldVMID, field.TypeString, value)
	}
	if _u.mutation.VMIDCleared() {
		_spec.ClearField(ticket.FieldVMID, field.TypeString)
	}
	if value, ok := _u.mutation.EngineID(); ok {
		_spec.SetField(ticket.FieldEngineID, field.TypeString, value)
	}
	if _u.mutation.EngineIDCleared() {
		_spec.ClearField(ticket.FieldEngineID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(ticket.FieldExecutionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(ticket.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(ticket.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(ticket.FieldSize, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(ticket.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(ticket.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectionCount(); ok {
		_spec.AddField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryStrategy(); ok {
		_spec.SetField(ticket.FieldRetryStrategy, field.TypeJSON, value)
	}
	if _u.mutation.RetryStrategyCleared() {
		_spec.ClearField(ticket.FieldRetryStrategy, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(ticket.FieldVerificationStatus, field.TypeEnum, value)
	}
	if _u.mutation.VerificationStatusCleared() {
		_spec.ClearField(ticket.FieldVerificationStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.HoldReason(); ok {
		_spec.SetField(ticket.FieldHoldReason, field.TypeString, value)
	}
	if _u.mutation.HoldReasonCleared() {
		_spec.ClearField(ticket.FieldHoldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(ticket.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(ticket.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(ticket.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(ticket.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(ticket.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(ticket.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(ticket.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(ticket.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ticket.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(ticket.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(ticket.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(ticket.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(ticket.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(ticket.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseExpires(); ok {
		_spec.SetField(ticket.FieldLeaseExpires, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresCleared() {
		_spec.ClearField(ticket.FieldLeaseExpires, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
