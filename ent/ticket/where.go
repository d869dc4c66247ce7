// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTenantID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProjectID, v))
}

// BuildID applies equality check predicate on the "build_id" field. It's identical to BuildIDEQ.
func BuildID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldBuildID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// AcceptanceCriteria applies equality check predicate on the "acceptance_criteria" field. It's identical to AcceptanceCriteriaEQ.
func AcceptanceCriteria(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAcceptanceCriteria, v))
}

// AssigneeID applies equality check predicate on the "assignee_id" field. It's identical to AssigneeIDEQ.
func AssigneeID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAssigneeID, v))
}

// VMID applies equality check predicate on the "vm_id" field. It's identical to VMIDEQ.
func VMID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldVMID, v))
}

// EngineID applies equality check predicate on the "engine_id" field. It's identical to EngineIDEQ.
func EngineID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldEngineID, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldWorkflowID, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldBranchName, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldPrURL, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryCount, v))
}

// RejectionCount applies equality check predicate on the "rejection_count" field. It's identical to RejectionCountEQ.
func RejectionCount(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRejectionCount, v))
}

// HoldReason applies equality check predicate on the "hold_reason" field. It's identical to HoldReasonEQ.
func HoldReason(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldHoldReason, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldError, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LeaseExpires applies equality check predicate on the "lease_expires" field. It's identical to LeaseExpiresEQ.
func LeaseExpires(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLeaseExpires, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTenantID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldProjectID, v))
}

// BuildIDEQ applies the EQ predicate on the "build_id" field.
func BuildIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldBuildID, v))
}

// BuildIDNEQ applies the NEQ predicate on the "build_id" field.
func BuildIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldBuildID, v))
}

// BuildIDIn applies the In predicate on the "build_id" field.
func BuildIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldBuildID, vs...))
}

// BuildIDNotIn applies the NotIn predicate on the "build_id" field.
func BuildIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldBuildID, vs...))
}

// BuildIDGT applies the GT predicate on the "build_id" field.
func BuildIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldBuildID, v))
}

// BuildIDGTE applies the GTE predicate on the "build_id" field.
func BuildIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldBuildID, v))
}

// BuildIDLT applies the LT predicate on the "build_id" field.
func BuildIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldBuildID, v))
}

// BuildIDLTE applies the LTE predicate on the "build_id" field.
func BuildIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldBuildID, v))
}

// BuildIDContains applies the Contains predicate on the "build_id" field.
func BuildIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldBuildID, v))
}

// BuildIDHasPrefix applies the HasPrefix predicate on the "build_id" field.
func BuildIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldBuildID, v))
}

// BuildIDHasSuffix applies the HasSuffix predicate on the "build_id" field.
func BuildIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldBuildID, v))
}

// BuildIDIsNil applies the IsNil predicate on the "build_id" field.
func BuildIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldBuildID))
}

// BuildIDNotNil applies the NotNil predicate on the "build_id" field.
func BuildIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldBuildID))
}

// BuildIDEqualFold applies the EqualFold predicate on the "build_id" field.
func BuildIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldBuildID, v))
}

// BuildIDContainsFold applies the ContainsFold predicate on the "build_id" field.
func BuildIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldBuildID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldDescription, v))
}

// AcceptanceCriteriaEQ applies the EQ predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaNEQ applies the NEQ predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaIn applies the In predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldAcceptanceCriteria, vs...))
}

// AcceptanceCriteriaNotIn applies the NotIn predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldAcceptanceCriteria, vs...))
}

// AcceptanceCriteriaGT applies the GT predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaGTE applies the GTE predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaLT applies the LT predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaLTE applies the LTE predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaContains applies the Contains predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaHasPrefix applies the HasPrefix predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaHasSuffix applies the HasSuffix predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaIsNil applies the IsNil predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldAcceptanceCriteria))
}

// AcceptanceCriteriaNotNil applies the NotNil predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldAcceptanceCriteria))
}

// AcceptanceCriteriaEqualFold applies the EqualFold predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaContainsFold applies the ContainsFold predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldAcceptanceCriteria, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldState, vs...))
}

// DependsOnIsNil applies the IsNil predicate on the "depends_on" field.
func DependsOnIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldDependsOn))
}

// DependsOnNotNil applies the NotNil predicate on the "depends_on" field.
func DependsOnNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldDependsOn))
}

// AssigneeIDEQ applies the EQ predicate on the "assignee_id" field.
func AssigneeIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAssigneeID, v))
}

// AssigneeIDNEQ applies the NEQ predicate on the "assignee_id" field.
func AssigneeIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldAssigneeID, v))
}

// AssigneeIDIn applies the In predicate on the "assignee_id" field.
func AssigneeIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldAssigneeID, vs...))
}

// AssigneeIDNotIn applies the NotIn predicate on the "assignee_id" field.
func AssigneeIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldAssigneeID, vs...))
}

// AssigneeIDGT applies the GT predicate on the "assignee_id" field.
func AssigneeIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldAssigneeID, v))
}

// AssigneeIDGTE applies the GTE predicate on the "assignee_id" field.
func AssigneeIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldAssigneeID, v))
}

// AssigneeIDLT applies the LT predicate on the "assignee_id" field.
func AssigneeIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldAssigneeID, v))
}

// AssigneeIDLTE applies the LTE predicate on the "assignee_id" field.
func AssigneeIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldAssigneeID, v))
}

// AssigneeIDContains applies the Contains predicate on the "assignee_id" field.
func AssigneeIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldAssigneeID, v))
}

// AssigneeIDHasPrefix applies the HasPrefix predicate on the "assignee_id" field.
func AssigneeIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldAssigneeID, v))
}

// AssigneeIDHasSuffix applies the HasSuffix predicate on the "assignee_id" field.
func AssigneeIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldAssigneeID, v))
}

// AssigneeIDIsNil applies the IsNil predicate on the "assignee_id" field.
func AssigneeIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldAssigneeID))
}

// AssigneeIDNotNil applies the NotNil predicate on the "assignee_id" field.
func AssigneeIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldAssigneeID))
}

// AssigneeIDEqualFold applies the EqualFold predicate on the "assignee_id" field.
func AssigneeIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldAssigneeID, v))
}

// AssigneeIDContainsFold applies the ContainsFold predicate on the "assignee_id" field.
func AssigneeIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldAssigneeID, v))
}

// AssigneeTypeEQ applies the EQ predicate on the "assignee_type" field.
func AssigneeTypeEQ(v AssigneeType) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAssigneeType, v))
}

// AssigneeTypeNEQ applies the NEQ predicate on the "assignee_type" field.
func AssigneeTypeNEQ(v AssigneeType) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldAssigneeType, v))
}

// AssigneeTypeIn applies the In predicate on the "assignee_type" field.
func AssigneeTypeIn(vs ...AssigneeType) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldAssigneeType, vs...))
}

// AssigneeTypeNotIn applies the NotIn predicate on the "assignee_type" field.
func AssigneeTypeNotIn(vs ...AssigneeType) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldAssigneeType, vs...))
}

// AssigneeTypeIsNil applies the IsNil predicate on the "assignee_type" field.
func AssigneeTypeIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldAssigneeType))
}

// AssigneeTypeNotNil applies the NotNil predicate on the "assignee_type" field.
func AssigneeTypeNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldAssigneeType))
}

// VMIDEQ applies the EQ predicate on the "vm_id" field.
func VMIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldVMID, v))
}

// VMIDNEQ applies the NEQ predicate on the "vm_id" field.
func VMIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldVMID, v))
}

// VMIDIn applies the In predicate on the "vm_id" field.
func VMIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldVMID, vs...))
}

// VMIDNotIn applies the NotIn predicate on the "vm_id" field.
func VMIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldVMID, vs...))
}

// VMIDGT applies the GT predicate on the "vm_id" field.
func VMIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldVMID, v))
}

// VMIDGTE applies the GTE predicate on the "vm_id" field.
func VMIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldVMID, v))
}

// VMIDLT applies the LT predicate on the "vm_id" field.
func VMIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldVMID, v))
}

// VMIDLTE applies the LTE predicate on the "vm_id" field.
func VMIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldVMID, v))
}

// VMIDContains applies the Contains predicate on the "vm_id" field.
func VMIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldVMID, v))
}

// VMIDHasPrefix applies the HasPrefix predicate on the "vm_id" field.
func VMIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldVMID, v))
}

// VMIDHasSuffix applies the HasSuffix predicate on the "vm_id" field.
func VMIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldVMID, v))
}

// VMIDIsNil applies the IsNil predicate on the "vm_id" field.
func VMIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldVMID))
}

// VMIDNotNil applies the NotNil predicate on the "vm_id" field.
func VMIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldVMID))
}

// VMIDEqualFold applies the EqualFold predicate on the "vm_id" field.
func VMIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldVMID, v))
}

// VMIDContainsFold applies the ContainsFold predicate on the "vm_id" field.
func VMIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldVMID, v))
}

// EngineIDEQ applies the EQ predicate on the "engine_id" field.
func EngineIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldEngineID, v))
}

// EngineIDNEQ applies the NEQ predicate on the "engine_id" field.
func EngineIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldEngineID, v))
}

// EngineIDIn applies the In predicate on the "engine_id" field.
func EngineIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldEngineID, vs...))
}

// EngineIDNotIn applies the NotIn predicate on the "engine_id" field.
func EngineIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldEngineID, vs...))
}

// EngineIDGT applies the GT predicate on the "engine_id" field.
func EngineIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldEngineID, v))
}

// EngineIDGTE applies the GTE predicate on the "engine_id" field.
func EngineIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldEngineID, v))
}

// EngineIDLT applies the LT predicate on the "engine_id" field.
func EngineIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldEngineID, v))
}

// EngineIDLTE applies the LTE predicate on the "engine_id" field.
func EngineIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldEngineID, v))
}

// EngineIDContains applies the Contains predicate on the "engine_id" field.
func EngineIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldEngineID, v))
}

// EngineIDHasPrefix applies the HasPrefix predicate on the "engine_id" field.
func EngineIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldEngineID, v))
}

// EngineIDHasSuffix applies the HasSuffix predicate on the "engine_id" field.
func EngineIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldEngineID, v))
}

// EngineIDIsNil applies the IsNil predicate on the "engine_id" field.
func EngineIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldEngineID))
}

// EngineIDNotNil applies the NotNil predicate on the "engine_id" field.
func EngineIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldEngineID))
}

// EngineIDEqualFold applies the EqualFold predicate on the "engine_id" field.
func EngineIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldEngineID, v))
}

// EngineIDContainsFold applies the ContainsFold predicate on the "engine_id" field.
func EngineIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldEngineID, v))
}

// ExecutionModeEQ applies the EQ predicate on the "execution_mode" field.
func ExecutionModeEQ(v ExecutionMode) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldExecutionMode, v))
}

// ExecutionModeNEQ applies the NEQ predicate on the "execution_mode" field.
func ExecutionModeNEQ(v ExecutionMode) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldExecutionMode, v))
}

// ExecutionModeIn applies the In predicate on the "execution_mode" field.
func ExecutionModeIn(vs ...ExecutionMode) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldExecutionMode, vs...))
}

// ExecutionModeNotIn applies the NotIn predicate on the "execution_mode" field.
func ExecutionModeNotIn(vs ...ExecutionMode) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldExecutionMode, vs...))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDIsNil applies the IsNil predicate on the "workflow_id" field.
func WorkflowIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldWorkflowID))
}

// WorkflowIDNotNil applies the NotNil predicate on the "workflow_id" field.
func WorkflowIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldWorkflowID))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldWorkflowID, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v Size) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v Size) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...Size) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...Size) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldSize, vs...))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldBranchName, v))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldPrURL, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRetryCount, v))
}

// RejectionCountEQ applies the EQ predicate on the "rejection_count" field.
func RejectionCountEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRejectionCount, v))
}

// RejectionCountNEQ applies the NEQ predicate on the "rejection_count" field.
func RejectionCountNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRejectionCount, v))
}

// RejectionCountIn applies the In predicate on the "rejection_count" field.
func RejectionCountIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRejectionCount, vs...))
}

// RejectionCountNotIn applies the NotIn predicate on the "rejection_count" field.
func RejectionCountNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRejectionCount, vs...))
}

// RejectionCountGT applies the GT predicate on the "rejection_count" field.
func RejectionCountGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRejectionCount, v))
}

// RejectionCountGTE applies the GTE predicate on the "rejection_count" field.
func RejectionCountGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRejectionCount, v))
}

// RejectionCountLT applies the LT predicate on the "rejection_count" field.
func RejectionCountLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRejectionCount, v))
}

// RejectionCountLTE applies the LTE predicate on the "rejection_count" field.
func RejectionCountLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRejectionCount, v))
}

// RetryStrategyIsNil applies the IsNil predicate on the "retry_strategy" field.
func RetryStrategyIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldRetryStrategy))
}

// RetryStrategyNotNil applies the NotNil predicate on the "retry_strategy" field.
func RetryStrategyNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldRetryStrategy))
}

// VerificationStatusEQ applies the EQ predicate on the "verification_status" field.
func VerificationStatusEQ(v VerificationStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldVerificationStatus, v))
}

// VerificationStatusNEQ applies the NEQ predicate on the "verification_status" field.
func VerificationStatusNEQ(v VerificationStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldVerificationStatus, v))
}

// VerificationStatusIn applies the In predicate on the "verification_status" field.
func VerificationStatusIn(vs ...VerificationStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldVerificationStatus, vs...))
}

// VerificationStatusNotIn applies the NotIn predicate on the "verification_status" field.
func VerificationStatusNotIn(vs ...VerificationStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldVerificationStatus, vs...))
}

// VerificationStatusIsNil applies the IsNil predicate on the "verification_status" field.
func VerificationStatusIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldVerificationStatus))
}

// VerificationStatusNotNil applies the NotNil predicate on the "verification_status" field.
func VerificationStatusNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldVerificationStatus))
}

// HoldReasonEQ applies the EQ predicate on the "hold_reason" field.
func HoldReasonEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldHoldReason, v))
}

// HoldReasonNEQ applies the NEQ predicate on the "hold_reason" field.
func HoldReasonNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldHoldReason, v))
}

// HoldReasonIn applies the In predicate on the "hold_reason" field.
func HoldReasonIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldHoldReason, vs...))
}

// HoldReasonNotIn applies the NotIn predicate on the "hold_reason" field.
func HoldReasonNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldHoldReason, vs...))
}

// HoldReasonGT applies the GT predicate on the "hold_reason" field.
func HoldReasonGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldHoldReason, v))
}

// HoldReasonGTE applies the GTE predicate on the "hold_reason" field.
func HoldReasonGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldHoldReason, v))
}

// HoldReasonLT applies the LT predicate on the "hold_reason" field.
func HoldReasonLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldHoldReason, v))
}

// HoldReasonLTE applies the LTE predicate on the "hold_reason" field.
func HoldReasonLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldHoldReason, v))
}

// HoldReasonContains applies the Contains predicate on the "hold_reason" field.
func HoldReasonContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldHoldReason, v))
}

// HoldReasonHasPrefix applies the HasPrefix predicate on the "hold_reason" field.
func HoldReasonHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldHoldReason, v))
}

// HoldReasonHasSuffix applies the HasSuffix predicate on the "hold_reason" field.
func HoldReasonHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldHoldReason, v))
}

// HoldReasonIsNil applies the IsNil predicate on the "hold_reason" field.
func HoldReasonIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldHoldReason))
}

// HoldReasonNotNil applies the NotNil predicate on the "hold_reason" field.
func HoldReasonNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldHoldReason))
}

// HoldReasonEqualFold applies the EqualFold predicate on the "hold_reason" field.
func HoldReasonEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldHoldReason, v))
}

// HoldReasonContainsFold applies the ContainsFold predicate on the "hold_reason" field.
func HoldReasonContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldHoldReason, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldError, v))
}

// InputsIsNil applies the IsNil predicate on the "inputs" field.
func InputsIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldInputs))
}

// InputsNotNil applies the NotNil predicate on the "inputs" field.
func InputsNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldInputs))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldOutputs))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldMetadata))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldLastHeartbeat))
}

// LeaseExpiresEQ applies the EQ predicate on the "lease_expires" field.
func LeaseExpiresEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldLeaseExpires, v))
}

// LeaseExpiresNEQ applies the NEQ predicate on the "lease_expires" field.
func LeaseExpiresNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldLeaseExpires, v))
}

// LeaseExpiresIn applies the In predicate on the "lease_expires" field.
func LeaseExpiresIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldLeaseExpires, vs...))
}

// LeaseExpiresNotIn applies the NotIn predicate on the "lease_expires" field.
func LeaseExpiresNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldLeaseExpires, vs...))
}

// LeaseExpiresGT applies the GT predicate on the "lease_expires" field.
func LeaseExpiresGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldLeaseExpires, v))
}

// LeaseExpiresGTE applies the GTE predicate on the "lease_expires" field.
func LeaseExpiresGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldLeaseExpires, v))
}

// LeaseExpiresLT applies the LT predicate on the "lease_expires" field.
func LeaseExpiresLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldLeaseExpires, v))
}

// LeaseExpiresLTE applies the LTE predicate on the "lease_expires" field.
func LeaseExpiresLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldLeaseExpires, v))
}

// LeaseExpiresIsNil applies the IsNil predicate on the "lease_expires" field.
func LeaseExpiresIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldLeaseExpires))
}

// LeaseExpiresNotNil applies the NotNil predicate on the "lease_expires" field.
func LeaseExpiresNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldLeaseExpires))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.TicketArtifact) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.TicketEvent) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.NotPredicates(p))
}
