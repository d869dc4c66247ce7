// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ticket type in the database.
	Label = "ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ticket_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldBuildID holds the string denoting the build_id field in the database.
	FieldBuildID = "build_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAcceptanceCriteria holds the string denoting the acceptance_criteria field in the database.
	FieldAcceptanceCriteria = "acceptance_criteria"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldDependsOn holds the string denoting the depends_on field in the database.
	FieldDependsOn = "depends_on"
	// FieldAssigneeID holds the string denoting the assignee_id field in the database.
	FieldAssigneeID = "assignee_id"
	// FieldAssigneeType holds the string denoting the assignee_type field in the database.
	FieldAssigneeType = "assignee_type"
	// FieldVMID holds the string denoting the vm_id field in the database.
	FieldVMID = "vm_id"
	// FieldEngineID holds the string denoting the engine_id field in the database.
	FieldEngineID = "engine_id"
	// FieldExecutionMode holds the string denoting the execution_mode field in the database.
	FieldExecutionMode = "execution_mode"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldRejectionCount holds the string denoting the rejection_count field in the database.
	FieldRejectionCount = "rejection_count"
	// FieldRetryStrategy holds the string denoting the retry_strategy field in the database.
	FieldRetryStrategy = "retry_strategy"
	// FieldVerificationStatus holds the string denoting the verification_status field in the database.
	FieldVerificationStatus = "verification_status"
	// FieldHoldReason holds the string denoting the hold_reason field in the database.
	FieldHoldReason = "hold_reason"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldOutputs holds the string denoting the outputs field in the database.
	FieldOutputs = "outputs"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldLeaseExpires holds the string denoting the lease_expires field in the database.
	FieldLeaseExpires = "lease_expires"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// TicketArtifactFieldID holds the string denoting the ID field of the TicketArtifact.
	TicketArtifactFieldID = "artifact_id"
	// TicketEventFieldID holds the string denoting the ID field of the TicketEvent.
	TicketEventFieldID = "event_id"
	// Table holds the table name of the ticket in the database.
	Table = "tickets"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "tickets"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "ticket_artifacts"
	// ArtifactsInverseTable is the table name for the TicketArtifact entity.
	// It exists in this package in order to avoid circular dependency with the "ticketartifact" package.
	ArtifactsInverseTable = "ticket_artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "ticket_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "ticket_events"
	// EventsInverseTable is the table name for the TicketEvent entity.
	// It exists in this package in order to avoid circular dependency with the "ticketevent" package.
	EventsInverseTable = "ticket_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "ticket_id"
)

// Columns holds all SQL columns for ticket fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldProjectID,
	FieldBuildID,
	FieldTitle,
	FieldDescription,
	FieldAcceptanceCriteria,
	FieldState,
	FieldDependsOn,
	FieldAssigneeID,
	FieldAssigneeType,
	FieldVMID,
	FieldEngineID,
	FieldExecutionMode,
	FieldWorkflowID,
	FieldSize,
	FieldBranchName,
	FieldPrURL,
	FieldRetryCount,
	FieldRejectionCount,
	FieldRetryStrategy,
	FieldVerificationStatus,
	FieldHoldReason,
	FieldError,
	FieldInputs,
	FieldOutputs,
	FieldMetadata,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastHeartbeat,
	FieldLeaseExpires,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultRejectionCount holds the default value on creation for the "rejection_count" field.
	DefaultRejectionCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateDraft is the default value of the State enum.
const DefaultState = StateDraft

// State values.
const (
	StateDraft       State = "draft"
	StateBlocked     State = "blocked"
	StateReady       State = "ready"
	StateAssigned    State = "assigned"
	StateInProgress  State = "in_progress"
	StateVerifying   State = "verifying"
	StateInReview    State = "in_review"
	StateNeedsReview State = "needs_review"
	StateDone        State = "done"
	StateOnHold      State = "on_hold"
	StateCancelled   State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateDraft, StateBlocked, StateReady, StateAssigned, StateInProgress, StateVerifying, StateInReview, StateNeedsReview, StateDone, StateOnHold, StateCancelled:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for state field: %q", s)
	}
}

// AssigneeType defines the type for the "assignee_type" enum field.
type AssigneeType string

// AssigneeType values.
const (
	AssigneeTypeAgent AssigneeType = "agent"
	AssigneeTypeHuman AssigneeType = "human"
)

func (at AssigneeType) String() string {
	return string(at)
}

// AssigneeTypeValidator is a validator for the "assignee_type" field enum values. It is called by the builders before save.
func AssigneeTypeValidator(at AssigneeType) error {
	switch at {
	case AssigneeTypeAgent, AssigneeTypeHuman:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for assignee_type field: %q", at)
	}
}

// ExecutionMode defines the type for the "execution_mode" enum field.
type ExecutionMode string

// ExecutionModePull is the default value of the ExecutionMode enum.
const DefaultExecutionMode = ExecutionModePull

// ExecutionMode values.
const (
	ExecutionModePull     ExecutionMode = "pull"
	ExecutionModeDirect   ExecutionMode = "direct"
	ExecutionModeWorkflow ExecutionMode = "workflow"
)

func (em ExecutionMode) String() string {
	return string(em)
}

// ExecutionModeValidator is a validator for the "execution_mode" field enum values. It is called by the builders before save.
func ExecutionModeValidator(em ExecutionMode) error {
	switch em {
	case ExecutionModePull, ExecutionModeDirect, ExecutionModeWorkflow:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for execution_mode field: %q", em)
	}
}

// Size defines the type for the "size" enum field.
type Size string

// SizeMedium is the default value of the Size enum.
const DefaultSize = SizeMedium

// Size values.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

func (s Size) String() string {
	return string(s)
}

// SizeValidator is a validator for the "size" field enum values. It is called by the builders before save.
func SizeValidator(s Size) error {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for size field: %q", s)
	}
}

// VerificationStatus defines the type for the "verification_status" enum field.
type VerificationStatus string

// VerificationStatus values.
const (
	VerificationStatusPending VerificationStatus = "pending"
	VerificationStatusPassed  VerificationStatus = "passed"
	VerificationStatusFailed  VerificationStatus = "failed"
)

func (vs VerificationStatus) String() string {
	return string(vs)
}

// VerificationStatusValidator is a validator for the "verification_status" field enum values. It is called by the builders before save.
func VerificationStatusValidator(vs VerificationStatus) error {
	switch vs {
	case VerificationStatusPending, VerificationStatusPassed, VerificationStatusFailed:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for verification_status field: %q", vs)
	}
}

// OrderOption defines the ordering options for the Ticket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByBuildID orders the results by the build_id field.
func ByBuildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAcceptanceCriteria orders the results by the acceptance_criteria field.
func ByAcceptanceCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptanceCriteria, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByAssigneeID orders the results by the assignee_id field.
func ByAssigneeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeID, opts...).ToFunc()
}

// ByAssigneeType orders the results by the assignee_type field.
func ByAssigneeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeType, opts...).ToFunc()
}

// ByVMID orders the results by the vm_id field.
func ByVMID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVMID, opts...).ToFunc()
}

// ByEngineID orders the results by the engine_id field.
func ByEngineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngineID, opts...).ToFunc()
}

// ByExecutionMode orders the results by the execution_mode field.
func ByExecutionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionMode, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByRejectionCount orders the results by the rejection_count field.
func ByRejectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionCount, opts...).ToFunc()
}

// ByVerificationStatus orders the results by the verification_status field.
func ByVerificationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationStatus, opts...).ToFunc()
}

// ByHoldReason orders the results by the hold_reason field.
func ByHoldReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoldReason, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByLeaseExpires orders the results by the lease_expires field.
func ByLeaseExpires(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpires, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, TicketArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, TicketEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
