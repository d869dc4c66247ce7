// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/ticket"
)

// Ticket is the model entity for the Ticket schema.
type Ticket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Partitions all visibility
	TenantID string `json:"tenant_id,omitempty"`
	// Joins to repository URL and settings
	ProjectID string `json:"project_id,omitempty"`
	// Activation batch; tickets generated together share one
	BuildID string `json:"build_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Handed verbatim to the verifier
	AcceptanceCriteria string `json:"acceptance_criteria,omitempty"`
	// State holds the value of the "state" field.
	State ticket.State `json:"state,omitempty"`
	// Ticket ids that must reach done before this one activates
	DependsOn []string `json:"depends_on,omitempty"`
	// Logical agent id (forge-agent, sentinel-agent) or a human
	AssigneeID *string `json:"assignee_id,omitempty"`
	// AssigneeType holds the value of the "assignee_type" field.
	AssigneeType *ticket.AssigneeType `json:"assignee_type,omitempty"`
	// Bound VM slot; null iff not currently dispatched
	VMID *string `json:"vm_id,omitempty"`
	// Engine instance that dispatched this ticket (direct mode only); drives startup lease recovery
	EngineID *string `json:"engine_id,omitempty"`
	// ExecutionMode holds the value of the "execution_mode" field.
	ExecutionMode ticket.ExecutionMode `json:"execution_mode,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID *string `json:"workflow_id,omitempty"`
	// Claim-order tiebreak: small before medium before large
	Size ticket.Size `json:"size,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName *string `json:"branch_name,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// RejectionCount holds the value of the "rejection_count" field.
	RejectionCount int `json:"rejection_count,omitempty"`
	// Last classification: category, attempts remaining, backoff plan
	RetryStrategy map[string]interface{} `json:"retry_strategy,omitempty"`
	// VerificationStatus holds the value of the "verification_status" field.
	VerificationStatus *ticket.VerificationStatus `json:"verification_status,omitempty"`
	// HoldReason holds the value of the "hold_reason" field.
	HoldReason *string `json:"hold_reason,omitempty"`
	// Last failure report from the agent
	Error *string `json:"error,omitempty"`
	// Opaque to the core; parsed only by the consuming agent
	Inputs map[string]interface{} `json:"inputs,omitempty"`
	// Outputs holds the value of the "outputs" field.
	Outputs map[string]interface{} `json:"outputs,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// LastHeartbeat holds the value of the "last_heartbeat" field.
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	// Lease deadline; the reaper returns expired rows to ready
	LeaseExpires *time.Time `json:"lease_expires,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketQuery when eager-loading is set.
	Edges        TicketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketEdges holds the relations/edges for other nodes in the graph.
type TicketEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*TicketArtifact `json:"artifacts,omitempty"`
	// Events holds the value of the events edge.
	Events []*TicketEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) ArtifactsOrErr() ([]*TicketArtifact, error) {
	if e.loadedTypes[1] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) EventsOrErr() ([]*TicketEvent, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Ticket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticket.FieldDependsOn, ticket.FieldRetryStrategy, ticket.FieldInputs, ticket.FieldOutputs, ticket.FieldMetadata:
			values[i] = new([]byte)
		case ticket.FieldRetryCount, ticket.FieldRejectionCount:
			values[i] = new(sql.NullInt64)
		case ticket.FieldID, ticket.FieldTenantID, ticket.FieldProjectID, ticket.FieldBuildID, ticket.FieldTitle, ticket.FieldDescription, ticket.FieldAcceptanceCriteria, ticket.FieldState, ticket.FieldAssigneeID, ticket.FieldAssigneeType, ticket.FieldVMID, ticket.FieldEngineID, ticket.FieldExecutionMode, ticket.FieldWorkflowID, ticket.FieldSize, ticket.FieldBranchName, ticket.FieldPrURL, ticket.FieldVerificationStatus, ticket.FieldHoldReason, ticket.FieldError:
			values[i] = new(sql.NullString)
		case ticket.FieldStartedAt, ticket.FieldCompletedAt, ticket.FieldLastHeartbeat, ticket.FieldLeaseExpires, ticket.FieldCreatedAt, ticket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Ticket fields.
func (_m *Ticket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticket.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case ticket.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case ticket.FieldBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_id", values[i])
			} else if value.Valid {
				_m.BuildID = value.String
			}
		case ticket.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case ticket.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case ticket.FieldAcceptanceCriteria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance_criteria", values[i])
			} else if value.Valid {
				_m.AcceptanceCriteria = value.String
			}
		case ticket.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = ticket.State(value.String)
			}
		case ticket.FieldDependsOn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DependsOn); err != nil {
					return fmt.Errorf("unmarshal field depends_on: %w", err)
				}
			}
		case ticket.FieldAssigneeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_id", values[i])
			} else if value.Valid {
				_m.AssigneeID = new(string)
				*_m.AssigneeID = value.String
			}
		case ticket.FieldAssigneeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_type", values[i])
			} else if value.Valid {
				_m.AssigneeType = new(ticket.AssigneeType)
				*_m.AssigneeType = ticket.AssigneeType(value.String)
			}
		case ticket.FieldVMID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vm_id", values[i])
			} else if value.Valid {
				_m.VMID = new(string)
				*_m.VMID = value.String
			}
		case ticket.FieldEngineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine_id", values[i])
			} else if value.Valid {
				_m.EngineID = new(string)
				*_m.EngineID = value.String
			}
		case ticket.FieldExecutionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_mode", values[i])
			} else if value.Valid {
				_m.ExecutionMode = ticket.ExecutionMode(value.String)
			}
		case ticket.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = new(string)
				*_m.WorkflowID = value.String
			}
		case ticket.FieldSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = ticket.Size(value.String)
			}
		case ticket.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = new(string)
				*_m.BranchName = value.String
			}
		case ticket.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case ticket.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case ticket.FieldRejectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_count", values[i])
			} else if value.Valid {
				_m.RejectionCount = int(value.Int64)
			}
		case ticket.FieldRetryStrategy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field retry_strategy", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RetryStrategy); err != nil {
					return fmt.Errorf("unmarshal field retry_strategy: %w", err)
				}
			}
		case ticket.FieldVerificationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_status", values[i])
			} else if value.Valid {
				_m.VerificationStatus = new(ticket.VerificationStatus)
				*_m.VerificationStatus = ticket.VerificationStatus(value.String)
			}
		case ticket.FieldHoldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hold_reason", values[i])
			} else if value.Valid {
				_m.HoldReason = new(string)
				*_m.HoldReason = value.String
			}
		case ticket.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case ticket.FieldInputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Inputs); err != nil {
					return fmt.Errorf("unmarshal field inputs: %w", err)
				}
			}
		case ticket.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case ticket.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case ticket.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case ticket.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case ticket.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = new(time.Time)
				*_m.LastHeartbeat = value.Time
			}
		case ticket.FieldLeaseExpires:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires", values[i])
			} else if value.Valid {
				_m.LeaseExpires = new(time.Time)
				*_m.LeaseExpires = value.Time
			}
		case ticket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ticket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Ticket.
// This includes values selected through modifiers, order, etc.
func (_m *Ticket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Ticket entity.
func (_m *Ticket) QueryProject() *ProjectQuery {
	return NewTicketClient(_m.config).QueryProject(_m)
}

// QueryArtifacts queries the "artifacts" edge of the Ticket entity.
func (_m *Ticket) QueryArtifacts() *TicketArtifactQuery {
	return NewTicketClient(_m.config).QueryArtifacts(_m)
}

// QueryEvents queries the "events" edge of the Ticket entity.
func (_m *Ticket) QueryEvents() *TicketEventQuery {
	return NewTicketClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Ticket.
// Note that you need to call Ticket.Unwrap() before calling this method if this Ticket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Ticket) Update() *TicketUpdateOne {
	return NewTicketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Ticket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Ticket) Unwrap() *Ticket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Ticket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Ticket) String() string {
	var builder strings.Builder
	builder.WriteString("Ticket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("build_id=")
	builder.WriteString(_m.BuildID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("acceptance_criteria=")
	builder.WriteString(_m.AcceptanceCriteria)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("depends_on=")
	builder.WriteString(fmt.Sprintf("%v", _m.DependsOn))
	builder.WriteString(", ")
	if v := _m.AssigneeID; v != nil {
		builder.WriteString("assignee_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AssigneeType; v != nil {
		builder.WriteString("assignee_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VMID; v != nil {
		builder.WriteString("vm_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EngineID; v != nil {
		builder.WriteString("engine_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("execution_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionMode))
	builder.WriteString(", ")
	if v := _m.WorkflowID; v != nil {
		builder.WriteString("workflow_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	if v := _m.BranchName; v != nil {
		builder.WriteString("branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("rejection_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectionCount))
	builder.WriteString(", ")
	builder.WriteString("retry_strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryStrategy))
	builder.WriteString(", ")
	if v := _m.VerificationStatus; v != nil {
		builder.WriteString("verification_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HoldReason; v != nil {
		builder.WriteString("hold_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("inputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Inputs))
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outputs))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeat; v != nil {
		builder.WriteString("last_heartbeat=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LeaseExpires; v != nil {
		builder.WriteString("lease_expires=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tickets is a parsable slice of Ticket.
type Tickets []*Ticket
