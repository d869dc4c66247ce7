package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ticket.State
		to   ticket.State
		want bool
	}{
		{"activation to ready", ticket.StateDraft, ticket.StateReady, true},
		{"activation to blocked", ticket.StateDraft, ticket.StateBlocked, true},
		{"unblock sweep", ticket.StateBlocked, ticket.StateReady, true},
		{"claim", ticket.StateReady, ticket.StateInProgress, true},
		{"complete", ticket.StateInProgress, ticket.StateVerifying, true},
		{"verification passed", ticket.StateVerifying, ticket.StateInReview, true},
		{"verification failed", ticket.StateVerifying, ticket.StateNeedsReview, true},
		{"replay after verify failure", ticket.StateVerifying, ticket.StateReady, true},
		{"no-repo short circuit", ticket.StateVerifying, ticket.StateDone, true},
		{"voluntary release", ticket.StateInProgress, ticket.StateReady, true},
		{"non-retriable failure", ticket.StateInProgress, ticket.StateOnHold, true},
		{"sentinel approval", ticket.StateInReview, ticket.StateDone, true},
		{"sentinel rejection", ticket.StateInReview, ticket.StateNeedsReview, true},
		{"replay driver", ticket.StateNeedsReview, ticket.StateReady, true},
		{"human resume", ticket.StateOnHold, ticket.StateReady, true},

		{"cancel from ready", ticket.StateReady, ticket.StateCancelled, true},
		{"cancel from in_progress", ticket.StateInProgress, ticket.StateCancelled, true},
		{"cancel from on_hold", ticket.StateOnHold, ticket.StateCancelled, true},

		{"draft cannot be claimed", ticket.StateDraft, ticket.StateInProgress, false},
		{"ready cannot skip to verifying", ticket.StateReady, ticket.StateVerifying, false},
		{"done is terminal", ticket.StateDone, ticket.StateReady, false},
		{"done cannot be cancelled", ticket.StateDone, ticket.StateCancelled, false},
		{"cancelled is terminal", ticket.StateCancelled, ticket.StateReady, false},
		{"blocked cannot be claimed", ticket.StateBlocked, ticket.StateInProgress, false},
		{"in_review cannot return to in_progress", ticket.StateInReview, ticket.StateInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(ticket.StateDone))
	assert.True(t, Terminal(ticket.StateCancelled))

	for _, s := range NonTerminalStates() {
		assert.False(t, Terminal(s), "state %s must not be terminal", s)
	}
}

func TestNonTerminalStatesCoversEverythingOnce(t *testing.T) {
	seen := map[ticket.State]bool{}
	for _, s := range NonTerminalStates() {
		require.False(t, seen[s], "duplicate state %s", s)
		seen[s] = true
	}
	assert.Len(t, seen, 9)
	assert.NotContains(t, seen, ticket.StateDone)
	assert.NotContains(t, seen, ticket.StateCancelled)
}

func TestValidate(t *testing.T) {
	agent := ticket.AssigneeTypeAgent
	forge := ForgeAgent
	sentinel := SentinelAgent
	vm := "vm-1"
	pr := "https://git.example.com/acme/api/pull/7"
	lease := time.Now().Add(2 * time.Minute)

	tests := []struct {
		name    string
		ticket  *ent.Ticket
		wantErr string
	}{
		{
			name: "ready with forge assignment is valid",
			ticket: &ent.Ticket{
				ID: "t1", State: ticket.StateReady,
				AssigneeID: &forge, AssigneeType: &agent,
			},
		},
		{
			name:    "ready without assignee",
			ticket:  &ent.Ticket{ID: "t1", State: ticket.StateReady},
			wantErr: "without assignee_id",
		},
		{
			name: "ready while bound to a vm",
			ticket: &ent.Ticket{
				ID: "t1", State: ticket.StateReady,
				AssigneeID: &forge, AssigneeType: &agent, VMID: &vm,
			},
			wantErr: "while bound to vm",
		},
		{
			name: "in_progress with vm and lease is valid",
			ticket: &ent.Ticket{
				ID: "t1", State: ticket.StateInProgress,
				AssigneeID: &forge, AssigneeType: &agent,
				VMID: &vm, LeaseExpires: &lease,
			},
		},
		{
			name: "in_progress without lease",
			ticket: &ent.Ticket{
				ID: "t1", State: ticket.StateInProgress,
				AssigneeID: &forge, AssigneeType: &agent, VMID: &vm,
			},
			wantErr: "without lease_expires",
		},
		{
			name: "verifying without vm",
			ticket: &ent.Ticket{
				ID: "t1", State: ticket.StateVerifying, LeaseExpires: &lease,
			},
			wantErr: "without vm_id",
		},
		{
			name: "in_review with pr and sentinel is valid",
			ticket: &ent.Ticket{
				ID: "t1", State: ticket.StateInReview,
				PrURL: &pr, AssigneeID: &sentinel,
			},
		},
		{
			name: "in_review without pr_url",
			ticket: &ent.Ticket{
				ID: "t1", State: ticket.StateInReview, AssigneeID: &sentinel,
			},
			wantErr: "without pr_url",
		},
		{
			name: "in_review assigned to forge agent",
			ticket: &ent.Ticket{
				ID: "t1", State: ticket.StateInReview,
				PrURL: &pr, AssigneeID: &forge,
			},
			wantErr: "not assigned to sentinel-agent",
		},
		{
			name:   "draft has no structural requirements",
			ticket: &ent.Ticket{ID: "t1", State: ticket.StateDraft},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.ticket)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
