// Package lifecycle encodes the ticket state machine: which transitions are
// legal, which states are terminal, and the structural invariants every write
// path must preserve. All state writes flow through the ticket service's
// guarded transition; this package is the single source of legality.
package lifecycle

import (
	"fmt"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
)

// Logical assignee ids. These route work to coder vs. reviewer agents; they
// name roles, not processes.
const (
	ForgeAgent    = "forge-agent"
	SentinelAgent = "sentinel-agent"
)

// transitions maps each state to the set of states reachable from it.
// Cancellation from non-terminal states is handled separately in CanTransition
// so the table stays readable.
var transitions = map[ticket.State][]ticket.State{
	ticket.StateDraft:       {ticket.StateReady, ticket.StateBlocked},
	ticket.StateBlocked:     {ticket.StateReady},
	ticket.StateReady:       {ticket.StateInProgress, ticket.StateAssigned},
	ticket.StateAssigned:    {ticket.StateInProgress, ticket.StateReady},
	ticket.StateInProgress:  {ticket.StateVerifying, ticket.StateReady, ticket.StateOnHold},
	ticket.StateVerifying:   {ticket.StateInReview, ticket.StateNeedsReview, ticket.StateReady, ticket.StateDone},
	ticket.StateInReview:    {ticket.StateDone, ticket.StateNeedsReview},
	ticket.StateNeedsReview: {ticket.StateReady},
	ticket.StateOnHold:      {ticket.StateReady},
}

// CanTransition reports whether from -> to is a legal edge of the state
// machine. Terminal states admit no outgoing edges; every non-terminal state
// may transition to cancelled.
func CanTransition(from, to ticket.State) bool {
	if Terminal(from) {
		return false
	}
	if to == ticket.StateCancelled {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether state admits no further writes.
func Terminal(state ticket.State) bool {
	return state == ticket.StateDone || state == ticket.StateCancelled
}

// ActiveStates are the states in which a ticket holds a VM slot and a lease.
func ActiveStates() []ticket.State {
	return []ticket.State{ticket.StateAssigned, ticket.StateInProgress, ticket.StateVerifying}
}

// NonTerminalStates returns every state except done and cancelled.
func NonTerminalStates() []ticket.State {
	return []ticket.State{
		ticket.StateDraft, ticket.StateBlocked, ticket.StateReady,
		ticket.StateAssigned, ticket.StateInProgress, ticket.StateVerifying,
		ticket.StateInReview, ticket.StateNeedsReview, ticket.StateOnHold,
	}
}

// Validate checks the structural invariants on a ticket row. A violation is a
// correctness bug in a write path, never user error; callers treat a non-nil
// return as fatal.
func Validate(t *ent.Ticket) error {
	switch t.State {
	case ticket.StateReady:
		if t.AssigneeID == nil || *t.AssigneeID == "" {
			return fmt.Errorf("ticket %s: ready without assignee_id", t.ID)
		}
		if t.AssigneeType == nil || *t.AssigneeType != ticket.AssigneeTypeAgent {
			return fmt.Errorf("ticket %s: ready without agent assignee_type", t.ID)
		}
		if t.VMID != nil && *t.VMID != "" {
			return fmt.Errorf("ticket %s: ready while bound to vm %s", t.ID, *t.VMID)
		}
	case ticket.StateAssigned, ticket.StateInProgress, ticket.StateVerifying:
		if t.VMID == nil || *t.VMID == "" {
			return fmt.Errorf("ticket %s: %s without vm_id", t.ID, t.State)
		}
		if t.LeaseExpires == nil {
			return fmt.Errorf("ticket %s: %s without lease_expires", t.ID, t.State)
		}
	case ticket.StateInReview:
		if t.PrURL == nil || *t.PrURL == "" {
			return fmt.Errorf("ticket %s: in_review without pr_url", t.ID)
		}
		if t.AssigneeID == nil || *t.AssigneeID != SentinelAgent {
			return fmt.Errorf("ticket %s: in_review not assigned to %s", t.ID, SentinelAgent)
		}
	}
	return nil
}
