// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/schema"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/ent/ticketevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescDefaultBranch is the schema descriptor for default_branch field.
	projectDescDefaultBranch := projectFields[4].Descriptor()
	// project.DefaultDefaultBranch holds the default value on creation for the default_branch field.
	project.DefaultDefaultBranch = projectDescDefaultBranch.Default.(string)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[6].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[7].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescRetryCount is the schema descriptor for retry_count field.
	ticketDescRetryCount := ticketFields[18].Descriptor()
	// ticket.DefaultRetryCount holds the default value on creation for the retry_count field.
	ticket.DefaultRetryCount = ticketDescRetryCount.Default.(int)
	// ticketDescRejectionCount is the schema descriptor for rejection_count field.
	ticketDescRejectionCount := ticketFields[19].Descriptor()
	// ticket.DefaultRejectionCount holds the default value on creation for the rejection_count field.
	ticket.DefaultRejectionCount = ticketDescRejectionCount.Default.(int)
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[31].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[32].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketartifactFields := schema.TicketArtifact{}.Fields()
	_ = ticketartifactFields
	// ticketartifactDescAttempt is the schema descriptor for attempt field.
	ticketartifactDescAttempt := ticketartifactFields[3].Descriptor()
	// ticketartifact.DefaultAttempt holds the default value on creation for the attempt field.
	ticketartifact.DefaultAttempt = ticketartifactDescAttempt.Default.(int)
	// ticketartifactDescCreatedAt is the schema descriptor for created_at field.
	ticketartifactDescCreatedAt := ticketartifactFields[6].Descriptor()
	// ticketartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticketartifact.DefaultCreatedAt = ticketartifactDescCreatedAt.Default.(func() time.Time)
	ticketeventFields := schema.TicketEvent{}.Fields()
	_ = ticketeventFields
	// ticketeventDescCreatedAt is the schema descriptor for created_at field.
	ticketeventDescCreatedAt := ticketeventFields[7].Descriptor()
	// ticketevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticketevent.DefaultCreatedAt = ticketeventDescCreatedAt.Default.(func() time.Time)
}
