package api

// cancelTicketRequest is the optional body for POST /api/v1/tickets/:id/cancel.
type cancelTicketRequest struct {
	Reason string `json:"reason,omitempty"`
}

// rejectTicketRequest is the optional body for POST /api/v1/tickets/:id/reject.
type rejectTicketRequest struct {
	Reason string `json:"reason,omitempty"`
}

// addNoteRequest is the body for POST /api/v1/tickets/:id/notes.
type addNoteRequest struct {
	Message string `json:"message"`
}
