package triage

import "encoding/json"

// Message is one entry in the triage narration log. Append order is
// execution order; no step removes or reorders entries.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Order is an order record as returned by the order backend.
type Order struct {
	OrderID       string `json:"order_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Product       string `json:"product,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Evidence is the resolved order data attached to a triage: exactly one
// of a single order record, a multi-match envelope, or an error envelope.
// It serializes flat on the wire (the order record itself, {matches,count},
// or {error}).
type Evidence struct {
	Order   *Order
	Matches []Order
	Count   int
	Error   string
}

func (e Evidence) MarshalJSON() ([]byte, error) {
	switch {
	case e.Error != "":
		return json.Marshal(struct {
			Error string `json:"error"`
		}{e.Error})
	case e.Order != nil:
		return json.Marshal(e.Order)
	default:
		return json.Marshal(struct {
			Matches []Order `json:"matches"`
			Count   int     `json:"count"`
		}{e.Matches, e.Count})
	}
}

// State is the single mutable record threaded through the workflow. One
// State exists per invocation; it is never shared across tickets.
type State struct {
	TicketText     string    `json:"ticket_text"`
	OrderID        string    `json:"order_id,omitempty"`
	CustomerEmail  string    `json:"customer_email,omitempty"`
	Messages       []Message `json:"messages"`
	IssueType      string    `json:"issue_type,omitempty"`
	Evidence       *Evidence `json:"evidence,omitempty"`
	Recommendation string    `json:"recommendation,omitempty"`

	// EmailMismatch is tri-state: nil means validation was not attempted.
	EmailMismatch *bool `json:"email_mismatch,omitempty"`
}

// NewState creates a fresh State for one incoming ticket. orderID may be
// empty; when set it is the caller-supplied identifier and ingest skips
// extraction.
func NewState(ticketText, orderID string) *State {
	return &State{
		TicketText: ticketText,
		OrderID:    orderID,
		Messages:   []Message{},
	}
}

// narrate appends one entry to the audit trail.
func (s *State) narrate(role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}
