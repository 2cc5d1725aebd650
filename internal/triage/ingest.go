package triage

import (
	"context"

	"github.com/linnemanlabs/usher/internal/extract"
)

// Ingest records the ticket as the first narration entry and derives an
// order identifier or, failing that, a customer email. Email extraction
// is gated on the order-id miss: the identifier takes precedence when
// both appear in the text.
func (n *Nodes) Ingest(ctx context.Context, s *State) {
	s.Messages = []Message{{Role: "user", Content: s.TicketText}}

	if s.OrderID != "" {
		n.logger.Info(ctx, "order id supplied by caller", "order_id", s.OrderID)
		s.narrate("assistant", "Order_id provided: "+s.OrderID)
		return
	}

	if id, ok := extract.OrderID(s.TicketText); ok {
		s.OrderID = id
		n.logger.Info(ctx, "extracted order id", "order_id", id)
		s.narrate("assistant", "Extracted order_id: "+id)
		return
	}
	s.narrate("assistant", "No order_id found in ticket")

	if s.CustomerEmail != "" {
		return
	}
	if email, ok := extract.Email(s.TicketText); ok {
		s.CustomerEmail = email
		n.logger.Info(ctx, "extracted customer email", "customer_email", email)
		s.narrate("assistant", "Extracted email: "+email)
	} else {
		s.narrate("assistant", "No customer email found in ticket")
	}
}
