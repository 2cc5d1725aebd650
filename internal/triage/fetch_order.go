package triage

import (
	"context"
	"errors"
	"strings"
)

// FetchOrder resolves the order identifier against the order backend and
// stores the outcome as evidence. Not-found and transport failures both
// produce an error envelope and the workflow proceeds; only the narration
// differs. On success, the extracted email is validated against the
// order of record when both are present.
func (n *Nodes) FetchOrder(ctx context.Context, s *State) {
	if s.OrderID == "" {
		n.logger.Warn(ctx, "no order id in state, skipping order fetch")
		s.narrate("assistant", "Skipped order fetch: no order_id")
		return
	}

	order, err := n.backend.FetchOrder(ctx, s.OrderID)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, ErrOrderNotFound) {
			msg = "Order not found"
		}
		n.logger.Error(ctx, err, "order fetch failed", "order_id", s.OrderID)
		s.Evidence = &Evidence{Error: msg}
		s.narrate("assistant", "Error: "+msg)
		return
	}

	s.Evidence = &Evidence{Order: order}
	s.narrate("assistant", "Fetched order details: "+s.OrderID)

	if s.CustomerEmail == "" || order.CustomerEmail == "" {
		s.narrate("assistant", "Email validation skipped: no email to compare")
		return
	}

	mismatch := !strings.EqualFold(s.CustomerEmail, order.CustomerEmail)
	s.EmailMismatch = &mismatch
	if mismatch {
		n.logger.Warn(ctx, "email mismatch detected",
			"extracted", s.CustomerEmail,
			"on_record", order.CustomerEmail,
		)
		s.narrate("assistant", "Email mismatch detected")
	} else {
		s.narrate("assistant", "Email validation successful")
	}
}
