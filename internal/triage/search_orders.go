package triage

import (
	"context"
	"fmt"
)

// SearchOrders looks up orders by the extracted customer email. A search
// failure is recoverable: the state is returned unresolved and the next
// routing decision keys off OrderID remaining unset. Exactly one match
// resolves the ticket; multiple matches are stored as evidence without
// picking one.
func (n *Nodes) SearchOrders(ctx context.Context, s *State) {
	if s.CustomerEmail == "" {
		n.logger.Warn(ctx, "no customer email in state, cannot search orders")
		s.narrate("assistant", "No customer email found for order search")
		return
	}

	results, err := n.backend.SearchOrders(ctx, s.CustomerEmail, "")
	if err != nil {
		n.logger.Error(ctx, err, "order search failed", "customer_email", s.CustomerEmail)
		s.narrate("assistant", fmt.Sprintf("Error: Search failed: %v", err))
		return
	}

	switch len(results) {
	case 0:
		s.narrate("assistant", "No orders found for email: "+s.CustomerEmail)
	case 1:
		order := results[0]
		s.OrderID = order.OrderID
		s.Evidence = &Evidence{Order: &order}
		n.logger.Info(ctx, "resolved order by email", "order_id", order.OrderID)
		s.narrate("assistant", fmt.Sprintf("Found order %s for email %s", order.OrderID, s.CustomerEmail))
	default:
		s.Evidence = &Evidence{Matches: results, Count: len(results)}
		s.narrate("assistant", fmt.Sprintf("Found %d orders for email %s", len(results), s.CustomerEmail))
	}
}
