package triage

import "context"

// missingOrderIDRecommendation is the fixed refusal for tickets that
// carry no usable identifier.
const missingOrderIDRecommendation = "We cannot proceed with the issue. Please provide Order ID in the ticket."

// NoOrderID is the terminal step for tickets without an order identifier
// or resolvable email. Re-running it on its own output is a no-op.
func (n *Nodes) NoOrderID(ctx context.Context, s *State) {
	if s.Recommendation == missingOrderIDRecommendation {
		return
	}

	n.logger.Info(ctx, "workflow stopped: missing order id")
	s.Recommendation = missingOrderIDRecommendation
	s.narrate("system", "Workflow stopped: missing order_id")
}
