package triage

import (
	"context"
	"fmt"
)

// EmailMismatch is the terminal step for tickets whose extracted email
// does not match the email on the fetched order. Both values are spelled
// out so the submitter can see what was compared.
func (n *Nodes) EmailMismatch(ctx context.Context, s *State) {
	extracted := "unknown"
	if s.CustomerEmail != "" {
		extracted = s.CustomerEmail
	}
	onRecord := "unknown"
	if s.Evidence != nil && s.Evidence.Order != nil && s.Evidence.Order.CustomerEmail != "" {
		onRecord = s.Evidence.Order.CustomerEmail
	}

	n.logger.Info(ctx, "workflow stopped: email mismatch",
		"extracted", extracted,
		"on_record", onRecord,
	)
	s.Recommendation = fmt.Sprintf(
		"Your order and email do not match. The email '%s' from your ticket does not match the email '%s' associated with this order. Please verify your order ID and email address.",
		extracted, onRecord,
	)
	s.narrate("assistant", "Email validation failed - ending workflow")
}
