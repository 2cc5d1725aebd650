package triage

import "context"

// Classify labels the ticket via the classification backend. A failed
// call degrades the issue type to IssueUnknown; classification never
// aborts the workflow.
func (n *Nodes) Classify(ctx context.Context, s *State) {
	label, err := n.backend.ClassifyIssue(ctx, s.TicketText)
	if err != nil {
		n.logger.Error(ctx, err, "classification failed")
		s.IssueType = IssueUnknown
		s.narrate("assistant", "Classification failed, set to unknown")
		return
	}

	s.IssueType = label
	s.narrate("assistant", "Classified as: "+label)
}
