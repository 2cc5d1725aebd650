package triage

import "context"

// draftFallback is the recommendation substituted when the drafting
// backend fails, so completion always yields a presentable state.
const draftFallback = "Unable to generate response at this time."

// DraftReply asks the drafting backend for a reply recommendation from
// the issue type and evidence. This is the terminal productive step.
func (n *Nodes) DraftReply(ctx context.Context, s *State) {
	reply, err := n.backend.DraftReply(ctx, s.IssueType, s.Evidence)
	if err != nil {
		n.logger.Error(ctx, err, "reply draft failed", "issue_type", s.IssueType)
		s.Recommendation = draftFallback
		s.narrate("assistant", "Failed to generate reply")
		return
	}

	s.Recommendation = reply
	s.narrate("assistant", "Generated reply recommendation")
}
