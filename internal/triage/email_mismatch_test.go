package triage

import (
	"context"
	"strings"
	"testing"
)

func TestEmailMismatch_SpellsOutBothValues(t *testing.T) {
	t.Parallel()

	n := newTestNodes(&mockBackend{})
	s := NewState("ticket", "")
	s.CustomerEmail = "alice@example.com"
	s.Evidence = &Evidence{Order: &Order{OrderID: "ORD1002", CustomerEmail: "bob@example.com"}}

	n.EmailMismatch(context.Background(), s)

	if !strings.Contains(s.Recommendation, "do not match") {
		t.Errorf("recommendation = %q, want mismatch statement", s.Recommendation)
	}
	if !strings.Contains(s.Recommendation, "alice@example.com") {
		t.Errorf("recommendation = %q, want extracted email", s.Recommendation)
	}
	if !strings.Contains(s.Recommendation, "bob@example.com") {
		t.Errorf("recommendation = %q, want on-record email", s.Recommendation)
	}
	if got := lastMessage(t, s).Content; got != "Email validation failed - ending workflow" {
		t.Errorf("narration = %q, want workflow-ending message", got)
	}
}

func TestEmailMismatch_MissingValues(t *testing.T) {
	t.Parallel()

	n := newTestNodes(&mockBackend{})
	s := NewState("ticket", "")

	n.EmailMismatch(context.Background(), s)

	if !strings.Contains(s.Recommendation, "unknown") {
		t.Errorf("recommendation = %q, want unknown placeholders", s.Recommendation)
	}
}
