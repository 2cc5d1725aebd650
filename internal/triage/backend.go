package triage

import (
	"context"
	"errors"
)

// ErrOrderNotFound is returned by Backend.FetchOrder when the identifier
// resolves to nothing. It is distinguishable from transport failures so
// the fetch step can narrate it precisely; both are non-fatal.
var ErrOrderNotFound = errors.New("order not found")

// ErrMissingTicketText is returned by Service.Invoke for input without
// ticket text, the only condition rejected before the engine runs.
var ErrMissingTicketText = errors.New("ticket_text is required")

// Backend is the interface for the order system collaborators: order
// lookup, order search, issue classification, and reply drafting. Each
// call is a single attempt; callers treat failures as recoverable.
type Backend interface {
	FetchOrder(ctx context.Context, orderID string) (*Order, error)
	SearchOrders(ctx context.Context, customerEmail, query string) ([]Order, error)
	ClassifyIssue(ctx context.Context, ticketText string) (string, error)
	DraftReply(ctx context.Context, issueType string, evidence *Evidence) (string, error)
}

// Notifier delivers a completed triage outcome to an external channel.
type Notifier interface {
	Send(ctx context.Context, triageID string, s *State) error
}
