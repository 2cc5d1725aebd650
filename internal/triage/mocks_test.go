package triage

import (
	"context"
	"sync"
	"testing"

	"github.com/linnemanlabs/go-core/log"
)

// mockBackend implements Backend with per-call overrides and records
// every adapter call made during a test.
type mockBackend struct {
	mu    sync.Mutex
	calls []string

	fetchOrderFn   func(orderID string) (*Order, error)
	searchOrdersFn func(customerEmail, query string) ([]Order, error)
	classifyFn     func(ticketText string) (string, error)
	draftFn        func(issueType string, evidence *Evidence) (string, error)
}

func (m *mockBackend) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockBackend) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockBackend) FetchOrder(_ context.Context, orderID string) (*Order, error) {
	m.record("fetch_order")
	if m.fetchOrderFn != nil {
		return m.fetchOrderFn(orderID)
	}
	return &Order{OrderID: orderID, CustomerName: "Alice", CustomerEmail: "alice@example.com", Product: "Bluetooth Speaker"}, nil
}

func (m *mockBackend) SearchOrders(_ context.Context, customerEmail, query string) ([]Order, error) {
	m.record("search_orders")
	if m.searchOrdersFn != nil {
		return m.searchOrdersFn(customerEmail, query)
	}
	return nil, nil
}

func (m *mockBackend) ClassifyIssue(_ context.Context, ticketText string) (string, error) {
	m.record("classify_issue")
	if m.classifyFn != nil {
		return m.classifyFn(ticketText)
	}
	return "defective", nil
}

func (m *mockBackend) DraftReply(_ context.Context, issueType string, evidence *Evidence) (string, error) {
	m.record("draft_reply")
	if m.draftFn != nil {
		return m.draftFn(issueType, evidence)
	}
	return "We are sorry about the trouble with your order.", nil
}

func newTestNodes(b Backend) *Nodes {
	return NewNodes(b, log.Nop())
}

func lastMessage(t *testing.T, s *State) Message {
	t.Helper()
	if len(s.Messages) == 0 {
		t.Fatal("expected at least one message")
	}
	return s.Messages[len(s.Messages)-1]
}
