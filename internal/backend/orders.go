package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/linnemanlabs/usher/internal/triage"
)

// FetchOrder retrieves a single order by identifier. A 404 maps to
// triage.ErrOrderNotFound so callers can tell a missing order apart from
// a transport failure.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (_ *triage.Order, err error) {
	defer func(start time.Time) { c.observe("fetch_order", start, err) }(time.Now())

	if orderID == "" {
		return nil, fmt.Errorf("order fetch: order id is required")
	}

	q := url.Values{}
	q.Set("order_id", orderID)

	status, body, err := c.do(ctx, "/orders/get", q, nil)
	if err != nil {
		return nil, fmt.Errorf("order fetch: %w", err)
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("order fetch %q: %w", orderID, triage.ErrOrderNotFound)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("order fetch: backend returned %d: %s", status, body)
	}

	var order triage.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("order fetch: decode response: %w", err)
	}
	return &order, nil
}

// SearchOrders finds orders by customer email and/or free-text query.
func (c *Client) SearchOrders(ctx context.Context, customerEmail, query string) (_ []triage.Order, err error) {
	defer func(start time.Time) { c.observe("search_orders", start, err) }(time.Now())

	q := url.Values{}
	if customerEmail != "" {
		q.Set("customer_email", customerEmail)
	}
	if query != "" {
		q.Set("q", query)
	}

	status, body, err := c.do(ctx, "/orders/search", q, nil)
	if err != nil {
		return nil, fmt.Errorf("order search: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("order search: backend returned %d: %s", status, body)
	}

	var out struct {
		Results []triage.Order `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("order search: decode response: %w", err)
	}
	return out.Results, nil
}
