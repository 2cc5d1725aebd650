package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ClassifyIssue labels the ticket text via the classification backend.
// An empty label in the response is normalized to an error so the
// classify step degrades instead of recording an absent issue type.
func (c *Client) ClassifyIssue(ctx context.Context, ticketText string) (_ string, err error) {
	defer func(start time.Time) { c.observe("classify_issue", start, err) }(time.Now())

	payload := struct {
		TicketText string `json:"ticket_text"`
	}{ticketText}

	status, body, err := c.do(ctx, "/classify/issue", nil, payload)
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("classify: backend returned %d: %s", status, body)
	}

	var out struct {
		IssueType string `json:"issue_type"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("classify: decode response: %w", err)
	}
	if out.IssueType == "" {
		return "", fmt.Errorf("classify: backend returned empty issue_type")
	}
	return out.IssueType, nil
}
