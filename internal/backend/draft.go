package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/linnemanlabs/usher/internal/triage"
)

// DraftReply asks the drafting backend for a reply recommendation.
// evidence may be nil, in which case an empty order object is sent.
func (c *Client) DraftReply(ctx context.Context, issueType string, evidence *triage.Evidence) (_ string, err error) {
	defer func(start time.Time) { c.observe("draft_reply", start, err) }(time.Now())

	order := json.RawMessage("{}")
	if evidence != nil {
		order, err = json.Marshal(evidence)
		if err != nil {
			return "", fmt.Errorf("draft: marshal evidence: %w", err)
		}
	}

	payload := struct {
		IssueType string          `json:"issue_type"`
		Order     json.RawMessage `json:"order"`
	}{issueType, order}

	status, body, err := c.do(ctx, "/reply/draft", nil, payload)
	if err != nil {
		return "", fmt.Errorf("draft: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("draft: backend returned %d: %s", status, body)
	}

	var out struct {
		ReplyText string `json:"reply_text"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("draft: decode response: %w", err)
	}
	if out.ReplyText == "" {
		return "", fmt.Errorf("draft: backend returned empty reply_text")
	}
	return out.ReplyText, nil
}
