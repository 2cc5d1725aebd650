// Package slack sends triage outcomes to Slack via incoming webhooks.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linnemanlabs/usher/internal/triage"
)

const (
	maxRecommendationLen = 3000
	httpTimeout          = 10 * time.Second
)

// Notifier posts completed triage states to a Slack webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// New creates a new Slack notifier. If webhookURL is empty, Send is a no-op.
func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: httpTimeout},
	}
}

// Send posts a triage outcome to the configured Slack webhook.
// If no webhook URL is configured, it returns nil immediately.
func (n *Notifier) Send(ctx context.Context, triageID string, s *triage.State) error {
	if n.webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(buildMessage(triageID, s))
	if err != nil {
		return fmt.Errorf("slack: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req) //nolint:gosec // G704: webhookURL is from trusted config, not user input
	if err != nil {
		return fmt.Errorf("slack: post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack: webhook returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func buildMessage(triageID string, s *triage.State) map[string]any {
	return map[string]any{
		"blocks": []map[string]any{
			headerBlock(s),
			{"type": "divider"},
			fieldsBlock(s),
			{"type": "divider"},
			recommendationBlock(s),
			{"type": "divider"},
			contextBlock(triageID),
		},
	}
}

func headerBlock(s *triage.State) map[string]any {
	title := "Ticket Triaged"
	if s.EmailMismatch != nil && *s.EmailMismatch {
		title = "Ticket Triaged (email mismatch)"
	}

	return map[string]any{
		"type": "header",
		"text": map[string]any{
			"type": "plain_text",
			"text": title,
		},
	}
}

func fieldsBlock(s *triage.State) map[string]any {
	orderID := s.OrderID
	if orderID == "" {
		orderID = "unresolved"
	}
	issueType := s.IssueType
	if issueType == "" {
		issueType = "n/a"
	}

	fields := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Order:* %s", orderID),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Issue type:* %s", issueType),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Steps narrated:* %d", len(s.Messages)),
		},
	}

	return map[string]any{
		"type":   "section",
		"fields": fields,
	}
}

func recommendationBlock(s *triage.State) map[string]any {
	text := truncate(s.Recommendation, maxRecommendationLen)
	if text == "" {
		text = "_No recommendation available._"
	}

	return map[string]any{
		"type": "section",
		"text": map[string]any{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Recommendation*\n\n%s", text),
		},
	}
}

func contextBlock(triageID string) map[string]any {
	elements := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("usher • triage %s • %s", triageID, time.Now().UTC().Format("2006-01-02 15:04 UTC")),
		},
	}

	return map[string]any{
		"type":     "context",
		"elements": elements,
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
