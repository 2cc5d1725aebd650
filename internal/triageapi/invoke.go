package triageapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/linnemanlabs/usher/internal/triage"
)

func (a *API) handleInvoke(w http.ResponseWriter, r *http.Request) {
	var in triage.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, `{"error":"invalid payload"}`, http.StatusBadRequest)
		return
	}

	id, final, err := a.svc.Invoke(r.Context(), &in)
	if err != nil {
		if errors.Is(err, triage.ErrMissingTicketText) {
			http.Error(w, `{"error":"ticket_text is required"}`, http.StatusBadRequest)
			return
		}
		a.logger.Error(r.Context(), err, "triage invocation failed")
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.String("usher.triage.id", id),
		attribute.String("usher.triage.issue_type", final.IssueType),
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Triage-Id", id)
	_ = json.NewEncoder(w).Encode(final)
}
