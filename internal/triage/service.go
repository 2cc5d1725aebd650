package triage

import (
	"context"
	"strings"

	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"
	"github.com/oklog/ulid/v2"
)

// Input is one triage invocation request as received from the front
// door. TicketText is required; OrderID is the caller-supplied
// identifier, if known.
type Input struct {
	TicketText string `json:"ticket_text"`
	OrderID    string `json:"order_id,omitempty"`
}

// Service is the business boundary for triage operations: it validates
// input, mints the invocation ID, runs the workflow graph, and
// dispatches notifications. The final state is returned to the caller
// and not retained.
type Service struct {
	graph    *Graph
	logger   log.Logger
	notifier Notifier
}

// NewService creates a new triage service. notifier may be nil.
func NewService(graph *Graph, logger log.Logger, notifier Notifier) *Service {
	if graph == nil {
		panic(xerrors.New("workflow graph is required"))
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Service{
		graph:    graph,
		logger:   logger,
		notifier: notifier,
	}
}

// Invoke runs the triage workflow for one ticket and returns the
// invocation ID and final state. The only error is missing ticket text,
// rejected before the engine runs; everything past that point is
// absorbed by the steps and the returned state is always usable.
func (s *Service) Invoke(ctx context.Context, in *Input) (string, *State, error) {
	if strings.TrimSpace(in.TicketText) == "" {
		return "", nil, ErrMissingTicketText
	}

	id := ulid.Make().String()
	L := s.logger.With("triage_id", id)
	L.Info(ctx, "triage invoked", "order_id_provided", in.OrderID != "")

	st := NewState(in.TicketText, in.OrderID)
	final := s.graph.Invoke(log.WithContext(ctx, L), st)

	if s.notifier != nil {
		// best effort, never blocks or fails the response
		go func(ctx context.Context) {
			if err := s.notifier.Send(ctx, id, final); err != nil {
				L.Error(ctx, err, "triage notification failed")
			}
		}(context.WithoutCancel(ctx))
	}

	return id, final, nil
}
