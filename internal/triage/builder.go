package triage

import "github.com/linnemanlabs/go-core/log"

// BuildOptions configure graph construction.
type BuildOptions struct {
	// EmailMismatchRouting wires fetch_order's email-validation outcome
	// to the email_mismatch terminal. When false, fetch_order goes
	// unconditionally to classify and the mismatch step is registered
	// but unreachable, reproducing the legacy wiring.
	EmailMismatchRouting bool

	Hooks  GraphHooks
	Logger log.Logger
}

// BuildGraph assembles and validates the triage workflow graph.
//
//	ingest -> fetch_order | search_orders | no_order_id
//	search_orders -> classify | no_order_id
//	fetch_order -> email_mismatch | classify   (conditional edge optional)
//	classify -> draft_reply
//	draft_reply, no_order_id, email_mismatch are terminal
//
// A single search match routes straight to classify without a confirming
// fetch; fetch_order only runs for identifier entry.
func BuildGraph(n *Nodes, opts BuildOptions) (*Graph, error) {
	g := newGraph(StepIngest, opts.Logger, opts.Hooks)

	g.addStep(StepIngest, n.Ingest)
	g.addStep(StepFetchOrder, n.FetchOrder)
	g.addStep(StepSearchOrders, n.SearchOrders)
	g.addStep(StepClassify, n.Classify)
	g.addStep(StepDraftReply, n.DraftReply)
	g.addStep(StepNoOrderID, n.NoOrderID)
	g.addStep(StepEmailMismatch, n.EmailMismatch)

	g.addRoute(StepIngest, routeAfterIngest, StepFetchOrder, StepSearchOrders, StepNoOrderID)
	g.addRoute(StepSearchOrders, routeAfterSearch, StepClassify, StepNoOrderID)

	if opts.EmailMismatchRouting {
		g.addRoute(StepFetchOrder, routeAfterFetch, StepEmailMismatch, StepClassify)
	} else {
		g.addEdge(StepFetchOrder, StepClassify)
	}

	g.addEdge(StepClassify, StepDraftReply)

	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// routeAfterIngest checks the identifier first, unconditionally: an
// order id beats an email whenever both are present.
func routeAfterIngest(s *State) string {
	switch {
	case s.OrderID != "":
		return StepFetchOrder
	case s.CustomerEmail != "":
		return StepSearchOrders
	default:
		return StepNoOrderID
	}
}

// routeAfterSearch continues to classification only when the search
// resolved a single order; OrderID left unset is the miss signal.
func routeAfterSearch(s *State) string {
	if s.OrderID != "" {
		return StepClassify
	}
	return StepNoOrderID
}

// routeAfterFetch diverts to the mismatch terminal when email
// validation ran and failed. Unset (nil) means validation was skipped
// and is treated like a match.
func routeAfterFetch(s *State) string {
	if s.EmailMismatch != nil && *s.EmailMismatch {
		return StepEmailMismatch
	}
	return StepClassify
}
