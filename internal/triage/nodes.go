package triage

import (
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"
)

// Step names used in the workflow graph.
const (
	StepIngest        = "ingest"
	StepFetchOrder    = "fetch_order"
	StepSearchOrders  = "search_orders"
	StepClassify      = "classify"
	StepDraftReply    = "draft_reply"
	StepNoOrderID     = "no_order_id"
	StepEmailMismatch = "email_mismatch"
)

// IssueUnknown is the degraded issue type substituted when
// classification fails. It is a valid value, not an absence.
const IssueUnknown = "unknown"

// Nodes holds the dependencies shared by all step functions. Each step
// reads and mutates one invocation-local State and calls at most one
// backend adapter.
type Nodes struct {
	backend Backend
	logger  log.Logger
}

// NewNodes creates the step function set for the given backend client.
func NewNodes(backend Backend, logger log.Logger) *Nodes {
	if backend == nil {
		panic(xerrors.New("backend client is required"))
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Nodes{
		backend: backend,
		logger:  logger,
	}
}
