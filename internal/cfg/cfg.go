package cfg

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
)

// Config adds usher-specific configuration fields to the
// common cfg.Registerable and cfg.Validatable interfaces
type Config struct {
	DrainSeconds          int
	ShutdownBudgetSeconds int
	APIPort               int
	BackendURL            string
	BackendTimeoutSeconds int
	EmailMismatchRouting  bool
	SlackWebhookURL       string
}

// RegisterFlags binds Config fields to the given FlagSet with defaults inline
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.DrainSeconds, "drain-seconds", 60, "seconds to wait for in-flight requests to drain before shutdown (1..300)")
	fs.IntVar(&c.ShutdownBudgetSeconds, "shutdown-budget-seconds", 90, "total seconds for component shutdown after drain (1..300)")
	fs.IntVar(&c.APIPort, "http-port", 8001, "API listen TCP port (1..65535)")
	fs.StringVar(&c.BackendURL, "backend-url", "http://localhost:8000", "base URL of the order/classify/draft backend")
	fs.IntVar(&c.BackendTimeoutSeconds, "backend-timeout-seconds", 30, "per-call timeout for backend requests (1..300)")
	fs.BoolVar(&c.EmailMismatchRouting, "email-mismatch-routing", true, "route fetch_order to the email-mismatch terminal on a failed email validation (off reproduces the legacy wiring that leaves the step unreachable)")
	fs.StringVar(&c.SlackWebhookURL, "slack-webhook-url", "", "Slack webhook URL for triage outcome notifications")
}

// Validate checks all configuration fields for correctness.
// It returns an error if any field is invalid, or nil if all fields are valid.
func (c *Config) Validate() error {
	var errs []error

	// Drain and shutdown budgets
	if c.DrainSeconds <= 0 || c.DrainSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid DRAIN_SECONDS %d (must be 1..300)", c.DrainSeconds))
	}
	if c.ShutdownBudgetSeconds <= 0 || c.ShutdownBudgetSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_BUDGET_SECONDS %d (must be 1..300)", c.ShutdownBudgetSeconds))
	}

	// Shutdown budget must be greater than drain time
	if c.ShutdownBudgetSeconds <= c.DrainSeconds {
		errs = append(errs, fmt.Errorf("SHUTDOWN_BUDGET_SECONDS %d must be greater than DRAIN_SECONDS %d", c.ShutdownBudgetSeconds, c.DrainSeconds))
	}

	// API port must be valid TCP port number
	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %d (must be 1..65535)", c.APIPort))
	}

	// Backend URL is required: every workflow invocation depends on it
	if c.BackendURL == "" {
		errs = append(errs, errors.New("BACKEND_URL is required"))
	} else if u, err := url.Parse(c.BackendURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("invalid BACKEND_URL %q (must be an http or https URL)", c.BackendURL))
	}

	if c.BackendTimeoutSeconds <= 0 || c.BackendTimeoutSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid BACKEND_TIMEOUT_SECONDS %d (must be 1..300)", c.BackendTimeoutSeconds))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
