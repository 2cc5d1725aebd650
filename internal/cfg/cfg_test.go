package cfg

import (
	"flag"
	"math"
	"net/url"
	"strings"
	"testing"
)

// validBase returns a Config with all required fields set to valid values.
func validBase() Config {
	return Config{
		DrainSeconds:          60,
		ShutdownBudgetSeconds: 90,
		APIPort:               8001,
		BackendURL:            "http://localhost:8000",
		BackendTimeoutSeconds: 30,
		EmailMismatchRouting:  true,
	}
}

func TestRegisterFlags_Defaults(t *testing.T) {
	t.Parallel()

	var c Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)

	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse empty args: %v", err)
	}

	if c.DrainSeconds != 60 {
		t.Errorf("DrainSeconds = %d, want 60", c.DrainSeconds)
	}
	if c.ShutdownBudgetSeconds != 90 {
		t.Errorf("ShutdownBudgetSeconds = %d, want 90", c.ShutdownBudgetSeconds)
	}
	if c.APIPort != 8001 {
		t.Errorf("APIPort = %d, want 8001", c.APIPort)
	}
	if c.BackendURL != "http://localhost:8000" {
		t.Errorf("BackendURL = %q, want %q", c.BackendURL, "http://localhost:8000")
	}
	if c.BackendTimeoutSeconds != 30 {
		t.Errorf("BackendTimeoutSeconds = %d, want 30", c.BackendTimeoutSeconds)
	}
	if !c.EmailMismatchRouting {
		t.Error("EmailMismatchRouting = false, want true by default")
	}
	if c.SlackWebhookURL != "" {
		t.Errorf("SlackWebhookURL = %q, want empty", c.SlackWebhookURL)
	}
}

func TestRegisterFlags_Override(t *testing.T) {
	t.Parallel()

	var c Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)

	args := []string{
		"-drain-seconds", "30",
		"-shutdown-budget-seconds", "120",
		"-http-port", "9090",
		"-backend-url", "https://orders.internal:8443",
		"-backend-timeout-seconds", "10",
		"-email-mismatch-routing=false",
		"-slack-webhook-url", "https://hooks.slack.com/services/T/B/X",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse args: %v", err)
	}

	if c.DrainSeconds != 30 {
		t.Errorf("DrainSeconds = %d, want 30", c.DrainSeconds)
	}
	if c.ShutdownBudgetSeconds != 120 {
		t.Errorf("ShutdownBudgetSeconds = %d, want 120", c.ShutdownBudgetSeconds)
	}
	if c.APIPort != 9090 {
		t.Errorf("APIPort = %d, want 9090", c.APIPort)
	}
	if c.BackendURL != "https://orders.internal:8443" {
		t.Errorf("BackendURL = %q, want override", c.BackendURL)
	}
	if c.BackendTimeoutSeconds != 10 {
		t.Errorf("BackendTimeoutSeconds = %d, want 10", c.BackendTimeoutSeconds)
	}
	if c.EmailMismatchRouting {
		t.Error("EmailMismatchRouting = true, want false after override")
	}
	if c.SlackWebhookURL != "https://hooks.slack.com/services/T/B/X" {
		t.Errorf("SlackWebhookURL = %q, want override", c.SlackWebhookURL)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		errSubstr []string // substrings that must appear in error message
	}{
		{
			name:    "defaults are valid",
			cfg:     validBase(),
			wantErr: false,
		},
		{
			name: "minimum valid values",
			cfg: Config{
				DrainSeconds: 1, ShutdownBudgetSeconds: 2, APIPort: 1,
				BackendURL: "http://b", BackendTimeoutSeconds: 1,
			},
			wantErr: false,
		},
		{
			name: "maximum valid values",
			cfg: Config{
				DrainSeconds: 299, ShutdownBudgetSeconds: 300, APIPort: 65535,
				BackendURL: "https://b", BackendTimeoutSeconds: 300,
			},
			wantErr: false,
		},
		// DrainSeconds boundaries
		{
			name:      "drain zero",
			cfg:       Config{DrainSeconds: 0, ShutdownBudgetSeconds: 90, APIPort: 8001, BackendURL: "http://b", BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"DRAIN_SECONDS"},
		},
		{
			name:      "drain above max",
			cfg:       Config{DrainSeconds: 301, ShutdownBudgetSeconds: 302, APIPort: 8001, BackendURL: "http://b", BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"DRAIN_SECONDS"},
		},
		// Cross-field: budget vs drain
		{
			name:      "budget equals drain",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 60, APIPort: 8001, BackendURL: "http://b", BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"must be greater than"},
		},
		{
			name:      "budget less than drain",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 30, APIPort: 8001, BackendURL: "http://b", BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"must be greater than"},
		},
		// APIPort boundaries
		{
			name:      "port zero",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 90, APIPort: 0, BackendURL: "http://b", BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"HTTP_PORT"},
		},
		{
			name:      "port above max",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 90, APIPort: 65536, BackendURL: "http://b", BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"HTTP_PORT"},
		},
		// Backend URL
		{
			name:      "backend url missing",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 90, APIPort: 8001, BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"BACKEND_URL is required"},
		},
		{
			name:      "backend url wrong scheme",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 90, APIPort: 8001, BackendURL: "ftp://b", BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"BACKEND_URL"},
		},
		{
			name:      "backend url no scheme",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 90, APIPort: 8001, BackendURL: "localhost:8000", BackendTimeoutSeconds: 30},
			wantErr:   true,
			errSubstr: []string{"BACKEND_URL"},
		},
		// Backend timeout boundaries
		{
			name:      "backend timeout zero",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 90, APIPort: 8001, BackendURL: "http://b", BackendTimeoutSeconds: 0},
			wantErr:   true,
			errSubstr: []string{"BACKEND_TIMEOUT_SECONDS"},
		},
		{
			name:      "backend timeout above max",
			cfg:       Config{DrainSeconds: 60, ShutdownBudgetSeconds: 90, APIPort: 8001, BackendURL: "http://b", BackendTimeoutSeconds: 301},
			wantErr:   true,
			errSubstr: []string{"BACKEND_TIMEOUT_SECONDS"},
		},
		// Error accumulation: all fields invalid
		{
			name:      "all fields invalid",
			cfg:       Config{DrainSeconds: 0, ShutdownBudgetSeconds: 0, APIPort: 0},
			wantErr:   true,
			errSubstr: []string{"DRAIN_SECONDS", "SHUTDOWN_BUDGET_SECONDS", "HTTP_PORT", "BACKEND_URL", "BACKEND_TIMEOUT_SECONDS"},
		},
		// Extreme values
		{
			name:      "extreme negative values",
			cfg:       Config{DrainSeconds: math.MinInt32, ShutdownBudgetSeconds: math.MinInt32, APIPort: math.MinInt32},
			wantErr:   true,
			errSubstr: []string{"DRAIN_SECONDS", "SHUTDOWN_BUDGET_SECONDS", "HTTP_PORT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				errMsg := err.Error()
				for _, sub := range tt.errSubstr {
					if !strings.Contains(errMsg, sub) {
						t.Errorf("error %q does not contain %q", errMsg, sub)
					}
				}
			}
		})
	}
}

func FuzzValidate(f *testing.F) {
	// Seeds: defaults, boundaries, extremes
	seeds := []struct {
		drain, budget, port, timeout int
		backendURL                   string
	}{
		{60, 90, 8001, 30, "http://localhost:8000"},
		{1, 2, 1, 1, "http://b"},
		{299, 300, 65535, 300, "https://b"},
		{0, 0, 0, 0, ""},
		{-1, -1, -1, -1, ""},
		{301, 302, 65536, 301, "ftp://b"},
		{150, 100, 8001, 30, "http://b"},
		{math.MinInt32, math.MinInt32, math.MinInt32, math.MinInt32, ""},
		{math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32, "http://b"},
	}
	for _, s := range seeds {
		f.Add(s.drain, s.budget, s.port, s.timeout, s.backendURL)
	}

	f.Fuzz(func(t *testing.T, drain, budget, port, timeout int, backendURL string) {
		c := Config{
			DrainSeconds:          drain,
			ShutdownBudgetSeconds: budget,
			APIPort:               port,
			BackendURL:            backendURL,
			BackendTimeoutSeconds: timeout,
		}
		err := c.Validate()

		drainOK := drain >= 1 && drain <= 300
		budgetOK := budget >= 1 && budget <= 300
		portOK := port >= 1 && port <= 65535
		crossOK := budget > drain
		timeoutOK := timeout >= 1 && timeout <= 300
		urlOK := false
		if u, perr := url.Parse(backendURL); perr == nil && (u.Scheme == "http" || u.Scheme == "https") {
			urlOK = true
		}

		allValid := drainOK && budgetOK && portOK && crossOK && timeoutOK && backendURL != "" && urlOK

		if allValid && err != nil {
			t.Errorf("expected no error for valid config %+v, got: %v", c, err)
		}
		if !allValid && err == nil {
			t.Errorf("expected error for invalid config %+v, got nil", c)
		}
	})
}
