package extract

import (
	"strings"
	"testing"
)

func TestOrderID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"plain token", "My speaker is broken ORD1002", "ORD1002", true},
		{"token at start", "ORD1004 arrived damaged", "ORD1004", true},
		{"lowercase preserved", "please check ord1234 for me", "ord1234", true},
		{"mixed case preserved", "ref Ord9876", "Ord9876", true},
		{"embedded in word", "fooORD1002bar", "ORD1002", true},
		{"first of several", "ORD1001 duplicates ORD1002", "ORD1001", true},
		{"extra digits match first four", "ORD12345", "ORD1234", true},
		{"too few digits", "ORD123 is not a real order", "", false},
		{"no token", "my product is broken", "", false},
		{"empty text", "", "", false},
		{"email only", "reach me at alice@example.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := OrderID(tt.text)
			if ok != tt.found {
				t.Fatalf("OrderID(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("OrderID(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"plain address", "contact alice@example.com, product broken", "alice@example.com", true},
		{"trailing period excluded", "write to bob@example.org.", "bob@example.org", true},
		{"first of several", "cc alice@example.com and bob@example.com", "alice@example.com", true},
		{"plus and dots in local part", "billing.team+refunds@shop.co.uk please", "billing.team+refunds@shop.co.uk", true},
		{"single letter tld rejected", "weird@host.x", "", false},
		{"missing domain", "not-an-email@", "", false},
		{"no address", "my speaker is broken", "", false},
		{"empty text", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Email(tt.text)
			if ok != tt.found {
				t.Fatalf("Email(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func FuzzOrderID(f *testing.F) {
	f.Add("My speaker is broken ORD1002")
	f.Add("ord0000")
	f.Add("")
	f.Add("ORD")
	f.Add(string([]byte{0x00, 0xff, 0xfe}))

	f.Fuzz(func(t *testing.T, text string) {
		got, ok := OrderID(text)
		if !ok {
			if got != "" {
				t.Errorf("miss returned non-empty value %q", got)
			}
			return
		}
		if !strings.Contains(text, got) {
			t.Errorf("extracted %q not present in input", got)
		}
		if len(got) != 7 {
			t.Errorf("extracted %q has length %d, want 7", got, len(got))
		}
	})
}

func FuzzEmail(f *testing.F) {
	f.Add("contact alice@example.com, product broken")
	f.Add("@")
	f.Add("a@b.cd")
	f.Add("")
	f.Add(string([]byte{0x00, 0xff, 0xfe}))

	f.Fuzz(func(t *testing.T, text string) {
		got, ok := Email(text)
		if !ok {
			if got != "" {
				t.Errorf("miss returned non-empty value %q", got)
			}
			return
		}
		if !strings.Contains(text, got) {
			t.Errorf("extracted %q not present in input", got)
		}
		if !strings.Contains(got, "@") {
			t.Errorf("extracted %q is not email-shaped", got)
		}
	})
}
