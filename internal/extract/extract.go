// Package extract derives identifying signals from raw ticket text.
// Both extractors are pure pattern matches; a miss is a normal outcome,
// not an error.
package extract

import "regexp"

// orderIDRe matches an ORD token followed by exactly four digits,
// case-insensitive. Original casing is preserved in the returned match.
var orderIDRe = regexp.MustCompile(`(?i)(ORD\d{4})`)

// emailRe matches a standard local@domain.tld email address.
var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// OrderID returns the first order identifier token in text, verbatim.
func OrderID(text string) (string, bool) {
	m := orderIDRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// Email returns the first email address in text.
func Email(text string) (string, bool) {
	m := emailRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}
