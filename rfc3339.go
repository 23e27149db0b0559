package jtd

import "time"

// IsRFC3339 is the default TYPE:timestamp predicate (spec section 6.3). It
// defers entirely to the standard library's RFC 3339 layout parser rather
// than a dedicated validation library: none of the corpus's format/pattern
// packages (teacher's deleted pattern.go, format.go) target timestamps
// specifically, and time.Parse already implements the grammar. Like the
// Python original's strict_rfc3339 dependency, time.Parse rejects the
// leap-second literal ":60" ("second out of range").
//
// ValidationOptions.IsRFC3339 lets a caller plug in a stricter or looser
// predicate without forking the validator.
func IsRFC3339(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
