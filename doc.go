// Package jtd implements a JSON Type Definition (RFC 8927) schema model and
// validator: loading and semantically checking a JTD schema document, and
// validating a JSON instance against a parsed schema into a deterministic,
// ordered list of validation errors.
package jtd
