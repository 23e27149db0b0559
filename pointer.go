package jtd

import "github.com/kaptinlin/jsonpointer"

// ToJSONPointer renders a token sequence (a ValidationError's InstancePath
// or SchemaPath) as an RFC 6901 JSON Pointer string. Delegates to
// jsonpointer.Format, the same package the teacher already uses for this
// exact tokens-to-pointer-string direction (schema.go's Location fields),
// rather than reimplementing RFC 6901 escaping.
func ToJSONPointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return jsonpointer.Format(tokens...)
}
