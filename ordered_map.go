package jtd

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// SchemaMap is an insertion-order-preserving string-to-*Schema map, used for
// the four collection-of-sub-schema keywords (definitions, properties,
// optionalProperties, mapping). It generalizes the unordered map the
// teacher's own SchemaMap type uses for JSON Schema's "properties" and
// "patternProperties" (which have no order-sensitive semantics) to meet
// JTD's determinism requirement that error emission order match schema
// declaration order (spec section 5).
type SchemaMap struct {
	keys   []string
	values map[string]*Schema
}

// NewSchemaMap returns an empty, ready-to-use SchemaMap.
func NewSchemaMap() *SchemaMap {
	return &SchemaMap{values: make(map[string]*Schema)}
}

// Set inserts or overwrites the schema for key, appending key to the
// iteration order the first time it's seen.
func (m *SchemaMap) Set(key string, schema *Schema) {
	if m.values == nil {
		m.values = make(map[string]*Schema)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = schema
}

// Get returns the schema stored under key, and whether it was present.
func (m *SchemaMap) Get(key string) (*Schema, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.values[key]
	return s, ok
}

// Has reports whether key is present.
func (m *SchemaMap) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion (declaration) order.
func (m *SchemaMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len reports the number of entries.
func (m *SchemaMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSONTo implements jsontext's MarshalerTo, emitting keys in
// insertion order rather than Go's randomized map order.
func (m *SchemaMap) MarshalJSONTo(enc *jsontext.Encoder, opts json.Options) error {
	if m == nil {
		return enc.WriteToken(jsontext.Null)
	}
	if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	for _, k := range m.keys {
		if err := enc.WriteToken(jsontext.String(k)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, m.values[k], opts); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.ObjectEnd)
}
