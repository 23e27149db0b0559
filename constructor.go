package jtd

// Keyword applies an optional, non-form-determining setting (metadata,
// nullable) to a schema under construction — the same functional-option
// shape the teacher's own Keyword type uses for its (unrelated) per-type
// JSON Schema keywords.
type Keyword func(*Schema)

// Meta attaches metadata to the schema it's applied to.
func Meta(v any) Keyword {
	return func(s *Schema) { s.Metadata = v }
}

// NullableKeyword marks the schema it's applied to as accepting null.
func NullableKeyword() Keyword {
	return func(s *Schema) {
		v := true
		s.Nullable = &v
	}
}

func apply(s *Schema, keywords []Keyword) *Schema {
	for _, k := range keywords {
		k(s)
	}
	return s
}

// Empty builds an EMPTY-form schema: one that accepts any instance.
func Empty(keywords ...Keyword) *Schema {
	return apply(&Schema{}, keywords)
}

// RefTo builds a REF-form schema pointing at a definitions entry by name.
func RefTo(name string, keywords ...Keyword) *Schema {
	return apply(&Schema{Ref: &name}, keywords)
}

// TypeOf builds a TYPE-form schema for one of the eleven TypeTag values.
func TypeOf(tag TypeTag, keywords ...Keyword) *Schema {
	return apply(&Schema{Type: &tag}, keywords)
}

// EnumOf builds an ENUM-form schema from a fixed set of string values.
func EnumOf(values []string, keywords ...Keyword) *Schema {
	return apply(&Schema{Enum: values}, keywords)
}

// Elements builds an ELEMENTS-form schema: an array of items, each
// validated against element.
func Elements(element *Schema, keywords ...Keyword) *Schema {
	return apply(&Schema{Elements: element}, keywords)
}

// PropEntry is one (name, schema) pair passed to Properties or
// WithOptional, built by Prop.
type PropEntry struct {
	Name   string
	Schema *Schema
}

// Prop pairs a property name with its schema, for use with Properties and
// WithOptional.
func Prop(name string, schema *Schema) PropEntry {
	return PropEntry{Name: name, Schema: schema}
}

// Properties builds a PROPERTIES-form schema with the given required
// properties. Use WithOptional and WithAdditional to add the other two
// PROPERTIES-form fields, since both are themselves part of the same form.
func Properties(props ...PropEntry) *Schema {
	m := NewSchemaMap()
	for _, p := range props {
		m.Set(p.Name, p.Schema)
	}
	return &Schema{Properties: m}
}

// WithOptional adds optionalProperties entries to a PROPERTIES-form schema
// built by Properties, returning it for chaining.
func WithOptional(s *Schema, props ...PropEntry) *Schema {
	m := NewSchemaMap()
	for _, p := range props {
		m.Set(p.Name, p.Schema)
	}
	s.OptionalProperties = m
	return s
}

// WithAdditional sets additionalProperties on a PROPERTIES-form schema,
// returning it for chaining.
func WithAdditional(s *Schema, allowed bool) *Schema {
	s.AdditionalProperties = &allowed
	return s
}

// Values builds a VALUES-form schema: an object whose every value is
// validated against value.
func Values(value *Schema, keywords ...Keyword) *Schema {
	return apply(&Schema{Values: value}, keywords)
}

// MappingEntry is one (tag value, schema) pair passed to Discriminator,
// built by Case.
type MappingEntry struct {
	Tag    string
	Schema *Schema
}

// Case pairs a discriminator tag value with the PROPERTIES-form schema it
// maps to, for use with Discriminator.
func Case(tag string, schema *Schema) MappingEntry {
	return MappingEntry{Tag: tag, Schema: schema}
}

// Discriminator builds a DISCRIMINATOR-form schema: instances are tagged
// objects, dispatched on the value of field to one of cases.
func Discriminator(field string, cases ...MappingEntry) *Schema {
	m := NewSchemaMap()
	for _, c := range cases {
		m.Set(c.Tag, c.Schema)
	}
	return &Schema{Discriminator: &field, Mapping: m}
}

// WithDefinitions attaches top-level definitions to a schema, returning it
// for chaining. Only meaningful on the document's root schema — ValidateSelf
// rejects definitions elsewhere.
func WithDefinitions(s *Schema, defs ...PropEntry) *Schema {
	m := NewSchemaMap()
	for _, d := range defs {
		m.Set(d.Name, d.Schema)
	}
	s.Definitions = m
	return s
}
