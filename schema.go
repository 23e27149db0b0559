package jtd

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Keyword names as they appear on the wire. Used both for JSON tags and for
// the schema_path tokens the instance validator pushes.
const (
	keywordMetadata             = "metadata"
	keywordNullable             = "nullable"
	keywordDefinitions          = "definitions"
	keywordRef                  = "ref"
	keywordType                 = "type"
	keywordEnum                 = "enum"
	keywordElements             = "elements"
	keywordProperties           = "properties"
	keywordOptionalProperties   = "optionalProperties"
	keywordAdditionalProperties = "additionalProperties"
	keywordValues               = "values"
	keywordDiscriminator        = "discriminator"
	keywordMapping              = "mapping"
)

// knownKeywords is the full set of the thirteen legal schema keywords
// (spec section 3.1, section 6.1). Anything else in a schema object is
// rejected by the loader (C2).
var knownKeywords = map[string]struct{}{
	keywordMetadata:             {},
	keywordNullable:             {},
	keywordDefinitions:          {},
	keywordRef:                  {},
	keywordType:                 {},
	keywordEnum:                 {},
	keywordElements:             {},
	keywordProperties:           {},
	keywordOptionalProperties:   {},
	keywordAdditionalProperties: {},
	keywordValues:               {},
	keywordDiscriminator:        {},
	keywordMapping:              {},
}

// TypeTag is one of the eleven legal values of the schema "type" keyword.
type TypeTag string

// The eleven legal TypeTag values (spec section 3.1).
const (
	TypeBoolean   TypeTag = "boolean"
	TypeInt8      TypeTag = "int8"
	TypeUint8     TypeTag = "uint8"
	TypeInt16     TypeTag = "int16"
	TypeUint16    TypeTag = "uint16"
	TypeInt32     TypeTag = "int32"
	TypeUint32    TypeTag = "uint32"
	TypeFloat32   TypeTag = "float32"
	TypeFloat64   TypeTag = "float64"
	TypeString    TypeTag = "string"
	TypeTimestamp TypeTag = "timestamp"
)

var validTypeTags = map[TypeTag]struct{}{
	TypeBoolean:   {},
	TypeInt8:      {},
	TypeUint8:     {},
	TypeInt16:     {},
	TypeUint16:    {},
	TypeInt32:     {},
	TypeUint32:    {},
	TypeFloat32:   {},
	TypeFloat64:   {},
	TypeString:    {},
	TypeTimestamp: {},
}

// Form is one of the eight disjoint shapes a JTD schema may take (spec
// section 3.1, section 4.1).
type Form int

const (
	FormEmpty Form = iota
	FormRef
	FormType
	FormEnum
	FormElements
	FormProperties
	FormValues
	FormDiscriminator
)

func (f Form) String() string {
	switch f {
	case FormEmpty:
		return "EMPTY"
	case FormRef:
		return "REF"
	case FormType:
		return "TYPE"
	case FormEnum:
		return "ENUM"
	case FormElements:
		return "ELEMENTS"
	case FormProperties:
		return "PROPERTIES"
	case FormValues:
		return "VALUES"
	case FormDiscriminator:
		return "DISCRIMINATOR"
	default:
		return "UNKNOWN"
	}
}

// Schema is the internal representation of a JTD schema: thirteen optional
// fields (spec section 3.1). Which of the ten form-bearing fields are
// present determines the schema's Form (section 4.1); Metadata, Nullable
// and Definitions are not form-bearing.
//
// The four collection-of-sub-schema fields (Definitions, Properties,
// OptionalProperties, Mapping) use SchemaMap, an insertion-order-preserving
// map, rather than a plain Go map: section 5 makes object iteration order a
// hard determinism requirement, and a plain map would throw it away.
type Schema struct {
	Metadata             any        `json:"metadata,omitempty"`
	Nullable             *bool      `json:"nullable,omitempty"`
	Definitions          *SchemaMap `json:"definitions,omitempty"`
	Ref                  *string    `json:"ref,omitempty"`
	Type                 *TypeTag   `json:"type,omitempty"`
	Enum                 []string   `json:"enum,omitempty"`
	Elements             *Schema    `json:"elements,omitempty"`
	Properties           *SchemaMap `json:"properties,omitempty"`
	OptionalProperties   *SchemaMap `json:"optionalProperties,omitempty"`
	AdditionalProperties *bool      `json:"additionalProperties,omitempty"`
	Values               *Schema    `json:"values,omitempty"`
	Discriminator        *string    `json:"discriminator,omitempty"`
	Mapping              *SchemaMap `json:"mapping,omitempty"`
}

// formSignature computes the 10-bit presence vector of spec section 4.1, in
// the order: ref, type, enum, elements, properties, optionalProperties,
// additionalProperties, values, discriminator, mapping.
func (s *Schema) formSignature() [10]bool {
	return [10]bool{
		s.Ref != nil,
		s.Type != nil,
		s.Enum != nil,
		s.Elements != nil,
		s.Properties != nil,
		s.OptionalProperties != nil,
		s.AdditionalProperties != nil,
		s.Values != nil,
		s.Discriminator != nil,
		s.Mapping != nil,
	}
}

// validFormSignatures is the table from spec section 4.1. Index meaning
// matches formSignature's bit order.
var validFormSignatures = [][10]bool{
	{false, false, false, false, false, false, false, false, false, false}, // EMPTY
	{true, false, false, false, false, false, false, false, false, false}, // REF
	{false, true, false, false, false, false, false, false, false, false}, // TYPE
	{false, false, true, false, false, false, false, false, false, false}, // ENUM
	{false, false, false, true, false, false, false, false, false, false}, // ELEMENTS
	{false, false, false, false, true, false, false, false, false, false}, // PROPERTIES
	{false, false, false, false, false, true, false, false, false, false}, // PROPERTIES
	{false, false, false, false, true, true, false, false, false, false},  // PROPERTIES
	{false, false, false, false, true, false, true, false, false, false}, // PROPERTIES + additionalProperties
	{false, false, false, false, false, true, true, false, false, false}, // PROPERTIES + additionalProperties
	{false, false, false, false, true, true, true, false, false, false},  // PROPERTIES + additionalProperties
	{false, false, false, false, false, false, false, true, false, false}, // VALUES
	{false, false, false, false, false, false, false, false, true, true}, // DISCRIMINATOR
}

// Form reports which of the eight JTD forms s takes (C1, spec section 4.1).
// It is evaluated by the same precedence order spec section 4.1 specifies:
// REF, TYPE, ENUM, ELEMENTS, PROPERTIES, VALUES, DISCRIMINATOR, else EMPTY.
func (s *Schema) Form() Form {
	switch {
	case s.Ref != nil:
		return FormRef
	case s.Type != nil:
		return FormType
	case s.Enum != nil:
		return FormEnum
	case s.Elements != nil:
		return FormElements
	case s.Properties != nil || s.OptionalProperties != nil:
		return FormProperties
	case s.Values != nil:
		return FormValues
	case s.Discriminator != nil:
		return FormDiscriminator
	default:
		return FormEmpty
	}
}

// MarshalJSON renders the schema deterministically, preserving the
// insertion order SchemaMap recorded at load time so that
// FromJSON(s.MarshalJSON()) round-trips for any schema accepted by
// ValidateSelf (spec section 8, "round-trip").
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s)
}

// MarshalJSONTo implements jsontext's MarshalerTo so that nested Schema and
// SchemaMap values serialize through the same ordered encoder rather than
// falling back to reflection over a plain map.
func (s *Schema) MarshalJSONTo(enc *jsontext.Encoder, opts json.Options) error {
	if s == nil {
		return enc.WriteToken(jsontext.Null)
	}
	if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	write := func(key string, v any) error {
		if err := enc.WriteToken(jsontext.String(key)); err != nil {
			return err
		}
		return json.MarshalEncode(enc, v, opts)
	}
	if s.Metadata != nil {
		if err := write(keywordMetadata, s.Metadata); err != nil {
			return err
		}
	}
	if s.Nullable != nil {
		if err := write(keywordNullable, s.Nullable); err != nil {
			return err
		}
	}
	if s.Definitions != nil {
		if err := write(keywordDefinitions, s.Definitions); err != nil {
			return err
		}
	}
	if s.Ref != nil {
		if err := write(keywordRef, s.Ref); err != nil {
			return err
		}
	}
	if s.Type != nil {
		if err := write(keywordType, s.Type); err != nil {
			return err
		}
	}
	if s.Enum != nil {
		if err := write(keywordEnum, s.Enum); err != nil {
			return err
		}
	}
	if s.Elements != nil {
		if err := write(keywordElements, s.Elements); err != nil {
			return err
		}
	}
	if s.Properties != nil {
		if err := write(keywordProperties, s.Properties); err != nil {
			return err
		}
	}
	if s.OptionalProperties != nil {
		if err := write(keywordOptionalProperties, s.OptionalProperties); err != nil {
			return err
		}
	}
	if s.AdditionalProperties != nil {
		if err := write(keywordAdditionalProperties, s.AdditionalProperties); err != nil {
			return err
		}
	}
	if s.Values != nil {
		if err := write(keywordValues, s.Values); err != nil {
			return err
		}
	}
	if s.Discriminator != nil {
		if err := write(keywordDiscriminator, s.Discriminator); err != nil {
			return err
		}
	}
	if s.Mapping != nil {
		if err := write(keywordMapping, s.Mapping); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.ObjectEnd)
}
