package jtd

import (
	"bytes"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// FromJSON is the syntactic load, C2 (spec section 4.2, section 6.2:
// Schema::from_json). It rejects unknown keywords and any schema position
// (top-level or nested) that isn't a JSON object, and rejects a field whose
// JSON type doesn't match its keyword's shape (e.g. "nullable": "yes").
//
// It does not check cross-field rules — ref target existence, key
// disjointness, the form-signature table, and so on are ValidateSelf's job
// (C3) — because those need context (the root schema, sibling fields) a
// single recursive decode pass can't assemble as cheaply as a second pass
// that already has a fully-built tree to look at.
//
// Following the order-preservation idiom the teacher reserves for
// MarshalJSONTo (schema.go), FromJSON walks jsontext tokens directly rather
// than unmarshaling into a plain map, so that Definitions, Properties,
// OptionalProperties and Mapping preserve declaration order end to end.
func FromJSON(data []byte) (*Schema, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	return decodeSchema(dec, nil)
}

func decodeSchema(dec *jsontext.Decoder, path []string) (*Schema, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	if tok.Kind() != '{' {
		return nil, newSchemaError(KindShape, path)
	}

	s := &Schema{}
	for dec.PeekKind() != '}' {
		keyTok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		key := keyTok.String()

		if _, ok := knownKeywords[key]; !ok {
			return nil, newSchemaFieldError(KindUnknownKeyword, key, path)
		}
		fieldPath := append(append([]string(nil), path...), key)

		switch key {
		case keywordMetadata:
			var v any
			if err := json.UnmarshalDecode(dec, &v); err != nil {
				return nil, newSchemaFieldError(KindTypeInvariant, key, path)
			}
			s.Metadata = v
		case keywordNullable:
			var v bool
			if err := json.UnmarshalDecode(dec, &v); err != nil {
				return nil, newSchemaFieldError(KindTypeInvariant, key, path)
			}
			s.Nullable = &v
		case keywordDefinitions:
			m, err := decodeSchemaMap(dec, fieldPath)
			if err != nil {
				return nil, err
			}
			s.Definitions = m
		case keywordRef:
			var v string
			if err := json.UnmarshalDecode(dec, &v); err != nil {
				return nil, newSchemaFieldError(KindTypeInvariant, key, path)
			}
			s.Ref = &v
		case keywordType:
			var v string
			if err := json.UnmarshalDecode(dec, &v); err != nil {
				return nil, newSchemaFieldError(KindTypeInvariant, key, path)
			}
			tag := TypeTag(v)
			s.Type = &tag
		case keywordEnum:
			v, err := decodeStringArray(dec)
			if err != nil {
				return nil, newSchemaFieldError(KindTypeInvariant, key, path)
			}
			s.Enum = v // emptiness and uniqueness are ValidateSelf's job
		case keywordElements:
			sub, err := decodeSchema(dec, fieldPath)
			if err != nil {
				return nil, err
			}
			s.Elements = sub
		case keywordProperties:
			m, err := decodeSchemaMap(dec, fieldPath)
			if err != nil {
				return nil, err
			}
			s.Properties = m
		case keywordOptionalProperties:
			m, err := decodeSchemaMap(dec, fieldPath)
			if err != nil {
				return nil, err
			}
			s.OptionalProperties = m
		case keywordAdditionalProperties:
			var v bool
			if err := json.UnmarshalDecode(dec, &v); err != nil {
				return nil, newSchemaFieldError(KindTypeInvariant, key, path)
			}
			s.AdditionalProperties = &v
		case keywordValues:
			sub, err := decodeSchema(dec, fieldPath)
			if err != nil {
				return nil, err
			}
			s.Values = sub
		case keywordDiscriminator:
			var v string
			if err := json.UnmarshalDecode(dec, &v); err != nil {
				return nil, newSchemaFieldError(KindTypeInvariant, key, path)
			}
			s.Discriminator = &v
		case keywordMapping:
			m, err := decodeSchemaMap(dec, fieldPath)
			if err != nil {
				return nil, err
			}
			s.Mapping = m
		}
	}

	if _, err := dec.ReadToken(); err != nil { // consume '}'
		return nil, err
	}
	return s, nil
}

func decodeSchemaMap(dec *jsontext.Decoder, path []string) (*SchemaMap, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	if tok.Kind() != '{' {
		return nil, newSchemaError(KindShape, path)
	}

	m := NewSchemaMap()
	for dec.PeekKind() != '}' {
		keyTok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		key := keyTok.String()
		sub, err := decodeSchema(dec, append(append([]string(nil), path...), key))
		if err != nil {
			return nil, err
		}
		m.Set(key, sub)
	}
	if _, err := dec.ReadToken(); err != nil { // consume '}'
		return nil, err
	}
	return m, nil
}

func decodeStringArray(dec *jsontext.Decoder) ([]string, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	if tok.Kind() != '[' {
		return nil, ErrTypeInvariant
	}
	var out []string
	for dec.PeekKind() != ']' {
		elemTok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		if elemTok.Kind() != '"' {
			return nil, ErrTypeInvariant
		}
		out = append(out, elemTok.String())
	}
	if _, err := dec.ReadToken(); err != nil { // consume ']'
		return nil, err
	}
	return out, nil
}
