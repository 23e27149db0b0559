package jtd

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-json"
)

// orderedObject is instance-side counterpart to SchemaMap: a JSON object
// decoded by DecodeInstance, remembering the order its keys were parsed in.
// Spec section 5's determinism guarantee covers instance object iteration
// order too (additionalProperties rejection, VALUES), not just schema
// objects, so losing it to a plain Go map would make error order
// irreproducible across runs even for a fixed schema and instance.
type orderedObject struct {
	keys   []string
	values map[string]any
}

func newOrderedObject() *orderedObject {
	return &orderedObject{values: make(map[string]any)}
}

func (o *orderedObject) set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *orderedObject) Keys() []string { return o.keys }

func (o *orderedObject) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// DecodeInstance parses data into the any/bool/json.Number/string/[]any/
// *orderedObject value tree Validate expects, preserving object key order.
// It is the instance-side sibling of FromJSON: both walk jsontext tokens
// directly rather than going through a reflection-based Unmarshal, for the
// same reason — a plain map destroys the order spec section 5 requires.
func DecodeInstance(data []byte) (any, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	v, err := decodeInstanceValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeInstanceValue(dec *jsontext.Decoder) (any, error) {
	switch dec.PeekKind() {
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return nil, nil
	case 'f', 't':
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return tok.Bool(), nil
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return tok.String(), nil
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		return json.Number(string(raw)), nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		arr := []any{}
		for dec.PeekKind() != ']' {
			elem, err := decodeInstanceValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		obj := newOrderedObject()
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			val, err := decodeInstanceValue(dec)
			if err != nil {
				return nil, err
			}
			obj.set(keyTok.String(), val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("jtd: malformed JSON instance")
	}
}
