package jtd

import (
	"math"
	"math/big"
	"sort"

	"github.com/goccy/go-json"
)

// instanceKind classifies a decoded JSON instance value the same coarse way
// the teacher's getDataType does for JSON Schema, distinguishing "integer"
// from "number" by testing whether a numeric value has a fractional part —
// needed because the wire has no such distinction but several TYPE schemas
// (int8, uint32, ...) do.
type instanceKind string

const (
	kindNull    instanceKind = "null"
	kindBoolean instanceKind = "boolean"
	kindInteger instanceKind = "integer"
	kindNumber  instanceKind = "number"
	kindString  instanceKind = "string"
	kindArray   instanceKind = "array"
	kindObject  instanceKind = "object"
	kindUnknown instanceKind = "unknown"
)

func classify(v any) instanceKind {
	switch v := v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBoolean
	case json.Number:
		if isIntegral(string(v)) {
			return kindInteger
		}
		return kindNumber
	case float64:
		if bf := big.NewFloat(v); true {
			if _, acc := bf.Int(nil); acc == big.Exact {
				return kindInteger
			}
		}
		return kindNumber
	case float32:
		return classify(float64(v))
	case string:
		return kindString
	case []any:
		return kindArray
	case *orderedObject, map[string]any:
		return kindObject
	default:
		return kindUnknown
	}
}

func isIntegral(lit string) bool {
	if _, ok := new(big.Int).SetString(lit, 10); ok {
		return true
	}
	bf, ok := new(big.Float).SetString(lit)
	if !ok {
		return false
	}
	_, acc := bf.Int(nil)
	return acc == big.Exact
}

// integer bounds for the six fixed-width integer TypeTags (spec section
// 6.3's type-form rules); float32/float64 accept any integer or number.
var integerBounds = map[TypeTag][2]float64{
	TypeInt8:   {math.MinInt8, math.MaxInt8},
	TypeUint8:  {0, math.MaxUint8},
	TypeInt16:  {math.MinInt16, math.MaxInt16},
	TypeUint16: {0, math.MaxUint16},
	TypeInt32:  {math.MinInt32, math.MaxInt32},
	TypeUint32: {0, math.MaxUint32},
}

// numericValue extracts a float64 from whichever numeric representation the
// instance value uses, so the integer-range check works whether the caller
// decoded their instance through DecodeInstance (json.Number) or through
// encoding/json.Unmarshal into any (float64).
func numericValue(v any) (float64, bool) {
	switch v := v.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	return 0, false
}

// asObject adapts either of the two object representations Validate accepts
// — *orderedObject (from DecodeInstance, order-preserving) or a plain
// map[string]any (from encoding/json.Unmarshal, sorted for determinism
// since Go maps don't remember insertion order) — to a common view.
func asObject(v any) (objectView, bool) {
	switch v := v.(type) {
	case *orderedObject:
		return v, true
	case map[string]any:
		return mapObject(v), true
	}
	return nil, false
}

type objectView interface {
	Keys() []string
	Get(key string) (any, bool)
}

type mapObject map[string]any

func (m mapObject) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m mapObject) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}
