package jtd

import "fmt"

// ValidationError is one entry of the flat, ordered list Validate returns
// (spec section 4.4, section 7.2). InstancePath and SchemaPath are the exact
// token sequences the walk had pushed when the mismatch was found — neither
// is a JSON Pointer string; ToJSONPointer on each renders one.
type ValidationError struct {
	InstancePath []string
	SchemaPath   []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("instance at %s does not satisfy schema at %s",
		ToJSONPointer(e.InstancePath), ToJSONPointer(e.SchemaPath))
}

// ValidationOptions configures Validate (spec section 4.4, section 7.3).
// The zero value is a permissive default: no depth or error-count bound,
// RFC3339 timestamps checked by IsRFC3339.
type ValidationOptions struct {
	// MaxDepth bounds the number of active schema frames: the root frame
	// plus one per ref being followed. Zero means unbounded. Exceeding it aborts with *MaxDepthExceeded rather than
	// contributing a ValidationError.
	MaxDepth uint

	// MaxErrors stops the walk once this many errors have been
	// collected, returning normally with exactly that many. Zero means
	// unbounded.
	MaxErrors uint

	// IsRFC3339 overrides the timestamp predicate TYPE:timestamp uses.
	// Defaults to IsRFC3339 (rfc3339.go) when nil.
	IsRFC3339 func(string) bool
}

// Validate checks instance against schema and returns every mismatch found,
// in the deterministic order spec section 5 requires: a pre-order walk of
// the schema, and within PROPERTIES, declaration order of properties then
// optionalProperties. A non-nil error is *MaxDepthExceeded; it is never a
// *ValidationError — those only ever appear in the returned slice.
//
// instance must be built from nil/bool/string/[]any and either json.Number
// or float64 for numbers, with objects as *orderedObject (DecodeInstance)
// or map[string]any (encoding/json.Unmarshal, order not preserved).
func Validate(schema *Schema, instance any, options ValidationOptions) (errs []ValidationError, err error) {
	st := &validationState{
		root:      schema,
		maxDepth:  options.MaxDepth,
		maxErrors: options.MaxErrors,
		isRFC3339: options.IsRFC3339,
	}
	if st.isRFC3339 == nil {
		st.isRFC3339 = IsRFC3339
	}

	defer func() {
		if r := recover(); r != nil {
			if md, ok := r.(*MaxDepthExceeded); ok {
				errs, err = nil, md
				return
			}
			panic(r)
		}
	}()

	st.walk(schema, instance, "")
	return st.errors, nil
}

// validationState carries the two token stacks and accumulated errors
// through one Validate call. Every walk* function must leave both stacks
// exactly as it found them on every return path, including early return
// (a stopWalk or *MaxDepthExceeded unwind skips the pops and abandons the
// state, which belongs to that one call) —
// the same discipline the teacher's evaluation path tracking (result.go)
// keeps, generalized from a single dotted string to two independent stacks
// because instance_path and schema_path advance independently (a ref jump
// moves schema_path without moving instance_path at all).
type validationState struct {
	root      *Schema
	maxDepth  uint
	maxErrors uint
	isRFC3339 func(string) bool

	instancePath []string
	schemaPath   []string
	refDepth     uint

	errors []ValidationError
}

func (st *validationState) pushInstance(tok string) { st.instancePath = append(st.instancePath, tok) }
func (st *validationState) popInstance()            { st.instancePath = st.instancePath[:len(st.instancePath)-1] }
func (st *validationState) pushSchema(tok string)    { st.schemaPath = append(st.schemaPath, tok) }
func (st *validationState) popSchema()               { st.schemaPath = st.schemaPath[:len(st.schemaPath)-1] }

func (st *validationState) fail() {
	st.errors = append(st.errors, ValidationError{
		InstancePath: append([]string(nil), st.instancePath...),
		SchemaPath:   append([]string(nil), st.schemaPath...),
	})
	if st.maxErrors != 0 && uint(len(st.errors)) >= st.maxErrors {
		panic(stopWalk{})
	}
}

// stopWalk is the panic value used for the max_errors non-local exit: it
// unwinds the whole walk stack without threading a "stop" bool return
// through every walk* function. Validate's recover only treats
// *MaxDepthExceeded specially; a stopWalk is swallowed and the errors
// accumulated so far are returned as-is.
type stopWalk struct{}

func (st *validationState) walk(schema *Schema, instance any, parentTag string) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopWalk); ok {
				return
			}
			panic(r)
		}
	}()
	st.walkNonStopping(schema, instance, parentTag)
}

// walkNonStopping is split out from walk so recursive calls (ELEMENTS,
// PROPERTIES, VALUES, REF, DISCRIMINATOR) don't each install their own
// recover and silently stop only their own subtree: stopWalk must unwind
// all the way to the top-level recover Validate's walk call sets up.
func (st *validationState) walkNonStopping(schema *Schema, instance any, parentTag string) {
	if schema.Nullable != nil && *schema.Nullable && instance == nil {
		return
	}

	switch schema.Form() {
	case FormEmpty:
		// no constraint
	case FormRef:
		st.walkRef(schema, instance)
	case FormType:
		st.walkType(schema, instance)
	case FormEnum:
		st.walkEnum(schema, instance)
	case FormElements:
		st.walkElements(schema, instance)
	case FormProperties:
		st.walkProperties(schema, instance, parentTag)
	case FormValues:
		st.walkValues(schema, instance)
	case FormDiscriminator:
		st.walkDiscriminator(schema, instance)
	}
}

func (st *validationState) walkRef(schema *Schema, instance any) {
	target, _ := st.root.Definitions.Get(*schema.Ref)

	st.refDepth++
	if st.maxDepth != 0 && st.refDepth >= st.maxDepth {
		panic(&MaxDepthExceeded{MaxDepth: st.maxDepth})
	}
	defer func() { st.refDepth-- }()

	st.pushSchema(keywordDefinitions)
	st.pushSchema(*schema.Ref)
	st.walkNonStopping(target, instance, "")
	st.popSchema()
	st.popSchema()
}

func (st *validationState) walkType(schema *Schema, instance any) {
	st.pushSchema(keywordType)
	defer st.popSchema()

	kind := classify(instance)
	switch *schema.Type {
	case TypeBoolean:
		if kind != kindBoolean {
			st.fail()
		}
	case TypeString:
		if kind != kindString {
			st.fail()
		}
	case TypeTimestamp:
		s, ok := instance.(string)
		if !ok || !st.isRFC3339(s) {
			st.fail()
		}
	case TypeFloat32, TypeFloat64:
		if kind != kindInteger && kind != kindNumber {
			st.fail()
		}
	default: // the six fixed-width integer tags
		if kind != kindInteger {
			st.fail()
			return
		}
		f, ok := numericValue(instance)
		bounds := integerBounds[*schema.Type]
		if !ok || f < bounds[0] || f > bounds[1] {
			st.fail()
		}
	}
}

func (st *validationState) walkEnum(schema *Schema, instance any) {
	st.pushSchema(keywordEnum)
	defer st.popSchema()

	s, ok := instance.(string)
	if !ok {
		st.fail()
		return
	}
	for _, v := range schema.Enum {
		if v == s {
			return
		}
	}
	st.fail()
}

func (st *validationState) walkElements(schema *Schema, instance any) {
	st.pushSchema(keywordElements)
	defer st.popSchema()

	arr, ok := instance.([]any)
	if !ok {
		st.fail()
		return
	}
	for i, elem := range arr {
		st.pushInstance(fmt.Sprintf("%d", i))
		st.walkNonStopping(schema.Elements, elem, "")
		st.popInstance()
	}
}

func (st *validationState) walkValues(schema *Schema, instance any) {
	st.pushSchema(keywordValues)
	defer st.popSchema()

	obj, ok := asObject(instance)
	if !ok {
		st.fail()
		return
	}
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		st.pushInstance(k)
		st.walkNonStopping(schema.Values, v, "")
		st.popInstance()
	}
}

func (st *validationState) walkProperties(schema *Schema, instance any, parentTag string) {
	obj, ok := asObject(instance)
	if !ok {
		if schema.Properties != nil {
			st.pushSchema(keywordProperties)
		} else {
			st.pushSchema(keywordOptionalProperties)
		}
		st.fail()
		st.popSchema()
		return
	}

	if schema.Properties != nil {
		st.pushSchema(keywordProperties)
		for _, k := range schema.Properties.Keys() {
			sub, _ := schema.Properties.Get(k)
			v, present := obj.Get(k)
			st.pushSchema(k)
			if !present {
				st.fail()
			} else {
				st.pushInstance(k)
				st.walkNonStopping(sub, v, "")
				st.popInstance()
			}
			st.popSchema()
		}
		st.popSchema()
	}

	if schema.OptionalProperties != nil {
		st.pushSchema(keywordOptionalProperties)
		for _, k := range schema.OptionalProperties.Keys() {
			sub, _ := schema.OptionalProperties.Get(k)
			v, present := obj.Get(k)
			if !present {
				continue
			}
			st.pushSchema(k)
			st.pushInstance(k)
			st.walkNonStopping(sub, v, "")
			st.popInstance()
			st.popSchema()
		}
		st.popSchema()
	}

	if schema.AdditionalProperties == nil || !*schema.AdditionalProperties {
		for _, k := range obj.Keys() {
			if schema.Properties != nil && schema.Properties.Has(k) {
				continue
			}
			if schema.OptionalProperties != nil && schema.OptionalProperties.Has(k) {
				continue
			}
			if k == parentTag {
				continue
			}
			st.pushInstance(k)
			st.fail()
			st.popInstance()
		}
	}
}

func (st *validationState) walkDiscriminator(schema *Schema, instance any) {
	obj, ok := asObject(instance)
	if !ok {
		st.pushSchema(keywordDiscriminator)
		st.fail()
		st.popSchema()
		return
	}

	tagVal, present := obj.Get(*schema.Discriminator)
	if !present {
		st.pushSchema(keywordDiscriminator)
		st.fail()
		st.popSchema()
		return
	}
	tag, ok := tagVal.(string)
	if !ok {
		st.pushInstance(*schema.Discriminator)
		st.pushSchema(keywordDiscriminator)
		st.fail()
		st.popSchema()
		st.popInstance()
		return
	}

	mapped, ok := schema.Mapping.Get(tag)
	if !ok {
		st.pushInstance(*schema.Discriminator)
		st.pushSchema(keywordMapping)
		st.fail()
		st.popSchema()
		st.popInstance()
		return
	}

	st.pushSchema(keywordMapping)
	st.pushSchema(tag)
	st.walkNonStopping(mapped, instance, *schema.Discriminator)
	st.popSchema()
	st.popSchema()
}
