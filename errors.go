package jtd

import (
	"errors"
	"fmt"
)

// ErrorKind tags the specific subkind of a SchemaError (spec section 7.1).
type ErrorKind string

// The thirteen schema fault subkinds: the twelve spec section 7.1 names,
// plus KindShape for a schema position that is not a JSON object.
const (
	KindUnknownKeyword                ErrorKind = "unknown_keyword"
	KindShape                         ErrorKind = "shape"
	KindTypeInvariant                 ErrorKind = "type_invariant"
	KindNonRootDefinitions            ErrorKind = "non_root_definitions"
	KindRefNoDefinitions              ErrorKind = "ref_no_definitions"
	KindRefUnresolved                 ErrorKind = "ref_unresolved"
	KindEnumEmpty                     ErrorKind = "enum_empty"
	KindEnumDuplicate                 ErrorKind = "enum_duplicate"
	KindPropOptPropOverlap            ErrorKind = "prop_opt_prop_overlap"
	KindMappingNullable               ErrorKind = "mapping_nullable"
	KindMappingNotPropertiesForm      ErrorKind = "mapping_not_properties_form"
	KindMappingRedefinesDiscriminator ErrorKind = "mapping_redefines_discriminator"
	KindInvalidForm                   ErrorKind = "invalid_form"
)

// === Schema fault sentinels ===
//
// Each Kind has a matching sentinel so callers can use errors.Is against a
// SchemaError without inspecting Kind directly.
var (
	ErrUnknownKeyword                = errors.New("jtd: unknown schema keyword")
	ErrShape                         = errors.New("jtd: schema value is not a JSON object")
	ErrTypeInvariant                 = errors.New("jtd: field has the wrong JSON type")
	ErrNonRootDefinitions             = errors.New("jtd: definitions present on a non-root schema")
	ErrRefNoDefinitions               = errors.New("jtd: ref present but root has no definitions")
	ErrRefUnresolved                  = errors.New("jtd: ref does not name a definition")
	ErrEnumEmpty                      = errors.New("jtd: enum is empty")
	ErrEnumDuplicate                  = errors.New("jtd: enum contains a duplicate value")
	ErrPropOptPropOverlap             = errors.New("jtd: properties and optionalProperties share a key")
	ErrMappingNullable                = errors.New("jtd: mapping value is nullable")
	ErrMappingNotPropertiesForm       = errors.New("jtd: mapping value is not of PROPERTIES form")
	ErrMappingRedefinesDiscriminator  = errors.New("jtd: mapping value redeclares the discriminator key")
	ErrInvalidForm                    = errors.New("jtd: schema's keyword combination matches no valid form")
)

var sentinelByKind = map[ErrorKind]error{
	KindUnknownKeyword:                ErrUnknownKeyword,
	KindShape:                         ErrShape,
	KindTypeInvariant:                 ErrTypeInvariant,
	KindNonRootDefinitions:            ErrNonRootDefinitions,
	KindRefNoDefinitions:              ErrRefNoDefinitions,
	KindRefUnresolved:                 ErrRefUnresolved,
	KindEnumEmpty:                     ErrEnumEmpty,
	KindEnumDuplicate:                 ErrEnumDuplicate,
	KindPropOptPropOverlap:            ErrPropOptPropOverlap,
	KindMappingNullable:               ErrMappingNullable,
	KindMappingNotPropertiesForm:      ErrMappingNotPropertiesForm,
	KindMappingRedefinesDiscriminator: ErrMappingRedefinesDiscriminator,
	KindInvalidForm:                   ErrInvalidForm,
}

// SchemaError is the single fatal outcome raised by the loader (C2) or the
// semantic validator (C3) — spec section 7.1. Callers either get a valid
// Schema or a SchemaError; there is no partial result.
type SchemaError struct {
	Kind  ErrorKind
	Field string   // keyword name the fault concerns, when applicable
	Path  []string // schema_path-shaped token trail to the offending node
}

func (e *SchemaError) Error() string {
	base := sentinelByKind[e.Kind]
	if e.Field == "" && len(e.Path) == 0 {
		return base.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", base.Error(), e.Field)
	}
	return fmt.Sprintf("%s: at %v", base.Error(), e.Path)
}

// Unwrap lets callers use errors.Is(err, jtd.ErrRefUnresolved) etc.
func (e *SchemaError) Unwrap() error {
	return sentinelByKind[e.Kind]
}

func newSchemaError(kind ErrorKind, path []string) *SchemaError {
	return &SchemaError{Kind: kind, Path: append([]string(nil), path...)}
}

func newSchemaFieldError(kind ErrorKind, field string, path []string) *SchemaError {
	return &SchemaError{Kind: kind, Field: field, Path: append([]string(nil), path...)}
}

// MaxDepthExceeded is returned by Validate, distinct from a ValidationError,
// when a ref chain's active frame count reaches ValidationOptions.MaxDepth
// (spec section 4.4, section 7.3).
type MaxDepthExceeded struct {
	MaxDepth uint
}

func (e *MaxDepthExceeded) Error() string {
	return fmt.Sprintf("jtd: max depth of %d exceeded", e.MaxDepth)
}
