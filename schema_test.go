package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForm(t *testing.T) {
	str := "foo"

	tests := []struct {
		name   string
		schema *Schema
		want   Form
	}{
		{"empty", &Schema{}, FormEmpty},
		{"ref", &Schema{Ref: &str}, FormRef},
		{"type", &Schema{Type: &[]TypeTag{TypeString}[0]}, FormType},
		{"enum", &Schema{Enum: []string{"A"}}, FormEnum},
		{"elements", &Schema{Elements: &Schema{}}, FormElements},
		{"properties", &Schema{Properties: NewSchemaMap()}, FormProperties},
		{"optionalProperties", &Schema{OptionalProperties: NewSchemaMap()}, FormProperties},
		{"values", &Schema{Values: &Schema{}}, FormValues},
		{"discriminator", &Schema{Discriminator: &str, Mapping: NewSchemaMap()}, FormDiscriminator},
		{"ref wins over type", &Schema{Ref: &str, Type: &[]TypeTag{TypeString}[0]}, FormRef},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.schema.Form())
		})
	}
}

func TestFormString(t *testing.T) {
	assert.Equal(t, "EMPTY", FormEmpty.String())
	assert.Equal(t, "DISCRIMINATOR", FormDiscriminator.String())
}

func TestFormSignatureValidity(t *testing.T) {
	str := "foo"
	boolTrue := true

	tests := []struct {
		name   string
		schema *Schema
		valid  bool
	}{
		{"empty is valid", &Schema{}, true},
		{"properties plus additionalProperties is valid", &Schema{Properties: NewSchemaMap(), AdditionalProperties: &boolTrue}, true},
		{"type plus enum is invalid", &Schema{Type: &[]TypeTag{TypeString}[0], Enum: []string{"A"}}, false},
		{"additionalProperties alone, with no properties, is invalid", &Schema{AdditionalProperties: &boolTrue}, false},
		{"ref plus values is invalid", &Schema{Ref: &str, Values: &Schema{}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, isValidFormSignature(tc.schema.formSignature()))
		})
	}
}
