package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValidate(t *testing.T, schemaDoc, instanceDoc string, opts ValidationOptions) ([]ValidationError, error) {
	t.Helper()
	s := mustLoad(t, schemaDoc)
	require.NoError(t, s.ValidateSelf())
	instance, err := DecodeInstance([]byte(instanceDoc))
	require.NoError(t, err)
	return Validate(s, instance, opts)
}

func TestValidateTypeForm(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		instance string
		wantErrs int
	}{
		{"boolean ok", `{"type": "boolean"}`, `true`, 0},
		{"boolean mismatch", `{"type": "boolean"}`, `"true"`, 1},
		{"string ok", `{"type": "string"}`, `"hi"`, 0},
		{"int8 in range", `{"type": "int8"}`, `127`, 0},
		{"int8 out of range", `{"type": "int8"}`, `128`, 1},
		{"uint8 negative rejected", `{"type": "uint8"}`, `-1`, 1},
		{"float64 accepts fractional", `{"type": "float64"}`, `1.5`, 0},
		{"int8 rejects fractional", `{"type": "int8"}`, `1.5`, 1},
		{"timestamp ok", `{"type": "timestamp"}`, `"1985-04-12T23:20:50.52Z"`, 0},
		{"timestamp malformed", `{"type": "timestamp"}`, `"not a date"`, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs, err := mustValidate(t, tc.schema, tc.instance, ValidationOptions{})
			require.NoError(t, err)
			assert.Len(t, errs, tc.wantErrs)
		})
	}
}

func TestValidateNullableShortCircuits(t *testing.T) {
	errs, err := mustValidate(t, `{"type": "string", "nullable": true}`, `null`, ValidationOptions{})
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = mustValidate(t, `{"type": "string"}`, `null`, ValidationOptions{})
	require.NoError(t, err)
	assert.Len(t, errs, 1)
}

func TestValidateElementsOrderAndPaths(t *testing.T) {
	errs, err := mustValidate(t, `{"elements": {"type": "string"}}`, `["a", 1, "c", 2]`, ValidationOptions{})
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, []string{"1"}, errs[0].InstancePath)
	assert.Equal(t, []string{"elements", "type"}, errs[0].SchemaPath)
	assert.Equal(t, []string{"3"}, errs[1].InstancePath)
}

func TestValidatePropertiesRequiredBeforeOptional(t *testing.T) {
	errs, err := mustValidate(t, `{
		"properties": {"a": {"type": "string"}},
		"optionalProperties": {"b": {"type": "string"}}
	}`, `{"b": 1}`, ValidationOptions{})
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, []string{"properties", "a"}, errs[0].SchemaPath)
	assert.Equal(t, []string{"optionalProperties", "b", "type"}, errs[1].SchemaPath)
}

func TestValidatePropertiesOnNonObjectInstance(t *testing.T) {
	errs, err := mustValidate(t, `{"properties": {"a": {"type": "string"}}}`, `5`, ValidationOptions{})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Empty(t, errs[0].InstancePath)
	assert.Equal(t, []string{"properties"}, errs[0].SchemaPath)

	errs, err = mustValidate(t, `{"optionalProperties": {"a": {"type": "string"}}}`, `5`, ValidationOptions{})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"optionalProperties"}, errs[0].SchemaPath)
}

func TestValidateAdditionalPropertiesPushesNoSchemaToken(t *testing.T) {
	errs, err := mustValidate(t, `{
		"properties": {"a": {}},
		"additionalProperties": false
	}`, `{"a": null, "extra": 1}`, ValidationOptions{})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"extra"}, errs[0].InstancePath)
	assert.Empty(t, errs[0].SchemaPath)
}

func TestValidateDiscriminatorExcludesTagFromAdditionalProperties(t *testing.T) {
	schema := `{
		"discriminator": "type",
		"mapping": {
			"a": {"properties": {"value": {"type": "string"}}}
		}
	}`
	errs, err := mustValidate(t, schema, `{"type": "a", "value": "x"}`, ValidationOptions{})
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidateDiscriminatorOnNonObjectInstance(t *testing.T) {
	schema := `{
		"discriminator": "type",
		"mapping": {"a": {"properties": {}}}
	}`
	errs, err := mustValidate(t, schema, `"not an object"`, ValidationOptions{})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Empty(t, errs[0].InstancePath)
	assert.Equal(t, []string{"discriminator"}, errs[0].SchemaPath)
}

func TestValidateDiscriminatorUnknownTag(t *testing.T) {
	schema := `{
		"discriminator": "type",
		"mapping": {"a": {"properties": {}}}
	}`
	errs, err := mustValidate(t, schema, `{"type": "unknown"}`, ValidationOptions{})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"type"}, errs[0].InstancePath)
	assert.Equal(t, []string{"mapping"}, errs[0].SchemaPath)
}

func TestValidateRefPath(t *testing.T) {
	schema := `{"definitions": {"foo": {"type": "string"}}, "ref": "foo"}`
	errs, err := mustValidate(t, schema, `5`, ValidationOptions{})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"definitions", "foo", "type"}, errs[0].SchemaPath)
}

func TestValidateMaxErrorsStopsEarly(t *testing.T) {
	schema := `{"elements": {"type": "string"}}`
	errs, err := mustValidate(t, schema, `[1, 2, 3, 4, 5]`, ValidationOptions{MaxErrors: 2})
	require.NoError(t, err)
	assert.Len(t, errs, 2)
}

func TestValidateMaxDepthExceeded(t *testing.T) {
	schema := `{
		"definitions": {
			"loop": {"elements": {"ref": "loop"}}
		},
		"ref": "loop"
	}`
	s := mustLoad(t, schema)
	require.NoError(t, s.ValidateSelf())

	instance, err := DecodeInstance([]byte(`[[[[[]]]]]`))
	require.NoError(t, err)

	_, err = Validate(s, instance, ValidationOptions{MaxDepth: 3})
	require.Error(t, err)
	var exceeded *MaxDepthExceeded
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, uint(3), exceeded.MaxDepth)
}

func TestValidateAcceptsPlainMapInstance(t *testing.T) {
	s := mustLoad(t, `{"properties": {"a": {"type": "string"}}}`)
	require.NoError(t, s.ValidateSelf())

	errs, err := Validate(s, map[string]any{"a": "x"}, ValidationOptions{})
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidateCustomRFC3339Predicate(t *testing.T) {
	s := mustLoad(t, `{"type": "timestamp"}`)
	require.NoError(t, s.ValidateSelf())

	instance, err := DecodeInstance([]byte(`"whatever"`))
	require.NoError(t, err)

	errs, err := Validate(s, instance, ValidationOptions{
		IsRFC3339: func(string) bool { return true },
	})
	require.NoError(t, err)
	assert.Empty(t, errs)
}
