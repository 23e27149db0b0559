package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorBuildsValidSchema(t *testing.T) {
	s := WithDefinitions(
		Properties(
			Prop("name", TypeOf(TypeString)),
			Prop("tags", Elements(TypeOf(TypeString))),
		),
		Prop("address", Properties(Prop("city", TypeOf(TypeString)))),
	)
	s = WithOptional(s, Prop("nickname", TypeOf(TypeString, NullableKeyword())))
	s = WithAdditional(s, false)

	require.NoError(t, s.ValidateSelf())
	assert.Equal(t, FormProperties, s.Form())

	nickname, ok := s.OptionalProperties.Get("nickname")
	require.True(t, ok)
	require.NotNil(t, nickname.Nullable)
	assert.True(t, *nickname.Nullable)
}

func TestConstructorDiscriminator(t *testing.T) {
	s := Discriminator("kind",
		Case("a", Properties(Prop("x", TypeOf(TypeString)))),
		Case("b", Properties(Prop("y", TypeOf(TypeFloat64)))),
	)

	require.NoError(t, s.ValidateSelf())
	assert.Equal(t, []string{"a", "b"}, s.Mapping.Keys())
}

func TestConstructorMeta(t *testing.T) {
	s := TypeOf(TypeString, Meta(map[string]any{"description": "a name"}))
	require.NoError(t, s.ValidateSelf())
	assert.Equal(t, map[string]any{"description": "a name"}, s.Metadata)
}

func TestConstructorEnumAndRef(t *testing.T) {
	s := WithDefinitions(
		RefTo("color"),
		Prop("color", EnumOf([]string{"RED", "GREEN", "BLUE"})),
	)
	require.NoError(t, s.ValidateSelf())
	assert.Equal(t, FormRef, s.Form())
}
