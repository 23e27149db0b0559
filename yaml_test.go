package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	doc := `
properties:
  name:
    type: string
  age:
    type: int32
`
	s, err := FromYAML([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, s.ValidateSelf())

	assert.Equal(t, FormProperties, s.Form())
	name, ok := s.Properties.Get("name")
	require.True(t, ok)
	assert.Equal(t, TypeString, *name.Type)
}

func TestFromYAMLRejectsUnknownKeyword(t *testing.T) {
	_, err := FromYAML([]byte("foo: bar\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKeyword)
}
