package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaMapPreservesInsertionOrder(t *testing.T) {
	m := NewSchemaMap()
	m.Set("z", &Schema{})
	m.Set("a", &Schema{})
	m.Set("m", &Schema{})

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestSchemaMapSetOverwriteKeepsOriginalPosition(t *testing.T) {
	m := NewSchemaMap()
	first := &Schema{}
	second := &Schema{}
	m.Set("a", first)
	m.Set("b", &Schema{})
	m.Set("a", second)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	got, ok := m.Get("a")
	assert.True(t, ok)
	assert.Same(t, second, got)
}

func TestSchemaMapHasAndGetOnNil(t *testing.T) {
	var m *SchemaMap
	assert.False(t, m.Has("a"))
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())

	v, ok := m.Get("a")
	assert.False(t, ok)
	assert.Nil(t, v)
}
