package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJSONPointer(t *testing.T) {
	assert.Equal(t, "", ToJSONPointer(nil))
	assert.Equal(t, "/a/b", ToJSONPointer([]string{"a", "b"}))
	assert.Equal(t, "/a~1b", ToJSONPointer([]string{"a/b"}))
	assert.Equal(t, "/a~0b", ToJSONPointer([]string{"a~b"}))
	assert.Equal(t, "/0/1", ToJSONPointer([]string{"0", "1"}))
}
