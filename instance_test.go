package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInstanceScalars(t *testing.T) {
	v, err := DecodeInstance([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = DecodeInstance([]byte(`true`))
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = DecodeInstance([]byte(`"hi"`))
	require.NoError(t, err)
	assert.Equal(t, "hi", v)
}

func TestDecodeInstanceObjectPreservesOrder(t *testing.T) {
	v, err := DecodeInstance([]byte(`{"z": 1, "a": 2, "m": 3}`))
	require.NoError(t, err)
	obj, ok := v.(*orderedObject)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestDecodeInstanceArray(t *testing.T) {
	v, err := DecodeInstance([]byte(`[1, "two", false, null]`))
	require.NoError(t, err)
	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 4)
	assert.Equal(t, kindInteger, classify(arr[0]))
	assert.Equal(t, kindString, classify(arr[1]))
	assert.Equal(t, kindBoolean, classify(arr[2]))
	assert.Equal(t, kindNull, classify(arr[3]))
}

func TestClassifyDistinguishesIntegerFromNumber(t *testing.T) {
	v, err := DecodeInstance([]byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, kindInteger, classify(v))

	v, err = DecodeInstance([]byte(`42.5`))
	require.NoError(t, err)
	assert.Equal(t, kindNumber, classify(v))

	v, err = DecodeInstance([]byte(`42.0`))
	require.NoError(t, err)
	assert.Equal(t, kindInteger, classify(v))
}
