package common

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedKinds(t *testing.T) {
	cases := []struct {
		v     any
		fixed bool
	}{
		{true, true},
		{int8(1), true},
		{uint16(1), true},
		{int32(1), true},
		{uint64(1), true},
		{float32(1), true},
		{float64(1), true},
		{complex64(1), true},
		{complex128(1), true},
		{"str", false},
		{[]byte{1}, false},
		{struct{}{}, false},
	}
	for _, c := range cases {
		rt := reflect.TypeOf(c.v)
		assert.Equal(t, c.fixed, IsFixedKind(rt.Kind()), rt.String())
		if c.fixed {
			assert.Equal(t, int(rt.Size()), FixedSize(rt.Kind()), rt.String())
		} else {
			assert.Equal(t, -1, FixedSize(rt.Kind()), rt.String())
		}
	}
}

func TestCastSameLayout(t *testing.T) {
	type meters float64
	src := []float64{1.5, 2.5, 3.5}
	dst, ok := Cast[meters](src)
	require.True(t, ok)
	require.Len(t, dst, 3)
	assert.Equal(t, meters(2.5), dst[1])

	// aliasing, not copying
	dst[0] = 9
	assert.Equal(t, 9.0, src[0])
	assert.Equal(t, unsafe.Pointer(&src[0]), unsafe.Pointer(&dst[0]))
}

func TestCastRejectsSizeMismatch(t *testing.T) {
	dst, ok := Cast[float64]([]float32{1, 2})
	assert.False(t, ok)
	assert.Nil(t, dst)
}

func TestCastEmpty(t *testing.T) {
	dst, ok := Cast[int32]([]uint32(nil))
	require.True(t, ok)
	assert.Empty(t, dst)
}

func TestElem(t *testing.T) {
	type wrapped struct{ v int32 }
	s := make([]wrapped, 4)
	*Elem[int32](s, 2) = 7
	assert.Equal(t, int32(7), s[2].v)
	assert.Zero(t, s[1].v)
}

func TestAligned(t *testing.T) {
	var x uint64
	p := unsafe.Pointer(&x)
	assert.True(t, Aligned(p, 1))
	assert.True(t, Aligned(p, unsafe.Alignof(x)))
	assert.False(t, Aligned(unsafe.Add(p, 1), 2))
}
