package scalar

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeBuiltins(t *testing.T) {
	f32 := Describe[float32]()
	assert.Equal(t, reflect.Float32, f32.Kind)
	assert.Equal(t, uintptr(4), f32.Size)
	assert.Equal(t, uintptr(4), f32.Align)
	assert.True(t, f32.Fixed)
	assert.Equal(t, 4, f32.Width)
	assert.True(t, IsType[float32](f32.Type))

	c128 := Describe[complex128]()
	assert.Equal(t, uintptr(16), c128.Size)
	assert.True(t, c128.Fixed)
	assert.Equal(t, 16, c128.Width)

	m := Describe[Meters]()
	assert.Equal(t, reflect.Float64, m.Kind)
	assert.True(t, m.Fixed)
	assert.Equal(t, int(m.Size), m.Width)
	assert.NotEqual(t, Describe[float64]().Type, m.Type)

	v := Describe[Vec[float32]]()
	assert.Equal(t, reflect.Struct, v.Kind)
	assert.Equal(t, uintptr(12), v.Size)
	assert.False(t, v.Fixed)
	assert.Equal(t, -1, v.Width)
}

func TestDescribeCarrier(t *testing.T) {
	u := Describe[Uninit[float64]]()
	assert.Equal(t, reflect.Struct, u.Kind)
	assert.False(t, u.Fixed)
	assert.Equal(t, -1, u.Width)
	assert.Equal(t, Describe[float64]().Size, u.Size)
	assert.Equal(t, "scalar.Uninit[float64] struct 8/8", u.String())
}

func TestDescribeIsCached(t *testing.T) {
	a := Describe[int16]()
	layouts.mu.RLock()
	cached, ok := layouts.infos[TypeOf[int16]()]
	layouts.mu.RUnlock()
	require.True(t, ok)
	assert.Equal(t, a, cached)
	assert.Equal(t, a, Describe[int16]())
}

func TestDescribeConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, uintptr(8), Describe[uint64]().Size)
			assert.Equal(t, uintptr(4), Describe[Fixed16]().Size)
		}()
	}
	wg.Wait()
}

func TestLayoutCompatible(t *testing.T) {
	assert.True(t, LayoutCompatible[bool]())
	assert.True(t, LayoutCompatible[int8]())
	assert.True(t, LayoutCompatible[uint32]())
	assert.True(t, LayoutCompatible[float64]())
	assert.True(t, LayoutCompatible[complex64]())
	assert.True(t, LayoutCompatible[Meters]())
	assert.True(t, LayoutCompatible[Vec[int8]]())
	assert.True(t, LayoutCompatible[[5]uint16]())
	assert.True(t, LayoutCompatible[struct{}]())
}
