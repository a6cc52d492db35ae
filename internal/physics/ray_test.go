package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRayHit(t *testing.T) {
	box := BoxAt([3]float32{0, 0, -5}, [3]float32{2, 2, 2})
	t.Run("straight on", func(t *testing.T) {
		d, ok := Ray{Dir: [3]float32{0, 0, -1}}.Hit(box)
		assert.True(t, ok)
		assert.InDelta(t, 4, d, 1e-6)
	})
	t.Run("pointing away", func(t *testing.T) {
		_, ok := Ray{Dir: [3]float32{0, 0, 1}}.Hit(box)
		assert.False(t, ok)
	})
	t.Run("parallel outside slab", func(t *testing.T) {
		_, ok := Ray{Origin: [3]float32{3, 0, 0}, Dir: [3]float32{0, 0, -1}}.Hit(box)
		assert.False(t, ok)
	})
	t.Run("origin inside", func(t *testing.T) {
		d, ok := Ray{Origin: [3]float32{0, 0, -5}, Dir: [3]float32{1, 0, 0}}.Hit(box)
		assert.True(t, ok)
		assert.Zero(t, d)
	})
}

func TestFirstHit(t *testing.T) {
	near := NewBody("near", [3]float32{0, 0, -3}, [3]float32{1, 1, 1}, true)
	far := NewBody("far", [3]float32{0, 0, -8}, [3]float32{1, 1, 1}, true)
	r := Ray{Dir: [3]float32{0, 0, -1}}
	b, d := FirstHit(r, 100, []*Body{far, near})
	assert.Same(t, near, b)
	assert.InDelta(t, 2.5, d, 1e-6)
	b, _ = FirstHit(r, 1, []*Body{far, near})
	assert.Nil(t, b)
	assert.Equal(t, [3]float32{0, 0, -2.5}, r.At(2.5))
}
