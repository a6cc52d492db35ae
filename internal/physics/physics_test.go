package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPenetrationAxis(t *testing.T) {
	a := BoxAt([3]float32{0, 0, 0}, [3]float32{2, 2, 2})
	t.Run("picks the shallowest axis", func(t *testing.T) {
		b := BoxAt([3]float32{1.5, 0, 0.2}, [3]float32{2, 2, 2})
		depth, axis := penetrationAxis(a, b)
		assert.Equal(t, 0, axis)
		assert.InDelta(t, 0.5, depth, 1e-6)
	})
	t.Run("touching is not overlapping", func(t *testing.T) {
		b := BoxAt([3]float32{2, 0, 0}, [3]float32{2, 2, 2})
		_, axis := penetrationAxis(a, b)
		assert.Equal(t, -1, axis)
		assert.False(t, a.Intersects(b))
	})
}

func TestBodyAABB(t *testing.T) {
	t.Run("unrotated uses scale", func(t *testing.T) {
		b := NewBody("semi", [3]float32{0, 1, 0}, [3]float32{4, 2, 2}, false)
		box := b.AABB()
		assert.Equal(t, [3]float32{-2, 0, -1}, box.Min)
		assert.Equal(t, [3]float32{2, 2, 1}, box.Max)
	})
	t.Run("quarter turn swaps width and depth", func(t *testing.T) {
		b := NewBody("semi", [3]float32{0, 1, 0}, [3]float32{4, 2, 2}, false)
		b.Yaw = math.Pi / 2
		box := b.AABB()
		assert.InDelta(t, -1, box.Min[0], 1e-5)
		assert.InDelta(t, 2, box.Max[2], 1e-5)
	})
	t.Run("zero scale counts as one", func(t *testing.T) {
		b := NewBody("", [3]float32{}, [3]float32{}, true)
		assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, b.AABB().Max)
	})
}

func TestWorldPush(t *testing.T) {
	newWorld := func() (*World, *Body, *Body) {
		w := NewWorld(0.05, 0.1)
		house := NewBody("house", [3]float32{0, 0.25, 0}, [3]float32{1, 1, 1}, false)
		marker := NewBody("marker", [3]float32{2, 0.25, 0}, [3]float32{0.25, 0.25, 0.25}, true)
		w.AddBody(house)
		w.AddBody(marker)
		return w, house, marker
	}
	t.Run("moves houses but not markers", func(t *testing.T) {
		w, house, marker := newWorld()
		n := w.Push(North, East)
		assert.Zero(t, n)
		assert.InDelta(t, 0.05, house.Position[0], 1e-6)
		assert.InDelta(t, 0.05, house.Position[2], 1e-6)
		assert.Equal(t, [3]float32{2, 0.25, 0}, marker.Position)
	})
	t.Run("nothing held does nothing", func(t *testing.T) {
		w, house, _ := newWorld()
		assert.Zero(t, w.Push())
		assert.Equal(t, [3]float32{0, 0.25, 0}, house.Position)
	})
	t.Run("overlapping a marker nudges back", func(t *testing.T) {
		w, house, _ := newWorld()
		house.Position[0] = 1.35
		require.Empty(t, w.Colliding())
		n := w.Push(East)
		assert.Equal(t, 1, n)
		assert.InDelta(t, 1.3, house.Position[0], 1e-5)
	})
	t.Run("repeated pushes never sink far into the marker", func(t *testing.T) {
		w, house, _ := newWorld()
		for range 100 {
			w.Push(East)
		}
		assert.Less(t, house.Position[0], float32(1.5+0.125+0.05))
	})
}
