package locomotion

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWalker(t *testing.T, node *Node, opts Options) *Walker {
	t.Helper()
	w, err := New(node, opts)
	require.NoError(t, err)
	require.NoError(t, w.SetAction(Move))
	return w
}

func TestWalkerStraightTick(t *testing.T) {
	for _, speed := range []float64{1, 2, 7.5, 50} {
		node := &Node{}
		w := newTestWalker(t, node, Options{Speed: speed, Min: Vec3{Z: -10}, Max: Vec3{Z: 10}})
		w.Tick()
		assert.Equal(t, -DefaultBaseStep*speed, node.Pos.Z, "speed %v", speed)
		assert.Equal(t, StateMovingStraight, w.State())
	}
	t.Run("backward travel increases z", func(t *testing.T) {
		node := &Node{Rot: Vec3{Y: -math.Pi}}
		w := newTestWalker(t, node, Options{Speed: 3, Min: Vec3{Z: -10}, Max: Vec3{Z: 10}})
		w.facing = Backward
		w.Tick()
		assert.InDelta(t, DefaultBaseStep*3, node.Pos.Z, 1e-12)
		assert.Equal(t, Backward, w.Facing())
	})
}

func TestWalkerTurnsAtMinZOnSameTick(t *testing.T) {
	node := &Node{Pos: Vec3{Z: -9.9999}}
	w := newTestWalker(t, node, Options{Min: Vec3{Z: -10}, Max: Vec3{Z: 10}})
	w.Tick()
	assert.LessOrEqual(t, node.Pos.Z, -10.0)
	assert.Equal(t, Backward, w.Facing())
	assert.True(t, w.Rotating())
	assert.Equal(t, StateRotating, w.State())
}

func TestWalkerTurnsAtMaxZOnSameTick(t *testing.T) {
	node := &Node{Pos: Vec3{Z: 9.9999}, Rot: Vec3{Y: -math.Pi}}
	w := newTestWalker(t, node, Options{Min: Vec3{Z: -10}, Max: Vec3{Z: 10}})
	w.facing = Backward
	w.Tick()
	assert.GreaterOrEqual(t, node.Pos.Z, 10.0)
	assert.Equal(t, Forward, w.Facing())
	assert.True(t, w.Rotating())
}

func TestWalkerReachesMinZFromOrigin(t *testing.T) {
	// given
	node := &Node{}
	w := newTestWalker(t, node, Options{Speed: 1, BaseStep: 0.0005, Min: Vec3{Z: -10}, Max: Vec3{Z: 10}})
	// when
	for range 20001 {
		w.Tick()
	}
	// then
	assert.LessOrEqual(t, node.Pos.Z, -10.0)
	assert.True(t, w.Rotating())
	assert.Equal(t, Backward, w.Facing())
}

func TestWalkerRotation(t *testing.T) {
	t.Run("backward turn runs until half a revolution", func(t *testing.T) {
		node := &Node{Pos: Vec3{Z: -1}}
		w := newTestWalker(t, node, Options{Speed: 50, Min: Vec3{Z: -1}, Max: Vec3{Z: 1}})
		w.Tick()
		require.True(t, w.Rotating())
		step := math.Pi * DefaultRotationRate * 50
		ticks := 0
		for w.Rotating() {
			w.Tick()
			ticks++
			require.Less(t, ticks, 1000)
		}
		assert.LessOrEqual(t, node.Rot.Y, -math.Pi)
		assert.Greater(t, node.Rot.Y, -math.Pi-step)
	})
	t.Run("forward turn ends once rotation is non-negative", func(t *testing.T) {
		node := &Node{Pos: Vec3{Z: 1}, Rot: Vec3{Y: -math.Pi}}
		w := newTestWalker(t, node, Options{Speed: 50, Min: Vec3{Z: -1}, Max: Vec3{Z: 1}})
		w.facing = Backward
		w.Tick()
		require.True(t, w.Rotating())
		require.Equal(t, Forward, w.Facing())
		for w.Rotating() {
			w.Tick()
		}
		assert.GreaterOrEqual(t, node.Rot.Y, 0.0)
	})
	t.Run("rotation does not move the walker", func(t *testing.T) {
		node := &Node{Pos: Vec3{Z: -1}}
		w := newTestWalker(t, node, Options{Min: Vec3{Z: -1}, Max: Vec3{Z: 1}})
		w.Tick()
		p := node.Pos
		w.Tick()
		assert.Equal(t, p, node.Pos)
	})
}

func TestWalkerPatrolsBetweenBounds(t *testing.T) {
	node := &Node{Pos: Vec3{Z: 0}}
	w := newTestWalker(t, node, Options{Speed: 50, Min: Vec3{Z: -1}, Max: Vec3{Z: 1}})
	step := DefaultBaseStep * 50
	turns := 0
	last := w.Facing()
	for range 20000 {
		w.Tick()
		assert.GreaterOrEqual(t, node.Pos.Z, -1-2*step)
		assert.LessOrEqual(t, node.Pos.Z, 1+2*step)
		if w.Facing() != last {
			turns++
			last = w.Facing()
		}
	}
	assert.Greater(t, turns, 4)
}

func TestWalkerIdleIsFrozen(t *testing.T) {
	node := &Node{Pos: Vec3{X: 1, Y: 2, Z: 3}, Rot: Vec3{Y: 0.5}}
	w, err := New(node, Options{Min: Vec3{Z: -10}, Max: Vec3{Z: 10}})
	require.NoError(t, err)
	for range 100 {
		w.Tick()
	}
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, node.Pos)
	assert.Equal(t, Vec3{Y: 0.5}, node.Rot)
	assert.Equal(t, StateIdle, w.State())
}

func TestWalkerSetSpeed(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	w, err := New(&Node{}, Options{Logger: log})
	require.NoError(t, err)
	t.Run("clamps below one and warns", func(t *testing.T) {
		buf.Reset()
		w.SetSpeed(0.3)
		assert.Equal(t, 1.0, w.Speed())
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "speed=0.3")
	})
	t.Run("accepts one and above silently", func(t *testing.T) {
		buf.Reset()
		w.SetSpeed(50)
		assert.Equal(t, 50.0, w.Speed())
		assert.Empty(t, buf.String())
	})
	t.Run("clamps negative speed", func(t *testing.T) {
		w.SetSpeed(-4)
		assert.Equal(t, 1.0, w.Speed())
	})
}

func TestWalkerBounds(t *testing.T) {
	cases := []struct {
		name string
		axis Axis
	}{
		{"x", AxisX},
		{"y", AxisY},
		{"z", AxisZ},
	}
	for _, tc := range cases {
		t.Run("reject min above max on "+tc.name, func(t *testing.T) {
			// given
			w, err := New(&Node{}, Options{Min: Vec3{X: 0, Y: 0, Z: -10}, Max: Vec3{X: 2, Y: 2, Z: 10}})
			require.NoError(t, err)
			min0, max0 := w.Bounds()
			// when
			err = w.SetAxisBounds(tc.axis, 5, 3)
			// then
			assert.ErrorIs(t, err, ErrInvalidBounds)
			min1, max1 := w.Bounds()
			assert.Equal(t, min0, min1)
			assert.Equal(t, max0, max1)
			assert.ErrorIs(t, w.SetAction(Move), ErrInvalidBounds)
			assert.Equal(t, Idle, w.Action())
		})
	}
	t.Run("set bounds rejects whole update", func(t *testing.T) {
		w, err := New(&Node{}, Options{Min: Vec3{Z: -1}, Max: Vec3{Z: 1}})
		require.NoError(t, err)
		err = w.SetBounds(Vec3{X: 0, Y: 5, Z: -3}, Vec3{X: 1, Y: 3, Z: 3})
		assert.ErrorIs(t, err, ErrInvalidBounds)
		assert.ErrorContains(t, err, "Y")
		min, max := w.Bounds()
		assert.Equal(t, Vec3{Z: -1}, min)
		assert.Equal(t, Vec3{Z: 1}, max)
	})
	t.Run("valid bounds re-enable move", func(t *testing.T) {
		w, err := New(&Node{}, Options{})
		require.NoError(t, err)
		require.Error(t, w.SetAxisBounds(AxisZ, 1, -1))
		require.NoError(t, w.SetAxisBounds(AxisZ, -1, 1))
		assert.NoError(t, w.SetAction(Move))
	})
	t.Run("moving walker keeps patrolling old bounds", func(t *testing.T) {
		// given
		node := &Node{}
		w := newTestWalker(t, node, Options{Min: Vec3{Z: -10}, Max: Vec3{Z: 10}})
		// when
		err := w.SetBounds(Vec3{Z: 3}, Vec3{Z: -3})
		w.Tick()
		// then
		assert.ErrorIs(t, err, ErrInvalidBounds)
		assert.Equal(t, Move, w.Action())
		assert.InDelta(t, -DefaultBaseStep, node.Pos.Z, 1e-12)
		min, max := w.Bounds()
		assert.Equal(t, Vec3{Z: -10}, min)
		assert.Equal(t, Vec3{Z: 10}, max)
		assert.ErrorIs(t, w.SetAction(Move), ErrInvalidBounds)
	})
	t.Run("new rejects invalid bounds", func(t *testing.T) {
		_, err := New(&Node{}, Options{Min: Vec3{Z: 5}, Max: Vec3{Z: 3}})
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})
	t.Run("equal bounds are valid", func(t *testing.T) {
		_, err := New(&Node{}, Options{Min: Vec3{Z: 2}, Max: Vec3{Z: 2}})
		assert.NoError(t, err)
	})
}

func TestHeading(t *testing.T) {
	f := Heading(&Node{})
	assert.InDelta(t, 0, f.X, 1e-12)
	assert.Equal(t, -1.0, f.Z)
	b := Heading(&Node{Rot: Vec3{Y: -math.Pi}})
	assert.InDelta(t, 1, b.Z, 1e-12)
}
