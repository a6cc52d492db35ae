package animation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village/internal/animation"
)

func TestAnimationValue(t *testing.T) {
	a, err := animation.New("car", 60, animation.Key{Frame: 300, Value: -16}, animation.Key{Frame: 0, Value: 20})
	require.NoError(t, err)
	assert.Equal(t, float32(300), a.LastFrame())
	assert.Equal(t, float32(20), a.Value(-5))
	assert.Equal(t, float32(2), a.Value(150))
	assert.Equal(t, float32(-16), a.Value(400))
}

func TestNewRejects(t *testing.T) {
	_, err := animation.New("empty", 60)
	assert.ErrorIs(t, err, animation.ErrNoKeys)
	_, err = animation.New("still", 0, animation.Key{})
	assert.Error(t, err)
}

func TestPlayer(t *testing.T) {
	t.Run("car drives at the speed ratio", func(t *testing.T) {
		a, _ := animation.New("car", 60, animation.Key{Frame: 0, Value: 20}, animation.Key{Frame: 300, Value: -16})
		p := animation.Play(a, 0, 300, true, 0.4)
		// 5 seconds * 60 fps * 0.4 = 120 frames
		v := p.Update(5)
		assert.InDelta(t, 120, p.Frame(), 1e-3)
		assert.InDelta(t, 20-36*0.4, v, 1e-3)
	})
	t.Run("looping wraps", func(t *testing.T) {
		a, _ := animation.New("wheel", 30, animation.Key{Frame: 0, Value: 0}, animation.Key{Frame: 60, Value: 2 * math.Pi})
		p := animation.Play(a, 0, 60, true, 1)
		p.Update(2.5) // 75 frames
		assert.InDelta(t, 15, p.Frame(), 1e-3)
		assert.InDelta(t, math.Pi/2, p.Value(), 1e-4)
		assert.False(t, p.Done())
	})
	t.Run("non looping holds the last frame", func(t *testing.T) {
		a, _ := animation.New("once", 10, animation.Key{Frame: 0, Value: 1}, animation.Key{Frame: 10, Value: 2})
		p := animation.Play(a, 0, 10, false, 1)
		assert.Equal(t, float32(2), p.Update(3))
		assert.True(t, p.Done())
		assert.Equal(t, float32(2), p.Update(1))
	})
}
