package particles_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village/internal/particles"
)

func fountain() particles.Options {
	return particles.Options{
		Capacity:     2400,
		EmitRate:     2000,
		Origin:       [3]float32{5, 0, 5},
		EmitBoxMin:   [3]float32{-0.1, 5, -0.1},
		EmitBoxMax:   [3]float32{0.1, 5, 0.1},
		Direction1:   [3]float32{-2, 8, 2},
		Direction2:   [3]float32{2, 8, -2},
		MinEmitPower: 1,
		MaxEmitPower: 3,
		MinLifeTime:  3,
		MaxLifeTime:  4,
		MinSize:      0.2,
		MaxSize:      0.5,
		Gravity:      [3]float32{0, -9.81, 0},
		Color1:       particles.Color{0.4, 0.4, 0, 1},
		Color2:       particles.Color{0.45, 0.6, 1, 0.5},
		UpdateSpeed:  0.025,
		Rand:         rand.New(rand.NewPCG(7, 7)),
	}
}

func TestSystem(t *testing.T) {
	const frame = float32(1) / 60
	t.Run("starts stopped and emits nothing", func(t *testing.T) {
		s := particles.New(fountain())
		assert.False(t, s.IsStarted())
		s.Update(frame)
		assert.Empty(t, s.Particles())
	})
	t.Run("emits at rate times update speed per frame", func(t *testing.T) {
		s := particles.New(fountain())
		s.Start()
		s.Update(frame)
		assert.InDelta(t, 50, len(s.Particles()), 1)
	})
	t.Run("spawns inside the emit box", func(t *testing.T) {
		s := particles.New(fountain())
		s.Start()
		s.Update(frame)
		for _, p := range s.Particles() {
			assert.InDelta(t, 5, p.Position[0], 0.2)
			assert.Greater(t, p.Position[1], float32(4.9))
			assert.GreaterOrEqual(t, p.Size, float32(0.2))
			assert.LessOrEqual(t, p.Size, float32(0.5))
		}
	})
	t.Run("never exceeds capacity", func(t *testing.T) {
		opts := fountain()
		opts.Capacity = 120
		s := particles.New(opts)
		s.Start()
		for range 10 {
			s.Update(frame)
		}
		assert.Len(t, s.Particles(), 120)
	})
	t.Run("particles die after their life time", func(t *testing.T) {
		s := particles.New(fountain())
		s.Start()
		s.Update(frame)
		s.Stop()
		// 0.025 sim seconds per frame, max life 4: 160 frames is enough.
		for range 161 {
			s.Update(frame)
		}
		assert.Empty(t, s.Particles())
	})
	t.Run("gravity pulls particles down", func(t *testing.T) {
		s := particles.New(fountain())
		s.Start()
		s.Update(frame)
		s.Stop()
		require.NotEmpty(t, s.Particles())
		before := s.Particles()[0].Direction[1]
		s.Update(frame)
		assert.Less(t, s.Particles()[0].Direction[1], before)
	})
	t.Run("toggle flips state", func(t *testing.T) {
		s := particles.New(fountain())
		assert.True(t, s.Toggle())
		assert.False(t, s.Toggle())
		assert.False(t, s.IsStarted())
	})
}

func TestBillboard(t *testing.T) {
	p := particles.Particle{Size: 2}
	a, b := particles.Billboard(p, [3]float32{1, 0, 0}, [3]float32{0, 1, 0})
	assert.Equal(t, [3]float32{1, 1, 0}, a)
	assert.Equal(t, [3]float32{1, -1, 0}, b)
}
