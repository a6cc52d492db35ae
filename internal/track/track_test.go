package track_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"village/internal/track"
)

func TestMover(t *testing.T) {
	start := [3]float32{2, 1, 2}
	t.Run("first side runs toward -z", func(t *testing.T) {
		m := track.NewMover(start, 0.05, track.Triangle(4))
		for range 40 {
			m.Advance()
		}
		p := m.Position()
		assert.InDelta(t, 2, p[0], 1e-5)
		assert.InDelta(t, 1, p[1], 1e-5)
		assert.InDelta(t, 0, p[2], 1e-3)
	})
	t.Run("turns upward after the first side", func(t *testing.T) {
		m := track.NewMover(start, 0.05, track.Triangle(4))
		for range 82 {
			m.Advance()
		}
		h := m.Heading()
		assert.InDelta(t, 0.866, h[1], 1e-3)
		assert.InDelta(t, 0.5, h[2], 1e-3)
		assert.Greater(t, m.Position()[1], float32(1))
	})
	t.Run("resets after a lap", func(t *testing.T) {
		m := track.NewMover(start, 0.05, track.Triangle(4))
		for m.Laps() == 0 {
			m.Advance()
		}
		assert.Equal(t, start, m.Position())
		assert.Equal(t, [3]float32{0, 0, -1}, m.Heading())
	})
	t.Run("no slides stays put", func(t *testing.T) {
		m := track.NewMover(start, 0.05, nil)
		m.Advance()
		assert.Equal(t, start, m.Position())
	})
}
