package lighting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"village/internal/lighting"
)

func TestDirectional(t *testing.T) {
	t.Run("intensity is clamped", func(t *testing.T) {
		l := lighting.NewDirectional([3]float32{10, 8, 10}, [3]float32{}, 1.4, nil)
		assert.Equal(t, float32(1), l.Intensity())
		l.SetIntensity(-1)
		assert.Equal(t, float32(0), l.Intensity())
		l.SetIntensity(0.3)
		assert.Equal(t, float32(0.3), l.Intensity())
	})
	t.Run("direction points at target", func(t *testing.T) {
		l := lighting.NewDirectional([3]float32{0, 10, 0}, [3]float32{}, 0.3, nil)
		assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())
	})
	t.Run("shade brightens with intensity", func(t *testing.T) {
		l := lighting.NewDirectional([3]float32{0, 10, 0}, [3]float32{}, 0, nil)
		up := [3]float32{0, 1, 0}
		night := l.Shade(up)
		l.SetIntensity(1)
		day := l.Shade(up)
		assert.InDelta(t, 0.15, night, 1e-6)
		assert.Equal(t, float32(1), day)
		assert.Equal(t, uint8(255), l.Tint(255, up))
		down := [3]float32{0, -1, 0}
		assert.InDelta(t, 0.15, l.Shade(down), 1e-6)
	})
}
