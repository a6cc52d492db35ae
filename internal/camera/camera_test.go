package camera_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village/internal/camera"
)

func TestArcRotate(t *testing.T) {
	t.Run("position from angles", func(t *testing.T) {
		c := camera.NewArcRotate("main", 0, math.Pi/2, 10, [3]float32{1, 2, 3}, 45, 0)
		v := c.View()
		assert.InDelta(t, 11, v.Position[0], 1e-4)
		assert.InDelta(t, 2, v.Position[1], 1e-4)
		assert.InDelta(t, 3, v.Position[2], 1e-4)
		assert.Equal(t, [3]float32{1, 2, 3}, v.Target)
	})
	t.Run("beta never passes the upper limit", func(t *testing.T) {
		upper := float32(math.Pi / 2.2)
		c := camera.NewArcRotate("main", math.Pi/4, math.Pi/4, 50, [3]float32{}, 45, upper)
		c.Orbit(0, 2)
		assert.Equal(t, upper, c.Beta)
		assert.Greater(t, c.View().Position[1], float32(0))
		c.Orbit(0, -5)
		assert.InDelta(t, 0.01, c.Beta, 1e-6)
	})
	t.Run("zoom stops at min radius", func(t *testing.T) {
		c := camera.NewArcRotate("main", 0, 1, 5, [3]float32{}, 45, 0)
		c.Zoom(100)
		assert.Equal(t, c.MinRadius, c.Radius)
	})
	t.Run("parented camera follows the anchor", func(t *testing.T) {
		c := camera.NewArcRotate("villager", 0, math.Pi/2, 1, [3]float32{0, 0.3, 0}, 45, 0)
		c.Parent = func() ([3]float32, float32) { return [3]float32{5, 0, 5}, 0 }
		v := c.View()
		assert.InDelta(t, 0.3, v.Target[1], 1e-6)
		assert.InDelta(t, 6, v.Position[0], 1e-4)
	})
}

func TestFollow(t *testing.T) {
	car := [3]float32{5, 0.17, 10}
	c := &camera.Follow{
		Name:         "car",
		Position:     [3]float32{5, 4, 12},
		HeightOffset: 8,
		Radius:       1,
		Acceleration: 0.005,
		MaxSpeed:     10,
		Target:       func() ([3]float32, float32) { return car, 0 },
	}
	c.Update(0)
	v := c.View()
	assert.Equal(t, car, v.Target)
	// dz = 11 - 12, eased by 2*0.005
	assert.InDelta(t, 12-0.01, v.Position[2], 1e-5)
	assert.InDelta(t, 4+(8.17-4)*0.005, v.Position[1], 1e-5)
	for range 5000 {
		c.Update(0)
	}
	assert.InDelta(t, 8.17, c.View().Position[1], 1e-2)
	assert.InDelta(t, 11, c.View().Position[2], 1e-2)
}

func TestRig(t *testing.T) {
	var r camera.Rig
	assert.Nil(t, r.Active())
	r.Add(camera.NewArcRotate("camera", 0, 1, 50, [3]float32{}, 45, 0))
	r.Add(&camera.Follow{Name: "Car Camera"})
	assert.Equal(t, []string{"camera", "Car Camera"}, r.IDs())
	assert.Equal(t, "camera", r.Active().ID())
	require.NoError(t, r.Select("Car Camera"))
	assert.Equal(t, "Car Camera", r.Active().ID())
	err := r.Select("nope")
	assert.ErrorIs(t, err, camera.ErrUnknown)
	assert.Equal(t, "Car Camera", r.Active().ID())
}
