package widget_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"village/internal/ui/widget"
)

func TestSlider(t *testing.T) {
	ctx := context.Background()
	newSlider := func() (*widget.Slider, *[]float32) {
		s := widget.NewSlider("daylight", 0, 1, 0.3)
		s.Bounds = widget.Rect{X: 100, Y: 50, W: 200, H: 20}
		var got []float32
		s.OnChange.AddListener(func(_ context.Context, v float32) { got = append(got, v) })
		return s, &got
	}
	t.Run("set value clamps and emits", func(t *testing.T) {
		s, got := newSlider()
		s.SetValue(ctx, 2)
		assert.Equal(t, float32(1), s.Value())
		assert.Equal(t, []float32{1}, *got)
	})
	t.Run("unchanged value does not emit", func(t *testing.T) {
		s, got := newSlider()
		s.SetValue(ctx, 0.3)
		assert.Empty(t, *got)
	})
	t.Run("click inside sets value from x", func(t *testing.T) {
		s, got := newSlider()
		assert.True(t, s.Pointer(ctx, 150, 55, true))
		assert.InDelta(t, 0.25, s.Value(), 1e-6)
		assert.Len(t, *got, 1)
	})
	t.Run("click outside is ignored", func(t *testing.T) {
		s, got := newSlider()
		assert.False(t, s.Pointer(ctx, 10, 10, true))
		assert.Empty(t, *got)
	})
	t.Run("drag continues outside the bounds", func(t *testing.T) {
		s, _ := newSlider()
		s.Pointer(ctx, 150, 55, true)
		assert.True(t, s.Pointer(ctx, 400, 0, true))
		assert.Equal(t, float32(1), s.Value())
		assert.False(t, s.Pointer(ctx, 400, 0, false))
		assert.False(t, s.Pointer(ctx, 400, 0, true))
	})
}

func TestButtonBar(t *testing.T) {
	b := widget.NewButtonBar([]string{"camera", "Car Camera", "Villager Cam 1"}, 10, 10, 100, 30, 5)
	assert.Equal(t, "camera", b.Selected())
	assert.Equal(t, float32(220), b.Buttons[2].Bounds.X)
	id, ok := b.Click(120, 20)
	assert.True(t, ok)
	assert.Equal(t, "Car Camera", id)
	assert.Equal(t, "Car Camera", b.Selected())
	_, ok = b.Click(112, 20)
	assert.False(t, ok)
	assert.False(t, b.Select("nope"))
	assert.True(t, b.Select("camera"))
}
