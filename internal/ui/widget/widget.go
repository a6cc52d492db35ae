// Package widget holds the UI controls' state and hit testing. Drawing lives in package ui.
package widget

import (
	"context"

	"github.com/maniartech/signals"

	"village/internal/numeric"
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) is inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Slider is a horizontal value control. OnChange fires whenever the value changes.
type Slider struct {
	ID       string
	Bounds   Rect
	Min, Max float32
	OnChange signals.Signal[float32]
	value    float32
	dragging bool
}

// NewSlider returns a slider over [lo, hi] starting at value.
func NewSlider(id string, lo, hi, value float32) *Slider {
	s := &Slider{ID: id, Min: lo, Max: hi, OnChange: signals.NewSync[float32]()}
	s.value = numeric.Clamp(value, lo, hi)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float32 { return s.value }

// Fraction returns the value's position between Min and Max.
func (s *Slider) Fraction() float32 { return numeric.InvLerp(s.Min, s.Max, s.value) }

// SetValue clamps v into range and emits OnChange if the value moved.
func (s *Slider) SetValue(ctx context.Context, v float32) {
	v = numeric.Clamp(v, s.Min, s.Max)
	if v == s.value {
		return
	}
	s.value = v
	s.OnChange.Emit(ctx, v)
}

// Pointer feeds the mouse state for one frame. It returns true while the slider owns the
// pointer, so the caller can keep the drag from orbiting the camera.
func (s *Slider) Pointer(ctx context.Context, x, y float32, down bool) bool {
	if !down {
		s.dragging = false
		return false
	}
	if !s.dragging && !s.Bounds.Contains(x, y) {
		return false
	}
	s.dragging = true
	if s.Bounds.W > 0 {
		t := numeric.Unit((x - s.Bounds.X) / s.Bounds.W)
		s.SetValue(ctx, numeric.Lerp(s.Min, s.Max, t))
	}
	return true
}

// Button is one entry of a ButtonBar.
type Button struct {
	ID     string
	Label  string
	Bounds Rect
}

// ButtonBar is a row of buttons with one selected, like the camera switcher.
type ButtonBar struct {
	Buttons  []Button
	selected string
	origin   [2]float32
	size     [2]float32
	gap      float32
}

// NewButtonBar lays out one button per id starting at (x, y).
func NewButtonBar(ids []string, x, y, w, h, gap float32) *ButtonBar {
	b := &ButtonBar{origin: [2]float32{x, y}, size: [2]float32{w, h}, gap: gap}
	for _, id := range ids {
		b.Add(id, id)
	}
	if len(ids) > 0 {
		b.selected = ids[0]
	}
	return b
}

// Add appends a button to the end of the row.
func (b *ButtonBar) Add(id, label string) {
	x := b.origin[0] + float32(len(b.Buttons))*(b.size[0]+b.gap)
	b.Buttons = append(b.Buttons, Button{ID: id, Label: label, Bounds: Rect{x, b.origin[1], b.size[0], b.size[1]}})
}

// Selected returns the selected button ID.
func (b *ButtonBar) Selected() string { return b.selected }

// Select marks id as selected if it is on the bar.
func (b *ButtonBar) Select(id string) bool {
	for _, btn := range b.Buttons {
		if btn.ID == id {
			b.selected = id
			return true
		}
	}
	return false
}

// Click selects the button under (x, y) and returns its ID.
func (b *ButtonBar) Click(x, y float32) (string, bool) {
	for _, btn := range b.Buttons {
		if btn.Bounds.Contains(x, y) {
			b.selected = btn.ID
			return btn.ID, true
		}
	}
	return "", false
}
