package physics

import "github.com/chewxy/math32"

// Body is a placed object with position, yaw around Y and local extents (Scale).
// Static bodies are never moved by a World.
type Body struct {
	Name     string
	Position [3]float32
	Yaw      float32
	Scale    [3]float32
	Static   bool
}

// NewBody returns a body with the given position and scale.
func NewBody(name string, position, scale [3]float32, static bool) *Body {
	return &Body{
		Name:     name,
		Position: position,
		Scale:    scale,
		Static:   static,
	}
}

// AABB returns the world box of the body: the Y-rotated footprint's axis-aligned bound.
// A zero scale component counts as 1.
func (b *Body) AABB() Box {
	sx, sy, sz := b.Scale[0], b.Scale[1], b.Scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	sin, cos := math32.Sincos(b.Yaw)
	w := math32.Abs(sx*cos) + math32.Abs(sz*sin)
	d := math32.Abs(sx*sin) + math32.Abs(sz*cos)
	return BoxAt(b.Position, [3]float32{w, sy, d})
}

// Translate moves a non-static body by d.
func (b *Body) Translate(d [3]float32) {
	if b.Static {
		return
	}
	b.Position[0] += d[0]
	b.Position[1] += d[1]
	b.Position[2] += d[2]
}
