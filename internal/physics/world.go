package physics

// Direction is one of the four ground-plane pushes bound to w/a/s/d.
type Direction int

const (
	North Direction = iota // +Z, key w
	West                   // -X, key a
	South                  // -Z, key s
	East                   // +X, key d
)

var directions = [...][3]float32{
	North: {0, 0, 1},
	West:  {-1, 0, 0},
	South: {0, 0, -1},
	East:  {1, 0, 0},
}

// Vector returns the unit vector of d.
func (d Direction) Vector() [3]float32 {
	return directions[d]
}

// World holds the movable bodies (houses) and the static colliders (marker boxes).
// Step shifts every movable body along each held direction, then pushes back any body
// that ends up inside a collider by Nudge against each held direction.
type World struct {
	Step   float32
	Nudge  float32
	Bodies []*Body
}

// NewWorld returns a World with the given per-frame step and collision nudge.
func NewWorld(step, nudge float32) *World {
	return &World{Step: step, Nudge: nudge}
}

// AddBody appends a body to the world. Order is preserved for syncing with scene objects.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Colliding returns the movable bodies overlapping any static body.
func (w *World) Colliding() []*Body {
	var out []*Body
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		if w.hitsStatic(b) {
			out = append(out, b)
		}
	}
	return out
}

func (w *World) hitsStatic(b *Body) bool {
	box := b.AABB()
	for _, s := range w.Bodies {
		if s.Static && box.Intersects(s.AABB()) {
			return true
		}
	}
	return false
}

// Push runs one frame with the given held directions. It returns how many bodies were nudged.
func (w *World) Push(held ...Direction) int {
	if len(held) == 0 {
		return 0
	}
	for _, d := range held {
		v := d.Vector()
		for _, b := range w.Bodies {
			b.Translate([3]float32{v[0] * w.Step, v[1] * w.Step, v[2] * w.Step})
		}
	}
	nudged := 0
	for _, b := range w.Bodies {
		if b.Static || !w.hitsStatic(b) {
			continue
		}
		for _, d := range held {
			v := d.Vector()
			b.Translate([3]float32{-v[0] * w.Nudge, -v[1] * w.Nudge, -v[2] * w.Nudge})
		}
		nudged++
	}
	return nudged
}
