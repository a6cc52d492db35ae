// Package track moves a marker around a closed polyline by repeatedly stepping forward
// and pitching after fixed distances.
package track

import "github.com/chewxy/math32"

// Slide turns the mover by Turn radians (around its local X axis) once the total
// distance covered exceeds Dist.
type Slide struct {
	Turn float32
	Dist float32
}

// Triangle returns the slides of an equilateral triangle with the given side length.
func Triangle(side float32) []Slide {
	turn := 2 * math32.Pi / 3
	return []Slide{
		{Turn: turn, Dist: side},
		{Turn: turn, Dist: 2 * side},
		{Turn: turn, Dist: 3 * side},
	}
}

// Mover walks the slides. After the last slide it resets to the start position and pitch.
type Mover struct {
	start    [3]float32
	step     float32
	slides   []Slide
	pos      [3]float32
	pitch    float32
	p        int
	distance float32
	laps     int
}

// NewMover returns a Mover at start, facing -Z.
func NewMover(start [3]float32, step float32, slides []Slide) *Mover {
	return &Mover{start: start, step: step, slides: slides, pos: start}
}

// Position returns the current position.
func (m *Mover) Position() [3]float32 { return m.pos }

// Heading returns the unit forward vector: local -Z pitched about X.
func (m *Mover) Heading() [3]float32 {
	s, c := math32.Sincos(m.pitch)
	return [3]float32{0, s, -c}
}

// Laps returns how many times the mover has reset.
func (m *Mover) Laps() int { return m.laps }

// Advance moves one step and applies the pending turn if its distance is exceeded.
func (m *Mover) Advance() {
	if len(m.slides) == 0 {
		return
	}
	h := m.Heading()
	for i := range 3 {
		m.pos[i] += h[i] * m.step
	}
	m.distance += m.step
	if m.distance <= m.slides[m.p].Dist {
		return
	}
	m.pitch += m.slides[m.p].Turn
	m.p = (m.p + 1) % len(m.slides)
	if m.p == 0 {
		m.distance = 0
		m.pos = m.start
		m.pitch = 0
		m.laps++
	}
}
