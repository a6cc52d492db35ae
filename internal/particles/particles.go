// Package particles simulates the fountain's water: a box emitter spraying
// billboards that fall under gravity and fade out.
package particles

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Color is RGBA in 0..1.
type Color [4]float32

// Lerp blends c toward o by t.
func (c Color) Lerp(o Color, t float32) Color {
	for i := range c {
		c[i] += (o[i] - c[i]) * t
	}
	return c
}

// Options configure a System. Ranges are inclusive and picked uniformly per particle.
type Options struct {
	Capacity        int
	EmitRate        float32 // particles per simulated second
	Origin          [3]float32
	EmitBoxMin      [3]float32 // relative to Origin
	EmitBoxMax      [3]float32
	Direction1      [3]float32
	Direction2      [3]float32
	MinEmitPower    float32
	MaxEmitPower    float32
	MinLifeTime     float32
	MaxLifeTime     float32
	MinSize         float32
	MaxSize         float32
	MinAngularSpeed float32
	MaxAngularSpeed float32
	Gravity         [3]float32
	Color1          Color
	Color2          Color
	ColorDead       Color
	// UpdateSpeed is simulated seconds per 60 Hz frame.
	UpdateSpeed float32
	Rand        *rand.Rand
}

// Particle is one live particle.
type Particle struct {
	Position     [3]float32
	Direction    [3]float32
	Color        Color
	colorStep    Color
	Size         float32
	Angle        float32
	AngularSpeed float32
	Age          float32
	LifeTime     float32
}

// System is a fixed-capacity particle pool. It is not safe for concurrent use.
type System struct {
	opts    Options
	rnd     *rand.Rand
	live    []Particle
	started bool
	carry   float32
}

// New returns a stopped System.
func New(opts Options) *System {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(1, 2))
	}
	if opts.UpdateSpeed <= 0 {
		opts.UpdateSpeed = 0.01
	}
	return &System{
		opts: opts,
		rnd:  r,
		live: make([]Particle, 0, opts.Capacity),
	}
}

// Start begins emitting. Live particles keep updating after Stop.
func (s *System) Start() { s.started = true }

// Stop ends emission.
func (s *System) Stop() {
	s.started = false
	s.carry = 0
}

// IsStarted reports whether the system is emitting.
func (s *System) IsStarted() bool { return s.started }

// Toggle starts a stopped system and stops a started one. It returns the new state.
func (s *System) Toggle() bool {
	if s.started {
		s.Stop()
	} else {
		s.Start()
	}
	return s.started
}

// Particles returns the live particles. The slice is reused by Update.
func (s *System) Particles() []Particle { return s.live }

// Update advances the system by dt wall seconds.
func (s *System) Update(dt float32) {
	step := s.opts.UpdateSpeed * dt * 60
	if step <= 0 {
		return
	}
	s.age(step)
	if !s.started {
		return
	}
	s.carry += s.opts.EmitRate * step
	n := int(s.carry)
	s.carry -= float32(n)
	for range n {
		if len(s.live) >= s.opts.Capacity {
			s.carry = 0
			break
		}
		s.live = append(s.live, s.spawn())
	}
}

func (s *System) age(step float32) {
	g := s.opts.Gravity
	kept := s.live[:0]
	for _, p := range s.live {
		p.Age += step
		if p.Age >= p.LifeTime {
			continue
		}
		for i := range 3 {
			p.Direction[i] += g[i] * step
			p.Position[i] += p.Direction[i] * step
		}
		for i := range 4 {
			p.Color[i] += p.colorStep[i] * step
		}
		p.Angle += p.AngularSpeed * step
		kept = append(kept, p)
	}
	s.live = kept
}

func (s *System) spawn() Particle {
	o := s.opts
	var p Particle
	power := s.between(o.MinEmitPower, o.MaxEmitPower)
	for i := range 3 {
		p.Position[i] = o.Origin[i] + s.between(o.EmitBoxMin[i], o.EmitBoxMax[i])
		p.Direction[i] = s.between(o.Direction1[i], o.Direction2[i]) * power
	}
	p.LifeTime = s.between(o.MinLifeTime, o.MaxLifeTime)
	p.Size = s.between(o.MinSize, o.MaxSize)
	p.AngularSpeed = s.between(o.MinAngularSpeed, o.MaxAngularSpeed)
	p.Color = o.Color1.Lerp(o.Color2, s.rnd.Float32())
	if p.LifeTime > 0 {
		for i := range 4 {
			p.colorStep[i] = (o.ColorDead[i] - p.Color[i]) / p.LifeTime
		}
	}
	return p
}

func (s *System) between(lo, hi float32) float32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + (hi-lo)*s.rnd.Float32()
}

// Billboard returns two corner offsets of a particle quad spanned by the camera's right
// and up vectors, rotated by the particle angle. The other corners are -a and -b.
func Billboard(p Particle, right, up [3]float32) (a, b [3]float32) {
	sin, cos := math32.Sincos(p.Angle)
	h := p.Size * 0.5
	for i := range 3 {
		r := right[i]*cos + up[i]*sin
		u := up[i]*cos - right[i]*sin
		a[i] = (r + u) * h
		b[i] = (r - u) * h
	}
	return a, b
}
