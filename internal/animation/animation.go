// Package animation plays linear float keyframes, e.g. the car's z position and the
// wheel spin.
package animation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chewxy/math32"
)

// ErrNoKeys is returned when an animation is built without keyframes.
var ErrNoKeys = errors.New("animation has no keys")

// Key is a value at a frame.
type Key struct {
	Frame float32
	Value float32
}

// Animation is a named keyframe curve sampled at FrameRate frames per second.
type Animation struct {
	Name      string
	FrameRate float32
	keys      []Key
}

// New returns an animation with keys sorted by frame.
func New(name string, frameRate float32, keys ...Key) (*Animation, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoKeys)
	}
	if frameRate <= 0 {
		return nil, fmt.Errorf("%s: frame rate %g", name, frameRate)
	}
	keys = slices.Clone(keys)
	slices.SortFunc(keys, func(a, b Key) int {
		switch {
		case a.Frame < b.Frame:
			return -1
		case a.Frame > b.Frame:
			return 1
		}
		return 0
	})
	return &Animation{Name: name, FrameRate: frameRate, keys: keys}, nil
}

// LastFrame is the frame of the final key.
func (a *Animation) LastFrame() float32 {
	return a.keys[len(a.keys)-1].Frame
}

// Value interpolates linearly at frame, holding the end values outside the key range.
func (a *Animation) Value(frame float32) float32 {
	if frame <= a.keys[0].Frame {
		return a.keys[0].Value
	}
	for i := 1; i < len(a.keys); i++ {
		k0, k1 := a.keys[i-1], a.keys[i]
		if frame > k1.Frame {
			continue
		}
		span := k1.Frame - k0.Frame
		if span == 0 {
			return k1.Value
		}
		t := (frame - k0.Frame) / span
		return k0.Value + (k1.Value-k0.Value)*t
	}
	return a.keys[len(a.keys)-1].Value
}

// Player advances an animation over [From, To]. With Loop set the frame wraps back to From.
type Player struct {
	anim       *Animation
	From, To   float32
	Loop       bool
	SpeedRatio float32
	frame      float32
	paused     bool
}

// Play returns a player running anim from frame from to frame to.
func Play(anim *Animation, from, to float32, loop bool, speedRatio float32) *Player {
	if speedRatio == 0 {
		speedRatio = 1
	}
	return &Player{anim: anim, From: from, To: to, Loop: loop, SpeedRatio: speedRatio, frame: from}
}

// Update advances the player by dt seconds and returns the current value.
func (p *Player) Update(dt float32) float32 {
	if !p.paused {
		p.frame += dt * p.anim.FrameRate * p.SpeedRatio
		span := p.To - p.From
		if p.frame > p.To {
			if p.Loop && span > 0 {
				p.frame = p.From + math32.Mod(p.frame-p.From, span)
			} else {
				p.frame = p.To
				p.paused = true
			}
		}
	}
	return p.anim.Value(p.frame)
}

// Frame returns the current frame.
func (p *Player) Frame() float32 { return p.frame }

// Value returns the current value without advancing.
func (p *Player) Value() float32 { return p.anim.Value(p.frame) }

// Done reports whether a non-looping player reached To.
func (p *Player) Done() bool { return p.paused }
