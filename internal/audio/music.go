// Package audio plays the looping background music.
package audio

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"village/internal/numeric"
)

// Stream is the slice of a music stream the player drives. The scene backs it with raylib.
type Stream interface {
	Play()
	Pause()
	Resume()
	Update()
	SetVolume(v float32)
}

// Player toggles and adjusts a Stream. Toggle is rate limited so a held key flips the
// music once per interval instead of every frame.
type Player struct {
	stream  Stream
	log     *slog.Logger
	toggle  *rate.Sometimes
	volume  float32
	step    float32
	playing bool
	started bool
}

// NewPlayer returns a paused player. volume is clamped to [0, 1].
func NewPlayer(s Stream, volume, step float32, interval time.Duration, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	if interval <= 0 {
		// a zero Sometimes runs only once
		interval = time.Nanosecond
	}
	p := &Player{
		stream: s,
		log:    log,
		toggle: &rate.Sometimes{Interval: interval},
		volume: numeric.Unit(volume),
		step:   step,
	}
	s.SetVolume(p.volume)
	return p
}

// Playing reports whether the music is playing.
func (p *Player) Playing() bool { return p.playing }

// Volume returns the current volume.
func (p *Player) Volume() float32 { return p.volume }

// Play starts or resumes playback.
func (p *Player) Play() {
	if p.playing {
		return
	}
	if p.started {
		p.stream.Resume()
	} else {
		p.stream.Play()
		p.started = true
	}
	p.playing = true
}

// Pause pauses playback.
func (p *Player) Pause() {
	if !p.playing {
		return
	}
	p.stream.Pause()
	p.playing = false
}

// Toggle flips between playing and paused, at most once per interval.
func (p *Player) Toggle() {
	p.toggle.Do(func() {
		if p.playing {
			p.Pause()
		} else {
			p.Play()
		}
		p.log.Info("Music toggled", "playing", p.playing, "volume", p.volume)
	})
}

// Louder raises the volume by one step.
func (p *Player) Louder() { p.SetVolume(p.volume + p.step) }

// Quieter lowers the volume by one step.
func (p *Player) Quieter() { p.SetVolume(p.volume - p.step) }

// SetVolume sets the volume, clamped to [0, 1].
func (p *Player) SetVolume(v float32) {
	p.volume = numeric.Unit(v)
	p.stream.SetVolume(p.volume)
	p.log.Debug("Music volume", "volume", p.volume)
}

// Update feeds the stream; call once per frame.
func (p *Player) Update() {
	if p.playing {
		p.stream.Update()
	}
}
