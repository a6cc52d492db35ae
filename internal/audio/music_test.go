package audio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"village/internal/audio"
)

type fakeStream struct {
	plays, pauses, resumes, updates int
	volume                          float32
}

func (f *fakeStream) Play()               { f.plays++ }
func (f *fakeStream) Pause()              { f.pauses++ }
func (f *fakeStream) Resume()             { f.resumes++ }
func (f *fakeStream) Update()             { f.updates++ }
func (f *fakeStream) SetVolume(v float32) { f.volume = v }

func TestPlayer(t *testing.T) {
	t.Run("starts paused with the given volume", func(t *testing.T) {
		s := &fakeStream{}
		p := audio.NewPlayer(s, 1, 0.005, time.Hour, nil)
		assert.False(t, p.Playing())
		assert.Equal(t, float32(1), s.volume)
		p.Update()
		assert.Zero(t, s.updates)
	})
	t.Run("held toggle flips once per interval", func(t *testing.T) {
		s := &fakeStream{}
		p := audio.NewPlayer(s, 1, 0.005, time.Hour, nil)
		for range 30 {
			p.Toggle()
		}
		assert.True(t, p.Playing())
		assert.Equal(t, 1, s.plays)
		assert.Zero(t, s.pauses)
	})
	t.Run("toggle again after the interval", func(t *testing.T) {
		s := &fakeStream{}
		p := audio.NewPlayer(s, 1, 0.005, 10*time.Millisecond, nil)
		p.Toggle()
		time.Sleep(20 * time.Millisecond)
		p.Toggle()
		assert.False(t, p.Playing())
		time.Sleep(20 * time.Millisecond)
		p.Toggle()
		assert.True(t, p.Playing())
		assert.Equal(t, 1, s.plays)
		assert.Equal(t, 1, s.resumes)
	})
	t.Run("volume stays in range", func(t *testing.T) {
		s := &fakeStream{}
		p := audio.NewPlayer(s, 0.5, 0.25, time.Hour, nil)
		p.Louder()
		p.Louder()
		p.Louder()
		assert.Equal(t, float32(1), p.Volume())
		for range 10 {
			p.Quieter()
		}
		assert.Equal(t, float32(0), p.Volume())
		assert.Equal(t, float32(0), s.volume)
	})
	t.Run("update feeds a playing stream", func(t *testing.T) {
		s := &fakeStream{}
		p := audio.NewPlayer(s, 1, 0.005, time.Hour, nil)
		p.Play()
		p.Update()
		p.Update()
		assert.Equal(t, 2, s.updates)
	})
}
