package scene

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Music is a looping raylib music stream. It satisfies audio.Stream.
type Music struct {
	m rl.Music
}

// LoadMusic opens the stream at path. The audio device must be initialised.
func LoadMusic(path string) (*Music, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	m := rl.LoadMusicStream(path)
	if !rl.IsMusicValid(m) {
		return nil, fmt.Errorf("music: cannot decode %s", path)
	}
	m.Looping = true
	return &Music{m: m}, nil
}

func (s *Music) Play()               { rl.PlayMusicStream(s.m) }
func (s *Music) Pause()              { rl.PauseMusicStream(s.m) }
func (s *Music) Resume()             { rl.ResumeMusicStream(s.m) }
func (s *Music) Update()             { rl.UpdateMusicStream(s.m) }
func (s *Music) SetVolume(v float32) { rl.SetMusicVolume(s.m, v) }

// Close stops and unloads the stream.
func (s *Music) Close() {
	rl.StopMusicStream(s.m)
	rl.UnloadMusicStream(s.m)
}
