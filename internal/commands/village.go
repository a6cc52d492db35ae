package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"village/internal/config"
	"village/internal/locomotion"
	"village/internal/village"
)

// ErrNoMusic is returned by the music command when no stream was loaded.
var ErrNoMusic = errors.New("no music loaded")

// Hooks let the commands reach things the village does not own.
type Hooks struct {
	Grid   func(visible bool)
	Camera func(id string)
	Light  func(intensity float32)
}

// RegisterVillage adds the console commands that drive v.
func RegisterVillage(r *Registry, v *village.Village, h Hooks) {
	r.Register("camera", "switch camera: -name <id>, no flag lists them", func(fs *flag.FlagSet) func() error {
		name := fs.String("name", "", "camera id")
		return func() error {
			if *name == "" {
				r.Print("cameras: " + strings.Join(v.Cameras.IDs(), ", "))
				return nil
			}
			id := strings.Join(append([]string{*name}, fs.Args()...), " ")
			if err := v.Cameras.Select(id); err != nil {
				return err
			}
			if h.Camera != nil {
				h.Camera(id)
			}
			r.Print("camera: " + id)
			return nil
		}
	})

	r.Register("light", "set daylight: -intensity 0..1", func(fs *flag.FlagSet) func() error {
		intensity := fs.Float64("intensity", -1, "light intensity")
		return func() error {
			if *intensity >= 0 {
				v.Light.SetIntensity(float32(*intensity))
				if h.Light != nil {
					h.Light(v.Light.Intensity())
				}
			}
			r.Print(fmt.Sprintf("light: %.2f", v.Light.Intensity()))
			return nil
		}
	})

	r.Register("music", "music: -toggle, -volume 0..1", func(fs *flag.FlagSet) func() error {
		toggle := fs.Bool("toggle", false, "play or pause")
		volume := fs.Float64("volume", -1, "volume")
		return func() error {
			m := v.Music
			if m == nil {
				return ErrNoMusic
			}
			if *toggle {
				if m.Playing() {
					m.Pause()
				} else {
					m.Play()
				}
			}
			if *volume >= 0 {
				m.SetVolume(float32(*volume))
			}
			r.Print(fmt.Sprintf("music: playing=%t volume=%.3f", m.Playing(), m.Volume()))
			return nil
		}
	})

	r.Register("fountain", "start or stop the fountain", func(*flag.FlagSet) func() error {
		return func() error {
			r.Print(fmt.Sprintf("fountain: running=%t", v.ToggleFountain()))
			return nil
		}
	})

	r.Register("villager", "villager: -speed n, -action move|idle", func(fs *flag.FlagSet) func() error {
		speed := fs.Float64("speed", 0, "speed multiplier")
		action := fs.String("action", "", "move or idle")
		return func() error {
			w := v.Villager.Walker
			if *speed != 0 {
				w.SetSpeed(*speed)
			}
			switch strings.ToLower(*action) {
			case "":
			case "move":
				if err := w.SetAction(locomotion.Move); err != nil {
					return err
				}
			case "idle", "stop":
				if err := w.SetAction(locomotion.Idle); err != nil {
					return err
				}
			default:
				return fmt.Errorf("villager: unknown action %q", *action)
			}
			r.Print(fmt.Sprintf("villager: %s speed=%g", w.State(), w.Speed()))
			return nil
		}
	})

	r.Register("grid", "editor grid: -show=true|false", func(fs *flag.FlagSet) func() error {
		show := fs.Bool("show", true, "show the grid")
		return func() error {
			if h.Grid == nil {
				return nil
			}
			h.Grid(*show)
			r.Print(fmt.Sprintf("grid: %t", *show))
			return nil
		}
	})

	r.Register("save", "write the current settings: -path <file>", func(fs *flag.FlagSet) func() error {
		path := fs.String("path", config.DefaultPath, "config file")
		return func() error {
			cfg := Snapshot(v)
			if err := config.Save(*path, cfg); err != nil {
				return err
			}
			r.Print("saved " + *path)
			return nil
		}
	})
}

// Snapshot is v's configuration with the values changed at runtime folded back in.
func Snapshot(v *village.Village) config.Config {
	cfg := v.Config()
	cfg.Light.Intensity = v.Light.Intensity()
	if v.Music != nil {
		cfg.Music.Volume = v.Music.Volume()
	}
	w := v.Villager.Walker
	cfg.Villager.Speed = w.Speed()
	cfg.Villager.Move = w.Action() == locomotion.Move
	cfg.Fountain.AutoStart = v.Fountain.Particles.IsStarted()
	return cfg
}
