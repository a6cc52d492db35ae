package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"village/internal/commands"
	"village/internal/config"
	"village/internal/debug"
	"village/internal/fonts"
	"village/internal/graphics"
	"village/internal/logger"
	"village/internal/scene"
	"village/internal/terminal"
	"village/internal/ui"
	"village/internal/ui/widget"
	"village/internal/village"
)

func main() {
	flag.Parse()

	cfg, cfgErr := config.Load(*configFlag)
	if *logFileFlag != "" {
		cfg.Log.File = *logFileFlag
	}
	log := logger.New(logger.Options{
		File:         cfg.Log.File,
		MaxSizeMB:    cfg.Log.MaxSizeMB,
		MaxBackups:   cfg.Log.MaxBackups,
		Level:        levelFlag.value,
		ConsoleLines: cfg.Log.ConsoleMax,
	})
	defer log.Close()
	if cfgErr != nil {
		log.Slog().Error("Config rejected, using defaults", "err", cfgErr)
	}
	graphics.RunAudio(func() { run(cfg, log) })
}

func run(cfg config.Config, log *logger.Logger) {
	sl := log.Slog()
	seed := uint64(time.Now().UnixNano())
	deps := village.Deps{Log: sl, Rand: rand.New(rand.NewPCG(seed, seed>>1))}
	if music, err := scene.LoadMusic(cfg.Music.Path); err != nil {
		sl.Warn("Music disabled", "err", err)
	} else {
		defer music.Close()
		deps.Music = music
	}
	v, err := village.New(cfg, deps)
	if err != nil {
		sl.Error("Cannot build the village", "err", err)
		return
	}
	scn := scene.New(v, sl)

	ctx := context.Background()
	eng := ui.New()
	if err := eng.LoadCSS(cfg.UI.CSS); err != nil {
		sl.Debug("Using built-in stylesheet", "css", cfg.UI.CSS, "err", err)
	}

	slider := widget.NewSlider("daylight-slider", 0, 1, v.Light.Intensity())
	slider.OnChange.AddListener(func(_ context.Context, x float32) {
		v.Light.SetIntensity(x)
	})
	eng.AddSlider(slider)

	bar := widget.NewButtonBar(v.Cameras.IDs(), 10, 10, 160, 36, 6)
	eng.AddButtonBar(bar, func(id string) {
		if err := v.Cameras.Select(id); err != nil {
			sl.Warn("Camera switch failed", "err", err)
			return
		}
		sl.Info("Camera switched", "camera", id)
	})

	status := ui.NewStatusPanel()
	nodes := []*ui.Node{
		ui.NewNode("panel", "", "daylight-panel", ""),
		ui.NewNode("label", "", "daylight-header", "Night to Day"),
	}
	eng.SetNodes(status.AppendNodes(nodes, cfg.Debug.ShowVillager, scn.Status()))

	dbg := debug.New()
	dbg.SetShowFPS(cfg.Debug.ShowFPS)
	dbg.SetShowMemAlloc(cfg.Debug.ShowMemAlloc)

	reg := commands.NewRegistry(log.Log)
	commands.RegisterVillage(reg, v, commands.Hooks{
		Grid:   scn.SetGridVisible,
		Camera: func(id string) { bar.Select(id) },
		Light:  func(i float32) { slider.SetValue(ctx, i) },
	})
	registerDebug(reg, dbg)
	term := terminal.New(log, reg)

	fontPending := cfg.UI.Font != ""
	update := func(dt float32) {
		if fontPending {
			fontPending = false
			loadFont(cfg.UI.Font, eng, term, dbg, log)
		}
		term.Update()
		used := eng.Pointer(ctx)
		scn.Update(dt, !term.IsOpen(), !used)
		if cfg.Debug.ShowVillager {
			status.Refresh(scn.Status())
		}
	}
	draw := func() {
		scn.Draw()
		eng.Draw()
		var lines []string
		if cfg.Debug.ShowVillager {
			if name, d := scn.Ahead(); name != "" {
				lines = append(lines, fmt.Sprintf("Ahead: %s at %.1f", name, d))
			}
		}
		dbg.Draw(lines...)
		term.Draw()
	}
	sl.Info("Village ready", "camera", v.Cameras.Active().ID(), "music", v.Music != nil)
	graphics.Run(cfg.Window, update, draw, scn.Unload)
}

func registerDebug(reg *commands.Registry, dbg *debug.Debug) {
	reg.Register("debug", "overlays: -fps=true|false -mem=true|false", func(fs *flag.FlagSet) func() error {
		fps := fs.Bool("fps", dbg.ShowFPS, "show FPS")
		mem := fs.Bool("mem", dbg.ShowMemAlloc, "show heap size")
		return func() error {
			dbg.SetShowFPS(*fps)
			dbg.SetShowMemAlloc(*mem)
			return nil
		}
	})
}

// loadFont runs on the first frame, once the window exists.
func loadFont(name string, eng *ui.Engine, term *terminal.Terminal, dbg *debug.Debug, log *logger.Logger) {
	path, err := fonts.Find(name)
	if err != nil {
		log.Slog().Warn("Font not found, using default", "font", name)
		return
	}
	if err := eng.LoadFont(path); err != nil {
		log.Slog().Warn("Font not loaded", "path", path, "err", err)
		return
	}
	f := eng.Font()
	term.SetFont(f)
	dbg.SetFont(f)
	log.Slog().Info("Font loaded", "path", path)
}
