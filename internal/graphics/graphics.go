package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"village/internal/config"
)

// Run opens the window described by cfg and runs the main loop. Each frame it calls update
// with the frame time in seconds, then clears the screen and calls draw. unload, if set, runs
// while the GL context still exists.
// ESC is left to the console; the window closes from its close button.
// A zero width or height means the current monitor's size.
func Run(cfg config.WindowConfig, update func(dt float32), draw func(), unload func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	w, h := int32(cfg.Width), int32(cfg.Height)
	rl.InitWindow(w, h, cfg.Title)
	defer rl.CloseWindow()
	if unload != nil {
		defer unload()
	}
	if w == 0 || h == 0 {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// RunAudio initialises the audio device for the duration of fn.
func RunAudio(fn func()) {
	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()
	fn()
}
