package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	margin     = 12
	lineHeight = fontSize + 4
	// FPS and heap text are rebuilt every refreshFrames frames.
	refreshFrames = 30
)

// Debug holds the runtime overlays drawn top-right: FPS, heap and whatever lines the
// caller passes to Draw. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font
	frames       uint32
	fpsText      string
	memText      string
	mem          runtime.MemStats
}

func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether heap size and GC count are drawn under the FPS line.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFont sets the overlay font. A zero texture keeps raylib's default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders the enabled overlays and then extra, one line each, under them.
func (d *Debug) Draw(extra ...string) {
	d.frames++
	refresh := d.frames%refreshFrames == 0
	y := int32(margin)
	if d.ShowFPS {
		if refresh || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.line(d.fpsText, &y)
	}
	if d.ShowMemAlloc {
		if refresh || d.memText == "" {
			runtime.ReadMemStats(&d.mem)
			d.memText = fmt.Sprintf("Heap: %.2f MiB  GC: %d", float64(d.mem.HeapAlloc)/(1<<20), d.mem.NumGC)
		}
		d.line(d.memText, &y)
	}
	for _, l := range extra {
		d.line(l, &y)
	}
}

// line draws text right-aligned at *y and moves *y down one line.
func (d *Debug) line(text string, y *int32) {
	if text == "" {
		return
	}
	right := float32(rl.GetScreenWidth() - margin)
	if d.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
		rl.DrawTextEx(d.font, text, rl.NewVector2(right-w, float32(*y)), fontSize, 1, rl.Green)
	} else {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, int32(right)-w, *y, fontSize, rl.Green)
	}
	*y += lineHeight
}
