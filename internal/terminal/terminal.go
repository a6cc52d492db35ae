package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"village/internal/commands"
	"village/internal/logger"
)

const (
	BarHeight = 40
	// Lift applied to the bar in windowed mode so the taskbar does not cover it.
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	maxLinesOnScreen  = 14
	maxLineLen        = 200
	historySize       = 50
	lineHeight        = fontSize + 4
)

var (
	termBarColor     = rl.NewColor(40, 40, 40, 255)
	termLineColor    = rl.NewColor(80, 80, 80, 255)
	termHistoryColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console bar at the bottom of the screen, shown and hidden with ESC.
// While it is open it owns the keyboard, so the village keys are released.
// Lines starting with "cmd " run through the command registry; anything else is just logged.
type Terminal struct {
	log     *logger.Logger
	reg     *commands.Registry
	history *commands.History
	input   string
	open    bool
	font    rl.Font // zero texture means raylib's default font
}

// New returns a closed Terminal that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg, history: commands.NewHistory(historySize)}
}

// IsOpen reports whether the terminal is visible and capturing the keyboard.
func (t *Terminal) IsOpen() bool {
	return t.open
}

func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update reads the keyboard once per frame: ESC toggles, and while open it handles typing,
// paste, backspace, tab completion, up/down recall and enter.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && modifierDown() {
		t.input += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.input += string(rune(c))
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) && t.input != "":
		_, size := utf8.DecodeLastRuneInString(t.input)
		t.input = t.input[:len(t.input)-size]
	case rl.IsKeyPressed(rl.KeyTab):
		t.input, _ = t.reg.Complete(t.input)
	case rl.IsKeyPressed(rl.KeyUp):
		if line, ok := t.history.Prev(); ok {
			t.input = line
		}
	case rl.IsKeyPressed(rl.KeyDown):
		t.input = t.history.Next()
	case (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.input != "":
		line := t.input
		t.input = ""
		t.Submit(line)
	}
}

// Ctrl on Windows/Linux, Cmd on macOS.
func modifierDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}

// Submit logs line and, when it is a "cmd " line, executes it. Errors are logged.
func (t *Terminal) Submit(line string) {
	t.history.Add(line)
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Slog().Warn("Command failed", "line", line, "err", err)
	}
}

// Draw draws the input bar and the newest log lines above it. Coordinates come from
// GetScreenWidth/Height so they match the 2D overlay in fullscreen too.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	lines := t.log.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	histY := max(barY-maxLinesOnScreen*lineHeight, 0)
	if barY > histY {
		rl.DrawRectangle(0, histY, screenW, barY-histY, termHistoryColor)
	}
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		t.text(line, histY+int32(i*lineHeight)+padding, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, termBarColor)
	rl.DrawRectangle(0, barY, screenW, 1, termLineColor)
	t.text(prompt+t.input+"|", barY+padding, rl.White)
}

func (t *Terminal) text(s string, y int32, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(padding, float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(s, padding, y, fontSize, c)
}
