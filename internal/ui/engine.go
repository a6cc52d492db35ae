package ui

import (
	"context"
	_ "embed"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"village/internal/ui/css"
	"village/internal/ui/widget"
)

//go:embed default.css
var defaultCSS string

// Engine holds the current stylesheet, nodes and widgets, and draws them with raylib.
// Draw order is node order, then sliders, then button bars.
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *css.Stylesheet
	nodes        []*Node
	cachedStyles []css.Computed
	cacheValid   bool
	font         rl.Font
	sliders      []*widget.Slider
	bars         []*barView
}

type barView struct {
	bar      *widget.ButtonBar
	onSelect func(id string)
}

// New creates a UI engine with the built-in stylesheet and no nodes.
func New() *Engine {
	e := &Engine{}
	e.sheet, _ = css.ParseString(defaultCSS)
	return e
}

// LoadCSS loads and parses a CSS file from path. Its rules are appended after the
// built-in ones, so they win.
func (e *Engine) LoadCSS(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sheet, err := css.Parse(f)
	if err != nil {
		return err
	}
	base, _ := css.ParseString(defaultCSS)
	base.Rules = append(base.Rules, sheet.Rules...)
	e.SetStylesheet(base)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded or merged CSS).
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists (e.g. after first frame or in draw).
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font; a zero texture ID means raylib's default.
func (e *Engine) Font() rl.Font {
	return e.font
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// AddSlider registers a slider; its bounds come from the #<slider.ID> rule.
func (e *Engine) AddSlider(s *widget.Slider) {
	e.sliders = append(e.sliders, s)
}

// AddButtonBar registers a bar; onSelect runs when a click changes the selection.
func (e *Engine) AddButtonBar(b *widget.ButtonBar, onSelect func(id string)) {
	e.bars = append(e.bars, &barView{bar: b, onSelect: onSelect})
}

// Pointer routes the mouse to the widgets. It returns true when the UI used the pointer
// this frame.
func (e *Engine) Pointer(ctx context.Context) bool {
	m := rl.GetMousePosition()
	down := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	used := false
	for _, s := range e.sliders {
		s.Bounds = e.place(css.Resolve(e.sheet.Match("", s.ID)), s.Bounds)
		if s.Pointer(ctx, m.X, m.Y, down) {
			used = true
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		for _, b := range e.bars {
			before := b.bar.Selected()
			id, ok := b.bar.Click(m.X, m.Y)
			if !ok {
				continue
			}
			used = true
			if id != before && b.onSelect != nil {
				b.onSelect(id)
			}
		}
	}
	return used
}

// place turns a computed style into screen bounds, resolving percentages against the screen.
func (e *Engine) place(style css.Computed, r widget.Rect) widget.Rect {
	if style.Width > 0 {
		r.W = float32(style.Width)
	}
	if style.Height > 0 {
		r.H = float32(style.Height)
	}
	r.X, r.Y = float32(style.Left), float32(style.Top)
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	if style.LeftPct >= 0 {
		r.X = (screenW - r.W) * float32(style.LeftPct) / 100
	}
	if style.TopPct >= 0 {
		r.Y = (screenH - r.H) * float32(style.TopPct) / 100
	}
	return r
}

// Draw draws all nodes: for each node, resolve style (cached), update bounds from style, then draw background, border, and text.
func (e *Engine) Draw() {
	if !e.cacheValid {
		e.cachedStyles = make([]css.Computed, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = css.Resolve(e.sheet.Match(n.Class, n.ID))
		}
		e.cacheValid = true
	}
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		n.Bounds = e.place(style, n.Bounds)
		e.drawBox(n.Bounds, style, n.Text)
	}
	for _, s := range e.sliders {
		e.drawSlider(s)
	}
	for _, b := range e.bars {
		e.drawBar(b.bar)
	}
}

func (e *Engine) drawBox(r widget.Rect, style css.Computed, text string) {
	x, y, w, h := int32(r.X), int32(r.Y), int32(r.W), int32(r.H)
	if style.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, style.Background)
	}
	// Border (1px)
	if style.HasBorder && w > 0 && h > 0 {
		rl.DrawRectangleLines(x, y, w, h, style.Border)
	}
	if text == "" {
		return
	}
	pad := style.Padding
	if pad <= 0 {
		pad = 4
	}
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x+pad), float32(y+pad)), float32(style.FontSize), 1, style.Color)
	} else {
		rl.DrawText(text, x+pad, y+pad, style.FontSize, style.Color)
	}
}

func (e *Engine) drawSlider(s *widget.Slider) {
	style := css.Resolve(e.sheet.Match("", s.ID))
	s.Bounds = e.place(style, s.Bounds)
	r := s.Bounds
	e.drawBox(r, style, "")
	fill := r
	fill.W = r.W * s.Fraction()
	rl.DrawRectangle(int32(fill.X), int32(fill.Y), int32(fill.W), int32(fill.H), style.Color)
	thumbX := r.X + fill.W - r.H/2
	rl.DrawRectangle(int32(thumbX), int32(r.Y)-2, int32(r.H), int32(r.H)+4, style.Border)
}

func (e *Engine) drawBar(b *widget.ButtonBar) {
	for _, btn := range b.Buttons {
		class := "camera-button"
		if btn.ID == b.Selected() {
			class = "camera-button-active"
		}
		style := css.Resolve(e.sheet.Match(class, ""))
		e.drawBox(btn.Bounds, style, strings.TrimSpace(btn.Label))
	}
}
