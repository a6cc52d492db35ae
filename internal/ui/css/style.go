package css

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Computed holds resolved values used for drawing.
// LeftPct/TopPct: 0-100 for percentage positioning; -1 means use Left/Top as pixels.
// Padding is the offset (in pixels) from the node's left/top when drawing text.
type Computed struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
	Opacity    float32
}

// DefaultComputed returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputed() Computed {
	return Computed{
		Color:    colornames.White,
		Border:   colornames.Black,
		LeftPct:  -1,
		TopPct:   -1,
		Padding:  4,
		FontSize: 20,
		Opacity:  1,
	}
}

// Match returns the merged properties of every rule matching class or id (last wins).
func (s *Stylesheet) Match(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		sel := rule.Selector
		ok := (sel[0] == '.' && class != "" && sel[1:] == class) ||
			(sel[0] == '#' && id != "" && sel[1:] == id)
		if !ok {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// ParseColor parses #RGB, #RRGGBB, #RRGGBBAA or a CSS colour name.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	if s == "transparent" {
		return color.RGBA{}, true
	}
	if len(s) < 4 || s[0] != '#' {
		return colornames.Black, false
	}
	hex := s[1:]
	for i := range len(hex) {
		if _, ok := hexByte(hex[i]); !ok {
			return colornames.Black, false
		}
	}
	nib := func(i int) uint8 { v, _ := hexByte(hex[i]); return v }
	switch len(hex) {
	case 3:
		return color.RGBA{nib(0) * 17, nib(1) * 17, nib(2) * 17, 255}, true
	case 6:
		return color.RGBA{nib(0)<<4 + nib(1), nib(2)<<4 + nib(3), nib(4)<<4 + nib(5), 255}, true
	case 8:
		return color.RGBA{nib(0)<<4 + nib(1), nib(2)<<4 + nib(3), nib(4)<<4 + nib(5), nib(6)<<4 + nib(7)}, true
	}
	return colornames.Black, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0-100). Used for left/top percentage positioning.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Resolve builds a Computed style from a merged property map.
func Resolve(props map[string]string) Computed {
	out := DefaultComputed()
	for k, v := range props {
		switch k {
		case "background", "background-color":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border", "border-color":
			// "1px solid black" style shorthands: take the last word as the colour.
			f := strings.Fields(v)
			if len(f) == 0 {
				continue
			}
			if c, ok := ParseColor(f[len(f)-1]); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "opacity":
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 32); err == nil {
				out.Opacity = min(max(float32(f), 0), 1)
			}
		}
	}
	if out.Opacity < 1 {
		out.Background.A = uint8(float32(out.Background.A) * out.Opacity)
		out.Color.A = uint8(float32(out.Color.A) * out.Opacity)
	}
	return out
}
