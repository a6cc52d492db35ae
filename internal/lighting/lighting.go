// Package lighting is the scene's directional light and the ambient term derived from it.
package lighting

import (
	"log/slog"

	"github.com/chewxy/math32"

	"village/internal/numeric"
)

// Directional is a light shining from Position toward Target.
type Directional struct {
	Position  [3]float32
	Target    [3]float32
	intensity float32
	log       *slog.Logger
}

// NewDirectional returns a light with intensity clamped to [0, 1].
func NewDirectional(pos, target [3]float32, intensity float32, log *slog.Logger) *Directional {
	if log == nil {
		log = slog.Default()
	}
	l := &Directional{Position: pos, Target: target, log: log}
	l.SetIntensity(intensity)
	return l
}

// Intensity returns the current intensity.
func (l *Directional) Intensity() float32 { return l.intensity }

// SetIntensity sets the intensity, clamped to [0, 1].
func (l *Directional) SetIntensity(v float32) {
	c := numeric.Unit(v)
	if c != v {
		l.log.Debug("light intensity clamped", "requested", v, "intensity", c)
	}
	l.intensity = c
}

// Direction returns the unit vector from Position to Target. A degenerate light points down.
func (l *Directional) Direction() [3]float32 {
	d := [3]float32{
		l.Target[0] - l.Position[0],
		l.Target[1] - l.Position[1],
		l.Target[2] - l.Position[2],
	}
	n := math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if n == 0 {
		return [3]float32{0, -1, 0}
	}
	return [3]float32{d[0] / n, d[1] / n, d[2] / n}
}

// Shade returns the brightness (0..1) of a surface with the given unit normal:
// a small ambient floor plus the lambert term scaled by intensity.
func (l *Directional) Shade(normal [3]float32) float32 {
	const ambient = 0.15
	d := l.Direction()
	lambert := -(normal[0]*d[0] + normal[1]*d[1] + normal[2]*d[2])
	return numeric.Unit(ambient + max(lambert, 0)*l.intensity)
}

// Tint scales an 8-bit colour channel by Shade(normal).
func (l *Directional) Tint(c uint8, normal [3]float32) uint8 {
	return uint8(math32.Round(float32(c) * l.Shade(normal)))
}
