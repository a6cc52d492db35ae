package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const latheSlices = 24

// DrawLathe draws a surface of revolution around the Y axis at origin. profile holds
// (radius, height) pairs; each consecutive pair becomes a cone band.
func DrawLathe(origin [3]float32, profile [][2]float32, tint color.RGBA) {
	for i := 1; i < len(profile); i++ {
		a, b := profile[i-1], profile[i]
		start := rl.NewVector3(origin[0], origin[1]+a[1], origin[2])
		end := rl.NewVector3(origin[0], origin[1]+b[1], origin[2])
		if a[1] == b[1] {
			// flat ring: draw it as a very thin disc band
			end.Y += 0.001
		}
		rl.DrawCylinderEx(start, end, a[0], b[0], latheSlices, tint)
		rl.DrawCylinderWiresEx(start, end, a[0], b[0], latheSlices, shade(tint, 0.7))
	}
}

func shade(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{uint8(float32(c.R) * f), uint8(float32(c.G) * f), uint8(float32(c.B) * f), c.A}
}
