package scene

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

var (
	gridMinor = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajor = rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY     = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// drawEditorGrid draws a grid on the XZ plane just above the green, with major/minor lines
// and the three axes through the origin.
func drawEditorGrid() {
	const y = 0.01
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := gridMajor
		if i%gridMajorStep != 0 {
			c = gridMinor
		}
		start.X, start.Y, start.Z = float32(i), y, -gridExtent
		end.X, end.Y, end.Z = float32(i), y, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Z = -gridExtent, float32(i)
		end.X, end.Z = gridExtent, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, y, 0), rl.NewVector3(gridExtent, y, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, y, -gridExtent), rl.NewVector3(0, y, gridExtent), axisZ)
}
