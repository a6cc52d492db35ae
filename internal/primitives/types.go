package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind names a unit primitive mesh.
type Kind string

const (
	Cube     Kind = "cube"
	Sphere   Kind = "sphere"
	Cylinder Kind = "cylinder"
	Prism    Kind = "prism"
	Plane    Kind = "plane"
)

// defaultPrimitiveColor is the albedo tint when an Instance has none.
var defaultPrimitiveColor = rl.NewColor(128, 128, 128, 255)

// Frame places a group of instances: a yaw around Y, then a translation.
type Frame struct {
	Position [3]float32
	Yaw      float32
}

// Instance is one placed primitive. Rotation is XYZ euler radians; Scale multiplies
// the unit mesh. Position and Rotation are inside Frame, which is applied last.
type Instance struct {
	Kind     Kind
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
	Tint     color.RGBA
	Frame    Frame
}
