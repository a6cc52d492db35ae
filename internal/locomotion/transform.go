package locomotion

import (
	"fmt"
	"math"
)

// Axis names one of the three world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Vec3 is a 3D vector in world units (position) or radians (rotation).
type Vec3 struct {
	X, Y, Z float64
}

// Get returns the component for axis a.
func (v Vec3) Get(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// With returns a copy of v with the component for axis a replaced.
func (v Vec3) With(a Axis, f float64) Vec3 {
	switch a {
	case AxisX:
		v.X = f
	case AxisY:
		v.Y = f
	default:
		v.Z = f
	}
	return v
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Transform is the engine-owned position/rotation the walker writes into. The scene's
// villager node implements it; Node is a plain in-memory implementation.
type Transform interface {
	Position() Vec3
	SetPosition(Vec3)
	Rotation() Vec3
	SetRotation(Vec3)
}

// Node is a standalone Transform holding its own position and rotation.
type Node struct {
	Pos Vec3
	Rot Vec3
}

func (n *Node) Position() Vec3 { return n.Pos }
func (n *Node) SetPosition(p Vec3) { n.Pos = p }
func (n *Node) Rotation() Vec3 { return n.Rot }
func (n *Node) SetRotation(r Vec3) { n.Rot = r }

// movePOV moves tf by d along its local forward axis. Front is -Z in local space, so at
// yaw 0 a positive d decreases z; the step is rotated by yaw about +Y (left-handed).
func movePOV(tf Transform, d float64) {
	yaw := tf.Rotation().Y
	step := Vec3{X: -d * math.Sin(yaw), Z: -d * math.Cos(yaw)}
	tf.SetPosition(tf.Position().Add(step))
}

// rotatePOV turns tf about the vertical axis by yaw radians.
func rotatePOV(tf Transform, yaw float64) {
	r := tf.Rotation()
	r.Y += yaw
	tf.SetRotation(r)
}

// Heading returns the unit vector tf is currently facing in world space.
func Heading(tf Transform) Vec3 {
	yaw := tf.Rotation().Y
	return Vec3{X: -math.Sin(yaw), Z: -math.Cos(yaw)}
}
