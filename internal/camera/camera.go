// Package camera holds the village cameras: an orbiting overview, a camera chasing
// the car and one riding on the villager. Views are plain vectors; the scene copies
// them into the renderer's camera each frame.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrUnknown is returned when selecting a camera ID that is not in the rig.
var ErrUnknown = errors.New("unknown camera")

const minBeta = 0.01

// View is what the renderer needs from a camera.
type View struct {
	Position [3]float32
	Target   [3]float32
	Up       [3]float32
	Fovy     float32
}

// Camera is one entry in the Rig.
type Camera interface {
	ID() string
	Update(dt float32)
	View() View
}

// Anchor reports the world position and yaw of whatever a camera is attached to.
type Anchor func() (pos [3]float32, yaw float32)

// ArcRotate orbits Target at Radius. Alpha is the angle around Y, Beta the angle from
// the +Y axis. Beta is kept in [0.01, UpperBeta].
type ArcRotate struct {
	Name      string
	Alpha     float32
	Beta      float32
	Radius    float32
	Target    [3]float32
	Fovy      float32
	UpperBeta float32
	MinRadius float32
	// Parent, when set, makes Target relative to the anchor and Alpha relative to its yaw.
	Parent Anchor
}

// NewArcRotate returns an orbit camera with beta clamped to upperBeta.
func NewArcRotate(name string, alpha, beta, radius float32, target [3]float32, fovy, upperBeta float32) *ArcRotate {
	c := &ArcRotate{
		Name:      name,
		Alpha:     alpha,
		Radius:    radius,
		Target:    target,
		Fovy:      fovy,
		UpperBeta: upperBeta,
		MinRadius: 0.1,
	}
	c.SetBeta(beta)
	return c
}

func (c *ArcRotate) ID() string { return c.Name }

// Update keeps the limits applied after direct field writes.
func (c *ArcRotate) Update(float32) {
	c.SetBeta(c.Beta)
	c.Radius = max(c.Radius, c.MinRadius)
}

// SetBeta sets Beta within its limits.
func (c *ArcRotate) SetBeta(beta float32) {
	hi := c.UpperBeta
	if hi <= 0 {
		hi = math32.Pi - minBeta
	}
	c.Beta = min(max(beta, minBeta), hi)
}

// Orbit adds dAlpha and dBeta (radians).
func (c *ArcRotate) Orbit(dAlpha, dBeta float32) {
	c.Alpha += dAlpha
	c.SetBeta(c.Beta + dBeta)
}

// Zoom moves toward the target by d (negative moves away).
func (c *ArcRotate) Zoom(d float32) {
	c.Radius = max(c.Radius-d, c.MinRadius)
}

func (c *ArcRotate) View() View {
	target := c.Target
	alpha := c.Alpha
	if c.Parent != nil {
		pos, yaw := c.Parent()
		for i := range 3 {
			target[i] += pos[i]
		}
		alpha -= yaw
	}
	sa, ca := math32.Sincos(alpha)
	sb, cb := math32.Sincos(c.Beta)
	return View{
		Position: [3]float32{
			target[0] + c.Radius*ca*sb,
			target[1] + c.Radius*cb,
			target[2] + c.Radius*sa*sb,
		},
		Target: target,
		Up:     [3]float32{0, 1, 0},
		Fovy:   c.Fovy,
	}
}

// Follow chases an anchor, easing toward a point Radius behind it and HeightOffset above.
type Follow struct {
	Name           string
	Position       [3]float32
	HeightOffset   float32
	Radius         float32
	RotationOffset float32 // degrees
	Acceleration   float32
	MaxSpeed       float32
	Fovy           float32
	Target         Anchor
	target         [3]float32
}

func (c *Follow) ID() string { return c.Name }

// Update moves one frame toward the desired spot. The step is per frame, not per second.
func (c *Follow) Update(float32) {
	if c.Target == nil {
		return
	}
	pos, yaw := c.Target()
	rad := c.RotationOffset*math32.Pi/180 + yaw
	s, co := math32.Sincos(rad)
	want := [3]float32{pos[0] + s*c.Radius, pos[1] + c.HeightOffset, pos[2] + co*c.Radius}
	accel := [3]float32{c.Acceleration * 2, c.Acceleration, c.Acceleration * 2}
	for i := range 3 {
		v := (want[i] - c.Position[i]) * accel[i]
		v = min(max(v, -c.MaxSpeed), c.MaxSpeed)
		c.Position[i] += v
	}
	c.target = pos
}

func (c *Follow) View() View {
	return View{Position: c.Position, Target: c.target, Up: [3]float32{0, 1, 0}, Fovy: c.Fovy}
}

// Rig is the ordered camera list with one active camera.
type Rig struct {
	cams   []Camera
	active int
}

// Add appends a camera. The first camera added is active.
func (r *Rig) Add(c Camera) {
	r.cams = append(r.cams, c)
}

// IDs returns the camera IDs in creation order.
func (r *Rig) IDs() []string {
	ids := make([]string, len(r.cams))
	for i, c := range r.cams {
		ids[i] = c.ID()
	}
	return ids
}

// Active returns the active camera, or nil for an empty rig.
func (r *Rig) Active() Camera {
	if len(r.cams) == 0 {
		return nil
	}
	return r.cams[r.active]
}

// Select makes the camera with id active.
func (r *Rig) Select(id string) error {
	for i, c := range r.cams {
		if c.ID() == id {
			r.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknown, id)
}

// Update advances every camera so inactive ones stay in place for a switch.
func (r *Rig) Update(dt float32) {
	for _, c := range r.cams {
		c.Update(dt)
	}
}
