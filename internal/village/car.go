package village

import (
	"fmt"

	"github.com/chewxy/math32"

	"village/internal/animation"
	"village/internal/config"
)

// Car drives along z on a looping keyframe track while its wheels spin.
type Car struct {
	Position   [3]float32
	Scale      float32
	Body       Part
	Wheels     []Part
	WheelAngle float32
	drive      *animation.Player
	spin       *animation.Player
}

// NewCar builds the car and starts both animations.
func NewCar(cfg config.CarConfig) (*Car, error) {
	drive, err := animation.New("carAnimation", cfg.FrameRate,
		animation.Key{Frame: 0, Value: cfg.StartZ},
		animation.Key{Frame: cfg.Frames, Value: cfg.EndZ})
	if err != nil {
		return nil, fmt.Errorf("car: %w", err)
	}
	spin, err := animation.New("wheelAnimation", cfg.WheelFrameRate,
		animation.Key{Frame: 0, Value: 0},
		animation.Key{Frame: cfg.WheelFrames, Value: 2 * math32.Pi})
	if err != nil {
		return nil, fmt.Errorf("car: %w", err)
	}
	c := &Car{
		Position: cfg.Position,
		Scale:    cfg.Scale,
		Body:     Part{Shape: ShapeBox, Offset: [3]float32{0, 0.1, 0}, Size: [3]float32{0.2, 0.2, 0.5}, Color: "#b22222"},
		drive:    animation.Play(drive, 0, cfg.Frames, true, cfg.SpeedRatio),
		spin:     animation.Play(spin, 0, cfg.WheelFrames, true, 1),
	}
	c.Position[2] = drive.Value(0)
	// Wheels stand on their rims: the cylinder axis points along X.
	for _, w := range [][3]float32{{-0.1, 0.035, -0.2}, {-0.1, 0.035, 0.1}, {0.1, 0.035, -0.2}, {0.1, 0.035, 0.1}} {
		c.Wheels = append(c.Wheels, Part{
			Shape:    ShapeCylinder,
			Offset:   w,
			Rotation: [3]float32{0, 0, math32.Pi / 2},
			Size:     [3]float32{0.125, 0.05, 0.125},
			Color:    "#222222",
		})
	}
	return c, nil
}

// Update advances the drive and wheel animations by dt seconds.
func (c *Car) Update(dt float32) {
	c.Position[2] = c.drive.Update(dt)
	c.WheelAngle = c.spin.Update(dt)
	for i := range c.Wheels {
		c.Wheels[i].Rotation[1] = c.WheelAngle
	}
}

// Anchor reports the car position for the follow camera.
func (c *Car) Anchor() ([3]float32, float32) {
	return c.Position, 0
}
