package village

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"

	"village/internal/config"
	"village/internal/physics"
)

// Shape names the unit mesh a part is drawn with.
type Shape string

const (
	ShapeBox      Shape = "box"
	ShapePrism    Shape = "prism"
	ShapeCylinder Shape = "cylinder"
	ShapeSphere   Shape = "sphere"
)

// Part is one mesh of a composite object, in the object's local space.
type Part struct {
	Shape    Shape
	Offset   [3]float32
	Rotation [3]float32
	Size     [3]float32
	Color    string
}

// House is a placed house: a box body with a prism roof. Body follows Position and Yaw
// for collisions.
type House struct {
	Name     string
	Kind     config.HouseKind
	Position [3]float32
	Yaw      float32
	Parts    []Part
	Visible  bool
	Body     *physics.Body
}

// roof is a three-sided prism lying along X, sitting on the 2 high walls.
func roof(length float32) Part {
	return Part{
		Shape:    ShapePrism,
		Offset:   [3]float32{0, 2.3, 0},
		Rotation: [3]float32{0, 0, math32.Pi / 2},
		Size:     [3]float32{1.3, 1.2 * length, 1.3 * 2},
		Color:    "#8b3a2b",
	}
}

// Template returns the template house of kind at the origin, hidden.
func Template(kind config.HouseKind) (*House, error) {
	h := &House{Name: string(kind) + "_house", Kind: kind}
	switch kind {
	case config.Detached:
		h.Parts = []Part{
			{Shape: ShapeBox, Offset: [3]float32{0, 1, 0}, Size: [3]float32{2, 2, 2}, Color: "#d8c8a8"},
			roof(2),
		}
	case config.Semi:
		h.Parts = []Part{
			{Shape: ShapeBox, Offset: [3]float32{0, 1, 0}, Size: [3]float32{4, 2, 2}, Color: "#e8d8b8"},
			roof(4),
		}
	default:
		return nil, fmt.Errorf("%w: house kind %q", config.ErrInvalid, kind)
	}
	h.Body = physics.NewBody(h.Name, [3]float32{0, 1, 0}, h.footprint(), false)
	return h, nil
}

// footprint is the extent of the walls, which is what collides.
func (h *House) footprint() [3]float32 {
	return h.Parts[0].Size
}

// Clone deep copies h under a new name.
func (h *House) Clone(name string) (*House, error) {
	var c House
	if err := copier.CopyWithOption(&c, h, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone %s: %w", h.Name, err)
	}
	body := *h.Body
	body.Name = name
	c.Body = &body
	c.Name = name
	return &c, nil
}

// Place moves the house and its body.
func (h *House) Place(x, z, yaw float32) {
	h.Position = [3]float32{x, 0, z}
	h.Yaw = yaw
	h.Body.Position = [3]float32{x, h.Parts[0].Offset[1], z}
	h.Body.Yaw = yaw
}

// Sync copies the body position back after the physics world moved it.
func (h *House) Sync() {
	h.Position[0] = h.Body.Position[0]
	h.Position[2] = h.Body.Position[2]
}

// BuildHouses clones one template per placement; x and z are scaled by cfg.Spacing.
// The returned slice starts with the two hidden templates.
func BuildHouses(cfg config.HousesConfig) ([]*House, error) {
	detached, err := Template(config.Detached)
	if err != nil {
		return nil, err
	}
	semi, err := Template(config.Semi)
	if err != nil {
		return nil, err
	}
	out := []*House{detached, semi}
	for i, p := range cfg.Placements {
		tpl := detached
		if p.Kind == config.Semi {
			tpl = semi
		} else if p.Kind != config.Detached {
			return nil, fmt.Errorf("%w: house %d: unknown kind %q", config.ErrInvalid, i, p.Kind)
		}
		h, err := tpl.Clone(fmt.Sprintf("house%d", i))
		if err != nil {
			return nil, err
		}
		h.Visible = true
		h.Place(p.X*cfg.Spacing, p.Z*cfg.Spacing, p.Yaw)
		out = append(out, h)
	}
	return out, nil
}
