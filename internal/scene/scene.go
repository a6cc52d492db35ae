// Package scene renders the village with raylib and feeds it input each frame.
package scene

import (
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"village/internal/camera"
	"village/internal/input"
	"village/internal/particles"
	"village/internal/physics"
	"village/internal/primitives"
	"village/internal/ui"
	"village/internal/ui/css"
	"village/internal/village"
)

// Bindings maps the village key names to raylib key codes.
var Bindings = []input.Binding{
	{Name: village.KeyNorth, Code: rl.KeyW},
	{Name: village.KeyWest, Code: rl.KeyA},
	{Name: village.KeySouth, Code: rl.KeyS},
	{Name: village.KeyEast, Code: rl.KeyD},
	{Name: village.KeyMusic, Code: rl.KeyP},
	{Name: village.KeyQuieter, Code: rl.KeySlash},
	{Name: village.KeyLouder, Code: rl.KeyApostrophe},
}

var (
	greenTint  = rl.NewColor(60, 150, 60, 255)
	trackTint  = rl.NewColor(255, 255, 255, 255)
	rayTint    = rl.NewColor(255, 220, 0, 255)
	rayHitTint = rl.NewColor(255, 60, 60, 255)
	skinTint   = rl.NewColor(230, 190, 150, 255)
	coatTint   = rl.NewColor(60, 90, 160, 255)
	ballTint   = rl.NewColor(250, 250, 250, 255)
)

var shapeKinds = map[village.Shape]primitives.Kind{
	village.ShapeBox:      primitives.Cube,
	village.ShapePrism:    primitives.Prism,
	village.ShapeCylinder: primitives.Cylinder,
	village.ShapeSphere:   primitives.Sphere,
}

// Scene draws a Village and routes raylib input into it. Update runs input and the village
// frame; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Village     *village.Village
	Camera      rl.Camera3D
	GridVisible bool

	prims   *primitives.Registry
	sky     *skybox
	ground  *terrain
	colors  map[string]color.RGBA
	orbit   float32
	zoom    float32
	hit     string
	hitDist float32
	log     *slog.Logger
}

// New wraps v. The village key map is replaced by one bound to the raylib keys.
func New(v *village.Village, log *slog.Logger) *Scene {
	if log == nil {
		log = slog.Default()
	}
	cfg := v.Config()
	v.Keys = input.NewKeyMap(Bindings...)
	s := &Scene{
		Village:     v,
		GridVisible: cfg.Debug.GridVisible,
		prims:       primitives.NewRegistry(),
		sky:         newSkybox(cfg.Terrain.SkyboxSize, log),
		ground:      newTerrain(cfg.Terrain, log),
		colors:      make(map[string]color.RGBA),
		orbit:       cfg.Camera.OrbitSpeed,
		zoom:        cfg.Camera.ZoomSpeed,
		log:         log,
	}
	s.Camera = toCamera(v.Cameras.Active().View())
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame. keyboard is false while the console has focus; pointer is
// false when the UI already used the mouse this frame.
func (s *Scene) Update(dt float32, keyboard, pointer bool) {
	v := s.Village
	if keyboard {
		v.Keys.Poll(func(code int32) bool { return rl.IsKeyDown(code) })
	} else {
		v.Keys.Clear()
	}
	if pointer {
		s.handlePointer()
	}
	v.Update(dt)
	s.Camera = toCamera(v.Cameras.Active().View())

	name, dist := v.ForwardHit()
	if name != s.hit && name != "" {
		s.log.Debug("Villager sees house", "house", name, "distance", dist)
	}
	s.hit, s.hitDist = name, dist
}

// handlePointer orbits and zooms the active orbit camera and picks on click.
func (s *Scene) handlePointer() {
	if arc, ok := s.Village.Cameras.Active().(*camera.ArcRotate); ok {
		if rl.IsMouseButtonDown(rl.MouseButtonRight) {
			d := rl.GetMouseDelta()
			arc.Orbit(-d.X*s.orbit, -d.Y*s.orbit)
		}
		if w := rl.GetMouseWheelMove(); w != 0 {
			arc.Zoom(-w * s.zoom)
		}
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	r := rl.GetScreenToWorldRay(rl.GetMousePosition(), s.Camera)
	ray := physics.Ray{
		Origin: [3]float32{r.Position.X, r.Position.Y, r.Position.Z},
		Dir:    [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z},
	}
	if name := s.Village.Click(ray); name != "" {
		s.log.Info("Picked", "name", name)
	}
}

// Ahead is the house on the villager's forward ray as of the last Update, if any.
func (s *Scene) Ahead() (string, float32) {
	return s.hit, s.hitDist
}

// Status describes the villager for the status panel.
func (s *Scene) Status() ui.Status {
	w := s.Village.Villager.Walker
	p := s.Village.Villager.Node.Position()
	lo, hi := w.Bounds()
	return ui.Status{
		State:    w.State().String(),
		Facing:   w.Facing().String(),
		Position: [3]float64{p.X, p.Y, p.Z},
		Yaw:      s.Village.Villager.Node.Rotation().Y,
		Speed:    w.Speed(),
		Min:      [3]float64{lo.X, lo.Y, lo.Z},
		Max:      [3]float64{hi.X, hi.Y, hi.Z},
	}
}

// Draw renders the 3D scene. Call after ClearBackground and before the 2D overlay.
func (s *Scene) Draw() {
	v := s.Village
	light := v.Light
	d := light.Direction()
	pos := s.Camera.Position
	s.prims.SetView([3]float32{pos.X, pos.Y, pos.Z}, [3]float32{-d[0], -d[1], -d[2]}, light.Intensity())

	rl.BeginMode3D(s.Camera)
	s.sky.draw(pos)
	s.ground.draw()
	green := v.Config().Terrain.GreenSize
	s.prims.Draw(primitives.Instance{Kind: primitives.Plane, Scale: [3]float32{green, 1, green}, Tint: greenTint})
	if s.GridVisible {
		drawEditorGrid()
	}

	for _, h := range v.Houses {
		if h.Visible {
			s.drawParts(h.Parts, primitives.Frame{Position: h.Position, Yaw: h.Yaw}, 1)
		}
	}
	car := v.Car
	frame := primitives.Frame{Position: car.Position}
	s.drawParts([]village.Part{car.Body}, frame, car.Scale)
	s.drawParts(car.Wheels, frame, car.Scale)
	s.drawVillager()
	primitives.DrawLathe(v.Fountain.Position, v.Fountain.Profile, s.lit(s.color(v.Fountain.Color)))
	if v.Ball != nil {
		s.drawTrack()
	}
	s.drawMarkers()
	s.drawParticles()
	rl.EndMode3D()
}

func (s *Scene) drawParts(parts []village.Part, frame primitives.Frame, scale float32) {
	if scale == 0 {
		scale = 1
	}
	for _, p := range parts {
		s.prims.Draw(primitives.Instance{
			Kind:     shapeKinds[p.Shape],
			Position: [3]float32{p.Offset[0] * scale, p.Offset[1] * scale, p.Offset[2] * scale},
			Rotation: p.Rotation,
			Scale:    [3]float32{p.Size[0] * scale, p.Size[1] * scale, p.Size[2] * scale},
			Tint:     s.color(p.Color),
			Frame:    frame,
		})
	}
}

func (s *Scene) drawVillager() {
	vl := s.Village.Villager
	pos, yaw := vl.Anchor()
	h := vl.Height
	frame := primitives.Frame{Position: pos, Yaw: yaw}
	s.prims.Draw(primitives.Instance{
		Kind:     primitives.Cylinder,
		Position: [3]float32{0, h * 0.4, 0},
		Scale:    [3]float32{0.3, h * 0.8, 0.3},
		Tint:     coatTint,
		Frame:    frame,
	})
	s.prims.Draw(primitives.Instance{
		Kind:     primitives.Sphere,
		Position: [3]float32{0, h * 0.9, 0},
		Scale:    [3]float32{0.25, 0.25, 0.25},
		Tint:     skinTint,
		Frame:    frame,
	})

	r := vl.Ray()
	length, tint := float32(village.RayLength), rayTint
	if s.hit != "" {
		length, tint = s.hitDist, rayHitTint
	}
	end := r.At(length)
	rl.DrawLine3D(rl.NewVector3(r.Origin[0], r.Origin[1], r.Origin[2]), rl.NewVector3(end[0], end[1], end[2]), tint)
}

func (s *Scene) drawTrack() {
	pts := s.Village.Config().Track.Points
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		rl.DrawLine3D(rl.NewVector3(a[0], a[1], a[2]), rl.NewVector3(b[0], b[1], b[2]), trackTint)
	}
	p := s.Village.Ball.Position()
	rl.DrawSphere(rl.NewVector3(p[0], p[1], p[2]), s.Village.Config().Track.Radius, s.lit(ballTint))
}

// drawMarkers draws the translucent boxes last among the solids so what is behind shows through.
func (s *Scene) drawMarkers() {
	for _, m := range s.Village.Markers {
		c := s.lit(s.color(m.Color))
		c.A = uint8(m.Alpha * 255)
		rl.DrawCube(rl.NewVector3(m.Position[0], m.Position[1], m.Position[2]), m.Size, m.Size, m.Size, c)
	}
}

func (s *Scene) drawParticles() {
	ps := s.Village.Fountain.Particles.Particles()
	if len(ps) == 0 {
		return
	}
	r3 := rl.GetCameraRight(&s.Camera)
	u3 := rl.GetCameraUp(&s.Camera)
	right := [3]float32{r3.X, r3.Y, r3.Z}
	up := [3]float32{u3.X, u3.Y, u3.Z}

	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	for _, p := range ps {
		a, b := particles.Billboard(p, right, up)
		c := rl.ColorFromNormalized(rl.NewVector4(p.Color[0], p.Color[1], p.Color[2], p.Color[3]))
		c0 := rl.NewVector3(p.Position[0]+a[0], p.Position[1]+a[1], p.Position[2]+a[2])
		c1 := rl.NewVector3(p.Position[0]+b[0], p.Position[1]+b[1], p.Position[2]+b[2])
		c2 := rl.NewVector3(p.Position[0]-a[0], p.Position[1]-a[1], p.Position[2]-a[2])
		c3 := rl.NewVector3(p.Position[0]-b[0], p.Position[1]-b[1], p.Position[2]-b[2])
		rl.DrawTriangle3D(c0, c1, c2, c)
		rl.DrawTriangle3D(c0, c2, c3, c)
	}
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
	rl.EndBlendMode()
}

// color resolves a CSS colour string once and caches it. Unknown colours are grey.
func (s *Scene) color(name string) color.RGBA {
	if c, ok := s.colors[name]; ok {
		return c
	}
	c, ok := css.ParseColor(name)
	if !ok {
		c = color.RGBA{128, 128, 128, 255}
		s.log.Warn("Unknown colour", "color", name)
	}
	s.colors[name] = c
	return c
}

// lit shades a colour drawn without the lit shader as an upward-facing surface under the
// village light.
func (s *Scene) lit(c color.RGBA) color.RGBA {
	up := [3]float32{0, 1, 0}
	l := s.Village.Light
	return color.RGBA{R: l.Tint(c.R, up), G: l.Tint(c.G, up), B: l.Tint(c.B, up), A: c.A}
}

// Unload frees the GPU resources. Call before closing the window.
func (s *Scene) Unload() {
	s.prims.Unload()
	s.sky.unload()
	s.ground.unload()
}

func toCamera(v camera.View) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(v.Position[0], v.Position[1], v.Position[2]),
		Target:     rl.NewVector3(v.Target[0], v.Target[1], v.Target[2]),
		Up:         rl.NewVector3(v.Up[0], v.Up[1], v.Up[2]),
		Fovy:       v.Fovy,
		Projection: rl.CameraPerspective,
	}
}
