// Package village is the scene model: everything that lives in the village and how it
// changes from frame to frame. It has no rendering; package scene draws it.
package village

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/chewxy/math32"

	"village/internal/audio"
	"village/internal/camera"
	"village/internal/config"
	"village/internal/input"
	"village/internal/lighting"
	"village/internal/locomotion"
	"village/internal/particles"
	"village/internal/physics"
	"village/internal/track"
)

// Key names read from the key map each frame.
const (
	KeyNorth      = "w"
	KeyWest       = "a"
	KeySouth      = "s"
	KeyEast       = "d"
	KeyMusic      = "p"
	KeyQuieter    = "/"
	KeyLouder     = "'"
	fountainName  = "fountain"
	villagerCamID = "Villager Cam 1"
)

// RayLength is how far the villager looks ahead for houses.
const RayLength = 100

// Camera IDs in creation order.
const (
	MainCamera = "camera"
	CarCamera  = "Car Camera"
)

var directionKeys = [...]struct {
	key string
	dir physics.Direction
}{
	{KeyNorth, physics.North},
	{KeyWest, physics.West},
	{KeySouth, physics.South},
	{KeyEast, physics.East},
}

// Marker is a translucent box. A collider marker pushes houses back.
type Marker struct {
	Name     string
	Position [3]float32
	Size     float32
	Color    string
	Alpha    float32
	Collider bool
	Body     *physics.Body
}

// Fountain is the lathe and its water.
type Fountain struct {
	Position  [3]float32
	Profile   [][2]float32
	Color     string
	Particles *particles.System
	Body      *physics.Body
}

// Villager is the patrolling figure.
type Villager struct {
	Node   *locomotion.Node
	Walker *locomotion.Walker
	Height float32
}

// Anchor reports the villager position and yaw for its camera.
func (v *Villager) Anchor() ([3]float32, float32) {
	p := v.Node.Position()
	return [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}, float32(v.Node.Rotation().Y)
}

// Ray returns the villager's forward ray from its feet.
func (v *Villager) Ray() physics.Ray {
	pos, _ := v.Anchor()
	f := locomotion.Heading(v.Node)
	return physics.Ray{Origin: pos, Dir: [3]float32{float32(f.X), float32(f.Y), float32(f.Z)}}
}

// Deps are the collaborators a Village cannot build itself.
type Deps struct {
	Music audio.Stream
	Log   *slog.Logger
	Rand  *rand.Rand
}

// Village owns every object in the scene.
type Village struct {
	Keys     *input.KeyMap
	Houses   []*House
	Markers  []*Marker
	World    *physics.World
	Car      *Car
	Fountain *Fountain
	Villager *Villager
	Ball     *track.Mover
	Light    *lighting.Directional
	Music    *audio.Player
	Cameras  *camera.Rig
	Main     *camera.ArcRotate

	cfg config.Config
	log *slog.Logger
}

// New builds the village from cfg.
func New(cfg config.Config, deps Deps) (*Village, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	v := &Village{
		Keys:  input.NewKeyMap(),
		World: physics.NewWorld(cfg.Obstacles.Step, cfg.Obstacles.Nudge),
		Light: lighting.NewDirectional(cfg.Light.Position, cfg.Light.Target, cfg.Light.Intensity, log),
		cfg:   cfg,
		log:   log,
	}
	var err error
	if v.Houses, err = BuildHouses(cfg.Houses); err != nil {
		return nil, err
	}
	for _, h := range v.Houses {
		v.World.AddBody(h.Body)
	}
	for _, m := range cfg.Markers {
		mk := &Marker{Name: m.Name, Position: m.Position, Size: m.Size, Color: m.Color, Alpha: m.Alpha, Collider: m.Collider}
		mk.Body = physics.NewBody(m.Name, m.Position, [3]float32{m.Size, m.Size, m.Size}, true)
		if m.Collider {
			v.World.AddBody(mk.Body)
		}
		v.Markers = append(v.Markers, mk)
	}
	if v.Car, err = NewCar(cfg.Car); err != nil {
		return nil, err
	}
	v.Fountain = newFountain(cfg.Fountain, deps.Rand)
	if v.Villager, err = newVillager(cfg.Villager, log); err != nil {
		return nil, err
	}
	if cfg.Track.Enabled {
		v.Ball = newBall(cfg.Track)
	}
	if deps.Music != nil {
		interval := time.Duration(cfg.Music.ToggleInterval * float32(time.Second))
		v.Music = audio.NewPlayer(deps.Music, cfg.Music.Volume, cfg.Music.VolumeStep, interval, log)
		if cfg.Music.Autoplay {
			v.Music.Play()
		}
	}
	v.buildCameras()
	log.Info("Village built", "houses", len(v.Houses), "markers", len(v.Markers), "cameras", len(v.Cameras.IDs()))
	return v, nil
}

func newFountain(cfg config.FountainConfig, rnd *rand.Rand) *Fountain {
	var top float32
	var radius float32
	for _, p := range cfg.Profile {
		top = max(top, p[1])
		radius = max(radius, p[0])
	}
	f := &Fountain{Position: cfg.Position, Profile: cfg.Profile, Color: cfg.Color}
	f.Body = physics.NewBody(fountainName,
		[3]float32{cfg.Position[0], cfg.Position[1] + top/2, cfg.Position[2]},
		[3]float32{2 * radius, top, 2 * radius}, true)
	f.Particles = particles.New(particles.Options{
		Capacity:        cfg.Capacity,
		EmitRate:        cfg.EmitRate,
		Origin:          cfg.Position,
		EmitBoxMin:      cfg.EmitBoxMin,
		EmitBoxMax:      cfg.EmitBoxMax,
		Direction1:      cfg.Direction1,
		Direction2:      cfg.Direction2,
		MinEmitPower:    cfg.MinEmitPower,
		MaxEmitPower:    cfg.MaxEmitPower,
		MinLifeTime:     cfg.MinLifeTime,
		MaxLifeTime:     cfg.MaxLifeTime,
		MinSize:         cfg.MinSize,
		MaxSize:         cfg.MaxSize,
		MinAngularSpeed: cfg.MinAngularSpeed,
		MaxAngularSpeed: cfg.MaxAngularSpeed,
		Gravity:         cfg.Gravity,
		Color1:          cfg.Color1,
		Color2:          cfg.Color2,
		ColorDead:       cfg.ColorDead,
		UpdateSpeed:     cfg.UpdateSpeed,
		Rand:            rnd,
	})
	if cfg.AutoStart {
		f.Particles.Start()
	}
	return f
}

func newVillager(cfg config.VillagerConfig, log *slog.Logger) (*Villager, error) {
	vec := func(a [3]float64) locomotion.Vec3 { return locomotion.Vec3{X: a[0], Y: a[1], Z: a[2]} }
	node := &locomotion.Node{Pos: vec(cfg.Position)}
	w, err := locomotion.New(node, locomotion.Options{
		Speed:        cfg.Speed,
		BaseStep:     cfg.BaseStep,
		RotationRate: cfg.RotationRate,
		Min:          vec(cfg.Min),
		Max:          vec(cfg.Max),
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("villager: %w", err)
	}
	if cfg.Move {
		if err := w.SetAction(locomotion.Move); err != nil {
			return nil, fmt.Errorf("villager: %w", err)
		}
	}
	return &Villager{Node: node, Walker: w, Height: cfg.Height}, nil
}

func newBall(cfg config.TrackConfig) *track.Mover {
	a, b := cfg.Points[0], cfg.Points[1]
	side := math32.Sqrt((b[0]-a[0])*(b[0]-a[0]) + (b[1]-a[1])*(b[1]-a[1]) + (b[2]-a[2])*(b[2]-a[2]))
	return track.NewMover(a, cfg.Step, track.Triangle(side))
}

func (v *Village) buildCameras() {
	c := v.cfg.Camera
	v.Cameras = &camera.Rig{}
	v.Main = camera.NewArcRotate(MainCamera, c.Alpha, c.Beta, c.Radius, c.Target, c.Fovy, c.UpperBetaLimit)
	v.Cameras.Add(v.Main)
	v.Cameras.Add(&camera.Follow{
		Name:         CarCamera,
		Position:     [3]float32{5, 4, 12},
		HeightOffset: c.FollowHeightOffset,
		Radius:       c.FollowRadius,
		Acceleration: c.FollowAcceleration,
		MaxSpeed:     c.FollowMaxSpeed,
		Fovy:         c.Fovy,
		Target:       v.Car.Anchor,
	})
	vc := camera.NewArcRotate(villagerCamID, math32.Pi/2, c.VillagerBeta, c.VillagerRadius,
		[3]float32{0, c.VillagerHeight, 0}, c.Fovy, c.UpperBetaLimit)
	vc.MinRadius = 0.01
	vc.Parent = v.Villager.Anchor
	v.Cameras.Add(vc)
}

// Update advances the village by one frame of dt seconds. Keys must be polled first.
func (v *Village) Update(dt float32) {
	v.Villager.Walker.Tick()

	if v.Music != nil {
		if v.Keys.Down(KeyMusic) {
			v.Music.Toggle()
		}
		if v.Keys.Down(KeyQuieter) {
			v.Music.Quieter()
		}
		if v.Keys.Down(KeyLouder) {
			v.Music.Louder()
		}
		v.Music.Update()
	}

	var held []physics.Direction
	for _, dk := range directionKeys {
		if v.Keys.Down(dk.key) {
			held = append(held, dk.dir)
		}
	}
	if len(held) > 0 {
		if n := v.World.Push(held...); n > 0 {
			v.log.Debug("Houses nudged off marker", "count", n)
		}
		for _, h := range v.Houses {
			h.Sync()
		}
	}

	v.Car.Update(dt)
	v.Fountain.Particles.Update(dt)
	if v.Ball != nil {
		v.Ball.Advance()
	}
	v.Cameras.Update(dt)
}

// Pick returns the name of the closest pickable object on r: the fountain or a house.
func (v *Village) Pick(r physics.Ray) string {
	bodies := []*physics.Body{v.Fountain.Body}
	for _, h := range v.Houses {
		if h.Visible {
			bodies = append(bodies, h.Body)
		}
	}
	b, _ := physics.FirstHit(r, math32.Inf(1), bodies)
	if b == nil {
		return ""
	}
	return b.Name
}

// Click handles a pointer press along r. Clicking the fountain toggles its water.
func (v *Village) Click(r physics.Ray) string {
	name := v.Pick(r)
	if name == fountainName {
		on := v.Fountain.Particles.Toggle()
		v.log.Info("Fountain toggled", "running", on)
	}
	return name
}

// ToggleFountain starts or stops the fountain and returns whether it is now running.
func (v *Village) ToggleFountain() bool {
	return v.Fountain.Particles.Toggle()
}

// ForwardHit returns the first visible house on the villager's forward ray, if any.
func (v *Village) ForwardHit() (string, float32) {
	var bodies []*physics.Body
	for _, h := range v.Houses {
		if h.Visible {
			bodies = append(bodies, h.Body)
		}
	}
	b, d := physics.FirstHit(v.Villager.Ray(), RayLength, bodies)
	if b == nil {
		return "", 0
	}
	return b.Name, d
}

// VillagerCamera is the ID of the camera riding on the villager.
func (v *Village) VillagerCamera() string { return villagerCamID }

// Config returns the configuration the village was built from.
func (v *Village) Config() config.Config { return v.cfg }
