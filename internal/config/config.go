package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/village.yaml"

// ErrInvalid is wrapped by every validation failure returned from Validate and Load.
var ErrInvalid = errors.New("invalid config")

// Config is the full village configuration. Every section has a default (see Default);
// a YAML file only needs to name the values it changes.
type Config struct {
	Window    WindowConfig   `yaml:"window"`
	Debug     DebugConfig    `yaml:"debug"`
	Log       LogConfig      `yaml:"log"`
	Camera    CameraConfig   `yaml:"camera"`
	Light     LightConfig    `yaml:"light"`
	Villager  VillagerConfig `yaml:"villager"`
	Houses    HousesConfig   `yaml:"houses"`
	Markers   []MarkerConfig `yaml:"markers"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Car       CarConfig      `yaml:"car"`
	Fountain  FountainConfig `yaml:"fountain"`
	Music     MusicConfig    `yaml:"music"`
	Track     TrackConfig    `yaml:"track"`
	Terrain   TerrainConfig  `yaml:"terrain"`
	UI        UIConfig       `yaml:"ui"`
}

// WindowConfig sizes the raylib window. Zero width/height means the primary monitor size.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int    `yaml:"target_fps"`
}

// DebugConfig toggles the debug overlays and the editor grid.
type DebugConfig struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowVillager bool `yaml:"show_villager"`
	GridVisible  bool `yaml:"grid_visible"`
}

// LogConfig controls the rotated log file.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	ConsoleMax int    `yaml:"console_lines"`
}

// CameraConfig holds the arc-rotate main camera and the follow/villager camera settings.
type CameraConfig struct {
	Alpha          float32    `yaml:"alpha"`
	Beta           float32    `yaml:"beta"`
	Radius         float32    `yaml:"radius"`
	Target         [3]float32 `yaml:"target"`
	Fovy           float32    `yaml:"fovy"`
	UpperBetaLimit float32    `yaml:"upper_beta_limit"`
	OrbitSpeed     float32    `yaml:"orbit_speed"`
	ZoomSpeed      float32    `yaml:"zoom_speed"`

	FollowHeightOffset float32 `yaml:"follow_height_offset"`
	FollowRadius       float32 `yaml:"follow_radius"`
	FollowAcceleration float32 `yaml:"follow_acceleration"`
	FollowMaxSpeed     float32 `yaml:"follow_max_speed"`

	VillagerRadius float32 `yaml:"villager_radius"`
	VillagerBeta   float32 `yaml:"villager_beta"`
	VillagerHeight float32 `yaml:"villager_height"`
}

// LightConfig is the directional light bound to the day/night slider.
type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	Target    [3]float32 `yaml:"target"`
	Intensity float32    `yaml:"intensity"`
}

// VillagerConfig configures the patrolling villager.
type VillagerConfig struct {
	Position     [3]float64 `yaml:"position"`
	Min          [3]float64 `yaml:"min"`
	Max          [3]float64 `yaml:"max"`
	Speed        float64    `yaml:"speed"`
	BaseStep     float64    `yaml:"base_step"`
	RotationRate float64    `yaml:"rotation_rate"`
	Move         bool       `yaml:"move"`
	Height       float32    `yaml:"height"`
}

// HouseKind names a house template.
type HouseKind string

const (
	Detached HouseKind = "detached"
	Semi     HouseKind = "semi"
)

// Placement puts one house of Kind at (X, Z) (before Spacing is applied) rotated by Yaw.
type Placement struct {
	Kind HouseKind `yaml:"kind"`
	Yaw  float32   `yaml:"yaw"`
	X    float32   `yaml:"x"`
	Z    float32   `yaml:"z"`
}

// HousesConfig is the procedural house layout.
type HousesConfig struct {
	Spacing    float32     `yaml:"spacing"`
	Placements []Placement `yaml:"placements"`
}

// MarkerConfig is a translucent box; the one with Collider set nudges houses away.
type MarkerConfig struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Size     float32    `yaml:"size"`
	Color    string     `yaml:"color"`
	Alpha    float32    `yaml:"alpha"`
	Collider bool       `yaml:"collider"`
}

// ObstacleConfig controls the w/a/s/d bulk translation of houses.
type ObstacleConfig struct {
	Step  float32 `yaml:"step"`
	Nudge float32 `yaml:"nudge"`
}

// CarConfig is the car path and wheel animation.
type CarConfig struct {
	Position   [3]float32 `yaml:"position"`
	Scale      float32    `yaml:"scale"`
	StartZ     float32    `yaml:"start_z"`
	EndZ       float32    `yaml:"end_z"`
	Frames     float32    `yaml:"frames"`
	FrameRate  float32    `yaml:"frame_rate"`
	SpeedRatio float32    `yaml:"speed_ratio"`

	WheelFrames    float32 `yaml:"wheel_frames"`
	WheelFrameRate float32 `yaml:"wheel_frame_rate"`
}

// FountainConfig is the fountain lathe and its particle system.
type FountainConfig struct {
	Position        [3]float32   `yaml:"position"`
	Profile         [][2]float32 `yaml:"profile"`
	Color           string       `yaml:"color"`
	Capacity        int          `yaml:"capacity"`
	EmitRate        float32      `yaml:"emit_rate"`
	EmitBoxMin      [3]float32   `yaml:"emit_box_min"`
	EmitBoxMax      [3]float32   `yaml:"emit_box_max"`
	MinLifeTime     float32      `yaml:"min_life_time"`
	MaxLifeTime     float32      `yaml:"max_life_time"`
	MinSize         float32      `yaml:"min_size"`
	MaxSize         float32      `yaml:"max_size"`
	MinEmitPower    float32      `yaml:"min_emit_power"`
	MaxEmitPower    float32      `yaml:"max_emit_power"`
	MinAngularSpeed float32      `yaml:"min_angular_speed"`
	MaxAngularSpeed float32      `yaml:"max_angular_speed"`
	Direction1      [3]float32   `yaml:"direction1"`
	Direction2      [3]float32   `yaml:"direction2"`
	Gravity         [3]float32   `yaml:"gravity"`
	Color1          [4]float32   `yaml:"color1"`
	Color2          [4]float32   `yaml:"color2"`
	ColorDead       [4]float32   `yaml:"color_dead"`
	UpdateSpeed     float32      `yaml:"update_speed"`
	AutoStart       bool         `yaml:"auto_start"`
}

// MusicConfig is the background music stream.
type MusicConfig struct {
	Path           string  `yaml:"path"`
	Volume         float32 `yaml:"volume"`
	VolumeStep     float32 `yaml:"volume_step"`
	ToggleInterval float32 `yaml:"toggle_interval_sec"`
	Autoplay       bool    `yaml:"autoplay"`
}

// TrackConfig is the sphere sliding around a triangle.
type TrackConfig struct {
	Enabled bool         `yaml:"enabled"`
	Points  [][3]float32 `yaml:"points"`
	Step    float32      `yaml:"step"`
	Radius  float32      `yaml:"radius"`
}

// TerrainConfig is the village green and the large procedural ground around it.
type TerrainConfig struct {
	GreenSize    float32 `yaml:"green_size"`
	Size         float32 `yaml:"size"`
	Subdivisions int     `yaml:"subdivisions"`
	MaxHeight    float32 `yaml:"max_height"`
	OffsetY      float32 `yaml:"offset_y"`
	FlatRadius   float32 `yaml:"flat_radius"`
	BlurRadius   float64 `yaml:"blur_radius"`
	Seed         int64   `yaml:"seed"`
	SkyboxSize   float32 `yaml:"skybox_size"`
}

// UIConfig points at the optional overlay assets. An empty Font keeps raylib's default font;
// a missing CSS file keeps the built-in stylesheet.
type UIConfig struct {
	CSS  string `yaml:"css"`
	Font string `yaml:"font"`
}

// Load reads the YAML file at path over Default() and validates the result. A missing file
// is not an error; Default() is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Validate returns the first out-of-range value found, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS <= 0 {
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	}
	axes := [3]string{"x", "y", "z"}
	for i, name := range axes {
		if c.Villager.Min[i] > c.Villager.Max[i] {
			return fmt.Errorf("%w: villager min %s %g > max %s %g", ErrInvalid, name, c.Villager.Min[i], name, c.Villager.Max[i])
		}
	}
	if c.Villager.Speed < 0 || math.IsNaN(c.Villager.Speed) {
		return fmt.Errorf("%w: villager speed %g", ErrInvalid, c.Villager.Speed)
	}
	for i, p := range c.Houses.Placements {
		if p.Kind != Detached && p.Kind != Semi {
			return fmt.Errorf("%w: house %d: unknown kind %q", ErrInvalid, i, p.Kind)
		}
	}
	f := c.Fountain
	if f.MinLifeTime > f.MaxLifeTime || f.MinSize > f.MaxSize || f.MinEmitPower > f.MaxEmitPower || f.MinAngularSpeed > f.MaxAngularSpeed {
		return fmt.Errorf("%w: fountain min/max ranges", ErrInvalid)
	}
	if f.Capacity < 0 || f.EmitRate < 0 {
		return fmt.Errorf("%w: fountain capacity %d emit rate %g", ErrInvalid, f.Capacity, f.EmitRate)
	}
	if c.Music.Volume < 0 || c.Music.Volume > 1 {
		return fmt.Errorf("%w: music volume %g", ErrInvalid, c.Music.Volume)
	}
	if c.Light.Intensity < 0 || c.Light.Intensity > 1 {
		return fmt.Errorf("%w: light intensity %g", ErrInvalid, c.Light.Intensity)
	}
	if c.Track.Enabled && len(c.Track.Points) < 2 {
		return fmt.Errorf("%w: track needs at least two points", ErrInvalid)
	}
	return nil
}
