package scene

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"village/internal/config"
	"village/internal/mapgen"
)

var groundTint = rl.NewColor(86, 120, 60, 255)

// terrain is the large heightmapped ground around the village green.
type terrain struct {
	cfg    config.TerrainConfig
	model  rl.Model
	loaded bool
	tried  bool
	log    *slog.Logger
}

func newTerrain(cfg config.TerrainConfig, log *slog.Logger) *terrain {
	return &terrain{cfg: cfg, log: log}
}

// ensure generates the height map and uploads the mesh. It runs on the first draw, once the
// GL context exists.
func (t *terrain) ensure() {
	if t.tried {
		return
	}
	t.tried = true
	opts := mapgen.DefaultHeightMapOptions()
	opts.Size = t.cfg.Subdivisions
	opts.WorldSize = t.cfg.Size
	opts.FlatRadius = t.cfg.FlatRadius
	opts.BlurRadius = t.cfg.BlurRadius
	opts.Seed = t.cfg.Seed
	gray := mapgen.HeightMap(opts)
	img := rl.NewImageFromImage(gray)
	mesh := rl.GenMeshHeightmap(*img, rl.NewVector3(t.cfg.Size, t.cfg.MaxHeight, t.cfg.Size))
	rl.UnloadImage(img)
	t.model = rl.LoadModelFromMesh(mesh)
	t.loaded = true
	t.log.Debug("Terrain generated", "size", t.cfg.Size, "pixels", gray.Bounds().Dx(), "seed", t.cfg.Seed)
}

// draw renders the ground centred on the origin, slightly below the green.
func (t *terrain) draw() {
	t.ensure()
	if !t.loaded {
		return
	}
	half := t.cfg.Size / 2
	rl.DrawModel(t.model, rl.NewVector3(-half, t.cfg.OffsetY, -half), 1, groundTint)
}

func (t *terrain) unload() {
	if t.loaded {
		rl.UnloadModel(t.model)
		t.loaded = false
	}
}
