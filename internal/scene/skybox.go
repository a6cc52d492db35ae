package scene

import (
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// skyboxPaths are tried in order so the skybox is found whether run from repo root or cmd/village.
var skyboxPaths = []string{
	"assets/skybox/skybox.png",
	"assets/skybox/skybox.jpg",
	"../../assets/skybox/skybox.png",
	"../../assets/skybox/skybox.jpg",
}

// equirectAspectMin/Max: width/height ratio for equirectangular panorama (typically 2:1).
const (
	equirectAspectMin = 1.8
	equirectAspectMax = 2.2
)

// skybox is a large cube centred on the camera, textured with a cubemap or an
// equirectangular panorama. Without an image it draws a flat sky colour inside the box.
type skybox struct {
	size     float32
	tex      rl.Texture2D
	mesh     rl.Mesh
	mtl      rl.Material
	loaded   bool
	pending  bool   // path known, GPU load deferred until first draw
	path     string
	equirect bool
	camPos   int32
	texLoc   int32
}

// newSkybox finds the skybox file and decides cubemap vs equirect. GPU loading is deferred to
// ensure so that it runs after the window/OpenGL context exists.
func newSkybox(size float32, log *slog.Logger) *skybox {
	s := &skybox{size: size}
	for _, p := range skyboxPaths {
		cleaned := filepath.Clean(p)
		if _, err := os.Stat(cleaned); err == nil {
			s.path = cleaned
			break
		}
	}
	if s.path == "" {
		log.Debug("No skybox image, using plain sky", "searched", skyboxPaths)
		return s
	}
	s.pending = true
	return s
}

func (s *skybox) ensure() {
	if !s.pending {
		return
	}
	s.pending = false
	img := rl.LoadImage(s.path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return
	}
	aspect := float32(img.Width) / float32(img.Height)
	s.equirect = aspect >= equirectAspectMin && aspect <= equirectAspectMax

	if !s.equirect {
		s.tex = rl.LoadTextureCubemap(img, rl.CubemapLayoutAutoDetect)
		rl.UnloadImage(img)
		if !rl.IsTextureValid(s.tex) {
			return
		}
		s.mesh = rl.GenMeshCube(1, 1, 1)
		s.mtl = rl.LoadMaterialDefault()
		rl.SetMaterialTexture(&s.mtl, rl.MapCubemap, s.tex)
		s.loaded = true
		return
	}

	rl.UnloadImage(img)
	s.tex = rl.LoadTexture(s.path)
	if !rl.IsTextureValid(s.tex) {
		return
	}
	shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.tex)
		return
	}
	s.mesh = rl.GenMeshCube(1, 1, 1)
	s.mtl = rl.LoadMaterialDefault()
	s.mtl.Shader = shader
	s.camPos = rl.GetShaderLocation(shader, "cameraPosition")
	s.texLoc = rl.GetShaderLocation(shader, "skybox")
	s.loaded = true
}

// Equirectangular skybox shader: samples a 2D panorama by view direction.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D skybox;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(skybox, vec2(u, v));
}
`
)

var plainSky = rl.NewColor(135, 190, 235, 255)

// draw renders the box around the camera with depth writes off, so it is always behind.
func (s *skybox) draw(pos rl.Vector3) {
	s.ensure()
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	defer func() {
		rl.EnableBackfaceCulling()
		rl.EnableDepthMask()
	}()
	if !s.loaded {
		rl.DrawCube(pos, s.size, s.size, s.size, plainSky)
		return
	}
	transform := rl.MatrixMultiply(rl.MatrixScale(s.size, s.size, s.size), rl.MatrixTranslate(pos.X, pos.Y, pos.Z))
	if s.equirect {
		if s.camPos >= 0 {
			rl.SetShaderValueV(s.mtl.Shader, s.camPos, []float32{pos.X, pos.Y, pos.Z}, rl.ShaderUniformVec3, 1)
		}
		if s.texLoc >= 0 {
			rl.SetShaderValueTexture(s.mtl.Shader, s.texLoc, s.tex)
		}
	}
	rl.DrawMesh(s.mesh, s.mtl, transform)
}

func (s *skybox) unload() {
	if !s.loaded {
		return
	}
	rl.UnloadMesh(&s.mesh)
	rl.UnloadTexture(s.tex)
	if s.equirect {
		rl.UnloadShader(s.mtl.Shader)
	}
	s.loaded = false
}
