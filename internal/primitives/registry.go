package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds mesh and material for a primitive kind. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// offset centres the mesh on the instance position before scaling.
	offset [3]float32
}

// Registry maps primitive kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache          map[Kind]cached
	viewPos        [3]float32 // camera position, set each frame for lighting
	lightDir       [3]float32 // direction to light (normalized), set each frame
	lightIntensity float32
}

// NewRegistry returns a registry with no primitives. Meshes are created on first Draw.
func NewRegistry() *Registry {
	return &Registry{
		cache:          make(map[Kind]cached),
		lightDir:       [3]float32{0.5, 1, 0.5}, // default: from above-right
		lightIntensity: 0.75,
	}
}

// SetView sets camera position, direction-to-light and light intensity for this frame.
// Call once per frame before drawing so lit primitives get correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32, intensity float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
	r.lightIntensity = intensity
}

// Resolution of the generated meshes.
const (
	defaultSphereRings    = 16
	defaultSphereSlices   = 16
	defaultCylinderSlices = 16
	defaultPlaneResX      = 1
	defaultPlaneResZ      = 1
)

// genMesh builds the unit mesh for kind and the offset that centres it.
func genMesh(kind Kind) (rl.Mesh, [3]float32, bool) {
	switch kind {
	case Cube:
		return rl.GenMeshCube(1, 1, 1), [3]float32{}, true
	case Sphere:
		// Radius 0.5 so diameter = 1, matching cube side length.
		return rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices), [3]float32{}, true
	case Cylinder:
		// Raylib cylinder: base Y=0, top Y=height.
		return rl.GenMeshCylinder(0.5, 1, defaultCylinderSlices), [3]float32{0, -0.5, 0}, true
	case Prism:
		// A three-sided cylinder is a triangular prism standing on a triangle.
		return rl.GenMeshCylinder(0.5, 1, 3), [3]float32{0, -0.5, 0}, true
	case Plane:
		return rl.GenMeshPlane(1, 1, defaultPlaneResX, defaultPlaneResZ), [3]float32{}, true
	}
	return rl.Mesh{}, [3]float32{}, false
}

// ensure creates the mesh and material for kind if not yet cached.
// Uses a simple lighting shader (directional light + ambient) so solids have visible shading.
func (r *Registry) ensure(kind Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	mesh, offset, ok := genMesh(kind)
	if !ok {
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: mesh, mtl: mtl, offset: offset}
	r.cache[kind] = c
	return c, true
}

// loadLitShader returns a shader that does simple directional light + ambient.
// Used by cube and sphere. Same vertex attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0-1).
const defaultSpecularStrength = float32(0.35)

// setLitShaderUniforms sets viewPos, lightDir, ambient, light color/intensity, and specular on the given shader ; local arrays keep cgo happy.
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// transform builds offset, scale, rotation (XYZ euler), translation, then the frame's yaw and
// translation. A zero scale component counts as 1.
func transform(in Instance, offset [3]float32) rl.Matrix {
	sx, sy, sz := in.Scale[0], in.Scale[1], in.Scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	m := rl.MatrixTranslate(offset[0], offset[1], offset[2])
	m = rl.MatrixMultiply(m, rl.MatrixScale(sx, sy, sz))
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(rl.NewVector3(in.Rotation[0], in.Rotation[1], in.Rotation[2])))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(in.Position[0], in.Position[1], in.Position[2]))
	f := in.Frame
	if f.Yaw != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateY(f.Yaw))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(f.Position[0], f.Position[1], f.Position[2]))
}

// Draw draws one instance. Must be called between BeginMode3D and EndMode3D, after SetView.
// Unknown kinds are skipped.
func (r *Registry) Draw(in Instance) {
	c, ok := r.ensure(in.Kind)
	if !ok {
		return
	}
	tint := in.Tint
	if tint == (color.RGBA{}) {
		tint = defaultPrimitiveColor
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, transform(in, c.offset))
}

// Unload frees every cached mesh and material.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadShader(c.mtl.Shader)
		delete(r.cache, k)
	}
}
