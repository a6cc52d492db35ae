// Package mapgen builds the grayscale heightmap for the ground around the village:
// fractal value noise that stays flat inside the village and rises toward the rim.
package mapgen

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// HeightMapOptions controls procedural height map generation.
// Size is the pixel width and depth of the image. WorldSize is the extent on X/Z that
// the image covers and FlatRadius is the radius (world units) kept at height zero.
// Seed controls randomness. Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type HeightMapOptions struct {
	Size       int
	WorldSize  float32
	FlatRadius float32
	BlurRadius float64

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultHeightMapOptions returns a sane default configuration.
func DefaultHeightMapOptions() HeightMapOptions {
	return HeightMapOptions{
		Size:       128,
		WorldSize:  150,
		FlatRadius: 30,
		BlurRadius: 1.5,
		Seed:       1,
		Octaves:    4,
		Frequency:  0.04,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

func (o HeightMapOptions) withDefaults() HeightMapOptions {
	d := DefaultHeightMapOptions()
	if o.Size <= 1 {
		o.Size = d.Size
	}
	if o.WorldSize <= 0 {
		o.WorldSize = d.WorldSize
	}
	if o.FlatRadius < 0 {
		o.FlatRadius = 0
	}
	if o.Octaves <= 0 {
		o.Octaves = d.Octaves
	}
	if o.Frequency <= 0 {
		o.Frequency = d.Frequency
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = d.Lacunarity
	}
	if o.Gain <= 0 {
		o.Gain = d.Gain
	}
	return o
}

// HeightMap renders the heightmap. Pixel (0,0) is the world corner (-WorldSize/2, -WorldSize/2).
// The same options always give the same image.
func HeightMap(opts HeightMapOptions) *image.Gray {
	opts = opts.withDefaults()
	n := opts.Size
	img := image.NewGray(image.Rect(0, 0, n, n))
	half := opts.WorldSize / 2
	rim := half - opts.FlatRadius
	for z := range n {
		for x := range n {
			wx := (float32(x)+0.5)/float32(n)*opts.WorldSize - half
			wz := (float32(z)+0.5)/float32(n)*opts.WorldSize - half
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			// Rise from the flat edge to the rim.
			r := float32(math.Hypot(float64(wx), float64(wz)))
			var w float32
			if rim > 0 {
				w = smoothStep((r - opts.FlatRadius) / rim)
			}
			h = clamp01(h * w)
			img.SetGray(x, z, color.Gray{Y: uint8(h * 255)})
		}
	}
	if opts.BlurRadius <= 0 {
		return img
	}
	return flatten(blur.Gaussian(img, opts.BlurRadius), opts)
}

// flatten converts the blurred RGBA back to gray and re-zeroes the flat disc, which the
// blur bleeds into.
func flatten(src *image.RGBA, opts HeightMapOptions) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(b)
	half := opts.WorldSize / 2
	n := float32(b.Dx())
	for z := b.Min.Y; z < b.Max.Y; z++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			wx := (float32(x)+0.5)/n*opts.WorldSize - half
			wz := (float32(z)+0.5)/n*opts.WorldSize - half
			if float32(math.Hypot(float64(wx), float64(wz))) <= opts.FlatRadius {
				continue
			}
			out.SetGray(x, z, color.GrayModel.Convert(src.At(x, z)).(color.Gray))
		}
	}
	return out
}

// HeightAt returns the height (0..maxHeight) under world point (x, z), or 0 outside the map.
func HeightAt(img *image.Gray, worldSize, maxHeight, x, z float32) float32 {
	n := img.Bounds().Dx()
	px := int((x + worldSize/2) / worldSize * float32(n))
	pz := int((z + worldSize/2) / worldSize * float32(n))
	if px < 0 || pz < 0 || px >= n || pz >= img.Bounds().Dy() {
		return 0
	}
	return float32(img.GrayAt(px, pz).Y) / 255 * maxHeight
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32 = 0
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] using a hash-based lattice and cubic easing.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math.Floor(float64(x)))
	y0 := int32(math.Floor(float64(y)))
	tx := x - float32(x0)
	ty := y - float32(y0)

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := lerp(v00, v10, sx)
	ix1 := lerp(v01, v11, sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func clamp01(f float32) float32 {
	if math.IsNaN(float64(f)) || f < 0 {
		return 0
	}
	return min(f, 1)
}
