package physics

import "github.com/chewxy/math32"

// Ray is a half line. Dir need not be normalized; distances are in units of |Dir|.
type Ray struct {
	Origin [3]float32
	Dir    [3]float32
}

// At returns the point at parameter t.
func (r Ray) At(t float32) [3]float32 {
	return [3]float32{r.Origin[0] + r.Dir[0]*t, r.Origin[1] + r.Dir[1]*t, r.Origin[2] + r.Dir[2]*t}
}

// Hit reports whether r meets b and the parameter of the entry point (0 when the origin is inside).
func (r Ray) Hit(b Box) (float32, bool) {
	tmin, tmax := float32(0), math32.Inf(1)
	for i := range 3 {
		if r.Dir[i] == 0 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[i] - r.Origin[i]) / r.Dir[i]
		t2 := (b.Max[i] - r.Origin[i]) / r.Dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// FirstHit returns the closest body hit by r within maxT, or nil.
func FirstHit(r Ray, maxT float32, bodies []*Body) (*Body, float32) {
	var best *Body
	bestT := maxT
	for _, b := range bodies {
		if t, ok := r.Hit(b.AABB()); ok && t <= bestT {
			best, bestT = b, t
		}
	}
	return best, bestT
}
