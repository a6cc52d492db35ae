package physics

// Box is an axis-aligned bounding box in world space.
type Box struct {
	Min [3]float32
	Max [3]float32
}

// BoxAt returns the box centred on center with the given full extents.
func BoxAt(center, size [3]float32) Box {
	var b Box
	for i := range 3 {
		b.Min[i] = center[i] - size[i]*0.5
		b.Max[i] = center[i] + size[i]*0.5
	}
	return b
}

// Translate returns the box moved by d.
func (b Box) Translate(d [3]float32) Box {
	for i := range 3 {
		b.Min[i] += d[i]
		b.Max[i] += d[i]
	}
	return b
}

// Intersects reports whether the boxes overlap. Touching faces do not count.
func (b Box) Intersects(o Box) bool {
	_, axis := penetrationAxis(b, o)
	return axis >= 0
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b Box) (depth float32, axis int) {
	overlapX := min(a.Max[0], b.Max[0]) - max(a.Min[0], b.Min[0])
	overlapY := min(a.Max[1], b.Max[1]) - max(a.Min[1], b.Min[1])
	overlapZ := min(a.Max[2], b.Max[2]) - max(a.Min[2], b.Min[2])
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth = overlapX
	axis = 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}
	return depth, axis
}
