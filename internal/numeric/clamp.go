package numeric

import "golang.org/x/exp/constraints"

// Clamp returns v limited to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Unit clamps v to [0, 1].
func Unit[T constraints.Float](v T) T {
	return Clamp(v, 0, 1)
}

// Lerp blends a toward b by t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// InvLerp returns where v sits between a and b, as a fraction. a == b yields 0.
func InvLerp[T constraints.Float](a, b, v T) T {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}
