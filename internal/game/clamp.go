package game

// ClampPercent clamps a 0–100 scale value. Out-of-range inputs are clamped at
// the boundary, never rejected: frequent harmless overshoots (a reputation
// bonus on a 98-reputation store) are not errors.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorZero returns v, or 0 if v is negative.
func FloorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
