package game

// Fixed-point scale factor: 1 cell = 1000 units.
// This allows for sub-cell precision while maintaining determinism.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f) / Scale
}

// ToCellRounded converts fixed-point to nearest cell.
func (f Fixed) ToCellRounded() int {
	if f >= 0 {
		return int(f+Scale/2) / Scale
	}
	return int(f-Scale/2) / Scale
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// ClampFixed clamps a value to [min, max].
func ClampFixed(f, min, max Fixed) Fixed {
	if f < min {
		return min
	}
	if f > max {
		return max
	}
	return f
}
