package geom

import "math"

const (
	// MinValue is the smallest representable coordinate or size.
	MinValue = math.MinInt32
	// MaxValue is the largest representable coordinate or size.
	MaxValue = math.MaxInt32
)

// Widen lifts a coordinate into the intermediate type used for edge sums.
func Widen(v int32) int64 {
	return int64(v)
}

// Narrow clamps v into the int32 range.
func Narrow(v int64) int32 {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return int32(v)
}

// NarrowLow clamps only the low end. The caller guarantees v <= MaxValue.
func NarrowLow(v int64) int32 {
	if v < MinValue {
		return MinValue
	}
	return int32(v)
}

// NarrowHigh clamps only the high end. The caller guarantees v >= MinValue.
func NarrowHigh(v int64) int32 {
	if v > MaxValue {
		return MaxValue
	}
	return int32(v)
}

// clip narrows a float coordinate, flooring positions and ceiling sizes.
// NaN narrows to zero.
func clip(v float64, ceil bool) int32 {
	if math.IsNaN(v) {
		return 0
	}
	if v <= MinValue {
		return MinValue
	}
	if v >= MaxValue {
		return MaxValue
	}
	if ceil {
		return int32(math.Ceil(v))
	}
	return int32(math.Floor(v))
}
