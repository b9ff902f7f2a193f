package vmath

import "math"

// --- Angles ---

// ToRadians converts degrees to radians
func ToRadians(deg float64) float64 { return deg * math.Pi / 180.0 }

// ToDegrees converts radians to degrees
func ToDegrees(rad float64) float64 { return rad * 180.0 / math.Pi }

// --- Intervals ---

// InclusiveBetween reports whether low <= v <= high
func InclusiveBetween(low, v, high float64) bool {
	return low <= v && v <= high
}

// IntervalsOverlap reports whether [aLow, aHigh] and [bLow, bHigh] share at least one value
func IntervalsOverlap(aLow, aHigh, bLow, bHigh float64) bool {
	return !(aHigh < bLow || aLow > bHigh)
}

// ClampInt limits v to [low, high]
func ClampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
