// math/core.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Mathematical Constants
const (
	Pi      = math.Pi
	TwoPi   = 2 * math.Pi
	PiOver2 = math.Pi / 2
)

var Infinity = math.Inf(1)
var NegInfinity = math.Inf(-1)

// Epsilon is the default tolerance used by AlmostEquals when comparing
// two floating-point quantities that are expected to coincide up to
// accumulated rounding error (e.g. border cases in entry/exit time tests).
const Epsilon = 1e-9

// Degrees converts an angle expressed in radians to degrees.
func Degrees(r float64) float64 {
	return r * 180 / Pi
}

// Radians converts an angle expressed in degrees to radians.
func Radians(d float64) float64 {
	return d / 180 * Pi
}

func Sqrt(a float64) float64 {
	if a < 0 {
		return math.NaN()
	}
	return math.Sqrt(a)
}

func Mod(a, b float64) float64 {
	return math.Mod(a, b)
}

// Sign returns 1 if v > 0, -1 if v < 0, or 0 if v == 0.
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

// Abs returns the absolute value of x.
func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

// Clamp restricts x to the range [low, high].
func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Lerp performs linear interpolation between a and b using factor x in [0,1].
func Lerp(x, a, b float64) float64 {
	return (1-x)*a + x*b
}

// AlmostEquals reports whether a and b differ by no more than Epsilon,
// guarding the degenerate branches (parallel velocities, zero closure,
// border-exact bands boundaries) called out throughout spec.md §4.1/§4.5.
func AlmostEquals(a, b float64) bool {
	return Abs(a-b) <= Epsilon
}

// AlmostEqualsTol is AlmostEquals with an explicit tolerance.
func AlmostEqualsTol(a, b, tol float64) bool {
	return Abs(a-b) <= tol
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NormalizeAngle wraps an angle (radians) into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}
