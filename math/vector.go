// math/vector.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

// Vector3 is a relative position or velocity in the east/north/up frame:
// [0]=east, [1]=north, [2]=up, all in meters (or m/s for velocities).
// spec.md §3 requires these be finite; callers are expected to validate
// at the boundary (TrafficState construction), not on every arithmetic op.
type Vector3 [3]float64

// Vector2 is the horizontal (east/north) projection of a Vector3.
type Vector2 [2]float64

func Add3(a, b Vector3) Vector3 {
	return Vector3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub3(a, b Vector3) Vector3 {
	return Vector3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Scale3(a Vector3, s float64) Vector3 {
	return Vector3{a[0] * s, a[1] * s, a[2] * s}
}

func Dot3(a, b Vector3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Length3(a Vector3) float64 {
	return Sqrt(Dot3(a, a))
}

// Horizontal returns the east/north projection of v.
func Horizontal(v Vector3) Vector2 {
	return Vector2{v[0], v[1]}
}

// Vertical returns the up component of v.
func Vertical(v Vector3) float64 {
	return v[2]
}

func Add2(a, b Vector2) Vector2 {
	return Vector2{a[0] + b[0], a[1] + b[1]}
}

func Sub2(a, b Vector2) Vector2 {
	return Vector2{a[0] - b[0], a[1] - b[1]}
}

func Scale2(a Vector2, s float64) Vector2 {
	return Vector2{a[0] * s, a[1] * s}
}

func Dot2(a, b Vector2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

func Length2(a Vector2) float64 {
	return Sqrt(Dot2(a, a))
}

func Normalize2(a Vector2) Vector2 {
	l := Length2(a)
	if l == 0 {
		return Vector2{0, 0}
	}
	return Scale2(a, 1/l)
}

// Rotator2 returns a function that rotates points by the given angle
// (radians), matching the teacher's Rotator2f shape in pkg/math/vecmat.go.
func Rotator2(angle float64) func(Vector2) Vector2 {
	s, c := Sin(angle), Cos(angle)
	return func(p Vector2) Vector2 {
		return Vector2{c*p[0] + s*p[1], -s*p[0] + c*p[1]}
	}
}

// Sin/Cos use the stdlib float64 implementations directly: the teacher's
// polynomial SinCos approximation (pkg/math/transcendentals.go) trades
// accuracy for throughput in a per-frame rendering hot loop, which isn't a
// tradeoff this engine wants when the same angle feeds a time-to-conflict
// root solve.
func Sin(x float64) float64 { return gomath.Sin(x) }
func Cos(x float64) float64 { return gomath.Cos(x) }
func Atan2(y, x float64) float64 { return gomath.Atan2(y, x) }
