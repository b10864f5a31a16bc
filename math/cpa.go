// math/cpa.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// This file implements the closed-form time-to-closest-point-of-approach
// and cylinder/slab entry-exit primitives that spec.md §4.1 names but
// leaves as a provided numeric utility. The shape (small top-level
// functions, no receiver types, almost_equals-guarded degenerate branches)
// follows the teacher's pkg/math/vecmat.go and transcendentals.go style;
// the formulas themselves are the standard relative-kinematics closed forms
// used throughout well-clear-volume literature (they fall out of expanding
// |s+tv|^2 as a quadratic in t).

// HorizontalCPATime returns the time at which the horizontal separation
// between the two aircraft (relative position s, relative velocity v, both
// horizontal-only) is minimized. Returns 0 when the horizontal relative
// velocity is (near) zero, since the separation is then constant and "now"
// is as good an answer as any (closest approach is every instant).
func HorizontalCPATime(s, v Vector2) float64 {
	vv := Dot2(v, v)
	if AlmostEquals(vv, 0) {
		return 0
	}
	return -Dot2(s, v) / vv
}

// HorizontalCPADistance returns the horizontal separation at the time of
// horizontal closest point of approach (clamped to t>=0: CPA in the past
// isn't meaningful for a forward-looking conflict test).
func HorizontalCPADistance(s, v Vector2) float64 {
	t := HorizontalCPATime(s, v)
	if t < 0 {
		t = 0
	}
	return Length2(Add2(s, Scale2(v, t)))
}

// CPATime3 returns the time at which the full 3-D relative separation is
// minimized (unclamped; callers decide whether a negative value means "in
// the past").
func CPATime3(s, v Vector3) float64 {
	vv := Dot3(v, v)
	if AlmostEquals(vv, 0) {
		return 0
	}
	return -Dot3(s, v) / vv
}

// NormCyl returns the cylinder-normalized norm ||.||_{D,H} = max(|horiz|/D,
// |vert|/H) from spec.md §4.1; 0 at coincidence, 1 at the cylinder boundary.
func NormCyl(s Vector3, d, h float64) float64 {
	horiz := Length2(Horizontal(s))
	vert := Abs(s[2])
	var a, b float64
	if d > 0 {
		a = horiz / d
	} else {
		a = Infinity
	}
	if h > 0 {
		b = vert / h
	} else {
		b = Infinity
	}
	return max(a, b)
}

// DiskEntryExit finds the times at which the horizontal relative position
// s+t*v enters and exits the disk of radius d centered at the origin
// (spec.md §4.1's Θ_D). Returns ok=false when the relative trajectory
// never intersects the disk (degenerate or diverging).
func DiskEntryExit(s, v Vector2, d float64) (tIn, tOut float64, ok bool) {
	a := Dot2(v, v)
	b := 2 * Dot2(s, v)
	c := Dot2(s, s) - d*d

	if AlmostEquals(a, 0) {
		// No horizontal closure: either always inside or never.
		if c <= 0 {
			return NegInfinity, Infinity, true
		}
		return 0, 0, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// SlabEntryExit finds the times at which the relative altitude sz+t*vz is
// within [-h, h] (spec.md §4.1's Θ_H, a 1-D slab of half-height h).
func SlabEntryExit(sz, vz, h float64) (tIn, tOut float64, ok bool) {
	if AlmostEquals(vz, 0) {
		if Abs(sz) <= h {
			return NegInfinity, Infinity, true
		}
		return 0, 0, false
	}
	t1 := (-h - sz) / vz
	t2 := (h - sz) / vz
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// TimeToCoAltitude returns the (non-negative) time at which the relative
// altitude reaches zero, or +Inf if vz is (near) zero.
func TimeToCoAltitude(sz, vz float64) float64 {
	if AlmostEquals(vz, 0) {
		return Infinity
	}
	t := -sz / vz
	if t < 0 {
		return Infinity
	}
	return t
}

// Discriminant returns Δ(s,v,D) = (s·v)^2 - |v|^2(|s|^2-D^2), the
// discriminant of the horizontal disk-intersection quadratic (spec.md
// §4.1). Negative means the horizontal trajectory never reaches distance D.
func Discriminant(s, v Vector2, d float64) float64 {
	sv := Dot2(s, v)
	vv := Dot2(v, v)
	ss := Dot2(s, s)
	return sv*sv - vv*(ss-d*d)
}

// TCPACylinder returns the severity time t_crit used by CYL's ConflictData:
// the 3-D Euclidean closest-approach time (CPATime3) clamped into [b,t].
// d and h are not used: the cylinder's proportions do not affect the
// result.
func TCPACylinder(s, v Vector3, d, h, b, t float64) float64 {
	tcpa := CPATime3(s, v)
	return Clamp(tcpa, b, t)
}
