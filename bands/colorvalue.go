// bands/colorvalue.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package bands implements the colored-value partition model (spec.md
// §4.5, component C6), the kinematic integer-step scanner (§4.6, C7), and
// the per-axis adapters built on top of it (§4.7, C8).
package bands

import (
	"sort"

	"daidalus/alerting"
	"daidalus/math"
)

// ColorValue is one breakpoint of a colored partition (spec.md §3): the
// region to its left, the region to its right, and the axis value it sits
// at. A well-formed List is sorted ascending by Value with the adjacency
// invariant list[i].Right == list[i+1].Left.
type ColorValue struct {
	Left, Right alerting.Region
	Value       float64
}

// List is a sorted, adjacency-consistent sequence of ColorValues
// representing a partition of one axis.
type List []ColorValue

// severity ranks a Region for the "strictly higher severity" overwrite
// rule (spec.md §4.5); alerting.RegionUnknown is handled by the caller
// (protected, never compared numerically).
func severity(r alerting.Region) int {
	switch r {
	case alerting.RegionNone:
		return 0
	case alerting.RegionFar:
		return 1
	case alerting.RegionMid:
		return 2
	case alerting.RegionNear:
		return 3
	case alerting.RegionRecovery:
		return 4
	default:
		return -1
	}
}

// NewFlat is the "Flat" init variant (spec.md §4.5): the whole [min,max]
// domain starts at interior, bounded by UNKNOWN outside.
func NewFlat(min, max float64, interior alerting.Region) List {
	return List{
		{Left: alerting.RegionUnknown, Right: interior, Value: min},
		{Left: interior, Right: alerting.RegionUnknown, Value: max},
	}
}

// NewClamped is the "Clamped" init variant: four points when
// min < minVal < maxVal < max, with NONE on the outer margins and
// interior on [minVal,maxVal].
func NewClamped(min, minVal, maxVal, max float64, interior alerting.Region) List {
	return List{
		{Left: alerting.RegionUnknown, Right: alerting.RegionNone, Value: min},
		{Left: alerting.RegionNone, Right: interior, Value: minVal},
		{Left: interior, Right: alerting.RegionNone, Value: maxVal},
		{Left: alerting.RegionNone, Right: alerting.RegionUnknown, Value: max},
	}
}

// NewModular is the "Modular" init variant for a circular axis of period
// mod (e.g. direction, mod=2π): the four-point clamped form when
// min < max, or the wrap-around form (interior spanning through 0) when
// min > max (spec.md §4.5).
func NewModular(min, max, mod float64, interior alerting.Region) List {
	if min <= max {
		return List{
			{Left: alerting.RegionUnknown, Right: alerting.RegionNone, Value: 0},
			{Left: alerting.RegionNone, Right: interior, Value: min},
			{Left: interior, Right: alerting.RegionNone, Value: max},
			{Left: alerting.RegionNone, Right: alerting.RegionUnknown, Value: mod},
		}
	}
	return List{
		{Left: alerting.RegionUnknown, Right: interior, Value: 0},
		{Left: interior, Right: alerting.RegionNone, Value: max},
		{Left: alerting.RegionNone, Right: interior, Value: min},
		{Left: interior, Right: alerting.RegionUnknown, Value: mod},
	}
}

// ensureBreakpoint splits l at v if no breakpoint already sits there,
// using sort.Search for the insertion index (spec.md §4.5 step 1).
func ensureBreakpoint(l List, v float64) List {
	i := sort.Search(len(l), func(i int) bool { return l[i].Value >= v })
	if i < len(l) && math.AlmostEquals(l[i].Value, v) {
		return l
	}
	if i == 0 || i >= len(l) {
		return l
	}
	color := l[i-1].Right
	out := make(List, 0, len(l)+1)
	out = append(out, l[:i]...)
	out = append(out, ColorValue{Left: color, Right: color, Value: v})
	out = append(out, l[i:]...)
	return out
}

// insertNonWrapping paints [lb,ub] with color, strengthening adjacent
// points per spec.md §4.5 steps 2-4: UNKNOWN is protected from being
// overwritten, and a color only overwrites a strictly-lower-severity one.
func insertNonWrapping(l List, lb, ub float64, color alerting.Region) List {
	if lb > ub {
		return l
	}
	l = ensureBreakpoint(l, lb)
	l = ensureBreakpoint(l, ub)
	cs := severity(color)
	for i := range l {
		v := l[i].Value
		if v > lb && v <= ub && l[i].Left != alerting.RegionUnknown && cs > severity(l[i].Left) {
			l[i].Left = color
		}
		if v >= lb && v < ub && l[i].Right != alerting.RegionUnknown && cs > severity(l[i].Right) {
			l[i].Right = color
		}
	}
	return l
}

// wrapMod wraps a into [0,mod), the general form of math.NormalizeAngle
// for an arbitrary modulus rather than a fixed 2π.
func wrapMod(a, mod float64) float64 {
	a = math.Mod(a, mod)
	if a < 0 {
		a += mod
	}
	return a
}

// Insert paints [lb,ub] with interiorColor. mod>0 means a modular axis:
// lb/ub are normalized into [0,mod) and a wrapping interval ([lb,mod) ∪
// [0,ub], when lb>ub after normalization) is painted as two non-wrapping
// inserts (spec.md §4.5 step 5).
func Insert(l List, lb, ub, mod float64, color alerting.Region) List {
	if mod <= 0 {
		return insertNonWrapping(l, lb, ub, color)
	}
	lb, ub = wrapMod(lb, mod), wrapMod(ub, mod)
	if lb <= ub {
		return insertNonWrapping(l, lb, ub, color)
	}
	l = insertNonWrapping(l, lb, mod, color)
	return insertNonWrapping(l, 0, ub, color)
}
