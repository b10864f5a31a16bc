// wcv/conflict.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package wcv implements the separation-volume predicates of spec.md §4.2
// (component C2): given a relative aircraft state and a time window, each
// Detector reports whether — and when — the ownship and an intruder would
// lose separation under that detector's volume.
package wcv

import "daidalus/math"

// ConflictData is the result of a Detector's conflict_detection call
// (spec.md §3). TIn/TOut are ±Inf when the relative trajectory never
// enters/leaves the volume within the query window; Conflict() is the
// single source of truth for "is this a loss of separation."
type ConflictData struct {
	TIn, TOut float64
	TCrit     float64
	DCrit     float64
	S         math.Vector3
	V         math.Vector3
}

// NoConflict is the well-formed empty result every Detector returns for
// invalid input or a genuinely conflict-free trajectory (spec.md §7: never
// panic, always a well-formed sentinel).
func NoConflict(s, v math.Vector3) ConflictData {
	return ConflictData{
		TIn:   math.Infinity,
		TOut:  math.NegInfinity,
		TCrit: 0,
		DCrit: math.Infinity,
		S:     s,
		V:     v,
	}
}

// Conflict reports whether this ConflictData represents a loss of
// separation: spec.md §3's "conflict ⇔ t_in ≤ t_out".
func (c ConflictData) Conflict() bool {
	return c.TIn <= c.TOut
}
