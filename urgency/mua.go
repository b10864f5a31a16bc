// urgency/mua.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package urgency picks the single "criteria aircraft" recovery bands
// coordinate against, and derives the horizontal/vertical coordination
// signs the repulsive criterion inside the bands scanner consults
// (spec.md §4.4, component C5).
package urgency

import (
	"daidalus/math"
	"daidalus/traffic"
)

// Precision5 is the near-tie tolerance spec.md §4.4 names for the DCPA
// strategy's dcpa comparison.
const Precision5 = 1e-5

// Strategy picks the most-urgent-aircraft index into an intruder slice,
// or -1 if none applies.
type Strategy interface {
	MostUrgentAircraft(own *traffic.State, intruders []*traffic.State) int
}

// NoneStrategy never picks a criteria aircraft; recovery-bands repulsive
// checks are skipped whenever it's configured (spec.md §4.4).
type NoneStrategy struct{}

func (NoneStrategy) MostUrgentAircraft(_ *traffic.State, _ []*traffic.State) int { return -1 }

// FixedStrategy always names the same intruder id, regardless of state.
type FixedStrategy struct {
	Id string
}

func (f FixedStrategy) MostUrgentAircraft(_ *traffic.State, intruders []*traffic.State) int {
	for i, intr := range intruders {
		if intr.Id == f.Id {
			return i
		}
	}
	return -1
}

// DCPAStrategy picks the intruder with the smallest cylinder-normalized
// distance at closest approach (dcpa), tie-broken by smallest time to
// closest approach (tcpa); when already inside the minimum recovery
// cylinder (dcpa<=1) the ordering flips to tcpa-dominant, since once
// you're this close *when* you'll be closest matters more than how close
// (spec.md §4.4).
type DCPAStrategy struct {
	CorrectiveD, CorrectiveH float64
}

type dcpaCandidate struct {
	index      int
	dcpa, tcpa float64
}

func (d DCPAStrategy) candidate(own, intr *traffic.State) dcpaCandidate {
	s := own.RelativePosition(intr)
	v := math.Sub3(intr.AirVelocity, own.AirVelocity)
	tcpa := math.Clamp(math.CPATime3(s, v), 0, math.Infinity)
	dcpa := math.NormCyl(math.Add3(s, math.Scale3(v, tcpa)), d.CorrectiveD, d.CorrectiveH)
	return dcpaCandidate{dcpa: dcpa, tcpa: tcpa}
}

// moreUrgent reports whether a is strictly more urgent than b.
func moreUrgent(a, b dcpaCandidate) bool {
	aIn, bIn := a.dcpa <= 1, b.dcpa <= 1
	if aIn || bIn {
		if !math.AlmostEqualsTol(a.tcpa, b.tcpa, Precision5) {
			return a.tcpa < b.tcpa
		}
		return a.dcpa < b.dcpa
	}
	if !math.AlmostEqualsTol(a.dcpa, b.dcpa, Precision5) {
		return a.dcpa < b.dcpa
	}
	return a.tcpa < b.tcpa
}

func (d DCPAStrategy) MostUrgentAircraft(own *traffic.State, intruders []*traffic.State) int {
	if len(intruders) == 0 {
		return -1
	}
	best := -1
	var bestC dcpaCandidate
	for i, intr := range intruders {
		c := d.candidate(own, intr)
		c.index = i
		if best < 0 || moreUrgent(c, bestC) {
			best, bestC = i, c
		}
	}
	return best
}
