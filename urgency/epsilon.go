// urgency/epsilon.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package urgency

import (
	"daidalus/math"
	"daidalus/traffic"
)

// EpsilonH derives the horizontal coordination sign from the ownship's
// relative state against the most-urgent aircraft (spec.md §4.4): +1/-1
// indicating which side of the MUA's relative velocity the ownship's
// relative position falls on (the sign of the 2-D cross product), 0 when
// the relative velocity is too small to define a side.
func EpsilonH(own, mua *traffic.State) int {
	s := math.Horizontal(own.RelativePosition(mua))
	v := math.Horizontal(math.Sub3(mua.AirVelocity, own.AirVelocity))
	if math.Length2(v) < math.Epsilon {
		return 0
	}
	cross := s[0]*v[1] - s[1]*v[0]
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// EpsilonV derives the vertical coordination sign: +1 if the MUA is above
// the ownship, -1 if below, 0 if co-altitude (spec.md §4.4).
func EpsilonV(own, mua *traffic.State) int {
	dz := mua.Position[2] - own.Position[2]
	switch {
	case dz > math.Epsilon:
		return 1
	case dz < -math.Epsilon:
		return -1
	default:
		return 0
	}
}

// Epsilons holds both coordination signs together, plus the MUA index
// they were derived from (-1 meaning no MUA, in which case both signs are
// 0 and repulsive checks are skipped — spec.md §4.4).
type Epsilons struct {
	MUAIndex int
	H, V     int
}

// Derive computes both epsilons from the given strategy's pick, or the
// zero Epsilons (MUAIndex -1, H=V=0) if the strategy names no MUA.
func Derive(strategy Strategy, own *traffic.State, intruders []*traffic.State) Epsilons {
	idx := strategy.MostUrgentAircraft(own, intruders)
	if idx < 0 || idx >= len(intruders) {
		return Epsilons{MUAIndex: -1}
	}
	mua := intruders[idx]
	return Epsilons{MUAIndex: idx, H: EpsilonH(own, mua), V: EpsilonV(own, mua)}
}
