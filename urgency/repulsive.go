// urgency/repulsive.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package urgency

import (
	"daidalus/math"
	"daidalus/traffic"
)

// Repulsive checks whether a candidate maneuver keeps the coordination
// criterion against the MUA on the commanded side across three evenly
// spaced samples of the rollout window (spec.md §4.6): "a repulsive
// check, in 2-D, asserts that the rollout preserves the sign of the
// coordination criterion against the MUA's relative state across three
// consecutive control samples; the 3-D vertical check is analogous."
// relativeAt(t) gives the ownship-to-MUA relative position at time t
// under the candidate rollout; vo is the candidate horizontal velocity
// used to resolve the horizontal criterion's sign. A zero epsH/epsV
// means that axis isn't being coordinated and always passes.
func Repulsive(relativeAt func(t float64) math.Vector3, vo math.Vector3, mua *traffic.State, epsH, epsV int, window float64) bool {
	if epsH == 0 && epsV == 0 {
		return true
	}
	for i := 0; i < 3; i++ {
		t := window * float64(i) / 2
		s := relativeAt(t)
		if epsH != 0 {
			sh := math.Horizontal(s)
			vh := math.Horizontal(math.Sub3(mua.AirVelocity, vo))
			if math.Length2(vh) >= math.Epsilon {
				cross := sh[0]*vh[1] - sh[1]*vh[0]
				if sign := math.Sign(cross); sign != 0 && sign != float64(epsH) {
					return false
				}
			}
		}
		if epsV != 0 {
			if sign := math.Sign(s[2]); sign != 0 && sign != float64(epsV) {
				return false
			}
		}
	}
	return true
}
