// traffic/wind.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traffic

import "daidalus/math"

// ApplyWind corrects a State's AirVelocity from its GroundVelocity and the
// current wind estimate, grounded on the teacher's flight-vector/wind
// composition in nav/lateral.go ("GS = flightVector + windVector" in the
// ground frame): ground velocity is the air velocity plus wind, so the
// air velocity recovered from a known ground track is the difference.
func (s *State) ApplyWind(wind math.Vector3) {
	s.AirVelocity = math.Sub3(s.GroundVelocity, wind)
}

// ApplyWindToAll re-derives AirVelocity for every state in states from the
// same wind estimate — the orchestrator's set_wind_velocity operation
// (spec.md §4.9: "re-apply to all aircraft").
func ApplyWindToAll(states []*State, wind math.Vector3) {
	for _, s := range states {
		s.ApplyWind(wind)
	}
}
