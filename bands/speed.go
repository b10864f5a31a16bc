// bands/speed.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"daidalus/alerting"
	"daidalus/math"
)

// SpeedParams is the horizontal-speed axis's parameters (spec.md §4.7's
// Horizontal speed row).
type SpeedParams struct {
	Step     float64 // hs_step, m/s
	Accel    float64 // a_hs, m/s^2, used when !Instantaneous
	Min, Max float64 // m/s
}

// Speed computes the horizontal-speed axis's colored bands: own_val is
// ‖v_h‖, stepped out to [sp.Min,sp.Max], with the current heading held
// fixed and only the magnitude varied.
func Speed(p AxisParams, sp SpeedParams) List {
	v := p.Ownship.AirVelocity
	h := math.Horizontal(v)
	own := math.Length2(h)
	dir2 := math.Normalize2(h)
	vz := v[2]

	maxRight := int((sp.Max-own)/sp.Step) + 1
	maxLeft := int((own-sp.Min)/sp.Step) + 1

	rollout := func(k, dir int) Profile {
		target := math.Clamp(own+float64(dir)*float64(k)*sp.Step, sp.Min, sp.Max)
		toVelocity := func(speed float64) math.Vector3 {
			hv := math.Scale2(dir2, speed)
			return math.Vector3{hv[0], hv[1], vz}
		}
		if p.Instantaneous {
			return holdProfile(toVelocity(target), p.Lookahead)
		}
		return linearRampProfile(own, target, sp.Accel, toVelocity, p.Lookahead)
	}

	base := NewFlat(sp.Min, sp.Max, alerting.RegionNone)
	return paintLevels(p, base, own, sp.Step, 0, maxLeft, maxRight, rollout)
}
