// bands/vspeed.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"daidalus/alerting"
	"daidalus/math"
)

// VSpeedParams is the vertical-speed axis's parameters (spec.md §4.7's
// Vertical speed row).
type VSpeedParams struct {
	Step     float64 // vs_step, m/s
	Accel    float64 // a_vs, m/s^2, used when !Instantaneous
	Min, Max float64 // m/s
}

// VSpeed computes the vertical-speed axis's colored bands: own_val is
// v_z, stepped out to [vp.Min,vp.Max], with the horizontal velocity held
// fixed.
func VSpeed(p AxisParams, vp VSpeedParams) List {
	v := p.Ownship.AirVelocity
	own := v[2]
	h := math.Horizontal(v)

	maxRight := int((vp.Max-own)/vp.Step) + 1
	maxLeft := int((own-vp.Min)/vp.Step) + 1

	rollout := func(k, dir int) Profile {
		target := math.Clamp(own+float64(dir)*float64(k)*vp.Step, vp.Min, vp.Max)
		toVelocity := func(vz float64) math.Vector3 { return math.Vector3{h[0], h[1], vz} }
		if p.Instantaneous {
			return holdProfile(toVelocity(target), p.Lookahead)
		}
		return linearRampProfile(own, target, vp.Accel, toVelocity, p.Lookahead)
	}

	base := NewFlat(vp.Min, vp.Max, alerting.RegionNone)
	return paintLevels(p, base, own, vp.Step, 0, maxLeft, maxRight, rollout)
}
