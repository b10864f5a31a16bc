// bands/altitude.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"daidalus/alerting"
	"daidalus/math"
)

// AltitudeParams is the altitude axis's parameters (spec.md §4.7's
// Altitude row): a candidate target altitude is reached via a
// vs-level-off profile at VS, accelerating/decelerating at Accel.
type AltitudeParams struct {
	Step     float64 // alt_step, meters
	VS       float64 // target vertical speed magnitude, m/s
	Accel    float64 // m/s^2
	Min, Max float64 // meters
}

// Altitude computes the altitude axis's colored bands: own_val is z,
// stepped out to [ap.Min,ap.Max]. The instantaneous rollout treats the
// target altitude as reached immediately (a momentary vertical jump,
// matching spec.md §4.6's "apply the full axis change at t=0; velocity
// changes, position unchanged" read onto a position-valued axis: the
// relative-position offset is folded directly into s rather than into
// a velocity leg); the kinematic rollout uses the four-phase vs-level-
// off profile (§4.7).
func Altitude(p AxisParams, ap AltitudeParams) List {
	v := p.Ownship.AirVelocity
	own := p.Ownship.Position[2]
	h := math.Horizontal(v)
	baseVelocity := math.Vector3{h[0], h[1], 0}

	maxRight := int((ap.Max-own)/ap.Step) + 1
	maxLeft := int((own-ap.Min)/ap.Step) + 1

	rollout := func(k, dir int) Profile {
		target := math.Clamp(own+float64(dir)*float64(k)*ap.Step, ap.Min, ap.Max)
		delta := target - own
		if p.Instantaneous {
			// An instant altitude jump has no velocity component; it
			// shows up as a one-time vertical offset to the relative
			// position instead, applied as a zero-duration "warp" leg
			// represented by an infinite-rate impulse collapsed into the
			// first sample: a vanishingly short high-rate leg that moves
			// z by delta, then levels off.
			const warp = 1e-6
			var vz float64
			if warp > 0 {
				vz = delta / warp
			}
			profile := Profile{{Duration: warp, Velocity: math.Vector3{baseVelocity[0], baseVelocity[1], vz}}}
			if remaining := p.Lookahead - warp; remaining > 0 {
				profile = append(profile, Phase{Duration: remaining, Velocity: baseVelocity})
			}
			return profile
		}
		return levelOffProfile(delta, ap.VS, ap.Accel, baseVelocity, p.Lookahead)
	}

	base := NewFlat(ap.Min, ap.Max, alerting.RegionNone)
	return paintLevels(p, base, own, ap.Step, 0, maxLeft, maxRight, rollout)
}
