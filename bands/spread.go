// bands/spread.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"daidalus/alerting"
	"daidalus/math"
	"daidalus/wcv"
)

// conflictHorizon mirrors the window spec.md §4.3 gives the plain
// conflict_detection alert test — [0, min(lookahead, alerting_time)],
// with alerting_time==0 meaning "right now" — so the maneuver-spread test
// below evaluates over the same window as the test it's OR'd against.
func conflictHorizon(lookahead, alertingTime float64) float64 {
	horizon := alertingTime
	if lookahead < horizon {
		horizon = lookahead
	}
	return horizon
}

// allConflict reports whether every maneuvered step from 1 to maxSteps-1
// in direction dir is in conflict, under detector, with at least one of
// p's intruders over [0,horizon]. Step 0 (standing pat) is deliberately
// excluded: it's already what the plain conflict_detection half of the
// alert test covers, so folding it in here would make this test a strict
// subset of that one rather than the distinct "maneuvering doesn't help
// either" condition spec.md §4.3 describes.
func allConflict(p AxisParams, detector wcv.Detector, horizon float64, maxSteps, dir int, rollout profileAt) bool {
	if maxSteps < 2 {
		return false
	}
	for k := 1; k < maxSteps; k++ {
		profile := rollout(k, dir)
		trapped := false
		for _, in := range p.Intruders {
			s := p.Ownship.RelativePosition(in)
			if conflictOverProfile(detector, s, in.AirVelocity, in.Uncertainty.WCV(), profile, horizon) {
				trapped = true
				break
			}
		}
		if !trapped {
			return false
		}
	}
	return true
}

// spreadConflict asks whether the entire reachable spread — n steps of
// rollout in both directions — is trapped in conflict under level, the
// "is the entire reachable spread in conflict" half of spec.md §4.3's
// alert-level decision. Both directions must be entirely trapped: the
// spread is symmetric around the current value (spec.md §3's Spread), and
// "entire reachable spread" means the whole interval, not just one side
// of it.
func spreadConflict(p AxisParams, level alerting.AlertThresholds, n int, rollout profileAt) bool {
	if level.Detector == nil {
		return false
	}
	horizon := conflictHorizon(p.Lookahead, level.AlertingTime)
	return allConflict(p, level.Detector, horizon, n, 1, rollout) &&
		allConflict(p, level.Detector, horizon, n, -1, rollout)
}

// DirectionSpreadConflict tests spec.md §4.3's maneuver-spread condition
// on the direction axis: is every heading within halfWidth of the
// ownship's current heading trapped in conflict over level's window? The
// rollout mirrors Direction's own (spec.md §4.7).
func DirectionSpreadConflict(p AxisParams, dp DirectionParams, level alerting.AlertThresholds, halfWidth float64) bool {
	speed := math.Length2(math.Horizontal(p.Ownship.AirVelocity))
	vz := p.Ownship.AirVelocity[2]
	own := heading(p.Ownship.AirVelocity)

	rollout := func(k, dir int) Profile {
		target := math.NormalizeAngle(own + float64(dir)*float64(k)*dp.Step)
		if p.Instantaneous {
			return holdProfile(math.Vector3{speed * math.Sin(target), speed * math.Cos(target), vz}, p.Lookahead)
		}
		return turnProfile(own, target, dp.TurnRate, speed, vz, p.Lookahead)
	}
	return spreadConflict(p, level, int(halfWidth/dp.Step)+1, rollout)
}

// SpeedSpreadConflict tests the maneuver-spread condition on the
// horizontal-speed axis, mirroring Speed's own rollout (spec.md §4.7).
func SpeedSpreadConflict(p AxisParams, sp SpeedParams, level alerting.AlertThresholds, halfWidth float64) bool {
	v := p.Ownship.AirVelocity
	h := math.Horizontal(v)
	own := math.Length2(h)
	dir2 := math.Normalize2(h)
	vz := v[2]

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
	return spreadConflict(p, level, int(halfWidth/sp.Step)+1, rollout)
}

// VSpeedSpreadConflict tests the maneuver-spread condition on the
// vertical-speed axis, mirroring VSpeed's own rollout (spec.md §4.7).
func VSpeedSpreadConflict(p AxisParams, vp VSpeedParams, level alerting.AlertThresholds, halfWidth float64) bool {
	v := p.Ownship.AirVelocity
	own := v[2]
	h := math.Horizontal(v)

	rollout := func(k, dir int) Profile {
		target := math.Clamp(own+float64(dir)*float64(k)*vp.Step, vp.Min, vp.Max)
		toVelocity := func(vz float64) math.Vector3 { return math.Vector3{h[0], h[1], vz} }
		if p.Instantaneous {
			return holdProfile(toVelocity(target), p.Lookahead)
		}
		return linearRampProfile(own, target, vp.Accel, toVelocity, p.Lookahead)
	}
	return spreadConflict(p, level, int(halfWidth/vp.Step)+1, rollout)
}

// AltitudeSpreadConflict tests the maneuver-spread condition on the
// altitude axis, mirroring Altitude's own rollout including its
// instantaneous warp-leg treatment of a position-valued axis (spec.md
// §4.7).
func AltitudeSpreadConflict(p AxisParams, ap AltitudeParams, level alerting.AlertThresholds, halfWidth float64) bool {
	v := p.Ownship.AirVelocity
	own := p.Ownship.Position[2]
	h := math.Horizontal(v)
	baseVelocity := math.Vector3{h[0], h[1], 0}

	rollout := func(k, dir int) Profile {
		target := math.Clamp(own+float64(dir)*float64(k)*ap.Step, ap.Min, ap.Max)
		delta := target - own
		if p.Instantaneous {
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
	return spreadConflict(p, level, int(halfWidth/ap.Step)+1, rollout)
}
