// bands/rollout.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"daidalus/math"
	"daidalus/wcv"
)

// Phase is one piecewise-constant-velocity leg of a candidate-maneuver
// rollout (spec.md §4.6's "kinematic" mode, and §9's shared trajectory
// signature). Velocity is the ownship's own velocity during the leg;
// Duration is how long the leg lasts.
type Phase struct {
	Duration float64
	Velocity math.Vector3
}

// Profile is a full rollout: a sequence of Phases whose durations sum to
// at least the query's lookahead (trailing phases beyond the lookahead
// are never evaluated).
type Profile []Phase

// conflictOverProfile walks profile leg by leg, calling detector's
// ConflictDetection over each leg's local [0,duration] sub-window with
// the relative state carried forward from the previous leg (spec.md
// §4.6: "the algorithm samples loss-of-separation at every step up to
// each phase boundary and applies a continuous conflict test over each
// phase's sub-window"), clipping the walk at lookahead. u is the
// intruder's optional uncertainty, routed through wcv.ConflictDetectionFor
// so only WCV_TAUMOD_SUM actually consumes it.
func conflictOverProfile(detector wcv.Detector, s, vi math.Vector3, u *wcv.Uncertainty, profile Profile, lookahead float64) bool {
	remaining := lookahead
	for _, leg := range profile {
		if remaining <= 0 {
			break
		}
		d := leg.Duration
		if d > remaining {
			d = remaining
		}
		cd := wcv.ConflictDetectionFor(detector, s, leg.Velocity, vi, 0, d, u)
		if cd.Conflict() {
			return true
		}
		s = math.Add3(s, math.Scale3(math.Sub3(vi, leg.Velocity), d))
		remaining -= d
	}
	return false
}

// relativeAtProfile returns the relative position at time t along
// profile, for the repulsive check (urgency.Repulsive), which needs the
// ownship-to-MUA relative state at intermediate points of a candidate
// rollout, not just whether it conflicts.
func relativeAtProfile(profile Profile, s, vi math.Vector3, t float64) math.Vector3 {
	remaining := t
	for _, leg := range profile {
		if remaining <= 0 {
			break
		}
		d := leg.Duration
		if d > remaining {
			d = remaining
		}
		s = math.Add3(s, math.Scale3(math.Sub3(vi, leg.Velocity), d))
		remaining -= d
	}
	return s
}

// rampSteps is how finely a kinematic ramp (turn, acceleration, or
// altitude level-off) is discretized into constant-velocity legs. The
// teacher's nav package integrates these ramps frame-by-frame at
// simulation rate; a bands scan can't afford that here; an 8-way
// piecewise-linear approximation is a good tradeoff of cost versus
// fidelity to the continuous-rate profile it approximates.
const rampSteps = 8

// holdProfile is the degenerate single-leg profile used by every axis's
// "instantaneous" rollout mode (spec.md §4.6): the candidate velocity
// applies at t=0 and holds for the rest of the lookahead.
func holdProfile(v math.Vector3, lookahead float64) Profile {
	return Profile{{Duration: lookahead, Velocity: v}}
}

// linearRampProfile ramps a scalar rate from rate0 to rateTarget at the
// given (unsigned) acceleration magnitude, then holds at rateTarget for
// the remaining lookahead. toVelocity maps a rate sample to the full 3-D
// ownship velocity (e.g. scaling along the current heading for a speed
// axis, or setting the vertical component for a vertical-speed axis).
// Grounded on nav/alt.go's climb/descent rate-transition shape and
// nav/lateral.go's turn-rate rollout shape, simplified from their
// per-frame, atmosphere/performance-dependent fades to a plain constant-
// acceleration ramp: a bands scanner needs a tractable piecewise-linear
// approximation of "how fast can this aircraft change its state," not a
// full flight-dynamics model.
func linearRampProfile(rate0, rateTarget, accel float64, toVelocity func(rate float64) math.Vector3, lookahead float64) Profile {
	if math.AlmostEquals(rate0, rateTarget) || accel <= 0 {
		return holdProfile(toVelocity(rateTarget), lookahead)
	}
	rampDuration := math.Abs(rateTarget-rate0) / accel
	if rampDuration > lookahead {
		rampDuration = lookahead
	}
	profile := make(Profile, 0, rampSteps+1)
	legDuration := rampDuration / rampSteps
	for i := 0; i < rampSteps; i++ {
		frac := (float64(i) + 0.5) / rampSteps
		rate := math.Lerp(frac, rate0, rateTarget)
		profile = append(profile, Phase{Duration: legDuration, Velocity: toVelocity(rate)})
	}
	if remaining := lookahead - rampDuration; remaining > 0 {
		profile = append(profile, Phase{Duration: remaining, Velocity: toVelocity(rateTarget)})
	}
	return profile
}

// turnProfile ramps heading linearly at turnRate (rad/s, unsigned) from
// heading0 toward headingTarget (the shorter way around), holding speed
// and vz constant, then holds the target heading for the rest of the
// lookahead — the direction axis's kinematic rollout (spec.md §4.7),
// grounded on nav/lateral.go's constant-turn-rate-until-target shape.
func turnProfile(heading0, headingTarget, turnRate, speed, vz, lookahead float64) Profile {
	toVelocity := func(h float64) math.Vector3 {
		return math.Vector3{speed * math.Sin(h), speed * math.Cos(h), vz}
	}
	delta := math.NormalizeAngle(headingTarget - heading0)
	if delta > math.Pi {
		delta -= math.TwoPi
	}
	if turnRate <= 0 || math.AlmostEquals(delta, 0) {
		return holdProfile(toVelocity(headingTarget), lookahead)
	}
	rampDuration := math.Abs(delta) / turnRate
	if rampDuration > lookahead {
		rampDuration = lookahead
	}
	profile := make(Profile, 0, rampSteps+1)
	legDuration := rampDuration / rampSteps
	for i := 0; i < rampSteps; i++ {
		frac := (float64(i) + 0.5) / rampSteps
		h := heading0 + frac*delta
		profile = append(profile, Phase{Duration: legDuration, Velocity: toVelocity(h)})
	}
	if remaining := lookahead - rampDuration; remaining > 0 {
		profile = append(profile, Phase{Duration: remaining, Velocity: toVelocity(headingTarget)})
	}
	return profile
}

// levelOffProfile is the vs-level-off altitude rollout (spec.md §4.7):
// accelerate to vsTarget, cruise at vsTarget, decelerate back to vz=0
// exactly as deltaZ is consumed — a trapezoidal rate profile, or
// triangular (no cruise leg) when deltaZ is too small to reach
// vsTarget. baseVelocity supplies the horizontal component, which the
// altitude axis holds constant.
func levelOffProfile(deltaZ, vsTarget, accel float64, baseVelocity math.Vector3, lookahead float64) Profile {
	toVelocity := func(vz float64) math.Vector3 {
		return math.Vector3{baseVelocity[0], baseVelocity[1], vz}
	}
	if math.AlmostEquals(deltaZ, 0) || accel <= 0 || vsTarget == 0 {
		return holdProfile(toVelocity(0), lookahead)
	}
	sign := math.Sign(deltaZ)
	vs := sign * math.Abs(vsTarget)
	accelDuration := math.Abs(vs) / accel
	distancePerRamp := 0.5 * accel * accelDuration * accelDuration // one ramp leg's |distance|
	var cruiseDuration float64
	if 2*distancePerRamp > math.Abs(deltaZ) {
		// Triangular profile: never reaches vsTarget.
		accelDuration = math.Sqrt(math.Abs(deltaZ) / accel)
		vs = sign * accel * accelDuration
		cruiseDuration = 0
	} else {
		cruiseDuration = (math.Abs(deltaZ) - 2*distancePerRamp) / math.Abs(vs)
	}

	profile := make(Profile, 0, 2*rampSteps+2)
	legDuration := accelDuration / rampSteps
	for i := 0; i < rampSteps; i++ {
		frac := (float64(i) + 0.5) / rampSteps
		profile = append(profile, Phase{Duration: legDuration, Velocity: toVelocity(frac * vs)})
	}
	if cruiseDuration > 0 {
		profile = append(profile, Phase{Duration: cruiseDuration, Velocity: toVelocity(vs)})
	}
	for i := 0; i < rampSteps; i++ {
		frac := (float64(i) + 0.5) / rampSteps
		profile = append(profile, Phase{Duration: legDuration, Velocity: toVelocity(vs * (1 - frac))})
	}
	profile = append(profile, Phase{Duration: lookahead, Velocity: toVelocity(0)})
	return profile
}
