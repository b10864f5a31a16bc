// bands/axis.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"daidalus/alerting"
	"daidalus/math"
	"daidalus/traffic"
	"daidalus/urgency"
)

// AxisParams bundles what every per-axis adapter (spec.md §4.7) needs
// from the orchestrator to run one bands computation: which alerter's
// levels to scan, the ownship and traffic to test against, the
// lookahead horizon, whether to use the instantaneous or kinematic
// rollout mode, and the coordination epsilons/MUA for the repulsive
// check (spec.md §4.6).
type AxisParams struct {
	Alerter       *alerting.Alerter
	Ownship       *traffic.State
	Intruders     []*traffic.State
	Lookahead     float64
	Instantaneous bool
	Epsilons      urgency.Epsilons
	MUA           *traffic.State
}

// profileAt builds the candidate rollout for step k (0 = the current
// value, counted by both the left and right scans) in direction dir.
type profileAt func(k, dir int) Profile

// scanSide runs one direction's Scan, banning step k when any intruder
// is in conflict under level's detector over the candidate rollout, or
// (when an MUA coordination epsilon is active) the rollout isn't
// repulsive toward it.
func scanSide(p AxisParams, level alerting.AlertThresholds, dir int, maxSteps int, rollout profileAt) ScanResult {
	horizon := p.Lookahead
	if level.AlertingTime > 0 && level.AlertingTime < horizon {
		horizon = level.AlertingTime
	}
	banned := func(k int) bool {
		profile := rollout(k, dir)
		for _, in := range p.Intruders {
			s := p.Ownship.RelativePosition(in)
			if conflictOverProfile(level.Detector, s, in.AirVelocity, in.Uncertainty.WCV(), profile, horizon) {
				return true
			}
		}
		if p.MUA != nil && p.Epsilons.MUAIndex >= 0 && (p.Epsilons.H != 0 || p.Epsilons.V != 0) {
			s0 := p.Ownship.RelativePosition(p.MUA)
			vo := profile[len(profile)-1].Velocity
			relativeAt := func(t float64) math.Vector3 {
				return relativeAtProfile(profile, s0, p.MUA.AirVelocity, t)
			}
			if !urgency.Repulsive(relativeAt, vo, p.MUA, p.Epsilons.H, p.Epsilons.V, horizon) {
				return true
			}
		}
		return false
	}
	return Scan(maxSteps, banned)
}

// scanLevel runs both directions for one level and returns the banned
// (non-free) step ranges in combined signed-step coordinates, ready to
// paint with level.Region.
func scanLevel(p AxisParams, level alerting.AlertThresholds, maxLeft, maxRight int, rollout profileAt) []Integerval {
	right := scanSide(p, level, 1, maxRight, rollout)
	left := scanSide(p, level, -1, maxLeft, rollout)
	combined := CombineLeftRight(left.Free, right.Free)
	lb, ub := 0, 0
	if maxLeft > 0 {
		lb = -(maxLeft - 1)
	}
	if maxRight > 0 {
		ub = maxRight - 1
	}
	return Complement(combined, lb, ub)
}

// paintLevels runs scanLevel for every one of alerter's levels (least to
// most severe, so Insert's strengthen-only rule lets the more severe
// overwrite) and paints the results into base, converting signed step
// indices back to real axis values via ownVal+k*step.
func paintLevels(p AxisParams, base List, ownVal, step, mod float64, maxLeft, maxRight int, rollout profileAt) List {
	for i := 1; i <= p.Alerter.NumLevels(); i++ {
		level, ok := p.Alerter.GetLevel(i)
		if !ok || level.Detector == nil {
			continue
		}
		for _, gap := range scanLevel(p, level, maxLeft, maxRight, rollout) {
			lo := ownVal + float64(gap.Lb)*step
			hi := ownVal + float64(gap.Ub)*step
			base = Insert(base, lo, hi, mod, level.Region)
		}
	}
	return base
}
