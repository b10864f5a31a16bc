// bands/spread_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"testing"

	"daidalus/alerting"
	"daidalus/math"
	"daidalus/traffic"
	"daidalus/wcv"
)

// spreadTestParams builds an AxisParams for a head-on pair close enough
// (and a lookahead short enough) that no horizontal maneuver within the
// lookahead can move the pair's separation outside an oversized cylinder,
// so every rollout this package's *SpreadConflict functions can construct
// stays "in conflict" — the degenerate always-true case.
func spreadTestParams() AxisParams {
	own := traffic.NewState("own", traffic.RoleOwnship, math.Vector3{0, 0, 9000}, math.Vector3{250, 0, 0}, 0)
	intr := traffic.NewState("in", traffic.RoleIntruder, math.Vector3{300, 0, 9000}, math.Vector3{-250, 0, 0}, 0)
	return AxisParams{
		Ownship:       own,
		Intruders:     []*traffic.State{intr},
		Lookahead:     30,
		Instantaneous: true,
	}
}

func alwaysConflictLevel() alerting.AlertThresholds {
	return alerting.NewAlertThresholds(wcv.NewCYL(1e6, 1e6), 60, 60, alerting.RegionNear)
}

func neverConflictLevel() alerting.AlertThresholds {
	return alerting.NewAlertThresholds(wcv.NewCYL(1, 1), 60, 60, alerting.RegionNear)
}

// spreadTestParamsFar builds a pair separated far enough, with a small
// enough detector, that no rollout this package can construct ever
// reports a conflict — the degenerate always-false case.
func spreadTestParamsFar() AxisParams {
	own := traffic.NewState("own", traffic.RoleOwnship, math.Vector3{0, 0, 9000}, math.Vector3{250, 0, 0}, 0)
	intr := traffic.NewState("in", traffic.RoleIntruder, math.Vector3{1e7, 1e7, 9000}, math.Vector3{-250, -250, 0}, 0)
	return AxisParams{
		Ownship:       own,
		Intruders:     []*traffic.State{intr},
		Lookahead:     30,
		Instantaneous: true,
	}
}

func TestDirectionSpreadConflictTrapped(t *testing.T) {
	p := spreadTestParams()
	dp := DirectionParams{Step: math.Radians(5), TurnRate: math.Radians(3)}
	if !DirectionSpreadConflict(p, dp, alwaysConflictLevel(), math.Radians(30)) {
		t.Errorf("expected the entire heading spread to be trapped in conflict against an oversized cylinder")
	}
}

func TestDirectionSpreadConflictClear(t *testing.T) {
	p := spreadTestParamsFar()
	dp := DirectionParams{Step: math.Radians(5), TurnRate: math.Radians(3)}
	if DirectionSpreadConflict(p, dp, neverConflictLevel(), math.Radians(30)) {
		t.Errorf("expected no heading spread conflict against a far, tiny-threshold intruder")
	}
}

func TestSpeedSpreadConflictTrapped(t *testing.T) {
	p := spreadTestParams()
	sp := SpeedParams{Step: 5, Accel: 2, Min: 100, Max: 300}
	if !SpeedSpreadConflict(p, sp, alwaysConflictLevel(), 50) {
		t.Errorf("expected the entire speed spread to be trapped in conflict against an oversized cylinder")
	}
}

func TestSpeedSpreadConflictClear(t *testing.T) {
	p := spreadTestParamsFar()
	sp := SpeedParams{Step: 5, Accel: 2, Min: 100, Max: 300}
	if SpeedSpreadConflict(p, sp, neverConflictLevel(), 50) {
		t.Errorf("expected no speed spread conflict against a far, tiny-threshold intruder")
	}
}

func TestVSpeedSpreadConflictTrapped(t *testing.T) {
	p := spreadTestParams()
	vp := VSpeedParams{Step: 1, Accel: 1, Min: -20, Max: 20}
	if !VSpeedSpreadConflict(p, vp, alwaysConflictLevel(), 10) {
		t.Errorf("expected the entire vertical-speed spread to be trapped in conflict against an oversized cylinder")
	}
}

func TestVSpeedSpreadConflictClear(t *testing.T) {
	p := spreadTestParamsFar()
	vp := VSpeedParams{Step: 1, Accel: 1, Min: -20, Max: 20}
	if VSpeedSpreadConflict(p, vp, neverConflictLevel(), 10) {
		t.Errorf("expected no vertical-speed spread conflict against a far, tiny-threshold intruder")
	}
}

func TestAltitudeSpreadConflictTrapped(t *testing.T) {
	p := spreadTestParams()
	ap := AltitudeParams{Step: 50, VS: 5, Accel: 1, Min: 8000, Max: 10000}
	if !AltitudeSpreadConflict(p, ap, alwaysConflictLevel(), 200) {
		t.Errorf("expected the entire altitude spread to be trapped in conflict against an oversized cylinder")
	}
}

func TestAltitudeSpreadConflictClear(t *testing.T) {
	p := spreadTestParamsFar()
	ap := AltitudeParams{Step: 50, VS: 5, Accel: 1, Min: 8000, Max: 10000}
	if AltitudeSpreadConflict(p, ap, neverConflictLevel(), 200) {
		t.Errorf("expected no altitude spread conflict against a far, tiny-threshold intruder")
	}
}

func TestSpreadConflictWithNoDetectorIsFalse(t *testing.T) {
	p := spreadTestParams()
	level := alerting.NewAlertThresholds(nil, 60, 60, alerting.RegionNear)
	if spreadConflict(p, level, 5, func(k, dir int) Profile { return holdProfile(math.Vector3{}, p.Lookahead) }) {
		t.Errorf("a level with no detector should never report a spread conflict")
	}
}
