// urgency/mua_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package urgency

import (
	"testing"

	"daidalus/math"
	"daidalus/traffic"
)

func TestNoneStrategyAlwaysNegativeOne(t *testing.T) {
	own := traffic.NewState("own", traffic.RoleOwnship, math.Vector3{}, math.Vector3{}, 0)
	intr := traffic.NewState("i1", traffic.RoleIntruder, math.Vector3{1000, 0, 0}, math.Vector3{}, 0)
	if idx := (NoneStrategy{}).MostUrgentAircraft(own, []*traffic.State{intr}); idx != -1 {
		t.Errorf("expected -1, got %d", idx)
	}
}

func TestFixedStrategyFindsMatchingId(t *testing.T) {
	own := traffic.NewState("own", traffic.RoleOwnship, math.Vector3{}, math.Vector3{}, 0)
	i1 := traffic.NewState("i1", traffic.RoleIntruder, math.Vector3{1000, 0, 0}, math.Vector3{}, 0)
	i2 := traffic.NewState("i2", traffic.RoleIntruder, math.Vector3{2000, 0, 0}, math.Vector3{}, 0)
	idx := FixedStrategy{Id: "i2"}.MostUrgentAircraft(own, []*traffic.State{i1, i2})
	if idx != 1 {
		t.Errorf("expected index 1 (i2), got %d", idx)
	}
}

func TestDCPAStrategyPrefersClosestApproach(t *testing.T) {
	strat := DCPAStrategy{CorrectiveD: 500, CorrectiveH: 150}
	own := traffic.NewState("own", traffic.RoleOwnship, math.Vector3{}, math.Vector3{100, 0, 0}, 0)
	closing := traffic.NewState("close", traffic.RoleIntruder, math.Vector3{2000, 0, 0}, math.Vector3{-100, 0, 0}, 0)
	far := traffic.NewState("far", traffic.RoleIntruder, math.Vector3{20000, 5000, 0}, math.Vector3{-50, 0, 0}, 0)
	idx := strat.MostUrgentAircraft(own, []*traffic.State{far, closing})
	if idx != 1 {
		t.Errorf("expected the head-on closing aircraft (index 1) to be most urgent, got %d", idx)
	}
}

func TestEpsilonVSignsMatchRelativeAltitude(t *testing.T) {
	own := traffic.NewState("own", traffic.RoleOwnship, math.Vector3{0, 0, 1000}, math.Vector3{}, 0)
	above := traffic.NewState("above", traffic.RoleIntruder, math.Vector3{0, 0, 1100}, math.Vector3{}, 0)
	below := traffic.NewState("below", traffic.RoleIntruder, math.Vector3{0, 0, 900}, math.Vector3{}, 0)
	if EpsilonV(own, above) != 1 {
		t.Errorf("expected +1 for an MUA above the ownship")
	}
	if EpsilonV(own, below) != -1 {
		t.Errorf("expected -1 for an MUA below the ownship")
	}
}

func TestDeriveReturnsZeroEpsilonsWithNoMUA(t *testing.T) {
	own := traffic.NewState("own", traffic.RoleOwnship, math.Vector3{}, math.Vector3{}, 0)
	e := Derive(NoneStrategy{}, own, nil)
	if e.MUAIndex != -1 || e.H != 0 || e.V != 0 {
		t.Errorf("expected zero epsilons with no MUA, got %+v", e)
	}
}
