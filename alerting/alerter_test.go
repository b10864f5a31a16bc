// alerting/alerter_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package alerting

import (
	"testing"

	"daidalus/math"
)

func TestAlertLevelForRegionSentinel(t *testing.T) {
	a := NewPhaseIAlerter()
	if lvl := a.AlertLevelForRegion(RegionMid); lvl != 2 {
		t.Errorf("expected MID at level 2, got %d", lvl)
	}
	if lvl := a.AlertLevelForRegion(RegionRecovery); lvl != -1 {
		t.Errorf("expected -1 for an unconfigured region, got %d", lvl)
	}
}

func TestAlertLevelHeadOnReturnsWarning(t *testing.T) {
	a := NewPhaseIAlerter()
	s := math.Vector3{18520, 0, 0} // 10 nmi
	vo := math.Vector3{250, 0, 0}
	vi := math.Vector3{-250, 0, 0}
	lvl := a.AlertLevel(s, vo, vi, 120)
	if lvl != 3 {
		t.Errorf("expected head-on closure to reach the level-3 warning, got %d", lvl)
	}
}

func TestAlertLevelDivergingReturnsZero(t *testing.T) {
	a := NewPhaseIAlerter()
	s := math.Vector3{50000, 0, 0}
	vo := math.Vector3{-250, 0, 0}
	vi := math.Vector3{250, 0, 0}
	lvl := a.AlertLevel(s, vo, vi, 120)
	if lvl != 0 {
		t.Errorf("expected diverging traffic to produce no alert, got %d", lvl)
	}
}

// TestAlerterMonotonicity exercises spec.md §8's alerter monotonicity
// invariant across a range of closing geometries.
func TestAlerterMonotonicity(t *testing.T) {
	a := NewPhaseIAlerter()
	for _, dist := range []float64{2000, 4000, 8000, 15000, 30000} {
		s := math.Vector3{dist, 0, 0}
		vo := math.Vector3{200, 0, 0}
		vi := math.Vector3{-200, 0, 0}
		if !a.MonotoneAt(s, vo, vi, 120) {
			t.Errorf("monotonicity violated at distance %v", dist)
		}
	}
}

func TestAlerterCopyIsIndependent(t *testing.T) {
	a := NewPhaseIAlerter()
	cp := a.Copy()
	lvl, _ := cp.GetLevel(1)
	lvl.Detector.SetIdentifier("mutated")
	orig, _ := a.GetLevel(1)
	if orig.Detector.Identifier() == "mutated" {
		t.Errorf("copy should not alias the original alerter's detectors")
	}
}
