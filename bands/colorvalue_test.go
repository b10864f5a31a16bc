// bands/colorvalue_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"testing"

	"daidalus/alerting"
)

func TestNewFlatHasUnknownMargins(t *testing.T) {
	l := NewFlat(0, 100, alerting.RegionNone)
	if l[0].Left != alerting.RegionUnknown || l[len(l)-1].Right != alerting.RegionUnknown {
		t.Errorf("flat init should bound the domain with UNKNOWN, got %+v", l)
	}
}

func TestInsertStrengthensInterior(t *testing.T) {
	l := NewFlat(0, 100, alerting.RegionNone)
	l = Insert(l, 20, 40, 0, alerting.RegionNear)
	ranges := MakeRangesFromColorValues(l, false)
	found := false
	for _, r := range ranges {
		if r.Region == alerting.RegionNear && r.Interval.Low == 20 && r.Interval.High == 40 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a NEAR range [20,40], got %+v", ranges)
	}
}

func TestInsertNeverOverwritesUnknown(t *testing.T) {
	l := List{
		{Left: alerting.RegionUnknown, Right: alerting.RegionUnknown, Value: 0},
		{Left: alerting.RegionUnknown, Right: alerting.RegionUnknown, Value: 100},
	}
	l = Insert(l, 10, 20, 0, alerting.RegionNear)
	for _, cv := range l {
		if cv.Left == alerting.RegionNear || cv.Right == alerting.RegionNear {
			t.Errorf("UNKNOWN should never be overwritten, got %+v", l)
		}
	}
}

func TestInsertDoesNotWeaken(t *testing.T) {
	l := NewFlat(0, 100, alerting.RegionNone)
	l = Insert(l, 10, 50, 0, alerting.RegionNear)
	l = Insert(l, 20, 30, 0, alerting.RegionFar) // weaker than NEAR; should not downgrade
	ranges := MakeRangesFromColorValues(l, false)
	for _, r := range ranges {
		if r.Interval.Low >= 20 && r.Interval.High <= 30 && r.Region != alerting.RegionNear {
			t.Errorf("a weaker color should never overwrite a stronger one, got %+v", ranges)
		}
	}
}

func TestModularWrapAroundInsert(t *testing.T) {
	l := NewFlat(0, 360, alerting.RegionNone)
	l = Insert(l, 350, 10, 360, alerting.RegionNear)
	ranges := MakeRangesFromColorValues(l, false)
	var total float64
	for _, r := range ranges {
		if r.Region == alerting.RegionNear {
			total += r.Interval.High - r.Interval.Low
		}
	}
	if total < 19.9 || total > 20.1 {
		t.Errorf("expected ~20 degrees of NEAR coverage across the wrap, got %v total across %+v", total, ranges)
	}
}

func TestRecoveryRelabelsNoneToRecovery(t *testing.T) {
	l := NewFlat(0, 100, alerting.RegionNone)
	ranges := MakeRangesFromColorValues(l, true)
	if len(ranges) == 0 || ranges[0].Region != alerting.RegionRecovery {
		t.Errorf("expected NONE relabeled to RECOVERY, got %+v", ranges)
	}
}
