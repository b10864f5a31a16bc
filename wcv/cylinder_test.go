// wcv/cylinder_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wcv

import (
	"testing"

	"daidalus/math"
)

func TestCYLHeadOnViolationNow(t *testing.T) {
	c := NewCYL(500, 150)
	s := math.Vector3{0, 0, 0}
	vo := math.Vector3{0, 0, 0}
	vi := math.Vector3{0, 0, 0}
	if !c.Violation(s, vo, vi) {
		t.Fatalf("coincident aircraft should violate")
	}
}

func TestCYLDivergingNoConflict(t *testing.T) {
	c := NewCYL(500, 150)
	s := math.Vector3{2000, 0, 0}
	vo := math.Vector3{-50, 0, 0}
	vi := math.Vector3{50, 0, 0}
	cd := c.ConflictDetection(s, vo, vi, 0, 600)
	if cd.Conflict() {
		t.Fatalf("diverging aircraft outside the cylinder should not conflict, got %+v", cd)
	}
}

func TestCYLClosingEntersWindow(t *testing.T) {
	c := NewCYL(500, 150)
	s := math.Vector3{4000, 0, 0}
	vo := math.Vector3{100, 0, 0}
	vi := math.Vector3{-100, 0, 0}
	cd := c.ConflictDetection(s, vo, vi, 0, 60)
	if !cd.Conflict() {
		t.Fatalf("closing aircraft should eventually conflict, got %+v", cd)
	}
	if cd.TIn < 0 || cd.TOut > 60 {
		t.Errorf("window not clamped to [0,60]: %+v", cd)
	}
}

// TestCYLContainsInvariant checks spec.md §8 item 3: if A contains B, then
// for every (s,v,window), B in conflict implies A in conflict.
func TestCYLContainsInvariant(t *testing.T) {
	a := NewCYL(1000, 300)
	b := NewCYL(500, 150)
	if !a.Contains(b) {
		t.Fatalf("larger cylinder should contain the smaller one")
	}

	cases := []struct {
		s      math.Vector3
		vo, vi math.Vector3
	}{
		{math.Vector3{4000, 0, 0}, math.Vector3{100, 0, 0}, math.Vector3{-100, 0, 0}},
		{math.Vector3{800, 0, 50}, math.Vector3{0, 0, 0}, math.Vector3{-20, 0, -2}},
		{math.Vector3{100, 50, 10}, math.Vector3{10, 10, 0}, math.Vector3{-10, -10, 0}},
	}
	for _, c := range cases {
		bcd := b.ConflictDetection(c.s, c.vo, c.vi, 0, 600)
		if bcd.Conflict() {
			acd := a.ConflictDetection(c.s, c.vo, c.vi, 0, 600)
			if !acd.Conflict() {
				t.Errorf("B conflicted but containing A did not for %+v", c)
			}
		}
	}
}

// TestCYLWindowClampInvariant checks spec.md §8 item 4: the returned
// interval is always within [b,t] when a conflict is reported.
func TestCYLWindowClampInvariant(t *testing.T) {
	c := NewCYL(500, 150)
	s := math.Vector3{4000, 0, 0}
	vo := math.Vector3{100, 0, 0}
	vi := math.Vector3{-100, 0, 0}
	b, tmax := 5.0, 40.0
	cd := c.ConflictDetection(s, vo, vi, b, tmax)
	if cd.Conflict() {
		if cd.TIn < b-math.Epsilon || cd.TOut > tmax+math.Epsilon {
			t.Errorf("window %v,%v escaped [%v,%v]", cd.TIn, cd.TOut, b, tmax)
		}
	}
}

func TestCYLHorizontalHazardZoneIsCCW(t *testing.T) {
	c := NewCYL(500, 150)
	s := math.Vector3{1000, 0, 0}
	vo := math.Vector3{0, 0, 0}
	vi := math.Vector3{0, 0, 0}
	poly := c.HorizontalHazardZone(s, vo, vi, 0)
	if len(poly) < 3 {
		t.Fatalf("expected a polygon, got %d points", len(poly))
	}
	var area float64
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i][0]*poly[j][1] - poly[j][0]*poly[i][1]
	}
	if area <= 0 {
		t.Errorf("expected counter-clockwise winding (positive signed area), got %v", area)
	}
}
