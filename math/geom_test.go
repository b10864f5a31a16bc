// math/geom_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestConvexHullSquare(t *testing.T) {
	pts := []Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("expected 4 hull vertices for a square plus interior point, got %d: %v", len(hull), hull)
	}
	// Check winding is counter-clockwise via the shoelace formula (area > 0).
	var area float64
	for i := range hull {
		j := (i + 1) % len(hull)
		area += hull[i][0]*hull[j][1] - hull[j][0]*hull[i][1]
	}
	if area <= 0 {
		t.Errorf("expected counter-clockwise winding (positive shoelace area), got %v", area)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Vector2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !PointInPolygon(Vector2{5, 5}, square) {
		t.Errorf("expected center point to be inside")
	}
	if PointInPolygon(Vector2{15, 5}, square) {
		t.Errorf("expected point outside x range to be outside")
	}
}

func TestRayRayMinimumDistance(t *testing.T) {
	// One ray leaves the origin heading +x, the other leaves (5,-10)
	// heading +y: they close for a while, so the distance is smallest at a
	// positive parameter (7.5).
	p0 := Vector2{0, 0}
	d0 := Vector2{1, 0}
	p1 := Vector2{5, -10}
	d1 := Vector2{0, 1}
	tmin := RayRayMinimumDistance(p0, d0, p1, d1)
	if tmin <= 0 {
		t.Errorf("expected a positive parametric closest approach, got %v", tmin)
	}
}
