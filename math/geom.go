// math/geom.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "sort"

// RayRayMinimumDistance takes two rays p0+d0*t and p1+d1*t and returns the
// value of t where their distance is minimized. Grounded on
// pkg/math/geom.go's function of the same name. It returns 0 when the two
// directions are equal.
func RayRayMinimumDistance(p0, d0, p1, d1 Vector2) float64 {
	denom := d0[0]*d0[0] - 2*d0[0]*d1[0] + d1[0]*d1[0] + d0[1]*d0[1] - 2*d0[1]*d1[1] + d1[1]*d1[1]
	if denom == 0 {
		return 0
	}
	num := d0[0]*p1[0] + d0[1]*p1[1] - p1[0]*d1[0] + p0[0]*(-d0[0]+d1[0]) - p1[1]*d1[1] + p0[1]*(-d0[1]+d1[1])
	return num / denom
}

// PointInPolygon checks whether p is inside the polygon described by pts
// (assumed not to repeat its first vertex). Grounded on
// pkg/math/geom.go:PointInPolygon.
func PointInPolygon(p Vector2, pts []Vector2) bool {
	inside := false
	for i := 0; i < len(pts); i++ {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		if (p0[1] <= p[1] && p[1] < p1[1]) || (p1[1] <= p[1] && p[1] < p0[1]) {
			x := p0[0] + (p[1]-p0[1])*(p1[0]-p0[0])/(p1[1]-p0[1])
			if x > p[0] {
				inside = !inside
			}
		}
	}
	return inside
}

// ConvexHull computes the convex hull of points, returned counter-clockwise,
// via the monotone-chain algorithm. Used to build the counter-clockwise
// polygon that Detector.HorizontalHazardZone returns (spec.md §4.2).
// Grounded on pkg/math/geom.go:ConvexHull
// (https://en.wikibooks.org/wiki/Algorithm_Implementation/Geometry/Convex_hull/Monotone_chain).
func ConvexHull(points []Vector2) []Vector2 {
	pts := append([]Vector2{}, points...)
	n := len(pts)
	if n <= 1 {
		return pts
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] == pts[j][0] {
			return pts[i][1] < pts[j][1]
		}
		return pts[i][0] < pts[j][0]
	})

	cross := func(o, a, b Vector2) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	lower := make([]Vector2, 0, n)
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Vector2, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// The lower chain runs left to right and the upper chain right to left,
	// so lower-then-upper is already counter-clockwise.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}
