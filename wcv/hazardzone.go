// wcv/hazardzone.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wcv

import "daidalus/math"

// circleHazardZone tessellates a circle of the given radius centered at
// the intruder's time-t projected position relative to the ownship, and
// passes it through math.ConvexHull so every Detector's
// HorizontalHazardZone returns the same counter-clockwise winding (spec.md
// §4.2). Every volume in this package currently displays as a circle (the
// horizontal cross-section of CYL and every WCV_* variant's DTHR disk), so
// this one helper backs all of them.
func circleHazardZone(s math.Vector3, v math.Vector3, t, radius float64) []math.Vector2 {
	const nsegs = 24
	center := math.Add2(math.Horizontal(s), math.Scale2(math.Horizontal(v), t))
	pts := make([]math.Vector2, 0, nsegs)
	for i := 0; i < nsegs; i++ {
		angle := 2 * math.Pi * float64(i) / nsegs
		pts = append(pts, math.Add2(center, math.Vector2{radius * math.Cos(angle), radius * math.Sin(angle)}))
	}
	return math.ConvexHull(pts)
}
