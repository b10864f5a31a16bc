// wcv/cylinder.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wcv

import "daidalus/math"

// CYL is the plain cylinder volume: a disk of radius D and a vertical slab
// of half-height H (spec.md §4.2). It's the simplest detector; its
// Contains only compares against another CYL.
type CYL struct {
	D, H float64
	id   string
}

// NewCYL constructs a cylinder detector with horizontal radius d (meters)
// and vertical half-height h (meters).
func NewCYL(d, h float64) *CYL {
	return &CYL{D: math.Abs(d), H: math.Abs(h)}
}

func (c *CYL) Kind() Kind            { return KindCYL }
func (c *CYL) Identifier() string    { return c.id }
func (c *CYL) SetIdentifier(id string) { c.id = id }
func (c *CYL) CanonicalName() string { return KindCYL.String() }

func (c *CYL) Copy() Detector {
	cp := *c
	return &cp
}

func (c *CYL) Contains(other Detector) bool {
	o, ok := other.(*CYL)
	if !ok {
		return false
	}
	return c.D >= o.D && c.H >= o.H
}

// ConflictDetection intersects the horizontal disk-entry window with the
// vertical slab-entry window (spec.md §4.2: "closed-form cylinder/disk
// intersection over [B,T]").
func (c *CYL) ConflictDetection(s math.Vector3, vo, vi math.Vector3, b, t float64) ConflictData {
	v := math.Sub3(vi, vo)
	if !windowValid(b, t) || c.D < 0 || c.H < 0 || !math.IsFinite(math.Length3(s)) || !math.IsFinite(math.Length3(v)) {
		return NoConflict(s, v)
	}

	hs, hv := math.Horizontal(s), math.Horizontal(v)
	hIn, hOut, hOK := math.DiskEntryExit(hs, hv, c.D)
	if !hOK {
		return NoConflict(s, v)
	}
	vIn, vOut, vOK := math.SlabEntryExit(s[2], v[2], c.H)
	if !vOK {
		return NoConflict(s, v)
	}

	tIn := max(hIn, vIn)
	tOut := min(hOut, vOut)
	if tIn > tOut {
		return NoConflict(s, v)
	}

	tIn, tOut = clampInterval(tIn, tOut, b, t)
	if tIn > tOut {
		return NoConflict(s, v)
	}

	tCrit := math.TCPACylinder(s, v, c.D, c.H, tIn, tOut)
	dCrit := math.NormCyl(math.Add3(s, math.Scale3(v, tCrit)), c.D, c.H)

	return ConflictData{TIn: tIn, TOut: tOut, TCrit: tCrit, DCrit: dCrit, S: s, V: v}
}

func (c *CYL) Violation(s math.Vector3, vo, vi math.Vector3) bool {
	cd := c.ConflictDetection(s, vo, vi, 0, 0)
	return cd.Conflict() && cd.TIn == 0
}

// HorizontalHazardZone approximates the cylinder's horizontal outline at
// time t as a tessellated circle of radius D centered at the intruder's
// projected position relative to the ownship, built via math.ConvexHull so
// the resulting polygon is guaranteed counter-clockwise (spec.md §4.2).
func (c *CYL) HorizontalHazardZone(s math.Vector3, vo, vi math.Vector3, t float64) []math.Vector2 {
	return circleHazardZone(s, math.Sub3(vi, vo), t, c.D)
}
