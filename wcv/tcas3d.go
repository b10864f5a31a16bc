// wcv/tcas3d.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wcv

import "daidalus/math"

// SensitivityLevel is one row of TCAS3D's altitude-indexed parameter table
// (spec.md §4.2): "each level has (TAU,TCOA,DMOD,HMD,ZTHR)". MinAltitude is
// this row's lower altitude bound (inclusive); the table is sorted
// ascending and the last row whose MinAltitude is <= the ownship's
// altitude applies.
type SensitivityLevel struct {
	MinAltitude               float64
	TAU, TCOA, DMOD, HMD, ZTHR float64
}

// DefaultSensitivityLevels is the legacy TCAS II table (RTCA DO-185B §2-2),
// sensitivity levels 2 through 7 — level 1 (standby) never issues an RA so
// it's omitted. Altitudes and thresholds are in meters/seconds.
var DefaultSensitivityLevels = []SensitivityLevel{
	{MinAltitude: 0, TAU: 15, TCOA: 15, DMOD: 556, HMD: 370, ZTHR: 274},
	{MinAltitude: 305, TAU: 20, TCOA: 20, DMOD: 926, HMD: 500, ZTHR: 274},
	{MinAltitude: 610, TAU: 25, TCOA: 25, DMOD: 926, HMD: 500, ZTHR: 274},
	{MinAltitude: 1000, TAU: 30, TCOA: 30, DMOD: 926, HMD: 500, ZTHR: 305},
	{MinAltitude: 2350, TAU: 35, TCOA: 35, DMOD: 1112, HMD: 650, ZTHR: 366},
	{MinAltitude: 5000, TAU: 35, TCOA: 35, DMOD: 1112, HMD: 650, ZTHR: 366},
	{MinAltitude: 10000, TAU: 35, TCOA: 35, DMOD: 1112, HMD: 650, ZTHR: 366},
}

// TCAS3D is the legacy Traffic Collision Avoidance System separation
// volume (spec.md §4.2): a 2-D tau test combined with a horizontal miss
// distance (HMD) filter and the shared vertical coalt test, with
// parameters selected from Levels by the ownship's predicted altitude.
type TCAS3D struct {
	Levels          []SensitivityLevel
	OwnshipAltitude float64
	id              string
}

// NewTCAS3D constructs a TCAS3D detector using DefaultSensitivityLevels.
// ownshipAltitude is the ownship's absolute altitude (meters) at query
// time t=0; SetOwnshipAltitude updates it as the ownship climbs/descends.
func NewTCAS3D(ownshipAltitude float64) *TCAS3D {
	return &TCAS3D{Levels: DefaultSensitivityLevels, OwnshipAltitude: ownshipAltitude}
}

func (d *TCAS3D) Kind() Kind            { return KindTCAS3D }
func (d *TCAS3D) CanonicalName() string { return KindTCAS3D.String() }
func (d *TCAS3D) Identifier() string    { return d.id }
func (d *TCAS3D) SetIdentifier(id string) { d.id = id }

// SetOwnshipAltitude updates the reference altitude used to select a
// sensitivity level; callers refresh this whenever the ownship's own
// altitude changes (spec.md §4.9's set_ownship_state).
func (d *TCAS3D) SetOwnshipAltitude(alt float64) { d.OwnshipAltitude = alt }

func (d *TCAS3D) Copy() Detector {
	cp := *d
	cp.Levels = append([]SensitivityLevel(nil), d.Levels...)
	return &cp
}

func (d *TCAS3D) Contains(other Detector) bool {
	o, ok := other.(*TCAS3D)
	if !ok || len(d.Levels) != len(o.Levels) {
		return false
	}
	for i := range d.Levels {
		a, b := d.Levels[i], o.Levels[i]
		if a.DMOD < b.DMOD || a.HMD < b.HMD || a.ZTHR < b.ZTHR || a.TAU < b.TAU || a.TCOA < b.TCOA {
			return false
		}
	}
	return true
}

// levelAt returns the sensitivity level in effect at the given altitude.
func (d *TCAS3D) levelAt(altitude float64) SensitivityLevel {
	level := d.Levels[0]
	for _, l := range d.Levels {
		if l.MinAltitude <= altitude {
			level = l
		}
	}
	return level
}

// altitudeBandBreakpoints returns the times within [b,t] at which the
// ownship's predicted altitude crosses a sensitivity-level boundary
// (spec.md §4.2: "Detection splits [B,T] at altitude-band crossings").
func (d *TCAS3D) altitudeBandBreakpoints(voz, b, t float64) []float64 {
	breaks := []float64{b}
	if !math.AlmostEquals(voz, 0) {
		for _, l := range d.Levels {
			bt := (l.MinAltitude - d.OwnshipAltitude) / voz
			if bt > b && (t < 0 || bt < t) {
				breaks = append(breaks, bt)
			}
		}
	}
	if t >= 0 {
		breaks = append(breaks, t)
	}
	return breaks
}

// levelWindow computes one sensitivity level's loss-of-separation window:
// the tau-test quadratic (identical in shape to WCV_TAUMOD's, with
// DMOD/TAU in place of DTHR/TTHR — spec.md §4.2's formula
// "(|s|^2-DMOD^2)/(-s.v) <= TAU ∨ |s| <= DMOD" is the same inequality as
// the WCV_TAUMOD quadratic once s.v<0 is folded in), gated by the HMD
// filter, intersected with the shared vertical test.
func levelWindow(s math.Vector3, v math.Vector3, l SensitivityLevel) (float64, float64, bool) {
	hs, hv := math.Horizontal(s), math.Horizontal(v)
	if math.HorizontalCPADistance(hs, hv) > l.HMD {
		return 0, 0, false
	}
	hIn, hOut, hOK := horizontalTauModWindow(hs, hv, l.DMOD, l.TAU)
	if !hOK {
		return 0, 0, false
	}
	vIn, vOut, vOK := verticalWindow(s[2], v[2], l.ZTHR, l.TCOA)
	if !vOK {
		return 0, 0, false
	}
	tIn, tOut := max(hIn, vIn), min(hOut, vOut)
	if tIn > tOut {
		return 0, 0, false
	}
	return tIn, tOut, true
}

func (d *TCAS3D) ConflictDetection(s math.Vector3, vo, vi math.Vector3, b, t float64) ConflictData {
	v := math.Sub3(vi, vo)
	if !windowValid(b, t) || len(d.Levels) == 0 ||
		!math.IsFinite(math.Length3(s)) || !math.IsFinite(math.Length3(v)) {
		return NoConflict(s, v)
	}

	breaks := d.altitudeBandBreakpoints(vo[2], b, t)
	var unionIn, unionOut float64 = math.Infinity, math.NegInfinity
	found := false

	for i := 0; i+1 < len(breaks); i++ {
		segB, segT := breaks[i], breaks[i+1]
		altAtSegStart := d.OwnshipAltitude + vo[2]*segB
		level := d.levelAt(altAtSegStart)

		lIn, lOut, lOK := levelWindow(s, v, level)
		if !lOK {
			continue
		}
		lIn, lOut = clampInterval(lIn, lOut, segB, segT)
		if lIn > lOut {
			continue
		}
		found = true
		unionIn = min(unionIn, lIn)
		unionOut = max(unionOut, lOut)
	}

	if !found {
		return NoConflict(s, v)
	}
	unionIn, unionOut = clampInterval(unionIn, unionOut, b, t)
	if unionIn > unionOut {
		return NoConflict(s, v)
	}

	tCrit := math.Clamp(math.CPATime3(s, v), unionIn, unionOut)
	tCritLevel := d.levelAt(d.OwnshipAltitude + vo[2]*tCrit)
	dCrit := math.NormCyl(math.Add3(s, math.Scale3(v, tCrit)), tCritLevel.DMOD, tCritLevel.ZTHR)
	return ConflictData{TIn: unionIn, TOut: unionOut, TCrit: tCrit, DCrit: dCrit, S: s, V: v}
}

func (d *TCAS3D) Violation(s math.Vector3, vo, vi math.Vector3) bool {
	cd := d.ConflictDetection(s, vo, vi, 0, 0)
	return cd.Conflict() && cd.TIn == 0
}

func (d *TCAS3D) HorizontalHazardZone(s math.Vector3, vo, vi math.Vector3, t float64) []math.Vector2 {
	level := d.levelAt(d.OwnshipAltitude + vo[2]*t)
	return circleHazardZone(s, math.Sub3(vi, vo), t, level.DMOD)
}
