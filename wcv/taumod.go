// wcv/taumod.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wcv

import "daidalus/math"

// horizontalVariant is the abstract horizontal-time-variable contract
// spec.md §4.2 describes for the WCV family: each variant picks a
// different "how close in time" metric, but all of them reduce to a
// window of instants (possibly the union of a distance-threshold window
// and a tau-threshold window) that this file intersects with the shared
// vertical test.
//
// No original_source/ copy of DAIDALUS survived retrieval filtering (see
// DESIGN.md), so the tau-threshold windows below are derived from first
// principles (the closed-form roots of each variant's time-to-event metric,
// which is linear in t because velocity is held constant over a query) to
// match spec.md §4.2's contract, not transcribed from a reference
// implementation.
type horizontalVariant interface {
	horizontalWindow(s, v math.Vector2, dthr, tthr float64) (tIn, tOut float64, ok bool)
}

// horizontalTauModWindow implements WCV_TAUMOD's horizontal test exactly as
// spec.md §4.2 states it: the quadratic-in-t solution of
// |s+tv|^2 + TTHR*(s+tv)*v <= DTHR^2.
func horizontalTauModWindow(s, v math.Vector2, dthr, tthr float64) (float64, float64, bool) {
	a := math.Dot2(v, v)
	b := 2*math.Dot2(s, v) + tthr*a
	c := math.Dot2(s, s) + tthr*math.Dot2(s, v) - dthr*dthr

	if math.AlmostEquals(a, 0) {
		if c <= 0 {
			return math.NegInfinity, math.Infinity, true
		}
		return 0, 0, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (-b-sq)/(2*a), (-b+sq)/(2*a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// eventWindow builds the "within tthr of event" window around a linear
// event time (tcpa or time-to-entry-point), unioned (as a convex hull,
// since ConflictData holds a single interval) with the plain distance
// window, which is the shared shape of WCV_TCPA/WCV_TEP below.
func eventWindow(eventT float64, eventOK bool, tthr float64, distIn, distOut float64, distOK bool) (float64, float64, bool) {
	if !distOK && !eventOK {
		return 0, 0, false
	}
	if !eventOK {
		return distIn, distOut, true
	}
	lo, hi := eventT-tthr, eventT+tthr
	if !distOK {
		return lo, hi, true
	}
	return min(lo, distIn), max(hi, distOut), true
}

// horizontalTCPAWindow implements WCV_TCPA: the tau-metric is time-to-
// horizontal-CPA, which only matters when ownship and intruder are
// actually converging (finite tcpa) and would pass within DTHR at CPA.
func horizontalTCPAWindow(s, v math.Vector2, dthr, tthr float64) (float64, float64, bool) {
	distIn, distOut, distOK := math.DiskEntryExit(s, v, dthr)

	vv := math.Dot2(v, v)
	if math.AlmostEquals(vv, 0) {
		return distIn, distOut, distOK
	}
	tcpa := math.HorizontalCPATime(s, v)
	dcpa := math.HorizontalCPADistance(s, v)
	eventOK := dcpa <= dthr
	return eventWindow(tcpa, eventOK, tthr, distIn, distOut, distOK)
}

// horizontalTEPWindow implements WCV_TEP: the tau-metric is time-to-entry-
// point, i.e. how soon the horizontal disk is actually entered.
func horizontalTEPWindow(s, v math.Vector2, dthr, tthr float64) (float64, float64, bool) {
	distIn, distOut, distOK := math.DiskEntryExit(s, v, dthr)
	return eventWindow(distIn, distOK, tthr, distIn, distOut, distOK)
}

// horizontalHZWindow implements WCV_HZ: below a (small, fixed) closure
// speed VMOD the tau metrics above are unstable (near-zero relative
// velocity makes "time to event" meaningless), so it falls back to a pure
// distance ("non-hazard zone") test; above VMOD it behaves like WCV_TCPA.
const hzVMOD = 1.0 // m/s; below this, treat horizontal closure as static.

func horizontalHZWindow(s, v math.Vector2, dthr, tthr float64) (float64, float64, bool) {
	if math.Length2(v) < hzVMOD {
		if math.Length2(s) <= dthr {
			return math.NegInfinity, math.Infinity, true
		}
		return 0, 0, false
	}
	return horizontalTCPAWindow(s, v, dthr, tthr)
}

// verticalWindow is the vertical test every WCV_* variant shares (spec.md
// §4.2): loss of vertical separation either while inside the ZTHR slab, or
// within TCOA seconds of reaching co-altitude.
func verticalWindow(sz, vz, zthr, tcoaThr float64) (float64, float64, bool) {
	slabIn, slabOut, slabOK := math.SlabEntryExit(sz, vz, zthr)

	tcoa := math.TimeToCoAltitude(sz, vz)
	coaltOK := math.IsFinite(tcoa) && tcoa >= 0
	if !coaltOK {
		return slabIn, slabOut, slabOK
	}
	coaltIn, coaltOut := max(0, tcoa-tcoaThr), tcoa
	if !slabOK {
		return coaltIn, coaltOut, true
	}
	return min(slabIn, coaltIn), max(slabOut, coaltOut), true
}

// wcvBase holds the four thresholds every WCV_* variant shares (spec.md
// §3's DTHR/ZTHR/TTHR/TCOA) plus the caller-assigned identifier.
type wcvBase struct {
	DTHR, ZTHR, TTHR, TCOA float64
	id                     string
}

func (b *wcvBase) Identifier() string     { return b.id }
func (b *wcvBase) SetIdentifier(id string) { b.id = id }

func (b *wcvBase) contains(o *wcvBase) bool {
	return b.DTHR >= o.DTHR && b.ZTHR >= o.ZTHR && b.TTHR >= o.TTHR && b.TCOA >= o.TCOA
}

// wcvDetector wires a wcvBase's shared vertical test together with a
// horizontalVariant and produces the common 3-D intersection (spec.md
// §4.2: "The 3-D loss interval is the intersection.").
type wcvDetector struct {
	wcvBase
	kind     Kind
	variant  horizontalVariant
}

func newWCVDetector(kind Kind, variant horizontalVariant, dthr, zthr, tthr, tcoa float64) *wcvDetector {
	return &wcvDetector{
		wcvBase: wcvBase{DTHR: dthr, ZTHR: zthr, TTHR: tthr, TCOA: tcoa},
		kind:    kind,
		variant: variant,
	}
}

func (d *wcvDetector) Kind() Kind            { return d.kind }
func (d *wcvDetector) CanonicalName() string { return d.kind.String() }

func (d *wcvDetector) Copy() Detector {
	cp := *d
	return &cp
}

func (d *wcvDetector) Contains(other Detector) bool {
	o, ok := other.(*wcvDetector)
	if !ok || o.kind != d.kind {
		return false
	}
	return d.wcvBase.contains(&o.wcvBase)
}

func (d *wcvDetector) ConflictDetection(s math.Vector3, vo, vi math.Vector3, b, t float64) ConflictData {
	v := math.Sub3(vi, vo)
	if !windowValid(b, t) || d.DTHR < 0 || d.ZTHR < 0 || d.TTHR < 0 || d.TCOA < 0 ||
		!math.IsFinite(math.Length3(s)) || !math.IsFinite(math.Length3(v)) {
		return NoConflict(s, v)
	}

	hIn, hOut, hOK := d.variant.horizontalWindow(math.Horizontal(s), math.Horizontal(v), d.DTHR, d.TTHR)
	if !hOK {
		return NoConflict(s, v)
	}
	vIn, vOut, vOK := verticalWindow(s[2], v[2], d.ZTHR, d.TCOA)
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

	tCrit := math.Clamp(math.CPATime3(s, v), tIn, tOut)
	dCrit := math.NormCyl(math.Add3(s, math.Scale3(v, tCrit)), d.DTHR, d.ZTHR)
	return ConflictData{TIn: tIn, TOut: tOut, TCrit: tCrit, DCrit: dCrit, S: s, V: v}
}

func (d *wcvDetector) Violation(s math.Vector3, vo, vi math.Vector3) bool {
	cd := d.ConflictDetection(s, vo, vi, 0, 0)
	return cd.Conflict() && cd.TIn == 0
}

func (d *wcvDetector) HorizontalHazardZone(s math.Vector3, vo, vi math.Vector3, t float64) []math.Vector2 {
	return circleHazardZone(s, math.Sub3(vi, vo), t, d.DTHR)
}

// NewWCVTAUMOD constructs the modified-tau + co-altitude well-clear volume.
func NewWCVTAUMOD(dthr, zthr, tthr, tcoa float64) Detector {
	d := newWCVDetector(KindWCVTAUMOD, nil, dthr, zthr, tthr, tcoa)
	d.variant = tauModVariant{}
	return d
}

// NewWCVTCPA constructs the time-to-horizontal-CPA variant.
func NewWCVTCPA(dthr, zthr, tthr, tcoa float64) Detector {
	d := newWCVDetector(KindWCVTCPA, nil, dthr, zthr, tthr, tcoa)
	d.variant = tcpaVariant{}
	return d
}

// NewWCVTEP constructs the time-to-entry-point variant.
func NewWCVTEP(dthr, zthr, tthr, tcoa float64) Detector {
	d := newWCVDetector(KindWCVTEP, nil, dthr, zthr, tthr, tcoa)
	d.variant = tepVariant{}
	return d
}

// NewWCVHZ constructs the VMOD-gated non-hazard-zone variant.
func NewWCVHZ(dthr, zthr, tthr, tcoa float64) Detector {
	d := newWCVDetector(KindWCVHZ, nil, dthr, zthr, tthr, tcoa)
	d.variant = hzVariant{}
	return d
}

type tauModVariant struct{}

func (tauModVariant) horizontalWindow(s, v math.Vector2, dthr, tthr float64) (float64, float64, bool) {
	return horizontalTauModWindow(s, v, dthr, tthr)
}

type tcpaVariant struct{}

func (tcpaVariant) horizontalWindow(s, v math.Vector2, dthr, tthr float64) (float64, float64, bool) {
	return horizontalTCPAWindow(s, v, dthr, tthr)
}

type tepVariant struct{}

func (tepVariant) horizontalWindow(s, v math.Vector2, dthr, tthr float64) (float64, float64, bool) {
	return horizontalTEPWindow(s, v, dthr, tthr)
}

type hzVariant struct{}

func (hzVariant) horizontalWindow(s, v math.Vector2, dthr, tthr float64) (float64, float64, bool) {
	return horizontalHZWindow(s, v, dthr, tthr)
}
