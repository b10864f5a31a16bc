// wcv/taumod_sum.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wcv

import (
	"gonum.org/v1/gonum/stat/distuv"

	"daidalus/math"
)

// WCVTAUMODSUM is WCV_TAUMOD with state-uncertainty-mitigation: the
// DTHR/ZTHR thresholds are grown by z times a horizontal/vertical position
// sigma before the ordinary WCV_TAUMOD test runs, turning a point estimate
// into a confidence-region test (spec.md §4.2). The inflation factor comes
// from the two-sided normal quantile for the configured confidence level,
// the same use of distuv.Normal that
// jndunlap-gohypo/internal/profiling/distribution.go makes when it turns a
// summary statistic into a quantile for a confidence band.
type WCVTAUMODSUM struct {
	wcvBase
	HorizontalSigma, VerticalSigma float64
	Confidence                     float64
}

// NewWCVTAUMODSUM constructs the uncertainty-mitigated variant. confidence
// is the two-sided confidence level (e.g. 0.95); hsigma/vsigma are the
// 1-sigma horizontal/vertical position uncertainties of the *relative*
// state (spec.md §3's Uncertainty, combined for ownship and intruder by
// the caller before being passed in here).
func NewWCVTAUMODSUM(dthr, zthr, tthr, tcoa, hsigma, vsigma, confidence float64) *WCVTAUMODSUM {
	return &WCVTAUMODSUM{
		wcvBase:         wcvBase{DTHR: dthr, ZTHR: zthr, TTHR: tthr, TCOA: tcoa},
		HorizontalSigma: hsigma,
		VerticalSigma:   vsigma,
		Confidence:      confidence,
	}
}

func (d *WCVTAUMODSUM) Kind() Kind            { return KindWCVTAUMODSUM }
func (d *WCVTAUMODSUM) CanonicalName() string { return KindWCVTAUMODSUM.String() }

func (d *WCVTAUMODSUM) Copy() Detector {
	cp := *d
	return &cp
}

func (d *WCVTAUMODSUM) Contains(other Detector) bool {
	o, ok := other.(*WCVTAUMODSUM)
	if !ok {
		return false
	}
	return d.wcvBase.contains(&o.wcvBase) &&
		d.HorizontalSigma >= o.HorizontalSigma && d.VerticalSigma >= o.VerticalSigma
}

// zQuantile returns the two-sided normal quantile z such that a standard
// normal variable falls within [-z,z] with probability d.Confidence.
func (d *WCVTAUMODSUM) zQuantile() float64 {
	n := distuv.Normal{Mu: 0, Sigma: 1}
	c := math.Clamp(d.Confidence, 0, 0.999999)
	return n.Quantile(0.5 + c/2)
}

// inflatedThresholds widens DTHR/ZTHR by z*sigma, so a relative position
// known only to within its uncertainty ellipse is treated as being at the
// nearest point of that ellipse to the other aircraft (the standard SUM
// conservative-inflation shortcut: grow the volume rather than shrink the
// point estimate).
func (d *WCVTAUMODSUM) inflatedThresholds() (dthr, zthr float64) {
	z := d.zQuantile()
	return d.DTHR + z*d.HorizontalSigma, d.ZTHR + z*d.VerticalSigma
}

func (d *WCVTAUMODSUM) ConflictDetection(s math.Vector3, vo, vi math.Vector3, b, t float64) ConflictData {
	v := math.Sub3(vi, vo)
	if !windowValid(b, t) || d.DTHR < 0 || d.ZTHR < 0 || d.TTHR < 0 || d.TCOA < 0 ||
		!math.IsFinite(math.Length3(s)) || !math.IsFinite(math.Length3(v)) {
		return NoConflict(s, v)
	}

	dthr, zthr := d.inflatedThresholds()
	hIn, hOut, hOK := horizontalTauModWindow(math.Horizontal(s), math.Horizontal(v), dthr, d.TTHR)
	if !hOK {
		return NoConflict(s, v)
	}
	vIn, vOut, vOK := verticalWindow(s[2], v[2], zthr, d.TCOA)
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
	dCrit := math.NormCyl(math.Add3(s, math.Scale3(v, tCrit)), dthr, zthr)
	return ConflictData{TIn: tIn, TOut: tOut, TCrit: tCrit, DCrit: dCrit, S: s, V: v}
}

// ConflictDetectionWithUncertainty is the per-call counterpart of the
// construction-time HorizontalSigma/VerticalSigma (spec.md §4.2): it grows
// those sigmas by u's position sigma plus u's velocity sigma times the
// query horizon (t, falling back to b when the window is unbounded) — a
// single worst-case inflation over the whole window, the same "grow the
// volume" shortcut inflatedThresholds already uses for the confidence
// z-score — then runs the ordinary test against a grown copy. The
// construction-time sigmas themselves are untouched, so a detector with
// no per-call Uncertainty still behaves exactly as before.
func (d *WCVTAUMODSUM) ConflictDetectionWithUncertainty(s, vo, vi math.Vector3, b, t float64, u Uncertainty) ConflictData {
	horizon := t
	if horizon < 0 {
		horizon = b
	}
	grown := *d
	grown.HorizontalSigma += u.HorizontalPositionSigma + u.HorizontalVelocitySigma*horizon
	grown.VerticalSigma += u.VerticalPositionSigma + u.VerticalVelocitySigma*horizon
	return grown.ConflictDetection(s, vo, vi, b, t)
}

func (d *WCVTAUMODSUM) Violation(s math.Vector3, vo, vi math.Vector3) bool {
	cd := d.ConflictDetection(s, vo, vi, 0, 0)
	return cd.Conflict() && cd.TIn == 0
}

func (d *WCVTAUMODSUM) HorizontalHazardZone(s math.Vector3, vo, vi math.Vector3, t float64) []math.Vector2 {
	dthr, _ := d.inflatedThresholds()
	return circleHazardZone(s, math.Sub3(vi, vo), t, dthr)
}
