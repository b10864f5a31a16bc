// wcv/detector.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wcv

import "daidalus/math"

// Kind identifies a Detector's concrete volume, for logging and for the
// "same class" half of Detector.Contains (spec.md §4.2).
type Kind int

const (
	KindCYL Kind = iota
	KindWCVTAUMOD
	KindWCVTCPA
	KindWCVTEP
	KindWCVHZ
	KindWCVTAUMODSUM
	KindTCAS3D
)

func (k Kind) String() string {
	switch k {
	case KindCYL:
		return "CYL"
	case KindWCVTAUMOD:
		return "WCV_TAUMOD"
	case KindWCVTCPA:
		return "WCV_TCPA"
	case KindWCVTEP:
		return "WCV_TEP"
	case KindWCVHZ:
		return "WCV_HZ"
	case KindWCVTAUMODSUM:
		return "WCV_TAUMOD_SUM"
	case KindTCAS3D:
		return "TCAS3D"
	default:
		return "UNKNOWN"
	}
}

// Detector is the common contract every separation volume implements
// (spec.md §4.2). s is the relative position (intruder minus ownship);
// vo/vi are the ownship's and intruder's own velocities (not the relative
// velocity) so that detectors needing more than their difference — none
// currently do, but the spec's contract is written this way and a future
// volume might — have it available. [0,T] with T<0 means "unbounded."
type Detector interface {
	// ConflictDetection reports the loss-of-separation interval (if any)
	// within [b,t]. Precondition 0<=b<=t (t<0 meaning unbounded) is the
	// caller's responsibility to have checked, but an invalid window still
	// yields NoConflict rather than panicking (spec.md §7).
	ConflictDetection(s math.Vector3, vo, vi math.Vector3, b, t float64) ConflictData

	// Violation reports whether the two aircraft are in conflict right
	// now: conflict_detection(s,vo,vi,0,0).TIn == 0.
	Violation(s math.Vector3, vo, vi math.Vector3) bool

	// Contains reports whether this detector's volume contains other's —
	// true only when both are the same Kind and this one's thresholds are
	// at least as large in every dimension.
	Contains(other Detector) bool

	// Copy returns an independent copy (detectors are otherwise immutable
	// value-ish objects, but callers mutate thresholds via setters so a
	// defensive copy matters when a preset is handed to multiple alerters).
	Copy() Detector

	// Identifier is the caller-assigned name (e.g. an alerter level's
	// detector id); CanonicalName is the fixed class name ("WCV_TAUMOD",
	// ...) used for logging regardless of what the caller named it.
	Identifier() string
	SetIdentifier(id string)
	CanonicalName() string
	Kind() Kind

	// HorizontalHazardZone returns a counter-clockwise polygon
	// approximating this detector's hazard outline at time t, for display
	// only (spec.md §4.2); it never participates in a conflict decision.
	HorizontalHazardZone(s math.Vector3, vo, vi math.Vector3, t float64) []math.Vector2
}

// clampInterval restricts a conflict interval to [b,t], the half of spec.md §4.2's
// postcondition every detector shares: "both are clamped to [b,t]."
func clampInterval(tIn, tOut, b, t float64) (float64, float64) {
	if tIn < b {
		tIn = b
	}
	if t >= 0 && tOut > t {
		tOut = t
	}
	return tIn, tOut
}

// windowValid reports whether the query window itself is well-formed
// (spec.md §4.2 precondition 0<=b<=t, t<0 meaning unbounded); an invalid
// window is an invalid-input case per spec.md §7, not a panic.
func windowValid(b, t float64) bool {
	if !math.IsFinite(b) || b < 0 {
		return false
	}
	if t >= 0 && b > t {
		return false
	}
	return true
}

// Uncertainty is a detector-side view of a relative state's position and
// velocity standard deviations (spec.md §4.2's SUMData), already combined
// for ownship and intruder and pre-multiplied by nothing — the confidence
// z-score is applied by the detector, not the caller.
type Uncertainty struct {
	HorizontalPositionSigma float64
	VerticalPositionSigma   float64
	HorizontalVelocitySigma float64
	VerticalVelocitySigma   float64
}

// UncertaintyAware is implemented by detectors whose conflict test can
// consume a per-call Uncertainty (currently only WCVTAUMODSUM). It's a
// separate, optional-capability interface rather than a field on Detector
// itself so every other detector's ConflictDetection signature is
// untouched.
type UncertaintyAware interface {
	ConflictDetectionWithUncertainty(s, vo, vi math.Vector3, b, t float64, u Uncertainty) ConflictData
}

// ConflictDetectionFor runs detector's conflict test, routing through its
// UncertaintyAware path when u is non-nil and the detector supports it,
// falling back to the plain ConflictDetection otherwise (spec.md §4.2:
// "used only by WCV_TAUMOD_SUM" — every other detector silently ignores a
// supplied Uncertainty).
func ConflictDetectionFor(detector Detector, s, vo, vi math.Vector3, b, t float64, u *Uncertainty) ConflictData {
	if u != nil {
		if aware, ok := detector.(UncertaintyAware); ok {
			return aware.ConflictDetectionWithUncertainty(s, vo, vi, b, t, *u)
		}
	}
	return detector.ConflictDetection(s, vo, vi, b, t)
}
