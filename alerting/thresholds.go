// alerting/thresholds.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package alerting

import (
	"daidalus/math"
	"daidalus/wcv"
)

// Spread holds the optional maneuver-spread widths spec.md §3 attaches to
// an AlertThresholds level: "expands the alert test to also cover any
// reachable state within the given relative spread in that axis."
type Spread struct {
	Dir, HS, VS, Alt float64
	DirEnabled, HSEnabled, VSEnabled, AltEnabled bool
}

// AlertThresholds is one level of an Alerter's ordered list (spec.md §3):
// a detector, the alerting/early-alerting horizons, the region this level
// reports, and an optional maneuver-spread widening test.
type AlertThresholds struct {
	Detector          wcv.Detector
	AlertingTime      float64
	EarlyAlertingTime float64
	Region            Region
	Spread            Spread
}

// NewAlertThresholds constructs a level, defaulting EarlyAlertingTime to
// AlertingTime when the caller passes a smaller or zero value (spec.md §3
// invariant: early_alerting_time >= alerting_time).
func NewAlertThresholds(d wcv.Detector, alertingTime, earlyAlertingTime float64, region Region) AlertThresholds {
	if earlyAlertingTime < alertingTime {
		earlyAlertingTime = alertingTime
	}
	return AlertThresholds{
		Detector:          d,
		AlertingTime:      alertingTime,
		EarlyAlertingTime: earlyAlertingTime,
		Region:            region,
	}
}

// WithSpread returns a copy of a with its maneuver-spread test configured
// (spec.md §4.3). Spread itself has no other setter, since AlertThresholds
// is otherwise built in one shot by NewAlertThresholds and spread widths
// are a preset-specific refinement layered on afterward.
func (a AlertThresholds) WithSpread(s Spread) AlertThresholds {
	cp := a
	cp.Spread = s
	return cp
}

// Copy returns an independent copy, deep-copying the embedded detector
// (AlertThresholds is handed around by value elsewhere, but the detector
// itself is a mutable interface value).
func (a AlertThresholds) Copy() AlertThresholds {
	cp := a
	if a.Detector != nil {
		cp.Detector = a.Detector.Copy()
	}
	return cp
}

// fires reports whether this level's conflict window
// [0, min(lookahead, AlertingTime)] contains a conflict for the given
// relative state (spec.md §4.3's plain conflict_detection half of the
// alert-level decision; maneuver-spread is evaluated separately by the
// caller, which needs the bands machinery this package doesn't depend on).
func (a AlertThresholds) fires(s, vo, vi math.Vector3, lookahead float64) bool {
	if a.Detector == nil {
		return false
	}
	horizon := a.AlertingTime
	if lookahead < horizon {
		horizon = lookahead
	}
	cd := a.Detector.ConflictDetection(s, vo, vi, 0, horizon)
	return cd.Conflict()
}
