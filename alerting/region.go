// alerting/region.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package alerting implements the multi-level alerter (spec.md §4.3,
// component C3): an ordered list of AlertThresholds, each pairing a
// wcv.Detector with an alerting horizon and a severity region, plus the
// region enum (spec.md §3) that the bands and hysteresis layers both
// import from here since this is the first component in dependency order
// that needs it.
package alerting

// Region is the severity classification spec.md §3 attaches to both an
// alert level and a band color: NONE/FAR/MID/NEAR/RECOVERY/UNKNOWN,
// totally ordered by severity for conflict purposes.
type Region int

const (
	RegionUnknown  Region = -1
	RegionNone     Region = 0
	RegionFar      Region = 1
	RegionMid      Region = 2
	RegionNear     Region = 3
	RegionRecovery Region = 4
)

func (r Region) String() string {
	switch r {
	case RegionUnknown:
		return "UNKNOWN"
	case RegionNone:
		return "NONE"
	case RegionFar:
		return "FAR"
	case RegionMid:
		return "MID"
	case RegionNear:
		return "NEAR"
	case RegionRecovery:
		return "RECOVERY"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether r is a real region, not the UNKNOWN sentinel.
func (r Region) IsValid() bool { return r != RegionUnknown }

// IsResolution reports whether r represents "no maneuver needed" (NONE)
// or "already resolving" (RECOVERY), as opposed to an active conflict.
func (r Region) IsResolution() bool { return r == RegionNone || r == RegionRecovery }

// IsConflict reports whether r is a valid, non-resolution region — i.e.
// an active alert of some severity (FAR/MID/NEAR).
func (r Region) IsConflict() bool { return r.IsValid() && !r.IsResolution() }
