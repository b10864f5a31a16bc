// alerting/presets.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package alerting

import "daidalus/wcv"

// Unit conversions: the engine's internal state is meters/seconds (spec.md
// §3), but the preset constants below are specified in the units the
// source documents use.
const (
	metersPerNM = 1852.0
	metersPerFt = 0.3048
)

func nm(v float64) float64 { return v * metersPerNM }
func ft(v float64) float64 { return v * metersPerFt }

// NewPhaseIAlerter builds the DO-365 Phase I (en-route) preset: preventive
// (NONE, 55/75s), corrective (MID, 55/75s), warning (NEAR, 25/55s), all on
// WCV_TAUMOD with DTHR=0.66nmi, TTHR=35s, TCOA=0s, ZTHR=450ft (700ft for
// the preventive level) — spec.md §6, reproduced bit-exact.
func NewPhaseIAlerter() *Alerter {
	a := NewAlerter("WC_SC_228_Phase_I")
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMOD(nm(0.66), ft(700), 35, 0), 55, 75, RegionNone))
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMOD(nm(0.66), ft(450), 35, 0), 55, 75, RegionMid))
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMOD(nm(0.66), ft(450), 35, 0), 25, 55, RegionNear))
	return a
}

// NewPhaseIISingleBandAlerter builds the DO-365A Phase II (DTA) preset: a
// single corrective/warning pair on WCV_TAUMOD with DTHR=1500ft,
// ZTHR=450ft, TTHR=0, TCOA=0, alerting/early times uniformly (45,75)s —
// spec.md §6, reproduced bit-exact.
func NewPhaseIISingleBandAlerter() *Alerter {
	a := NewAlerter("WC_SC_228_Phase_II")
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMOD(ft(1500), ft(450), 0, 0), 45, 75, RegionMid))
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMOD(ft(1500), ft(450), 0, 0), 45, 75, RegionNear))
	return a
}

// NewNonCooperativeAlerter builds the DO-365B non-cooperative preset: a
// plain CYL volume (no cooperative surveillance state) with DTHR=2200ft,
// ZTHR=450ft, alerting/early times (55,110)/(55,110)/(25,90)s for
// (preventive→NONE, corrective→MID, warning→NEAR) — spec.md §6,
// reproduced bit-exact.
func NewNonCooperativeAlerter() *Alerter {
	a := NewAlerter("WC_SC_228_Non_Cooperative")
	a.AddLevel(NewAlertThresholds(
		wcv.NewCYL(ft(2200), ft(450)), 55, 110, RegionNone))
	a.AddLevel(NewAlertThresholds(
		wcv.NewCYL(ft(2200), ft(450)), 55, 110, RegionMid))
	a.AddLevel(NewAlertThresholds(
		wcv.NewCYL(ft(2200), ft(450)), 25, 90, RegionNear))
	return a
}

// NewBufferedPhaseIAlerter builds the buffered (uncertainty-aware) Phase I
// preset: DTHR=1.0nmi, ZTHR=750ft (preventive)/450ft, TTHR=35s, TCOA=20s,
// alerting/early times (60,75)/(60,75)/(30,55)s on WCV_TAUMOD_SUM so the
// conflict test accounts for position/velocity uncertainty (spec.md §6,
// reproduced bit-exact). confidence/sigmas are left at the caller's
// defaults by accepting them as arguments — unlike the other presets, a
// SUM-based alerter can't be parameterless and still mean anything.
func NewBufferedPhaseIAlerter(hsigma, vsigma, confidence float64) *Alerter {
	a := NewAlerter("WC_SC_228_Buffered_Phase_I")
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMODSUM(nm(1.0), ft(750), 35, 20, hsigma, vsigma, confidence), 60, 75, RegionNone))
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMODSUM(nm(1.0), ft(450), 35, 20, hsigma, vsigma, confidence), 60, 75, RegionMid))
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMODSUM(nm(1.0), ft(450), 35, 20, hsigma, vsigma, confidence), 30, 55, RegionNear))
	return a
}

// NewPhaseISUMAlerter builds the SUM variant of Phase I. spec.md §9's
// Open Question on the SUM preventive alerting time is resolved here as
// (50,75)s, the newer of the two documented snapshots (see DESIGN.md);
// an older snapshot instead used (55,75)s for this level, matching the
// plain (non-SUM) Phase I preset above — not used here.
func NewPhaseISUMAlerter(hsigma, vsigma, confidence float64) *Alerter {
	a := NewAlerter("WC_SC_228_Phase_I_SUM")
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMODSUM(nm(0.66), ft(700), 35, 0, hsigma, vsigma, confidence), 50, 75, RegionNone))
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMODSUM(nm(0.66), ft(450), 35, 0, hsigma, vsigma, confidence), 55, 75, RegionMid))
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMODSUM(nm(0.66), ft(450), 35, 0, hsigma, vsigma, confidence), 25, 55, RegionNear))
	return a
}

// NewPhaseIISUMAlerter builds the SUM variant of Phase II: the same
// DTHR=1500ft, ZTHR=450ft, TTHR=0, TCOA=0 thresholds as
// NewPhaseIISingleBandAlerter, on WCV_TAUMOD_SUM so the conflict test
// accounts for position/velocity uncertainty, uniform (45,75)s — spec.md
// §6, matching the corrected base preset's thresholds it's the SUM variant
// of.
func NewPhaseIISUMAlerter(hsigma, vsigma, confidence float64) *Alerter {
	a := NewAlerter("WC_SC_228_Phase_II_SUM")
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMODSUM(ft(1500), ft(450), 0, 0, hsigma, vsigma, confidence), 45, 75, RegionMid))
	a.AddLevel(NewAlertThresholds(
		wcv.NewWCVTAUMODSUM(ft(1500), ft(450), 0, 0, hsigma, vsigma, confidence), 45, 75, RegionNear))
	return a
}

// NewTCASIIAlerter builds the legacy TCAS II preset: a TA level at NONE
// and an RA level at NEAR, both with alerting time 0 (an RA/TA is a
// current-violation test, not a lookahead one) — spec.md §6. Both levels
// use the same NewTCAS3D detector (tau, HMD filter and ZTHR); there is no
// separate TA table, so the TA level fires exactly when the RA level does.
func NewTCASIIAlerter(ownshipAltitude float64) *Alerter {
	a := NewAlerter("TCAS_II")
	a.AddLevel(NewAlertThresholds(wcv.NewTCAS3D(ownshipAltitude), 0, 0, RegionNone))
	a.AddLevel(NewAlertThresholds(wcv.NewTCAS3D(ownshipAltitude), 0, 0, RegionNear))
	return a
}
