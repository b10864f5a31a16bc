// core.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package daidalus is the orchestrator (spec.md §4.9, component C10): it
// holds ownship/traffic state, wires the detector/alerting/bands/urgency/
// hysteresis layers together, and exposes the per-tick query surface
// (alert levels, conflicting traffic per region, bands, resolutions,
// recovery information) a caller drives every simulation step.
package daidalus

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/brunoga/deep"

	"daidalus/alerting"
	"daidalus/bands"
	"daidalus/hysteresis"
	"daidalus/log"
	"daidalus/math"
	"daidalus/traffic"
	"daidalus/urgency"
	"daidalus/wcv"
)

// ErrUnknownAircraft is returned by mutating calls that take an aircraft
// id the orchestrator isn't currently tracking.
var ErrUnknownAircraft = errors.New("daidalus: unknown aircraft id")

// regions is the severity order refresh() walks, most severe first
// (spec.md §4.9: "iterating conflict regions (most-severe first)").
var regions = []alerting.Region{alerting.RegionNear, alerting.RegionMid, alerting.RegionFar}

// Engine is one ownship's DAA instance (spec.md §4.9). It is not safe for
// concurrent use (spec.md §5): callers wanting parallelism shard by
// ownship, one Engine per aircraft.
type Engine struct {
	ownship     *traffic.State
	intruders   []*traffic.State
	wind        math.Vector3
	currentTime float64
	params      *Parameters

	defaultAlerter *alerting.Alerter
	alerters       map[int]*alerting.Alerter

	muaStrategy urgency.Strategy
	epsilons    urgency.Epsilons

	alertHysteresis *hysteresis.AlertingHysteresis
	bandsHysteresis *hysteresis.BandsHysteresis

	cache           *regionCache
	stale           bool
	staleHysteresis bool

	logger *log.Logger
}

// SetLogger installs a logger for per-tick diagnostics (cache refreshes,
// hysteresis resets, degenerate recovery geometry). A nil logger (the
// default) silences Debug/Info and still reaches slog's package default
// for Warn/Error, matching *log.Logger's own nil-tolerant contract.
func (e *Engine) SetLogger(l *log.Logger) {
	e.logger = l
}

// NewEngine constructs an orchestrator for one ownship, using defaultAlerter
// for any traffic whose State.AlerterIndex doesn't name a registered
// alerter (spec.md §3: AlerterIndex is "1-based into the alerter table;
// 0 means no alerting for this intruder").
func NewEngine(params *Parameters, defaultAlerter *alerting.Alerter) *Engine {
	e := &Engine{
		params:         params,
		defaultAlerter: defaultAlerter,
		alerters:       map[int]*alerting.Alerter{1: defaultAlerter},
		muaStrategy:    urgency.NoneStrategy{},
		cache:          newRegionCache(),
		stale:          true,
	}
	e.rebuildHysteresis()
	return e
}

func (e *Engine) rebuildHysteresis() {
	m := int(e.params.GetOrDefault("alerting_m", 1))
	n := int(e.params.GetOrDefault("alerting_n", 1))
	th := e.params.GetOrDefault("hysteresis_time", 5)
	tp := e.params.GetOrDefault("persistence_time", 4)
	e.alertHysteresis = hysteresis.NewAlertingHysteresis(m, n, th, tp)
	e.bandsHysteresis = hysteresis.NewBandsHysteresis(m, n, th, tp, 1e-3, 1)
}

// SetAlerter registers an alerter at a 1-based index (spec.md §6's
// alert_<i>_<field> namespace, collapsed here to registering the whole
// built Alerter at once rather than field-by-field parsing).
func (e *Engine) SetAlerter(index int, a *alerting.Alerter) {
	e.alerters[index] = a
	e.stale = true
}

// SetMUAStrategy installs the most-urgent-aircraft strategy recovery
// bands repulsive checks coordinate against (spec.md §4.4).
func (e *Engine) SetMUAStrategy(s urgency.Strategy) {
	e.muaStrategy = s
	e.stale = true
}

func (e *Engine) alerterFor(s *traffic.State) *alerting.Alerter {
	if a, ok := e.alerters[s.AlerterIndex]; ok {
		return a
	}
	return e.defaultAlerter
}

// SetOwnshipState rotates pos/vel into the air frame by the current wind,
// advances current_time, and invalidates the non-hysteresis cache (spec.md
// §4.9's set_ownship_state transition).
func (e *Engine) SetOwnshipState(id string, pos, vel math.Vector3, t float64) {
	s := traffic.NewState(id, traffic.RoleOwnship, pos, vel, t)
	s.AlerterIndex = 1
	if e.ownship != nil {
		s.AlerterIndex = e.ownship.AlerterIndex
	}
	s.ApplyWind(e.wind)
	e.ownship = s
	e.currentTime = t
	e.markStale(false)
}

// SetTrafficState records a report (id,pos,vel) taken at t, linearly
// propagated at its ground velocity to current_time before being added or
// replacing the existing entry (spec.md §4.9's set_traffic_state: a
// caller reporting one intruder at a time naturally lags the ownship
// tick, so the report is dead-reckoned forward to match).
func (e *Engine) SetTrafficState(id string, pos, vel math.Vector3, t float64) {
	s := traffic.NewState(id, traffic.RoleIntruder, pos, vel, t)
	s.AlerterIndex = 1
	propagate(s, e.currentTime)
	found := false
	for i, in := range e.intruders {
		if in.Id == id {
			s.AlerterIndex = in.AlerterIndex
			e.intruders[i] = s
			found = true
			break
		}
	}
	if !found {
		e.intruders = append(e.intruders, s)
	}
	s.ApplyWind(e.wind)
	e.markStale(false)
}

// propagate dead-reckons s from its own Time to t at its ground velocity
// (spec.md §4.9's "linearly propagate to current_time").
func propagate(s *traffic.State, t float64) {
	dt := t - s.Time
	if dt == 0 {
		return
	}
	s.Position = math.Add3(s.Position, math.Scale3(s.GroundVelocity, dt))
	s.Time = t
}

// SetWindVelocity re-derives every aircraft's AirVelocity from the new
// wind estimate (spec.md §4.9).
func (e *Engine) SetWindVelocity(wind math.Vector3) {
	e.wind = wind
	if e.ownship != nil {
		e.ownship.ApplyWind(wind)
	}
	traffic.ApplyWindToAll(e.intruders, wind)
	e.markStale(false)
}

// ResetOwnship swaps intruder index i into the ownship role, demoting the
// previous ownship to an intruder, and re-links every remaining intruder
// against the new ownship frame (spec.md §4.9's reset_ownship). The old
// ownship and swapped-in intruder are deep-copied first so the swap never
// aliases state a caller might still be holding a pointer to, the same
// defensive-copy discipline the teacher's scenario handoff uses in
// server/scenario.go.
func (e *Engine) ResetOwnship(i int) bool {
	if i < 0 || i >= len(e.intruders) || e.ownship == nil {
		return false
	}
	newOwn := deep.MustCopy(e.intruders[i])
	oldOwn := deep.MustCopy(e.ownship)
	newOwn.Role, oldOwn.Role = traffic.RoleOwnship, traffic.RoleIntruder
	e.intruders[i] = oldOwn
	e.ownship = newOwn
	e.markStale(true)
	return true
}

// SetParameters replaces the parameter dictionary. Changing parameters
// clears hysteresis memory as well as the conflict-region cache (spec.md
// §4.9: "Changing parameters -> stale(hysteresis=true)").
func (e *Engine) SetParameters(p *Parameters) {
	e.params = p
	e.rebuildHysteresis()
	e.markStale(true)
}

// markStale invalidates the conflict-region cache, and — when
// resetHysteresis is true — also wipes the M-of-N/persistence memory
// (spec.md §4.9/§5).
func (e *Engine) markStale(resetHysteresis bool) {
	e.stale = true
	if resetHysteresis {
		e.staleHysteresis = true
	}
}

// refresh lazily recomputes the conflict-region cache (spec.md §4.9):
// for each region most-severe first, find every alert level across every
// alerter that maps to that region, and test every intruder against it.
func (e *Engine) refresh() {
	if !e.stale {
		return
	}
	// refresh is every read method's entry point into recomputation, the
	// same role the teacher's RPC dispatcher methods play for a sim tick —
	// so it gets the same crash boundary.
	defer e.logger.CatchAndSave()
	e.logger.Debug("refreshing conflict-region cache", "current_time", e.currentTime, "intruders", len(e.intruders))
	if e.staleHysteresis {
		e.logger.Debug("resetting hysteresis memory")
		e.alertHysteresis.ResetAll()
		e.bandsHysteresis.ResetAll()
		e.staleHysteresis = false
	}
	e.cache.purge()
	if e.ownship == nil {
		e.stale = false
		return
	}
	lookahead := e.params.GetOrDefault("lookahead_time", 180)

	for _, region := range regions {
		entry := &regionCacheEntry{Interval: RegionInterval{TIn: math.Infinity, TOut: math.NegInfinity}}
		for _, in := range e.intruders {
			a := e.alerterFor(in)
			if in.AlerterIndex == 0 || a == nil {
				continue
			}
			level := a.AlertLevelForRegion(region)
			if level < 0 {
				continue
			}
			thresholds, ok := a.GetLevel(level)
			if !ok || thresholds.Detector == nil {
				continue
			}
			horizon := thresholds.AlertingTime
			if lookahead < horizon {
				horizon = lookahead
			}
			s := e.ownship.RelativePosition(in)
			cd := wcv.ConflictDetectionFor(thresholds.Detector, s, e.ownship.AirVelocity, in.AirVelocity, 0, horizon, in.Uncertainty.WCV())
			if !cd.Conflict() {
				continue
			}
			entry.Intruders = append(entry.Intruders, &intruderRef{Id: in.Id, Level: level})
			entry.BandsEnabled = true
			if cd.TIn < entry.Interval.TIn {
				entry.Interval.TIn = cd.TIn
			}
			if cd.TOut > entry.Interval.TOut {
				entry.Interval.TOut = cd.TOut
			}
		}
		e.cache.set(region, entry)
	}
	e.stale = false
}

// AlertLevel returns the hysteresis-filtered alert level for intruder id
// (spec.md §4.9/§6: "alert_level in Z>=0, with -1 meaning invalid index"),
// or -1 if id isn't currently tracked.
func (e *Engine) AlertLevel(id string) int {
	in := e.findIntruder(id)
	if in == nil {
		return -1
	}
	a := e.alerterFor(in)
	raw := 0
	if a != nil && in.AlerterIndex != 0 {
		lookahead := e.params.GetOrDefault("lookahead_time", 180)
		for i := a.NumLevels(); i >= 1; i-- {
			level, ok := a.GetLevel(i)
			if ok && e.levelFires(level, in, lookahead) {
				raw = i
				break
			}
		}
	}
	filtered := e.alertHysteresis.Update(id, raw, e.currentTime)
	if filtered < 0 {
		// The M-of-N filter holds too few samples to support any level yet.
		filtered = 0
	}
	return filtered
}

// levelFires implements the full per-level test of spec.md §4.3's
// alert-level decision: the plain conflict_detection half (using the
// intruder's own Uncertainty when the level's detector is SUM-aware), OR —
// for whichever axes level.Spread enables — the maneuver-spread half:
// construct that axis's 1-axis bands problem (spec.md §4.5) and ask
// whether the entire reachable spread is also trapped in conflict. The
// alerting package's own Alerter.AlertLevel only runs the first half,
// since it doesn't depend on the bands package; this orchestrator has
// both, so it's where the two are combined.
func (e *Engine) levelFires(level alerting.AlertThresholds, in *traffic.State, lookahead float64) bool {
	if level.Detector == nil {
		return false
	}
	horizon := level.AlertingTime
	if lookahead < horizon {
		horizon = lookahead
	}
	s := e.ownship.RelativePosition(in)
	cd := wcv.ConflictDetectionFor(level.Detector, s, e.ownship.AirVelocity, in.AirVelocity, 0, horizon, in.Uncertainty.WCV())
	if cd.Conflict() {
		return true
	}

	spread := level.Spread
	if !spread.DirEnabled && !spread.HSEnabled && !spread.VSEnabled && !spread.AltEnabled {
		return false
	}
	p := e.axisParams(e.alerterFor(in), false)
	p.Intruders = []*traffic.State{in}
	if spread.DirEnabled && bands.DirectionSpreadConflict(p, e.directionParams(), level, spread.Dir) {
		return true
	}
	if spread.HSEnabled && bands.SpeedSpreadConflict(p, e.speedParams(), level, spread.HS) {
		return true
	}
	if spread.VSEnabled && bands.VSpeedSpreadConflict(p, e.vspeedParams(), level, spread.VS) {
		return true
	}
	if spread.AltEnabled && bands.AltitudeSpreadConflict(p, e.altitudeParams(), level, spread.Alt) {
		return true
	}
	return false
}

// RemoveTraffic drops tracked intruder id and its alerting-hysteresis
// memory, returning ErrUnknownAircraft if id isn't currently tracked.
// spec.md §4.9's set_traffic_state only ever adds or replaces; this is a
// supplement for a caller that needs to stop tracking an aircraft that
// has left the scenario, mirroring the reference DAIDALUS API's
// removeTrafficState.
func (e *Engine) RemoveTraffic(id string) error {
	for i, in := range e.intruders {
		if in.Id == id {
			e.intruders = append(e.intruders[:i], e.intruders[i+1:]...)
			e.alertHysteresis.Reset(id)
			e.markStale(false)
			return nil
		}
	}
	return fmt.Errorf("remove traffic %q: %w", id, ErrUnknownAircraft)
}

func (e *Engine) findIntruder(id string) *traffic.State {
	for _, in := range e.intruders {
		if in.Id == id {
			return in
		}
	}
	return nil
}

// ConflictingAircraft returns the ids in conflict with the ownship under
// region, per the cached refresh() result (spec.md §4.9).
func (e *Engine) ConflictingAircraft(region alerting.Region) []string {
	e.refresh()
	entry, ok := e.cache.get(region)
	if !ok {
		return nil
	}
	ids := make([]string, len(entry.Intruders))
	for i, ref := range entry.Intruders {
		ids[i] = ref.Id
	}
	return ids
}

// TimeToLossInterval returns region's cached time-in/out window, and
// whether any intruder is currently in conflict under that region.
func (e *Engine) TimeToLossInterval(region alerting.Region) (RegionInterval, bool) {
	e.refresh()
	entry, ok := e.cache.get(region)
	if !ok || len(entry.Intruders) == 0 {
		return RegionInterval{}, false
	}
	return entry.Interval, true
}

// BandsEnabled reports whether any intruder is currently driving region's
// cache slot — spec.md §4.9's "bands-enabled flag" — letting a caller
// skip the (comparatively expensive) per-axis bands scan on a tick where
// nothing is in conflict.
func (e *Engine) BandsEnabled(region alerting.Region) bool {
	e.refresh()
	entry, ok := e.cache.get(region)
	return ok && entry.BandsEnabled
}

// axisParams builds the bands.AxisParams shared by every per-axis query,
// deriving the urgency epsilons from the currently-configured strategy
// (spec.md §4.4 feeding §4.7).
func (e *Engine) axisParams(a *alerting.Alerter, instantaneous bool) bands.AxisParams {
	e.epsilons = urgency.Derive(e.muaStrategy, e.ownship, e.intruders)
	var mua *traffic.State
	if e.epsilons.MUAIndex >= 0 && e.epsilons.MUAIndex < len(e.intruders) {
		mua = e.intruders[e.epsilons.MUAIndex]
	}
	return bands.AxisParams{
		Alerter:       a,
		Ownship:       e.ownship,
		Intruders:     e.intruders,
		Lookahead:     e.params.GetOrDefault("lookahead_time", 180),
		Instantaneous: instantaneous,
		Epsilons:      e.epsilons,
		MUA:           mua,
	}
}

// directionParams, speedParams, vspeedParams, and altitudeParams build
// each axis's own parameter struct from the configured defaults (spec.md
// §4.7); shared between the *Bands query methods and levelFires's
// maneuver-spread test so both read the same kinematic rollout shape.
func (e *Engine) directionParams() bands.DirectionParams {
	return bands.DirectionParams{
		Step:        e.params.GetOrDefault("step_hdir", math.Radians(1)),
		TurnRate:    e.params.GetOrDefault("turn_rate", math.Radians(3)),
		LeftSpread:  e.params.GetOrDefault("left_hdir", math.Pi),
		RightSpread: e.params.GetOrDefault("right_hdir", math.Pi),
	}
}

func (e *Engine) speedParams() bands.SpeedParams {
	return bands.SpeedParams{
		Step:  e.params.GetOrDefault("step_hs", Knots(1)),
		Accel: e.params.GetOrDefault("horizontal_accel", 2),
		Min:   e.params.GetOrDefault("min_hs", Knots(150)),
		Max:   e.params.GetOrDefault("max_hs", Knots(700)),
	}
}

func (e *Engine) vspeedParams() bands.VSpeedParams {
	return bands.VSpeedParams{
		Step:  e.params.GetOrDefault("step_vs", Feet(10)/60),
		Accel: e.params.GetOrDefault("vertical_accel", 2),
		Min:   e.params.GetOrDefault("min_vs", -Feet(6000)/60),
		Max:   e.params.GetOrDefault("max_vs", Feet(6000)/60),
	}
}

func (e *Engine) altitudeParams() bands.AltitudeParams {
	return bands.AltitudeParams{
		Step:  e.params.GetOrDefault("step_alt", Feet(50)),
		VS:    e.params.GetOrDefault("vertical_rate", Feet(1000)/60),
		Accel: e.params.GetOrDefault("vertical_accel", 2),
		Min:   e.params.GetOrDefault("min_alt", 0),
		Max:   e.params.GetOrDefault("max_alt", Feet(50000)),
	}
}

// DirectionBands computes the direction axis's hysteresis-smoothed
// severity at the ownship's current heading, plus the raw colored
// ranges (spec.md §4.7/§4.9).
func (e *Engine) DirectionBands(instantaneous bool) ([]bands.Range, int) {
	p := e.axisParams(e.defaultAlerter, instantaneous)
	dp := e.directionParams()
	list := bands.Direction(p, dp)
	ranges := bands.MakeRangesFromColorValues(list, false)
	own := headingOf(e.ownship.AirVelocity)
	idx := bands.IndexOf(ranges, own, math.TwoPi)
	severity := severityAt(ranges, idx)
	filtered := e.bandsHysteresis.Severity("hdir", severity, e.currentTime)
	return ranges, filtered
}

// SpeedBands computes the horizontal-speed axis's hysteresis-smoothed
// severity at the ownship's current ground speed, plus raw ranges.
func (e *Engine) SpeedBands(instantaneous bool) ([]bands.Range, int) {
	p := e.axisParams(e.defaultAlerter, instantaneous)
	sp := e.speedParams()
	list := bands.Speed(p, sp)
	ranges := bands.MakeRangesFromColorValues(list, false)
	own := math.Length2(math.Horizontal(e.ownship.AirVelocity))
	idx := bands.IndexOf(ranges, own, 0)
	severity := severityAt(ranges, idx)
	filtered := e.bandsHysteresis.Severity("hs", severity, e.currentTime)
	return ranges, filtered
}

// VSpeedBands computes the vertical-speed axis's hysteresis-smoothed
// severity at the ownship's current vertical speed, plus raw ranges.
func (e *Engine) VSpeedBands(instantaneous bool) ([]bands.Range, int) {
	p := e.axisParams(e.defaultAlerter, instantaneous)
	vp := e.vspeedParams()
	list := bands.VSpeed(p, vp)
	ranges := bands.MakeRangesFromColorValues(list, false)
	own := e.ownship.AirVelocity[2]
	idx := bands.IndexOf(ranges, own, 0)
	severity := severityAt(ranges, idx)
	filtered := e.bandsHysteresis.Severity("vs", severity, e.currentTime)
	return ranges, filtered
}

// AltitudeBands computes the altitude axis's hysteresis-smoothed
// severity at the ownship's current altitude, plus raw ranges.
func (e *Engine) AltitudeBands(instantaneous bool) ([]bands.Range, int) {
	p := e.axisParams(e.defaultAlerter, instantaneous)
	ap := e.altitudeParams()
	list := bands.Altitude(p, ap)
	ranges := bands.MakeRangesFromColorValues(list, false)
	own := e.ownship.Position[2]
	idx := bands.IndexOf(ranges, own, 0)
	severity := severityAt(ranges, idx)
	filtered := e.bandsHysteresis.Severity("alt", severity, e.currentTime)
	return ranges, filtered
}

func severityAt(ranges []bands.Range, idx int) int {
	if idx < 0 || idx >= len(ranges) {
		return int(alerting.RegionUnknown)
	}
	return int(ranges[idx].Region)
}

func headingOf(v math.Vector3) float64 {
	return math.NormalizeAngle(math.Atan2(v[0], v[1]))
}

// RecoveryInfo is spec.md §6's recovery tuple: when an active loss of
// separation actually clears, how far a recovery cylinder had to shrink
// to find a conflict-free trajectory, and that cylinder's horizontal/
// vertical half-sizes at the factor clearance was found (spec.md
// §4.6/§4.9).
type RecoveryInfo struct {
	TimeToRecovery                       float64
	NFactor                              int
	HorizontalDistance, VerticalDistance float64
}

// recoveryIterations is the number of bands.RecoveryFactor bisection
// steps (spec.md §4.6's "binary reduction"); 10 halvings narrow the
// nmac-to-corrective spread to under a tenth of a percent.
const recoveryIterations = 10

// RecoveryInfo reports recovery information across every currently
// tracked intruder (spec.md §4.6/§4.9, property 8, scenarios S3/S6).
// Three cases:
//   - no intruder is in an active loss of separation (t_in==0) under its
//     alerter's most severe level right now: recovery doesn't apply,
//     time_to_recovery is NaN (S3).
//   - some intruder is: time_to_recovery is the real loss's t_out, and a
//     "recovery cylinder" (spec.md §4.6's "usually a shrunken corrective
//     cylinder") is bisected between a corrective envelope (3x the
//     configured NMAC radii, factor 0 — a fixed multiplier standing in
//     for "the alerter's own corrective volume," since Detector doesn't
//     expose a generic size accessor to read one back from) and the NMAC
//     cylinder itself (factor 1) for the smallest shrink that clears
//     every intruder within the lookahead window (S6).
//   - that bisection never clears even at the NMAC cylinder: recovery is
//     unreachable, time_to_recovery=-Inf, nfactor=-1.
func (e *Engine) RecoveryInfo() (RecoveryInfo, bool) {
	if e.ownship == nil {
		return RecoveryInfo{}, false
	}
	lookahead := e.params.GetOrDefault("lookahead_time", 180)

	activeTOut := math.NegInfinity
	active := false
	for _, in := range e.intruders {
		a := e.alerterFor(in)
		if a == nil || in.AlerterIndex == 0 {
			continue
		}
		thresholds, ok := a.GetLevel(a.NumLevels())
		if !ok || thresholds.Detector == nil {
			continue
		}
		s := e.ownship.RelativePosition(in)
		cd := wcv.ConflictDetectionFor(thresholds.Detector, s, e.ownship.AirVelocity, in.AirVelocity, 0, lookahead, in.Uncertainty.WCV())
		if cd.Conflict() && cd.TIn == 0 {
			active = true
			if cd.TOut > activeTOut {
				activeTOut = cd.TOut
			}
		}
	}
	if !active {
		return RecoveryInfo{TimeToRecovery: stdmath.NaN()}, true
	}

	dNmac := e.params.GetOrDefault("horizontal_nmac", Feet(500))
	hNmac := e.params.GetOrDefault("vertical_nmac", Feet(100))
	dEnv, hEnv := 3*dNmac, 3*hNmac
	sizeAt := func(factor float64) (float64, float64) {
		return dEnv + (dNmac-dEnv)*factor, hEnv + (hNmac-hEnv)*factor
	}

	// Bisect each intruder independently — the shrink one needs to clear
	// doesn't depend on any other — then report recovery against the
	// worst (largest-factor) one, since the whole traffic picture only
	// recovers once every intruder does.
	var factors []float64
	worst, worstOK := 0.0, false
	for _, in := range e.intruders {
		intruder := in
		clearAt := func(factor float64) bool {
			d, h := sizeAt(factor)
			cyl := wcv.NewCYL(d, h)
			s := e.ownship.RelativePosition(intruder)
			return !cyl.ConflictDetection(s, e.ownship.AirVelocity, intruder.AirVelocity, 0, lookahead).Conflict()
		}
		factor, ok := bands.RecoveryFactor(clearAt, recoveryIterations)
		if !ok {
			scoped := e.logger.With("intruder", intruder.Id, "active_t_out", activeTOut)
			scoped.Warn("recovery unreachable even at nmac size")
			scoped.DumpState("recovery unreachable even at nmac size", struct {
				Ownship  *traffic.State
				Intruder *traffic.State
			}{e.ownship, intruder})
			return RecoveryInfo{TimeToRecovery: math.NegInfinity, NFactor: -1}, false
		}
		factors = append(factors, factor)
		if !worstOK || factor > worst {
			worst, worstOK = factor, true
		}
	}
	if stats, err := bands.SummarizeRecoveryFactors(factors); err == nil && stats.Outliers > 0 {
		e.logger.Warn("one or more intruders need disproportionate recovery shrink", "stats", stats)
	}

	d, h := sizeAt(worst)
	return RecoveryInfo{
		TimeToRecovery:     activeTOut,
		NFactor:            int(worst*recoveryIterations + 0.5),
		HorizontalDistance: d,
		VerticalDistance:   h,
	}, true
}
