// alerting/alerter.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package alerting

import (
	"daidalus/math"
	"daidalus/wcv"
)

// Alerter is an identifier plus an ordered, 1-indexed list of
// AlertThresholds (spec.md §3/§4.3). Internally the list is stored
// 0-based; every public accessor translates.
type Alerter struct {
	Id     string
	levels []AlertThresholds
}

// NewAlerter constructs an empty alerter; levels are added in increasing
// severity order via AddLevel.
func NewAlerter(id string) *Alerter {
	return &Alerter{Id: id}
}

// AddLevel appends a level and returns its 1-based index.
func (a *Alerter) AddLevel(t AlertThresholds) int {
	a.levels = append(a.levels, t)
	return len(a.levels)
}

// NumLevels returns how many levels this alerter has.
func (a *Alerter) NumLevels() int { return len(a.levels) }

// GetLevel returns level i (1-based); the zero value and false if i is
// out of range.
func (a *Alerter) GetLevel(i int) (AlertThresholds, bool) {
	if i < 1 || i > len(a.levels) {
		return AlertThresholds{}, false
	}
	return a.levels[i-1], true
}

// SetLevel replaces level i (1-based); a no-op if i is out of range.
func (a *Alerter) SetLevel(i int, t AlertThresholds) {
	if i < 1 || i > len(a.levels) {
		return
	}
	a.levels[i-1] = t
}

// GetDetector returns level i's detector (1-based), or nil if out of
// range or unset.
func (a *Alerter) GetDetector(i int) wcv.Detector {
	t, ok := a.GetLevel(i)
	if !ok {
		return nil
	}
	return t.Detector
}

// MostSevereAlertLevel returns the highest (1-based) level index, or 0 if
// this alerter has no levels.
func (a *Alerter) MostSevereAlertLevel() int { return len(a.levels) }

// AlertLevelForRegion returns the first (least-severe) level whose Region
// matches r, or -1 if none does. This is the "later revision" half of the
// spec's Open Question on the not-found sentinel (see DESIGN.md): -1, not
// 0, keeps 0 reserved for "no alert".
func (a *Alerter) AlertLevelForRegion(r Region) int {
	for i, lvl := range a.levels {
		if lvl.Region == r {
			return i + 1
		}
	}
	return -1
}

// AlertLevel runs the plain (non-spread) half of spec.md §4.3's per-tick
// decision: iterate levels from most- to least-severe, and return the
// first whose detector reports a conflict within
// [0, min(lookahead, alerting_time)]. Spread-widened tests need the bands
// machinery and are layered on by the orchestrator, which has access to
// both this package and bands.
func (a *Alerter) AlertLevel(s, vo, vi math.Vector3, lookahead float64) int {
	for i := len(a.levels) - 1; i >= 0; i-- {
		if a.levels[i].fires(s, vo, vi, lookahead) {
			return i + 1
		}
	}
	return 0
}

// Copy returns a deep-ish copy: the level slice and each level's detector
// are copied independently so mutating the copy never aliases the
// original (spec.md §9: presets must be safely shareable across multiple
// alerters).
func (a *Alerter) Copy() *Alerter {
	cp := &Alerter{Id: a.Id, levels: make([]AlertThresholds, len(a.levels))}
	for i, lvl := range a.levels {
		cp.levels[i] = lvl.Copy()
	}
	return cp
}

// MonotoneAt checks the Alerter invariant from spec.md §3 for one query:
// conflict detection is monotone in severity (level i+1 firing implies
// level i fires). This is a property of the inputs, not something
// verifiable once at construction time, so it's exposed for tests rather
// than enforced in AddLevel.
func (a *Alerter) MonotoneAt(s, vo, vi math.Vector3, lookahead float64) bool {
	fired := false
	for i := len(a.levels) - 1; i >= 0; i-- {
		f := a.levels[i].fires(s, vo, vi, lookahead)
		if fired && !f {
			return false
		}
		fired = fired || f
	}
	return true
}
