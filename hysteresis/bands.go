// hysteresis/bands.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hysteresis

import cache "github.com/patrickmn/go-cache"

// Resolution is a persisted directional resolution value (spec.md §4.8
// layer 3): either side may be unbounded, matching BandsRange's
// possibly-±∞ up/low resolutions.
type Resolution struct {
	Value float64
	Valid bool
}

// bandsMemory is one (aircraft, axis) pair's hysteresis state: the
// current-value severity filter, the last conflict region seen at the
// current value and when it must stop being forced, the persisted
// up/low resolutions and when they expire, and which side is preferred.
type bandsMemory struct {
	severity     *MofN
	lastTime     float64
	region       int
	regionUntil  float64
	up, low      Resolution
	resUntil     float64
	preferRight  bool
	haveInit     bool
}

// BandsHysteresis applies the four layers spec.md §4.8 describes for
// bands — per-color-value M-of-N, conflict-region persistence,
// resolution persistence, preferred-direction persistence — to one axis
// of one aircraft, keyed by id the same way AlertingHysteresis keys its
// memory. Layer 1 is simplified here from "one M-of-N queue per
// ColorValue breakpoint" to a single M-of-N queue over the severity
// region observed at the aircraft's current axis value each tick: the
// breakpoint list for a kinematic axis is recomputed from scratch every
// refresh (there is no stable per-breakpoint identity to carry a queue
// across ticks against), whereas the severity at "where the aircraft
// actually is" is a well-defined scalar time series. The remaining three
// layers operate exactly as specified.
type BandsHysteresis struct {
	m, n                             int
	hysteresisTime, persistenceTime  float64
	delta, nfactor                   float64
	store                            *cache.Cache
}

// NewBandsHysteresis constructs a per-axis bands filter. delta is the
// tolerance band §4.8 layer 3/4 uses when comparing resolution values
// and opportunities; nfactor is the tightening factor applied to the
// persistence window for resolutions.
func NewBandsHysteresis(m, n int, hysteresisTime, persistenceTime, delta, nfactor float64) *BandsHysteresis {
	return &BandsHysteresis{
		m: m, n: n,
		hysteresisTime:  hysteresisTime,
		persistenceTime: persistenceTime,
		delta:           delta,
		nfactor:         nfactor,
		store:           cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

func (h *BandsHysteresis) memory(key string) (*bandsMemory, bool) {
	raw, found := h.store.Get(key)
	if !found {
		return nil, false
	}
	return raw.(*bandsMemory), true
}

// Severity feeds the raw severity region observed at the aircraft's
// current axis value (layer 1) and returns the M-of-N-filtered value.
func (h *BandsHysteresis) Severity(key string, region int, t float64) int {
	mem, found := h.memory(key)
	if !found || t < mem.lastTime || t-mem.lastTime > h.hysteresisTime {
		mem = &bandsMemory{severity: NewMofN(h.m, h.n)}
	}
	if found && t == mem.lastTime {
		return mem.severity.Value()
	}
	mem.severity.Add(region)
	mem.lastTime = t
	h.store.Set(key, mem, cache.NoExpiration)
	return mem.severity.Value()
}

// ConflictRegion applies layer 2: raw is the region §4.2 currently
// reports covering the aircraft's value. Once a region has been forced
// for regionUntil, it keeps overriding raw until a strictly more severe
// region arrives or the window elapses, at which point raw takes over
// and a fresh window opens.
func (h *BandsHysteresis) ConflictRegion(key string, raw int, t float64) int {
	mem, found := h.memory(key)
	if !found {
		mem = &bandsMemory{severity: NewMofN(h.m, h.n)}
	}
	if found && raw <= mem.region && t < mem.regionUntil {
		return mem.region
	}
	mem.region = raw
	mem.regionUntil = t + h.persistenceTime
	mem.lastTime = t
	h.store.Set(key, mem, cache.NoExpiration)
	return raw
}

// Resolution applies layer 3: raw is the resolution §4.6 currently
// computes on one side (up or low). The previous resolution persists
// as long as it stays monotonically on the same side of val (i.e. raw,
// if valid, hasn't crossed past it by more than delta) and the window
// (persistenceTime, tightened by nfactor) hasn't elapsed.
func (h *BandsHysteresis) Resolution(key string, raw Resolution, isUp bool, val, t float64) Resolution {
	mem, found := h.memory(key)
	if !found {
		mem = &bandsMemory{severity: NewMofN(h.m, h.n)}
	}
	window := h.persistenceTime / h.nfactor

	var prev Resolution
	if isUp {
		prev = mem.up
	} else {
		prev = mem.low
	}

	keep := found && prev.Valid && t < mem.resUntil
	if keep && raw.Valid {
		sameSide := (isUp && raw.Value >= val-h.delta) || (!isUp && raw.Value <= val+h.delta)
		if !sameSide {
			keep = false
		}
	}

	result := raw
	if keep {
		result = prev
	} else {
		mem.resUntil = t + window
	}
	if isUp {
		mem.up = result
	} else {
		mem.low = result
	}
	mem.lastTime = t
	h.store.Set(key, mem, cache.NoExpiration)
	return result
}

// PreferredDirection applies layer 4: rightOpportunity/leftOpportunity
// are whatever scalar metric the caller uses to rank a side (e.g. free
// heading span to that side). The preferred side only swaps once the
// challenger's opportunity exceeds the incumbent's by more than delta.
func (h *BandsHysteresis) PreferredDirection(key string, rightOpportunity, leftOpportunity float64) bool {
	mem, found := h.memory(key)
	if !found {
		mem = &bandsMemory{severity: NewMofN(h.m, h.n), preferRight: rightOpportunity >= leftOpportunity}
		mem.haveInit = true
		h.store.Set(key, mem, cache.NoExpiration)
		return mem.preferRight
	}
	if mem.preferRight {
		if leftOpportunity > rightOpportunity+h.delta {
			mem.preferRight = false
		}
	} else {
		if rightOpportunity > leftOpportunity+h.delta {
			mem.preferRight = true
		}
	}
	h.store.Set(key, mem, cache.NoExpiration)
	return mem.preferRight
}

// Reset wipes one (aircraft, axis) key's memory.
func (h *BandsHysteresis) Reset(key string) {
	h.store.Delete(key)
}

// ResetAll wipes every key's memory (spec.md §4.9: parameter changes
// invalidate all hysteresis state).
func (h *BandsHysteresis) ResetAll() {
	h.store.Flush()
}
