// hysteresis/alerting.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hysteresis

import cache "github.com/patrickmn/go-cache"

// alertMemory is one intruder's M-of-N filter plus persistence state,
// stored in AlertingHysteresis's per-id cache.
type alertMemory struct {
	filter       *MofN
	lastOutput   int
	lastTime     float64
	persistUntil float64
}

// AlertingHysteresis applies M-of-N then persistence to scalar alert
// levels, one independent filter per intruder id (spec.md §4.8). The
// store mirrors the teacher's patrickmn/go-cache-backed ICAO-recency
// cache in mode_s/decoder.go: a small TTL'd map keyed by an aircraft
// identifier. Simulation time, not wall clock, drives the reset-on-gap
// rule, so entries never expire on their own — Update wipes them itself
// when current_time warrants it, and the cache's own TTL is disabled.
type AlertingHysteresis struct {
	m, n                            int
	hysteresisTime, persistenceTime float64
	store                           *cache.Cache
}

// NewAlertingHysteresis constructs a filter with M-of-N parameters m/n
// and timing parameters hysteresisTime (T_h)/persistenceTime (T_p).
func NewAlertingHysteresis(m, n int, hysteresisTime, persistenceTime float64) *AlertingHysteresis {
	return &AlertingHysteresis{
		m: m, n: n,
		hysteresisTime:  hysteresisTime,
		persistenceTime: persistenceTime,
		store:           cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Update feeds one intruder's raw alert level at time t and returns the
// hysteresis-smoothed output (spec.md §4.8's AlertingHysteresis).
// Repeated calls at the same t return the cached output unchanged
// (spec.md §8 property 6) rather than re-sampling the M-of-N filter.
func (h *AlertingHysteresis) Update(id string, level int, t float64) int {
	var mem *alertMemory
	if raw, found := h.store.Get(id); found {
		mem = raw.(*alertMemory)
		if t == mem.lastTime {
			return mem.lastOutput
		}
		if t < mem.lastTime || t-mem.lastTime > h.hysteresisTime {
			mem = nil
		}
	}
	if mem == nil {
		mem = &alertMemory{filter: NewMofN(h.m, h.n)}
	}

	mem.filter.Add(level)
	output := mem.filter.Value()
	if output < mem.lastOutput && t < mem.persistUntil {
		output = mem.lastOutput
	} else {
		mem.persistUntil = t + h.persistenceTime
	}
	mem.lastOutput = output
	mem.lastTime = t
	h.store.Set(id, mem, cache.NoExpiration)
	return output
}

// Reset wipes one intruder's memory (e.g. when it's dropped from the
// traffic list).
func (h *AlertingHysteresis) Reset(id string) {
	h.store.Delete(id)
}

// ResetAll wipes every intruder's memory (spec.md §4.9: changing
// parameters invalidates all hysteresis state).
func (h *AlertingHysteresis) ResetAll() {
	h.store.Flush()
}
