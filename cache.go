// cache.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package daidalus

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"daidalus/alerting"
)

// RegionInterval is a [TIn,TOut] time-to-loss window for one conflict
// region (spec.md §4.9), ±Inf meaning "never enters"/"never clears"
// within the lookahead.
type RegionInterval struct {
	TIn, TOut float64
}

// regionCacheEntry is one conflict region's refresh() result (spec.md
// §4.9): which intruders are in conflict at that region under some
// alerter level, the aggregate time-in/out across them, and whether
// this region's bands computation is worth running at all.
type regionCacheEntry struct {
	Intruders    []*intruderRef
	Interval     RegionInterval
	BandsEnabled bool
}

type intruderRef struct {
	Id    string
	Level int
}

// regionCache is the orchestrator's 3-slot cache indexed by conflict
// region (spec.md §4.9: "a 3-slot cache indexed by conflict region
// (NEAR, MID, FAR)"), grounded on the teacher's expirable.LRU cache in
// wx/manifest.go — here fixed at exactly the three non-trivial
// alerting.Region values and purged wholesale whenever the orchestrator
// goes stale, rather than expiring entries on a timer (there is no wall
// clock in the DAA core, spec.md §5).
type regionCache struct {
	lru *lru.Cache[alerting.Region, *regionCacheEntry]
}

func newRegionCache() *regionCache {
	c, _ := lru.New[alerting.Region, *regionCacheEntry](3)
	return &regionCache{lru: c}
}

func (c *regionCache) get(r alerting.Region) (*regionCacheEntry, bool) {
	return c.lru.Get(r)
}

func (c *regionCache) set(r alerting.Region, e *regionCacheEntry) {
	c.lru.Add(r, e)
}

func (c *regionCache) purge() {
	c.lru.Purge()
}
