// bands/direction.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"daidalus/alerting"
	"daidalus/math"
)

// DirectionParams is the direction axis's own-state and kinematic
// parameters (spec.md §4.7's Direction row).
type DirectionParams struct {
	Step        float64 // dir_step, radians
	TurnRate    float64 // rad/s, used when !Instantaneous
	LeftSpread  float64 // relative spread, radians
	RightSpread float64
}

// heading returns the aviation heading (clockwise from north) of a
// horizontal velocity vector.
func heading(v math.Vector3) float64 {
	return math.NormalizeAngle(math.Atan2(v[0], v[1]))
}

// Direction computes the direction axis's colored bands (spec.md §4.7):
// own_val is the ownship's current heading, stepped by dp.Step out to
// dp.LeftSpread/dp.RightSpread, painted onto the full [0,2π) circle.
func Direction(p AxisParams, dp DirectionParams) List {
	speed := math.Length2(math.Horizontal(p.Ownship.AirVelocity))
	vz := p.Ownship.AirVelocity[2]
	own := heading(p.Ownship.AirVelocity)

	maxRight := int(dp.RightSpread/dp.Step) + 1
	maxLeft := int(dp.LeftSpread/dp.Step) + 1

	rollout := func(k, dir int) Profile {
		target := math.NormalizeAngle(own + float64(dir)*float64(k)*dp.Step)
		if p.Instantaneous {
			return holdProfile(math.Vector3{speed * math.Sin(target), speed * math.Cos(target), vz}, p.Lookahead)
		}
		return turnProfile(own, target, dp.TurnRate, speed, vz, p.Lookahead)
	}

	base := NewFlat(0, math.TwoPi, alerting.RegionNone)
	return paintLevels(p, base, own, dp.Step, math.TwoPi, maxLeft, maxRight, rollout)
}
