// traffic/state.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package traffic holds the ownship/intruder kinematic state (spec.md §3,
// component C4) and the wind correction that turns a ground velocity into
// an air velocity.
package traffic

import (
	"daidalus/math"
	"daidalus/wcv"
)

// Role distinguishes the ownship from an intruder in a TrafficState list.
type Role int

const (
	RoleOwnship Role = iota
	RoleIntruder
)

// Uncertainty is the optional position/velocity covariance a SUM-aware
// detector consumes (spec.md §3's SUMData), already expressed as 1-sigma
// values in the engine's native units (meters, m/s).
type Uncertainty struct {
	HorizontalPositionSigma float64
	VerticalPositionSigma   float64
	HorizontalVelocitySigma float64
	VerticalVelocitySigma   float64
}

// WCV converts u to the detector-side view wcv.ConflictDetectionFor
// consumes, or nil if u itself is nil — so a State with no configured
// uncertainty falls back to the plain conflict test with no special
// casing at the call site.
func (u *Uncertainty) WCV() *wcv.Uncertainty {
	if u == nil {
		return nil
	}
	return &wcv.Uncertainty{
		HorizontalPositionSigma: u.HorizontalPositionSigma,
		VerticalPositionSigma:   u.VerticalPositionSigma,
		HorizontalVelocitySigma: u.HorizontalVelocitySigma,
		VerticalVelocitySigma:   u.VerticalVelocitySigma,
	}
}

// State is one aircraft's kinematic state at the orchestrator's current
// time (spec.md §3's TrafficState). Position is relative ENU meters
// against whatever local origin the caller has chosen; GroundVelocity and
// AirVelocity are both meters/second, AirVelocity following from
// GroundVelocity by ApplyWind.
type State struct {
	Id             string
	Position       math.Vector3
	GroundVelocity math.Vector3
	AirVelocity    math.Vector3
	Role           Role
	AlerterIndex   int
	Uncertainty    *Uncertainty
	Time           float64
}

// NewState constructs a State with AirVelocity equal to GroundVelocity
// (zero wind); call ApplyWind afterward once a wind estimate is known.
func NewState(id string, role Role, pos, groundVelocity math.Vector3, t float64) *State {
	return &State{
		Id:             id,
		Position:       pos,
		GroundVelocity: groundVelocity,
		AirVelocity:    groundVelocity,
		Role:           role,
		AlerterIndex:   1,
		Time:           t,
	}
}

// RelativePosition returns the position of other relative to s (other -
// s), the "s" vector wcv.Detector.ConflictDetection expects.
func (s *State) RelativePosition(other *State) math.Vector3 {
	return math.Sub3(other.Position, s.Position)
}

// Copy returns a deep copy (Uncertainty included, since it's pointed-to).
func (s *State) Copy() *State {
	cp := *s
	if s.Uncertainty != nil {
		u := *s.Uncertainty
		cp.Uncertainty = &u
	}
	return &cp
}
