// params.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package daidalus

import "daidalus/math"

// Parameter is one entry of the flat name -> (value, unit) dictionary
// spec.md §6 describes: "a flat name -> (value, unit_string) map."
type Parameter struct {
	Value float64
	Unit  string
}

// Parameters is the engine's external configuration surface (spec.md §6).
// Recognized keys are documented on the constructor; unrecognized keys are
// stored and returned by Get/Set but otherwise ignored by the orchestrator
// (spec.md §7's "unknown parameter" case: store it, don't error).
type Parameters struct {
	values map[string]Parameter
}

// NewParameters builds the DO-365 Phase I-ish default dictionary: the
// values every one of the named keys in spec.md §6 needs before a first
// refresh, expressed in the engine's native meters/seconds/radians units.
func NewParameters() *Parameters {
	p := &Parameters{values: make(map[string]Parameter)}
	defaults := map[string]Parameter{
		"lookahead_time":      {180, "s"},
		"alerting_time":       {0, "s"}, // 0 means "use each level's own AlertingTime"
		"left_hdir":           {math.Pi, "rad"},
		"right_hdir":          {math.Pi, "rad"},
		"step_hdir":           {math.Radians(1), "rad"},
		"min_hs":              {Knots(150), "m/s"},
		"max_hs":              {Knots(700), "m/s"},
		"step_hs":             {Knots(1), "m/s"},
		"min_vs":              {-Feet(6000) / 60, "m/s"},
		"max_vs":              {Feet(6000) / 60, "m/s"},
		"step_vs":             {Feet(10) / 60, "m/s"},
		"min_alt":             {0, "m"},
		"max_alt":             {Feet(50000), "m"},
		"step_alt":            {Feet(50), "m"},
		"turn_rate":           {math.Radians(3), "rad/s"},
		"bank_angle":          {0, "rad"},
		"horizontal_accel":    {2, "m/s^2"},
		"vertical_accel":      {2, "m/s^2"},
		"vertical_rate":       {Feet(1000) / 60, "m/s"},
		"horizontal_nmac":     {Feet(500), "m"},
		"vertical_nmac":       {Feet(100), "m"},
		"recovery_hdir_bands": {1, "bool"},
		"recovery_hs_bands":   {1, "bool"},
		"recovery_vs_bands":   {1, "bool"},
		"recovery_alt_bands":  {1, "bool"},
		"hysteresis_time":     {5, "s"},
		"persistence_time":    {4, "s"},
		"alerting_m":          {3, "dimensionless"},
		"alerting_n":          {5, "dimensionless"},
		"conflict_crit":       {0, "bool"},
		"recovery_crit":       {0, "bool"},
		"dta_logic":           {0, "bool"},
		"dta_latitude":        {0, "deg"},
		"dta_longitude":       {0, "deg"},
		"dta_radius":          {0, "m"},
		"dta_height":          {0, "m"},
		"horizontal_contour_threshold": {math.Radians(15), "rad"},
		"contour_thr":                  {math.Radians(15), "rad"},
	}
	for k, v := range defaults {
		p.values[k] = v
	}
	return p
}

// Get returns a parameter's value, or (0,false) if unset.
func (p *Parameters) Get(name string) (float64, bool) {
	v, ok := p.values[name]
	return v.Value, ok
}

// GetWithUnit returns a parameter's full (value, unit) entry.
func (p *Parameters) GetWithUnit(name string) (Parameter, bool) {
	v, ok := p.values[name]
	return v, ok
}

// GetOrDefault returns the parameter's value, or fallback if unset.
func (p *Parameters) GetOrDefault(name string, fallback float64) float64 {
	if v, ok := p.values[name]; ok {
		return v.Value
	}
	return fallback
}

// Set stores name=value, unit (spec.md §7: min>max or similarly
// inconsistent pairs are clamped at the point of use, not rejected here).
func (p *Parameters) Set(name string, value float64, unit string) {
	p.values[name] = Parameter{Value: value, Unit: unit}
}

// Bool reads a parameter as spec.md's booleans are encoded: nonzero.
func (p *Parameters) Bool(name string, fallback bool) bool {
	v, ok := p.values[name]
	if !ok {
		return fallback
	}
	return v.Value != 0
}

// Knots converts knots to m/s.
func Knots(kt float64) float64 { return kt * 0.514444 }

// Feet converts feet to meters.
func Feet(ft float64) float64 { return ft * 0.3048 }
