// bands/stats.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import "github.com/montanaflynn/stats"

// RecoveryStats summarizes a set of per-intruder RecoveryFactor results
// (spec.md §4.6's recovery bisection), letting the orchestrator flag
// when one intruder needs a dramatically larger detector shrink than
// the rest of the conflicting traffic — an IQR outlier on the factor
// distribution rather than a fixed threshold, since "how much shrink is
// a lot" depends on the encounter.
type RecoveryStats struct {
	Mean, StdDev, Min, Max float64
	Outliers               int
}

// SummarizeRecoveryFactors computes RecoveryStats over factors (each in
// [0,1], spec.md §4.6's RecoveryFactor convention). An empty input
// yields the zero value and no error.
func SummarizeRecoveryFactors(factors []float64) (RecoveryStats, error) {
	if len(factors) == 0 {
		return RecoveryStats{}, nil
	}
	mean, err := stats.Mean(factors)
	if err != nil {
		return RecoveryStats{}, err
	}
	stdDev, err := stats.StandardDeviation(factors)
	if err != nil {
		return RecoveryStats{}, err
	}
	lo, err := stats.Min(factors)
	if err != nil {
		return RecoveryStats{}, err
	}
	hi, err := stats.Max(factors)
	if err != nil {
		return RecoveryStats{}, err
	}
	outliers := 0
	if len(factors) >= 4 {
		q25, err := stats.Percentile(factors, 25)
		if err != nil {
			return RecoveryStats{}, err
		}
		q75, err := stats.Percentile(factors, 75)
		if err != nil {
			return RecoveryStats{}, err
		}
		iqr := q75 - q25
		lower, upper := q25-1.5*iqr, q75+1.5*iqr
		for _, f := range factors {
			if f < lower || f > upper {
				outliers++
			}
		}
	}
	return RecoveryStats{Mean: mean, StdDev: stdDev, Min: lo, Max: hi, Outliers: outliers}, nil
}
