// hysteresis/monofn.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package hysteresis implements the M-of-N/persistence/reset-on-gap
// filters spec.md §4.8 layers onto both scalar alert levels
// (AlertingHysteresis) and bands (BandsHysteresis).
package hysteresis

// MofN is a bounded FIFO of the last N integer samples (spec.md §4.8):
// "What is the highest value v such that at least M of the last N
// samples had level >= v?" A plain slice used as a ring buffer is
// sufficient at this size (N is a handful of samples at most).
type MofN struct {
	m, n    int
	samples []int
}

// NewMofN constructs an empty M-of-N filter.
func NewMofN(m, n int) *MofN {
	return &MofN{m: m, n: n}
}

// Add appends a sample, dropping the oldest once more than N are held.
func (f *MofN) Add(v int) {
	f.samples = append(f.samples, v)
	if len(f.samples) > f.n {
		f.samples = f.samples[len(f.samples)-f.n:]
	}
}

// Value returns the largest v such that at least M of the held samples
// are >= v, or -1 if even the lowest candidate fails (spec.md §8's
// testable property 5).
func (f *MofN) Value() int {
	if len(f.samples) == 0 {
		return -1
	}
	max := f.samples[0]
	for _, s := range f.samples[1:] {
		if s > max {
			max = s
		}
	}
	for v := max; v >= 0; v-- {
		count := 0
		for _, s := range f.samples {
			if s >= v {
				count++
			}
		}
		if count >= f.m {
			return v
		}
	}
	return -1
}

// Reset empties the filter's memory.
func (f *MofN) Reset() {
	f.samples = f.samples[:0]
}
