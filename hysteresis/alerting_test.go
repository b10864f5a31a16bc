// hysteresis/alerting_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hysteresis

import "testing"

func TestAlertingHysteresisIdempotentAtSameTime(t *testing.T) {
	h := NewAlertingHysteresis(3, 5, 5, 4)
	a := h.Update("ac1", 2, 10)
	b := h.Update("ac1", 3, 10)
	if a != b {
		t.Errorf("expected a repeated call at the same time to return the cached output unchanged, got %d then %d", a, b)
	}
}

func TestAlertingHysteresisResetsOnBackwardTime(t *testing.T) {
	h := NewAlertingHysteresis(1, 1, 5, 0)
	h.Update("ac1", 3, 10)
	out := h.Update("ac1", 3, 9)
	if out != 3 {
		t.Errorf("expected the filter to still report 3 after a fresh single sample post-reset, got %d", out)
	}
}

func TestAlertingHysteresisResetsOnLargeGap(t *testing.T) {
	h := NewAlertingHysteresis(1, 5, 5, 0)
	h.Update("ac1", 3, 0)
	out := h.Update("ac1", 0, 100)
	if out != 0 {
		t.Errorf("expected a gap beyond T_h to wipe memory and report the fresh sample, got %d", out)
	}
}

// TestAlertingHysteresisPersistsThroughADrop is scenario S5 from spec.md
// §8: M=3,N=5,T_h=5s,T_p=4s, raw input [0,0,2,0,2,0,2] sampled at 1 Hz,
// expecting the filtered output to reach >=2 once 3 of the last 5 samples
// clear level 2, and to hold there through the trailing drop to 0 thanks
// to persistence.
func TestAlertingHysteresisPersistsThroughADrop(t *testing.T) {
	h := NewAlertingHysteresis(3, 5, 5, 4)
	raw := []int{0, 0, 2, 0, 2, 0, 2}
	var out []int
	for i, v := range raw {
		out = append(out, h.Update("ac1", v, float64(i)))
	}
	if out[6] < 2 {
		t.Fatalf("expected output >=2 by sample 6 (3 of the last 5 raw samples are 2), got %v", out)
	}
	for i := 7; i < 9; i++ {
		got := h.Update("ac1", 0, float64(i))
		out = append(out, got)
		if got < 2 {
			t.Errorf("expected persistence to hold output >=2 through sample %d despite raw dropping to 0, got %d (trace=%v)", i, got, out)
		}
	}
}

func TestAlertingHysteresisIndependentPerAircraft(t *testing.T) {
	h := NewAlertingHysteresis(1, 1, 5, 0)
	h.Update("ac1", 3, 0)
	out := h.Update("ac2", 0, 0)
	if out != 0 {
		t.Errorf("expected ac2's memory to be independent of ac1's, got %d", out)
	}
}

func TestAlertingHysteresisResetClearsOneAircraft(t *testing.T) {
	h := NewAlertingHysteresis(1, 1, 5, 4)
	h.Update("ac1", 3, 0)
	h.Reset("ac1")
	out := h.Update("ac1", 0, 1)
	if out != 0 {
		t.Errorf("expected Reset to drop persistence, got %d", out)
	}
}

func TestAlertingHysteresisResetAll(t *testing.T) {
	h := NewAlertingHysteresis(1, 1, 5, 4)
	h.Update("ac1", 3, 0)
	h.Update("ac2", 3, 0)
	h.ResetAll()
	if out := h.Update("ac1", 0, 1); out != 0 {
		t.Errorf("expected ResetAll to drop ac1's persistence, got %d", out)
	}
	if out := h.Update("ac2", 0, 1); out != 0 {
		t.Errorf("expected ResetAll to drop ac2's persistence, got %d", out)
	}
}
