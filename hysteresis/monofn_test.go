// hysteresis/monofn_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hysteresis

import "testing"

func TestMofNBasic(t *testing.T) {
	f := NewMofN(3, 5)
	for _, v := range []int{2, 2, 2, 0, 0} {
		f.Add(v)
	}
	if got := f.Value(); got != 2 {
		t.Errorf("expected 3 of the last 5 samples >= 2, so Value()=2, got %d", got)
	}
}

func TestMofNInsufficientSupportReturnsMinusOne(t *testing.T) {
	f := NewMofN(3, 5)
	for _, v := range []int{1, 0, 0, 0, 0} {
		f.Add(v)
	}
	if got := f.Value(); got != -1 {
		t.Errorf("expected -1 when fewer than M samples clear any positive level, got %d", got)
	}
}

func TestMofNDropsOldestBeyondN(t *testing.T) {
	f := NewMofN(2, 3)
	f.Add(3)
	f.Add(3)
	f.Add(0)
	f.Add(0)
	f.Add(0)
	if got := f.Value(); got != 0 {
		t.Errorf("expected the two 3s to have aged out of the window of 3, leaving only level 0 supported, got %d", got)
	}
}

func TestMofNReset(t *testing.T) {
	f := NewMofN(1, 3)
	f.Add(5)
	f.Reset()
	if got := f.Value(); got != -1 {
		t.Errorf("expected -1 after Reset, got %d", got)
	}
}

func TestMofNEmpty(t *testing.T) {
	f := NewMofN(2, 5)
	if got := f.Value(); got != -1 {
		t.Errorf("expected -1 for an empty filter, got %d", got)
	}
}
