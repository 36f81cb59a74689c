// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import "testing"

func TestRegionTrackerTakeClears(t *testing.T) {
	var tr RegionTracker

	if tr.HasPending() {
		t.Fatal("new tracker should have nothing pending")
	}
	if got := tr.TakePending(); !got.Empty() {
		t.Errorf("TakePending() on empty tracker = %v, want empty", got)
	}

	r := Rect{1, 2, 30, 40}
	tr.SetPending(r)
	if !tr.HasPending() {
		t.Fatal("HasPending() = false after SetPending")
	}
	if got := tr.TakePending(); got != r {
		t.Errorf("TakePending() = %v, want %v", got, r)
	}
	if tr.HasPending() {
		t.Error("HasPending() = true after TakePending")
	}
	if got := tr.TakePending(); !got.Empty() {
		t.Errorf("second TakePending() = %v, want empty", got)
	}
}

func TestRegionTrackerSetReplaces(t *testing.T) {
	var tr RegionTracker
	tr.SetPending(Rect{0, 0, 10, 10})
	tr.SetPending(Rect{5, 5, 6, 6})
	if got := tr.TakePending(); got != (Rect{5, 5, 6, 6}) {
		t.Errorf("TakePending() = %v, want last value", got)
	}
}
