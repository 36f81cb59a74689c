// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

// RegionTracker holds the buffer damage requested for the frame being
// rendered until the present step consumes it.
type RegionTracker struct {
	pending Rect
	set     bool
}

// SetPending records the region the next present is restricted to,
// replacing any earlier value.
func (t *RegionTracker) SetPending(r Rect) {
	t.pending, t.set = r, true
}

// HasPending reports whether SetPending was called since the last take.
func (t *RegionTracker) HasPending() bool {
	return t.set
}

// TakePending returns the pending region and clears it.
// With nothing pending it returns the empty rect.
func (t *RegionTracker) TakePending() Rect {
	r := t.pending
	t.pending, t.set = Rect{}, false
	return r
}
