// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import "iter"

// DefaultHistoryCapacity is the number of presented frames whose damage is
// remembered. Triple buffering needs the last two frames; some devices use
// quad buffering, so the default leaves plenty of headroom.
const DefaultHistoryCapacity = 10

// History is a bounded record of the frame damage of the most recently
// presented frames. Once full, each Push evicts the oldest entry.
//
// The zero value is an empty history of DefaultHistoryCapacity entries.
// History is not safe for concurrent use.
type History struct {
	ring []Rect
	head int // index of the oldest entry
	size int
}

// NewHistory creates an empty history holding at most capacity entries.
// A capacity below 1 selects DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{ring: make([]Rect, capacity)}
}

// Push records r as the damage of the newest frame.
func (h *History) Push(r Rect) {
	if h.ring == nil {
		h.ring = make([]Rect, DefaultHistoryCapacity)
	}
	if h.size < len(h.ring) {
		h.ring[(h.head+h.size)%len(h.ring)] = r
		h.size++
		return
	}
	h.ring[h.head] = r
	h.head = (h.head + 1) % len(h.ring)
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return h.size
}

// Cap returns the maximum number of entries.
func (h *History) Cap() int {
	if h == nil {
		return 0
	}
	if h.ring == nil {
		return DefaultHistoryCapacity
	}
	return len(h.ring)
}

// Reset forgets all recorded damage.
func (h *History) Reset() {
	h.head, h.size = 0, 0
}

// at returns the i-th entry counting back from the newest (i == 0).
func (h *History) at(i int) Rect {
	return h.ring[(h.head+h.size-1-i)%len(h.ring)]
}

// LastN returns the n most recent entries, newest first. If fewer than n
// entries exist all of them are yielded.
//
// The sequence is lazy and single-use: ranging over it a second time
// yields nothing. It must not be consumed after the history is modified.
func (h *History) LastN(n int) iter.Seq[Rect] {
	used := false
	return func(yield func(Rect) bool) {
		if used {
			return
		}
		used = true
		for i := 0; i < n && i < h.Len(); i++ {
			if !yield(h.at(i)) {
				return
			}
		}
	}
}

// Entries returns a copy of the recorded damage, oldest first.
func (h *History) Entries() []Rect {
	out := make([]Rect, h.Len())
	for i := range out {
		out[i] = h.at(len(out) - 1 - i)
	}
	return out
}
