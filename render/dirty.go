// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/damage"

// maxDirtyRects is the threshold after which a DirtySet switches to full
// redraw. Past this many rects, tracking them costs more than redrawing.
const maxDirtyRects = 16

// DirtySet accumulates the regions a renderer invalidated since the last
// presented frame. Its Bounds is the frame damage handed to
// damage.Driver.Present.
//
// The zero value is an empty set ready to use.
type DirtySet struct {
	rects      []damage.Rect
	fullRedraw bool
}

// Invalidate marks r as needing redraw. Empty rects are ignored.
// If the accumulated rects exceed maxDirtyRects the set switches to full
// redraw.
func (d *DirtySet) Invalidate(r damage.Rect) {
	if d.fullRedraw || r.Empty() {
		return
	}

	d.rects = append(d.rects, r)

	if len(d.rects) > maxDirtyRects {
		d.fullRedraw = true
		d.rects = d.rects[:0]
	}
}

// InvalidateAll marks the whole surface as needing redraw.
func (d *DirtySet) InvalidateAll() {
	d.fullRedraw = true
	d.rects = d.rects[:0]
}

// Rects returns the accumulated dirty rects, or nil in full redraw mode.
// The returned slice must not be modified.
func (d *DirtySet) Rects() []damage.Rect {
	if d.fullRedraw {
		return nil
	}
	return d.rects
}

// NeedsFullRedraw reports whether the whole surface is dirty.
func (d *DirtySet) NeedsFullRedraw() bool {
	return d.fullRedraw
}

// HasDirtyRegions reports whether anything was invalidated.
func (d *DirtySet) HasDirtyRegions() bool {
	return d.fullRedraw || len(d.rects) > 0
}

// Bounds returns the single rect covering everything invalidated, clipped
// to full. In full redraw mode it returns full.
func (d *DirtySet) Bounds(full damage.Rect) damage.Rect {
	if d.fullRedraw {
		return full
	}
	return damage.Join(d.rects...).Intersect(full)
}

// Clear resets the set after a frame was presented.
func (d *DirtySet) Clear() {
	d.rects = d.rects[:0]
	d.fullRedraw = false
}
