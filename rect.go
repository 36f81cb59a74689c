// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import (
	"fmt"
	"image"
	"log/slog"
)

// Rect is an axis-aligned rectangle in device pixels.
//
// The origin is the top-left corner of the surface and the Y axis points
// down, so Top <= Bottom for every well-formed rect. Backends whose native
// convention is bottom-left (EGL, GL) convert with FlipY when the rect
// leaves the engine.
//
// A rect with zero area is "no damage". It is the identity of Join and all
// such rects compare equal under Eq.
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect returns the rect with the given bounds.
// Inverted bounds are normalized by swapping them instead of failing.
func NewRect(left, top, right, bottom int) Rect {
	if right < left {
		left, right = right, left
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromSize returns the rect covering a width x height surface.
func RectFromSize(width, height int) Rect {
	return NewRect(0, 0, width, height)
}

// Width returns the horizontal extent of r.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Eq reports whether r and s cover the same pixels.
// All empty rects are considered equal.
func (r Rect) Eq(s Rect) bool {
	return r == s || r.Empty() && s.Empty()
}

// Join returns the smallest rect containing both r and s.
func (r Rect) Join(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if s.Left < r.Left {
		r.Left = s.Left
	}
	if s.Top < r.Top {
		r.Top = s.Top
	}
	if s.Right > r.Right {
		r.Right = s.Right
	}
	if s.Bottom > r.Bottom {
		r.Bottom = s.Bottom
	}
	return r
}

// Join returns the smallest rect containing all of rects.
// With no arguments it returns the empty rect.
func Join(rects ...Rect) Rect {
	var out Rect
	for _, r := range rects {
		out = out.Join(r)
	}
	return out
}

// Intersect returns the largest rect contained by both r and s.
// If they do not overlap the zero rect is returned.
func (r Rect) Intersect(s Rect) Rect {
	if r.Left < s.Left {
		r.Left = s.Left
	}
	if r.Top < s.Top {
		r.Top = s.Top
	}
	if r.Right > s.Right {
		r.Right = s.Right
	}
	if r.Bottom > s.Bottom {
		r.Bottom = s.Bottom
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Contains reports whether every pixel of s is inside r.
// An empty s is contained by any rect.
func (r Rect) Contains(s Rect) bool {
	if s.Empty() {
		return true
	}
	return r.Left <= s.Left && s.Right <= r.Right &&
		r.Top <= s.Top && s.Bottom <= r.Bottom
}

// FlipY mirrors r vertically inside a surface of the given height,
// converting between top-left and bottom-left origin. FlipY is its own
// inverse.
func (r Rect) FlipY(height int) Rect {
	return Rect{
		Left:   r.Left,
		Top:    height - r.Bottom,
		Right:  r.Right,
		Bottom: height - r.Top,
	}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(ir image.Rectangle) Rect {
	return NewRect(ir.Min.X, ir.Min.Y, ir.Max.X, ir.Max.Y)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d, %d, %d, %d}", r.Left, r.Top, r.Right, r.Bottom)
}

// LogValue implements slog.LogValuer.
func (r Rect) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("left", r.Left),
		slog.Int("top", r.Top),
		slog.Int("right", r.Right),
		slog.Int("bottom", r.Bottom),
	)
}
