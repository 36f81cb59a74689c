// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/damage"
	"github.com/gogpu/gputypes"
)

// SurfaceTarget is the window framebuffer a frame is rendered into.
//
// For GL surfaces the framebuffer is usually FBO 0, the default
// framebuffer, and the driver rotates the back buffers behind it. Buffer
// age is queried from the driver for whichever buffer is current.
//
// Example:
//
//	target := render.NewSurfaceTarget(handle, 0, 800, 600)
//	fmt.Println(target.Format(), target.Bounds())
type SurfaceTarget struct {
	fbo    uintptr
	width  int
	height int
	format gputypes.TextureFormat
}

// NewSurfaceTarget describes framebuffer fbo of a width x height surface.
// The pixel format is taken from handle, which may be nil.
func NewSurfaceTarget(handle DeviceHandle, fbo uintptr, width, height int) *SurfaceTarget {
	return &SurfaceTarget{
		fbo:    fbo,
		width:  width,
		height: height,
		format: surfaceFormat(handle),
	}
}

// ID returns the framebuffer object name.
func (t *SurfaceTarget) ID() uintptr {
	return t.fbo
}

// Width returns the surface width in pixels.
func (t *SurfaceTarget) Width() int {
	return t.width
}

// Height returns the surface height in pixels.
func (t *SurfaceTarget) Height() int {
	return t.height
}

// Format returns the surface pixel format.
func (t *SurfaceTarget) Format() gputypes.TextureFormat {
	return t.format
}

// Extent returns the surface size as a texture extent.
func (t *SurfaceTarget) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              clampUint32(t.width),
		Height:             clampUint32(t.height),
		DepthOrArrayLayers: 1,
	}
}

// Bounds returns the rect covering the whole target.
func (t *SurfaceTarget) Bounds() damage.Rect {
	return damage.RectFromSize(t.width, t.height)
}

func clampUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v) //nolint:gosec // G115: surface sizes fit in uint32
}

// Ensure SurfaceTarget implements damage.Target.
var _ damage.Target = (*SurfaceTarget)(nil)
