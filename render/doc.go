// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides render targets and dirty-region bookkeeping for
// renderers driven by damage.Driver.
//
// # Key Principle
//
// The host application owns the GPU device and the window surface. This
// package RECEIVES them through DeviceHandle and only describes the
// framebuffer a frame is drawn into.
//
// # Core Types
//
//   - SurfaceTarget: the window framebuffer of one frame (damage.Target)
//   - DeviceHandle: GPU device access from the host (gpucontext.DeviceProvider)
//   - DirtySet: accumulates what a renderer invalidated during a frame
//
// # Usage
//
//	var dirty render.DirtySet
//	dirty.Invalidate(oldBounds)
//	dirty.Invalidate(newBounds)
//
//	renderer := damage.RendererFunc(func(t damage.Target, existing damage.Rect) (damage.Rect, damage.Rect, error) {
//	    changed := dirty.Bounds(damage.RectFromSize(t.Width(), t.Height()))
//	    redraw := existing.Join(changed)
//	    // draw redraw ...
//	    dirty.Clear()
//	    return changed, redraw, nil
//	})
package render
