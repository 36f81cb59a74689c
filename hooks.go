// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

// Target is a render target handed out for one frame, typically a
// framebuffer of the window surface.
type Target interface {
	// ID identifies the framebuffer (an FBO name, a swap-chain slot).
	ID() uintptr

	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int
}

// FrameInfo describes the frame a target is requested for.
type FrameInfo struct {
	Width, Height int
}

// PresentInfo carries the damage of a frame into the present primitive.
type PresentInfo struct {
	// BufferDamage is the region of the target whose content was redrawn.
	// Everything outside it is left as the buffer held before.
	BufferDamage Rect

	// FrameDamage is the region that differs from the previous frame and
	// has to reach the display.
	FrameDamage Rect
}

// TargetProvider hands out the render target of the next frame.
type TargetProvider interface {
	AcquireTarget(info FrameInfo) (Target, error)
}

// Presenter swaps a rendered target to the display, restricted to the
// damage in info.
type Presenter interface {
	Present(target Target, info PresentInfo) error
}

// ContextBinder binds the graphics context to the calling thread.
type ContextBinder interface {
	MakeCurrent() error
	ClearCurrent() error
}

// AgeSource reports the buffer age of a target. ok is false when the
// driver has no buffer age capability; the caller then assumes its
// configured fallback age.
type AgeSource interface {
	BufferAge(target Target) (age int, ok bool)
}

// Renderer draws a frame. It must redraw at least existing, reports the
// region that changed since the previous frame and the region of target it
// actually drew.
type Renderer interface {
	RenderFrame(target Target, existing Rect) (frameDamage, bufferDamage Rect, err error)
}

// TargetFunc adapts a function to a TargetProvider.
type TargetFunc func(info FrameInfo) (Target, error)

// AcquireTarget calls f(info).
func (f TargetFunc) AcquireTarget(info FrameInfo) (Target, error) { return f(info) }

// PresentFunc adapts a function to a Presenter.
type PresentFunc func(target Target, info PresentInfo) error

// Present calls f(target, info).
func (f PresentFunc) Present(target Target, info PresentInfo) error { return f(target, info) }

// AgeFunc adapts a function to an AgeSource.
type AgeFunc func(target Target) (int, bool)

// BufferAge calls f(target).
func (f AgeFunc) BufferAge(target Target) (int, bool) { return f(target) }

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(target Target, existing Rect) (Rect, Rect, error)

// RenderFrame calls f(target, existing).
func (f RendererFunc) RenderFrame(target Target, existing Rect) (Rect, Rect, error) {
	return f(target, existing)
}

// NopContext is a ContextBinder for surfaces without a context to bind.
type NopContext struct{}

// MakeCurrent does nothing.
func (NopContext) MakeCurrent() error { return nil }

// ClearCurrent does nothing.
func (NopContext) ClearCurrent() error { return nil }

// Hooks is the set of platform callbacks a Driver presents through.
// Targets, Presenter and Context are required; Age is optional.
type Hooks struct {
	Targets   TargetProvider
	Presenter Presenter
	Context   ContextBinder
	Age       AgeSource
}

func (h Hooks) missing() []string {
	var missing []string
	if h.Context == nil {
		missing = append(missing, "context")
	}
	if h.Targets == nil {
		missing = append(missing, "targets")
	}
	if h.Presenter == nil {
		missing = append(missing, "presenter")
	}
	return missing
}
