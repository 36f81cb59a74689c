// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/damage"
	"github.com/gogpu/damage/render"
)

// Backend is a presentation surface: a window or screen with a swap chain.
//
// Backends are NOT thread-safe. Every method must be called from the
// goroutine that owns the graphics context.
type Backend interface {
	damage.TargetProvider
	damage.Presenter
	damage.ContextBinder

	// Size returns the current surface size in pixels.
	Size() (width, height int)

	// Close releases the surface. Close is idempotent.
	Close() error
}

// CloseRequester is an optional interface for backends the user can close
// (window close button, quit key).
type CloseRequester interface {
	CloseRequested() bool
}

// Options configures a new backend.
type Options struct {
	// Width and Height are the requested surface size in pixels.
	// Backends that cannot choose their size (terminals) ignore them.
	Width, Height int

	// Title is the window title, if the backend has windows.
	Title string

	// Buffers is the swap chain length for backends that manage their own
	// back buffers. Zero selects the backend default.
	Buffers int

	// DisableBufferAge hides the buffer age capability, forcing drivers to
	// use their fallback age.
	DisableBufferAge bool

	// Device supplies the surface format of GPU backends. Nil selects
	// render.DefaultSurfaceFormat.
	Device render.DeviceHandle
}

// HooksFor returns the driver hooks of b. The buffer age hook is set only
// when b implements damage.AgeSource.
func HooksFor(b Backend) damage.Hooks {
	hooks := damage.Hooks{
		Targets:   b,
		Presenter: b,
		Context:   b,
	}
	if age, ok := b.(damage.AgeSource); ok {
		hooks.Age = age
	}
	return hooks
}
