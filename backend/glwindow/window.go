// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package glwindow

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/damage"
	"github.com/gogpu/damage/render"
	"github.com/gogpu/damage/surface"
)

// bufferAgeExtensions are the context creation extensions that expose the
// age of the back buffer.
var bufferAgeExtensions = []string{"EGL_EXT_buffer_age", "GLX_EXT_buffer_age"}

var (
	// ErrClosed is returned by operations on a closed Window.
	ErrClosed = errors.New("glwindow: window closed")

	// ErrForeignTarget is returned by Present for targets that are not the
	// default framebuffer of the window.
	ErrForeignTarget = errors.New("glwindow: target is not the window framebuffer")

	// ErrStaleTarget is returned by Present when the framebuffer was
	// resized after the target was acquired.
	ErrStaleTarget = errors.New("glwindow: framebuffer resized since acquire")
)

// AgeQuery reads the age of the current back buffer, typically with
// eglQuerySurface(EGL_BUFFER_AGE_EXT) through the caller's GL binding.
type AgeQuery func() (int, error)

// SwapWithDamage presents the back buffer restricted to damage, typically
// with eglSetDamageRegionKHR and eglSwapBuffersWithDamageKHR. Both rects
// are in GL coordinates, origin bottom-left.
type SwapWithDamage func(bufferDamage, frameDamage damage.Rect) error

// glContext is the part of *glfw.Window a Window drives.
type glContext interface {
	MakeContextCurrent()
	SwapBuffers()
	GetFramebufferSize() (width, height int)
	ShouldClose() bool
	Destroy()
}

// Window is an OpenGL window presenting its default framebuffer.
//
// All methods must be called from the main thread.
type Window struct {
	win    glContext
	device render.DeviceHandle
	// ownsGLFW is set for windows created by Open, which run the GLFW
	// event loop and terminate it on Close.
	ownsGLFW bool

	ageQuery AgeQuery
	swap     SwapWithDamage
	hasAge   bool
	closed   bool
}

var (
	_ surface.Backend        = (*Window)(nil)
	_ surface.CloseRequester = (*Window)(nil)
	_ damage.AgeSource       = (*Window)(nil)
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()

	surface.Register("glfw", 100, func(opts surface.Options) (surface.Backend, error) {
		return Open(opts)
	}, nil)
}

// Open creates a window with an OpenGL context.
func Open(opts surface.Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glwindow: init: %w", err)
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = damage.DefaultWidth, damage.DefaultHeight
	}
	title := opts.Title
	if title == "" {
		title = "damage"
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	win, err := glfw.CreateWindow(w, h, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glwindow: create window: %w", err)
	}

	win.MakeContextCurrent()
	hasAge := false
	if !opts.DisableBufferAge {
		for _, ext := range bufferAgeExtensions {
			if glfw.ExtensionSupported(ext) {
				hasAge = true
				break
			}
		}
	}
	glfw.DetachCurrentContext()

	window := newWindow(win, opts.Device, hasAge)
	window.ownsGLFW = true

	fbw, fbh := win.GetFramebufferSize()
	damage.Logger().Info("glwindow: window created",
		slog.Int("width", fbw), slog.Int("height", fbh),
		slog.Any("format", window.target(fbw, fbh).Format()),
		slog.Bool("buffer_age", hasAge))

	return window, nil
}

func newWindow(win glContext, device render.DeviceHandle, hasAge bool) *Window {
	if device == nil {
		device = render.NullDeviceHandle{}
	}
	return &Window{win: win, device: device, hasAge: hasAge}
}

func (w *Window) target(width, height int) *render.SurfaceTarget {
	return render.NewSurfaceTarget(w.device, 0, width, height)
}

// SetAgeQuery installs the function reading the back buffer age. Ages are
// only queried when the context advertises a buffer age extension.
func (w *Window) SetAgeQuery(q AgeQuery) {
	w.ageQuery = q
}

// SetSwapWithDamage installs a damage-aware swap. Without one Present
// swaps the whole surface.
func (w *Window) SetSwapWithDamage(swap SwapWithDamage) {
	w.swap = swap
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	if w.closed {
		return 0, 0
	}
	return w.win.GetFramebufferSize()
}

// MakeCurrent binds the window context to the calling thread.
func (w *Window) MakeCurrent() error {
	if w.closed {
		return ErrClosed
	}
	w.win.MakeContextCurrent()
	return nil
}

// ClearCurrent detaches the context from the calling thread.
func (w *Window) ClearCurrent() error {
	if w.ownsGLFW {
		glfw.DetachCurrentContext()
	}
	return nil
}

// AcquireTarget returns the default framebuffer at its current size.
func (w *Window) AcquireTarget(damage.FrameInfo) (damage.Target, error) {
	if w.closed {
		return nil, ErrClosed
	}
	return w.target(w.win.GetFramebufferSize()), nil
}

// BufferAge queries the back buffer age. ok is false when the context has
// no buffer age extension, no query was installed or the query failed.
func (w *Window) BufferAge(damage.Target) (int, bool) {
	if !w.hasAge || w.ageQuery == nil {
		return 0, false
	}
	age, err := w.ageQuery()
	if err != nil {
		damage.Logger().Warn("glwindow: buffer age query failed", slog.String("err", err.Error()))
		return 0, false
	}
	return age, true
}

// Present swaps the buffers and processes pending window events.
//
// The damage is converted to the bottom-up GL convention and handed to
// the swap installed with SetSwapWithDamage, if any.
func (w *Window) Present(target damage.Target, info damage.PresentInfo) error {
	if w.closed {
		return ErrClosed
	}
	st, ok := target.(*render.SurfaceTarget)
	if !ok || st == nil || st.ID() != 0 {
		return ErrForeignTarget
	}

	ext := st.Extent()
	fbw, fbh := w.win.GetFramebufferSize()
	if int(ext.Width) != fbw || int(ext.Height) != fbh {
		return fmt.Errorf("%w: target %dx%d, framebuffer %dx%d",
			ErrStaleTarget, ext.Width, ext.Height, fbw, fbh)
	}

	h := st.Height()
	buffer, frame := info.BufferDamage.FlipY(h), info.FrameDamage.FlipY(h)
	damage.Logger().Debug("glwindow: swap",
		slog.Any("buffer", buffer),
		slog.Any("frame", frame),
		slog.Any("format", st.Format()))

	if w.swap != nil {
		if err := w.swap(buffer, frame); err != nil {
			return fmt.Errorf("glwindow: swap with damage: %w", err)
		}
	} else {
		w.win.SwapBuffers()
	}

	if w.ownsGLFW {
		glfw.PollEvents()
	}
	return nil
}

// CloseRequested reports whether the user closed the window.
func (w *Window) CloseRequested() bool {
	return w.closed || w.win.ShouldClose()
}

// Close destroys the window and terminates GLFW. Close is idempotent.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.win != nil {
		w.win.Destroy()
	}
	if w.ownsGLFW {
		glfw.Terminate()
	}
	return nil
}
