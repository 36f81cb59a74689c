// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package glwindow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/damage"
	"github.com/gogpu/damage/render"
	"github.com/gogpu/damage/surface"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// These tests never open a window: a fakeContext stands in for the GLFW
// window.

type fakeContext struct {
	width, height int
	swaps         int
	current       bool
	destroyed     bool
}

func (c *fakeContext) MakeContextCurrent()            { c.current = true }
func (c *fakeContext) SwapBuffers()                   { c.swaps++ }
func (c *fakeContext) GetFramebufferSize() (int, int) { return c.width, c.height }
func (c *fakeContext) ShouldClose() bool              { return c.destroyed }
func (c *fakeContext) Destroy()                       { c.destroyed = true }

// rgbaDevice is a DeviceProvider with an RGBA surface and no GPU objects.
type rgbaDevice struct{}

func (rgbaDevice) Device() gpucontext.Device   { return nil }
func (rgbaDevice) Queue() gpucontext.Queue     { return nil }
func (rgbaDevice) Adapter() gpucontext.Adapter { return nil }
func (rgbaDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

func TestWindowTargetFormat(t *testing.T) {
	ctx := &fakeContext{width: 64, height: 48}

	for _, tc := range []struct {
		name   string
		device render.DeviceHandle
		want   gputypes.TextureFormat
	}{
		{"no device", nil, render.DefaultSurfaceFormat},
		{"rgba device", rgbaDevice{}, gputypes.TextureFormatRGBA8Unorm},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := newWindow(ctx, tc.device, false)
			target, err := w.AcquireTarget(damage.FrameInfo{})
			require.NoError(t, err)

			st, ok := target.(*render.SurfaceTarget)
			require.True(t, ok)
			assert.Equal(t, tc.want, st.Format())
			assert.Equal(t, gputypes.Extent3D{Width: 64, Height: 48, DepthOrArrayLayers: 1}, st.Extent())
		})
	}
}

func TestWindowPresentRejectsStaleTarget(t *testing.T) {
	ctx := &fakeContext{width: 64, height: 48}
	w := newWindow(ctx, rgbaDevice{}, false)

	target, err := w.AcquireTarget(damage.FrameInfo{})
	require.NoError(t, err)
	require.NoError(t, w.Present(target, damage.PresentInfo{}))
	assert.Equal(t, 1, ctx.swaps)

	ctx.width = 80
	err = w.Present(target, damage.PresentInfo{})
	assert.ErrorIs(t, err, ErrStaleTarget)
	assert.Equal(t, 1, ctx.swaps)

	fresh, err := w.AcquireTarget(damage.FrameInfo{})
	require.NoError(t, err)
	assert.NoError(t, w.Present(fresh, damage.PresentInfo{}))
	assert.Equal(t, 2, ctx.swaps)
}

func TestWindowPresentForeignTarget(t *testing.T) {
	w := newWindow(&fakeContext{width: 10, height: 10}, nil, false)

	assert.ErrorIs(t, w.Present(render.NewSurfaceTarget(nil, 7, 10, 10), damage.PresentInfo{}), ErrForeignTarget)
	assert.ErrorIs(t, w.Present((*render.SurfaceTarget)(nil), damage.PresentInfo{}), ErrForeignTarget)
	assert.ErrorIs(t, w.Present(nil, damage.PresentInfo{}), ErrForeignTarget)
}

func TestWindowSwapWithDamage(t *testing.T) {
	ctx := &fakeContext{width: 100, height: 50}
	w := newWindow(ctx, nil, false)

	var gotBuffer, gotFrame damage.Rect
	w.SetSwapWithDamage(func(buffer, frame damage.Rect) error {
		gotBuffer, gotFrame = buffer, frame
		return nil
	})

	target, err := w.AcquireTarget(damage.FrameInfo{})
	require.NoError(t, err)
	require.NoError(t, w.Present(target, damage.PresentInfo{
		BufferDamage: damage.NewRect(0, 0, 100, 10),
		FrameDamage:  damage.NewRect(10, 5, 20, 15),
	}))

	assert.Equal(t, damage.NewRect(0, 40, 100, 50), gotBuffer)
	assert.Equal(t, damage.NewRect(10, 35, 20, 45), gotFrame)
	assert.Zero(t, ctx.swaps, "damage swap replaces the full swap")

	failure := errors.New("bad surface")
	w.SetSwapWithDamage(func(damage.Rect, damage.Rect) error { return failure })
	assert.ErrorIs(t, w.Present(target, damage.PresentInfo{}), failure)
}

func TestWindowDrivesDriver(t *testing.T) {
	ctx := &fakeContext{width: 32, height: 16}
	w := newWindow(ctx, rgbaDevice{}, true)
	w.SetAgeQuery(func() (int, error) { return 2, nil })

	d, err := damage.NewDriver(surface.HooksFor(w), damage.WithSurfaceSize(w.Size()))
	require.NoError(t, err)

	renderer := damage.RendererFunc(func(target damage.Target, existing damage.Rect) (damage.Rect, damage.Rect, error) {
		frame := damage.NewRect(1, 1, 4, 4)
		return frame, existing.Join(frame), nil
	})
	for i := 0; i < 3; i++ {
		require.NoError(t, d.RenderFrame(renderer))
	}
	assert.True(t, ctx.current)
	assert.Equal(t, 3, ctx.swaps)
	assert.Zero(t, d.Stats().FallbackAges)

	require.NoError(t, w.Close())
	assert.True(t, ctx.destroyed)
	assert.True(t, w.CloseRequested())
}

func TestBufferAge(t *testing.T) {
	target := render.NewSurfaceTarget(nil, 0, 10, 10)
	query := func() (int, error) { return 3, nil }

	tests := []struct {
		name    string
		w       *Window
		wantAge int
		wantOK  bool
	}{
		{"no extension", &Window{ageQuery: query}, 0, false},
		{"no query", &Window{hasAge: true}, 0, false},
		{"query", &Window{hasAge: true, ageQuery: query}, 3, true},
		{"query fails", &Window{hasAge: true, ageQuery: func() (int, error) {
			return 0, errors.New("no surface")
		}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, ok := tt.w.BufferAge(target)
			assert.Equal(t, tt.wantAge, age)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestClosedWindow(t *testing.T) {
	w := &Window{closed: true}

	assert.ErrorIs(t, w.MakeCurrent(), ErrClosed)
	_, err := w.AcquireTarget(damage.FrameInfo{})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, w.Present(render.NewSurfaceTarget(nil, 0, 1, 1), damage.PresentInfo{}), ErrClosed)
	assert.True(t, w.CloseRequested())
	assert.NoError(t, w.Close())

	width, height := w.Size()
	assert.Zero(t, width)
	assert.Zero(t, height)
}

func TestRegistered(t *testing.T) {
	entry, ok := surface.Get("glfw")
	if assert.True(t, ok) {
		assert.Equal(t, 100, entry.Priority)
	}
}
