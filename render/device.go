// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// Only SurfaceFormat is consulted here: it decides the pixel format of the
// window framebuffer handed to renderers. The device and queue stay with
// the host.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider so any host of the
// gpucontext ecosystem can be passed directly.
type DeviceHandle = gpucontext.DeviceProvider

// DefaultSurfaceFormat is assumed when the host does not report a surface
// format.
const DefaultSurfaceFormat = gputypes.TextureFormatBGRA8Unorm

// NullDeviceHandle is a DeviceHandle without a device, for surfaces driven
// by a plain GL context or by software.
type NullDeviceHandle struct{}

// Device returns nil.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns TextureFormatUndefined.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// surfaceFormat returns the format reported by handle, or
// DefaultSurfaceFormat.
func surfaceFormat(handle DeviceHandle) gputypes.TextureFormat {
	if handle == nil {
		return DefaultSurfaceFormat
	}
	if f := handle.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		return f
	}
	return DefaultSurfaceFormat
}
