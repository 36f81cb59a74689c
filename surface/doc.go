// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface selects the presentation backend a damage.Driver
// presents through.
//
// A Backend bundles the platform hooks of one window or screen: it hands
// out render targets, binds its context and presents with damage. Buffer
// age support is optional and detected with a type assertion.
//
// # Registry
//
// Backends register themselves from init functions:
//
//	func init() {
//	    surface.Register("term", 10, newTermBackend, nil)
//	}
//
// and applications pick one by name or let the registry choose the
// highest priority backend that is available and opens successfully:
//
//	b, err := surface.NewBackend(surface.Options{Width: 800, Height: 600})
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//
//	d, err := damage.NewDriver(surface.HooksFor(b))
//
// Standard priorities:
//   - 100: GPU window backends (GLFW)
//   - 10: terminal and software backends
package surface
