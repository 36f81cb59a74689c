// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glwindow is a desktop presentation backend: an OpenGL window
// created with GLFW. Importing it registers the "glfw" backend, preferred
// over the terminal when a display is available.
//
// GLFW does not expose the buffer age. When the context advertises
// EGL_EXT_buffer_age or GLX_EXT_buffer_age, applications with a GL binding
// install the query with Window.SetAgeQuery; without it the driver uses
// its fallback age. The same applies to presenting with damage: GLFW swaps
// the whole surface unless Window.SetSwapWithDamage installs a swap that
// takes the damage rects, already flipped to GL coordinates.
package glwindow
