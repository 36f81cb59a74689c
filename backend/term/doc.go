// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term is a terminal presentation backend built on tcell.
//
// The surface keeps a swap chain of cell buffers in front of the screen
// and reports their exact buffer age, which makes it a convenient place to
// watch partial repaint at work without a GPU. Importing the package
// registers it as the "term" backend:
//
//	import _ "github.com/gogpu/damage/backend/term"
package term
