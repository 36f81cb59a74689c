//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import _ "github.com/gogpu/damage/backend/glwindow"
