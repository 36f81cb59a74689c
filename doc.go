// Package damage tracks damage regions for partial repaint of
// multi-buffered surfaces.
//
// # Overview
//
// A swap chain rotates between two to four back buffers. When a buffer is
// handed out again it still holds the frame it was last presented with,
// which is "buffer age" frames old. Instead of redrawing the whole surface,
// a renderer only has to redraw the region that changed in those frames:
// the existing damage. The package remembers the damage of every presented
// frame in a bounded History and rebuilds the existing damage of a buffer
// from its age with ResolveExistingDamage.
//
// # Frame Lifecycle
//
// A Driver owns the history of one surface and runs each frame:
//
//	d, err := damage.NewDriver(damage.Hooks{
//	    Targets:   surface,
//	    Presenter: surface,
//	    Context:   surface,
//	    Age:       surface, // optional
//	})
//
//	frame, err := d.AcquireFrame()
//	// redraw frame.ExistingDamage plus whatever changed
//	d.SetDamageRegion(redrawn)
//	err = d.Present(frame.Target, changed)
//
// Driver.RenderFrame does the same with a Renderer.
//
// # Coordinate System
//
// Rects are integer device pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Backends with a bottom-left origin convert with Rect.FlipY.
//
// # Buffer Age
//
//   - 0: content undefined, redraw everything
//   - 1: buffer holds the previous frame, nothing is stale but the full
//     surface is still reported
//   - n > 1: the damage of the n-1 most recent frames is stale
//
// Drivers without buffer age support get the configured fallback age
// (DefaultFallbackAge).
package damage
