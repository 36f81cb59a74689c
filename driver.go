// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
)

// State is the position of a Driver in the frame lifecycle.
type State uint8

// Frame lifecycle states, in order.
const (
	StateIdle State = iota
	StateAcquiringTarget
	StateRendering
	StatePresenting
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAcquiringTarget:
		return "AcquiringTarget"
	case StateRendering:
		return "Rendering"
	case StatePresenting:
		return "Presenting"
	case StateCommitting:
		return "Committing"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Frame is an acquired render target together with the region of it the
// renderer has to redraw.
type Frame struct {
	Target Target

	// Age is the buffer age the existing damage was resolved from.
	Age int

	// Fallback is true when Age is the configured fallback because the
	// driver could not report one.
	Fallback bool

	// ExistingDamage is the stale region of Target.
	ExistingDamage Rect
}

// Stats counts frames handled by a Driver.
type Stats struct {
	Acquired     uint64
	Presented    uint64
	Dropped      uint64
	FallbackAges uint64
}

// Driver runs the partial-repaint frame lifecycle of one surface:
//
//	Idle → AcquiringTarget → Rendering → Presenting → Committing → Idle
//
// It owns the damage history of the surface and only records a frame's
// damage after a successful present.
//
// Driver is not safe for concurrent use. All calls must come from the
// goroutine that owns the graphics context, locked to its OS thread where
// the platform requires it.
type Driver struct {
	hooks   Hooks
	cfg     Config
	history *History
	tracker RegionTracker
	full    Rect

	state  State
	target Target
	stats  Stats
	valid  bool
}

// NewDriver creates a driver presenting through hooks.
//
// Missing required hooks or invalid options are reported immediately as a
// *ConfigurationError; no driver is returned in that case.
func NewDriver(hooks Hooks, opts ...Option) (*Driver, error) {
	if missing := hooks.missing(); len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if hooks.Age == nil {
		Logger().Warn("damage: buffer age not supported, assuming fallback age",
			slog.Int("fallback_age", cfg.FallbackAge))
	}

	return &Driver{
		hooks:   hooks,
		cfg:     cfg,
		history: NewHistory(cfg.HistoryCapacity),
		full:    RectFromSize(cfg.Width, cfg.Height),
		valid:   true,
	}, nil
}

// Config returns the configuration the driver was created with.
func (d *Driver) Config() Config { return d.cfg }

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Stats returns the frame counters.
func (d *Driver) Stats() Stats { return d.stats }

// FullSurface returns the rect covering the whole surface.
func (d *Driver) FullSurface() Rect { return d.full }

// HistoryLen returns the number of frame damages remembered.
func (d *Driver) HistoryLen() int { return d.history.Len() }

// RecentDamage returns the remembered frame damages, oldest first.
func (d *Driver) RecentDamage() []Rect { return d.history.Entries() }

// Resize updates the surface size used for the full-surface rect.
// Recorded damage is kept.
func (d *Driver) Resize(width, height int) error {
	if !d.valid {
		return ErrInvalidSurface
	}
	if width < 0 || height < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("surface size %dx%d", width, height)}
	}
	full := RectFromSize(width, height)
	if full == d.full {
		return nil
	}
	d.full = full
	Logger().Info("damage: surface resized", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// bufferAge asks the driver for the age of target, falling back to the
// configured constant when the capability is missing.
func (d *Driver) bufferAge(target Target) (age int, fallback bool) {
	if d.hooks.Age != nil {
		if age, ok := d.hooks.Age.BufferAge(target); ok {
			return age, false
		}
	}
	return d.cfg.FallbackAge, true
}

func (d *Driver) resolve(target Target) (Frame, error) {
	age, fallback := d.bufferAge(target)
	if err := ValidateAge(age); err != nil {
		return Frame{}, err
	}
	return Frame{
		Target:         target,
		Age:            age,
		Fallback:       fallback,
		ExistingDamage: ResolveExistingDamage(age, d.history, d.full),
	}, nil
}

// ExistingDamage returns the stale region of target without starting a
// frame.
func (d *Driver) ExistingDamage(target Target) (Rect, error) {
	if !d.valid {
		return Rect{}, ErrInvalidSurface
	}
	frame, err := d.resolve(target)
	if err != nil {
		return Rect{}, err
	}
	return frame.ExistingDamage, nil
}

// AcquireFrame binds the context, obtains the target of the next frame and
// resolves its existing damage. On success the driver is Rendering and the
// frame must be finished with Present or AbortFrame.
func (d *Driver) AcquireFrame() (Frame, error) {
	if !d.valid {
		return Frame{}, ErrInvalidSurface
	}
	if d.state != StateIdle {
		return Frame{}, fmt.Errorf("%w: acquire while %s", ErrFrameState, d.state)
	}

	d.state = StateAcquiringTarget
	d.tracker.TakePending()
	if err := d.hooks.Context.MakeCurrent(); err != nil {
		d.state = StateIdle
		return Frame{}, fmt.Errorf("damage: make current: %w", err)
	}

	target, err := d.hooks.Targets.AcquireTarget(FrameInfo{Width: d.full.Width(), Height: d.full.Height()})
	if err == nil && isNilTarget(target) {
		err = errNilTarget
	}
	if err != nil {
		d.endFrame()
		return Frame{}, fmt.Errorf("damage: acquire target: %w", err)
	}

	frame, err := d.resolve(target)
	if err != nil {
		d.endFrame()
		return Frame{}, err
	}

	d.stats.Acquired++
	if frame.Fallback {
		d.stats.FallbackAges++
	}
	d.target = target
	d.state = StateRendering

	Logger().Debug("damage: frame acquired",
		slog.Uint64("target", uint64(target.ID())),
		slog.Int("age", frame.Age),
		slog.Bool("fallback", frame.Fallback),
		slog.Any("existing", frame.ExistingDamage))
	return frame, nil
}

// SetDamageRegion restricts the upcoming present to r, the region of the
// target that was redrawn this frame.
func (d *Driver) SetDamageRegion(r Rect) error {
	if !d.valid {
		return ErrInvalidSurface
	}
	if d.state != StateRendering {
		return fmt.Errorf("%w: damage region set while %s", ErrFrameState, d.state)
	}
	d.tracker.SetPending(r)
	return nil
}

// Present presents target with frameDamage as the region that changed
// since the previous frame. The buffer damage is the region given to
// SetDamageRegion, or the full surface if none was set.
//
// On success frameDamage is added to the history. On failure the frame is
// dropped, the history is left as it was and the returned error wraps
// ErrPresentFailed. The pending region is cleared either way.
func (d *Driver) Present(target Target, frameDamage Rect) error {
	if !d.valid {
		return ErrInvalidSurface
	}
	if d.state != StateRendering {
		return fmt.Errorf("%w: present while %s", ErrFrameState, d.state)
	}
	if isNilTarget(target) || target.ID() != d.target.ID() {
		return ErrTargetMismatch
	}

	d.state = StatePresenting
	info := PresentInfo{BufferDamage: d.full, FrameDamage: frameDamage}
	if d.tracker.HasPending() {
		info.BufferDamage = d.tracker.TakePending()
	}

	err := d.hooks.Presenter.Present(target, info)
	d.state = StateCommitting
	if err != nil {
		d.stats.Dropped++
		Logger().Warn("damage: present failed, frame dropped",
			slog.Uint64("target", uint64(target.ID())),
			slog.String("err", err.Error()))
		d.endFrame()
		return fmt.Errorf("%w: %w", ErrPresentFailed, err)
	}

	d.history.Push(frameDamage)
	d.stats.Presented++
	Logger().Debug("damage: frame presented",
		slog.Any("buffer", info.BufferDamage),
		slog.Any("frame", info.FrameDamage))
	d.endFrame()
	return nil
}

// PresentWithDamage is SetDamageRegion followed by Present.
func (d *Driver) PresentWithDamage(target Target, bufferDamage, frameDamage Rect) error {
	if err := d.SetDamageRegion(bufferDamage); err != nil {
		return err
	}
	return d.Present(target, frameDamage)
}

// AbortFrame drops the acquired frame without presenting it.
func (d *Driver) AbortFrame() error {
	if !d.valid {
		return ErrInvalidSurface
	}
	if d.state != StateRendering {
		return fmt.Errorf("%w: abort while %s", ErrFrameState, d.state)
	}
	d.stats.Dropped++
	d.endFrame()
	return nil
}

// RenderFrame runs one complete frame: acquire, render with r, present
// and commit. Errors from r abort the frame.
func (d *Driver) RenderFrame(r Renderer) error {
	frame, err := d.AcquireFrame()
	if err != nil {
		return err
	}

	frameDamage, bufferDamage, err := r.RenderFrame(frame.Target, frame.ExistingDamage)
	if err != nil {
		_ = d.AbortFrame()
		return fmt.Errorf("damage: render: %w", err)
	}

	return d.PresentWithDamage(frame.Target, bufferDamage, frameDamage)
}

var errNilTarget = errors.New("nil target")

// isNilTarget reports whether t is nil or holds a nil pointer.
func isNilTarget(t Target) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// endFrame returns the driver to Idle and releases the context.
func (d *Driver) endFrame() {
	d.tracker.TakePending()
	d.target = nil
	d.state = StateIdle
	if err := d.hooks.Context.ClearCurrent(); err != nil {
		Logger().Warn("damage: clear current failed", slog.String("err", err.Error()))
	}
}
