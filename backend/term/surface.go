// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/damage"
	"github.com/gogpu/damage/surface"
)

const (
	// DefaultBuffers is the swap chain length used when Options.Buffers is
	// zero.
	DefaultBuffers = 2

	// MaxBuffers is the longest supported swap chain.
	MaxBuffers = 4
)

var (
	// ErrClosed is returned by operations on a closed Surface.
	ErrClosed = errors.New("term: surface closed")

	// ErrNotCurrent is returned by Present when the surface context is not
	// bound.
	ErrNotCurrent = errors.New("term: context not current")

	// ErrForeignTarget is returned by Present for targets that were not
	// handed out by the surface.
	ErrForeignTarget = errors.New("term: target does not belong to surface")
)

// Surface presents a swap chain of cell buffers to a tcell screen.
//
// Presenting copies the frame damage of a buffer to the screen and flushes
// it. Each buffer keeps the content of the frame it last presented, and the
// surface reports exact buffer ages for them.
type Surface struct {
	screen     tcell.Screen
	ownsScreen bool

	buffers []*Buffer
	// lastPresented holds the present sequence number of each slot's
	// content, zero for slots never presented.
	lastPresented []uint64
	presents      uint64
	next          int

	// fullCopy forces the next present to copy the whole buffer, after the
	// screen content was lost.
	fullCopy bool

	disableAge     bool
	current        bool
	closed         bool
	closeRequested atomic.Bool
}

var (
	_ surface.Backend        = (*Surface)(nil)
	_ surface.CloseRequester = (*Surface)(nil)
	_ damage.AgeSource       = (*Surface)(nil)
)

func init() {
	surface.Register("term", 10, func(opts surface.Options) (surface.Backend, error) {
		return Open(opts)
	}, nil)
}

// Open initializes the terminal and returns a Surface presenting to it.
// A goroutine polls terminal events until the surface is closed.
func Open(opts surface.Options) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}

	s, err := New(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	s.ownsScreen = true
	screen.Clear()

	go s.pollEvents()
	return s, nil
}

// New returns a Surface presenting to an initialized screen. The caller
// keeps ownership of the screen and delivers its events with HandleEvent.
func New(screen tcell.Screen, opts surface.Options) (*Surface, error) {
	n := opts.Buffers
	if n == 0 {
		n = DefaultBuffers
	}
	if n < 1 || n > MaxBuffers {
		return nil, &damage.ConfigurationError{
			Reason: fmt.Sprintf("term: swap chain of %d buffers, want 1 to %d", n, MaxBuffers),
		}
	}

	s := &Surface{
		screen:        screen,
		buffers:       make([]*Buffer, n),
		lastPresented: make([]uint64, n),
		disableAge:    opts.DisableBufferAge,
	}
	s.reallocate(screen.Size())
	return s, nil
}

// Buffers returns the swap chain length.
func (s *Surface) Buffers() int { return len(s.buffers) }

// Size returns the screen size in cells.
func (s *Surface) Size() (int, int) { return s.screen.Size() }

// reallocate replaces every buffer with a blank one of the given size.
// Blank buffers have age zero.
func (s *Surface) reallocate(width, height int) {
	for i := range s.buffers {
		s.buffers[i] = newBuffer(s, i, width, height)
		s.lastPresented[i] = 0
	}
	s.next = 0
	s.fullCopy = true
}

// MakeCurrent binds the surface for a frame.
func (s *Surface) MakeCurrent() error {
	if s.closed {
		return ErrClosed
	}
	s.current = true
	return nil
}

// ClearCurrent releases the surface.
func (s *Surface) ClearCurrent() error {
	s.current = false
	return nil
}

// AcquireTarget returns the next buffer of the swap chain. The buffer only
// advances on a successful present, so an aborted frame gets the same
// buffer again.
//
// When the screen was resized the whole swap chain is reallocated at the
// new size.
func (s *Surface) AcquireTarget(damage.FrameInfo) (damage.Target, error) {
	if s.closed {
		return nil, ErrClosed
	}
	w, h := s.screen.Size()
	if b := s.buffers[0]; b.width != w || b.height != h {
		damage.Logger().Info("term: screen resized, swap chain reallocated",
			slog.Int("width", w), slog.Int("height", h))
		s.reallocate(w, h)
	}
	return s.buffers[s.next], nil
}

// BufferAge reports how many presents ago the content of target was
// presented: 0 for a buffer that was never presented, 1 for the buffer on
// screen.
func (s *Surface) BufferAge(target damage.Target) (int, bool) {
	if s.disableAge {
		return 0, false
	}
	b, ok := s.own(target)
	if !ok {
		return 0, true
	}
	last := s.lastPresented[b.slot]
	if last == 0 {
		return 0, true
	}
	return int(s.presents-last) + 1, true
}

// Present copies the frame damage of target to the screen and shows it.
func (s *Surface) Present(target damage.Target, info damage.PresentInfo) error {
	if s.closed {
		return ErrClosed
	}
	if !s.current {
		return ErrNotCurrent
	}
	b, ok := s.own(target)
	if !ok {
		return ErrForeignTarget
	}

	region := info.FrameDamage
	if s.fullCopy {
		region = b.Bounds()
	}
	region = region.Intersect(b.Bounds())
	for y := region.Top; y < region.Bottom; y++ {
		for x := region.Left; x < region.Right; x++ {
			c := b.cells[y*b.width+x]
			s.screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
	s.screen.Show()

	s.presents++
	s.lastPresented[b.slot] = s.presents
	s.next = (b.slot + 1) % len(s.buffers)
	s.fullCopy = false
	return nil
}

func (s *Surface) own(target damage.Target) (*Buffer, bool) {
	b, ok := target.(*Buffer)
	if !ok || b.owner != s || b.slot >= len(s.buffers) || s.buffers[b.slot] != b {
		return nil, false
	}
	return b, true
}

// HandleEvent processes a terminal event. Escape, Ctrl-C and q request
// close; a resize resynchronizes the screen.
func (s *Surface) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			s.closeRequested.Store(true)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Surface) pollEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.HandleEvent(ev)
	}
}

// CloseRequested reports whether the user asked to quit.
func (s *Surface) CloseRequested() bool { return s.closeRequested.Load() }

// Close finalizes the screen if the surface opened it. Close is
// idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.current = false
	if s.ownsScreen {
		s.screen.Fini()
	}
	return nil
}
