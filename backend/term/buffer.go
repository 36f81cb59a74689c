// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/damage"
)

type cell struct {
	r     rune
	style tcell.Style
}

// Buffer is one back buffer of a Surface swap chain: a grid of styled
// terminal cells. Cells keep their content between frames, so a renderer
// only has to repaint the existing damage of the frame.
type Buffer struct {
	owner  *Surface
	slot   int
	width  int
	height int
	cells  []cell
}

var _ damage.Target = (*Buffer)(nil)

func newBuffer(owner *Surface, slot, width, height int) *Buffer {
	b := &Buffer{
		owner:  owner,
		slot:   slot,
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for i := range b.cells {
		b.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
	return b
}

// ID returns the swap chain slot of the buffer.
func (b *Buffer) ID() uintptr { return uintptr(b.slot) }

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// Bounds returns the rect covering the whole buffer.
func (b *Buffer) Bounds() damage.Rect { return damage.RectFromSize(b.width, b.height) }

// SetCell sets the cell at (x, y). Coordinates outside the buffer are
// ignored.
func (b *Buffer) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell{r: r, style: style}
}

// Cell returns the content of the cell at (x, y). Cells outside the buffer
// read as blanks.
func (b *Buffer) Cell(x, y int) (rune, tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return ' ', tcell.StyleDefault
	}
	c := b.cells[y*b.width+x]
	return c.r, c.style
}

// Fill sets every cell of r, clipped to the buffer, to the same content.
func (b *Buffer) Fill(r damage.Rect, ch rune, style tcell.Style) {
	r = r.Intersect(b.Bounds())
	for y := r.Top; y < r.Bottom; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := r.Left; x < r.Right; x++ {
			row[x] = cell{r: ch, style: style}
		}
	}
}
