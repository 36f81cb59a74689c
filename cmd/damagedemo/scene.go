package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/damage"
	"github.com/gogpu/damage/backend/term"
	"github.com/gogpu/damage/render"
)

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
	boxStyles       = []tcell.Style{
		tcell.StyleDefault.Background(tcell.ColorRed),
		tcell.StyleDefault.Background(tcell.ColorGreen),
		tcell.StyleDefault.Background(tcell.ColorBlue),
		tcell.StyleDefault.Background(tcell.ColorYellow),
	}
)

type box struct {
	rect   damage.Rect
	dx, dy int
}

// scene is a set of boxes bouncing inside the surface. It implements
// damage.Renderer and repaints only the existing damage of the target plus
// the box movement of the frame.
type scene struct {
	width, height int
	boxes         []box
	dirty         render.DirtySet
}

func newScene(width, height, count int) *scene {
	s := &scene{width: width, height: height}
	for i := 0; i < count; i++ {
		x, y := 1+i*5, 1+i*2
		if span := width - 6; span > 0 {
			x %= span
		} else {
			x = 0
		}
		if span := height - 3; span > 0 {
			y %= span
		} else {
			y = 0
		}
		s.boxes = append(s.boxes, box{
			rect: damage.NewRect(x, y, x+6, y+3),
			dx:   1 + i%2,
			dy:   1,
		})
	}
	s.dirty.InvalidateAll()
	return s
}

func (s *scene) bounds() damage.Rect {
	return damage.RectFromSize(s.width, s.height)
}

// resize changes the area the boxes bounce in and invalidates everything.
func (s *scene) resize(width, height int) {
	s.width, s.height = width, height
	s.dirty.InvalidateAll()
}

// step moves every box one frame and invalidates its old and new position.
func (s *scene) step() {
	for i := range s.boxes {
		b := &s.boxes[i]
		s.dirty.Invalidate(b.rect)

		if b.rect.Left+b.dx < 0 || b.rect.Right+b.dx > s.width {
			b.dx = -b.dx
		}
		if b.rect.Top+b.dy < 0 || b.rect.Bottom+b.dy > s.height {
			b.dy = -b.dy
		}
		b.rect = damage.NewRect(b.rect.Left+b.dx, b.rect.Top+b.dy, b.rect.Right+b.dx, b.rect.Bottom+b.dy)

		s.dirty.Invalidate(b.rect)
	}
}

// RenderFrame draws the current state into target. Targets other than
// terminal buffers are not drawn into; their damage is still reported.
func (s *scene) RenderFrame(target damage.Target, existing damage.Rect) (damage.Rect, damage.Rect, error) {
	frameDamage := s.dirty.Bounds(s.bounds())
	region := existing.Join(frameDamage).Intersect(damage.RectFromSize(target.Width(), target.Height()))

	if buf, ok := target.(*term.Buffer); ok {
		s.draw(buf, region)
	}

	s.dirty.Clear()
	return frameDamage, region, nil
}

func (s *scene) draw(buf *term.Buffer, clip damage.Rect) {
	buf.Fill(clip, ' ', backgroundStyle)
	for i, b := range s.boxes {
		buf.Fill(b.rect.Intersect(clip), ' ', boxStyles[i%len(boxStyles)])
	}
}
