package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/confetti/internal/confetti"
)

// Pixels covered by one terminal cell.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// cellGrid is the part of tcell.Screen the surface draws with.
type cellGrid interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Size() (int, int)
}

// affine maps user space to pixels: x' = a*x + c*y + tx, y' = b*x + d*y + ty.
type affine struct {
	a, b, c, d, tx, ty float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.tx, m.b*x + m.d*y + m.ty
}

// pre returns m with n applied first.
func (m affine) pre(n affine) affine {
	return affine{
		a:  m.a*n.a + m.c*n.b,
		b:  m.b*n.a + m.d*n.b,
		c:  m.a*n.c + m.c*n.d,
		d:  m.b*n.c + m.d*n.d,
		tx: m.a*n.tx + m.c*n.ty + m.tx,
		ty: m.b*n.tx + m.d*n.ty + m.ty,
	}
}

type cellRect struct {
	cx, cy float64 // centre in pixels
	wide   bool    // long side runs more horizontal than vertical
}

// cellSurface renders confetti into terminal cells, one glyph per piece at
// the cell under its centre.
type cellSurface struct {
	grid cellGrid

	cur   affine
	saved []affine
	color tcell.Color
	path  []cellRect
}

func newCellSurface(grid cellGrid) *cellSurface {
	return &cellSurface{grid: grid, cur: identity}
}

func (s *cellSurface) Clear() { s.grid.Clear() }

func (s *cellSurface) Save() { s.saved = append(s.saved, s.cur) }

func (s *cellSurface) Restore() {
	if n := len(s.saved); n > 0 {
		s.cur = s.saved[n-1]
		s.saved = s.saved[:n-1]
	}
}

func (s *cellSurface) Translate(x, y float64) {
	s.cur = s.cur.pre(affine{a: 1, d: 1, tx: x, ty: y})
}

func (s *cellSurface) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	s.cur = s.cur.pre(affine{a: cos, b: sin, c: -sin, d: cos})
}

// SetFill fades the colour toward the black terminal background.
func (s *cellSurface) SetFill(c confetti.RGB, alpha float64) {
	alpha = math.Max(0, math.Min(1, alpha))
	channel := func(v float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, v)) * alpha * 255))
	}
	s.color = tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func (s *cellSurface) Rect(x, y, w, h float64) {
	cx, cy := s.cur.apply(x+w/2, y+h/2)
	// Direction of the long side after the transform.
	var lx, ly float64
	if w >= h {
		lx, ly = s.cur.a, s.cur.b
	} else {
		lx, ly = s.cur.c, s.cur.d
	}
	s.path = append(s.path, cellRect{cx: cx, cy: cy, wide: math.Abs(lx) > math.Abs(ly)})
}

func (s *cellSurface) Fill() {
	cols, rows := s.grid.Size()
	style := tcell.StyleDefault.Foreground(s.color)
	for _, r := range s.path {
		col := int(math.Floor(r.cx / cellWidth))
		row := int(math.Floor(r.cy / cellHeight))
		if col < 0 || col >= cols || row < 0 || row >= rows {
			continue
		}
		glyph := '▮'
		if r.wide {
			glyph = '▬'
		}
		s.grid.SetContent(col, row, glyph, nil, style)
	}
	s.path = s.path[:0]
}
