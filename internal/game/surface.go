package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/confetti/internal/confetti"
)

// transformStack tracks the current user-to-screen transform with cairo
// semantics: Translate and Rotate act on the user space, so they are applied
// to points before the existing transform.
type transformStack struct {
	cur   ebiten.GeoM
	saved []ebiten.GeoM
}

func (t *transformStack) save() {
	t.saved = append(t.saved, t.cur)
}

// restore pops the last saved transform. An unbalanced restore is ignored.
func (t *transformStack) restore() {
	n := len(t.saved)
	if n == 0 {
		return
	}
	t.cur = t.saved[n-1]
	t.saved = t.saved[:n-1]
}

func (t *transformStack) translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(t.cur)
	t.cur = m
}

func (t *transformStack) rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(t.cur)
	t.cur = m
}

// rect returns the transform that maps the unit square onto the rectangle
// (x, y, w, h) in user space and then onto the screen.
func (t *transformStack) rect(x, y, w, h float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(w, h)
	m.Translate(x, y)
	m.Concat(t.cur)
	return m
}

// ebitenSurface implements confetti.Surface on top of an ebiten.Image by
// stretching a 1x1 white texture over every filled rectangle.
type ebitenSurface struct {
	dst   *ebiten.Image
	pixel *ebiten.Image

	stack transformStack
	fill  ebiten.ColorScale
	path  []ebiten.GeoM
}

func newEbitenSurface(dst, pixel *ebiten.Image) *ebitenSurface {
	return &ebitenSurface{dst: dst, pixel: pixel}
}

func (s *ebitenSurface) Clear() {
	s.dst.Clear()
}

func (s *ebitenSurface) Save()    { s.stack.save() }
func (s *ebitenSurface) Restore() { s.stack.restore() }

func (s *ebitenSurface) Translate(x, y float64) { s.stack.translate(x, y) }
func (s *ebitenSurface) Rotate(theta float64)   { s.stack.rotate(theta) }

func (s *ebitenSurface) SetFill(c confetti.RGB, alpha float64) {
	s.fill = colorScale(c, alpha)
}

// Rect captures the transform in effect now, like a cairo path does.
func (s *ebitenSurface) Rect(x, y, w, h float64) {
	s.path = append(s.path, s.stack.rect(x, y, w, h))
}

func (s *ebitenSurface) Fill() {
	for _, geo := range s.path {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = geo
		op.ColorScale = s.fill
		s.dst.DrawImage(s.pixel, op)
	}
	s.path = s.path[:0]
}
