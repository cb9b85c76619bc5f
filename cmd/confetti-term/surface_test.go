package main

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/confetti/internal/confetti"
)

type cell struct {
	glyph rune
	style tcell.Style
}

type fakeGrid struct {
	cols, rows int
	cells      map[[2]int]cell
	clears     int
}

func newFakeGrid(cols, rows int) *fakeGrid {
	return &fakeGrid{cols: cols, rows: rows, cells: map[[2]int]cell{}}
}

func (g *fakeGrid) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	g.cells[[2]int{x, y}] = cell{glyph: primary, style: style}
}

func (g *fakeGrid) Clear() {
	g.clears++
	g.cells = map[[2]int]cell{}
}

func (g *fakeGrid) Size() (int, int) { return g.cols, g.rows }

func TestAffinePre(t *testing.T) {
	m := identity.pre(affine{a: 1, d: 1, tx: 10, ty: 20})
	sin, cos := math.Sincos(math.Pi / 2)
	m = m.pre(affine{a: cos, b: sin, c: -sin, d: cos})

	x, y := m.apply(1, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-21) > 1e-9 {
		t.Errorf("apply(1, 0) = (%v, %v), want (10, 21)", x, y)
	}
}

func TestCellSurfaceDrawsParticleCell(t *testing.T) {
	grid := newFakeGrid(80, 24)
	s := newCellSurface(grid)

	// Upright piece centred at pixel (100, 40): column 12, row 2.
	p := confetti.Particle{X: 100, Y: 40, Width: 8, Height: 16, Color: confetti.Palette[0], Alpha: 1}
	p.Draw(s)

	c, ok := grid.cells[[2]int{12, 2}]
	if !ok {
		t.Fatalf("no cell drawn, got %v", grid.cells)
	}
	if c.glyph != '▮' {
		t.Errorf("glyph = %q, want upright bar", c.glyph)
	}
	fg, _, _ := c.style.Decompose()
	if want := tcell.NewRGBColor(255, 51, 77); fg != want {
		t.Errorf("foreground = %v, want %v", fg, want)
	}
	if len(s.saved) != 0 {
		t.Errorf("transform stack not balanced: %d", len(s.saved))
	}
}

func TestCellSurfaceRotatedGlyphAndFade(t *testing.T) {
	grid := newFakeGrid(80, 24)
	s := newCellSurface(grid)

	p := confetti.Particle{X: 40, Y: 40, Width: 8, Height: 16, Rotation: math.Pi / 2, Color: confetti.Palette[0], Alpha: 0.5}
	p.Draw(s)

	c := grid.cells[[2]int{5, 2}]
	if c.glyph != '▬' {
		t.Errorf("glyph = %q, want lying bar", c.glyph)
	}
	fg, _, _ := c.style.Decompose()
	if want := tcell.NewRGBColor(128, 26, 38); fg != want {
		t.Errorf("foreground = %v, want %v", fg, want)
	}
}

func TestCellSurfaceClipsOffscreen(t *testing.T) {
	grid := newFakeGrid(10, 5)
	s := newCellSurface(grid)

	for _, pos := range [][2]float64{{-20, 10}, {10, -20}, {10 * cellWidth, 10}, {10, 5 * cellHeight}} {
		p := confetti.Particle{X: pos[0], Y: pos[1], Width: 8, Height: 12, Alpha: 1}
		p.Draw(s)
	}
	if len(grid.cells) != 0 {
		t.Errorf("offscreen pieces drawn: %v", grid.cells)
	}
}

func TestCellSurfaceRendersSimulation(t *testing.T) {
	grid := newFakeGrid(240, 68)
	clock := &confetti.ManualClock{T: time.Unix(0, 0)}
	sim := confetti.NewSimulation(confetti.NewRand(3), clock, 240*cellWidth, 68*cellHeight)

	clock.Advance(500 * time.Millisecond)
	sim.Update()
	sim.Render(newCellSurface(grid))

	if grid.clears != 1 {
		t.Errorf("grid cleared %d times, want 1", grid.clears)
	}
	if len(grid.cells) == 0 {
		t.Error("nothing drawn after half a second of flight")
	}
}
