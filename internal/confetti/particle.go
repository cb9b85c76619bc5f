package confetti

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/confetti/internal/config"
)

// Particle is one confetti piece.
type Particle struct {
	X, Y   float64 // centre, screen pixels
	VX, VY float64 // pixels/second

	Width, Height float64

	Rotation      float64 // radians
	RotationSpeed float64 // radians/second

	Color RGB
	Alpha float64 // set by the owning Simulation every tick
}

// NewParticle launches a piece from the left or right screen edge toward a
// point above the screen centre, with an extra upward kick.
func NewParticle(rng *rand.Rand, screenWidth, screenHeight float64) Particle {
	x := 0.0
	if rng.IntN(2) == 1 {
		x = screenWidth
	}
	y := screenHeight * uniform(rng, config.StartYMin, config.StartYMax)

	targetX := screenWidth/2 + uniform(rng, -config.TargetSpreadX, config.TargetSpreadX)
	targetY := screenHeight * uniform(rng, config.TargetYMin, config.TargetYMax)

	speed := uniform(rng, config.LaunchSpeedMin, config.LaunchSpeedMax)
	dirX, dirY := direction(x, y, targetX, targetY)

	p := Particle{
		X:  x,
		Y:  y,
		VX: dirX * speed,
		VY: dirY*speed - uniform(rng, config.PopMin, config.PopMax),
	}
	p.Width = uniform(rng, config.PieceWidthMin, config.PieceWidthMax)
	p.Height = uniform(rng, config.PieceHeightMin, config.PieceHeightMax)
	p.Rotation = uniform(rng, 0, config.FullTurn)
	p.RotationSpeed = uniform(rng, -config.SpinMax, config.SpinMax)
	p.Color = Palette[rng.IntN(len(Palette))]
	p.Alpha = 1.0
	return p
}

// direction returns the unit vector from (x0, y0) to (x1, y1), or the zero
// vector when the points coincide.
func direction(x0, y0, x1, y1 float64) (float64, float64) {
	dx := x1 - x0
	dy := y1 - y0
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return dx / dist, dy / dist
}

// Update advances the piece by dt seconds. Drag is applied once per call, not
// scaled by dt.
func (p *Particle) Update(dt float64) {
	p.VY += config.Gravity * dt
	p.VX *= config.Drag
	p.VY *= config.Drag

	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.Rotation += p.RotationSpeed * dt
}

// Draw paints the piece as a rotated rectangle centred on (X, Y).
func (p *Particle) Draw(s Surface) {
	s.Save()
	defer s.Restore()

	s.Translate(p.X, p.Y)
	s.Rotate(p.Rotation)
	s.SetFill(p.Color, p.Alpha)
	s.Rect(-p.Width/2, -p.Height/2, p.Width, p.Height)
	s.Fill()
}
