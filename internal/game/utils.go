package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/confetti/internal/confetti"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// colorScale turns a straight-alpha colour into the premultiplied scale
// Ebitengine expects.
func colorScale(c confetti.RGB, alpha float64) ebiten.ColorScale {
	a := float32(clamp01(alpha))
	var cs ebiten.ColorScale
	cs.Scale(float32(clamp01(c.R))*a, float32(clamp01(c.G))*a, float32(clamp01(c.B))*a, a)
	return cs
}
