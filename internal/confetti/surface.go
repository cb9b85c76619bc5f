package confetti

// RGB is a colour with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Palette is the fixed set of confetti colours.
var Palette = [8]RGB{
	{1.0, 0.2, 0.3}, // red
	{1.0, 0.5, 0.0}, // orange
	{1.0, 0.9, 0.0}, // yellow
	{0.2, 0.8, 0.2}, // green
	{0.2, 0.6, 1.0}, // blue
	{0.6, 0.2, 0.8}, // purple
	{1.0, 0.4, 0.7}, // pink
	{0.0, 0.9, 0.9}, // cyan
}

// Surface is a 2D vector drawing target with a save/restore transform stack,
// in the style of cairo. Transforms apply to subsequently added paths.
type Surface interface {
	// Clear erases everything to fully transparent.
	Clear()
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
	SetFill(c RGB, alpha float64)
	// Rect adds a rectangle to the current path.
	Rect(x, y, w, h float64)
	// Fill paints the current path with the fill colour and clears the path.
	Fill()
}
