package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/confetti/internal/confetti"
)

// OverlayConfig wires an Overlay to the rest of the program.
type OverlayConfig struct {
	Width, Height int

	// Debug draws a stats line in the top left corner.
	Debug bool

	// OnStart runs on the first tick, when the burst becomes visible.
	OnStart func()

	// OnClose runs exactly once, on the tick the simulation stops.
	OnClose func()
}

// Overlay drives a Simulation from Ebitengine's game loop. Update is the
// fixed rate timer callback and Draw is the repaint callback. Ebitengine calls
// both from the same goroutine, never concurrently, which is the only access
// the Simulation gets.
type Overlay struct {
	sim *confetti.Simulation
	cfg OverlayConfig

	started bool
	closed  bool

	pixel *ebiten.Image
}

func NewOverlay(sim *confetti.Simulation, cfg OverlayConfig) *Overlay {
	return &Overlay{
		sim: sim,
		cfg: cfg,
	}
}

// Update advances the simulation by one tick. Once it stops the window
// close hook fires and the loop is told to terminate.
func (o *Overlay) Update() error {
	if o.closed {
		return ebiten.Termination
	}

	if !o.started {
		o.started = true
		if o.cfg.OnStart != nil {
			o.cfg.OnStart()
		}
	}

	if o.sim.Update() {
		return nil
	}

	o.close()
	return ebiten.Termination
}

func (o *Overlay) close() {
	o.closed = true
	log.Printf("[Overlay] Burst finished after %v", o.sim.Elapsed())
	if o.cfg.OnClose != nil {
		o.cfg.OnClose()
	}
}

// Closed reports whether the close hook has fired.
func (o *Overlay) Closed() bool { return o.closed }

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.closed {
		return
	}

	if o.pixel == nil {
		o.pixel = ebiten.NewImage(1, 1)
		o.pixel.Fill(color.White)
	}
	o.render(newEbitenSurface(screen, o.pixel))

	if o.cfg.Debug {
		stats := fmt.Sprintf("FPS: %0.1f  TPS: %0.1f\nElapsed: %0.2fs  Alpha: %0.2f  State: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			o.sim.Elapsed().Seconds(), o.sim.Alpha(), o.sim.State())
		ebitenutil.DebugPrintAt(screen, stats, 12, 12)
	}
}

// render paints the simulation onto s unless the overlay already closed.
func (o *Overlay) render(s confetti.Surface) bool {
	if o.closed {
		return false
	}
	o.sim.Render(s)
	return true
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return o.cfg.Width, o.cfg.Height
}
