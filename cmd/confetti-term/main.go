// Command confetti-term plays the confetti burst inside a terminal. It runs
// the same simulation as the overlay, drawn with one glyph per piece.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/confetti/internal/confetti"
	"github.com/iburimskiy/confetti/internal/config"
)

type player struct {
	screen  tcell.Screen
	sim     *confetti.Simulation
	surface *cellSurface
}

func newPlayer(seed uint64) (*player, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	cols, rows := screen.Size()
	width, height := float64(cols)*cellWidth, float64(rows)*cellHeight

	return &player{
		screen:  screen,
		sim:     confetti.NewSimulation(confetti.NewRand(seed), confetti.SystemClock{}, width, height),
		surface: newCellSurface(screen),
	}, nil
}

// run drives the simulation at the overlay frame rate until it stops or the
// user presses Esc or Ctrl-C. It reports whether the burst ran to the end.
func (p *player) run() bool {
	ticker := time.NewTicker(time.Second / config.FrameRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return false
				}
			case *tcell.EventResize:
				p.screen.Sync()
			}

		case <-ticker.C:
			if !p.sim.Update() {
				return true
			}
			p.sim.Render(p.surface)
			p.screen.Show()
		}
	}
}

func main() {
	seed := flag.Uint64("seed", 0, "random seed for the burst (0 = time based)")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	p, err := newPlayer(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "confetti-term: %v\n", err)
		os.Exit(1)
	}

	finished := p.run()
	p.screen.Fini()

	if !finished {
		log.Printf("[Term] Interrupted after %v", p.sim.Elapsed())
	}
}
