// Package confetti simulates a one-shot confetti burst: a fixed population of
// pieces launched from both screen edges, pulled down by gravity and faded
// out over the last second of the animation.
package confetti

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/confetti/internal/config"
)

// State is the lifecycle of a Simulation.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Simulation owns every particle of one burst.
//
// A Simulation is not safe for concurrent use. It is meant to be touched only
// from the event loop goroutine that drives both Update and Render.
type Simulation struct {
	particles []Particle
	clock     Clock

	start    time.Time
	lastTick time.Time
	elapsed  time.Duration
	alpha    float64
	state    State
}

// NewSimulation builds config.ParticleCount particles for a screen of the
// given size and starts the clock.
func NewSimulation(rng *rand.Rand, clock Clock, screenWidth, screenHeight float64) *Simulation {
	particles := make([]Particle, config.ParticleCount)
	for i := range particles {
		particles[i] = NewParticle(rng, screenWidth, screenHeight)
	}

	now := clock.Now()
	return &Simulation{
		particles: particles,
		clock:     clock,
		start:     now,
		lastTick:  now,
		alpha:     1.0,
		state:     Running,
	}
}

// FadeAlpha is the global opacity at a given point of the animation: fully
// opaque until the fade window, then linear down to zero at config.Duration.
func FadeAlpha(elapsed time.Duration) float64 {
	fadeStart := config.Duration - config.FadeDuration
	if elapsed <= fadeStart {
		return 1.0
	}
	return 1.0 - (elapsed-fadeStart).Seconds()/config.FadeDuration.Seconds()
}

// Update advances the burst by the wall time since the previous call and
// reports whether the animation should continue.
func (s *Simulation) Update() bool {
	if s.state == Stopped {
		return false
	}

	now := s.clock.Now()
	dt := now.Sub(s.lastTick).Seconds()
	s.lastTick = now
	s.elapsed = now.Sub(s.start)

	if s.elapsed > config.Duration {
		s.state = Stopped
		return false
	}

	s.alpha = FadeAlpha(s.elapsed)
	for i := range s.particles {
		p := &s.particles[i]
		p.Update(dt)
		p.Alpha = s.alpha
	}
	return true
}

// Render clears s and draws every particle in construction order.
func (s *Simulation) Render(surface Surface) {
	surface.Clear()
	for i := range s.particles {
		s.particles[i].Draw(surface)
	}
}

// Particles exposes the particle slice. Callers must not modify it.
func (s *Simulation) Particles() []Particle { return s.particles }

func (s *Simulation) State() State { return s.state }

// Elapsed is the animation time observed by the last Update.
func (s *Simulation) Elapsed() time.Duration { return s.elapsed }

// Alpha is the global opacity applied by the last Update.
func (s *Simulation) Alpha() float64 { return s.alpha }
