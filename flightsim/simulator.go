package flightsim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/game"
)

// Options define the fixed environment the simulator runs in.
type Options struct {
	// ImpactAltitude is the body altitude at or below which the missile is considered to have hit
	// the ground.
	ImpactAltitude float64
	// StartPosition is where the missile sits on the launch platform after a reset.
	StartPosition mgl64.Vec3

	// Debugf receives internal simulation trace logs for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// DefaultOptions returns the options of the stock launch site.
func DefaultOptions() Options {
	return Options{
		ImpactAltitude: game.DefaultImpactAltitude,
		StartPosition:  mgl64.Vec3{0, game.LaunchHeight, 0},
	}
}

// Simulator advances a missile State one tick at a time. It holds no per-flight state, so a single
// Simulator may be shared by any number of states.
type Simulator struct {
	Options Options
}

// NewSimulator returns a Simulator using the options passed.
func NewSimulator(opts Options) *Simulator {
	return &Simulator{Options: opts}
}

func (s *Simulator) debugf(format string, args ...any) {
	if s.Options.Debugf != nil {
		s.Options.Debugf(format, args...)
	}
}
