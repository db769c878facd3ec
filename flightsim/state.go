package flightsim

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/zeebo/xxh3"
)

// State is the single mutable record of a flight. Kinematics are written by the integrator only, the
// phase and fuel by the phase state machine.
type State struct {
	Pos, Vel    mgl64.Vec3
	Orientation mgl64.Quat

	Phase Phase
	Fuel  float64

	// Elapsed is the simulated time since the last reset, in seconds.
	Elapsed float64
	// Tick is the number of simulated ticks since the last reset.
	Tick uint64

	// LastImpactPos is where the missile hit the ground. It is only meaningful while Impacted is set.
	LastImpactPos mgl64.Vec3
	// Impacted latches the first transition into PhaseImpact so impact effects fire once per flight.
	Impacted bool
}

// NewState returns a missile sitting on the launch platform, fuelled and ready to boost.
func NewState(params Params, opts Options) State {
	var s State
	s.Reset(params, opts)
	return s
}

// Reset fully reinitialises the state. Calling it twice in a row leaves the same state as calling it
// once.
func (s *State) Reset(params Params, opts Options) {
	*s = State{
		Pos:         opts.StartPosition,
		Orientation: mgl64.QuatIdent(),
		Phase:       PhaseBoost,
		Fuel:        math.Max(params.InitialFuel, 0),
	}
}

// Speed returns the length of the velocity.
func (s State) Speed() float64 {
	return s.Vel.Len()
}

// Altitude returns the height of the body above the ground, never negative.
func (s State) Altitude() float64 {
	return math.Max(0, s.Pos.Y())
}

// Fingerprint hashes every field of the state. Two states with equal fingerprints are, for all practical
// purposes, identical; it is used to compare runs and resets without field by field comparisons.
func (s State) Fingerprint() uint64 {
	buf := make([]byte, 0, 18*8+2)
	for _, v := range []float64{
		s.Pos[0], s.Pos[1], s.Pos[2],
		s.Vel[0], s.Vel[1], s.Vel[2],
		s.Orientation.W, s.Orientation.V[0], s.Orientation.V[1], s.Orientation.V[2],
		s.Fuel, s.Elapsed,
		s.LastImpactPos[0], s.LastImpactPos[1], s.LastImpactPos[2],
	} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	buf = binary.LittleEndian.AppendUint64(buf, s.Tick)
	buf = append(buf, byte(s.Phase))
	if s.Impacted {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return xxh3.Hash(buf)
}
