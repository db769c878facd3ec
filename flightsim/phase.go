package flightsim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/game"
)

// Phase is a stage of the flight. Phases only ever advance in declaration order until a reset.
type Phase uint8

const (
	PhaseBoost Phase = iota
	PhaseMidcourse
	PhaseReentry
	PhaseImpact
)

func (p Phase) String() string {
	switch p {
	case PhaseBoost:
		return "Boost"
	case PhaseMidcourse:
		return "Midcourse"
	case PhaseReentry:
		return "Re-entry"
	case PhaseImpact:
		return "Impact"
	}
	return "Unknown"
}

// FlameVisible reports whether the exhaust flame is shown during the phase.
func (p Phase) FlameVisible() bool {
	return p == PhaseBoost
}

// BoostOrientation returns the body rotation during boost: a tilt about Z growing linearly with the
// share of fuel already burned, up to game.TargetTiltAngle.
func BoostOrientation(fuel, initialFuel float64) mgl64.Quat {
	progress := 1.0
	if initialFuel > 0 {
		progress = game.ClampFloat(1-fuel/initialFuel, 0, 1)
	}
	return mgl64.QuatRotate(game.TargetTiltAngle*progress, mgl64.Vec3{0, 0, 1})
}

// forces composes the forces active in the current phase.
func (s *Simulator) forces(state *State, params Params) Forces {
	switch state.Phase {
	case PhaseBoost:
		return Forces{
			Thrust: Thrust(state.Orientation, params.Thrust),
			Weight: Weight(params.Mass),
			Drag:   Drag(state.Vel, state.Pos.Y(), params.DragCoefficient, params.Area),
		}
	case PhaseMidcourse:
		return Forces{Weight: Weight(params.Mass)}
	case PhaseReentry:
		return Forces{
			Weight: Weight(params.Mass),
			Drag:   Drag(state.Vel, state.Pos.Y(), params.DragCoefficient, params.Area),
		}
	}
	return Forces{}
}

// transition moves the state into the phase passed and records it on the result.
func (s *Simulator) transition(state *State, res *Result, to Phase) {
	s.debugf("phase transition %v -> %v (t=%.3fs, pos=%v, vel=%v)", state.Phase, to, state.Elapsed, state.Pos, state.Vel)
	state.Phase = to
	res.Phase = to
}

// impact moves any airborne state into PhaseImpact once the body reaches the impact altitude. It
// returns true only for the tick in which the impact happened.
func (s *Simulator) impact(state *State, res *Result) bool {
	if state.Phase == PhaseImpact || state.Pos.Y() > s.Options.ImpactAltitude {
		return false
	}
	state.Vel = mgl64.Vec3{}
	state.Pos[1] = s.Options.ImpactAltitude
	s.transition(state, res, PhaseImpact)

	if state.Impacted {
		// The latch survives anything short of a reset, so effects can never fire twice.
		return false
	}
	state.Impacted = true
	state.LastImpactPos = state.Pos
	return true
}

// velocityOrientation rotates the body axis onto the direction of travel.
func velocityOrientation(vel mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatBetweenVectors(game.Up, game.SafeNormalize(vel))
}
