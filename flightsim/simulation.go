package flightsim

import (
	"math"

	"github.com/vestorino/Ballistic-Missile/assert"
	"github.com/vestorino/Ballistic-Missile/game"
)

// Simulate runs a single tick of dt seconds and returns what happened during it. The state is updated
// in place. A non-positive dt leaves the state untouched, which is how a paused clock is expressed.
func (s *Simulator) Simulate(state *State, params Params, dt float64) Result {
	if state == nil {
		return Result{}
	}
	res := Result{PrevPhase: state.Phase, Phase: state.Phase}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return res
	}
	state.Tick++
	state.Elapsed += dt

	if state.Phase == PhaseImpact {
		return res
	}

	// A motor without fuel or thrust ends the boost before anything is integrated.
	if state.Phase == PhaseBoost && (state.Fuel <= 0 || params.Thrust <= 0) {
		state.Fuel = 0
		s.transition(state, &res, PhaseMidcourse)
	}

	if state.Phase == PhaseBoost {
		state.Orientation = BoostOrientation(state.Fuel, params.InitialFuel)
	}
	res.Forces = s.forces(state, params)
	res.Boosting = state.Phase == PhaseBoost

	Integrate(state, res.Forces.Net(), params.Mass, dt)
	res.Integrated = true

	if state.Phase != PhaseBoost && state.Speed() > game.OrientationSpeedThreshold {
		state.Orientation = velocityOrientation(state.Vel)
	}

	switch state.Phase {
	case PhaseBoost:
		burn := math.Min(math.Max(params.FuelBurnRate, 0)*dt, state.Fuel)
		state.Fuel -= burn
		res.FuelBurned = burn
		if state.Fuel < game.FuelEpsilon {
			state.Fuel = 0
			s.transition(state, &res, PhaseMidcourse)
		}
	case PhaseMidcourse:
		// A boost that ended at the start of this tick waits for the next one to reach re-entry.
		if state.Vel.Y() < 0 && !res.Transitioned() {
			s.transition(state, &res, PhaseReentry)
		}
	}
	assert.IsTrue(state.Fuel >= 0, "fuel went negative: %v", state.Fuel)

	res.Impact = s.impact(state, &res)
	return res
}
