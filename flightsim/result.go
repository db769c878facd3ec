package flightsim

// Result captures the outcome of a single simulation tick.
type Result struct {
	// PrevPhase is the phase the tick started in and Phase the one it ended in.
	PrevPhase, Phase Phase

	// Forces are the forces that were integrated during the tick.
	Forces Forces
	// Boosting is true if the motor produced thrust during the tick.
	Boosting bool
	// FuelBurned is the fuel consumed during the tick, in kg.
	FuelBurned float64

	// Impact is true only for the tick in which the missile hit the ground.
	Impact bool
	// Integrated is false for ticks that did not advance the kinematics (paused, dt <= 0, impacted).
	Integrated bool
}

// Transitioned reports whether the phase changed during the tick.
func (r Result) Transitioned() bool {
	return r.PrevPhase != r.Phase
}
