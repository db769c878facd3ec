package flightsim

import "github.com/samber/lo"

// Ranges accepted from the control surface.
const (
	MinMass, MaxMass                       = 50.0, 1000.0
	MinThrust, MaxThrust                   = 1000.0, 10000.0
	MinDragCoefficient, MaxDragCoefficient = 0.1, 1.5
	MinArea, MaxArea                       = 0.01, 1.0
	MinInitialFuel, MaxInitialFuel         = 1.0, 1000.0
	MinFuelBurnRate, MaxFuelBurnRate       = 0.1, 100.0
)

// Params are the user tunable parameters of a flight.
type Params struct {
	// Mass of the missile in kg.
	Mass float64
	// Thrust of the motor in N.
	Thrust float64
	// DragCoefficient is the dimensionless drag coefficient of the body.
	DragCoefficient float64
	// Area is the cross-sectional area facing the flow, in m².
	Area float64
	// InitialFuel is the fuel loaded at reset, in kg.
	InitialFuel float64
	// FuelBurnRate is the fuel consumed per second of boost, in kg/s.
	FuelBurnRate float64
}

// DefaultParams returns the parameters the launch site starts with.
func DefaultParams() Params {
	return Params{
		Mass:            100,
		Thrust:          3000,
		DragCoefficient: 0.75,
		Area:            0.09,
		InitialFuel:     50,
		FuelBurnRate:    5,
	}
}

// Clamp returns a copy of the parameters with every value moved into its accepted range. Out of range
// input from the control surface is never an error.
func (p Params) Clamp() Params {
	return Params{
		Mass:            lo.Clamp(p.Mass, MinMass, MaxMass),
		Thrust:          lo.Clamp(p.Thrust, MinThrust, MaxThrust),
		DragCoefficient: lo.Clamp(p.DragCoefficient, MinDragCoefficient, MaxDragCoefficient),
		Area:            lo.Clamp(p.Area, MinArea, MaxArea),
		InitialFuel:     lo.Clamp(p.InitialFuel, MinInitialFuel, MaxInitialFuel),
		FuelBurnRate:    lo.Clamp(p.FuelBurnRate, MinFuelBurnRate, MaxFuelBurnRate),
	}
}
