package game

import "math"

const (
	// Gravity is the vertical acceleration applied to the missile, in m/s².
	Gravity = -9.81
	// SeaLevelAirDensity is the air density at altitude zero, in kg/m³.
	SeaLevelAirDensity = 1.225
	// AtmosphereScaleHeight is the altitude over which air density drops by a factor of e.
	AtmosphereScaleHeight = 8500.0

	DefaultImpactAltitude = 2.5
	LaunchHeight          = 3.5

	// TargetTiltAngle is the tilt reached by the missile body when the boost burns its last fuel.
	TargetTiltAngle = math.Pi / 4
	// OrientationSpeedThreshold is the speed above which the body is aligned with its velocity.
	OrientationSpeedThreshold = 0.1

	// NoseOffset and TailOffset are measured from the body centre along the body axis.
	NoseOffset = 3.5
	TailOffset = 3.0

	TrailLength = 100

	// FuelEpsilon is the fuel mass, in kg, below which the tank counts as empty. Repeated burns of
	// rate*dt leave rounding residue well under it.
	FuelEpsilon = 1e-9
)
