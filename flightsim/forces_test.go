package flightsim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vestorino/Ballistic-Missile/game"
)

func TestAirDensity(t *testing.T) {
	assert.InDelta(t, 1.225, AirDensity(0), 1e-12)
	assert.InDelta(t, 1.225/math.E, AirDensity(8500), 1e-12)
	assert.InDelta(t, 1.225, AirDensity(-100), 1e-12, "negative altitude must not inflate density")
	assert.Less(t, AirDensity(20000), AirDensity(1000))
}

func TestDragOpposesVelocity(t *testing.T) {
	vel := mgl64.Vec3{0, 10, 0}
	d := Drag(vel, 0, 0.75, 0.09)

	want := 0.5 * 1.225 * 100 * 0.75 * 0.09
	assert.InDelta(t, want, d.Len(), 1e-9)
	assert.InDelta(t, -want, d.Y(), 1e-9)
	assert.Zero(t, d.X())
}

func TestDragAtRestIsZero(t *testing.T) {
	d := Drag(mgl64.Vec3{}, 0, 0.75, 0.09)
	assert.Equal(t, mgl64.Vec3{}, d)
	for _, c := range d {
		assert.False(t, math.IsNaN(c))
	}
}

func TestWeight(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{0, 100 * game.Gravity, 0}, Weight(100))
}

func TestThrustFollowsTilt(t *testing.T) {
	straight := Thrust(BoostOrientation(50, 50), 3000)
	assert.True(t, straight.ApproxEqualThreshold(mgl64.Vec3{0, 3000, 0}, 1e-9), "got %v", straight)

	tilted := Thrust(BoostOrientation(0, 50), 3000)
	s := math.Sin(math.Pi/4) * 3000
	assert.True(t, tilted.ApproxEqualThreshold(mgl64.Vec3{-s, s, 0}, 1e-9), "got %v", tilted)

	half := BoostOrientation(25, 50).Rotate(game.Up)
	require.InDelta(t, math.Cos(math.Pi/8), half.Y(), 1e-12)
}

func TestBoostOrientationWithoutInitialFuel(t *testing.T) {
	dir := BoostOrientation(0, 0).Rotate(game.Up)
	assert.InDelta(t, math.Cos(game.TargetTiltAngle), dir.Y(), 1e-12)
}

func TestIntegrateIsSemiImplicit(t *testing.T) {
	state := State{Pos: mgl64.Vec3{0, 100, 0}}
	Integrate(&state, mgl64.Vec3{0, -10, 0}, 1, 1)

	assert.Equal(t, mgl64.Vec3{0, -10, 0}, state.Vel)
	// Explicit Euler would leave the position at 100 for this first step.
	assert.Equal(t, mgl64.Vec3{0, 90, 0}, state.Pos)
}

func TestIntegrateGuardsZeroMass(t *testing.T) {
	state := State{Vel: mgl64.Vec3{1, 0, 0}}
	Integrate(&state, mgl64.Vec3{0, 500, 0}, 0, 0.5)

	assert.Equal(t, mgl64.Vec3{1, 0, 0}, state.Vel)
	assert.Equal(t, mgl64.Vec3{0.5, 0, 0}, state.Pos)
}

func TestParamsClamp(t *testing.T) {
	p := Params{Mass: 0, Thrust: 1e9, DragCoefficient: 0.5, Area: -1, InitialFuel: 0, FuelBurnRate: 1000}.Clamp()
	assert.Equal(t, Params{
		Mass:            MinMass,
		Thrust:          MaxThrust,
		DragCoefficient: 0.5,
		Area:            MinArea,
		InitialFuel:     MinInitialFuel,
		FuelBurnRate:    MaxFuelBurnRate,
	}, p)

	assert.Equal(t, DefaultParams(), DefaultParams().Clamp())
}
