package flightsim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/game"
)

// Forces holds the individual forces acting on the missile during a tick.
type Forces struct {
	Thrust, Weight, Drag mgl64.Vec3
}

// Net returns the sum of all forces.
func (f Forces) Net() mgl64.Vec3 {
	return f.Thrust.Add(f.Weight).Add(f.Drag)
}

// Drag returns the aerodynamic drag for the given velocity. It points against the velocity and is zero
// when the body is at rest.
func Drag(vel mgl64.Vec3, altitude, coeff, area float64) mgl64.Vec3 {
	dir := game.SafeNormalize(vel)
	if dir.Len() == 0 {
		return mgl64.Vec3{}
	}
	speed := vel.Len()
	magnitude := 0.5 * AirDensity(altitude) * speed * speed * coeff * area
	return dir.Mul(-magnitude)
}

// Thrust returns the motor force: the magnitude along the body axis rotated by the orientation.
func Thrust(orientation mgl64.Quat, magnitude float64) mgl64.Vec3 {
	return game.SafeNormalize(orientation.Rotate(game.Up)).Mul(magnitude)
}

// Weight returns the gravitational force on a body of the given mass.
func Weight(mass float64) mgl64.Vec3 {
	return mgl64.Vec3{0, mass * game.Gravity, 0}
}
