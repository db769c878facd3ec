package flightsim

import "github.com/go-gl/mathgl/mgl64"

// Integrate advances the kinematic state by dt using semi-implicit Euler: the velocity is updated first
// and the new velocity moves the position. A non-positive mass produces no acceleration.
func Integrate(state *State, net mgl64.Vec3, mass, dt float64) {
	if dt <= 0 {
		return
	}
	var acc mgl64.Vec3
	if mass > 0 {
		acc = net.Mul(1 / mass)
	}
	state.Vel = state.Vel.Add(acc.Mul(dt))
	state.Pos = state.Pos.Add(state.Vel.Mul(dt))
}
