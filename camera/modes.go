package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/game"
)

var fixedAnchor = mgl64.Vec3{0, 10, 30}

// overview circles the launch site, widening the orbit as the missile speeds up.
func (c *Controller) overview(sim flightsim.State) Pose {
	const baseRadius, orbitSpeed = 50.0, 0.25

	angle := sim.Elapsed * orbitSpeed
	radius := baseRadius + sim.Speed()*0.5
	pos := mgl64.Vec3{
		radius * math.Sin(angle),
		30 + math.Sin(angle*0.4)*5,
		radius * math.Cos(angle),
	}
	return lookAt(pos, sim.Pos, game.Up)
}

// follow eases towards a point behind and above the missile in its body frame and looks slightly ahead
// of it.
func (c *Controller) follow(cam *State, sim flightsim.State) Pose {
	offset := sim.Orientation.Rotate(mgl64.Vec3{0, followHeight, -followDistance})
	pos := game.LerpVec3(cam.Pose.Position, sim.Pos.Add(offset), followLerp)
	target := sim.Pos.Add(sim.Orientation.Rotate(mgl64.Vec3{0, 0, followLookAhead}))
	return lookAt(pos, target, game.Up)
}

// fixed watches from a static point. It shakes a little with speed and nudges the zoom so the missile
// stays between 10 and 20 units away. Nothing carries over between ticks.
func (c *Controller) fixed(sim flightsim.State) Pose {
	pos := fixedAnchor
	if j := math.Min(sim.Speed()*0.002, 0.1); j > 0 && c.Rand != nil {
		pos[0] += (c.Rand.Float64() - 0.5) * j
		pos[1] += (c.Rand.Float64() - 0.5) * j
	}

	switch dist := pos.Sub(sim.Pos).Len(); {
	case dist > 20:
		pos[2] -= 0.1
	case dist < 10:
		pos[2] += 0.1
	}
	return lookAt(pos, sim.Pos, game.Up)
}

// initFree points the fly camera where the current pose looks, the first time free mode runs.
func (c *Controller) initFree(cam *State) {
	f := &cam.Free
	if f.Inited {
		return
	}
	yaw, pitch := game.YawPitch(game.Vec64To32(cam.Pose.Forward()))
	f.Yaw = float64(yaw)
	f.Pitch = mgl64.Clamp(float64(pitch), -FreePitchLimit, FreePitchLimit)
	f.Inited = true
}

// free moves the fly camera with the accumulated yaw, pitch and held keys.
func (c *Controller) free(cam *State, dt float64) Pose {
	c.initFree(cam)
	f := &cam.Free

	// Euler order YXZ: yaw about world Y, then pitch about the camera's X axis.
	rot := mgl64.QuatRotate(f.Yaw, game.Up).Mul(mgl64.QuatRotate(f.Pitch, mgl64.Vec3{1, 0, 0})).Normalize()
	fwd := rot.Rotate(forward)
	right := rot.Rotate(mgl64.Vec3{1, 0, 0})

	var move mgl64.Vec3
	if f.Keys.Pressed(KeyW) {
		move = move.Add(fwd)
	}
	if f.Keys.Pressed(KeyS) {
		move = move.Sub(fwd)
	}
	if f.Keys.Pressed(KeyA) {
		move = move.Sub(right)
	}
	if f.Keys.Pressed(KeyD) {
		move = move.Add(right)
	}
	if f.Keys.Pressed(KeySpace) {
		move = move.Add(game.Up)
	}
	if f.Keys.Pressed(KeyControlLeft) || f.Keys.Pressed(KeyControlRight) {
		move = move.Sub(game.Up)
	}

	speed := FreeBaseSpeed
	if f.Keys.Pressed(KeyShiftLeft) || f.Keys.Pressed(KeyShiftRight) {
		speed *= FreeSprintMult
	}
	pos := cam.Pose.Position.Add(game.SafeNormalize(move).Mul(speed * math.Max(dt, 0)))
	return Pose{Position: pos, Target: pos.Add(fwd), Orientation: rot}
}

// cinematic frames each flight phase with its own shot.
func (c *Controller) cinematic(sim flightsim.State) Pose {
	switch sim.Phase {
	case flightsim.PhaseBoost:
		// Low shot from beside the pad, looking up at the climb.
		return lookAt(mgl64.Vec3{14, 1.5, 14}, sim.Pos, game.Up)
	case flightsim.PhaseMidcourse:
		// Side on tracking shot, perpendicular to the plane of the tilt.
		return lookAt(sim.Pos.Add(mgl64.Vec3{0, 4, 45}), sim.Pos, game.Up)
	case flightsim.PhaseReentry:
		dir := game.SafeNormalize(sim.Vel)
		if dir.Len() == 0 {
			dir = mgl64.Vec3{0, -1, 0}
		}
		pos := sim.Pos.Sub(dir.Mul(25)).Add(mgl64.Vec3{0, 6, 0})
		return lookAt(pos, sim.Pos.Add(dir.Mul(10)), game.Up)
	default:
		// Slow orbit around the crater.
		angle := sim.Elapsed * 0.3
		centre := sim.LastImpactPos
		if !sim.Impacted {
			centre = sim.Pos
		}
		pos := centre.Add(mgl64.Vec3{30 * math.Sin(angle), 12, 30 * math.Cos(angle)})
		return lookAt(pos, centre, game.Up)
	}
}

// firstPerson sits on the nose cone looking along the body axis.
func (c *Controller) firstPerson(sim flightsim.State) Pose {
	axis := game.SafeNormalize(sim.Orientation.Rotate(game.Up))
	if axis.Len() == 0 {
		axis = game.Up
	}
	pos := sim.Pos.Add(axis.Mul(game.NoseOffset))
	pos = pos.Add(c.jitter(math.Min(sim.Speed()*0.001, 0.05)))
	up := sim.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
	return lookAt(pos, pos.Add(axis.Mul(10)), up)
}
