package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/game"
)

var forward = mgl64.Vec3{0, 0, -1}

// Pose is the camera placement handed to the renderer. Orientation rotates the camera's default view
// direction (negative Z, Y up) onto the direction of Target.
type Pose struct {
	Position    mgl64.Vec3
	Target      mgl64.Vec3
	Orientation mgl64.Quat
}

// DefaultPose is the camera placement at startup, looking at the launch platform.
func DefaultPose() Pose {
	return lookAt(mgl64.Vec3{0, 10, 30}, mgl64.Vec3{0, game.LaunchHeight, 0}, game.Up)
}

// Forward returns the unit view direction of the pose.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Orientation.Rotate(forward)
}

// lookAt returns a pose at pos looking at target. Degenerate inputs (target on top of the camera, or a
// view direction parallel to up) keep a valid orientation instead of producing NaNs.
func lookAt(pos, target, up mgl64.Vec3) Pose {
	dir := game.SafeNormalize(target.Sub(pos))
	if dir.Len() == 0 {
		return Pose{Position: pos, Target: target, Orientation: mgl64.QuatIdent()}
	}
	if dir.Cross(up).Len() < 1e-9 {
		up = mgl64.Vec3{0, 0, -1}
		if dir.Cross(up).Len() < 1e-9 {
			up = mgl64.Vec3{1, 0, 0}
		}
	}
	right := dir.Cross(up).Normalize()
	camUp := right.Cross(dir)
	basis := mgl64.Mat3FromCols(right, camUp, dir.Mul(-1))
	return Pose{
		Position:    pos,
		Target:      target,
		Orientation: mgl64.Mat4ToQuat(basis.Mat4()).Normalize(),
	}
}

// translate moves the position and target of the pose by the offset.
func (p Pose) translate(offset mgl64.Vec3) Pose {
	p.Position = p.Position.Add(offset)
	p.Target = p.Target.Add(offset)
	return p
}
