package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/camera"
	"github.com/vestorino/Ballistic-Missile/effects"
)

// Renderer is implemented by whatever draws the scene. Every call is fire-and-forget: the simulation
// never reads anything back.
type Renderer interface {
	// SetBodyPose places the missile body.
	SetBodyPose(pos mgl64.Vec3, orientation mgl64.Quat)
	SetFlameVisible(visible bool)
	SetEffectVisible(effect effects.EffectID, visible bool)
	SpawnParticles(kind effects.ParticleKind, origin mgl64.Vec3)
	AppendTrailSample(pos mgl64.Vec3)
	ClearTrail()
	SetCameraPose(pose camera.Pose)
	TriggerCameraShake(intensity, duration float64)
	SetForceArrows(thrust, weight, drag mgl64.Vec3)
}

// Apply dispatches every command onto r in order.
func Apply(r Renderer, cmds []effects.Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case effects.SetFlameVisible:
			r.SetFlameVisible(cmd.Visible)
		case effects.SetEffectVisible:
			r.SetEffectVisible(cmd.Effect, cmd.Visible)
		case effects.SpawnParticles:
			r.SpawnParticles(cmd.Kind, cmd.Origin)
		case effects.AppendTrail:
			r.AppendTrailSample(cmd.Pos)
		case effects.ClearTrail:
			r.ClearTrail()
		case effects.CameraShake:
			r.TriggerCameraShake(cmd.Intensity, cmd.Duration)
		case effects.ForceArrows:
			r.SetForceArrows(cmd.Thrust, cmd.Weight, cmd.Drag)
		}
	}
}

// Nop is a Renderer that ignores every call.
type Nop struct{}

func (Nop) SetBodyPose(mgl64.Vec3, mgl64.Quat)                {}
func (Nop) SetFlameVisible(bool)                              {}
func (Nop) SetEffectVisible(effects.EffectID, bool)           {}
func (Nop) SpawnParticles(effects.ParticleKind, mgl64.Vec3)   {}
func (Nop) AppendTrailSample(mgl64.Vec3)                      {}
func (Nop) ClearTrail()                                       {}
func (Nop) SetCameraPose(camera.Pose)                         {}
func (Nop) TriggerCameraShake(float64, float64)               {}
func (Nop) SetForceArrows(mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {}
