package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/camera"
	"github.com/vestorino/Ballistic-Missile/effects"
	"github.com/vestorino/Ballistic-Missile/game"
)

// Recorder is a headless Renderer. It keeps the latest state of the scene in the single precision a GPU
// would receive, plus counters for one-shot effects.
type Recorder struct {
	BodyPos mgl32.Vec3
	BodyRot mgl32.Quat

	CameraPos mgl32.Vec3
	// CameraYaw and CameraPitch describe where the camera looks, in radians.
	CameraYaw, CameraPitch float32

	Flame   bool
	Effects map[effects.EffectID]bool

	Particles map[effects.ParticleKind]int
	Trail     []mgl32.Vec3

	Shakes    int
	LastShake [2]float64

	Arrows [3]mgl32.Vec3

	// Calls is the number of renderer calls received.
	Calls int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		BodyRot:   mgl32.QuatIdent(),
		Effects:   make(map[effects.EffectID]bool),
		Particles: make(map[effects.ParticleKind]int),
	}
}

func (r *Recorder) SetBodyPose(pos mgl64.Vec3, orientation mgl64.Quat) {
	r.Calls++
	r.BodyPos, r.BodyRot = game.Vec64To32(pos), game.Quat64To32(orientation)
}

func (r *Recorder) SetFlameVisible(visible bool) {
	r.Calls++
	r.Flame = visible
}

func (r *Recorder) SetEffectVisible(effect effects.EffectID, visible bool) {
	r.Calls++
	r.Effects[effect] = visible
}

func (r *Recorder) SpawnParticles(kind effects.ParticleKind, _ mgl64.Vec3) {
	r.Calls++
	r.Particles[kind]++
}

func (r *Recorder) AppendTrailSample(pos mgl64.Vec3) {
	r.Calls++
	r.Trail = append(r.Trail, game.Vec64To32(pos))
	if len(r.Trail) > game.TrailLength {
		r.Trail = r.Trail[len(r.Trail)-game.TrailLength:]
	}
}

func (r *Recorder) ClearTrail() {
	r.Calls++
	r.Trail = r.Trail[:0]
}

func (r *Recorder) SetCameraPose(pose camera.Pose) {
	r.Calls++
	r.CameraPos = game.Vec64To32(pose.Position)
	r.CameraYaw, r.CameraPitch = game.YawPitch(game.Vec64To32(pose.Forward()))
}

func (r *Recorder) TriggerCameraShake(intensity, duration float64) {
	r.Calls++
	r.Shakes++
	r.LastShake = [2]float64{intensity, duration}
}

func (r *Recorder) SetForceArrows(thrust, weight, drag mgl64.Vec3) {
	r.Calls++
	r.Arrows = [3]mgl32.Vec3{game.Vec64To32(thrust), game.Vec64To32(weight), game.Vec64To32(drag)}
}

// Visible reports whether the effect was last made visible.
func (r *Recorder) Visible(effect effects.EffectID) bool {
	return r.Effects[effect]
}
