package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vestorino/Ballistic-Missile/camera"
	"github.com/vestorino/Ballistic-Missile/effects"
	"github.com/vestorino/Ballistic-Missile/game"
)

var _ Renderer = Nop{}
var _ Renderer = (*Recorder)(nil)

func TestApplyDispatchesEveryCommand(t *testing.T) {
	r := NewRecorder()
	Apply(r, []effects.Command{
		effects.SetFlameVisible{Visible: true},
		effects.SetEffectVisible{Effect: effects.EffectNight, Visible: true},
		effects.SpawnParticles{Kind: effects.ParticleExhaust, Origin: mgl64.Vec3{0, 0.5, 0}},
		effects.SpawnParticles{Kind: effects.ParticleExhaust},
		effects.AppendTrail{Pos: mgl64.Vec3{1, 2, 3}},
		effects.CameraShake{Intensity: 1.2, Duration: 1.5},
		effects.ForceArrows{Thrust: mgl64.Vec3{0, 3000, 0}, Weight: mgl64.Vec3{0, -981, 0}},
	})

	assert.Equal(t, 7, r.Calls)
	assert.True(t, r.Flame)
	assert.True(t, r.Visible(effects.EffectNight))
	assert.False(t, r.Visible(effects.EffectCrater))
	assert.Equal(t, 2, r.Particles[effects.ParticleExhaust])
	assert.Equal(t, []mgl32.Vec3{{1, 2, 3}}, r.Trail)
	assert.Equal(t, 1, r.Shakes)
	assert.Equal(t, [2]float64{1.2, 1.5}, r.LastShake)
	assert.Equal(t, mgl32.Vec3{0, 3000, 0}, r.Arrows[0])
	assert.Equal(t, mgl32.Vec3{0, -981, 0}, r.Arrows[1])

	Apply(r, []effects.Command{effects.ClearTrail{}})
	assert.Empty(t, r.Trail)
}

func TestRecorderTrailIsBounded(t *testing.T) {
	r := NewRecorder()
	for i := range game.TrailLength + 20 {
		r.AppendTrailSample(mgl64.Vec3{0, float64(i), 0})
	}
	require.Len(t, r.Trail, game.TrailLength)
	assert.Equal(t, float32(20), r.Trail[0].Y())
}

func TestRecorderCameraHeading(t *testing.T) {
	r := NewRecorder()
	r.SetCameraPose(camera.DefaultPose())

	assert.Equal(t, mgl32.Vec3{0, 10, 30}, r.CameraPos)
	assert.InDelta(t, 0, r.CameraYaw, 1e-5)
	// Looking from (0, 10, 30) down to (0, 3.5, 0).
	assert.Less(t, r.CameraPitch, float32(0))
	assert.InDelta(t, -0.2134, r.CameraPitch, 1e-3)
}

func TestRecorderBodyPose(t *testing.T) {
	r := NewRecorder()
	q := mgl64.QuatRotate(0.5, mgl64.Vec3{0, 0, 1})
	r.SetBodyPose(mgl64.Vec3{1, 2, 3}, q)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, r.BodyPos)
	assert.InDelta(t, q.W, r.BodyRot.W, 1e-6)
	assert.InDelta(t, q.V.Z(), r.BodyRot.V.Z(), 1e-6)
}
