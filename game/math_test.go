package game

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeNormalizeZero(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, SafeNormalize(mgl64.Vec3{}))

	n := SafeNormalize(mgl64.Vec3{0, 3, 4})
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.Y(), 1e-12)
}

func TestClampFloat(t *testing.T) {
	assert.Equal(t, 50.0, ClampFloat(10, 50, 1000))
	assert.Equal(t, 1000.0, ClampFloat(5000, 50, 1000))
	assert.Equal(t, 75.0, ClampFloat(75, 50, 1000))
}

func TestLerpVec3(t *testing.T) {
	v := LerpVec3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, -10, 20}, 0.1)
	assert.True(t, v.ApproxEqual(mgl64.Vec3{1, -1, 2}))
}

func TestYawPitchRoundTrip(t *testing.T) {
	for _, c := range []struct{ yaw, pitch float32 }{
		{0, 0},
		{math32.Pi / 4, 0.3},
		{-2, -1.2},
	} {
		yaw, pitch := YawPitch(DirectionVector(c.yaw, c.pitch))
		require.InDelta(t, c.yaw, yaw, 1e-5)
		require.InDelta(t, c.pitch, pitch, 1e-5)
	}

	yaw, pitch := YawPitch(DirectionVector(0, 0).Mul(0))
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)
}

func TestRound64(t *testing.T) {
	assert.Equal(t, 3.14, Round64(math.Pi, 2))
}
