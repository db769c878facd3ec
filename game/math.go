package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// Up is the world up axis, which is also the body axis of an unrotated missile.
	Up = mgl64.Vec3{0, 1, 0}
)

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}

// SafeNormalize returns the unit vector of v, or the zero vector if v has no length. mgl64's Normalize
// divides by the length and would return NaN components for a zero vector.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// LerpVec3 moves from towards to by the factor t.
func LerpVec3(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// Quat64To32 converts a 64-bit quaternion to a 32-bit one.
func Quat64To32(q mgl64.Quat) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: Vec64To32(q.V)}
}

// DirectionVector returns the direction a camera with the given yaw and pitch (in radians) looks at. A
// zero yaw and pitch looks down the negative Z axis.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	m := math32.Cos(pitch)
	return mgl32.Vec3{
		-m * math32.Sin(yaw),
		math32.Sin(pitch),
		-m * math32.Cos(yaw),
	}
}

// YawPitch is the inverse of DirectionVector. It returns the yaw and pitch, in radians, of the direction
// passed. The direction does not need to be normalised.
func YawPitch(dir mgl32.Vec3) (yaw, pitch float32) {
	l := dir.Len()
	if l == 0 {
		return 0, 0
	}
	dir = dir.Mul(1 / l)
	pitch = math32.Asin(mgl32.Clamp(dir.Y(), -1, 1))
	yaw = math32.Atan2(-dir.X(), -dir.Z())
	return yaw, pitch
}
