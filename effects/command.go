package effects

import "github.com/go-gl/mathgl/mgl64"

// ParticleKind names a particle system owned by the renderer.
type ParticleKind uint8

const (
	ParticleExhaust ParticleKind = iota
	ParticleExplosion
	ParticleDebris
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleExhaust:
		return "exhaust"
	case ParticleExplosion:
		return "explosion"
	case ParticleDebris:
		return "debris"
	}
	return "unknown"
}

// EffectID names a visual element whose visibility is controlled by the simulation.
type EffectID uint8

const (
	EffectTrail EffectID = iota
	EffectForceArrows
	EffectClouds
	EffectCrater
	EffectNight
)

func (e EffectID) String() string {
	switch e {
	case EffectTrail:
		return "trail"
	case EffectForceArrows:
		return "force-arrows"
	case EffectClouds:
		return "clouds"
	case EffectCrater:
		return "crater"
	case EffectNight:
		return "night"
	}
	return "unknown"
}

// Command is a fire-and-forget instruction for the renderer.
type Command interface {
	command()
}

type SetFlameVisible struct {
	Visible bool
}

type SetEffectVisible struct {
	Effect  EffectID
	Visible bool
}

type SpawnParticles struct {
	Kind   ParticleKind
	Origin mgl64.Vec3
}

type AppendTrail struct {
	Pos mgl64.Vec3
}

type ClearTrail struct{}

// CameraShake starts a shake of the given intensity lasting Duration seconds.
type CameraShake struct {
	Intensity, Duration float64
}

// ForceArrows carries the forces of the tick for the force display.
type ForceArrows struct {
	Thrust, Weight, Drag mgl64.Vec3
}

func (SetFlameVisible) command()  {}
func (SetEffectVisible) command() {}
func (SpawnParticles) command()   {}
func (AppendTrail) command()      {}
func (ClearTrail) command()       {}
func (CameraShake) command()      {}
func (ForceArrows) command()      {}
