package effects

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/game"
	"github.com/vestorino/Ballistic-Missile/utils"
)

const (
	ImpactShakeIntensity = 1.2
	ImpactShakeDuration  = 1.5
)

// Toggles are the display switches of the control surface.
type Toggles struct {
	ShowForces    bool
	ShowTrail     bool
	VisualEffects bool
	Clouds        bool
	Explosion     bool
}

// DefaultToggles has every display switch on.
func DefaultToggles() Toggles {
	return Toggles{ShowForces: true, ShowTrail: true, VisualEffects: true, Clouds: true, Explosion: true}
}

// Coordinator turns flight ticks into renderer commands. It remembers just enough to emit visibility
// changes once, and keeps the recent trail so that headless callers can inspect it.
type Coordinator struct {
	toggles Toggles
	synced  bool
	flame   bool

	trail *utils.CircularQueue[mgl64.Vec3]
}

// NewCoordinator returns a Coordinator with the toggles passed. The visibility of every toggle is sent
// with the first call to SetToggles or Process.
func NewCoordinator(t Toggles) *Coordinator {
	return &Coordinator{toggles: t, trail: utils.NewCircularQueue[mgl64.Vec3](game.TrailLength)}
}

// Toggles returns the current display switches.
func (c *Coordinator) Toggles() Toggles {
	return c.toggles
}

// SetToggles updates the display switches and returns visibility commands for those that changed.
func (c *Coordinator) SetToggles(t Toggles) []Command {
	var cmds []Command
	if !c.synced || t.ShowTrail != c.toggles.ShowTrail {
		cmds = append(cmds, SetEffectVisible{Effect: EffectTrail, Visible: t.ShowTrail})
	}
	if !c.synced || t.ShowForces != c.toggles.ShowForces {
		cmds = append(cmds, SetEffectVisible{Effect: EffectForceArrows, Visible: t.ShowForces})
	}
	if !c.synced || t.Clouds != c.toggles.Clouds {
		cmds = append(cmds, SetEffectVisible{Effect: EffectClouds, Visible: t.Clouds})
	}
	c.toggles = t
	c.synced = true
	return cmds
}

// Process returns the commands for a simulated tick. state is the flight state after the tick and res
// the result of simulating it.
func (c *Coordinator) Process(state flightsim.State, res flightsim.Result) []Command {
	var cmds []Command
	if !c.synced {
		cmds = c.SetToggles(c.toggles)
	}

	if flame := state.Phase.FlameVisible(); flame != c.flame {
		c.flame = flame
		cmds = append(cmds, SetFlameVisible{Visible: flame})
	}

	if res.Boosting && c.toggles.VisualEffects {
		axis := game.SafeNormalize(state.Orientation.Rotate(game.Up))
		cmds = append(cmds, SpawnParticles{Kind: ParticleExhaust, Origin: state.Pos.Sub(axis.Mul(game.TailOffset))})
	}

	if res.Impact {
		if c.toggles.Explosion {
			cmds = append(cmds,
				SpawnParticles{Kind: ParticleExplosion, Origin: state.LastImpactPos},
				SpawnParticles{Kind: ParticleDebris, Origin: state.LastImpactPos},
				SetEffectVisible{Effect: EffectCrater, Visible: true},
			)
		}
		if c.toggles.VisualEffects {
			cmds = append(cmds, CameraShake{Intensity: ImpactShakeIntensity, Duration: ImpactShakeDuration})
		}
	}

	if c.toggles.ShowTrail {
		// Append on a zero-capacity queue is the only failure, and the trail is never built that way.
		_ = c.trail.Append(state.Pos)
		cmds = append(cmds, AppendTrail{Pos: state.Pos})
	}

	if c.toggles.ShowForces {
		cmds = append(cmds, ForceArrows{Thrust: res.Forces.Thrust, Weight: res.Forces.Weight, Drag: res.Forces.Drag})
	}
	return cmds
}

// Trail returns the most recent trail samples, oldest first.
func (c *Coordinator) Trail() []mgl64.Vec3 {
	return c.trail.Slice()
}

// Reset clears the trail and every impact effect.
func (c *Coordinator) Reset() []Command {
	c.trail.Clear()
	c.flame = false
	return []Command{
		ClearTrail{},
		SetFlameVisible{Visible: false},
		SetEffectVisible{Effect: EffectCrater, Visible: false},
	}
}
