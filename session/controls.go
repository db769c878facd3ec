package session

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/vestorino/Ballistic-Missile/camera"
	"github.com/vestorino/Ballistic-Missile/effects"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/game"
	"github.com/vestorino/Ballistic-Missile/scene"
)

// Start resumes the simulation.
func (s *Session) Start() {
	if s.clock.Running() {
		return
	}
	s.clock.Start()
	s.log.Infof("simulation started")
}

// Pause freezes the simulation. The camera stays where it is until the session is resumed.
func (s *Session) Pause() {
	if !s.clock.Running() {
		return
	}
	s.clock.Stop()
	s.log.Infof("simulation paused")
}

// TogglePause pauses a running simulation or resumes a paused one.
func (s *Session) TogglePause() {
	if s.clock.Running() {
		s.Pause()
		return
	}
	s.Start()
}

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool {
	return !s.clock.Running()
}

// SetParams replaces the flight parameters. Out of range values are clamped. Before launch the tank is
// refilled to the new initial fuel; afterwards the new fuel only applies from the next reset.
func (s *Session) SetParams(p flightsim.Params) {
	s.params = p.Clamp()
	if s.state.Tick == 0 && s.state.Phase == flightsim.PhaseBoost {
		s.state.Fuel = s.params.InitialFuel
	}
	s.log.Debugf("params updated: %+v", s.params)
}

// Toggles returns the display switches.
func (s *Session) Toggles() effects.Toggles {
	return s.effects.Toggles()
}

// SetToggles replaces the display switches.
func (s *Session) SetToggles(t effects.Toggles) {
	scene.Apply(s.renderer, s.effects.SetToggles(t))
}

// SetCameraMode switches the camera. Unknown modes are ignored.
func (s *Session) SetCameraMode(m camera.Mode) {
	if s.cam.SetMode(m) {
		s.log.Debugf("camera mode %s", m)
	}
}

// Night reports whether the night lighting is on.
func (s *Session) Night() bool {
	return s.night
}

// ToggleNight switches between day and night lighting.
func (s *Session) ToggleNight() {
	s.night = !s.night
	s.renderer.SetEffectVisible(effects.EffectNight, s.night)
}

// HandleKey runs the keyboard shortcut bound to k: 1 to 6 select a camera mode, R resets, Space pauses
// or resumes and L toggles night. Space is the ascend key of the fly camera and does not pause in free
// mode.
func (s *Session) HandleKey(k camera.Key) {
	switch k {
	case camera.KeyDigit1, camera.KeyDigit2, camera.KeyDigit3, camera.KeyDigit4, camera.KeyDigit5, camera.KeyDigit6:
		s.SetCameraMode(camera.Modes()[k-camera.KeyDigit1])
	case camera.KeyR:
		s.Reset()
	case camera.KeySpace:
		if s.cam.Mode != camera.ModeFree {
			s.TogglePause()
		}
	case camera.KeyL:
		s.ToggleNight()
	}
}

// Readouts returns the live display values in display order.
func (s *Session) Readouts() *orderedmap.OrderedMap[string, any] {
	r := orderedmap.NewOrderedMap[string, any]()
	r.Set("speed", game.Round64(s.state.Speed(), 2))
	r.Set("altitude", game.Round64(s.state.Altitude(), 2))
	r.Set("fuel", game.Round64(s.state.Fuel, 2))
	r.Set("phase", s.state.Phase.String())
	r.Set("camera", s.cam.Mode.String())
	r.Set("time", game.Round64(s.clock.Elapsed(), 2))
	return r
}
