package session

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/vestorino/Ballistic-Missile/camera"
	"github.com/vestorino/Ballistic-Missile/effects"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/scene"
	"github.com/vestorino/Ballistic-Missile/utils"
)

// Config holds everything a Session needs at startup.
type Config struct {
	Options flightsim.Options
	Params  flightsim.Params

	CameraMode camera.Mode
	// Seed seeds the random source of the camera jitter and shake.
	Seed int64

	Toggles effects.Toggles
}

// DefaultConfig returns the configuration of the stock launch site.
func DefaultConfig() Config {
	return Config{
		Options:    flightsim.DefaultOptions(),
		Params:     flightsim.DefaultParams(),
		CameraMode: camera.ModeOverview,
		Seed:       1,
		Toggles:    effects.DefaultToggles(),
	}
}

// Session owns a flight and everything attached to it: the simulator, the camera, the effects and the
// renderer. A Session is not safe for concurrent use; a single goroutine drives it through Tick.
type Session struct {
	log *logrus.Logger

	sim    *flightsim.Simulator
	state  flightsim.State
	params flightsim.Params

	controller *camera.Controller
	cam        camera.State

	effects  *effects.Coordinator
	renderer scene.Renderer

	clock Clock
	night bool
}

// New creates a paused Session with the missile on the launch platform. A nil renderer is replaced by
// scene.Nop.
func New(log *logrus.Logger, conf Config, r scene.Renderer) *Session {
	if log == nil {
		log = logrus.New()
	}
	if r == nil {
		r = scene.Nop{}
	}
	opts := conf.Options
	if opts.Debugf == nil {
		opts.Debugf = log.Debugf
	}

	s := &Session{
		log:        log,
		sim:        flightsim.NewSimulator(opts),
		params:     conf.Params.Clamp(),
		controller: camera.NewController(conf.Seed),
		cam:        camera.NewState(),
		effects:    effects.NewCoordinator(conf.Toggles),
		renderer:   r,
	}
	s.state = flightsim.NewState(s.params, s.sim.Options)
	if conf.CameraMode.Valid() {
		s.cam.SetMode(conf.CameraMode)
	}

	scene.Apply(r, s.effects.SetToggles(conf.Toggles))
	r.SetEffectVisible(effects.EffectNight, false)
	r.SetBodyPose(s.state.Pos, s.state.Orientation)
	r.SetCameraPose(s.cam.Pose)
	return s
}

// Tick advances the session by dt seconds of wall time with the input gathered since the previous tick.
// While paused nothing changes and nothing is rendered.
func (s *Session) Tick(dt float64, in camera.Input) flightsim.Result {
	if !s.clock.Running() {
		return flightsim.Result{PrevPhase: s.state.Phase, Phase: s.state.Phase}
	}
	if dt = s.clock.Advance(dt); dt == 0 {
		return flightsim.Result{PrevPhase: s.state.Phase, Phase: s.state.Phase}
	}

	res := s.sim.Simulate(&s.state, s.params, dt)
	if res.Transitioned() {
		s.log.Infof("phase %s -> %s at t=%.2fs (altitude=%.1fm, speed=%.1fm/s)",
			res.PrevPhase, res.Phase, s.state.Elapsed, s.state.Altitude(), s.state.Speed())
	}
	if res.Impact {
		s.log.Warnf("impact at %v after %.2fs %s", s.state.LastImpactPos, s.state.Elapsed, utils.OrderedMapToString(s.Readouts()))
	}

	cmds := s.effects.Process(s.state, res)
	for _, cmd := range cmds {
		if shake, ok := cmd.(effects.CameraShake); ok {
			s.cam.Shake.Start(shake.Intensity, shake.Duration)
		}
	}
	scene.Apply(s.renderer, cmds)
	s.renderer.SetBodyPose(s.state.Pos, s.state.Orientation)
	s.renderer.SetCameraPose(s.controller.Update(&s.cam, s.state, in, dt))
	return res
}

// Reset pauses the session and puts the missile back on the launch platform with a full tank. The
// camera mode and fly-camera state are kept. Resetting twice is the same as resetting once.
func (s *Session) Reset() {
	s.clock.Reset()
	s.state.Reset(s.params, s.sim.Options)
	s.cam.Shake.Clear()

	scene.Apply(s.renderer, s.effects.Reset())
	s.renderer.SetBodyPose(s.state.Pos, s.state.Orientation)
	s.log.Infof("simulation reset")
}

// State returns a copy of the flight state.
func (s *Session) State() flightsim.State {
	return s.state
}

// Params returns the flight parameters in use.
func (s *Session) Params() flightsim.Params {
	return s.params
}

// Camera returns a copy of the camera state.
func (s *Session) Camera() camera.State {
	return s.cam
}

// Trail returns the recent trail samples, oldest first.
func (s *Session) Trail() []mgl64.Vec3 {
	return s.effects.Trail()
}

// Elapsed returns the simulated time since the last reset.
func (s *Session) Elapsed() float64 {
	return s.clock.Elapsed()
}
