package session

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vestorino/Ballistic-Missile/camera"
	"github.com/vestorino/Ballistic-Missile/effects"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/scene"
)

func newSession(t *testing.T) (*Session, *scene.Recorder, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	r := scene.NewRecorder()
	return New(log, DefaultConfig(), r), r, hook
}

func flyToImpact(t *testing.T, s *Session) {
	t.Helper()
	s.Start()
	for range 10000 {
		if s.Tick(0.1, camera.Input{}).Impact {
			return
		}
	}
	t.Fatalf("missile never hit the ground: %+v", s.State())
}

func TestNewSessionIsPaused(t *testing.T) {
	s, r, _ := newSession(t)
	require.True(t, s.Paused())

	fp := s.State().Fingerprint()
	calls := r.Calls
	res := s.Tick(0.1, camera.Input{})

	assert.False(t, res.Integrated)
	assert.Equal(t, fp, s.State().Fingerprint())
	assert.Equal(t, calls, r.Calls)
	assert.Zero(t, s.Elapsed())
	assert.True(t, r.Visible(effects.EffectTrail))
	assert.False(t, r.Visible(effects.EffectNight))
}

func TestFlightLogsPhases(t *testing.T) {
	s, r, hook := newSession(t)
	flyToImpact(t, s)

	var transitions []string
	var impacts int
	for _, e := range hook.AllEntries() {
		switch {
		case e.Level == logrus.InfoLevel && strings.HasPrefix(e.Message, "phase "):
			transitions = append(transitions, e.Message)
		case e.Level == logrus.WarnLevel && strings.HasPrefix(e.Message, "impact "):
			impacts++
		}
	}
	require.Len(t, transitions, 3)
	assert.Contains(t, transitions[0], "Boost -> Midcourse")
	assert.Contains(t, transitions[1], "Midcourse -> Re-entry")
	assert.Contains(t, transitions[2], "Re-entry -> Impact")
	assert.Equal(t, 1, impacts)

	assert.Equal(t, flightsim.PhaseImpact, s.State().Phase)
	assert.Equal(t, 1, r.Shakes)
	assert.Equal(t, 1, r.Particles[effects.ParticleExplosion])
	assert.True(t, r.Visible(effects.EffectCrater))
	assert.False(t, r.Flame)
	assert.True(t, s.Camera().Shake.Active())

	// Further ticks change nothing but time.
	pos := s.State().Pos
	s.Tick(0.1, camera.Input{})
	assert.Equal(t, pos, s.State().Pos)
	assert.Equal(t, 1, r.Shakes)
}

func TestResetIsIdempotent(t *testing.T) {
	s, r, _ := newSession(t)
	s.SetCameraMode(camera.ModeFollow)
	flyToImpact(t, s)

	s.Reset()
	once := s.State().Fingerprint()
	s.Reset()
	assert.Equal(t, once, s.State().Fingerprint())

	fresh := flightsim.NewState(s.Params(), flightsim.DefaultOptions())
	assert.Equal(t, fresh.Fingerprint(), once)

	assert.True(t, s.Paused())
	assert.Zero(t, s.Elapsed())
	assert.Empty(t, s.Trail())
	assert.Empty(t, r.Trail)
	assert.False(t, r.Flame)
	assert.False(t, r.Visible(effects.EffectCrater))
	assert.False(t, s.Camera().Shake.Active())
	assert.Equal(t, camera.ModeFollow, s.Camera().Mode)
	assert.Equal(t, float32(3.5), r.BodyPos.Y())
}

func TestPausedClockDoesNotAccumulate(t *testing.T) {
	s, _, _ := newSession(t)
	s.Start()
	s.Tick(0.1, camera.Input{})
	s.Pause()
	s.Tick(5, camera.Input{})
	s.Start()
	s.Tick(0.1, camera.Input{})

	assert.InDelta(t, 0.2, s.Elapsed(), 1e-12)
	assert.InDelta(t, 0.2, s.State().Elapsed, 1e-12)
	assert.Equal(t, uint64(2), s.State().Tick)
}

func TestZeroDeltaTickRendersNothing(t *testing.T) {
	s, r, _ := newSession(t)
	s.Start()
	s.Tick(0.1, camera.Input{})
	require.Len(t, r.Trail, 1)

	calls := r.Calls
	fp := s.State().Fingerprint()
	res := s.Tick(0, camera.Input{})

	assert.False(t, res.Integrated)
	assert.Equal(t, calls, r.Calls)
	assert.Len(t, r.Trail, 1)
	assert.Len(t, s.Trail(), 1)
	assert.Equal(t, fp, s.State().Fingerprint())
}

func TestHandleKey(t *testing.T) {
	s, r, _ := newSession(t)

	s.HandleKey(camera.KeyDigit3)
	assert.Equal(t, camera.ModeFixed, s.Camera().Mode)
	s.HandleKey(camera.KeyDigit6)
	assert.Equal(t, camera.ModeFirstPerson, s.Camera().Mode)

	s.HandleKey(camera.KeyL)
	assert.True(t, s.Night())
	assert.True(t, r.Visible(effects.EffectNight))
	s.HandleKey(camera.KeyL)
	assert.False(t, r.Visible(effects.EffectNight))

	s.HandleKey(camera.KeySpace)
	assert.False(t, s.Paused())
	s.HandleKey(camera.KeySpace)
	assert.True(t, s.Paused())

	s.HandleKey(camera.KeyDigit4)
	require.Equal(t, camera.ModeFree, s.Camera().Mode)
	s.HandleKey(camera.KeySpace)
	assert.True(t, s.Paused())

	s.Start()
	s.Tick(0.1, camera.Input{})
	s.HandleKey(camera.KeyR)
	assert.True(t, s.Paused())
	assert.Zero(t, s.State().Tick)
}

func TestSetParams(t *testing.T) {
	s, _, _ := newSession(t)
	p := s.Params()
	p.InitialFuel = 80
	p.Mass = -5
	s.SetParams(p)

	assert.Equal(t, 80.0, s.State().Fuel)
	assert.Greater(t, s.Params().Mass, 0.0)

	s.Start()
	s.Tick(0.1, camera.Input{})
	p.InitialFuel = 20
	s.SetParams(p)
	assert.InDelta(t, 79.5, s.State().Fuel, 1e-9)

	s.Reset()
	assert.Equal(t, 20.0, s.State().Fuel)
}

func TestSetToggles(t *testing.T) {
	s, r, _ := newSession(t)
	tg := s.Toggles()
	tg.ShowTrail = false
	s.SetToggles(tg)

	assert.False(t, r.Visible(effects.EffectTrail))
	s.Start()
	s.Tick(0.1, camera.Input{})
	assert.Empty(t, r.Trail)
	assert.Empty(t, s.Trail())
}

func TestReadouts(t *testing.T) {
	s, _, _ := newSession(t)
	r := s.Readouts()
	assert.Equal(t, []string{"speed", "altitude", "fuel", "phase", "camera", "time"}, r.Keys())

	phase, _ := r.Get("phase")
	assert.Equal(t, "Boost", phase)
	fuel, _ := r.Get("fuel")
	assert.Equal(t, 50.0, fuel)
	mode, _ := r.Get("camera")
	assert.Equal(t, "overview", mode)
}

func TestClock(t *testing.T) {
	var c Clock
	assert.Zero(t, c.Advance(1))
	c.Start()
	assert.Equal(t, 0.5, c.Advance(0.5))
	assert.Zero(t, c.Advance(-1))
	c.Stop()
	assert.Zero(t, c.Advance(1))
	assert.Equal(t, 0.5, c.Elapsed())
	c.Reset()
	assert.Zero(t, c.Elapsed())
	assert.False(t, c.Running())
}
