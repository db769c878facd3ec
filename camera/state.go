package camera

import "math"

// Free fly tuning.
const (
	FreeBaseSpeed   = 20.0
	FreeSprintMult  = 6.0
	FreeLookSpeed   = 0.003
	FreePitchLimit  = math.Pi/2 - 0.001
	followLerp      = 0.1
	followHeight    = 3.0
	followDistance  = 6.0
	followLookAhead = 4.0
)

// State is the camera controller's own state. It lives independently of the flight: a simulation
// reset keeps the mode, the last pose and the free fly state, and only clears the shake.
type State struct {
	Mode Mode
	// Pose is the last pose computed by the mode handler, without shake applied.
	Pose Pose

	Free  FreeState
	Shake Shake
}

// NewState returns a camera in overview mode at the default pose.
func NewState() State {
	return State{Mode: ModeOverview, Pose: DefaultPose()}
}

// SetMode switches to the mode passed from the next tick on. Unknown modes are ignored and false is
// returned.
func (s *State) SetMode(m Mode) bool {
	if !m.Valid() {
		return false
	}
	s.Mode = m
	return true
}

// FreeState is the input accumulator of the fly camera. It is initialised from the current pose the
// first time free mode runs and is never cleared afterwards, so switching away and back keeps the
// orientation and held keys.
type FreeState struct {
	Yaw, Pitch float64
	Keys       KeySet
	Locked     bool
	Inited     bool
}

// Shake is a camera shake that decays linearly to zero over its duration.
type Shake struct {
	Intensity float64
	Duration  float64
	Elapsed   float64
}

// Start begins a new shake. A running shake is replaced rather than stacked.
func (s *Shake) Start(intensity, duration float64) {
	*s = Shake{Intensity: math.Max(intensity, 0), Duration: math.Max(duration, 0)}
}

// Active reports whether the shake still moves the camera.
func (s Shake) Active() bool {
	return s.Intensity > 0 && s.Elapsed < s.Duration
}

// Current returns the magnitude of the shake at its current elapsed time.
func (s Shake) Current() float64 {
	if !s.Active() {
		return 0
	}
	return s.Intensity * (1 - s.Elapsed/s.Duration)
}

// advance moves the shake forward by dt and returns the magnitude to apply for this tick.
func (s *Shake) advance(dt float64) float64 {
	if !s.Active() {
		return 0
	}
	m := s.Current()
	s.Elapsed += math.Max(dt, 0)
	return m
}

// Clear stops any running shake.
func (s *Shake) Clear() {
	*s = Shake{}
}
