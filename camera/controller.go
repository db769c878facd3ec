package camera

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vestorino/Ballistic-Missile/flightsim"
)

// Controller computes camera poses. Every mode is a function of the flight state, the camera state,
// the elapsed time and dt; the only hidden input is the random source used for jitter and shake.
type Controller struct {
	// Rand drives jitter and shake. A nil Rand disables both.
	Rand *rand.Rand
}

// NewController returns a Controller with a random source seeded by seed.
func NewController(seed int64) *Controller {
	return &Controller{Rand: rand.New(rand.NewSource(seed))}
}

// Update feeds the tick's input to the camera and returns the pose to render. Mode switches take effect
// immediately: nothing from the previous mode is blended in.
func (c *Controller) Update(cam *State, sim flightsim.State, in Input, dt float64) Pose {
	if cam.Mode == ModeFree {
		c.initFree(cam)
	}
	c.accumulate(cam, in)

	var pose Pose
	switch cam.Mode {
	case ModeOverview:
		pose = c.overview(sim)
	case ModeFollow:
		pose = c.follow(cam, sim)
	case ModeFixed:
		pose = c.fixed(sim)
	case ModeFree:
		pose = c.free(cam, dt)
	case ModeCinematic:
		pose = c.cinematic(sim)
	case ModeFirstPerson:
		pose = c.firstPerson(sim)
	default:
		pose = cam.Pose
	}
	cam.Pose = pose

	if m := cam.Shake.advance(dt); m > 0 {
		pose = pose.translate(c.jitter(m))
	}
	return pose
}

// accumulate records key and pointer input for the fly camera. Like event listeners, it only starts
// listening once free mode has been entered, and keeps listening in every mode afterwards.
func (c *Controller) accumulate(cam *State, in Input) {
	f := &cam.Free
	if !f.Inited {
		return
	}
	for _, ev := range in.Keys {
		if ev.Down {
			f.Keys = f.Keys.with(ev.Key)
		} else {
			f.Keys = f.Keys.without(ev.Key)
		}
	}
	switch in.Lock {
	case LockAcquired:
		f.Locked = true
	case LockReleased:
		f.Locked = false
	}
	if f.Locked {
		f.Yaw -= in.PointerDX * FreeLookSpeed
		f.Pitch -= in.PointerDY * FreeLookSpeed
		f.Pitch = mgl64.Clamp(f.Pitch, -FreePitchLimit, FreePitchLimit)
	}
}

// jitter returns a random offset with every component in [-m/2, m/2].
func (c *Controller) jitter(m float64) mgl64.Vec3 {
	if c.Rand == nil || m <= 0 {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{
		(c.Rand.Float64() - 0.5) * m,
		(c.Rand.Float64() - 0.5) * m,
		(c.Rand.Float64() - 0.5) * m,
	}
}
