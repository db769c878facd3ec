package session

// Clock measures simulated time. It only accumulates while running, so time spent paused never reaches
// the simulation.
type Clock struct {
	elapsed float64
	running bool
}

// Start resumes the clock.
func (c *Clock) Start() {
	c.running = true
}

// Stop freezes the clock. The elapsed time is kept.
func (c *Clock) Stop() {
	c.running = false
}

// Reset stops the clock and sets the elapsed time back to zero.
func (c *Clock) Reset() {
	*c = Clock{}
}

// Running reports whether the clock is accumulating time.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the accumulated time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Advance accumulates dt seconds of wall time and returns the simulated delta: dt while running, and 0
// while stopped or for a non-positive dt.
func (c *Clock) Advance(dt float64) float64 {
	if !c.running || !(dt > 0) {
		return 0
	}
	c.elapsed += dt
	return dt
}
