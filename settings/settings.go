package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"github.com/vestorino/Ballistic-Missile/camera"
	"github.com/vestorino/Ballistic-Missile/effects"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/oerror"
	"github.com/vestorino/Ballistic-Missile/session"
)

// Settings contains everything that can be configured in the settings file.
type Settings struct {
	Simulation struct {
		Mass            float64
		Thrust          float64
		DragCoefficient float64
		Area            float64
		InitialFuel     float64
		FuelBurnRate    float64
		// ImpactAltitude is the altitude at which the missile is considered to hit the ground.
		ImpactAltitude float64
		// StartPosition is the launch platform position, as X, Y, Z.
		StartPosition []float64
	}
	Camera struct {
		// Mode is the name of the initial camera mode.
		Mode string
		// Seed seeds the camera jitter and shake.
		Seed int64
	}
	Display struct {
		ShowForces    bool
		ShowTrail     bool
		VisualEffects bool
		Clouds        bool
		Explosion     bool
	}
	Runner struct {
		// TickRate is the number of ticks per second.
		TickRate int
		// MaxDuration is the simulated time, in seconds, after which a run stops even without an impact.
		MaxDuration float64
		// Realtime paces ticks with the wall clock instead of running them back to back.
		Realtime bool
		LogLevel string
		// SentryDSN enables crash reporting when set.
		SentryDSN string
		// StatsAddress serves runtime statistics on the address when set.
		StatsAddress string
		// ChartOutput is the path of the HTML flight chart written after a run. Empty disables it.
		ChartOutput string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	p := flightsim.DefaultParams()
	s.Simulation.Mass = p.Mass
	s.Simulation.Thrust = p.Thrust
	s.Simulation.DragCoefficient = p.DragCoefficient
	s.Simulation.Area = p.Area
	s.Simulation.InitialFuel = p.InitialFuel
	s.Simulation.FuelBurnRate = p.FuelBurnRate

	opts := flightsim.DefaultOptions()
	s.Simulation.ImpactAltitude = opts.ImpactAltitude
	s.Simulation.StartPosition = opts.StartPosition[:]

	s.Camera.Mode = camera.ModeOverview.String()
	s.Camera.Seed = 1

	t := effects.DefaultToggles()
	s.Display.ShowForces = t.ShowForces
	s.Display.ShowTrail = t.ShowTrail
	s.Display.VisualEffects = t.VisualEffects
	s.Display.Clouds = t.Clouds
	s.Display.Explosion = t.Explosion

	s.Runner.TickRate = 60
	s.Runner.MaxDuration = 300
	s.Runner.LogLevel = logrus.InfoLevel.String()
	s.Runner.ChartOutput = "flight.html"
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist
// or holds invalid values. Keys missing from the file keep their default value.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err = settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}

// Validate reports values that cannot be used. Flight parameters out of their range are not errors:
// they are clamped when the session is built.
func (s Settings) Validate() error {
	if _, err := camera.ParseMode(s.Camera.Mode); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(s.Runner.LogLevel); err != nil {
		return err
	}
	if s.Runner.TickRate <= 0 {
		return oerror.New("tick rate must be positive, got %d", s.Runner.TickRate)
	}
	if s.Runner.MaxDuration <= 0 {
		return oerror.New("max duration must be positive, got %v", s.Runner.MaxDuration)
	}
	if s.Simulation.ImpactAltitude < 0 {
		return oerror.New("impact altitude must not be negative, got %v", s.Simulation.ImpactAltitude)
	}
	if len(s.Simulation.StartPosition) != 3 {
		return oerror.New("start position needs 3 coordinates, got %d", len(s.Simulation.StartPosition))
	}
	if s.Simulation.StartPosition[1] <= s.Simulation.ImpactAltitude {
		return oerror.New("start position %v is at or below the impact altitude %v", s.Simulation.StartPosition, s.Simulation.ImpactAltitude)
	}
	return nil
}

// Params returns the flight parameters, clamped to their valid ranges.
func (s Settings) Params() flightsim.Params {
	return flightsim.Params{
		Mass:            s.Simulation.Mass,
		Thrust:          s.Simulation.Thrust,
		DragCoefficient: s.Simulation.DragCoefficient,
		Area:            s.Simulation.Area,
		InitialFuel:     s.Simulation.InitialFuel,
		FuelBurnRate:    s.Simulation.FuelBurnRate,
	}.Clamp()
}

// Toggles returns the display switches.
func (s Settings) Toggles() effects.Toggles {
	return effects.Toggles{
		ShowForces:    s.Display.ShowForces,
		ShowTrail:     s.Display.ShowTrail,
		VisualEffects: s.Display.VisualEffects,
		Clouds:        s.Display.Clouds,
		Explosion:     s.Display.Explosion,
	}
}

// TickDelta returns the duration of a tick in seconds.
func (s Settings) TickDelta() float64 {
	return 1 / float64(s.Runner.TickRate)
}

// Session returns the session configuration described by the settings. The settings must be valid.
func (s Settings) Session() session.Config {
	conf := session.DefaultConfig()
	conf.Params = s.Params()
	conf.Options.ImpactAltitude = s.Simulation.ImpactAltitude
	conf.Options.StartPosition = mgl64.Vec3{s.Simulation.StartPosition[0], s.Simulation.StartPosition[1], s.Simulation.StartPosition[2]}
	if m, err := camera.ParseMode(s.Camera.Mode); err == nil {
		conf.CameraMode = m
	}
	conf.Seed = s.Camera.Seed
	conf.Toggles = s.Toggles()
	return conf
}
