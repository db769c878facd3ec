package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vestorino/Ballistic-Missile/camera"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/oerror"
	"github.com/vestorino/Ballistic-Missile/scene"
	"github.com/vestorino/Ballistic-Missile/session"
	"github.com/vestorino/Ballistic-Missile/settings"
	"github.com/vestorino/Ballistic-Missile/telemetry"
	"github.com/vestorino/Ballistic-Missile/utils"
	"github.com/vestorino/Ballistic-Missile/worker"
)

// The following program flies a single missile headlessly, from launch to impact, and writes a chart of
// the flight.
func main() {
	path := pflag.StringP("settings", "s", "settings.toml", "path of the settings file")
	initSettings := pflag.Bool("init", false, "write the default settings file and exit")
	mode := pflag.StringP("camera", "c", "", "camera mode, overriding the settings file")
	realtime := pflag.Bool("realtime", false, "pace ticks with the wall clock")
	chart := pflag.String("chart", "", "path of the flight chart, overriding the settings file")
	pflag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	if *initSettings {
		if err := settings.SaveDefault(*path); err != nil {
			log.Fatalf("unable to write settings: %v", err)
		}
		log.Infof("default settings written to %s", *path)
		return
	}

	conf := settings.DefaultSettings()
	if _, err := os.Stat(*path); err == nil {
		if conf, err = settings.Load(*path); err != nil {
			log.Fatalf("unable to load settings: %v", err)
		}
	} else {
		log.Warnf("%s not found, using default settings", *path)
	}
	if *mode != "" {
		conf.Camera.Mode = *mode
	}
	if *chart != "" {
		conf.Runner.ChartOutput = *chart
	}
	conf.Runner.Realtime = conf.Runner.Realtime || *realtime
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	if lvl, err := logrus.ParseLevel(conf.Runner.LogLevel); err == nil {
		log.Level = lvl
	}

	if conf.Runner.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: conf.Runner.SentryDSN}); err != nil {
			log.Errorf("unable to initialise sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 2)
	}

	if conf.Runner.StatsAddress != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(conf.Runner.StatsAddress))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	state, err := run(ctx, log, conf)
	if err != nil {
		log.Errorf("flight aborted: %v", err)
	}
	log.Infof("flight finished in phase %s, state fingerprint %016x", state.Phase, state.Fingerprint())
}

// run flies the missile described by conf until it hits the ground, MaxDuration elapses or ctx is done,
// and writes the flight chart if one is configured.
func run(ctx context.Context, log *logrus.Logger, conf settings.Settings) (flightsim.State, error) {
	r := scene.NewRecorder()
	s := session.New(log, conf.Session(), r)
	rec := telemetry.NewRecorder(conf.Runner.TickRate / 10)

	dt := conf.TickDelta()
	tick := func(dt float64) bool {
		res := s.Tick(dt, camera.Input{})
		rec.Record(s.State())
		return !res.Impact && s.State().Phase != flightsim.PhaseImpact && s.Elapsed() < conf.Runner.MaxDuration
	}

	s.Start()
	var err error
	if conf.Runner.Realtime {
		err = worker.Run(ctx, time.Duration(dt*float64(time.Second)), func(wall time.Duration) bool {
			return tick(wall.Seconds())
		})
	} else {
		for tick(dt) {
			if ctx.Err() != nil {
				err = ctx.Err()
				break
			}
		}
	}
	s.Pause()

	log.Infof("readouts %s, %d trail samples, %d renderer calls", utils.OrderedMapToString(s.Readouts()), len(r.Trail), r.Calls)
	if conf.Runner.ChartOutput != "" {
		if cerr := writeChart(rec.Render, conf.Runner.ChartOutput); cerr != nil {
			log.Errorf("unable to write chart: %v", cerr)
		} else {
			log.Infof("flight chart written to %s", conf.Runner.ChartOutput)
		}
	}
	return s.State(), err
}

// writeChart renders the chart to path on the worker pool.
func writeChart(render func(io.Writer) error, path string) error {
	done := make(chan error, 1)
	worker.Submit(func() {
		defer func() {
			if v := recover(); v != nil {
				done <- oerror.New("chart: %v", v)
			}
		}()
		f, err := os.Create(path)
		if err != nil {
			done <- err
			return
		}
		if err := render(f); err != nil {
			_ = f.Close()
			done <- err
			return
		}
		done <- f.Close()
	})
	return <-done
}
