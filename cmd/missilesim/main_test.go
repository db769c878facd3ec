package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/settings"
)

func TestRunFliesToImpact(t *testing.T) {
	log, _ := test.NewNullLogger()
	conf := settings.DefaultSettings()
	conf.Runner.ChartOutput = filepath.Join(t.TempDir(), "flight.html")

	state, err := run(context.Background(), log, conf)
	require.NoError(t, err)
	assert.Equal(t, flightsim.PhaseImpact, state.Phase)
	assert.True(t, state.Impacted)

	info, err := os.Stat(conf.Runner.ChartOutput)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	again, err := run(context.Background(), log, conf)
	require.NoError(t, err)
	assert.Equal(t, state.Fingerprint(), again.Fingerprint())
}

func TestWriteChartReportsRenderPanic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.html")
	err := writeChart(func(io.Writer) error { panic("bad series") }, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad series")

	require.NoError(t, writeChart(func(w io.Writer) error {
		_, err := io.WriteString(w, "<html></html>")
		return err
	}, path))
}

func TestRunStopsAtMaxDuration(t *testing.T) {
	log, _ := test.NewNullLogger()
	conf := settings.DefaultSettings()
	conf.Runner.ChartOutput = ""
	conf.Runner.MaxDuration = 2

	state, err := run(context.Background(), log, conf)
	require.NoError(t, err)
	assert.Equal(t, flightsim.PhaseBoost, state.Phase)
	assert.InDelta(t, 2, state.Elapsed, conf.TickDelta()+1e-9)
}
