package worker

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsWhenTickReturnsFalse(t *testing.T) {
	var ticks int
	var total time.Duration
	err := Run(context.Background(), time.Millisecond, func(dt time.Duration) bool {
		ticks++
		total += dt
		return ticks < 5
	})
	require.NoError(t, err)
	assert.Equal(t, 5, ticks)
	assert.Greater(t, total, time.Duration(0))
}

func TestRunStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ticks int
	err := Run(ctx, time.Millisecond, func(time.Duration) bool {
		ticks++
		if ticks == 3 {
			cancel()
		}
		return true
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, ticks, 3)
}

func TestRunRecoversPanics(t *testing.T) {
	err := Run(context.Background(), time.Millisecond, func(time.Duration) bool {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRunRejectsInterval(t *testing.T) {
	assert.Error(t, Run(context.Background(), 0, func(time.Duration) bool { return false }))
}

func TestPoolSurvivesPanics(t *testing.T) {
	for range runtime.NumCPU() {
		Submit(func() { panic("job crashed") })
	}

	done := make(chan struct{}, runtime.NumCPU()*2)
	for range runtime.NumCPU() * 2 {
		Submit(func() { done <- struct{}{} })
	}
	for range runtime.NumCPU() * 2 {
		select {
		case <-done:
		case <-time.After(10 * time.Second):
			t.Fatal("worker pool lost its workers after panics")
		}
	}
}

func TestSubmit(t *testing.T) {
	done := make(chan int)
	Submit(func() { done <- 42 })
	select {
	case v := <-done:
		assert.Equal(t, 42, v)
	case <-time.After(5 * time.Second):
		t.Fatal("submitted function never ran")
	}
}
