package worker

import (
	"context"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/vestorino/Ballistic-Missile/oerror"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer func() {
		if v := recover(); v != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(v)
			hub.Flush(time.Second * 5)
			// The pool keeps its size after a crashed job.
			go worker()
		}
	}()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// Submit queues f on the shared worker pool. To be used by work that may be CPU intensive and must not
// hold up the frame loop, such as rendering a chart.
func Submit(f func()) {
	workerQueue <- f
}

// Run calls tick every interval with the wall time elapsed since the previous call, on the calling
// goroutine, until ctx is done or tick returns false. A panic in tick is reported to sentry and
// returned as an error.
func Run(ctx context.Context, interval time.Duration, tick func(dt time.Duration) bool) (err error) {
	if interval <= 0 {
		return oerror.New("worker: interval must be positive, got %v", interval)
	}
	defer func() {
		if v := recover(); v != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(v)
			hub.Flush(time.Second * 5)
			err = oerror.New("worker: frame loop crashed: %v", v)
		}
	}()

	t := time.NewTicker(interval)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			dt := now.Sub(last)
			last = now
			if !tick(dt) {
				return nil
			}
		}
	}
}
