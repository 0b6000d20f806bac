package worker

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// Loop drives a step function at a fixed tick rate on its own goroutine,
// passing the measured wall-clock delta of each frame. Hosts that already own
// a frame loop (a renderer) should call the step function themselves instead.
type Loop struct {
	step     func(dt float32)
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// StartLoop starts a loop calling step rate times per second.
func StartLoop(step func(dt float32), rate int) *Loop {
	if rate <= 0 {
		rate = 60
	}
	l := &Loop{
		step:     step,
		interval: time.Second / time.Duration(rate),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer sentry.Recover()
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			l.step(dt)
		}
	}
}

// Stop halts the loop and waits for the in-progress frame to finish. It must
// be called at most once.
func (l *Loop) Stop() {
	close(l.stop)
	<-l.done
}
