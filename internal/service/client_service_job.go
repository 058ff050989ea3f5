package service

import (
	"context"
	"sync"
	"time"
)

// periodicJob runs a tick function on a ticker in a background goroutine.
// It backs both the token refresher and the conversation poller.
type periodicJob struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// start stops any previously running job, then launches a goroutine that calls
// tick every interval. With immediate set, the first tick runs right away.
//
// The goroutine exits when ctx is cancelled, done is closed, stop is called
// or tick returns false. done is checked before every tick, so a job never
// starts a new network call after its session has ended.
func (j *periodicJob) start(ctx context.Context, interval time.Duration, done <-chan struct{}, immediate bool, tick func(context.Context) bool) {
	j.stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer cancel()

		alive := func() bool {
			select {
			case <-jobCtx.Done():
				return false
			case <-done:
				return false
			default:
				return true
			}
		}

		if immediate && (!alive() || !tick(jobCtx)) {
			return
		}

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-done:
				return
			case <-t.C:
				if !alive() || !tick(jobCtx) {
					return
				}
			}
		}
	}()
}

// stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running.
func (j *periodicJob) stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
