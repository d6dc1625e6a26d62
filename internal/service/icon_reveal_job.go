package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const defaultAnimationInterval = 500 * time.Millisecond

// iconRevealJob posts one reveal event per icon, last path first, at a fixed
// interval, followed by a single done event.
type iconRevealJob struct {
	clock    clockwork.Clock
	interval time.Duration
	post     func(Event)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newIconRevealJob(clock clockwork.Clock, interval time.Duration, post func(Event)) *iconRevealJob {
	if interval <= 0 {
		interval = defaultAnimationInterval
	}
	return &iconRevealJob{clock: clock, interval: interval, post: post}
}

// Start stops a running reveal and begins a new one for paths. The first
// icon is posted right away.
func (j *iconRevealJob) Start(ctx context.Context, paths []string) {
	j.Stop()

	queue := append([]string(nil), paths...)

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		next := func() bool {
			if len(queue) == 0 {
				j.post(Event{Kind: EventRevealDone})
				return false
			}
			last := len(queue) - 1
			j.post(Event{Kind: EventRevealIcon, IconPath: queue[last]})
			queue = queue[:last]
			return true
		}

		if !next() {
			return
		}

		t := j.clock.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
				if !next() {
					return
				}
			}
		}
	}()
}

// Stop cancels a running reveal and waits for it to exit. Safe to call when
// nothing is running.
func (j *iconRevealJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
