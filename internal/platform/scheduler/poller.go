package scheduler

import (
	"context"
	"sync"
	"time"
)

// Poller runs one callback on a fixed interval until stopped. Arm replaces
// any previous interval, so re-arming on a dependency change never leaves two
// concurrent tickers behind. Ticks are delivered sequentially; a tick that
// outlives the interval delays the next one rather than overlapping it.
type Poller struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller() *Poller {
	return &Poller{}
}

// Arm starts ticking every interval, cancelling a previously armed interval
// first. The callback receives a context that is cancelled on Stop/re-Arm.
func (p *Poller) Arm(ctx context.Context, interval time.Duration, tick func(context.Context)) {
	if interval <= 0 || tick == nil {
		return
	}

	p.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				tick(runCtx)
			}
		}
	}()
}

// Stop cancels the current interval and waits for an in-flight tick to finish.
// Stopping an unarmed poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}
