package player

import (
	"sync"
	"time"
)

// poller calls tick on a fixed interval. At most one polling goroutine is
// live: Start replaces any running one. Stop never blocks, so it is safe
// to call while holding a lock that tick also takes.
type poller struct {
	interval time.Duration
	tick     func()

	mu   sync.Mutex
	stop chan struct{}
	runs sync.WaitGroup
}

func newPoller(interval time.Duration, tick func()) *poller {
	if interval <= 0 {
		interval = time.Second
	}
	return &poller{interval: interval, tick: tick}
}

// Start (re)starts polling.
func (p *poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		close(p.stop)
	}
	stop := make(chan struct{})
	p.stop = stop

	p.runs.Add(1)
	go p.run(stop)
}

func (p *poller) run(stop chan struct{}) {
	defer p.runs.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case <-stop:
				return
			default:
			}
			p.tick()
		}
	}
}

// Stop halts polling. It is a no-op when nothing is running.
func (p *poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

// Active reports whether a polling goroutine is scheduled.
func (p *poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// wait blocks until every stopped goroutine has exited. Callers must not
// hold a lock that tick needs.
func (p *poller) wait() {
	p.runs.Wait()
}
