package hearts

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures a Generator. Zero values take the defaults below.
type Options struct {
	Interval    time.Duration // spawn cadence, default 300ms
	Lifetime    time.Duration // removal delay, default 7s
	MinSize     float64       // default 10
	MaxSize     float64       // default 30
	MinDuration time.Duration // default 3s
	MaxDuration time.Duration // default 7s

	Rand   *rand.Rand
	Now    func() time.Time
	Logger zerolog.Logger
}

func (o *Options) applyDefaults() {
	if o.Interval <= 0 {
		o.Interval = 300 * time.Millisecond
	}
	if o.Lifetime <= 0 {
		o.Lifetime = 7 * time.Second
	}
	if o.MinSize == 0 && o.MaxSize == 0 {
		o.MinSize, o.MaxSize = 10, 30
	}
	if o.MinDuration == 0 && o.MaxDuration == 0 {
		o.MinDuration, o.MaxDuration = 3*time.Second, 7*time.Second
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Generator spawns hearts into a Field on a fixed cadence. Each heart is
// removed after Lifetime, which must not be shorter than MaxDuration.
type Generator struct {
	field *Field
	opts  Options

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
	cancel context.CancelFunc
	done   chan struct{}
}

// NewGenerator creates a generator writing into field.
func NewGenerator(field *Field, opts Options) *Generator {
	opts.applyDefaults()
	return &Generator{
		field:  field,
		opts:   opts,
		timers: make(map[uuid.UUID]*time.Timer),
	}
}

// Field returns the container hearts are spawned into.
func (g *Generator) Field() *Field {
	return g.field
}

// Spawn creates one heart at a random position, size and animation
// duration, and schedules its removal.
func (g *Generator) Spawn() Heart {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := g.opts.Rand
	h := Heart{
		ID:       uuid.New(),
		X:        r.Float64() * 100,
		Y:        r.Float64() * 100,
		Size:     g.opts.MinSize + r.Float64()*(g.opts.MaxSize-g.opts.MinSize),
		Duration: g.opts.MinDuration + time.Duration(r.Float64()*float64(g.opts.MaxDuration-g.opts.MinDuration)),
		Born:     g.opts.Now(),
	}
	g.field.Add(h)

	id := h.ID
	g.timers[id] = time.AfterFunc(g.opts.Lifetime, func() {
		g.field.Remove(id)
		g.mu.Lock()
		delete(g.timers, id)
		g.mu.Unlock()
	})

	return h
}

// Start runs the spawn loop until Stop is called or ctx is cancelled.
// Calling Start on a running generator does nothing.
func (g *Generator) Start(ctx context.Context) {
	g.mu.Lock()
	if g.activeLocked() {
		g.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.done = make(chan struct{})
	done := g.done
	g.mu.Unlock()

	g.opts.Logger.Debug().Dur("interval", g.opts.Interval).Msg("hearts started")
	go g.loop(ctx, done)
}

func (g *Generator) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(g.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Spawn()
		}
	}
}

// Stop ends the spawn loop, cancels pending removals and clears the
// field. It is safe to call more than once.
func (g *Generator) Stop() {
	g.mu.Lock()
	cancel, done := g.cancel, g.done
	g.cancel, g.done = nil, nil
	g.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	g.mu.Lock()
	for id, t := range g.timers {
		t.Stop()
		delete(g.timers, id)
	}
	g.mu.Unlock()
	g.field.Clear()

	if cancel != nil {
		g.opts.Logger.Debug().Msg("hearts stopped")
	}
}

// Running reports whether the spawn loop is active.
func (g *Generator) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.activeLocked()
}

// activeLocked reports whether a loop goroutine is still running. The
// loop also exits on its own when the parent context is cancelled.
func (g *Generator) activeLocked() bool {
	if g.done == nil {
		return false
	}
	select {
	case <-g.done:
		return false
	default:
		return true
	}
}
