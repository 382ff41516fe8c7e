// Package carousel cycles through a fixed list on a timer, with manual
// navigation.
package carousel

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the autoplay period used when none is given.
const DefaultInterval = 8 * time.Second

// Ticker is the part of time.Ticker a Rotation needs.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// Clock creates tickers. Tests swap it for a manual one.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realClock struct{}

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time   { return r.t.C }
func (r realTicker) Reset(d time.Duration) { r.t.Reset(d) }
func (r realTicker) Stop()                 { r.t.Stop() }

type Option[T any] func(*Rotation[T])

func WithClock[T any](c Clock) Option[T] {
	return func(r *Rotation[T]) { r.clock = c }
}

// WithOnChange registers fn, called with the new position after every move.
// fn must not call Stop.
func WithOnChange[T any](fn func(index int, item T)) Option[T] {
	return func(r *Rotation[T]) { r.onChange = fn }
}

// Rotation is a cyclic cursor over items. Once started it owns one ticker
// and one goroutine; Stop releases both. Manual navigation restarts the
// autoplay countdown.
type Rotation[T any] struct {
	items    []T
	interval time.Duration
	clock    Clock
	onChange func(int, T)

	mu      sync.Mutex
	index   int
	ticker  Ticker
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

func New[T any](items []T, interval time.Duration, opts ...Option[T]) *Rotation[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	r := &Rotation[T]{
		items:    items,
		interval: interval,
		clock:    realClock{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Rotation[T]) Len() int { return len(r.items) }

// Current returns the shown item. ok is false for an empty list.
func (r *Rotation[T]) Current() (index int, item T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return 0, item, false
	}
	return r.index, r.items[r.index], true
}

// Start begins autoplay. It does nothing for an empty list, a rotation
// already started or one already stopped, and reports whether a ticker was
// scheduled. Autoplay ends with Stop or when ctx is done.
func (r *Rotation[T]) Start(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 || r.ticker != nil || r.stopped {
		return false
	}
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.ticker = r.clock.NewTicker(r.interval)
	r.done = make(chan struct{})
	go r.run(r.ctx, r.ticker, r.done)
	return true
}

func (r *Rotation[T]) run(ctx context.Context, t Ticker, done chan struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			r.tick(ctx)
		}
	}
}

func (r *Rotation[T]) tick(ctx context.Context) {
	r.mu.Lock()
	if r.stopped || ctx.Err() != nil {
		r.mu.Unlock()
		return
	}
	idx, item := r.move(1)
	r.mu.Unlock()
	r.notify(idx, item)
}

// Stop cancels autoplay and waits for the goroutine to exit. After Stop
// returns no callback fires and navigation is ignored.
func (r *Rotation[T]) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	done := r.done
	if r.cancel != nil {
		r.cancel()
	}
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Done is closed once the autoplay goroutine has exited. It is nil when
// the rotation was never started.
func (r *Rotation[T]) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// Advance moves to the next item, wrapping to the first.
func (r *Rotation[T]) Advance() { r.navigate(func() (int, T) { return r.move(1) }) }

// Prev moves to the previous item, wrapping to the last.
func (r *Rotation[T]) Prev() { r.navigate(func() (int, T) { return r.move(-1) }) }

// Goto jumps to item i modulo the list length.
func (r *Rotation[T]) Goto(i int) {
	r.navigate(func() (int, T) {
		r.index = Wrap(i, len(r.items))
		return r.index, r.items[r.index]
	})
}

func (r *Rotation[T]) navigate(step func() (int, T)) {
	r.mu.Lock()
	if r.stopped || len(r.items) == 0 {
		r.mu.Unlock()
		return
	}
	idx, item := step()
	if r.ticker != nil {
		r.ticker.Reset(r.interval)
	}
	r.mu.Unlock()
	r.notify(idx, item)
}

// move shifts the index by delta. r.mu must be held and items non-empty.
func (r *Rotation[T]) move(delta int) (int, T) {
	r.index = Wrap(r.index+delta, len(r.items))
	return r.index, r.items[r.index]
}

func (r *Rotation[T]) notify(idx int, item T) {
	if r.onChange != nil {
		r.onChange(idx, item)
	}
}

// Wrap maps any integer onto [0, n). It returns 0 when n is 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
