package carousel

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeTicker struct {
	c chan time.Time

	mu      sync.Mutex
	resets  int
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }

func (f *fakeTicker) Reset(time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
}

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

// fire delivers one tick; it does not block if nobody is listening.
func (f *fakeTicker) fire() bool {
	select {
	case f.c <- time.Now():
		return true
	case <-time.After(50 * time.Millisecond):
		return false
	}
}

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (c *fakeClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{c: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *fakeClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

func newTestRotation(items []string) (*Rotation[string], *fakeClock, chan int) {
	clock := &fakeClock{}
	changes := make(chan int, 16)
	r := New(items, time.Second,
		WithClock[string](clock),
		WithOnChange(func(i int, _ string) { changes <- i }),
	)
	return r, clock, changes
}

func TestWrap(t *testing.T) {
	tt := []struct{ i, n, want int }{
		{0, 3, 0}, {3, 3, 0}, {4, 3, 1}, {-1, 3, 2}, {-7, 3, 2}, {5, 0, 0},
	}
	for _, tc := range tt {
		if got := Wrap(tc.i, tc.n); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}

func TestAutoplayWrapsAround(t *testing.T) {
	r, clock, changes := newTestRotation([]string{"a", "b", "c"})
	if !r.Start(context.Background()) {
		t.Fatal("Start did not schedule a ticker")
	}
	defer r.Stop()

	ticker := clock.tickers[0]
	var seen []int
	for i := 0; i < 3; i++ {
		if !ticker.fire() {
			t.Fatalf("tick %d not consumed", i)
		}
		seen = append(seen, <-changes)
	}
	if seen[0] != 1 || seen[1] != 2 || seen[2] != 0 {
		t.Fatalf("indexes = %v, want [1 2 0]", seen)
	}
	if idx, item, ok := r.Current(); !ok || idx != 0 || item != "a" {
		t.Fatalf("Current = %d %q %v", idx, item, ok)
	}
}

func TestEmptyRotationSchedulesNothing(t *testing.T) {
	r, clock, changes := newTestRotation(nil)
	if r.Start(context.Background()) {
		t.Fatal("Start scheduled a ticker for an empty list")
	}
	if clock.count() != 0 {
		t.Fatal("ticker created for an empty list")
	}
	if _, _, ok := r.Current(); ok {
		t.Fatal("Current reported an item for an empty list")
	}
	r.Advance()
	r.Goto(2)
	if len(changes) != 0 {
		t.Fatal("navigation on an empty list fired a callback")
	}
	if r.Done() != nil {
		t.Fatal("Done should be nil when never started")
	}
	r.Stop()
}

func TestStopCancelsTimer(t *testing.T) {
	r, clock, changes := newTestRotation([]string{"a", "b", "c"})
	r.Start(context.Background())
	ticker := clock.tickers[0]

	ticker.fire()
	<-changes
	r.Stop()

	if ticker.fire() {
		t.Fatal("tick consumed after Stop")
	}
	r.Advance()
	select {
	case i := <-changes:
		t.Fatalf("callback fired after Stop with index %d", i)
	case <-time.After(20 * time.Millisecond):
	}
	if idx, _, _ := r.Current(); idx != 1 {
		t.Fatalf("index changed after Stop: %d", idx)
	}
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if !ticker.stopped {
		t.Fatal("ticker not stopped")
	}
}

func TestContextCancelEndsAutoplay(t *testing.T) {
	r, clock, _ := newTestRotation([]string{"a", "b"})
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	cancel()

	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("autoplay goroutine still running after cancel")
	}
	if clock.tickers[0].fire() {
		t.Fatal("tick consumed after cancel")
	}
}

func TestManualNavigationResetsCountdown(t *testing.T) {
	r, clock, changes := newTestRotation([]string{"a", "b", "c"})
	r.Start(context.Background())
	defer r.Stop()
	ticker := clock.tickers[0]

	r.Prev()
	if got := <-changes; got != 2 {
		t.Fatalf("Prev -> %d, want 2", got)
	}
	r.Goto(4)
	if got := <-changes; got != 1 {
		t.Fatalf("Goto(4) -> %d, want 1", got)
	}
	r.Advance()
	if got := <-changes; got != 2 {
		t.Fatalf("Advance -> %d, want 2", got)
	}

	ticker.mu.Lock()
	resets := ticker.resets
	ticker.mu.Unlock()
	if resets != 3 {
		t.Fatalf("ticker reset %d times, want 3", resets)
	}

	// autoplay carries on from the manual position
	ticker.fire()
	if got := <-changes; got != 0 {
		t.Fatalf("tick after navigation -> %d, want 0", got)
	}
}

func TestStartTwice(t *testing.T) {
	r, clock, _ := newTestRotation([]string{"a"})
	if !r.Start(context.Background()) {
		t.Fatal("first Start failed")
	}
	if r.Start(context.Background()) {
		t.Fatal("second Start scheduled another ticker")
	}
	r.Stop()
	if r.Start(context.Background()) {
		t.Fatal("Start after Stop scheduled a ticker")
	}
	if clock.count() != 1 {
		t.Fatalf("%d tickers created", clock.count())
	}
}
