package debounce

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func waitFired(t *testing.T, fired <-chan string) string {
	t.Helper()
	select {
	case v := <-fired:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("debounced action did not fire")
		return ""
	}
}

func assertNotFired(t *testing.T, fired <-chan string) {
	t.Helper()
	select {
	case v := <-fired:
		t.Fatalf("unexpected fire with %q", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestOnlyLastArmOfBurstFires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, 300*time.Millisecond)
	fired := make(chan string, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for _, q := range []string{"p", "pa", "par"} {
		q := q
		d.Arm(func() { fired <- q })
		if err := clock.BlockUntilContext(ctx, 1); err != nil {
			t.Fatalf("waiting for timer: %v", err)
		}
		clock.Advance(100 * time.Millisecond)
	}
	assertNotFired(t, fired)

	clock.Advance(199 * time.Millisecond)
	assertNotFired(t, fired)

	clock.Advance(time.Millisecond)
	if got := waitFired(t, fired); got != "par" {
		t.Fatalf("expected last query, got %q", got)
	}
	assertNotFired(t, fired)
	if d.Pending() {
		t.Fatal("nothing should be pending after fire")
	}
}

func TestCancelDropsPendingAction(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, 300*time.Millisecond)
	var calls atomic.Int32

	d.Arm(func() { calls.Add(1) })
	if !d.Pending() {
		t.Fatal("expected pending action")
	}
	d.Cancel()
	clock.Advance(time.Second)
	time.Sleep(50 * time.Millisecond)

	if calls.Load() != 0 {
		t.Fatalf("cancelled action ran %d times", calls.Load())
	}
	if d.Pending() {
		t.Fatal("nothing should be pending after cancel")
	}
}

func TestSeparateBurstsFireSeparately(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, 300*time.Millisecond)
	fired := make(chan string, 4)

	d.Arm(func() { fired <- "lon" })
	clock.Advance(300 * time.Millisecond)
	if got := waitFired(t, fired); got != "lon" {
		t.Fatalf("got %q", got)
	}

	d.Arm(func() { fired <- "london" })
	clock.Advance(300 * time.Millisecond)
	if got := waitFired(t, fired); got != "london" {
		t.Fatalf("got %q", got)
	}
}

func TestFlushRunsPendingActionOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, 300*time.Millisecond)
	var calls atomic.Int32

	if d.Flush() {
		t.Fatal("nothing to flush yet")
	}
	d.Arm(func() { calls.Add(1) })
	if !d.Flush() {
		t.Fatal("expected pending action to be flushed")
	}
	clock.Advance(time.Second)
	time.Sleep(50 * time.Millisecond)

	if calls.Load() != 1 {
		t.Fatalf("expected exactly one run, got %d", calls.Load())
	}
}

func TestWaitCoversActionFiredBeforeFlush(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, 300*time.Millisecond)
	started := make(chan string, 1)
	release := make(chan struct{})
	var finished atomic.Bool

	d.Arm(func() {
		started <- "par"
		<-release
		finished.Store(true)
	})
	clock.Advance(300 * time.Millisecond)
	waitFired(t, started)

	if d.Flush() {
		t.Fatal("a fired action must not be flushed again")
	}
	waited := make(chan struct{})
	go func() {
		d.Wait()
		close(waited)
	}()
	select {
	case <-waited:
		t.Fatal("Wait returned while the fired action was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after the action finished")
	}
	if !finished.Load() {
		t.Fatal("Wait returned before the action finished")
	}
}
