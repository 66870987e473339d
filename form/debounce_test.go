package form

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerFiresOncePerBurst(t *testing.T) {
	d := &Debouncer{Quiet: 20 * time.Millisecond}
	var fired atomic.Int32

	// keystrokes arriving well inside the quiet period
	for i := 0; i < 5; i++ {
		d.Trigger(func() { fired.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("callback fired %d times, want 1", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	d := &Debouncer{Quiet: 10 * time.Millisecond}
	var fired atomic.Int32

	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Fatalf("stopped debouncer fired %d times", got)
	}
}

func TestDebouncerSeparateBursts(t *testing.T) {
	d := &Debouncer{Quiet: 10 * time.Millisecond}
	var fired atomic.Int32

	d.Trigger(func() { fired.Add(1) })
	time.Sleep(50 * time.Millisecond)
	d.Trigger(func() { fired.Add(1) })
	time.Sleep(50 * time.Millisecond)

	if got := fired.Load(); got != 2 {
		t.Fatalf("callback fired %d times, want 2", got)
	}
}
