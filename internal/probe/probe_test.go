package probe_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"easyshell/internal/endpoint"
	"easyshell/internal/probe"
)

func freeEndpoint(t *testing.T) endpoint.Endpoint {
	t.Helper()
	ep, err := endpoint.Allocate()
	if err != nil {
		t.Fatalf("allocate endpoint: %v", err)
	}
	return ep
}

func TestWaitReadySucceedsAgainstListeningBackend(t *testing.T) {
	ep := freeEndpoint(t)
	listener, err := net.Listen("tcp", ep.Addr())
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	err = probe.WaitReady(context.Background(), ep, probe.Options{
		Timeout:  2 * time.Second,
		Interval: 20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("WaitReady: %v", err)
	}
}

func TestWaitReadySucceedsWhenBackendBindsLate(t *testing.T) {
	ep := freeEndpoint(t)

	ready := make(chan net.Listener, 1)
	go func() {
		time.Sleep(100 * time.Millisecond)
		listener, err := net.Listen("tcp", ep.Addr())
		if err != nil {
			return
		}
		ready <- listener
	}()

	err := probe.WaitReady(context.Background(), ep, probe.Options{
		Timeout:  2 * time.Second,
		Interval: 20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("WaitReady: %v", err)
	}
	select {
	case listener := <-ready:
		listener.Close()
	case <-time.After(time.Second):
		t.Fatal("late listener never bound")
	}
}

func TestWaitReadyTimesOutWithinOneInterval(t *testing.T) {
	ep := freeEndpoint(t)

	const (
		timeout  = 300 * time.Millisecond
		interval = 50 * time.Millisecond
	)
	start := time.Now()
	err := probe.WaitReady(context.Background(), ep, probe.Options{
		Timeout:  timeout,
		Interval: interval,
	})
	elapsed := time.Since(start)

	if !errors.Is(err, probe.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	// Bound: timeout plus one interval, with headroom for dial latency.
	if elapsed > timeout+interval+500*time.Millisecond {
		t.Fatalf("probe overshot deadline: %s", elapsed)
	}
}

func TestWaitReadyTimesOutOnFakeClock(t *testing.T) {
	ep := freeEndpoint(t)
	clock := clockwork.NewFakeClock()

	done := make(chan error, 1)
	go func() {
		done <- probe.WaitReady(context.Background(), ep, probe.Options{
			Timeout:  time.Second,
			Interval: 100 * time.Millisecond,
			Clock:    clock,
		})
	}()

	for i := 0; i < 10; i++ {
		if err := clock.BlockUntilContext(context.Background(), 1); err != nil {
			t.Fatalf("BlockUntilContext: %v", err)
		}
		clock.Advance(100 * time.Millisecond)
	}

	select {
	case err := <-done:
		if !errors.Is(err, probe.ErrTimeout) {
			t.Fatalf("expected ErrTimeout, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("probe did not return after clock passed the deadline")
	}
}

func TestWaitReadyReportsContextCancellation(t *testing.T) {
	ep := freeEndpoint(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := probe.WaitReady(ctx, ep, probe.Options{Timeout: time.Second, Interval: 10 * time.Millisecond})
	if !errors.Is(err, probe.ErrTimeout) {
		t.Fatalf("expected ErrTimeout classification, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cause to include context.Canceled, got %v", err)
	}
}
