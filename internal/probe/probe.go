package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jonboulle/clockwork"

	"easyshell/internal/endpoint"
)

// ErrTimeout marks a backend that never accepted a connection before the
// deadline. It is fatal to startup; callers classify it with errors.Is.
var ErrTimeout = errors.New("backend readiness timeout")

// Default timings. Each dial attempt is capped well below the overall
// deadline so a hung connect cannot eat the whole budget.
const (
	DefaultTimeout     = 10 * time.Second
	DefaultInterval    = 150 * time.Millisecond
	DefaultDialTimeout = 250 * time.Millisecond
)

// Options configures the readiness wait.
type Options struct {
	// Timeout bounds the whole wait. Zero means DefaultTimeout.
	Timeout time.Duration
	// Interval is the sleep between failed attempts. Zero means
	// DefaultInterval.
	Interval time.Duration
	// DialTimeout caps a single connection attempt. Zero means
	// DefaultDialTimeout.
	DialTimeout time.Duration
	// Clock drives deadlines and sleeps; defaults to the real clock.
	Clock clockwork.Clock
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = DefaultDialTimeout
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	return o
}

// WaitReady blocks until the endpoint accepts a TCP connection or the
// deadline elapses. A successful connection is closed immediately; the
// probe asserts reachability, nothing more. There is no retry beyond
// this loop: a timeout aborts startup.
func WaitReady(ctx context.Context, ep endpoint.Endpoint, opts Options) error {
	opts = opts.withDefaults()
	clock := opts.Clock
	deadline := clock.Now().Add(opts.Timeout)

	for {
		conn, err := net.DialTimeout("tcp", ep.Addr(), opts.DialTimeout)
		if err == nil {
			conn.Close()
			return nil
		}

		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s: %w", ErrTimeout, ep.Addr(), context.Cause(ctx))
		}
		if !clock.Now().Before(deadline) {
			return fmt.Errorf("%w: %s not ready after %s", ErrTimeout, ep.Addr(), opts.Timeout)
		}
		clock.Sleep(opts.Interval)
	}
}
