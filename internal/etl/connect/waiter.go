// Package connect implements the blocking pre-flight check the ETL run does
// before touching either store, as a small explicit state machine.
package connect

import (
	"context"
	"sync"
	"time"

	"github.com/shopgraph/go-recs-backend/internal/etl/domain"
)

type State int

const (
	StateConnecting State = iota
	StateConnected
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Waiter polls a store until it answers, with a hard attempt ceiling and a
// fixed inter-attempt delay. It is a pre-flight check, not a resilience
// mechanism: no backoff, no jitter.
type Waiter struct {
	Target   string
	Attempts int
	Delay    time.Duration
	Dial     func(ctx context.Context) error

	// sleep is swapped out in tests so the attempt ceiling is testable
	// without real timing.
	sleep func(ctx context.Context, d time.Duration) error

	mu    sync.Mutex
	state State
}

func NewWaiter(target string, attempts int, delay time.Duration, dial func(ctx context.Context) error) *Waiter {
	return &Waiter{
		Target:   target,
		Attempts: attempts,
		Delay:    delay,
		Dial:     dial,
		sleep:    sleepCtx,
	}
}

// State reports the machine's current state.
func (w *Waiter) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Waiter) setState(s State) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}

// Wait dials until a dial succeeds or the attempt ceiling is hit. On success
// the machine lands in StateConnected; on exhaustion in StateFailed with a
// ConnectionUnavailableError carrying the last dial error.
func (w *Waiter) Wait(ctx context.Context) error {
	w.setState(StateConnecting)

	var lastErr error
	for i := 0; i < w.Attempts; i++ {
		if err := ctx.Err(); err != nil {
			w.setState(StateFailed)
			return &domain.ConnectionUnavailableError{Target: w.Target, Attempts: i, Err: err}
		}

		lastErr = w.Dial(ctx)
		if lastErr == nil {
			w.setState(StateConnected)
			return nil
		}

		if i < w.Attempts-1 {
			if err := w.sleep(ctx, w.Delay); err != nil {
				w.setState(StateFailed)
				return &domain.ConnectionUnavailableError{Target: w.Target, Attempts: i + 1, Err: err}
			}
		}
	}

	w.setState(StateFailed)
	return &domain.ConnectionUnavailableError{Target: w.Target, Attempts: w.Attempts, Err: lastErr}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
