package services

import (
	"context"
	"time"
)

// Simulated round-trip times of the hospital back office.
const (
	listDelay   = 400 * time.Millisecond
	lookupDelay = 200 * time.Millisecond
	writeDelay  = 400 * time.Millisecond
	slowDelay   = 600 * time.Millisecond
)

// Latency delays service calls when enabled. The zero value never waits.
type Latency struct {
	enabled bool
}

func NewLatency(enabled bool) Latency {
	return Latency{enabled: enabled}
}

// wait blocks for d, or until ctx is done.
func (l Latency) wait(ctx context.Context, d time.Duration) error {
	if !l.enabled {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
