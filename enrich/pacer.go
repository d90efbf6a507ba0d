package enrich

import (
	"context"
	"time"

	"github.com/fwojciec/proddesc"
)

var _ proddesc.Pacer = (*Pacer)(nil)

// Pacer pauses for a fixed interval. Callers wait after an operation
// completes, so the gap to the next one is the full interval however long
// the previous operation ran.
type Pacer struct {
	interval time.Duration
}

// NewPacer creates a Pacer. A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks for the interval.
// Returns an error if the context is canceled before the interval elapses.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return nil
	}

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
