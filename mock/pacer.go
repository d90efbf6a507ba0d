package mock

import (
	"context"

	"github.com/fwojciec/proddesc"
)

var _ proddesc.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of proddesc.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
