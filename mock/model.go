package mock

import (
	"context"

	"github.com/fwojciec/proddesc"
)

var _ proddesc.Model = (*Model)(nil)

// Model is a mock implementation of proddesc.Model.
type Model struct {
	GenerateFn func(ctx context.Context, req *proddesc.GenerateRequest) (string, error)
}

func (m *Model) Generate(ctx context.Context, req *proddesc.GenerateRequest) (string, error) {
	return m.GenerateFn(ctx, req)
}

var _ proddesc.Describer = (*Describer)(nil)

// Describer is a mock implementation of proddesc.Describer.
type Describer struct {
	DescribeFn func(ctx context.Context, subject string, evidence []string, hint string) string
}

func (d *Describer) Describe(ctx context.Context, subject string, evidence []string, hint string) string {
	return d.DescribeFn(ctx, subject, evidence, hint)
}
