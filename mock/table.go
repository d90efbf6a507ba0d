package mock

import (
	"context"

	"github.com/fwojciec/proddesc"
)

var _ proddesc.TableSource = (*TableSource)(nil)

// TableSource is a mock implementation of proddesc.TableSource.
type TableSource struct {
	ReadTableFn func(ctx context.Context) (*proddesc.Table, error)
}

func (s *TableSource) ReadTable(ctx context.Context) (*proddesc.Table, error) {
	return s.ReadTableFn(ctx)
}

var _ proddesc.TableSink = (*TableSink)(nil)

// TableSink is a mock implementation of proddesc.TableSink.
type TableSink struct {
	WriteTableFn func(ctx context.Context, t *proddesc.Table) error
}

func (s *TableSink) WriteTable(ctx context.Context, t *proddesc.Table) error {
	return s.WriteTableFn(ctx, t)
}
