package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/proddesc"
)

// Ensure LoggingTableSink implements proddesc.TableSink.
var _ proddesc.TableSink = (*LoggingTableSink)(nil)

// LoggingTableSink wraps a TableSink with debug logging.
type LoggingTableSink struct {
	next   proddesc.TableSink
	logger *slog.Logger
}

// NewLoggingTableSink creates a new LoggingTableSink.
func NewLoggingTableSink(next proddesc.TableSink, logger *slog.Logger) *LoggingTableSink {
	return &LoggingTableSink{next: next, logger: logger}
}

// WriteTable delegates to the wrapped sink and logs the save.
func (s *LoggingTableSink) WriteTable(ctx context.Context, t *proddesc.Table) (err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "save table",
			"rows", len(t.Rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteTable(ctx, t)
}
