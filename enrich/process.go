package enrich

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/proddesc"
)

// RowErrorPrefix starts the description written for a row that failed.
const RowErrorPrefix = "error: "

// Processor enriches catalog rows in source order, persisting the table after
// every described row and once more at the end.
type Processor struct {
	Collector proddesc.EvidenceCollector
	Describer proddesc.Describer
	Sink      proddesc.TableSink

	Columns  proddesc.Columns
	Category proddesc.Category

	// Overwrite regenerates rows that already have a description.
	// By default they are skipped so reruns resume where they stopped.
	Overwrite bool

	// MaxPages is passed to the collector. Zero means DefaultMaxPages.
	MaxPages int

	// Pacer is awaited between rows that reach the network, after the
	// previous one was saved. Nil disables pacing.
	Pacer proddesc.Pacer

	Logger *slog.Logger

	// networked is set once a row has reached the network.
	networked bool
}

// Result tallies row outcomes of a run.
type Result struct {
	Processed int
	Skipped   int
	// Stamped counts skipped rows that received the category stamp.
	Stamped int
	Errored int
}

// Run processes every row of t. It fails before touching any row when the
// table lacks the name column. Row failures are recorded in the table and do
// not stop the run. When ctx is canceled the loop stops and the table is still
// saved; ctx.Err() is returned alongside the partial result.
func (p *Processor) Run(ctx context.Context, t *proddesc.Table) (*Result, error) {
	if err := p.Columns.Validate(t); err != nil {
		return nil, err
	}
	t.EnsureColumn(p.Columns.Description)
	t.Normalize()

	logger := loggerOrDiscard(p.Logger)
	total := len(t.Rows)
	logger.Info("processing table", "rows", total)

	res := &Result{}
	for i := range t.Rows {
		if ctx.Err() != nil {
			break
		}

		name := p.Columns.Row(t, i).Name
		rowLogger := logger.With("row", fmt.Sprintf("%d/%d", i+1, total))

		out := p.ProcessRow(ctx, t, i)
		if _, failed := out.(proddesc.Failed); failed && ctx.Err() != nil {
			break
		}

		switch o := out.(type) {
		case proddesc.Skipped:
			res.Skipped++
			if o.Reason == proddesc.SkipCategory {
				res.Stamped++
			}
			rowLogger.Info("skip", "reason", string(o.Reason), "name", name)
		case proddesc.Described:
			res.Processed++
			rowLogger.Info("described",
				"name", name,
				"evidence", o.Evidence,
				"description", truncate(o.Description, 100),
			)
		case proddesc.Failed:
			res.Errored++
			rowLogger.Error("row failed", "name", name, "err", o.Err)
		}
	}

	// The final save runs even after cancellation.
	if err := p.Sink.WriteTable(context.WithoutCancel(ctx), t); err != nil {
		return res, fmt.Errorf("save table: %w", err)
	}

	logger.Info("done",
		"processed", res.Processed,
		"skipped", res.Skipped,
		"stamped", res.Stamped,
		"errored", res.Errored,
	)
	return res, ctx.Err()
}

// ProcessRow enriches row i of t in place. Skip checks run first, in order:
// empty name, category sentinel, existing description. Panics raised while
// enriching are recovered and recorded on the row.
func (p *Processor) ProcessRow(ctx context.Context, t *proddesc.Table, i int) (out proddesc.Outcome) {
	row := p.Columns.Row(t, i)
	descCol := t.EnsureColumn(p.Columns.Description)

	switch {
	case row.Name == "":
		return proddesc.Skipped{Reason: proddesc.SkipEmptyName}
	case p.Category.Matches(row):
		t.SetCell(i, descCol, p.Category.Stamp)
		return proddesc.Skipped{Reason: proddesc.SkipCategory}
	case !p.Overwrite && row.Description != "":
		return proddesc.Skipped{Reason: proddesc.SkipExisting}
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			t.SetCell(i, descCol, RowErrorPrefix+err.Error())
			out = proddesc.Failed{Err: err}
		}
	}()

	if p.networked && p.Pacer != nil {
		if err := p.Pacer.Wait(ctx); err != nil {
			return proddesc.Failed{Err: err}
		}
	}
	p.networked = true

	logger := loggerOrDiscard(p.Logger).With("row", i+1)
	logger.Info("processing", "name", row.Name)
	if row.Comment != "" {
		logger.Info("comment found", "comment", truncate(row.Comment, 100))
	}

	maxPages := p.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	evidence := p.Collector.Collect(ctx, row.Name, maxPages)
	if len(evidence) == 0 {
		logger.Warn("no web evidence, describing from the name only", "name", row.Name)
	}

	desc := p.Describer.Describe(ctx, row.Name, evidence, row.Comment)
	if err := ctx.Err(); err != nil {
		// Leave the row untouched so a rerun picks it up.
		return proddesc.Failed{Err: err}
	}
	t.SetCell(i, descCol, desc)

	if err := p.Sink.WriteTable(ctx, t); err != nil {
		return proddesc.Failed{Err: fmt.Errorf("persist table: %w", err)}
	}

	return proddesc.Described{Description: desc, Evidence: len(evidence)}
}
