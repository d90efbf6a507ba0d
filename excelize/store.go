// Package excelize stores catalog tables as .xlsx workbooks using
// github.com/xuri/excelize/v2.
package excelize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/fs"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet names the worksheet written when none was read or configured.
const DefaultSheet = "Sheet1"

// Ensure Store implements proddesc.TableSource and proddesc.TableSink.
var (
	_ proddesc.TableSource = (*Store)(nil)
	_ proddesc.TableSink   = (*Store)(nil)
)

// Store reads one worksheet of a workbook and writes tables as a
// single-sheet workbook. The first row of the sheet is the header.
type Store struct {
	path  string
	sheet string

	// sheetOf supplies the written sheet name when none is set.
	sheetOf *Store
}

// Option configures a Store.
type Option func(*Store)

// WithSheet selects the worksheet. By default the first sheet is read and
// the written sheet keeps the name of the one read last.
func WithSheet(name string) Option {
	return func(s *Store) {
		s.sheet = name
	}
}

// WithSheetOf names the written sheet after the sheet src read last, for a
// Store writing a different workbook than src reads. WithSheet takes
// precedence.
func WithSheetOf(src *Store) Option {
	return func(s *Store) {
		s.sheetOf = src
	}
}

// NewStore creates a Store for path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sheet returns the configured sheet, or the sheet read last when none was
// configured. It is empty before the first read.
func (s *Store) Sheet() string {
	return s.sheet
}

// ReadTable reads the configured sheet. Rows are padded to the header width.
func (s *Store) ReadTable(ctx context.Context) (*proddesc.Table, error) {
	f, err := excelize.OpenFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, proddesc.Errorf(proddesc.ENOTFOUND, "workbook %q not found", s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	sheet := s.sheet
	switch {
	case sheet == "" && len(sheets) > 0:
		sheet = sheets[0]
	case sheet == "":
		return nil, proddesc.Errorf(proddesc.EINVALID, "workbook %q has no sheets", s.path)
	case !slices.Contains(sheets, sheet):
		return nil, proddesc.Errorf(proddesc.ENOTFOUND, "sheet %q not found in %q", sheet, s.path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, proddesc.Errorf(proddesc.EINVALID, "sheet %q is empty", sheet)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.sheet = sheet
	t := &proddesc.Table{Columns: rows[0], Rows: rows[1:]}
	t.Normalize()
	return t, nil
}

// WriteTable replaces the workbook with a single sheet holding t.
func (s *Store) WriteTable(ctx context.Context, t *proddesc.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := s.sheet
	if sheet == "" && s.sheetOf != nil {
		sheet = s.sheetOf.Sheet()
	}
	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return fmt.Errorf("name sheet: %w", err)
		}
	}

	if err := writeRow(f, sheet, 1, t.Columns); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return fs.WriteFileAtomic(ctx, s.path, func(w io.Writer) error {
		return f.Write(w)
	})
}

func writeRow(f *excelize.File, sheet string, n int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", n, err)
	}
	return nil
}
