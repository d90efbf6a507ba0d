package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/csv"
	"github.com/fwojciec/proddesc/excelize"
	"github.com/fwojciec/proddesc/fs"
	"github.com/fwojciec/proddesc/sqlite"
)

// outputSuffix is appended to the input name to derive the default output.
const outputSuffix = " с описаниями"

type storeOptions struct {
	Sheet string
	Table string
}

// table is implemented by every store.
type table interface {
	proddesc.TableSource
	proddesc.TableSink
}

// stores opens table stores by file extension. SQLite databases are opened
// once per path so input and output may share a file.
type stores struct {
	opts storeOptions
	dbs  map[string]*sqlite.DB

	// workbook is the .xlsx source, whose sheet name .xlsx sinks reuse.
	workbook *excelize.Store
}

func newStores(opts storeOptions) *stores {
	return &stores{opts: opts, dbs: make(map[string]*sqlite.DB)}
}

// Source returns a store reading path.
func (s *stores) Source(path string) (proddesc.TableSource, error) {
	ok, err := fs.Exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, proddesc.Errorf(proddesc.ENOTFOUND, "input file %q not found", path)
	}
	t, err := s.open(path)
	if err != nil {
		return nil, err
	}
	if wb, ok := t.(*excelize.Store); ok {
		s.workbook = wb
	}
	return t, nil
}

// Sink returns a store writing path. An .xlsx sink names its sheet after the
// sheet an .xlsx source read.
func (s *stores) Sink(path string) (proddesc.TableSink, error) {
	return s.open(path)
}

func (s *stores) open(path string) (table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		opts := []excelize.Option{excelize.WithSheet(s.opts.Sheet)}
		if s.workbook != nil {
			opts = append(opts, excelize.WithSheetOf(s.workbook))
		}
		return excelize.NewStore(path, opts...), nil
	case ".csv":
		return csv.NewStore(path), nil
	case ".db", ".sqlite", ".sqlite3":
		db, err := s.db(path)
		if err != nil {
			return nil, err
		}
		return sqlite.NewTableStore(db, s.opts.Table), nil
	default:
		return nil, proddesc.Errorf(proddesc.EINVALID, "unsupported catalog format %q (use .xlsx, .csv, .db or .sqlite)", ext)
	}
}

func (s *stores) db(path string) (*sqlite.DB, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if db, ok := s.dbs[key]; ok {
		return db, nil
	}
	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	s.dbs[key] = db
	return db, nil
}

// Close closes every opened database.
func (s *stores) Close() error {
	var errs []error
	for _, db := range s.dbs {
		errs = append(errs, db.Close())
	}
	return errors.Join(errs...)
}

// defaultOutput derives the output path from the input path.
func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + outputSuffix + ext
}

// resumeSource picks the table to read: the output of an earlier run when
// resuming and it exists, the input otherwise.
func resumeSource(input, output string, resume bool) (string, error) {
	if !resume || input == output {
		return input, nil
	}
	ok, err := fs.Exists(output)
	if err != nil {
		return "", err
	}
	if ok {
		return output, nil
	}
	return input, nil
}
