// Package csv stores catalog tables as comma-separated files.
package csv

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/fs"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Ensure Store implements proddesc.TableSource and proddesc.TableSink.
var (
	_ proddesc.TableSource = (*Store)(nil)
	_ proddesc.TableSink   = (*Store)(nil)
)

// Store reads and writes a table as a CSV file whose first record is the header.
type Store struct {
	path  string
	comma rune
	bom   bool
}

// Option configures a Store.
type Option func(*Store)

// WithComma sets the field delimiter. Default is ','.
func WithComma(r rune) Option {
	return func(s *Store) {
		s.comma = r
	}
}

// WithBOM controls whether written files start with a UTF-8 byte order mark.
// Default is true so spreadsheet programs detect the encoding.
func WithBOM(enabled bool) Option {
	return func(s *Store) {
		s.bom = enabled
	}
}

// NewStore creates a Store for path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, comma: ',', bom: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadTable reads the file. A leading UTF-8 byte order mark is ignored.
func (s *Store) ReadTable(ctx context.Context) (*proddesc.Table, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, proddesc.Errorf(proddesc.ENOTFOUND, "table file %q not found", s.path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}

	r := csv.NewReader(br)
	r.Comma = s.comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, proddesc.Errorf(proddesc.EINVALID, "table file %q is empty", s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	t := &proddesc.Table{Columns: header}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		t.Rows = append(t.Rows, record)
	}
	t.Normalize()
	return t, nil
}

// WriteTable replaces the file with t.
func (s *Store) WriteTable(ctx context.Context, t *proddesc.Table) error {
	return fs.WriteFileAtomic(ctx, s.path, func(w io.Writer) error {
		if s.bom {
			if _, err := w.Write(bom); err != nil {
				return err
			}
		}
		cw := csv.NewWriter(w)
		cw.Comma = s.comma
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil
	})
}
