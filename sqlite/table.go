package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fwojciec/proddesc"
)

// DefaultTable is the table name used when none is configured.
const DefaultTable = "catalog"

// Ensure TableStore implements proddesc.TableSource and proddesc.TableSink.
var (
	_ proddesc.TableSource = (*TableStore)(nil)
	_ proddesc.TableSink   = (*TableStore)(nil)
)

// TableStore maps a catalog table onto a SQL table with one TEXT column per
// catalog column. Row order is the insertion order.
type TableStore struct {
	db   *DB
	name string
}

// NewTableStore creates a TableStore for the named table. An empty name
// selects DefaultTable.
func NewTableStore(db *DB, name string) *TableStore {
	if name == "" {
		name = DefaultTable
	}
	return &TableStore{db: db, name: name}
}

// ReadTable reads all rows of the table.
func (s *TableStore) ReadTable(ctx context.Context) (*proddesc.Table, error) {
	var n int
	if err := s.db.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", s.name,
	).Scan(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, proddesc.Errorf(proddesc.ENOTFOUND, "table %q not found", s.name)
	}

	rows, err := s.db.db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(s.name)+" ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	t := &proddesc.Table{Columns: columns}
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = v.String
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteTable replaces the table with t inside a single transaction.
func (s *TableStore) WriteTable(ctx context.Context, t *proddesc.Table) error {
	if err := validateColumns(t.Columns); err != nil {
		return err
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(s.name)); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}

	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = quoteIdent(c) + " TEXT NOT NULL DEFAULT ''"
	}
	if _, err := tx.ExecContext(ctx,
		"CREATE TABLE "+quoteIdent(s.name)+" ("+strings.Join(defs, ", ")+")",
	); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ")
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO "+quoteIdent(s.name)+" VALUES ("+placeholders+")")
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i := range args {
			args[i] = ""
			if i < len(row) {
				args[i] = row[i]
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	return tx.Commit()
}

func validateColumns(columns []string) error {
	if len(columns) == 0 {
		return proddesc.Errorf(proddesc.EINVALID, "table has no columns")
	}
	seen := make(map[string]bool, len(columns))
	for i, c := range columns {
		if strings.TrimSpace(c) == "" {
			return proddesc.Errorf(proddesc.EINVALID, "column %d has no name", i+1)
		}
		key := strings.ToLower(c)
		if seen[key] {
			return proddesc.Errorf(proddesc.EINVALID, "duplicate column %q", c)
		}
		seen[key] = true
	}
	return nil
}

// quoteIdent quotes a SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
