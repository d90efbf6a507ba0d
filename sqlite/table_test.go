package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableStore_WriteTable(t *testing.T) {
	t.Parallel()

	t.Run("round trips table in row order", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewTableStore(openDB(t), "")
		want := &proddesc.Table{
			Columns: []string{"Полное наименование", "Расшифровка", `Say "hi"`},
			Rows: [][]string{
				{"Шайба", "", "c"},
				{"Болт М8", "Крепёж.", ""},
				{"Гайка", "", ""},
			},
		}

		require.NoError(t, store.WriteTable(context.Background(), want))
		got, err := store.ReadTable(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("replaces previous contents", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		store := sqlite.NewTableStore(db, "items")
		table := &proddesc.Table{Columns: []string{"Name"}, Rows: [][]string{{"bolt"}, {"nut"}}}
		require.NoError(t, store.WriteTable(context.Background(), table))

		table.Columns = append(table.Columns, "Description")
		table.Rows = [][]string{{"bolt", "fastener"}}
		require.NoError(t, store.WriteTable(context.Background(), table))

		var n int
		require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM "items"`).Scan(&n))
		assert.Equal(t, 1, n)

		got, err := store.ReadTable(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Description"}, got.Columns)
	})

	t.Run("pads short rows", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewTableStore(openDB(t), "")
		require.NoError(t, store.WriteTable(context.Background(), &proddesc.Table{
			Columns: []string{"a", "b"},
			Rows:    [][]string{{"1"}},
		}))

		got, err := store.ReadTable(context.Background())

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"1", ""}}, got.Rows)
	})

	t.Run("rejects duplicate columns and keeps old table", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewTableStore(openDB(t), "")
		require.NoError(t, store.WriteTable(context.Background(), &proddesc.Table{
			Columns: []string{"Name"},
			Rows:    [][]string{{"bolt"}},
		}))

		err := store.WriteTable(context.Background(), &proddesc.Table{Columns: []string{"Name", "name"}})

		assert.Equal(t, proddesc.EINVALID, proddesc.ErrorCode(err))
		got, err := store.ReadTable(context.Background())
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"bolt"}}, got.Rows)
	})

	t.Run("rejects unnamed column", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewTableStore(openDB(t), "")

		err := store.WriteTable(context.Background(), &proddesc.Table{Columns: []string{"Name", " "}})

		assert.Equal(t, proddesc.EINVALID, proddesc.ErrorCode(err))
	})
}

func TestTableStore_ReadTable(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for missing table", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.NewTableStore(openDB(t), "missing").ReadTable(context.Background())

		assert.Equal(t, proddesc.ENOTFOUND, proddesc.ErrorCode(err))
	})

	t.Run("reads table created outside the tool", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		ctx := context.Background()
		_, err := db.ExecContext(ctx, `CREATE TABLE catalog (name TEXT, qty INTEGER, note TEXT)`)
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, `INSERT INTO catalog VALUES ('bolt', 10, NULL)`)
		require.NoError(t, err)

		got, err := sqlite.NewTableStore(db, "").ReadTable(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"name", "qty", "note"}, got.Columns)
		assert.Equal(t, [][]string{{"bolt", "10", ""}}, got.Rows)
	})
}
