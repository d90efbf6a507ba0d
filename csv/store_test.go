package csv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReadTable(t *testing.T) {
	t.Parallel()

	t.Run("reads header and rows", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.csv")
		content := "Полное наименование,Расшифровка\nБолт М8,\n\"Гайка, М8\",крепёж\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		table, err := csv.NewStore(path).ReadTable(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"Полное наименование", "Расшифровка"}, table.Columns)
		assert.Equal(t, [][]string{{"Болт М8", ""}, {"Гайка, М8", "крепёж"}}, table.Rows)
	})

	t.Run("ignores byte order mark", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFName\nbolt\n"), 0644))

		table, err := csv.NewStore(path).ReadTable(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"Name"}, table.Columns)
		assert.Equal(t, 0, table.ColumnIndex("Name"))
	})

	t.Run("pads ragged rows", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1\n1,2,3\n"), 0644))

		table, err := csv.NewStore(path).ReadTable(context.Background())

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"1", "", ""}, {"1", "2", "3"}}, table.Rows)
	})

	t.Run("reads custom delimiter", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, []byte("a;b\n1;2\n"), 0644))

		table, err := csv.NewStore(path, csv.WithComma(';')).ReadTable(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, table.Columns)
		assert.Equal(t, [][]string{{"1", "2"}}, table.Rows)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := csv.NewStore(filepath.Join(t.TempDir(), "missing.csv")).ReadTable(context.Background())

		assert.Equal(t, proddesc.ENOTFOUND, proddesc.ErrorCode(err))
	})

	t.Run("rejects empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := csv.NewStore(path).ReadTable(context.Background())

		assert.Equal(t, proddesc.EINVALID, proddesc.ErrorCode(err))
	})
}

func TestStore_WriteTable(t *testing.T) {
	t.Parallel()

	t.Run("round trips table", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		store := csv.NewStore(path)
		want := &proddesc.Table{
			Columns: []string{"Полное наименование", "Расшифровка"},
			Rows:    [][]string{{"Болт М8", "Крепёж, \"оцинкованный\"\nвторая строка"}},
		}

		require.NoError(t, store.WriteTable(context.Background(), want))
		got, err := store.ReadTable(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("writes byte order mark by default", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")

		err := csv.NewStore(path).WriteTable(context.Background(), &proddesc.Table{Columns: []string{"a"}})

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "\xEF\xBB\xBFa\n", string(data))
	})

	t.Run("omits byte order mark when disabled", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")

		err := csv.NewStore(path, csv.WithBOM(false)).WriteTable(context.Background(), &proddesc.Table{
			Columns: []string{"a", "b"},
			Rows:    [][]string{{"1", "2"}},
		})

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(data))
	})
}
