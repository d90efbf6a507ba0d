package proddesc_test

import (
	"testing"

	"github.com/fwojciec/proddesc"
	"github.com/stretchr/testify/assert"
)

func TestTable_ColumnIndex(t *testing.T) {
	t.Parallel()

	tbl := &proddesc.Table{Columns: []string{"Name", " Comment "}}

	assert.Equal(t, 0, tbl.ColumnIndex("Name"))
	assert.Equal(t, 1, tbl.ColumnIndex("Comment"))
	assert.Equal(t, -1, tbl.ColumnIndex("Missing"))
}

func TestTable_EnsureColumn(t *testing.T) {
	t.Parallel()

	t.Run("returns existing column", func(t *testing.T) {
		t.Parallel()

		tbl := &proddesc.Table{Columns: []string{"Name", "Description"}}

		assert.Equal(t, 1, tbl.EnsureColumn("Description"))
		assert.Len(t, tbl.Columns, 2)
	})

	t.Run("appends missing column", func(t *testing.T) {
		t.Parallel()

		tbl := &proddesc.Table{Columns: []string{"Name"}, Rows: [][]string{{"bolt"}}}

		idx := tbl.EnsureColumn("Description")

		assert.Equal(t, 1, idx)
		assert.Equal(t, []string{"Name", "Description"}, tbl.Columns)
		assert.Equal(t, "", tbl.Cell(0, idx))
	})
}

func TestTable_Cell(t *testing.T) {
	t.Parallel()

	tbl := &proddesc.Table{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"a1"}},
	}

	assert.Equal(t, "a1", tbl.Cell(0, 0))
	assert.Equal(t, "", tbl.Cell(0, 1), "ragged row")
	assert.Equal(t, "", tbl.Cell(1, 0), "row out of range")
	assert.Equal(t, "", tbl.Cell(0, -1), "negative column")
}

func TestTable_SetCell(t *testing.T) {
	t.Parallel()

	tbl := &proddesc.Table{
		Columns: []string{"A", "B", "C"},
		Rows:    [][]string{{"a1"}},
	}

	tbl.SetCell(0, 2, "c1")

	assert.Equal(t, []string{"a1", "", "c1"}, tbl.Rows[0])
}

func TestTable_Normalize(t *testing.T) {
	t.Parallel()

	tbl := &proddesc.Table{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"a1"}, {"a2", "b2"}},
	}

	tbl.Normalize()

	assert.Equal(t, [][]string{{"a1", ""}, {"a2", "b2"}}, tbl.Rows)
}
