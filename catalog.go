package proddesc

import "strings"

// Default column names and sentinel values of the nomenclature export the
// tool was built for.
const (
	DefaultNameColumn        = "Полное наименование"
	DefaultDescriptionColumn = "Расшифровка"
	DefaultCommentColumn     = "Комментарий"
	DefaultCategoryColumn    = "Вид производства"
	DefaultCategoryValue     = "Производство"
	DefaultCategoryStamp     = "ПРОИЗВОДСТВО"
)

// Row is one catalog entry.
type Row struct {
	Name        string
	Description string

	// Comment is an optional free-text hint passed to the model.
	Comment string

	// Category is compared against Category.Value to bypass enrichment.
	Category string
}

// Columns maps Row fields to table columns.
// Comment and Category are optional; empty names disable them.
type Columns struct {
	Name        string
	Description string
	Comment     string
	Category    string
}

// DefaultColumns returns the column names used when none are configured.
func DefaultColumns() Columns {
	return Columns{
		Name:        DefaultNameColumn,
		Description: DefaultDescriptionColumn,
		Comment:     DefaultCommentColumn,
		Category:    DefaultCategoryColumn,
	}
}

// Validate returns an error if the table cannot be processed with these columns.
func (c Columns) Validate(t *Table) error {
	if c.Name == "" {
		return Errorf(EINVALID, "name column required")
	}
	if c.Description == "" {
		return Errorf(EINVALID, "description column required")
	}
	if t.ColumnIndex(c.Name) < 0 {
		return Errorf(EINVALID, "column %q not found in table", c.Name)
	}
	return nil
}

// Row reads row i of t. Values are trimmed; missing columns read as "".
func (c Columns) Row(t *Table, i int) Row {
	get := func(name string) string {
		if name == "" {
			return ""
		}
		return strings.TrimSpace(t.Cell(i, t.ColumnIndex(name)))
	}
	return Row{
		Name:        get(c.Name),
		Description: get(c.Description),
		Comment:     get(c.Comment),
		Category:    get(c.Category),
	}
}

// Category routes rows whose category column equals Value to a fixed
// description instead of generating one.
type Category struct {
	Value string
	Stamp string
}

// DefaultCategory returns the production-type sentinel.
func DefaultCategory() Category {
	return Category{Value: DefaultCategoryValue, Stamp: DefaultCategoryStamp}
}

// Matches reports whether the row carries the sentinel category.
func (c Category) Matches(r Row) bool {
	return c.Value != "" && r.Category == c.Value
}
