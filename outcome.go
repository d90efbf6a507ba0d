package proddesc

// SkipReason explains why a row was not enriched.
type SkipReason string

// Skip reasons, in the order they are checked.
const (
	SkipEmptyName SkipReason = "empty-name"
	SkipCategory  SkipReason = "category"
	SkipExisting  SkipReason = "existing"
)

// Outcome is the result of processing one catalog row.
// It is exactly one of Skipped, Described or Failed.
type Outcome interface {
	outcome()
}

// Skipped means no network call was made for the row.
type Skipped struct {
	Reason SkipReason
}

// Described means a description was generated and written.
type Described struct {
	Description string

	// Evidence is the number of web snippets the description was based on.
	Evidence int
}

// Failed means the row hit an unexpected error and was marked with it.
type Failed struct {
	Err error
}

func (Skipped) outcome()   {}
func (Described) outcome() {}
func (Failed) outcome()    {}
