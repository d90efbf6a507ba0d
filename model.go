package proddesc

import "context"

// GenerateRequest is a single completion request to a language model.
type GenerateRequest struct {
	Prompt string

	// System holds optional system instructions.
	System string

	Temperature float64
	MaxTokens   int

	// TopP is ignored when zero.
	TopP float64
}

// Model is a generative language model.
type Model interface {
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
}

// Describer produces a natural-language description of a catalog subject.
type Describer interface {
	// Describe never fails: model errors are reported in the returned text
	// so that failed rows remain visible in the output table.
	Describe(ctx context.Context, subject string, evidence []string, hint string) string
}
