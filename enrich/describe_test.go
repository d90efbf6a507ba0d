package enrich_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/enrich"
	"github.com/fwojciec/proddesc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDescription = "A hex bolt is a threaded fastener used in construction and machinery assembly to join components."

// scriptedModel returns answers in order and records every request.
func scriptedModel(answers ...string) (*mock.Model, *[]*proddesc.GenerateRequest) {
	var reqs []*proddesc.GenerateRequest
	return &mock.Model{
		GenerateFn: func(_ context.Context, req *proddesc.GenerateRequest) (string, error) {
			reqs = append(reqs, req)
			if len(reqs) > len(answers) {
				return "", fmt.Errorf("unexpected call %d", len(reqs))
			}
			return answers[len(reqs)-1], nil
		},
	}, &reqs
}

func TestDescriber_Describe(t *testing.T) {
	t.Parallel()

	t.Run("returns accepted primary answer", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel("  " + validDescription + "\n")
		d := &enrich.Describer{Model: model}

		got := d.Describe(context.Background(), "Hex bolt M8x40", []string{"supplier blurb"}, "")

		assert.Equal(t, validDescription, got)
		require.Len(t, *reqs, 1)
		req := (*reqs)[0]
		assert.Contains(t, req.Prompt, "supplier blurb")
		assert.Contains(t, req.Prompt, "not the websites")
		assert.Contains(t, req.System, "expert")
		assert.InDelta(t, 0.5, req.Temperature, 1e-9)
		assert.Equal(t, 250, req.MaxTokens)
		assert.InDelta(t, 0.9, req.TopP, 1e-9)
	})

	t.Run("retries with fallback after refusal", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel(
			"I cannot find information about this product.",
			validDescription,
		)
		d := &enrich.Describer{Model: model}

		got := d.Describe(context.Background(), "Hex bolt M8x40", nil, "")

		assert.Equal(t, validDescription, got)
		require.Len(t, *reqs, 2)
		fallback := (*reqs)[1]
		assert.Empty(t, fallback.System, "fallback drops expert framing")
		assert.InDelta(t, 0.7, fallback.Temperature, 1e-9)
		assert.Equal(t, 200, fallback.MaxTokens)
		assert.Less(t, len(fallback.Prompt), len((*reqs)[0].Prompt))
	})

	t.Run("retries with fallback after short answer", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel("Bolt.", validDescription)
		d := &enrich.Describer{Model: model}

		got := d.Describe(context.Background(), "Hex bolt M8x40", nil, "")

		assert.Equal(t, validDescription, got)
		assert.Len(t, *reqs, 2)
	})

	t.Run("returns fallback answer unconditionally", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel("Unfortunately there is no information.", "No information.")
		d := &enrich.Describer{Model: model}

		got := d.Describe(context.Background(), "Hex bolt M8x40", nil, "")

		assert.Equal(t, "No information.", got)
		assert.Len(t, *reqs, 2, "no third attempt")
	})

	t.Run("describes from the name alone without evidence", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel(validDescription)
		d := &enrich.Describer{Model: model}

		got := d.Describe(context.Background(), "Hex bolt M8x40", nil, "")

		assert.Equal(t, validDescription, got)
		prompt := (*reqs)[0].Prompt
		assert.Contains(t, prompt, "Hex bolt M8x40")
		assert.Contains(t, prompt, "Analyze the name")
		assert.Contains(t, prompt, "Do not say that information is missing")
		assert.NotContains(t, prompt, "Reference information")
	})

	t.Run("includes hint in both prompts", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel("к сожалению, не знаю", validDescription)
		d := &enrich.Describer{Model: model}

		d.Describe(context.Background(), "Hex bolt M8x40", nil, "zinc plated, DIN 933")

		require.Len(t, *reqs, 2)
		assert.Contains(t, (*reqs)[0].Prompt, "zinc plated, DIN 933")
		assert.Contains(t, (*reqs)[1].Prompt, "zinc plated, DIN 933")
	})

	t.Run("limits evidence snippets", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel(validDescription)
		d := &enrich.Describer{Model: model, MaxSnippets: 2}

		d.Describe(context.Background(), "bolt", []string{"snippet-one", "snippet-two", "snippet-three"}, "")

		prompt := (*reqs)[0].Prompt
		assert.Contains(t, prompt, "snippet-one")
		assert.Contains(t, prompt, "snippet-two")
		assert.NotContains(t, prompt, "snippet-three")
	})

	t.Run("uses configured language", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel("x", validDescription)
		d := &enrich.Describer{Model: model, Language: "English"}

		d.Describe(context.Background(), "bolt", nil, "")

		assert.Contains(t, (*reqs)[0].System, "Write in English.")
		assert.Contains(t, (*reqs)[1].Prompt, "in English")
	})

	t.Run("uses swappable quality policy", func(t *testing.T) {
		t.Parallel()

		model, reqs := scriptedModel("Bolt.")
		d := &enrich.Describer{
			Model:  model,
			Policy: &proddesc.QualityGate{MinLength: 1},
		}

		got := d.Describe(context.Background(), "bolt", nil, "")

		assert.Equal(t, "Bolt.", got)
		assert.Len(t, *reqs, 1)
	})

	t.Run("reports model failure in the description", func(t *testing.T) {
		t.Parallel()

		model := &mock.Model{
			GenerateFn: func(context.Context, *proddesc.GenerateRequest) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		d := &enrich.Describer{Model: model}

		got := d.Describe(context.Background(), "bolt", nil, "")

		assert.Equal(t, "summarization error: connection refused", got)
	})

	t.Run("reports fallback failure in the description", func(t *testing.T) {
		t.Parallel()

		calls := 0
		model := &mock.Model{
			GenerateFn: func(context.Context, *proddesc.GenerateRequest) (string, error) {
				calls++
				if calls == 1 {
					return "", nil
				}
				return "", errors.New("model not found")
			},
		}
		d := &enrich.Describer{Model: model}

		got := d.Describe(context.Background(), "bolt", nil, "")

		assert.Equal(t, "summarization error: model not found", got)
	})
}

func TestBuildPrimaryPrompt(t *testing.T) {
	t.Parallel()

	t.Run("joins evidence with blank lines", func(t *testing.T) {
		t.Parallel()

		prompt := enrich.BuildPrimaryPrompt("bolt", []string{"first", "second"}, "")

		assert.Contains(t, prompt, "first\n\nsecond")
	})

	t.Run("omits empty hint", func(t *testing.T) {
		t.Parallel()

		prompt := enrich.BuildPrimaryPrompt("bolt", nil, "   ")

		assert.NotContains(t, prompt, "Additional information")
	})
}
