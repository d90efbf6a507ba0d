//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Integration_ReturnsAnswer(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := gemini.NewClient(ctx, apiKey)
	require.NoError(t, err)

	model := gemini.NewModel(client, "")

	answer, err := model.Generate(ctx, &proddesc.GenerateRequest{
		Prompt:    "Describe a hex bolt in one sentence.",
		MaxTokens: 100,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, answer)
}
