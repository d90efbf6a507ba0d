package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/proddesc"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Model implements proddesc.Model at compile time.
var _ proddesc.Model = (*Model)(nil)

// Model implements proddesc.Model using Google Gemini.
type Model struct {
	client *genai.Client
	model  string
}

// NewModel creates a new Model. An empty name selects DefaultModel.
func NewModel(client *genai.Client, model string) *Model {
	if model == "" {
		model = DefaultModel
	}
	return &Model{client: client, model: model}
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, proddesc.Errorf(proddesc.EINVALID, "gemini API key required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Generate sends the prompt to Gemini and returns the answer text.
func (m *Model) Generate(ctx context.Context, req *proddesc.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", proddesc.Errorf(proddesc.EINVALID, "prompt required")
	}

	result, err := m.client.Models.GenerateContent(ctx, m.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", proddesc.Errorf(proddesc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig maps generation parameters onto a GenerateContentConfig.
// Zero values are left unset so the model defaults apply.
func BuildConfig(req *proddesc.GenerateRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}
	if req.TopP > 0 {
		topP := float32(req.TopP)
		config.TopP = &topP
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	return config
}
