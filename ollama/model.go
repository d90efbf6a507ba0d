// Package ollama implements proddesc.Model on a local Ollama server through
// langchaingo.
package ollama

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/proddesc"
	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"
)

// Defaults for a local Ollama install.
const (
	DefaultHost  = "http://localhost:11434"
	DefaultModel = "llama3.2"
)

// Ensure Model implements proddesc.Model at compile time.
var _ proddesc.Model = (*Model)(nil)

// Model generates text with any langchaingo chat model.
type Model struct {
	llm llms.Model
}

// New connects to the Ollama server at host and selects model.
// Empty values select DefaultHost and DefaultModel.
func New(host, model string) (*Model, error) {
	if host == "" {
		host = DefaultHost
	}
	if model == "" {
		model = DefaultModel
	}
	llm, err := lcollama.New(
		lcollama.WithModel(model),
		lcollama.WithServerURL(host),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize ollama: %w", err)
	}
	return NewModel(llm), nil
}

// NewModel wraps an existing langchaingo model.
func NewModel(llm llms.Model) *Model {
	return &Model{llm: llm}
}

// Generate sends the system and user messages and returns the first choice.
func (m *Model) Generate(ctx context.Context, req *proddesc.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", proddesc.Errorf(proddesc.EINVALID, "prompt required")
	}

	resp, err := m.llm.GenerateContent(ctx, Messages(req), CallOptions(req)...)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", proddesc.Errorf(proddesc.EINTERNAL, "ollama returned no choices")
	}
	return resp.Choices[0].Content, nil
}

// Messages builds the chat transcript for req. The system message is
// omitted when req.System is empty.
func Messages(req *proddesc.GenerateRequest) []llms.MessageContent {
	var msgs []llms.MessageContent
	if req.System != "" {
		msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	return append(msgs, llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt))
}

// CallOptions maps the sampling parameters of req. Zero values are skipped
// so the server defaults apply.
func CallOptions(req *proddesc.GenerateRequest) []llms.CallOption {
	var opts []llms.CallOption
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.TopP > 0 {
		opts = append(opts, llms.WithTopP(req.TopP))
	}
	return opts
}
