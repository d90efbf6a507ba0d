package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/proddesc"
)

// Ensure LoggingModel implements proddesc.Model.
var _ proddesc.Model = (*LoggingModel)(nil)

// LoggingModel wraps a Model with debug logging of prompt and answer sizes.
type LoggingModel struct {
	next   proddesc.Model
	logger *slog.Logger
}

// NewLoggingModel creates a new LoggingModel.
func NewLoggingModel(next proddesc.Model, logger *slog.Logger) *LoggingModel {
	return &LoggingModel{next: next, logger: logger}
}

// Generate delegates to the wrapped model and logs the call.
func (m *LoggingModel) Generate(ctx context.Context, req *proddesc.GenerateRequest) (text string, err error) {
	defer func(begin time.Time) {
		m.logger.DebugContext(ctx, "generate",
			"prompt_chars", utf8.RuneCountInString(req.Prompt),
			"system", req.System != "",
			"temperature", req.Temperature,
			"max_tokens", req.MaxTokens,
			"answer_chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Generate(ctx, req)
}
