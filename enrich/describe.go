package enrich

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/proddesc"
)

// DefaultMaxSnippets is the number of evidence snippets placed in the prompt.
const DefaultMaxSnippets = 5

// ErrorDescriptionPrefix starts the description written when the model fails.
const ErrorDescriptionPrefix = "summarization error: "

var _ proddesc.Describer = (*Describer)(nil)

// Describer generates descriptions with a primary attempt and, when the
// quality policy rejects it, a single simplified fallback attempt.
type Describer struct {
	Model proddesc.Model

	// Policy gates the primary attempt. Nil means proddesc.DefaultQualityGate().
	Policy proddesc.QualityPolicy

	// Language of the generated text. Empty means DefaultLanguage.
	Language string

	// MaxSnippets caps evidence passed to the model. Zero means DefaultMaxSnippets.
	MaxSnippets int

	Logger *slog.Logger
}

// attempt is one step of the generation sequence. Gated attempts may be
// rejected by the quality policy; the last attempt never is.
type attempt struct {
	name  string
	req   *proddesc.GenerateRequest
	gated bool
}

// attempts returns the generation sequence for one subject.
func (d *Describer) attempts(subject string, evidence []string, hint string) []attempt {
	language := d.Language
	if language == "" {
		language = DefaultLanguage
	}
	n := d.MaxSnippets
	if n <= 0 {
		n = DefaultMaxSnippets
	}
	if len(evidence) > n {
		evidence = evidence[:n]
	}

	return []attempt{
		{
			name: "primary",
			req: &proddesc.GenerateRequest{
				Prompt:      BuildPrimaryPrompt(subject, evidence, hint),
				System:      BuildSystemPrompt(language),
				Temperature: 0.5,
				MaxTokens:   250,
				TopP:        0.9,
			},
			gated: true,
		},
		{
			name: "fallback",
			req: &proddesc.GenerateRequest{
				Prompt:      BuildFallbackPrompt(subject, hint, language),
				Temperature: 0.7,
				MaxTokens:   200,
			},
		},
	}
}

// Describe runs the attempt sequence and returns the first accepted answer.
// A model failure yields ErrorDescriptionPrefix followed by the reason.
func (d *Describer) Describe(ctx context.Context, subject string, evidence []string, hint string) string {
	logger := loggerOrDiscard(d.Logger).With("subject", subject)
	policy := d.Policy
	if policy == nil {
		policy = proddesc.DefaultQualityGate()
	}

	var text string
	for _, a := range d.attempts(subject, evidence, hint) {
		out, err := d.Model.Generate(ctx, a.req)
		if err != nil {
			logger.Error("model call failed", "attempt", a.name, "err", err)
			return ErrorDescriptionPrefix + err.Error()
		}
		text = strings.TrimSpace(out)
		if !a.gated {
			break
		}
		err = policy.Review(text)
		if err == nil {
			break
		}
		logger.Warn("answer rejected, retrying with simplified prompt",
			"attempt", a.name,
			"reason", proddesc.ErrorMessage(err),
		)
	}
	return text
}
