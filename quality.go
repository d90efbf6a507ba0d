package proddesc

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinDescriptionLength is the shortest accepted description, in characters.
const DefaultMinDescriptionLength = 20

// DefaultRefusalPhrases mark answers where the model declined or asked for input.
var DefaultRefusalPhrases = []string{
	"я не смог",
	"я не могу",
	"не удалось найти",
	"нет информации",
	"недостаточно информации",
	"к сожалению",
	"не могу предоставить",
	"предоставьте название",
	"укажите название",
	"пожалуйста, предоставьте",
	"i cannot",
	"i can't",
	"cannot find",
	"no information",
	"insufficient information",
	"not enough information",
	"unfortunately",
	"please provide the name",
	"please provide",
}

// QualityPolicy decides whether generated text is acceptable.
type QualityPolicy interface {
	// Review returns nil if text is acceptable, or an EINVALID error
	// naming the reason it was rejected.
	Review(text string) error
}

// Ensure QualityGate implements QualityPolicy at compile time.
var _ QualityPolicy = (*QualityGate)(nil)

// QualityGate rejects text that is too short or contains a refusal phrase.
type QualityGate struct {
	MinLength      int
	RefusalPhrases []string
}

// DefaultQualityGate returns the gate used when none is configured.
func DefaultQualityGate() *QualityGate {
	return &QualityGate{
		MinLength:      DefaultMinDescriptionLength,
		RefusalPhrases: DefaultRefusalPhrases,
	}
}

// Review implements QualityPolicy. Phrases match case-insensitively.
func (g *QualityGate) Review(text string) error {
	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n < g.MinLength {
		return Errorf(EINVALID, "too short: %d < %d characters", n, g.MinLength)
	}
	lower := strings.ToLower(text)
	for _, phrase := range g.RefusalPhrases {
		if phrase == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return Errorf(EINVALID, "refusal phrase %q", phrase)
		}
	}
	return nil
}
