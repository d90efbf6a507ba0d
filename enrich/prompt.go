package enrich

import (
	"fmt"
	"strings"
)

// DefaultLanguage is the language descriptions are written in.
const DefaultLanguage = "Russian"

// BuildSystemPrompt returns the expert framing used for the primary attempt.
func BuildSystemPrompt(language string) string {
	return fmt.Sprintf(`You are an expert in technical goods, construction materials, industrial equipment and services.
You have deep knowledge of:
- electrical engineering and electronics
- construction materials and tools
- industrial equipment and spare parts
- office supplies and stationery
- consumables
- production and technical services
- construction and installation work

Your task is to write short, informative and clear descriptions of goods and services.
Always give a concrete answer, use professional terminology but explain it in plain language.
Never say that you cannot find information: always use your own knowledge to write the description.
Write in %s.`, language)
}

// BuildPrimaryPrompt builds the expert prompt. With evidence it asks the model
// to summarize the snippets; without it the model infers from the name alone.
func BuildPrimaryPrompt(subject string, evidence []string, hint string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Subject: %s\n", subject)

	if len(evidence) > 0 {
		sb.WriteString("\nReference information from the internet (use it as a source of facts):\n")
		sb.WriteString(strings.Join(evidence, "\n\n"))
		sb.WriteString("\n")
	}
	writeHint(&sb, hint)

	fmt.Fprintf(&sb, "\nTask: write a description of %q in 2-4 sentences.\n", subject)
	sb.WriteString("It may be a product or a service.\n")
	if len(evidence) == 0 {
		sb.WriteString("- Analyze the name and rely on your domain knowledge\n")
	}
	sb.WriteString("- Describe WHAT it is (a product or a service)\n")
	sb.WriteString("- WHERE it is applied or used\n")
	sb.WriteString("- WHY it is needed\n")
	if len(evidence) > 0 {
		fmt.Fprintf(&sb, "- Use facts from the reference information, but describe %q itself, not the websites or articles\n", subject)
	} else {
		sb.WriteString("- Do not say that information is missing or ask for more details\n")
	}

	fmt.Fprintf(&sb, "\nDescription of %q:", subject)
	return sb.String()
}

// BuildFallbackPrompt builds the short prompt used after a rejected answer.
func BuildFallbackPrompt(subject string, hint string, language string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Subject: %s\n", subject)
	fmt.Fprintf(&sb, "\nBriefly describe in 2-3 sentences, in %s: what it is (a product or a service), where it is applied, what it is used for.\n", language)
	writeHint(&sb, hint)
	sb.WriteString("\nDescription:")
	return sb.String()
}

func writeHint(sb *strings.Builder, hint string) {
	if hint = strings.TrimSpace(hint); hint != "" {
		fmt.Fprintf(sb, "\nAdditional information about the subject:\n%s\n", hint)
	}
}
