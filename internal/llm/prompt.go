package llm

import (
	"fmt"
	"sort"
	"strings"
)

// buildSystemPrompt returns the translation instructions for the model.
func buildSystemPrompt(targetLang string) string {
	return fmt.Sprintf(`You are a software localization assistant translating programming identifiers and sub-words into %s.

Rules:
1. Each input is a code identifier or a sub-word split from one (e.g. "get", "User", "Name").
2. Translate the MEANING of each word into %s, short and noun- or verb-like.
3. Do not explain, transliterate, or add punctuation.
4. Keep acronyms (HTTP, JSON, ID) unchanged.
5. Output ONLY the translations, separated by the ||| delimiter, in the same order as the inputs.`, targetLang, targetLang)
}

// buildBatchPrompt lists the tokens to translate, optionally preceded by
// already-confirmed vocabulary terms for consistency.
func buildBatchPrompt(tokens []string, refTerms map[string]string) string {
	var sb strings.Builder

	if len(refTerms) > 0 {
		sb.WriteString("=== Established terminology ===\n")
		originals := make([]string, 0, len(refTerms))
		for o := range refTerms {
			originals = append(originals, o)
		}
		sort.Strings(originals)
		for _, o := range originals {
			fmt.Fprintf(&sb, "%s = %s\n", o, refTerms[o])
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Translate each token below. Return ONLY the translations, separated by ||| in the same order.\n\n")
	for i, t := range tokens {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, t)
	}
	return sb.String()
}
