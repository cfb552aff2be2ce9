// Package resolve answers display-time lookups: given any on-screen
// token, find a translated rendering from the vocabulary, trying the
// whole token first and falling back to compound decomposition.
package resolve

import (
	"strings"
	"unicode/utf8"

	"ident-translator/internal/decompose"
	"ident-translator/internal/vocab"
)

// A resolved rendering must not balloon past this ratio of the source
// token's rune length; larger results indicate a corrupt or misaligned
// translation and are rejected.
const maxExpansionRatio = 4

// Resolve returns the translated text for a token, or ok=false when no
// translation is available. Pure lookup: the vocabulary is not mutated.
func Resolve(v *vocab.Vocabulary, token string) (string, bool) {
	if token == "" || v == nil {
		return "", false
	}

	if idx := vocab.FindEntry(v, token, "", true); idx >= 0 {
		if t := v.Entries[idx].Translated; t != "" && lengthConsistent(token, t) {
			return t, true
		}
	}

	return resolveCompound(v, token)
}

// resolveCompound decomposes the token and joins per-part translations.
// Parts without a translation keep their original text; at least one
// part must resolve for the lookup to succeed.
func resolveCompound(v *vocab.Vocabulary, token string) (string, bool) {
	parts := decompose.SplitAll(token)
	if len(parts) < 2 {
		return "", false
	}

	var b strings.Builder
	resolved := 0
	for _, part := range parts {
		idx := vocab.FindEntry(v, part, "", true)
		if idx >= 0 && v.Entries[idx].Translated != "" {
			b.WriteString(v.Entries[idx].Translated)
			resolved++
			continue
		}
		b.WriteString(part)
	}

	if resolved == 0 {
		return "", false
	}
	joined := b.String()
	if !lengthConsistent(token, joined) {
		return "", false
	}
	return joined, true
}

func lengthConsistent(token, translated string) bool {
	tn := utf8.RuneCountInString(translated)
	if tn == 0 {
		return false
	}
	return tn <= maxExpansionRatio*utf8.RuneCountInString(token)+maxExpansionRatio
}
