// Package extract runs the full token extraction pipeline: scan,
// decompose, filter, prioritize, and deduplicate against the current
// vocabulary. The output is the ordered set of tokens worth offering
// for translation that the vocabulary does not already cover.
package extract

import (
	"regexp"
	"strings"

	"ident-translator/internal/blacklist"
	"ident-translator/internal/decompose"
	"ident-translator/internal/lang"
	"ident-translator/internal/textutil"
	"ident-translator/internal/tokenize"
	"ident-translator/internal/vocab"

	"github.com/rs/zerolog/log"
)

// Options configures an extraction run.
type Options struct {
	// Blacklist sets; nil uses the built-in defaults.
	Blacklist *blacklist.Data
	// Keywords recognized unconditionally; nil uses the union of all
	// registered language keyword sets.
	Keywords map[string]struct{}
	// Vocabulary to deduplicate against; nil skips deduplication.
	Vocabulary *vocab.Vocabulary
}

// Result holds the tokens not yet present in the vocabulary.
type Result struct {
	NewIdentifiers []string `json:"newIdentifiers"`
}

var singleLetterDigits = regexp.MustCompile(`^[A-Za-z][0-9]+$`)

// Extract runs the pipeline over raw source text. Tokens are processed
// in the order first encountered; the result preserves that order.
func Extract(text string, opts Options) *Result {
	bl := opts.Blacklist
	if bl == nil {
		bl = blacklist.Default()
	}
	keywords := opts.Keywords
	if keywords == nil {
		keywords = lang.KeywordSet("")
	}

	tm := tokenize.Scan(text, bl)

	// Decompose originals; split parts enter with first-kind-wins.
	for _, token := range tm.Tokens() {
		if tm.Kind(token) != tokenize.KindOriginal {
			continue
		}
		for _, part := range decompose.Parts(token, bl) {
			tm.InsertIfAbsent(part, tokenize.KindSplit)
		}
	}

	prioritized := prioritize(tm, bl, keywords)

	if opts.Vocabulary == nil {
		return &Result{NewIdentifiers: prioritized}
	}

	existing := vocab.MarkExisting(opts.Vocabulary, prioritized)
	fresh := prioritized[:0:0]
	for _, token := range prioritized {
		if !existing[token] {
			fresh = append(fresh, token)
		}
	}

	log.Debug().
		Int("candidates", len(prioritized)).
		Int("new", len(fresh)).
		Msg("Extraction complete")

	return &Result{NewIdentifiers: fresh}
}

// prioritize chooses the final ordered token list from the token map.
// Stage 1 emits keywords and dunder forms unconditionally; stage 2
// emits qualifying split parts; stage 3 decides whether each remaining
// original is represented by its parts or by itself.
func prioritize(tm *tokenize.TokenMap, bl *blacklist.Data, keywords map[string]struct{}) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(token string) {
		if _, dup := seen[token]; dup {
			return
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	tokens := tm.Tokens()

	// Stage 1: language keywords and dunder tokens.
	for _, token := range tokens {
		if tm.Kind(token) == tokenize.KindOriginal && isKeyword(token, bl, keywords) {
			add(token)
			continue
		}
		if tokenize.IsRecognizedDunder(token) {
			add(token)
			if core := tokenize.DunderCore(token); core != "" && tm.Has(core) {
				add(core)
			}
		}
	}

	// Stage 2: qualifying split parts are first-class.
	for _, token := range tokens {
		if tm.Kind(token) == tokenize.KindSplit && passesFilter(token, bl) {
			add(token)
		}
	}

	// Stage 3: remaining originals, parts-over-whole.
	for _, token := range tokens {
		if tm.Kind(token) != tokenize.KindOriginal {
			continue
		}
		if _, done := seen[token]; done {
			continue
		}

		if textutil.ContainsDigit(token) {
			qualified := false
			for _, part := range decompose.SplitAll(token) {
				if textutil.ContainsDigit(part) {
					continue
				}
				if passesFilter(part, bl) {
					add(part)
					qualified = true
				}
			}
			if !qualified && tokenize.IsMeaningful(token) && len(token) >= 3 {
				add(token)
			}
			continue
		}

		partsQualify := false
		for _, part := range decompose.SplitAll(token) {
			if part != token && passesFilter(part, bl) && tokenize.IsMeaningful(part) {
				partsQualify = true
				break
			}
		}
		if !partsQualify && passesFilter(token, bl) {
			add(token)
		}
	}

	return out
}

// passesFilter is the stage-2 token filter: not blacklisted, not a
// single-letter-plus-digits shape, and long enough or allowlisted.
func passesFilter(token string, bl *blacklist.Data) bool {
	if bl.IsBlacklisted(token) {
		return false
	}
	if singleLetterDigits.MatchString(token) {
		return false
	}
	if len(token) >= 3 {
		return true
	}
	return bl.IsMeaningfulShort(token)
}

func isKeyword(token string, bl *blacklist.Data, keywords map[string]struct{}) bool {
	lower := strings.ToLower(token)
	if _, ok := keywords[lower]; ok {
		return true
	}
	return bl.IsPythonKeyword(lower)
}
