// Package tokenize scans raw source text for identifier-shaped runs and
// prunes noise: URLs, hex colors, pure numbers, blacklisted words, and
// shapes that fail the meaningfulness heuristic.
package tokenize

import (
	"regexp"
	"strings"

	"ident-translator/internal/blacklist"
	"ident-translator/internal/textutil"
)

var (
	identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

	// Spans whose contained identifiers must not be extracted.
	urlPattern    = regexp.MustCompile(`(?:https?://|www\.)[^\s"'<>)\]}]+`)
	domainPattern = regexp.MustCompile(`\b[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.(?:com|net|org|io|dev|app|edu|gov|cn|me|co)\b(?:/[^\s"'<>]*)?`)

	hexColorPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	repeatHexPair   = regexp.MustCompile(`^(?:[0-9a-fA-F]{2})+$`)

	dunderPattern = regexp.MustCompile(`^__([A-Za-z0-9]+)__$`)
	digitsOnly    = regexp.MustCompile(`^[0-9]+$`)
)

// Dunder forms retained as original tokens unconditionally.
var recognizedDunders = map[string]struct{}{
	"__init__": {},
	"__str__":  {},
	"__repr__": {},
}

// Scan extracts raw identifier tokens from source text into an
// insertion-ordered token map, applying the scanner-level exclusions.
// Recognized dunder forms are kept whole; their cores are emitted as
// split tokens when meaningful.
func Scan(text string, bl *blacklist.Data) *TokenMap {
	tm := NewTokenMap()
	excluded := excludedSpans(text)

	for _, loc := range identPattern.FindAllStringIndex(text, -1) {
		if overlapsAny(loc[0], loc[1], excluded) {
			continue
		}
		token := text[loc[0]:loc[1]]

		if _, ok := recognizedDunders[token]; ok {
			tm.InsertIfAbsent(token, KindOriginal)
			if core := DunderCore(token); len(core) > 1 && IsMeaningful(core) {
				tm.InsertIfAbsent(core, KindSplit)
			}
			continue
		}

		if !acceptable(token, bl) {
			continue
		}
		tm.InsertIfAbsent(token, KindOriginal)
	}

	return tm
}

// DunderCore returns the inner slice of a __name__ form, or "" if the
// token is not dunder-shaped.
func DunderCore(token string) string {
	m := dunderPattern.FindStringSubmatch(token)
	if m == nil {
		return ""
	}
	return m[1]
}

// IsRecognizedDunder reports whether the token is one of the dunder
// forms retained unconditionally.
func IsRecognizedDunder(token string) bool {
	_, ok := recognizedDunders[token]
	return ok
}

// IsHexColor reports whether the string looks like a hex color value:
// 3/6/8 hex digits, or a longer run of repeating hex pairs. A digit must
// be present for the fixed-length form, otherwise pure a-f words such as
// "facade" would be swallowed.
func IsHexColor(s string) bool {
	if hexColorPattern.MatchString(s) && textutil.ContainsDigit(s) {
		return true
	}
	// Repeating pair patterns such as f0f0f0f0f0 read as color fills.
	if len(s) >= 6 && len(s)%2 == 0 && repeatHexPair.MatchString(s) {
		first := strings.ToLower(s[:2])
		for i := 2; i < len(s); i += 2 {
			if strings.ToLower(s[i:i+2]) != first {
				return false
			}
		}
		return true
	}
	return false
}

func acceptable(token string, bl *blacklist.Data) bool {
	if len(token) <= 1 {
		return false
	}
	if digitsOnly.MatchString(token) {
		return false
	}
	if IsHexColor(token) {
		return false
	}
	if bl.IsIgnored(token) || bl.IsTechnicalTerm(token) {
		return false
	}
	return IsMeaningful(token)
}

// excludedSpans locates URL and dotted-domain regions in the text.
func excludedSpans(text string) [][2]int {
	var spans [][2]int
	for _, p := range []*regexp.Regexp{urlPattern, domainPattern} {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}
	return spans
}

func overlapsAny(start, end int, spans [][2]int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}
