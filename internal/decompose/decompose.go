// Package decompose splits compound identifiers into semantic sub-words:
// snake_case, camelCase, acronym runs, digit boundaries, and a handful of
// language idioms (get/set prefixes, m_ members, _t typedef suffixes).
package decompose

import (
	"regexp"
	"strings"

	"ident-translator/internal/blacklist"
	"ident-translator/internal/tokenize"
)

// Rule is a named predicate+transform evaluated against a whole token.
// Rules are ordered; the first matching exclusive rule produces the
// parts, and additive rules may contribute extra candidates on top.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Additive bool
	Parts    func(token string, bl *blacklist.Data) []string
}

// Rules is the ordered decomposition rule list. Idiomatic compound
// patterns come before generic underscore and camelCase splitting.
var Rules = []Rule{
	{
		Name:    "dunder-core",
		Pattern: regexp.MustCompile(`^__[A-Za-z0-9]+__$`),
		Parts: func(token string, bl *blacklist.Data) []string {
			core := tokenize.DunderCore(token)
			if len(core) > 1 && tokenize.IsMeaningful(core) {
				return []string{core}
			}
			return nil
		},
	},
	{
		Name:    "typedef-suffix",
		Pattern: regexp.MustCompile(`^[a-z]+_t$`),
		Parts: func(token string, bl *blacklist.Data) []string {
			return []string{strings.TrimSuffix(token, "_t")}
		},
	},
	{
		Name:    "getter-setter",
		Pattern: regexp.MustCompile(`^([Gg]et|[Ss]et)[A-Z][A-Za-z0-9]*$`),
		Parts: func(token string, bl *blacklist.Data) []string {
			return append([]string{token[:3]}, CamelSplit(token[3:])...)
		},
	},
	{
		Name:    "member-prefix",
		Pattern: regexp.MustCompile(`^m_[A-Z][A-Za-z0-9]*$`),
		Parts: func(token string, bl *blacklist.Data) []string {
			return CamelSplit(token[2:])
		},
	},
	{
		Name:    "snake-split",
		Pattern: regexp.MustCompile(`_`),
		Parts:   underscoreSplit,
	},
	{
		Name:    "camel-split",
		Pattern: regexp.MustCompile(`.`),
		Parts: func(token string, bl *blacklist.Data) []string {
			return CamelSplit(token)
		},
	},
	{
		Name:     "single-hump",
		Pattern:  regexp.MustCompile(`^[a-z]+[A-Z][a-z]+$`),
		Additive: true,
		Parts: func(token string, bl *blacklist.Data) []string {
			i := strings.IndexFunc(token, func(r rune) bool { return r >= 'A' && r <= 'Z' })
			return []string{token[:i], token[i:]}
		},
	},
}

// Parts returns the split sub-token candidates for an original token.
// Candidates are flattened: a multi-hump part contributed by one rule is
// itself camel-split, and both forms are returned. The result never
// contains the token itself, empty strings, or parts failing the
// meaningfulness heuristic (year-like digit runs excepted).
func Parts(token string, bl *blacklist.Data) []string {
	var raw []string
	matched := false
	for _, rule := range Rules {
		if !rule.Pattern.MatchString(token) {
			continue
		}
		if rule.Additive {
			raw = append(raw, rule.Parts(token, bl)...)
			continue
		}
		if matched {
			continue
		}
		raw = append(raw, rule.Parts(token, bl)...)
		matched = true
	}

	// Flatten: re-split any part that still carries case or digit humps.
	var flat []string
	for _, p := range raw {
		flat = append(flat, p)
		if sub := CamelSplit(p); len(sub) > 1 {
			flat = append(flat, sub...)
		}
	}

	seen := make(map[string]struct{}, len(flat))
	var parts []string
	for _, p := range flat {
		if p == "" || p == token {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		if !tokenize.IsMeaningful(p) && !isYearLike(p) {
			continue
		}
		seen[p] = struct{}{}
		parts = append(parts, p)
	}
	return parts
}

// underscoreSplit collapses repeated underscores and splits on "_",
// keeping parts that are long enough (or allowlisted short words), not
// ignored, and meaningful.
func underscoreSplit(token string, bl *blacklist.Data) []string {
	collapsed := repeatedUnderscores.ReplaceAllString(token, "_")
	var parts []string
	for _, p := range strings.Split(collapsed, "_") {
		if p == "" {
			continue
		}
		if len(p) < 3 && !bl.IsMeaningfulShort(p) {
			continue
		}
		if bl.IsIgnored(p) {
			continue
		}
		if !tokenize.IsMeaningful(p) {
			continue
		}
		parts = append(parts, p)
	}
	return parts
}

var repeatedUnderscores = regexp.MustCompile(`_{2,}`)

func isYearLike(s string) bool {
	if len(s) < 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
