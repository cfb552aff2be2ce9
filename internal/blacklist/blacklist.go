// Package blacklist holds the lowercase word sets used to prune noise
// from extracted identifiers: technical terms, an ignore list, a
// short-word allowlist, language keywords, and user-defined entries.
package blacklist

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// fileShape is the on-disk JSON representation of the blacklist file.
type fileShape struct {
	TechnicalTerms       []string `json:"technicalTerms"`
	IgnoreList           []string `json:"ignoreList"`
	MeaningfulShortWords []string `json:"meaningfulShortWords"`
	PythonKeywords       []string `json:"pythonKeywords"`
	CustomBlacklist      []string `json:"customBlacklist"`
}

// Data holds the blacklist sets, each keyed by lowercase word.
type Data struct {
	TechnicalTerms       map[string]struct{}
	IgnoreList           map[string]struct{}
	MeaningfulShortWords map[string]struct{}
	PythonKeywords       map[string]struct{}
	CustomBlacklist      map[string]struct{}
}

// IsBlacklisted reports whether the word (case-insensitive) appears in
// any of the pruning sets. The short-word allowlist is not a pruning set.
func (d *Data) IsBlacklisted(word string) bool {
	w := strings.ToLower(word)
	if _, ok := d.TechnicalTerms[w]; ok {
		return true
	}
	if _, ok := d.IgnoreList[w]; ok {
		return true
	}
	if _, ok := d.CustomBlacklist[w]; ok {
		return true
	}
	return false
}

// IsIgnored reports whether the word is in the ignore list.
func (d *Data) IsIgnored(word string) bool {
	_, ok := d.IgnoreList[strings.ToLower(word)]
	return ok
}

// IsTechnicalTerm reports whether the word is a known technical term.
func (d *Data) IsTechnicalTerm(word string) bool {
	_, ok := d.TechnicalTerms[strings.ToLower(word)]
	return ok
}

// IsMeaningfulShort reports whether the word is on the short-word allowlist.
func (d *Data) IsMeaningfulShort(word string) bool {
	_, ok := d.MeaningfulShortWords[strings.ToLower(word)]
	return ok
}

// IsPythonKeyword reports whether the word is a recognized Python keyword.
func (d *Data) IsPythonKeyword(word string) bool {
	_, ok := d.PythonKeywords[strings.ToLower(word)]
	return ok
}

// Load reads a blacklist JSON file. A missing or corrupt file is not an
// error: the built-in defaults are substituted and a warning is logged.
func Load(path string) *Data {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Blacklist file unreadable, using defaults")
		return Default()
	}

	var shape fileShape
	if err := json.Unmarshal(raw, &shape); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Blacklist file malformed, using defaults")
		return Default()
	}

	d := fromShape(shape)
	log.Debug().
		Int("technical", len(d.TechnicalTerms)).
		Int("ignored", len(d.IgnoreList)).
		Int("custom", len(d.CustomBlacklist)).
		Msg("Loaded blacklist")
	return d
}

func fromShape(shape fileShape) *Data {
	return &Data{
		TechnicalTerms:       toSet(shape.TechnicalTerms),
		IgnoreList:           toSet(shape.IgnoreList),
		MeaningfulShortWords: toSet(shape.MeaningfulShortWords),
		PythonKeywords:       toSet(shape.PythonKeywords),
		CustomBlacklist:      toSet(shape.CustomBlacklist),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}
