// Package store persists vocabularies as JSON files keyed by storage
// directory and target language. Load always yields a usable
// vocabulary: missing or corrupt files fall back to a fresh default.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ident-translator/internal/vocab"

	"github.com/rs/zerolog/log"
)

// FilePath returns the vocabulary file path for a language under dir.
func FilePath(dir, lang string) string {
	return filepath.Join(dir, fmt.Sprintf("loc_core_vocabulary_%s.json", lang))
}

// Load reads the vocabulary for the language. A missing or unparsable
// file is recovered locally: a freshly created default is returned and
// the failure logged, never surfaced as a hard error.
func Load(dir, lang string) *vocab.Vocabulary {
	path := FilePath(dir, lang)

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Vocabulary file unreadable, using default")
		}
		return vocab.CreateDefault(lang)
	}

	var v vocab.Vocabulary
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Vocabulary file malformed, using default")
		return vocab.CreateDefault(lang)
	}

	if v.TargetLanguage == "" {
		v.TargetLanguage = lang
	}
	vocab.EnsureSeeded(&v)

	log.Debug().Str("path", path).Int("entries", len(v.Entries)).Msg("Loaded vocabulary")
	return &v
}

// Save writes the vocabulary to its file, via a temp file and rename so
// a crash cannot leave a truncated vocabulary behind.
func Save(dir, lang string, v *vocab.Vocabulary) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create vocabulary directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}

	path := FilePath(dir, lang)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write vocabulary temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename vocabulary file: %w", err)
	}

	log.Info().Str("path", path).Int("entries", len(v.Entries)).Msg("Saved vocabulary")
	return nil
}
