package vocab

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Merge folds source entries into target. Matched entries are updated
// according to asSeed: seed merges only fill currently-empty
// translations, non-seed merges overwrite whenever the source carries a
// non-empty translation. Unmatched entries are appended as copies, so a
// merge never loses target entries under the expected language.
//
// A language mismatch between target and expectedLang resets the target
// to the seed set before merging. Prior translations recorded under the
// mismatched language tag are discarded; the count is logged so the loss
// is visible.
func Merge(target, source *Vocabulary, expectedLang string, asSeed bool) {
	if target.TargetLanguage != expectedLang {
		discarded := len(target.Entries)
		log.Warn().
			Str("have", target.TargetLanguage).
			Str("want", expectedLang).
			Int("discarded", discarded).
			Msg("Vocabulary language mismatch, resetting to seed")
		target.TargetLanguage = expectedLang
		target.Entries = nil
		EnsureSeeded(target)
	}

	// Snapshot the source so merging a vocabulary with itself is safe.
	sourceEntries := make([]Entry, len(source.Entries))
	copy(sourceEntries, source.Entries)

	filled, overwritten, appended := 0, 0, 0
	for _, e := range sourceEntries {
		idx := FindEntry(target, e.Original, e.Type, true)
		if idx < 0 {
			target.Entries = append(target.Entries, e)
			appended++
			continue
		}
		if asSeed {
			if target.Entries[idx].Translated == "" && e.Translated != "" {
				target.Entries[idx].Translated = e.Translated
				filled++
			}
			continue
		}
		if e.Translated != "" {
			if target.Entries[idx].Translated != e.Translated {
				overwritten++
			}
			target.Entries[idx].Translated = e.Translated
			target.Entries[idx].Source = e.Source
		}
	}

	log.Info().
		Str("lang", expectedLang).
		Bool("as_seed", asSeed).
		Int("filled", filled).
		Int("overwritten", overwritten).
		Int("appended", appended).
		Msg("Merged vocabulary")
}

// MergeTranslatedItems folds a map of original->translated pairs into
// the vocabulary, tagging new entries with the given type and source.
// Existing entries (located via the match cascade) are updated in place;
// nothing is ever deleted by this path. Pairs with empty translations
// are skipped. Keys are processed in sorted order for deterministic
// append order.
func MergeTranslatedItems(v *Vocabulary, items map[string]string, entryType, source string) int {
	originals := make([]string, 0, len(items))
	for original := range items {
		originals = append(originals, original)
	}
	sort.Strings(originals)

	merged := 0
	for _, original := range originals {
		translated := items[original]
		if translated == "" {
			continue
		}
		if idx := FindEntry(v, original, entryType, true); idx >= 0 {
			v.Entries[idx].Translated = translated
			v.Entries[idx].Source = source
		} else {
			v.Entries = append(v.Entries, Entry{
				Original:   original,
				Translated: translated,
				Type:       entryType,
				Source:     source,
			})
		}
		merged++
	}

	return merged
}
