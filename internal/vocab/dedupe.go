package vocab

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Dedupe removes entries whose original duplicates an earlier entry
// under case-insensitive whole-word comparison. The first occurrence
// wins; relative order of kept entries is preserved. Returns the
// removed duplicates.
func Dedupe(v *Vocabulary) []Entry {
	seen := make(map[string]struct{}, len(v.Entries))
	kept := v.Entries[:0:0]
	var removed []Entry

	for _, e := range v.Entries {
		key := strings.ToLower(e.Original)
		if _, dup := seen[key]; dup {
			removed = append(removed, e)
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, e)
	}

	v.Entries = kept
	if len(removed) > 0 {
		log.Info().Int("removed", len(removed)).Int("kept", len(kept)).Msg("Deduplicated vocabulary")
	}
	return removed
}
