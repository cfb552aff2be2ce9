package vocab

import (
	"ident-translator/internal/match"
)

// FindEntry locates the entry matching text, trying each strategy in
// escalation order and stopping at the first hit. entryType filters by
// type when non-empty. ignoreCase=false limits the cascade to exact
// matching. Returns -1 when nothing matches.
//
// Lookup is deterministic and never mutates the vocabulary. Multiple
// plausible matches collapse to the first found in strategy order; this
// is the designed tie-break, not an error.
func FindEntry(v *Vocabulary, text, entryType string, ignoreCase bool) int {
	for _, strategy := range match.Strategies {
		if !ignoreCase && strategy.Name != match.StrategyExact {
			break
		}
		searchKey, ok := strategy.Key(text)
		if !ok {
			continue
		}
		for i := range v.Entries {
			if entryType != "" && v.Entries[i].Type != entryType {
				continue
			}
			entryKey, ok := strategy.Key(v.Entries[i].Original)
			if ok && entryKey == searchKey {
				return i
			}
		}
	}
	return -1
}

// MarkExisting is the batch lookup used during extraction. Candidates
// are pre-grouped by normalized-alphabetic key; a whole group is marked
// existing in one step when any member's key matches a vocabulary
// entry's key. Unmatched groups fall through to stem-key grouping, then
// to per-token exact and case-insensitive lookup.
func MarkExisting(v *Vocabulary, tokens []string) map[string]bool {
	existing := make(map[string]bool, len(tokens))

	normKeys := make(map[string]struct{}, len(v.Entries))
	stemKeys := make(map[string]struct{}, len(v.Entries))
	for i := range v.Entries {
		if n := match.NormalizeAlpha(v.Entries[i].Original); len(n) >= 3 {
			normKeys[n] = struct{}{}
		}
		if st := match.Stem(v.Entries[i].Original); len(st) >= 3 {
			stemKeys[st] = struct{}{}
		}
	}

	// Group candidates by normalized key.
	normGroups := make(map[string][]string)
	var ungrouped []string
	for _, tok := range tokens {
		n := match.NormalizeAlpha(tok)
		if len(n) >= 3 {
			normGroups[n] = append(normGroups[n], tok)
		} else {
			ungrouped = append(ungrouped, tok)
		}
	}

	var stemPass []string
	for key, group := range normGroups {
		if _, hit := normKeys[key]; hit {
			for _, tok := range group {
				existing[tok] = true
			}
			continue
		}
		stemPass = append(stemPass, group...)
	}

	var exactPass []string
	for _, tok := range stemPass {
		st := match.Stem(tok)
		if len(st) >= 3 {
			if _, hit := stemKeys[st]; hit {
				existing[tok] = true
				continue
			}
		}
		exactPass = append(exactPass, tok)
	}
	exactPass = append(exactPass, ungrouped...)

	for _, tok := range exactPass {
		if findShallow(v, tok) >= 0 {
			existing[tok] = true
		}
	}

	return existing
}

// findShallow applies only the exact and case-insensitive strategies.
func findShallow(v *Vocabulary, text string) int {
	for _, strategy := range match.Strategies[:2] {
		searchKey, _ := strategy.Key(text)
		for i := range v.Entries {
			entryKey, _ := strategy.Key(v.Entries[i].Original)
			if entryKey == searchKey {
				return i
			}
		}
	}
	return -1
}
