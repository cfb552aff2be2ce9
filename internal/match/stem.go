package match

import "strings"

// Suffixes stripped by the stemmer, tried in order; at most one is
// removed, and only when the remaining stem is still longer than the
// suffix by at least two characters.
var stemSuffixes = []string{
	"ing", "ed", "es", "s", "er", "ers", "or", "ors",
	"ion", "ions", "tion", "tions", "ment", "ments", "ness",
	"ity", "ty", "ies", "able", "ible", "al", "ial", "ical",
	"ful", "ous", "ious", "ive", "ative", "itive",
}

// Stem reduces a word to a heuristic root form: lowercase, strip one
// known suffix, then apply the ie->y and consonant-y->i adjustments.
// Deterministic and side-effect-free; false positives are an accepted
// trade for vocabulary compactness.
func Stem(word string) string {
	stem := strings.ToLower(word)

	for _, suffix := range stemSuffixes {
		if !strings.HasSuffix(stem, suffix) {
			continue
		}
		remaining := len(stem) - len(suffix)
		if remaining < len(suffix)+2 {
			continue
		}
		stem = stem[:remaining]
		break
	}

	if strings.HasSuffix(stem, "ie") {
		stem = stem[:len(stem)-2] + "y"
	}
	if len(stem) >= 2 && stem[len(stem)-1] == 'y' && isConsonant(stem[len(stem)-2]) {
		stem = stem[:len(stem)-1] + "i"
	}

	return stem
}

func isConsonant(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return c >= 'a' && c <= 'z'
}
