package tokenize

import "regexp"

// Shape patterns that mark a candidate as noise rather than a word worth
// translating. Applied to every split part and to whole original tokens,
// independent of (and on top of) the blacklist sets.
var noiseShapes = []*regexp.Regexp{
	regexp.MustCompile(`^[aeiouAEIOU]+$`),                   // all vowels
	regexp.MustCompile(`^[b-df-hj-np-tv-zB-DF-HJ-NP-TV-Z]+$`), // all consonants
	regexp.MustCompile(`^[A-Za-z][0-9]+$`),                  // single letter + digits
	regexp.MustCompile(`^(?i:tmp|temp|var|test)[0-9]*$`),    // throwaway prefix
	regexp.MustCompile(`^[A-Za-z]{1,2}[0-9]{1,3}$`),         // 1-2 letters + 1-3 digits
	regexp.MustCompile(`^[-_0-9]+$`),                        // no letters at all
}

// IsMeaningful reports whether the candidate looks like a real word
// rather than generated or throwaway noise.
func IsMeaningful(s string) bool {
	if s == "" {
		return false
	}
	for _, shape := range noiseShapes {
		if shape.MatchString(s) {
			return false
		}
	}
	return true
}
