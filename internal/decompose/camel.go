package decompose

import (
	"regexp"
	"strings"
)

// Boundary patterns applied in order to normalize a camelCase token
// before splitting. The separator byte cannot occur in identifiers.
const sep = "\x00"

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]{2,})([A-Z][a-z])`) // JSONObject -> JSON|Object
	lowerUpper      = regexp.MustCompile(`([a-z0-9])([A-Z])`)       // getUser -> get|User
	letterDigit     = regexp.MustCompile(`([A-Za-z])([0-9])`)       // v2 -> v|2
	digitLetter     = regexp.MustCompile(`([0-9])([A-Za-z])`)       // 2fast -> 2|fast
)

// CamelSplit splits a token on camelCase, acronym, and digit boundaries.
// Pure-numeric parts are dropped unless they are at least 4 digits long
// (possible years). All-uppercase acronym runs are kept whole.
func CamelSplit(token string) []string {
	if token == "" {
		return nil
	}

	norm := acronymBoundary.ReplaceAllString(token, "$1"+sep+"$2")
	norm = lowerUpper.ReplaceAllString(norm, "$1"+sep+"$2")
	norm = letterDigit.ReplaceAllString(norm, "$1"+sep+"$2")
	norm = digitLetter.ReplaceAllString(norm, "$1"+sep+"$2")

	var parts []string
	for _, p := range strings.Split(norm, sep) {
		if p == "" {
			continue
		}
		if isNumeric(p) && len(p) < 4 {
			continue
		}
		parts = append(parts, p)
	}
	return parts
}

// SplitAll splits a token on underscores first, then camel boundaries,
// returning the leaf parts. Unlike Parts it applies no blacklist or
// meaningfulness filtering; the prioritizer filters the result itself.
func SplitAll(token string) []string {
	collapsed := repeatedUnderscores.ReplaceAllString(token, "_")
	var parts []string
	for _, field := range strings.Split(collapsed, "_") {
		if field == "" {
			continue
		}
		if sub := CamelSplit(field); len(sub) > 1 {
			parts = append(parts, sub...)
		} else {
			parts = append(parts, field)
		}
	}
	return parts
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
