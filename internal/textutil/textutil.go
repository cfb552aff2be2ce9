package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode"
)

// Hash computes a SHA-256 hex hash of a string for cache keying.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// ContainsDigit reports whether the string contains at least one ASCII digit.
func ContainsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// IsAllUpper reports whether every letter in the string is uppercase.
// Strings without letters return false.
func IsAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
