package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMeaningful(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"counter", true},
		{"tmp123", false},
		{"tmp", false},
		{"temp42", false},
		{"var", false},
		{"test2", false},
		{"aeiou", false},   // all vowels
		{"xyz", false},     // all consonants
		{"b123", false},    // single letter + digits
		{"ab12", false},    // 1-2 letters + 1-3 digits
		{"___", false},     // no letters
		{"-42", false},     // no letters
		{"getUser", true},
		{"Age", true},
		{"variable", true}, // "var" prefix only rejects var+digits
		{"testing", true},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsMeaningful(tc.in), "IsMeaningful(%q)", tc.in)
	}
}
