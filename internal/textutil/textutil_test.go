package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	assert.Equal(t, Hash("user"), Hash("user"))
	assert.NotEqual(t, Hash("user"), Hash("User"))
	assert.Len(t, Hash(""), 64)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 3))
}

func TestContainsDigit(t *testing.T) {
	assert.True(t, ContainsDigit("v2"))
	assert.False(t, ContainsDigit("version"))
	assert.False(t, ContainsDigit(""))
}

func TestIsAllUpper(t *testing.T) {
	assert.True(t, IsAllUpper("HTTP"))
	assert.True(t, IsAllUpper("A_B"))
	assert.False(t, IsAllUpper("Http"))
	assert.False(t, IsAllUpper("123"))
	assert.False(t, IsAllUpper(""))
}
