package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectByExt(t *testing.T) {
	l, ok := DetectByExt(".py")
	require.True(t, ok)
	assert.Equal(t, "python", l.Name)

	l, ok = DetectByExt(".TSX")
	require.True(t, ok, "extension match folds case")
	assert.Equal(t, "javascript", l.Name)

	_, ok = DetectByExt(".rb")
	assert.False(t, ok)
}

func TestKeywordSet(t *testing.T) {
	gokw := KeywordSet("go")
	assert.Contains(t, gokw, "chan")
	assert.NotContains(t, gokw, "lambda")

	union := KeywordSet("")
	assert.Contains(t, union, "chan")
	assert.Contains(t, union, "lambda")
	assert.Contains(t, union, "function")

	unknown := KeywordSet("cobol")
	assert.Equal(t, len(union), len(unknown), "unknown language falls back to the union")
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	assert.True(t, exts[".py"])
	assert.True(t, exts[".go"])
	assert.True(t, exts[".mjs"])
	assert.False(t, exts[".rb"])
}
