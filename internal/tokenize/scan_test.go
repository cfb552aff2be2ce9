package tokenize

import (
	"testing"

	"ident-translator/internal/blacklist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanBasicIdentifiers(t *testing.T) {
	tm := Scan("userName := loadProfile(count)", blacklist.Default())

	assert.True(t, tm.Has("userName"))
	assert.True(t, tm.Has("loadProfile"))
	assert.True(t, tm.Has("count"))
	assert.Equal(t, KindOriginal, tm.Kind("userName"))
}

func TestScanOrderIsFirstEncountered(t *testing.T) {
	tm := Scan("alpha beta alpha gamma", blacklist.Default())
	require.Equal(t, []string{"alpha", "beta", "gamma"}, tm.Tokens())
}

func TestScanExcludesHexColors(t *testing.T) {
	for _, src := range []string{"#FF00FF", "f0f0f0", "a1b2c3d4", "#0f0"} {
		tm := Scan(src, blacklist.Default())
		assert.Zero(t, tm.Len(), "expected no tokens from %q", src)
	}
}

func TestScanKeepsHexLookingWords(t *testing.T) {
	// Pure-letter a-f words are not colors.
	tm := Scan("facade decade", blacklist.Default())
	assert.True(t, tm.Has("facade"))
	assert.True(t, tm.Has("decade"))
}

func TestScanExcludesURLs(t *testing.T) {
	tm := Scan(`fetch("https://example.com/path/to/resource")`, blacklist.Default())
	assert.False(t, tm.Has("example"))
	assert.False(t, tm.Has("path"))
	assert.False(t, tm.Has("resource"))
	assert.False(t, tm.Has("https"))
	assert.True(t, tm.Has("fetch"))
}

func TestScanExcludesDottedDomains(t *testing.T) {
	tm := Scan("see docs.example.com for details", blacklist.Default())
	assert.False(t, tm.Has("docs"))
	assert.False(t, tm.Has("example"))
	assert.True(t, tm.Has("details"))
}

func TestScanExcludesShortAndBlacklisted(t *testing.T) {
	tm := Scan("x = self.value + idx", blacklist.Default())
	assert.False(t, tm.Has("x"), "length 1")
	assert.False(t, tm.Has("self"), "ignore list")
	assert.False(t, tm.Has("idx"), "ignore list")
	assert.True(t, tm.Has("value"))
}

func TestScanRecognizedDunder(t *testing.T) {
	tm := Scan("def __init__(self):", blacklist.Default())

	require.True(t, tm.Has("__init__"))
	assert.Equal(t, KindOriginal, tm.Kind("__init__"))
	require.True(t, tm.Has("init"))
	assert.Equal(t, KindSplit, tm.Kind("init"))
}

func TestScanDunderCoreFailingMeaningfulness(t *testing.T) {
	// "str" is all consonants, so only the whole form is kept.
	tm := Scan("__str__", blacklist.Default())
	assert.True(t, tm.Has("__str__"))
	assert.False(t, tm.Has("str"))
}

func TestScanUnrecognizedDunderGoesThroughNormalPath(t *testing.T) {
	tm := Scan("__custom__", blacklist.Default())
	assert.True(t, tm.Has("__custom__"))
	assert.False(t, tm.Has("custom"))
}

func TestIsHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"fff", false}, // no digit
		{"0f0", true},
		{"FF00FF", true},
		{"a1b2c3d4", true},
		{"f0f0f0f0f0", true}, // repeating pair
		{"facade", false},
		{"counter", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsHexColor(tc.in), "IsHexColor(%q)", tc.in)
	}
}

func TestTokenMapFirstWriteWins(t *testing.T) {
	tm := NewTokenMap()
	require.True(t, tm.InsertIfAbsent("user", KindOriginal))
	require.False(t, tm.InsertIfAbsent("user", KindSplit))
	assert.Equal(t, KindOriginal, tm.Kind("user"))
	assert.Equal(t, 1, tm.Len())
}

func TestTokenMapCaseSensitiveKeys(t *testing.T) {
	tm := NewTokenMap()
	tm.InsertIfAbsent("Age", KindSplit)
	tm.InsertIfAbsent("age", KindOriginal)
	assert.Equal(t, 2, tm.Len())
}
