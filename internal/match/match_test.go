package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAlpha(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"user_name", "username"},
		{"UserName", "username"},
		{"v2_count", "vcount"},
		{"__init__", "init"},
		{"123", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeAlpha(tc.in), "NormalizeAlpha(%q)", tc.in)
	}
}

func TestStemStripsOneSuffix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"widgets", "widget"},
		{"Widget", "widget"},
		{"translations", "translation"}, // "s" strips before "tions"
		{"payment", "payment"},          // stem "pay" too short vs "ment"
		{"darkness", "darknes"},         // plain "s" wins before "ness"
		{"entity", "enti"},              // "ity" guarded, "ty" strips
		{"helpful", "helpful"},          // "ful" needs 5+ char stem
		{"wonderful", "wonder"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Stem(tc.in), "Stem(%q)", tc.in)
	}
}

func TestStemAdjustments(t *testing.T) {
	// consonant-y -> i
	assert.Equal(t, "uniti", Stem("unity"))
	// ie -> y, then consonant-y -> i applies to the new ending
	assert.Equal(t, "di", Stem("die"))
}

func TestStemDoesNotCollideShortWords(t *testing.T) {
	// The guard must keep "uni" and "unity" apart.
	assert.NotEqual(t, Stem("uni"), Stem("unity"))
}

func TestStrategiesOrderAndGuards(t *testing.T) {
	require.Len(t, Strategies, 4)
	assert.Equal(t, StrategyExact, Strategies[0].Name)
	assert.Equal(t, StrategyFold, Strategies[1].Name)
	assert.Equal(t, StrategyNormalized, Strategies[2].Name)
	assert.Equal(t, StrategyStem, Strategies[3].Name)

	// Normalized and stem strategies refuse short inputs.
	_, ok := Strategies[2].Key("ab")
	assert.False(t, ok)
	_, ok = Strategies[3].Key("ab")
	assert.False(t, ok)

	key, ok := Strategies[2].Key("user_name")
	require.True(t, ok)
	assert.Equal(t, "username", key)
}
