package store

import (
	"os"
	"path/filepath"
	"testing"

	"ident-translator/internal/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("data", "loc_core_vocabulary_zh-CN.json"),
		FilePath("data", "zh-CN"))
}

func TestLoadMissingReturnsSeededDefault(t *testing.T) {
	v := Load(t.TempDir(), "zh-CN")

	assert.Equal(t, "zh-CN", v.TargetLanguage)
	require.NotEmpty(t, v.Entries)
	idx := vocab.FindEntry(v, "function", vocab.TypeIdentifier, true)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "函数", v.Entries[idx].Translated)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	v := vocab.CreateDefault("ja")
	v.Entries = append(v.Entries, vocab.Entry{
		Original: "widget", Translated: "ウィジェット",
		Type: vocab.TypeIdentifier, Source: vocab.SourceUser,
	})

	require.NoError(t, Save(dir, "ja", v))

	loaded := Load(dir, "ja")
	assert.Equal(t, v.TargetLanguage, loaded.TargetLanguage)
	require.Equal(t, len(v.Entries), len(loaded.Entries))
	assert.Equal(t, v.Entries, loaded.Entries)

	// No temp file left behind.
	_, err := os.Stat(FilePath(dir, "ja") + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadCorruptFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(FilePath(dir, "zh-CN"), []byte("{truncated"), 0644))

	v := Load(dir, "zh-CN")
	assert.Equal(t, "zh-CN", v.TargetLanguage)
	assert.NotEmpty(t, v.Entries)
}

func TestLoadFillsMissingLanguageTag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(FilePath(dir, "ja"),
		[]byte(`{"entries":[{"original":"widget","translated":"ウィジェット","type":"identifier","source":"user"}]}`), 0644))

	v := Load(dir, "ja")
	assert.Equal(t, "ja", v.TargetLanguage)
	require.Len(t, v.Entries, 1, "non-empty vocabulary is not reseeded")
	assert.Equal(t, "widget", v.Entries[0].Original)
}
