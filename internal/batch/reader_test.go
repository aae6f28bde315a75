package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadPairs(t *testing.T) {
	path := writeCSV(t, `source_language,target_language,word,translation
en,ru,cat,кошка
en,ru,dog,собака
`)

	pairs, err := ReadPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, Pair{
		SourceLanguage: "en",
		TargetLanguage: "ru",
		Word:           "cat",
		Translation:    "кошка",
	}, pairs[0])
	assert.Equal(t, "собака", pairs[1].Translation)
}

func TestReadPairs_ColumnOrderIrrelevant(t *testing.T) {
	path := writeCSV(t, `word,translation,target_language,source_language
cat,кошка,ru,en
`)

	pairs, err := ReadPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "cat", pairs[0].Word)
	assert.Equal(t, "en", pairs[0].SourceLanguage)
}

func TestReadPairs_MissingColumn(t *testing.T) {
	path := writeCSV(t, `source_language,target_language,word
en,ru,cat
`)

	_, err := ReadPairs(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translation")
}

func TestReadPairs_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "source_language,target_language,word,translation\n")

	pairs, err := ReadPairs(path)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestReadPairs_FileMissing(t *testing.T) {
	_, err := ReadPairs(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
