// Package batch drives sequential distractor generation over a CSV of
// word/translation pairs.
package batch

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Pair is one input row: a word, its translation and the language pair.
type Pair struct {
	SourceLanguage string
	TargetLanguage string
	Word           string
	Translation    string
}

var requiredColumns = []string{"source_language", "target_language", "word", "translation"}

// ReadPairs loads word/translation pairs from a CSV file with a header
// row. Columns may appear in any order; all four are required.
func ReadPairs(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("input file %s is missing column %q", path, name)
		}
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}

	pairs := make([]Pair, 0, len(records))
	for _, rec := range records {
		pairs = append(pairs, Pair{
			SourceLanguage: rec[cols["source_language"]],
			TargetLanguage: rec[cols["target_language"]],
			Word:           rec[cols["word"]],
			Translation:    rec[cols["translation"]],
		})
	}
	return pairs, nil
}
