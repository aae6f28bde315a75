package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Result is one completed item of a batch run.
type Result struct {
	Word        string   `json:"word"`
	Translation string   `json:"translation"`
	Distractors []string `json:"distractors"`
}

// WriteResults writes the results as an indented UTF-8 JSON array.
// HTML escaping is off so non-ASCII distractors stay literal.
func WriteResults(path string, results []Result) error {
	if results == nil {
		results = []Result{}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(results); err != nil {
		f.Close()
		return fmt.Errorf("write results: %w", err)
	}
	return f.Close()
}
