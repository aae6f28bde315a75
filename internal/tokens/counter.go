// Package tokens counts prompt tokens with the tiktoken BPE encodings.
// Counts are reported for visibility only; nothing is truncated by them.
package tokens

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

func init() {
	// Embedded BPE dictionaries; the default loader fetches them over the
	// network on first use.
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// fallbackEncoding is used for model ids tiktoken does not know
// (Anthropic, Gemini). The count is approximate for those models but
// still a useful size indicator.
const fallbackEncoding = "cl100k_base"

// Count returns the number of tokens in text for the given encoding type,
// which may be an encoding name (contains "k_base") or a model id.
func Count(text, encodingType string) (int, error) {
	enc, err := encodingFor(encodingType)
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}

func encodingFor(encodingType string) (*tiktoken.Tiktoken, error) {
	if strings.Contains(encodingType, "k_base") {
		enc, err := tiktoken.GetEncoding(encodingType)
		if err != nil {
			return nil, fmt.Errorf("get encoding %q: %w", encodingType, err)
		}
		return enc, nil
	}

	enc, err := tiktoken.EncodingForModel(encodingType)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, fmt.Errorf("fallback encoding: %w", err)
		}
	}
	return enc, nil
}
