package distractor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Reply is the parsed model output: a theme plus candidate distractors
// keyed by stringified integers ("1", "2", ...). Candidates keep the order
// in which the model emitted them; keys that are neither "theme" nor
// all-digit are discarded.
type Reply struct {
	Theme string

	candidates []string
}

// Candidates returns the digit-keyed values in reply order.
// A nil Reply yields no candidates.
func (r *Reply) Candidates() []string {
	if r == nil {
		return nil
	}
	return r.candidates
}

// parseReply parses the raw model text as JSON. If the text does not parse
// as-is, it falls back to the substring between the first "{" and the first
// "}". The first-closing-brace cut truncates nested objects incorrectly;
// the flat reply shape makes that acceptable in practice and the behavior
// is kept for compatibility with existing prompts.
func parseReply(text string) (*Reply, error) {
	reply, err := decodeReply([]byte(text))
	if err == nil {
		return reply, nil
	}

	start := strings.IndexByte(text, '{')
	end := strings.IndexByte(text, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in reply")
	}
	return decodeReply([]byte(text[start : end+1]))
}

// decodeReply decodes a single flat JSON object preserving key order,
// which map-based unmarshaling would lose.
func decodeReply(data []byte) (*Reply, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("reply is not a JSON object")
	}

	reply := &Reply{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode reply key: %w", err)
		}
		key := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode reply value for %q: %w", key, err)
		}

		s, ok := value.(string)
		if !ok {
			continue
		}
		switch {
		case key == "theme":
			reply.Theme = s
		case isDigits(key):
			reply.candidates = append(reply.candidates, s)
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}

	// Reject trailing non-whitespace so wrapped replies hit the
	// brace-extraction fallback instead of silently passing.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON object")
	}

	return reply, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
