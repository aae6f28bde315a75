package distractor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aglebova/distractors/internal/llm"
)

func TestBuildMessages(t *testing.T) {
	req := Request{
		Word:           "cat",
		Translation:    "кошка",
		SourceLanguage: "en",
		TargetLanguage: "ru",
		Count:          3,
	}

	messages, err := buildMessages(systemPrompt, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}

	if messages[0].Role != llm.RoleUser {
		t.Errorf("message 0: expected user role, got %q", messages[0].Role)
	}
	if messages[0].Content != systemPrompt {
		t.Error("message 0 must carry the instruction verbatim")
	}

	if messages[1].Role != llm.RoleAssistant {
		t.Errorf("message 1: expected assistant role, got %q", messages[1].Role)
	}
	if messages[1].Content != ackMessage {
		t.Errorf("message 1: unexpected content %q", messages[1].Content)
	}

	if messages[2].Role != llm.RoleUser {
		t.Errorf("message 2: expected user role, got %q", messages[2].Role)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(messages[2].Content), &payload); err != nil {
		t.Fatalf("final turn is not valid JSON: %v", err)
	}
	if payload["word"] != "cat" || payload["translation"] != "кошка" {
		t.Errorf("unexpected payload: %v", payload)
	}
	if payload["source_language"] != "en" || payload["target_language"] != "ru" {
		t.Errorf("unexpected language codes: %v", payload)
	}
	if payload["num_distractors"] != float64(3) {
		t.Errorf("unexpected num_distractors: %v", payload["num_distractors"])
	}
}

func TestSystemPrompt_HasWorkedExamples(t *testing.T) {
	for _, fragment := range []string{
		`"word": "cat"`,
		`"theme": "pets (only house pets)"`,
		"target language",
	} {
		if !strings.Contains(systemPrompt, fragment) {
			t.Errorf("system prompt is missing %q", fragment)
		}
	}
}
