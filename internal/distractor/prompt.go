package distractor

import (
	"encoding/json"
	"fmt"

	"github.com/aglebova/distractors/internal/llm"
)

// systemPrompt is the canonical instruction for distractor generation,
// including worked examples of the expected JSON reply shape.
const systemPrompt = `
Act as language learning tests generator. You need to create set of distractors for input word.

Distractor is:
1. Thematically related word (or phrase)
2. Not the synonym of the given word (or contains synonym of the given word)
3. The same part of speech as the given word
4. Not the right translation of the given word in source language
5. Given in the target language (this is very important)

Don't add translation to source language in distractor, e.g. "собака (dog)".
Good distractor: "собака", bad distractor: "собака (dog)".

Very important: All output distractors should be in target language. They all must be different from each other.
Also, you need to make sure that all distractors are thematically related between each other and with the given word.

Firstly, you need to determine theme of the given word. Then, you need to generate distractors based on the theme in valid json structure.

Example user input: {"word": "cat", "translation": "кошка", "target_language": "ru", "source_language": "en", "num_distractors": 3}
Output:
{"theme": "pets (only house pets)", "1": "собака", "2": "хомяк", "3": "кролик"}

Example user input: {"word": "salty", "translation": "соленый", "target_language": "ru", "source_language": "en", "num_distractors": 2}
Output:
{"theme": "tastes or flavors", "1": "сладкий", "2": "горький"}

Example user input: {"word": "jeans", "translation": "джинсы", "target_language": "ru", "source_language": "en", "num_distractors": 4}
Output:
{"theme": "types of clothing", "1": "юбка", "2": "перчатки", "3": "брюки", "4": "платье"}
`

// ackMessage is the canned assistant turn placed between the instruction
// and the actual input, framing the input turn as data rather than chat.
const ackMessage = "Ready to generate distractors. Waiting for input..."

// promptInput is the per-request payload serialized into the final user turn.
type promptInput struct {
	Word           string `json:"word"`
	Translation    string `json:"translation"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	NumDistractors int    `json:"num_distractors"`
}

// buildMessages assembles the conversation: instruction, acknowledgment,
// then the request as a compact JSON object. Language codes are passed
// through without validation.
func buildMessages(instruction string, req Request) ([]llm.Message, error) {
	payload, err := json.Marshal(promptInput{
		Word:           req.Word,
		Translation:    req.Translation,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		NumDistractors: req.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal prompt input: %w", err)
	}

	return []llm.Message{
		{Role: llm.RoleUser, Content: instruction},
		{Role: llm.RoleAssistant, Content: ackMessage},
		{Role: llm.RoleUser, Content: string(payload)},
	}, nil
}
