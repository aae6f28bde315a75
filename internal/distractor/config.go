package distractor

import "time"

// Config controls the behavior of the Generator. It is copied at
// construction; tests substitute prompts and thresholds without touching
// any process-wide state.
type Config struct {
	// SystemPrompt is the instruction turn sent before every request.
	SystemPrompt string

	// Threshold is the partial-ratio score (0-100) strictly above which
	// two candidates count as duplicates.
	Threshold int

	// Temperature is used for the initial generation call.
	Temperature float64

	// BackfillTemperature is used for backfill calls; it runs hotter to
	// push the model toward candidates it has not produced yet.
	BackfillTemperature float64

	// MaxTrials bounds attempts per generation call. Malformed replies and
	// backoff retries share this budget.
	MaxTrials int

	// BackfillTrials bounds additional generation rounds used to replace
	// candidates removed as duplicates.
	BackfillTrials int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// RetryWait is the backoff before retrying a rate-limited or
	// unavailable backend when it suggests no delay itself.
	RetryWait time.Duration

	// CallTimeout is the deadline applied to each individual backend call.
	CallTimeout time.Duration
}

// DefaultConfig returns a Config with the canonical prompt and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		SystemPrompt:        systemPrompt,
		Threshold:           90,
		Temperature:         0.8,
		BackfillTemperature: 1.2,
		MaxTrials:           3,
		BackfillTrials:      1,
		MaxTokens:           512,
		RetryWait:           20 * time.Second,
		CallTimeout:         60 * time.Second,
	}
}
