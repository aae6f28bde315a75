package llm

import "testing"

func clearDiscoveryEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY",
		"ANTHROPIC_API_KEY",
		"GEMINI_API_KEY",
		"OPENROUTER_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("DISTRACTORS_LLM_PROVIDER", "")
	t.Setenv("DISTRACTORS_OPENAI_MODEL", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected default provider 'openai', got %q", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Fatalf("expected default model 'gpt-4o-mini', got %q", cfg.OpenAI.Model)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("DISTRACTORS_LLM_PROVIDER", "anthropic")
	t.Setenv("DISTRACTORS_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("DISTRACTORS_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected provider 'anthropic', got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Fatalf("expected key from env, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatalf("expected model 'claude-sonnet', got %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestDiscoverConfig_None(t *testing.T) {
	clearDiscoveryEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config with all keys unset")
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearDiscoveryEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai to win, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-openai" {
		t.Fatalf("unexpected key: %q", cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfig_FallsThrough(t *testing.T) {
	clearDiscoveryEnv(t)
	t.Setenv("GEMINI_API_KEY", "sk-gemini")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected 'gemini', got %q", cfg.Provider)
	}
}

func TestConfig_ModelID(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"openai alias", Config{Provider: "openai", OpenAI: OpenAIConfig{Model: "gpt-3.5"}}, "gpt-3.5-turbo"},
		{"openai passthrough", Config{Provider: "openai", OpenAI: OpenAIConfig{Model: "gpt-4.1"}}, "gpt-4.1"},
		{"anthropic alias", Config{Provider: "anthropic", Anthropic: AnthropicConfig{Model: "claude-haiku"}}, anthropicModels["claude-haiku"]},
		{"openrouter passthrough", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}}, "google/gemini-2.0-flash-exp"},
		{"mock", Config{Provider: "mock"}, "mock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ModelID(); got != tt.want {
				t.Fatalf("ModelID() = %q, want %q", got, tt.want)
			}
		})
	}
}
