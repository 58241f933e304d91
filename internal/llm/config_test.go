package llm

import "testing"

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PAPERFORGE_LLM_PROVIDER",
		"PAPERFORGE_ANTHROPIC_API_KEY",
		"PAPERFORGE_OPENAI_API_KEY",
		"PAPERFORGE_GEMINI_API_KEY",
		"GEMINI_API_KEY",
		"OPENAI_API_KEY",
		"ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearKeyEnv(t)
	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("expected anthropic default, got %q", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("unexpected default model %q", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("unexpected retry attempts %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("PAPERFORGE_LLM_PROVIDER", "openai")
	t.Setenv("PAPERFORGE_OPENAI_API_KEY", "sk-test")
	t.Setenv("PAPERFORGE_OPENAI_MODEL", "gpt-4o")
	t.Setenv("PAPERFORGE_OPENAI_BASE_URL", "https://openrouter.ai/api/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai settings not applied: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("base url not applied: %q", cfg.OpenAI.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("gemini should win priority, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "gm-key" {
		t.Errorf("key not applied: %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	clearKeyEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing anthropic key")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider needs no key: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
