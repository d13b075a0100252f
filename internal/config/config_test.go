package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MINDSPACE_DB", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MINDSPACE_DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "mindspace.db" {
		t.Errorf("DatabaseURL = %q, want default", cfg.DatabaseURL)
	}
	if cfg.Debug {
		t.Error("debug should default off")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MINDSPACE_DB", "/tmp/data/m.db")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AI_MODEL", "gpt-4o")
	t.Setenv("MINDSPACE_DEBUG", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "/tmp/data/m.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.OpenAIKey != "sk-test" || cfg.AIModel != "gpt-4o" {
		t.Errorf("AI config = %q/%q", cfg.OpenAIKey, cfg.AIModel)
	}
	if !cfg.Debug {
		t.Error("debug should be on")
	}
}
