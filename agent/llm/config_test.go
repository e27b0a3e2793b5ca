package llm

import (
	"errors"
	"testing"

	contractx "github.com/witsarut/careermate/agent/contract"
)

func baseConfig() Config {
	return Config{
		BaseURL:              "https://openrouter.ai/api/v1",
		APIKey:               "sk-test",
		Model:                "openai/gpt-4o-mini",
		MaxCompletionToken:   1000,
		Temperature:          0,
		RouterTemperature:    -1,
		ExtractorTemperature: -1,
	}
}

func TestValidateRejectsMissingCredentials(t *testing.T) {
	t.Parallel()

	missingKey := baseConfig()
	missingKey.APIKey = "  "
	if err := missingKey.Validate(); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected validation error for blank api key, got %v", err)
	}

	missingModel := baseConfig()
	missingModel.Model = ""
	if err := missingModel.Validate(); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected validation error for blank model, got %v", err)
	}

	if err := baseConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestOpenRouterForAppliesRoleOverrides(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.RouterModel = "x-ai/grok-4.1-fast"
	cfg.RouterTemperature = 0.2

	router := cfg.OpenRouterFor(contractx.RoleRouter)
	if router.Model != "x-ai/grok-4.1-fast" || router.Temperature != 0.2 {
		t.Fatalf("router override not applied: %+v", router)
	}

	extractor := cfg.OpenRouterFor(contractx.RoleExtractor)
	if extractor.Model != cfg.Model || extractor.Temperature != cfg.Temperature {
		t.Fatalf("extractor should keep shared defaults: %+v", extractor)
	}
}

func TestOpenRouterDefaultsIgnoresRoleOverrides(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.RouterModel = "x-ai/grok-4.1-fast"
	cfg.ExtractorModel = "google/gemini-2.5-flash"

	got := cfg.OpenRouterDefaults()
	if got.Model != cfg.Model {
		t.Fatalf("defaults picked up a role override: %+v", got)
	}
	if got.APIKey != cfg.APIKey || got.BaseURL != cfg.BaseURL {
		t.Fatalf("defaults lost endpoint settings: %+v", got)
	}
}
