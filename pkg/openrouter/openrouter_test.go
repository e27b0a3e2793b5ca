package openrouter

import "testing"

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if c := NewClient(Config{BaseURL: "https://openrouter.ai/api/v1"}); c != nil {
		t.Fatal("expected nil client without an api key")
	}
}

func TestNewClientBuildsWithAttributionHeaders(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{
		BaseURL:  "https://openrouter.ai/api/v1/",
		APIKey:   " sk-test ",
		SiteURL:  "https://careermate.example",
		SiteName: "CareerMate",
	})
	if c == nil {
		t.Fatal("expected a configured client")
	}
}
