package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/witsarut/careermate/agent/contract"
	openrouterx "github.com/witsarut/careermate/pkg/openrouter"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"1000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	RouterModel          string  `envconfig:"ROUTER_MODEL" split_words:"true"`
	ExtractorModel       string  `envconfig:"EXTRACTOR_MODEL" split_words:"true"`
	RouterTemperature    float32 `envconfig:"ROUTER_TEMPERATURE" split_words:"true" default:"-1"`
	ExtractorTemperature float32 `envconfig:"EXTRACTOR_TEMPERATURE" split_words:"true" default:"-1"`
}

// Validate is the only fatal check in the system: a missing endpoint
// credential or model aborts startup before any query is processed.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterDefaults resolves the shared endpoint settings with no per-role
// override applied, for callers that want the raw SDK surface.
func (c Config) OpenRouterDefaults() openrouterx.Config {
	return c.OpenRouterFor("")
}

// OpenRouterFor resolves the model settings for one capability role, falling
// back to the shared defaults when no per-role override is set.
func (c Config) OpenRouterFor(role contractx.CapabilityRole) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch role {
	case contractx.RoleRouter:
		if v := strings.TrimSpace(c.RouterModel); v != "" {
			modelName = v
		}
		if c.RouterTemperature >= 0 {
			temp = c.RouterTemperature
		}
	case contractx.RoleExtractor:
		if v := strings.TrimSpace(c.ExtractorModel); v != "" {
			modelName = v
		}
		if c.ExtractorTemperature >= 0 {
			temp = c.ExtractorTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
