package agents

import (
	"context"
	"fmt"

	extractorx "github.com/witsarut/careermate/agent/agents/extractor"
	routerx "github.com/witsarut/careermate/agent/agents/router"
	contractx "github.com/witsarut/careermate/agent/contract"
	llmx "github.com/witsarut/careermate/agent/llm"
	promptx "github.com/witsarut/careermate/agent/prompt"
)

type registryImpl struct {
	classifier contractx.Classifier
	extractor  contractx.Extractor
}

func (r *registryImpl) Classifier() contractx.Classifier {
	return r.classifier
}

func (r *registryImpl) Extractor() contractx.Extractor {
	return r.extractor
}

// NewRegistry builds the two capability handles of the pipeline from one
// config: the intent router and the parameter extractor, each with its own
// model settings.
func NewRegistry(ctx context.Context, cfg llmx.Config) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()

	routerModelCfg := cfg.OpenRouterFor(contractx.RoleRouter)
	routerModel, err := routerModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create router model: %v", contractx.ErrModelInvoke, err)
	}
	extractorModelCfg := cfg.OpenRouterFor(contractx.RoleExtractor)
	extractorModel, err := extractorModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create extractor model: %v", contractx.ErrModelInvoke, err)
	}

	classifier, err := routerx.New(ctx, routerModel, prompts.Router)
	if err != nil {
		return nil, err
	}
	extractor, err := extractorx.New(ctx, extractorModel, prompts)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		classifier: classifier,
		extractor:  extractor,
	}, nil
}
