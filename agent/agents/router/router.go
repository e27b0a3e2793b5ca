// Package router classifies a free-text career question into exactly one
// specialist intent using the model capability. Classification failure is
// never fatal: any upstream error, timeout, or out-of-enum label degrades to
// the unclear intent.
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/witsarut/careermate/agent/contract"
	llmx "github.com/witsarut/careermate/agent/llm"
)

type routerImpl struct {
	runner compose.Runnable[map[string]any, routerLLMOutput]
}

type routerLLMOutput struct {
	Intent string `json:"intent"`
}

func New(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (contractx.Classifier, error) {
	runner, err := llmx.CompileStructuredGraph[routerLLMOutput](ctx, chatModel, systemPrompt, "router.classify_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile router graph: %v", contractx.ErrModelInvoke, err)
	}
	return &routerImpl{runner: runner}, nil
}

func (r *routerImpl) Classify(ctx context.Context, query string) contractx.Intent {
	if strings.TrimSpace(query) == "" {
		return contractx.IntentUnclear
	}

	payload, err := json.Marshal(map[string]any{"query": query})
	if err != nil {
		log.Warn().Err(err).Msg("router: marshal query payload")
		return contractx.IntentUnclear
	}

	out, err := r.runner.Invoke(ctx, map[string]any{
		"input": string(payload),
	})
	if err != nil {
		log.Warn().Err(err).Msg("router: classify invoke failed, treating as unclear")
		return contractx.IntentUnclear
	}

	intent := contractx.ParseIntent(out.Intent)
	if intent == contractx.IntentUnclear && strings.TrimSpace(out.Intent) != string(contractx.IntentUnclear) {
		log.Warn().Str("label", out.Intent).Msg("router: label outside enum, collapsed to unclear")
	}
	return intent
}
