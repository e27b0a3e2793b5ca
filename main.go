package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"

	agentsx "github.com/witsarut/careermate/agent/agents"
	orchestratorx "github.com/witsarut/careermate/agent/agents/orchestrator"
	kbx "github.com/witsarut/careermate/agent/kb"
	llmx "github.com/witsarut/careermate/agent/llm"
	configx "github.com/witsarut/careermate/pkg/config"
	_ "github.com/witsarut/careermate/pkg/logger/autoload"
	openrouterx "github.com/witsarut/careermate/pkg/openrouter"
)

var demoQueries = []string{
	"I want to become a data scientist",
	"I know Python and SQL. Can you find me a job?",
	"How can I learn React and Pandas?",
}

func main() {
	ctx := context.Background()

	llmCfg := configx.MustNew[llmx.Config]("LLM")

	openRouterClient := openrouterx.NewClient(llmCfg.OpenRouterDefaults())
	if openRouterClient == nil {
		log.Fatal().Msg("initialize openrouter client")
	}

	models, err := agentsx.NewRegistry(ctx, *llmCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build model registry")
	}

	o, err := orchestratorx.New(kbx.Default(), models, orchestratorx.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("build orchestrator")
	}

	queries := flag.Args()
	if len(queries) == 0 {
		queries = demoQueries
	}

	for _, query := range queries {
		resp, err := o.HandleQuery(ctx, query)
		if err != nil {
			log.Error().Err(err).Str("query", query).Msg("turn failed")
			continue
		}
		log.Info().Str("intent", string(resp.Intent)).Str("query", query).Msg("turn complete")
		fmt.Printf("QUERY: %s\n%s\n\n", query, resp.Text)
	}
}
