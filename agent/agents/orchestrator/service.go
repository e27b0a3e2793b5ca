// Package orchestrator composes router, extractor, and specialists into the
// per-turn state machine: classify once, extract with one bounded retry,
// dispatch exactly one specialist, render the reply. Every terminal state
// returns a Response; unroutable or unextractable queries degrade to a
// clarification instead of an error.
package orchestrator

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/witsarut/careermate/agent/contract"
	kbx "github.com/witsarut/careermate/agent/kb"
	nodex "github.com/witsarut/careermate/agent/nodes/orchestrator"
	specialistx "github.com/witsarut/careermate/agent/specialist"
)

var ErrInvalidQuery = nodex.ErrInvalidQuery

const defaultMaxExtractAttempts = 2

type Config struct {
	Match specialistx.MatchOptions
	// MaxExtractAttempts bounds extractor calls per turn: the initial attempt
	// plus re-prompts. Zero means the default of two (one retry).
	MaxExtractAttempts int
}

type Orchestrator struct {
	kb     *kbx.KB
	models contractx.Registry

	match              specialistx.MatchOptions
	maxExtractAttempts int

	dispatch func(in *nodex.GraphState) (*nodex.GraphState, error)

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
}

func New(k *kbx.KB, models contractx.Registry, cfg Config) (*Orchestrator, error) {
	if k == nil {
		return nil, errors.New("knowledge base is required")
	}
	if models == nil {
		return nil, errors.New("model registry is required")
	}

	maxAttempts := cfg.MaxExtractAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxExtractAttempts
	}

	o := &Orchestrator{
		kb:                 k,
		models:             models,
		match:              cfg.Match,
		maxExtractAttempts: maxAttempts,
	}
	o.dispatch = func(in *nodex.GraphState) (*nodex.GraphState, error) {
		return nodex.DispatchSpecialist(in, o.kb, o.match)
	}

	graphRunner, err := o.compileHandleQueryGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleQuery processes one turn. The returned error covers only empty input
// and internal graph failures; everything the model gets wrong comes back as
// a clarification Response.
func (o *Orchestrator) HandleQuery(ctx context.Context, text string) (contractx.Response, error) {
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{Query: text})
	if err != nil {
		return contractx.Response{}, err
	}
	return out.Response, nil
}
