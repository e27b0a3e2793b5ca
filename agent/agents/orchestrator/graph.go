package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/witsarut/careermate/agent/contract"
	nodex "github.com/witsarut/careermate/agent/nodes/orchestrator"
)

func (o *Orchestrator) compileHandleQueryGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("validate_query",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ValidateQuery(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_query: %w", err)
	}

	if err := graph.AddLambdaNode("classify_intent",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ClassifyIntent(ctx, in, o.models.Classifier())
		}),
	); err != nil {
		return nil, fmt.Errorf("add node classify_intent: %w", err)
	}

	if err := graph.AddLambdaNode("extract_params",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ExtractParams(ctx, in, o.models.Extractor(), o.maxExtractAttempts)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node extract_params: %w", err)
	}

	if err := graph.AddLambdaNode("dispatch_specialist",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return o.dispatch(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node dispatch_specialist: %w", err)
	}

	if err := graph.AddLambdaNode("format_response",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.FormatResponse(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node format_response: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	// Unclear intent skips extraction and dispatch entirely.
	routeAfterClassify := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
			}
			if in.Intent == contractx.IntentUnclear {
				return "format_response", nil
			}
			return "extract_params", nil
		},
		map[string]bool{
			"extract_params":  true,
			"format_response": true,
		},
	)

	// Exhausted extraction retries go straight to the clarification reply;
	// only validated parameters ever reach the specialist.
	routeAfterExtract := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
			}
			if in.NeedsClarification {
				return "format_response", nil
			}
			return "dispatch_specialist", nil
		},
		map[string]bool{
			"dispatch_specialist": true,
			"format_response":     true,
		},
	)

	if err := graph.AddEdge(compose.START, "validate_query"); err != nil {
		return nil, fmt.Errorf("add edge start->validate_query: %w", err)
	}
	if err := graph.AddEdge("validate_query", "classify_intent"); err != nil {
		return nil, fmt.Errorf("add edge validate_query->classify_intent: %w", err)
	}
	if err := graph.AddBranch("classify_intent", routeAfterClassify); err != nil {
		return nil, fmt.Errorf("add branch after classify_intent: %w", err)
	}
	if err := graph.AddBranch("extract_params", routeAfterExtract); err != nil {
		return nil, fmt.Errorf("add branch after extract_params: %w", err)
	}
	if err := graph.AddEdge("dispatch_specialist", "format_response"); err != nil {
		return nil, fmt.Errorf("add edge dispatch_specialist->format_response: %w", err)
	}
	if err := graph.AddEdge("format_response", "finalize_reply"); err != nil {
		return nil, fmt.Errorf("add edge format_response->finalize_reply: %w", err)
	}
	if err := graph.AddEdge("finalize_reply", compose.END); err != nil {
		return nil, fmt.Errorf("add edge finalize_reply->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.handle_query"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}
