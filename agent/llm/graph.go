package llm

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

const (
	nodePrompt = "prompt"
	nodeModel  = "model"
	nodeParse  = "parse_json"
)

// CompileStructuredGraph builds the prompt -> model -> JSON-parse pipeline
// every capability call in the system goes through. The parse target T is the
// fixed schema contract; fields the model invents are dropped by the decode.
//
// Prompts are rendered with pyfmt semantics, so literal braces in a system
// prompt must be doubled ({{ and }}).
func CompileStructuredGraph[T any](
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	graphName string,
) (compose.Runnable[map[string]any, T], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	parser := schema.NewMessageJSONParser[T](&schema.MessageJSONParseConfig{
		ParseFrom: schema.MessageParseFromContent,
	})

	graph := compose.NewGraph[map[string]any, T]()
	if err := graph.AddChatTemplateNode(nodePrompt, template); err != nil {
		return nil, fmt.Errorf("add %s node: %w", nodePrompt, err)
	}
	if err := graph.AddChatModelNode(nodeModel, chatModel); err != nil {
		return nil, fmt.Errorf("add %s node: %w", nodeModel, err)
	}
	if err := graph.AddLambdaNode(nodeParse, compose.MessageParser(parser)); err != nil {
		return nil, fmt.Errorf("add %s node: %w", nodeParse, err)
	}

	edges := [][2]string{
		{compose.START, nodePrompt},
		{nodePrompt, nodeModel},
		{nodeModel, nodeParse},
		{nodeParse, compose.END},
	}
	for _, e := range edges {
		if err := graph.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", e[0], e[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName(graphName))
	if err != nil {
		return nil, fmt.Errorf("compile %s graph: %w", graphName, err)
	}
	return runner, nil
}
