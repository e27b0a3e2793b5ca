// Package orchestratornode holds the per-turn state and the node functions
// the orchestrator graph is wired from. A GraphState is owned by exactly one
// turn; nothing here is shared across concurrent turns except the read-only
// knowledge base passed into dispatch.
package orchestratornode

import (
	"errors"
	"strings"

	contractx "github.com/witsarut/careermate/agent/contract"
)

var ErrInvalidQuery = errors.New("query is empty")

type GraphInput struct {
	Query string
}

type GraphOutput struct {
	Response contractx.Response
}

type GraphState struct {
	Query  string
	Intent contractx.Intent

	Params          contractx.ExtractedParams
	ExtractAttempts int

	// NeedsClarification marks a turn whose extraction retries are exhausted;
	// MissingField names what could not be recovered, when known.
	NeedsClarification bool
	MissingField       string

	Response contractx.Response
}

func ValidateQuery(in GraphInput) (*GraphState, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, ErrInvalidQuery
	}
	return &GraphState{Query: query}, nil
}
