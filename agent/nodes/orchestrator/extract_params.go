package orchestratornode

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/witsarut/careermate/agent/contract"
)

// ExtractParams runs the extractor up to maxAttempts times: the initial call
// plus at most one re-prompt with an augmented reminder. Exhausted retries
// mark the state for clarification instead of failing the turn, so the
// specialist is never invoked on unvalidated parameters.
func ExtractParams(
	ctx context.Context,
	in *GraphState,
	extractor contractx.Extractor,
	maxAttempts int,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	reminder := ""
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		params, err := extractor.Extract(ctx, contractx.ExtractRequest{
			Intent:   in.Intent,
			Query:    in.Query,
			Reminder: reminder,
		})
		in.ExtractAttempts = attempt
		if err == nil {
			in.Params = params
			return in, nil
		}

		var exErr *contractx.ExtractionError
		switch {
		case errors.As(err, &exErr):
			in.MissingField = exErr.MissingField
			reminder = fmt.Sprintf(
				"Your previous answer was missing the required field %q. Reply again with the same JSON schema and fill it in from the user's message.",
				exErr.MissingField,
			)
		case errors.Is(err, contractx.ErrUpstreamTimeout),
			errors.Is(err, contractx.ErrModelInvoke),
			errors.Is(err, contractx.ErrSchemaViolation):
			reminder = "Your previous answer could not be parsed. Reply again with exactly the JSON schema requested and nothing else."
		default:
			return nil, err
		}

		log.Warn().
			Err(err).
			Str("intent", string(in.Intent)).
			Int("attempt", attempt).
			Msg("extraction attempt failed")
	}

	in.NeedsClarification = true
	return in, nil
}
