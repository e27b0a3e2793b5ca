package orchestratornode

import (
	"context"
	"fmt"

	contractx "github.com/witsarut/careermate/agent/contract"
)

func ClassifyIntent(ctx context.Context, in *GraphState, classifier contractx.Classifier) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.Intent = classifier.Classify(ctx, in.Query)
	return in, nil
}
