package contract

import "context"

// CapabilityRole identifies which part of the pipeline a model handle serves.
type CapabilityRole string

const (
	RoleRouter    CapabilityRole = "router"
	RoleExtractor CapabilityRole = "extractor"
)

// Classifier decides which specialist handles a query. Implementations must
// never fail a turn over classification: any upstream problem maps to
// IntentUnclear.
type Classifier interface {
	Classify(ctx context.Context, query string) Intent
}

// ExtractRequest carries one extraction attempt. Reminder is empty on the
// first attempt and holds retry guidance on the single re-prompt.
type ExtractRequest struct {
	Intent   Intent
	Query    string
	Reminder string
}

type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (ExtractedParams, error)
}

type Registry interface {
	Classifier() Classifier
	Extractor() Extractor
}
