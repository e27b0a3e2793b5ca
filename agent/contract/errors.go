package contract

import (
	"errors"
	"fmt"
)

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrSchemaViolation = errors.New("model response violates schema")
	ErrUpstreamTimeout = errors.New("model did not respond in time")
	ErrValidation      = errors.New("validation failed")
)

// ExtractionError reports the first required parameter the extractor could
// not recover from the query after validation.
type ExtractionError struct {
	Intent       Intent
	MissingField string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction for intent=%s: missing required field %q", e.Intent, e.MissingField)
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrSchemaViolation
}
