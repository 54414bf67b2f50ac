package plan

import "errors"

var (
	// ErrNoTerms is returned when a plan names no terms.
	ErrNoTerms = errors.New("plan has no terms")

	// ErrInvalidPlan wraps every other plan validation failure.
	ErrInvalidPlan = errors.New("invalid plan")
)
