package domain

import "errors"

// Error taxonomy. Callers wrap these with fmt.Errorf("%w: ...") and
// the HTTP boundary matches them with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrInvalidDish = errors.New("invalid dish ID or dish not available")
	ErrUpstream    = errors.New("upstream request failed")
)
