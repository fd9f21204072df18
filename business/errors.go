package business

import "errors"

var (
	// ErrInvalidInput is returned when the dataset is nil, malformed,
	// or any of its collections is empty.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMissingStrategy is returned when the options bag or either
	// strategy function is absent.
	ErrMissingStrategy = errors.New("missing strategy function")

	// ErrUnresolvedReference is returned when a purchase record points
	// at a seller ID or SKU that is not in the dataset.
	ErrUnresolvedReference = errors.New("unresolved reference")
)
