package generation

import "errors"

// Common errors returned by the generation package. Callers branch on these
// with errors.Is; error message text is never inspected.
var (
	// ErrInvalidConfig is returned when the generator configuration is
	// invalid: a missing, placeholder, or literal "undefined" API key, or a
	// missing model name. Configuration errors are fatal and always
	// propagate to the caller verbatim; they are never swallowed by the
	// soft-fail paths.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrGenerationFailed is returned when item generation fails for any
	// general reason. The caller is expected to surface it and permit retry.
	ErrGenerationFailed = errors.New("failed to generate bingo items")

	// ErrInvalidResponse is returned when the model response is empty,
	// cannot be parsed, or is malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due
	// to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")
)
