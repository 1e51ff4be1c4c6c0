package errs

// Shared sentinel errors for the order time flow
var (
	// Request errors
	ErrValidationFailed = New("request validation failed")
	ErrMalformedBody    = New("malformed request body")

	// Evaluation errors
	ErrEvaluationFailed = New("order time evaluation failed")
)
