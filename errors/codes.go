package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Evaluation errors
const (
	// ErrCodeDuplicateKey indicates two elements mapped to the same key while
	// collecting into a map that rejects collisions.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"
	// ErrCodeUnboundedEvaluation indicates an attempt to fully materialize an
	// infinite stream.
	ErrCodeUnboundedEvaluation ErrorCode = "UNBOUNDED_EVALUATION"
	// ErrCodeCanceled indicates the evaluation context was canceled or timed out.
	ErrCodeCanceled ErrorCode = "CANCELED"
)

// Input errors
const (
	// ErrCodeInvalidArgument indicates an operator received an argument outside its domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeValidation indicates struct validation failed.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrCodeConfig indicates configuration could not be loaded or decoded.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
)
