package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeType indicates a nil function was supplied where a callable
	// primitive or transform is required.
	ErrCodeType ErrorCode = "TYPE_ERROR"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string { return string(c) }
