// Package errors provides the structured error type used across reqkit.
//
// Every error raised by the module is an *AppError carrying a machine-readable
// ErrorCode. Callers branch on the code with Is rather than on message text:
//
//	if _, err := requester(ctx, "/users", nil, nil, nil); errors.Is(err, errors.ErrCodeType) {
//	    // the requester was built around a nil primitive
//	}
package errors
