package game

import (
	"errors"
	"fmt"
)

// Error is a typed game-engine error. The RPC façade maps Code 1:1 onto a
// gRPC status code; game methods never construct status errors themselves.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrorCode classifies an Error for the façade's mapping to gRPC codes.
type ErrorCode int

const (
	// CodeInvalidArgument covers malformed requests and illegal state
	// transitions.
	CodeInvalidArgument ErrorCode = iota
	// CodeInternal covers violated invariants.
	CodeInternal
)

func invalidArgument(format string, args ...any) error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func internalError(format string, args ...any) error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ErrorCode from err, defaulting to CodeInternal for
// errors that did not originate in this package.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
