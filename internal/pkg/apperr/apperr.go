package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary. Services return *Error
// values; the error handler middleware maps Kind to a status code and never
// leaks internal detail for Upstream failures.
type Kind int

const (
	KindUnauthenticated Kind = iota // 401
	KindAccessDenied                // 403
	KindNotFound                    // 404
	KindInvalidRequest              // 400
	KindUpstream                    // 500, generic message to caller
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, logged but never surfaced for Upstream
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func AccessDenied(message string) *Error {
	return &Error{Kind: KindAccessDenied, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

// Upstream tags a failure from an external collaborator (PDF renderer,
// scraper, LLM). The stage name identifies where a pipeline aborted.
func Upstream(stage string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: stage + " failed", Err: err}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
