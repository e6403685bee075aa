package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent publishing failures.
var (
	// ErrPublishingFailed is the category every failed publish or unpublish
	// call belongs to. Match it with errors.Is; use errors.As with
	// RequestBuildError, TransportError or RemoteRejectionError to get details.
	ErrPublishingFailed = errors.New("publishing failed")

	// ErrInvalidChannel indicates the channel properties cannot address a server.
	ErrInvalidChannel = errors.New("invalid channel properties")

	// ErrDocumentUnavailable indicates the document content could not be read.
	ErrDocumentUnavailable = errors.New("document content unavailable")

	// ErrCredentials indicates the technical credentials could not be resolved.
	ErrCredentials = errors.New("credentials unavailable")
)

// RequestBuildError reports a request that could not be constructed:
// malformed host or port, undecryptable credentials, or unreadable content.
// It is not retryable for the same inputs.
type RequestBuildError struct {
	Op    string
	Cause error
}

func newBuildError(op string, cause error) *RequestBuildError {
	return &RequestBuildError{Op: op, Cause: cause}
}

// NewRequestBuildError creates a RequestBuildError for the given operation.
func NewRequestBuildError(op string, cause error) *RequestBuildError {
	return newBuildError(op, cause)
}

func (e *RequestBuildError) Error() string {
	return fmt.Sprintf("%s: build request: %v", e.Op, e.Cause)
}

func (e *RequestBuildError) Unwrap() error { return e.Cause }

// Is reports membership in the ErrPublishingFailed category.
func (e *RequestBuildError) Is(target error) bool { return target == ErrPublishingFailed }

// TransportError reports a request that was built but never produced a
// response: connection refused, I/O failure mid-transfer, cancelled context.
type TransportError struct {
	Op    string
	URL   string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// Is reports membership in the ErrPublishingFailed category.
func (e *TransportError) Is(target error) bool { return target == ErrPublishingFailed }

// RemoteRejectionError reports a response whose status differs from the
// single success code expected for the operation.
type RemoteRejectionError struct {
	Op         string
	URL        string
	StatusCode int
	Expected   int
	Reason     string
}

func (e *RemoteRejectionError) Error() string {
	return fmt.Sprintf("%s %s: server returned %d %s (expected %d)",
		e.Op, e.URL, e.StatusCode, e.Reason, e.Expected)
}

// Is reports membership in the ErrPublishingFailed category.
func (e *RemoteRejectionError) Is(target error) bool { return target == ErrPublishingFailed }

// IsRemoteRejection checks if the error is a non-success HTTP response.
func IsRemoteRejection(err error) bool {
	var rejection *RemoteRejectionError
	return errors.As(err, &rejection)
}

// IsTransportFailure checks if the error is a transport-level fault.
func IsTransportFailure(err error) bool {
	var transport *TransportError
	return errors.As(err, &transport)
}

// IsRequestBuildFailure checks if the error happened before anything was sent.
func IsRequestBuildFailure(err error) bool {
	var build *RequestBuildError
	return errors.As(err, &build)
}
