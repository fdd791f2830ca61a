package errs

import (
	"errors"
	"fmt"
)

// Transport error kinds. A TransportError always unwraps to exactly one of them.
var (
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrLoadFailed         = errors.New("load failed")
	ErrDeleteFailed       = errors.New("delete failed")
	ErrStatusChangeFailed = errors.New("status change failed")
)

// ErrServiceUnavailable marks a call refused locally because the backend is
// known to be down. It appears as the cause of a TransportError.
var ErrServiceUnavailable = errors.New("backend unavailable")

// TransportError wraps a network or backend failure of a single operation.
// The session state of the caller is unaffected; no retry is attempted.
type TransportError struct {
	Kind     error
	Resource string
	Cause    error
}

// NewSubmissionFailedError reports a rejected create or update of resource.
func NewSubmissionFailedError(resource string, cause error) *TransportError {
	return &TransportError{Kind: ErrSubmissionFailed, Resource: resource, Cause: cause}
}

// NewLoadFailedError reports a failed read of resource.
func NewLoadFailedError(resource string, cause error) *TransportError {
	return &TransportError{Kind: ErrLoadFailed, Resource: resource, Cause: cause}
}

// NewDeleteFailedError reports a failed delete of resource.
func NewDeleteFailedError(resource string, cause error) *TransportError {
	return &TransportError{Kind: ErrDeleteFailed, Resource: resource, Cause: cause}
}

// NewStatusChangeFailedError reports a failed status change of resource.
func NewStatusChangeFailedError(resource string, cause error) *TransportError {
	return &TransportError{Kind: ErrStatusChangeFailed, Resource: resource, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Kind, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Resource)
}

func (e *TransportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
