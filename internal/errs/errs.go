// Package errs defines the error taxonomy shared by every binaccess
// package: a small status enumeration plus a context-wrapping error
// type that preserves the underlying cause for errors.Is/As.
package errs

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Status classifies why an accessor operation failed.
type Status int

const (
	// Ok is not normally wrapped into an error; it exists so Status
	// has a defined zero value distinct from "unset".
	Ok Status = iota
	InvalidParameter
	BeyondEnd
	OutOfMemory
	HostError
	OpenError
	InvalidReadData
	WriteError
	ReadOnlyError
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case InvalidParameter:
		return "invalid parameter"
	case BeyondEnd:
		return "beyond end"
	case OutOfMemory:
		return "out of memory"
	case HostError:
		return "host error"
	case OpenError:
		return "open error"
	case InvalidReadData:
		return "invalid read data"
	case WriteError:
		return "write error"
	case ReadOnlyError:
		return "read only"
	default:
		return "unknown status"
	}
}

// AccessError is the structured error type returned by every
// operation in this module. It carries a Context string describing
// what was being attempted, the Status classifying the failure, and
// an optional wrapped Cause.
type AccessError struct {
	Context string
	Status  Status
	Cause   error
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Context, e.Status)
	}
	return fmt.Sprintf("%s: %s: %v", e.Context, e.Status, e.Cause)
}

// Unwrap provides compatibility with errors.Unwrap/Is/As.
func (e *AccessError) Unwrap() error {
	return e.Cause
}

// New creates an AccessError with no wrapped cause.
func New(context string, status Status) error {
	return &AccessError{Context: context, Status: status}
}

// Wrap creates an AccessError wrapping cause under the given status.
// Returns nil if cause is nil, so call sites can write
// `return errs.Wrap(...)` directly after a fallible call.
func Wrap(context string, status Status, cause error) error {
	if cause == nil {
		return nil
	}
	return &AccessError{Context: context, Status: status, Cause: cause}
}

// WrapHost wraps an operating-system call failure (open, read, mmap,
// ...) with xerrors so the frame where the OS call failed is kept in
// the formatted error, then classifies it as HostError.
func WrapHost(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &AccessError{
		Context: context,
		Status:  HostError,
		Cause:   xerrors.Errorf("%s: %w", context, cause),
	}
}

// StatusOf extracts the Status of err if it is (or wraps) an
// *AccessError, otherwise reports Ok, false.
func StatusOf(err error) (Status, bool) {
	var ae *AccessError
	if xerrors.As(err, &ae) {
		return ae.Status, true
	}
	return Ok, false
}
