package busroutes

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EFETCH    = "fetch"
	EALIGN    = "misaligned"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("busroutes error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchError is returned when a page cannot be retrieved: the connection
// failed, the server answered with a non-200 status, or the body could not
// be read.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AlignmentError is returned when a destination block yields a different
// number of stop numbers than stop names. Such a block cannot be paired by
// position and is rejected.
type AlignmentError struct {
	Destination string
	Numbers     int
	Names       int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("destination %q: %d stop numbers but %d stop names", e.Destination, e.Numbers, e.Names)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return EFETCH
	}
	var ae *AlignmentError
	if errors.As(err, &ae) {
		return EALIGN
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	var ae *AlignmentError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	return "Internal error."
}

// AlignmentErrors returns every *AlignmentError in err, including those
// combined with errors.Join, in order.
func AlignmentErrors(err error) []*AlignmentError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var errs []*AlignmentError
		for _, e := range joined.Unwrap() {
			errs = append(errs, AlignmentErrors(e)...)
		}
		return errs
	}
	var ae *AlignmentError
	if errors.As(err, &ae) {
		return []*AlignmentError{ae}
	}
	return nil
}
