// Package errors is the project error type: a machine code, a caller-facing message
// and an optional field, mapped onto HTTP statuses at the transport edge.
//
// Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrorCode classifies an error. Values are part of the wire format, so new
// codes go at the end
type ErrorCode uint16

// Codes, in wire order
const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered handler panic
	ErrorCodeUnavailable                      // backend down, may come back
	ErrorCodeConflict                         // write lost against another
	ErrorCodeInvalidArgument                  // well-formed request, bad value
	ErrorCodeValidation                       // body broke a rule
	ErrorCodeJSON                             // body did not decode
	ErrorCodeNotFound                         // e.g. an unknown form type
	ErrorCodeDuplicateKey                     // unique constraint
	ErrorCodeDB                               // any other storage failure
)

var codeTable = [...]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeConflict:        {"conflict", http.StatusConflict},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeDuplicateKey:    {"duplicate_key", http.StatusConflict},
	ErrorCodeDB:              {"db", http.StatusInternalServerError},
}

// String is the code's log name, e.g. not_found
func (c ErrorCode) String() string {
	if int(c) < len(codeTable) {
		return codeTable[c].name
	}
	return "code(" + strconv.Itoa(int(c)) + ")"
}

// HTTPStatus maps c onto an HTTP status; unknown codes are 500
func (c ErrorCode) HTTPStatus() int {
	if int(c) < len(codeTable) {
		return codeTable[c].status
	}
	return http.StatusInternalServerError
}

// Error carries a code, a message and the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

// Wire is the error part of a response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.orig == nil:
		return e.msg
	}
	return e.msg + ": " + e.orig.Error()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending request field, if any
func (e *Error) Field() string { return e.field }

// WireFrom renders any error for the wire. The cause of an *Error stays server side
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the innermost cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// As finds the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns err's code, ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// HTTPStatus is the status err renders with
func HTTPStatus(err error) int { return CodeOf(err).HTTPStatus() }

// WithField returns a copy of err naming field. Foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// New returns an error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with formatting
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap classifies orig under code. A nil orig still yields an error
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{orig: orig, code: code, msg: msg}
}

// NotFoundf is Newf(ErrorCodeNotFound, ...)
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf is Newf(ErrorCodeInvalidArgument, ...)
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// JSONErrf is Newf(ErrorCodeJSON, ...)
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }
