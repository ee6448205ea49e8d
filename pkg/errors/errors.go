package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// CustomizedError carries a trace chain for logs and an i18n message key for
// the user-facing envelope; the raw cause never leaves the process.
type CustomizedError struct {
	cause   error
	message string
	trace   []string
	wrap    error
	code    int
}

func New(trace, message string, err error) *CustomizedError {
	return &CustomizedError{
		cause:   err,
		message: message,
		trace:   []string{trace},
		code:    http.StatusInternalServerError,
	}
}

func (e *CustomizedError) Code(c int) *CustomizedError {
	e.code = c
	return e
}

func (e *CustomizedError) GetCode() int {
	return e.code
}

func (e *CustomizedError) Trace(trace string) *CustomizedError {
	e.trace = append(e.trace, trace)
	return e
}

func Wrap(err error, trace, message string) *CustomizedError {
	ce := &CustomizedError{
		cause:   err,
		message: message,
		trace:   []string{trace},
		wrap:    err,
		code:    http.StatusInternalServerError,
	}
	if income, ok := err.(*CustomizedError); ok {
		ce.code = income.code
	}
	return ce
}

func Trace(trace string, err error) *CustomizedError {
	if ce, ok := err.(*CustomizedError); ok {
		ce.trace = append(ce.trace, trace)
		return ce
	}
	return Wrap(err, trace, err.Error())
}

// Message returns the i18n key (or the cause text when no key was set).
func (e *CustomizedError) Message() string {
	if e.message == "" && e.cause != nil {
		return e.cause.Error()
	}
	return e.message
}

func (e *CustomizedError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = e.cause.Error()
	}
	return fmt.Sprintf("trace: %s, message: %s, cause: %q", strings.Join(e.trace, " <- "), e.message, cause)
}

func (e *CustomizedError) Unwrap() error {
	return e.wrap
}

// Code extracts the http status carried by err; plain errors count as 500.
func Code(err error) int {
	if ce, ok := err.(*CustomizedError); ok {
		return ce.GetCode()
	}
	return http.StatusInternalServerError
}
