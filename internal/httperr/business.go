package httperr

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidArgument     = "invalid_argument"
	CodeNotFound            = "not_found"
	CodeConstraintViolation = "constraint_violation"
	CodeConnection          = "connection_error"
)

// BusinessError carries a stable code for callers and, optionally, the
// driver error that caused it.
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e BusinessError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func New(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func Wrap(code string, err error) error {
	return BusinessError{Code: code, Err: err}
}

func InvalidArgument(message string) error {
	return New(CodeInvalidArgument, message)
}

func NotFoundError(message string) error {
	return New(CodeNotFound, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code of err, or "" for unclassified errors.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
