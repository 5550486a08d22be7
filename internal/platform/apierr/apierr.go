package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Internal tags err as a server-side failure with the given code.
func Internal(code string, err error) *Error {
	return New(http.StatusInternalServerError, code, err)
}

// StatusOf unwraps err to the nearest *Error. Anything untyped is a 500 with
// the fallback code.
func StatusOf(err error, fallbackCode string) (int, string) {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := ae.Code
		if code == "" {
			code = fallbackCode
		}
		return status, code
	}
	return http.StatusInternalServerError, fallbackCode
}
