// Package apperr is the error taxonomy shared by services and handlers.
// Every service failure is one of these; handlers map Status straight to
// the HTTP response.
package apperr

import "net/http"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Status int          `json:"-"`
	Msg    string       `json:"message"`
	Fields []FieldError `json:"errors,omitempty"`
	Err    error        `json:"-"` // internal cause, logged but never serialized
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(fields ...FieldError) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: "validation failed", Fields: fields}
}

func BadRequest(msg string) *Error { return &Error{Status: http.StatusBadRequest, Msg: msg} }

func Unauthorized(msg string) *Error { return &Error{Status: http.StatusUnauthorized, Msg: msg} }

func Forbidden(msg string) *Error { return &Error{Status: http.StatusForbidden, Msg: msg} }

func NotFound(msg string) *Error { return &Error{Status: http.StatusNotFound, Msg: msg} }

// Conflict reports a uniqueness clash (duplicate email). The API surfaces
// it as 400, matching the rest of the validation family.
func Conflict(msg string) *Error { return &Error{Status: http.StatusBadRequest, Msg: msg} }

func Internal(msg string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Msg: msg, Err: err}
}
