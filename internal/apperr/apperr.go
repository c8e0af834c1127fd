package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation     Kind = "validation"
	KindStorageCorrupt Kind = "storage_corrupt"
	KindSelection      Kind = "selection"
)

// Error is the application error carried across stores, planner and front ends.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can test
// errors.Is(err, apperr.ErrValidation).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrStorageCorrupt = &Error{Kind: KindStorageCorrupt}
	ErrSelection      = &Error{Kind: KindSelection}
)

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Selectionf(format string, args ...any) *Error {
	return &Error{Kind: KindSelection, Message: fmt.Sprintf(format, args...)}
}

// Corrupt reports a persisted document that could not be decoded.
func Corrupt(document string, err error) *Error {
	return &Error{Kind: KindStorageCorrupt, Message: "corrupt document " + document, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Status maps an error to the HTTP status the API answers with.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindSelection:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
