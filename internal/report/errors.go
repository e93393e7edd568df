package report

import (
	"errors"
	"fmt"

	domainerrors "github.com/khanhnv2901/ssllint/internal/shared/errors"
)

// ParseError indicates the input is not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse report: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches ErrMalformedJSON.
func (e *ParseError) Is(target error) bool {
	return target == domainerrors.ErrMalformedJSON
}

// InputShapeError indicates well-formed JSON that does not describe exactly one report.
type InputShapeError struct {
	// Path is the location of the offending value, e.g. "endpoints[0].grade".
	Path   string
	Reason string
	Err    error
}

func (e *InputShapeError) Error() string {
	msg := "invalid report"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil && !errors.Is(e.Err, domainerrors.ErrMissingField) {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *InputShapeError) Unwrap() error { return e.Err }

// Is matches ErrInputShape.
func (e *InputShapeError) Is(target error) bool {
	return target == domainerrors.ErrInputShape
}

func missingField(path string) *InputShapeError {
	return &InputShapeError{
		Path:   path,
		Reason: "missing required field",
		Err:    domainerrors.ErrMissingField,
	}
}
