package main

import (
	"errors"
	"fmt"
)

// Error codes use the CATEGORY.SPECIFIC form.
const (
	ErrConfigInvalid   = "CONFIG.INVALID"
	ErrConfigOutputDir = "CONFIG.OUTPUT_DIR"
	ErrConfigNoInputs  = "CONFIG.NO_INPUTS"
	ErrInputRead       = "INPUT.READ_FAILED"
	ErrOutputWrite     = "OUTPUT.WRITE_FAILED"
	ErrRehydrate       = "REHYDRATE.CORRUPT"
	ErrReportFormat    = "REPORT.FORMAT_FAILED"
)

// AppError is an error with a machine-readable code.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates an AppError.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Is matches any AppError with the same code, so errors.Is can test for a code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// IsCode reports whether err's chain contains an AppError with code.
func IsCode(err error, code string) bool {
	return errors.Is(err, &AppError{Code: code})
}

// CorruptLineError describes a persisted line that no longer matches its kind's grammar.
type CorruptLineError struct {
	Kind Kind
	Path string
	Line int
	Text string
}

func (e *CorruptLineError) Error() string {
	return fmt.Sprintf("%s:%d: %q is not a valid %s value", e.Path, e.Line, e.Text, e.Kind)
}
