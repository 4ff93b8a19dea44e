package model

import (
	"fmt"
)

// FitReport is the structured result of a packaging check.
// It is printed as-is when the CLI runs with --json or --yaml.
type FitReport struct {
	// Height is the validated product height. Always non-zero.
	Height uint32 `json:"height" yaml:"height"`

	// PackagingHeight is the height of the packaging the product was checked against.
	PackagingHeight uint32 `json:"packagingHeight" yaml:"packagingHeight"`

	// Fits is true when Height evenly divides PackagingHeight.
	Fits bool `json:"fits" yaml:"fits"`
}

// Message returns the one-line human-readable verdict for the report.
// Text mode prints it on stdout when the product fits and on stderr
// when it does not.
func (r FitReport) Message() string {
	if r.Fits {
		return "product fits in packaging"
	}
	return "product does not fit in packaging"
}

// ExitCode defines the process exit codes of the CLI.
// A product that does not fit is a valid answer, not a failure,
// so it exits with ExitSuccess.
type ExitCode int

const (
	// ExitSuccess indicates the check ran, whatever its verdict.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates the product height argument was missing,
	// malformed, or zero, or the command line was otherwise unusable.
	// It matches the conventional exit code for command line usage errors.
	ExitInvalidInput ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
