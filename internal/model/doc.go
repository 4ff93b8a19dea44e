// Package model defines the result and error types shared by the
// product-fit CLI.
//
// It holds the exit codes (ExitCode), a custom error type (CLIError) that
// carries an exit code for proper OS process exit handling, and FitReport,
// the structured result printed in JSON and YAML modes.
package model
