package cli

import (
	"errors"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/product-fit/internal/model"
	"github.com/shinji-kodama/product-fit/internal/packaging"
)

// packagingHeight is packaging.PackagingHeight as reported in FitReport.
const packagingHeight uint32 = packaging.PackagingHeight

// Messages for invalid product height arguments.
const (
	msgMissingArgument = "provide an integer as the first argument ('product_height') to this sample app"
	msgNotInteger      = "first argument ('product_height') must be an integer"
	msgZeroHeight      = "first argument ('product_height') must be non-zero"
)

// runCheck parses the product height, checks it against the packaging and
// prints the verdict.
func runCheck(cmd *cobra.Command, opts *rootOptions, rawHeight string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	height, err := parseProductHeight(rawHeight)
	if err != nil {
		logger.Debug("rejected product height", "raw", rawHeight, "err", err)
		return err
	}
	logger.Debug("validated product height", "height", height)

	report := model.FitReport{
		Height:          height.Value(),
		PackagingHeight: packagingHeight,
		Fits:            packaging.Fits(height),
	}
	logger.Debug("checked packaging fit",
		"height", report.Height,
		"packagingHeight", report.PackagingHeight,
		"fits", report.Fits)

	return printReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, report)
}

// parseProductHeight turns the raw argument into a validated Height.
// Negative numbers and values above the uint32 range are malformed input.
func parseProductHeight(raw string) (packaging.Height, error) {
	candidate, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		// Report "invalid syntax" or "value out of range" rather than the
		// full strconv message, which repeats the input.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return packaging.Height{}, model.WrapCLIError(model.ExitInvalidInput, msgNotInteger, err)
	}

	height, err := packaging.NewHeight(uint32(candidate))
	if err != nil {
		return packaging.Height{}, model.NewCLIError(model.ExitInvalidInput, msgZeroHeight)
	}
	return height, nil
}

// newLogger returns the logger used for --verbose output.
// Without --verbose only warnings and errors are shown.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "product-fit",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
