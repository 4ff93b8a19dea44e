package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/product-fit/internal/model"
)

// printReport writes the verdict in the format selected by the flags.
//
// In text mode a product that fits is reported on stdout and one that does
// not fit on stderr. Structured modes always write the full report to stdout.
func printReport(stdout, stderr io.Writer, opts *rootOptions, report model.FitReport) error {
	switch {
	case opts.jsonOutput:
		return printReportJSON(stdout, report)
	case opts.yamlOutput:
		return printReportYAML(stdout, report)
	default:
		printReportText(stdout, stderr, report)
		return nil
	}
}

func printReportJSON(w io.Writer, report model.FitReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode report as JSON", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printReportYAML(w io.Writer, report model.FitReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode report as YAML", err)
	}
	if err := enc.Close(); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode report as YAML", err)
	}
	return nil
}

func printReportText(stdout, stderr io.Writer, report model.FitReport) {
	if report.Fits {
		fmt.Fprintln(stdout, report.Message())
		return
	}
	fmt.Fprintln(stderr, report.Message())
}
