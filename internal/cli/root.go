// Package cli implements the cobra-based command line of product-fit.
//
// This file defines the root command, its flags, and the mapping from
// command errors to process exit codes. The check itself lives in check.go
// and result formatting in output.go.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/product-fit/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootOptions holds the values of the command's flags.
type rootOptions struct {
	// jsonOutput prints the result as a JSON FitReport on stdout.
	jsonOutput bool

	// yamlOutput prints the result as a YAML FitReport on stdout.
	yamlOutput bool

	// verbose enables debug logging on stderr.
	verbose bool
}

// NewRootCommand creates and configures the root cobra command.
// product-fit has no subcommands; the root command performs the check.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		// The first word also becomes the command name in --version output.
		Use:   "product-fit [flags] <product_height>",
		Short: "Check whether a product fits exactly in the packaging",
		Long: fmt.Sprintf(`product-fit checks whether a product of the given height fits exactly
in packaging of height %d, that is, whether the height evenly divides it.

The height must be a non-zero unsigned integer.

Examples:
  product-fit 25
  product-fit --json 3`, packagingHeight),

		// Args runs before RunE. A missing height is reported with the
		// CLI's own message instead of cobra's generic arity error.
		Args: productHeightArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them (text or JSON based on --json).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// RunE returns errors instead of exiting, so Execute can map them
		// to exit codes. args[0] is safe: productHeightArgs guarantees it.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0])
		},
	}

	rootCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Output in YAML format")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	// Only one structured format can be written to stdout.
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	// Flag parse errors (unknown flags, bad values) are usage errors and
	// share the exit code of the other invalid input cases.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitInvalidInput, "invalid command line", err)
	})

	return rootCmd
}

// productHeightArgs requires exactly one positional argument, the product
// height, and reports a missing argument with the CLI's own message.
func productHeightArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return model.NewCLIError(model.ExitInvalidInput, msgMissingArgument)
	case len(args) > 1:
		return model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("expected a single argument ('product_height'), got %d", len(args)))
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes. Any other error comes from
// cobra's command line validation (for example conflicting flags) and is
// treated as invalid input. Returning the code instead of calling os.Exit
// keeps the function usable from tests.
func Execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return int(model.ExitSuccess)
	}

	// The flag is always defined, even if parsing stopped before reaching it.
	jsonOutput, _ := rootCmd.Flags().GetBool("json")

	// errors.As also finds a CLIError wrapped by cobra or by our own code.
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(rootCmd.ErrOrStderr(), jsonOutput, cliErr.Message, cliErr.Err)
		return int(cliErr.Code)
	}

	printError(rootCmd.ErrOrStderr(), jsonOutput, err.Error(), nil)
	return int(model.ExitInvalidInput)
}

// printError writes an error message to w in the format selected by
// the --json flag. Text errors are a single line.
func printError(w io.Writer, jsonOutput bool, message string, underlying error) {
	if jsonOutput {
		// JSON errors go to stderr as well: stdout is reserved for the report.
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "%s: %v\n", message, underlying)
	} else {
		fmt.Fprintln(w, message)
	}
}
