// Package main is the entry point for the product-fit CLI.
//
// It delegates all functionality to the internal/cli package and exits
// with the code that package returns.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"os"

	"github.com/shinji-kodama/product-fit/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	os.Exit(cli.Execute(rootCmd))
}
