// Package main provides the viewfmt command line tool.
//
// Usage:
//
//	viewfmt fmt [path...]        Format .view files in place
//	viewfmt config init [path]   Write a viewfmt.toml with the defaults
//	viewfmt config show          Print the effective settings
//	viewfmt version              Print version information
//
// Examples:
//
//	viewfmt fmt ./...            Recursively format all .view files
//	viewfmt fmt --check ./...    Check formatting without modifying
//	viewfmt fmt --stdout a.view  Print formatted output to stdout
//	cat a.view | viewfmt fmt     Format standard input
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/internal/log"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitInternal = 3
)

func newRootCmd() *cobra.Command {
	var (
		verbosity int
		logJSON   bool
	)

	root := &cobra.Command{
		Use:   "viewfmt",
		Short: "Formatter for .view templates",
		Long: `viewfmt formats .view templates: JSX-like markup with embedded Go expressions.

Settings are read from viewfmt.toml (searched upwards from the working
directory), then VIEWFMT_* environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(log.Options{Verbosity: verbosity, JSON: logJSON, Output: cmd.ErrOrStderr()})
			log.Debugf("viewfmt %s %s", version, cmd.CommandPath())
		},
	}

	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	root.PersistentFlags().String("config", "", "path to a viewfmt.toml (default: search upwards)")

	root.AddCommand(newFmtCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	log.Sync()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	reportError(stderr, err)
	return exitCode(err)
}

// exitCode maps an error to the process exit code: internal formatter
// defects exit with 3, everything else with 1.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.HasAssertionFailure(err):
		return exitInternal
	default:
		return exitError
	}
}

// reportError prints err and its hints.
func reportError(w io.Writer, err error) {
	if errors.HasAssertionFailure(err) {
		fmt.Fprintf(w, "%s: %s\n", errColor.Sprint("internal error"), err)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", errColor.Sprint("error"), err)
	printHint(w, "", err)
}

// printHint prints the hints attached to err, if any. Assertion failures
// carry a generic hint that is not shown.
func printHint(w io.Writer, indent string, err error) {
	if errors.HasAssertionFailure(err) {
		return
	}
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "%s%s %s\n", indent, hintColor.Sprint("hint:"), hint)
	}
}
