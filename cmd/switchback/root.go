package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"regexp"
	"strconv"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/switchback/internal/git"
	"github.com/raphi011/switchback/internal/log"
	"github.com/raphi011/switchback/internal/menu"
	"github.com/raphi011/switchback/internal/output"
	"github.com/raphi011/switchback/internal/ui/styles"
)

// defaultCount is how many recent branches are shown without an argument.
const defaultCount = 5

// exitUsage is the exit status for malformed arguments and malformed
// interactive input.
const exitUsage = 129

var (
	// Global flags
	verbose     bool
	quiet       bool
	interactive bool
	copyName    bool
	noColor     bool
)

// newClient builds the git client used by the root command; tests swap
// it for a fake.
var newClient = func() git.Client { return git.CLI{} }

// usageError marks an error as a usage problem: its message is followed
// by the full help text and the process exits with exitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   "switchback [count]",
	Short: "Check out a recently used git branch",
	Long: `switchback lists your most recently checked-out git branches and
checks out the one you pick.

It reads the reflog for "checkout: moving from A to B" entries, keeps
the first occurrence of each destination branch, and shows up to
<count> of them (default 5) as a numbered menu. Enter a number to
check the branch out; enter nothing (or q, quit, exit) to cancel.`,
	Example: `  switchback        # pick from the 5 most recent branches
  switchback 10     # show up to 10
  switchback -i     # fuzzy interactive picker
  switchback -y     # copy the branch name instead of checking out`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          validateArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return &usageError{errors.New("--verbose and --quiet are mutually exclusive")}
		}
		// Flags are parsed by now, so the logger can honor them.
		cmd.SetContext(newContext(cmd.Context()))
		return git.Check()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		count := defaultCount
		if len(args) == 1 {
			// Already validated; ≤0 is permitted and yields an
			// empty menu.
			count, _ = strconv.Atoi(args[0])
		}

		theme := styles.Detect(os.Stdout, noColor)
		return run(cmd.Context(), newClient(), count, runOptions{
			stdin:       os.Stdin,
			theme:       theme,
			interactive: interactive,
			copyName:    copyName,
		})
	},
}

// validateArgs enforces the positional grammar: at most one argument,
// and that argument must be an integer count.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return &usageError{errors.New("too many arguments")}
	}
	if len(args) == 1 {
		if _, err := strconv.Atoi(args[0]); err != nil {
			return &usageError{fmt.Errorf("invalid count %q: expected a number", args[0])}
		}
	}
	return nil
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// normalizeArgs lets a negative count argument through flag parsing.
// pflag would read -3 as an unknown shorthand flag, so the first
// argument that looks like a negative number gets a -- separator
// inserted before it; a count of -3 then reaches the positional
// grammar and yields an empty menu like any other non-positive count.
func normalizeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if negativeNumber.MatchString(arg) {
			normalized := make([]string, 0, len(args)+1)
			normalized = append(normalized, args[:i]...)
			normalized = append(normalized, "--")
			normalized = append(normalized, args[i:]...)
			return normalized
		}
	}
	return args
}

// printHelp writes the full help text.
func printHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprint(out, cmd.UsageString())
}

// exitStatus classifies an error from the pipeline into a process exit
// status and whether the help text should follow the message.
func exitStatus(err error) (status int, showHelp bool) {
	var uerr *usageError
	if errors.As(err, &uerr) {
		return exitUsage, true
	}

	var nan *menu.NotANumberError
	var oor *menu.OutOfRangeError
	if errors.As(err, &nan) || errors.As(err, &oor) {
		return exitUsage, false
	}

	// Checkout failures keep git's own exit code.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), false
	}

	return 1, false
}

// Execute runs the root command and maps errors to exit statuses.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	rootCmd.SetContext(ctx)
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		status, showHelp := exitStatus(err)
		if showHelp {
			fmt.Fprintln(os.Stderr)
			rootCmd.SetOut(os.Stderr)
			printHelp(rootCmd)
		}
		cancel()
		os.Exit(status)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick with a fuzzy-filterable list instead of the numbered menu")
	rootCmd.Flags().BoolVarP(&copyName, "copy", "y", false, "Copy the selected branch name to the clipboard instead of checking out")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic output")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Flag parse failures are usage errors (message + help, exit 129).
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	// -h combined with other arguments is "too many arguments", not
	// help. Plain -h/--help renders help and exits 0.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if rest := cmd.Flags().Args(); len(rest) > 0 {
			fmt.Fprintln(os.Stderr, "Error: too many arguments")
			fmt.Fprintln(os.Stderr)
			cmd.SetOut(os.Stderr)
			printHelp(cmd)
			os.Exit(exitUsage)
		}
		printHelp(cmd)
	})
}

// newContext attaches the logger (stderr) and the printer (stdout,
// downgrading colors to the terminal's capability) to the context.
func newContext(parent context.Context) context.Context {
	logger := log.New(os.Stderr, verbose, quiet)
	ctx := log.WithLogger(parent, logger)

	stdout := colorprofile.NewWriter(os.Stdout, os.Environ())
	return output.WithPrinter(ctx, stdout)
}
