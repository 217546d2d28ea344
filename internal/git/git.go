// Package git runs git commands for switchback.
//
// The real implementation shells out to the git binary so that checkout
// behaves exactly as it would on the command line, including git's own
// output and exit code. Commands depend on the Client interface and are
// tested against a fake.
package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/raphi011/switchback/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// Client is the subset of git operations switchback needs.
type Client interface {
	// Reflog returns the full textual output of `git reflog`.
	Reflog(ctx context.Context) (string, error)

	// Checkout switches the working tree to branch. The child process
	// inherits the terminal, so git's own messages appear directly and
	// a non-zero exit surfaces as *exec.ExitError.
	Checkout(ctx context.Context, branch string) error
}

// CLI is a Client backed by the git binary on PATH.
type CLI struct {
	// Dir is the repository directory. Empty means the current
	// working directory.
	Dir string
}

var _ Client = CLI{}

// Reflog runs `git reflog` and returns its stdout.
func (c CLI) Reflog(ctx context.Context) (string, error) {
	out, err := cmd.Output(ctx, c.Dir, "git", "reflog")
	if err != nil {
		return "", fmt.Errorf("git reflog: %w", err)
	}
	return string(out), nil
}

// Checkout runs `git checkout <branch>` wired to the caller's terminal.
func (c CLI) Checkout(ctx context.Context, branch string) error {
	return cmd.Interactive(ctx, c.Dir, "git", "checkout", branch)
}

// Check verifies that git is available in PATH.
func Check() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}
