package main

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/raphi011/switchback/internal/git"
	"github.com/raphi011/switchback/internal/menu"
	"github.com/raphi011/switchback/internal/output"
	"github.com/raphi011/switchback/internal/reflog"
	"github.com/raphi011/switchback/internal/ui/picker"
	"github.com/raphi011/switchback/internal/ui/styles"
)

// runOptions carries the per-invocation settings into the pipeline.
type runOptions struct {
	stdin       io.Reader
	theme       styles.Theme
	interactive bool
	copyName    bool

	// pick overrides the interactive picker, for tests.
	pick func(branches []string, th styles.Theme) (picker.Result, error)

	// copyText overrides the clipboard write, for tests.
	copyText func(text string) error
}

// run executes the whole pipeline: reflog → recent branches → menu →
// selection → checkout. Cancellation and an empty menu are clean
// successes; every failure aborts the remaining stages.
func run(ctx context.Context, client git.Client, count int, opts runOptions) error {
	out := output.FromContext(ctx)

	text, err := client.Reflog(ctx)
	if err != nil {
		return err
	}

	branches := reflog.Recent(text, count)
	if len(branches) == 0 {
		out.Println("No branches.")
		return nil
	}

	branch, cancelled, err := choose(branches, count, out, opts)
	if err != nil || cancelled {
		return err
	}

	if opts.copyName {
		copyText := opts.copyText
		if copyText == nil {
			copyText = clipboard.WriteAll
		}
		if err := copyText(branch); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		out.Println(branch)
		return nil
	}

	out.Printf("git checkout %s\n", branch)
	return client.Checkout(ctx, branch)
}

// choose resolves one branch from the list, via the numbered menu or
// the interactive picker.
func choose(branches []string, count int, out *output.Printer, opts runOptions) (branch string, cancelled bool, err error) {
	if opts.interactive {
		pick := opts.pick
		if pick == nil {
			pick = picker.Pick
		}
		res, err := pick(branches, opts.theme)
		if err != nil {
			return "", false, err
		}
		if res.Cancelled {
			return "", true, nil
		}
		return res.Branch, false, nil
	}

	menu.Render(out.Writer(), branches, count, opts.theme)
	sel, err := menu.Prompt(out.Writer(), opts.stdin, len(branches), opts.theme)
	if err != nil {
		return "", false, err
	}
	if sel.Cancelled {
		return "", true, nil
	}
	return branches[sel.Index], false, nil
}
