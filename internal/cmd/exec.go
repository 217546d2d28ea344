// Package cmd provides helpers for executing external commands with
// proper error handling and verbose logging.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/raphi011/switchback/internal/log"
)

// Run executes a command, discarding stdout. If the command fails and
// wrote to stderr, the stderr text becomes the error message.
func Run(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr

	err := c.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return stderrError(err, &stderr)
	}
	return nil
}

// Output executes a command and returns its stdout. If the command
// fails and wrote to stderr, the stderr text becomes the error message.
func Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, stderrError(err, &stderr)
	}
	return out, nil
}

// Interactive executes a command wired to the caller's terminal: the
// child inherits stdin, stdout and stderr. The returned error is the
// raw exec error, so a non-zero exit surfaces as *exec.ExitError and
// the child's exit code stays observable.
func Interactive(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func stderrError(err error, stderr *bytes.Buffer) error {
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
