package main

import (
	"errors"
	"os/exec"
	"slices"
	"testing"

	"github.com/raphi011/switchback/internal/git"
	"github.com/raphi011/switchback/internal/menu"
)

func TestValidateArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no args", args: nil},
		{name: "count", args: []string{"10"}},
		{name: "zero count accepted", args: []string{"0"}},
		{name: "negative count accepted", args: []string{"-3"}},
		{name: "non-numeric", args: []string{"abc"}, wantErr: `invalid count "abc": expected a number`},
		{name: "two args", args: []string{"1", "2"}, wantErr: "too many arguments"},
		{name: "three args", args: []string{"a", "b", "c"}, wantErr: "too many arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateArgs(nil, tt.args)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateArgs(%v) = %v, want nil", tt.args, err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("validateArgs(%v) = %v, want %q", tt.args, err, tt.wantErr)
			}
			var uerr *usageError
			if !errors.As(err, &uerr) {
				t.Errorf("validateArgs(%v) error should be a usage error", tt.args)
			}
		})
	}
}

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "empty", args: nil, want: nil},
		{name: "positive count untouched", args: []string{"5"}, want: []string{"5"}},
		{name: "negative count gets separator", args: []string{"-3"}, want: []string{"--", "-3"}},
		{name: "flags before count stay flags", args: []string{"-v", "-3"}, want: []string{"-v", "--", "-3"}},
		{name: "existing separator untouched", args: []string{"--", "-3"}, want: []string{"--", "-3"}},
		{name: "flags untouched", args: []string{"-i"}, want: []string{"-i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeArgs(tt.args)
			if !slices.Equal(got, tt.want) {
				t.Errorf("normalizeArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

// Drives the real command through cobra to prove a negative count
// survives flag parsing and yields an empty menu, not a usage error.
// Not parallel: swaps package-level command state.
func TestRootCmd_NegativeCount(t *testing.T) {
	client := &fakeClient{reflog: testReflog}
	restoreClient := newClient
	newClient = func() git.Client { return client }
	defer func() {
		newClient = restoreClient
		rootCmd.SetArgs([]string{})
	}()

	rootCmd.SetArgs(normalizeArgs([]string{"-3"}))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute with count -3 = %v, want nil", err)
	}
	if len(client.checkedOut) != 0 {
		t.Errorf("checked out %v with count -3, want none", client.checkedOut)
	}
}

func TestExitStatus(t *testing.T) {
	t.Parallel()

	t.Run("usage error shows help and exits 129", func(t *testing.T) {
		t.Parallel()
		status, showHelp := exitStatus(&usageError{errors.New("too many arguments")})
		if status != exitUsage || !showHelp {
			t.Errorf("exitStatus = (%d, %v), want (%d, true)", status, showHelp, exitUsage)
		}
	})

	t.Run("not a number exits 129 without help", func(t *testing.T) {
		t.Parallel()
		status, showHelp := exitStatus(&menu.NotANumberError{Input: "abc"})
		if status != exitUsage || showHelp {
			t.Errorf("exitStatus = (%d, %v), want (%d, false)", status, showHelp, exitUsage)
		}
	})

	t.Run("out of range exits 129 without help", func(t *testing.T) {
		t.Parallel()
		status, showHelp := exitStatus(&menu.OutOfRangeError{Value: 7, Max: 3})
		if status != exitUsage || showHelp {
			t.Errorf("exitStatus = (%d, %v), want (%d, false)", status, showHelp, exitUsage)
		}
	})

	t.Run("checkout failure keeps git exit code", func(t *testing.T) {
		t.Parallel()
		cmd := exec.Command("sh", "-c", "exit 4")
		err := cmd.Run()
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("sh -c exit 4 returned %v, want *exec.ExitError", err)
		}
		status, showHelp := exitStatus(err)
		if status != 4 || showHelp {
			t.Errorf("exitStatus = (%d, %v), want (4, false)", status, showHelp)
		}
	})

	t.Run("other failures exit 1", func(t *testing.T) {
		t.Parallel()
		status, showHelp := exitStatus(errors.New("git reflog: fatal"))
		if status != 1 || showHelp {
			t.Errorf("exitStatus = (%d, %v), want (1, false)", status, showHelp)
		}
	})
}
