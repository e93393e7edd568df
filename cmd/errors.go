package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domainerrors "github.com/khanhnv2901/ssllint/internal/shared/errors"
)

// Process exit statuses.
const (
	exitOK        = 0
	exitViolation = 1
	exitUsage     = 2
	exitInput     = 3
)

// UsageError indicates a malformed command line, such as a missing report argument.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Is matches ErrUsage.
func (e *UsageError) Is(target error) bool {
	return target == domainerrors.ErrUsage
}

// exactArgs behaves like cobra.ExactArgs but reports a UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case len(args) == 0:
			return &UsageError{Msg: "please provide the JSON file to read"}
		case len(args) != n:
			return &UsageError{Msg: fmt.Sprintf("expected exactly %d JSON file argument, got %d", n, len(args))}
		}
		return nil
	}
}

// rootArgs requires the report argument unless an informational flag was given,
// in which case no argument is allowed.
func rootArgs(cmd *cobra.Command, args []string) error {
	if showPolicy || showVersion {
		if len(args) > 0 {
			return &UsageError{Msg: fmt.Sprintf("--print-policy and --version take no JSON file argument, got %d", len(args))}
		}
		return nil
	}
	return exactArgs(1)(cmd, args)
}

func usageFlagError(_ *cobra.Command, err error) error {
	return &UsageError{Msg: err.Error()}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domainerrors.ErrUsage):
		return exitUsage
	case errors.Is(err, domainerrors.ErrPolicyViolation), errors.Is(err, domainerrors.ErrSuiteGroupNotFound):
		return exitViolation
	default:
		return exitInput
	}
}
