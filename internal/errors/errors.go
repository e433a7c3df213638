package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/reboot/internal/logger"
)

const (
	ExitFailure = 1
	ExitUsage   = 2
)

var exitFunc = os.Exit

// InputError reports a flag or argument the user got wrong. Fatal exits
// with ExitUsage for it and points at --help.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds an InputError for field.
func Invalid(field, format string, args ...interface{}) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalid reports whether err wraps an InputError.
func IsInvalid(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsInvalid(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Fatal logs err, prints it to stderr and exits. Input errors get a usage
// hint and ExitUsage.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err, "invalid_input", IsInvalid(err))
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	if IsInvalid(err) {
		fmt.Fprintln(os.Stderr, "Run 'reboot --help' for usage.")
	}
	exitFunc(ExitCode(err))
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	exitFunc(ExitFailure)
}
