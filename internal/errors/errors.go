package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/nyfont/internal/logger"
	"github.com/julianstephens/nyfont/internal/settings"
)

// Format formats an error message with a consistent "Error: " prefix, followed by a hint
// line when the error is one the user can fix from the command line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\n  " + hint
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a one-line suggestion for settings errors, or "".
func Hint(err error) string {
	switch {
	case stderrors.Is(err, settings.ErrUnknownSetting):
		return "Run 'nyfont settings --keys' to list recognized settings."
	case stderrors.Is(err, settings.ErrNotSettable):
		return "Use 'nyfont fonts' or 'nyfont locale' to manage lists; presetsVersion is managed by migration."
	case stderrors.Is(err, settings.ErrFontExists):
		return "Fonts are matched by id or family; remove the existing entry first."
	case stderrors.Is(err, settings.ErrFontNotFound), stderrors.Is(err, settings.ErrRuleNotFound):
		return "Pass an id or name exactly as shown by the list command."
	}
	if strings.Contains(err.Error(), "storage not initialized") {
		return "Run 'nyfont init' first."
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
