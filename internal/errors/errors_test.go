package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/julianstephens/nyfont/internal/settings"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "plain error",
			err:      errors.New("failed to write storage: disk full"),
			expected: "Error: failed to write storage: disk full",
		},
		{
			name:     "unknown setting gets a hint",
			err:      &settings.FieldError{Key: "fontSize", Err: settings.ErrUnknownSetting},
			expected: "Error: fontSize: unknown setting\n  Run 'nyfont settings --keys' to list recognized settings.",
		},
		{
			name:     "uninitialized storage",
			err:      fmt.Errorf("failed to load: %w", errors.New("storage not initialized, run 'nyfont init' first")),
			expected: "Error: failed to load: storage not initialized, run 'nyfont init' first\n  Run 'nyfont init' first.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		empty bool
	}{
		{"wrapped not settable", fmt.Errorf("set: %w", &settings.FieldError{Key: "importedFonts", Err: settings.ErrNotSettable}), false},
		{"font exists", settings.ErrFontExists, false},
		{"font not found", fmt.Errorf("remove: %w", settings.ErrFontNotFound), false},
		{"rule not found", settings.ErrRuleNotFound, false},
		{"unrelated", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := Hint(tt.err)
			if (hint == "") != tt.empty {
				t.Errorf("Hint(%v) = %q, want empty=%v", tt.err, hint, tt.empty)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load %s from %s", "settings", "nyfont.db")
	want := "Error: failed to load settings from nyfont.db"
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(settings.ErrFontExists)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: font already imported") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: font already imported")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
