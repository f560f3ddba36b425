package magetasks

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and platform-specific string fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	// Fallback string matching for edge cases
	errStr := err.Error()
	if strings.Contains(errStr, "executable file not found") {
		return true
	}
	if strings.Contains(errStr, "no such file or directory") {
		return true
	}
	return false
}

// Run prints a label and runs cmd with its output attached to the
// terminal.
func Run(label, cmd string, args ...string) error {
	PrintInfo(label)
	return sh.RunV(cmd, args...)
}

// RunWith is Run with extra environment variables.
func RunWith(env map[string]string, label, cmd string, args ...string) error {
	PrintInfo(label)
	return sh.RunWithV(env, cmd, args...)
}
