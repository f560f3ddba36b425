package magetasks

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// BuildAll builds the u8con binary for the host.
func BuildAll() error {
	PrintH2Header("Build")

	if err := Run("Building u8con...", "go", "build", "-ldflags", ldflags(), "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// BuildWindows cross-compiles for windows/amd64, where the console code
// paths are real rather than no-ops.
func BuildWindows() error {
	PrintH2Header("Build (windows)")

	out := BinPath + ".exe"
	env := map[string]string{"GOOS": "windows", "GOARCH": "amd64"}
	if err := RunWith(env, "Cross-compiling u8con...", "go", "build", "-ldflags", ldflags(), "-o", out, MainPackage); err != nil {
		PrintError("Windows build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", out))
	return nil
}

// Clean removes build artifacts
func Clean() error {
	PrintH2Header("Clean")

	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	_ = sh.Run("go", "clean", "-cache")

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func ldflags() string {
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		ModulePath, getGitVersion(), ModulePath, getGitCommit(), ModulePath, date)
}

func getGitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func getGitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
