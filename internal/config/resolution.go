package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/u8con/pkg/codepage"
)

// ResolvedConfig holds the final configuration after applying all priority
// rules.
type ResolvedConfig struct {
	NoColor   bool
	Debug     bool
	Verbosity int
	CodePage  codepage.CodePage // 0 means the system code page
	Guard     bool
	Palette   map[string]RGB

	// Resolution metadata, reported by `u8con info`
	Path           string // config file used, "" when none
	NoColorSource  string // "cli", "env", "file", "default"
	CodePageSource string // "cli", "env", "file", "default"
}

// ResolveConfig resolves configuration from all sources with explicit
// priority order: CLI > environment > file > defaults.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg, path, err := LoadConfig(cliFlags.ConfigFile)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		NoColor:        appCfg.NoColor,
		Debug:          appCfg.Debug,
		Verbosity:      appCfg.Verbosity,
		CodePage:       codepage.CodePage(appCfg.CodePage),
		Guard:          appCfg.Guard == nil || *appCfg.Guard,
		Palette:        appCfg.Palette,
		Path:           path,
		NoColorSource:  "default",
		CodePageSource: "default",
	}
	if path != "" {
		resolved.NoColorSource = "file"
		if appCfg.CodePage != 0 {
			resolved.CodePageSource = "file"
		}
	}

	// NoColor: CLI > ENV > file > default
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = "cli"
	} else if envNoColor := getEnvBool("U8CON_NO_COLOR", "NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
		resolved.NoColorSource = "env"
	}

	// Debug: CLI > ENV > file > default
	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
	} else if os.Getenv("U8CON_DEBUG") != "" {
		resolved.Debug = true
	}

	// CodePage: CLI > ENV > file > default
	if cliFlags.CodePageSet {
		resolved.CodePage = codepage.CodePage(cliFlags.CodePage)
		resolved.CodePageSource = "cli"
	} else if env := os.Getenv("U8CON_CODE_PAGE"); env != "" {
		cp, err := strconv.ParseUint(env, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid U8CON_CODE_PAGE %q: %w", env, err)
		}
		resolved.CodePage = codepage.CodePage(cp)
		resolved.CodePageSource = "env"
	}

	if cliFlags.VerbositySet {
		resolved.Verbosity = cliFlags.Verbosity
	}
	if cliFlags.NoGuardSet {
		resolved.Guard = !cliFlags.NoGuard
	}

	// Debug implies at least debug-level logging
	if resolved.Debug && resolved.Verbosity < 2 {
		resolved.Verbosity = 2
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// Codec returns the codec for the resolved code page.
func (c *ResolvedConfig) Codec() *codepage.Codec {
	if c.CodePage == 0 {
		return codepage.Default()
	}
	return codepage.New(c.CodePage, codepage.SystemConverter())
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validateResolvedConfig returns an error for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got: %d", cfg.Verbosity)
	}
	if cfg.CodePage != 0 {
		if _, ok := cfg.CodePage.Encoding(); !ok {
			return fmt.Errorf("unsupported code page: %d", uint32(cfg.CodePage))
		}
	}
	return nil
}
