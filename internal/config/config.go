package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/u8con/internal/logging"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigFile string
	NoColor    bool
	Debug      bool
	Verbosity  int
	CodePage   uint32
	NoGuard    bool

	// Flags to track if they were explicitly set by the user
	NoColorSet   bool
	DebugSet     bool
	VerbositySet bool
	CodePageSet  bool
	NoGuardSet   bool
}

// RGB is a color as a YAML sequence: [86, 146, 118].
type RGB [3]int

// AppConfig represents the contents of the config file.
type AppConfig struct {
	NoColor   bool           `yaml:"no_color"`
	Debug     bool           `yaml:"debug"`
	Verbosity int            `yaml:"verbosity"`
	CodePage  uint32         `yaml:"code_page,omitempty"` // 0 uses the system code page
	Guard     *bool          `yaml:"guard,omitempty"`
	Palette   map[string]RGB `yaml:"palette,omitempty"`
}

// Constants for file locations.
const (
	LocalConfigName = ".u8con.yaml"
	AppDirName      = "u8con"
	XDGConfigName   = "config.yaml"
)

// DefaultPalette is the demo palette when the config file defines none.
func DefaultPalette() map[string]RGB {
	return map[string]RGB{
		"green": {86, 146, 118},
		"gold":  {182, 185, 98},
		"red":   {255, 0, 0},
		"blue":  {38, 139, 210},
	}
}

// LoadConfig reads the config file at path, or the first one found by
// getConfigPath when path is empty. A missing file yields the defaults; a
// file that exists but cannot be read or parsed is an error.
func LoadConfig(path string) (*AppConfig, string, error) {
	log := logging.For("config")
	appCfg := &AppConfig{Palette: DefaultPalette()}

	if path == "" {
		path = getConfigPath()
	}
	if path == "" {
		log.Debug().Msg("no config file found, using defaults")
		return appCfg, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", path).Msg("config file not found, using defaults")
			return appCfg, "", nil
		}
		return nil, path, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, path, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	appCfg.NoColor = fileCfg.NoColor
	appCfg.Debug = fileCfg.Debug
	appCfg.Verbosity = fileCfg.Verbosity
	appCfg.CodePage = fileCfg.CodePage
	appCfg.Guard = fileCfg.Guard
	for name, c := range fileCfg.Palette {
		appCfg.Palette[name] = c
	}

	log.Debug().Str("path", path).Int("palette", len(appCfg.Palette)).Msg("config loaded")
	return appCfg, path, nil
}

// getConfigPath finds the config file: local directory first, then the XDG
// config home.
func getConfigPath() string {
	if _, err := os.Stat(LocalConfigName); err == nil {
		return LocalConfigName
	}
	if xdg.ConfigHome == "" {
		return ""
	}
	xdgPath := filepath.Join(xdg.ConfigHome, AppDirName, XDGConfigName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
