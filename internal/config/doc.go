// Package config handles configuration loading and merging for u8con.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--no-color, --debug, --code-page, --no-guard, -v)
//  2. Environment variables (U8CON_NO_COLOR, NO_COLOR, U8CON_DEBUG, U8CON_CODE_PAGE)
//  3. YAML config file (--config, .u8con.yaml in the working directory, or
//     $XDG_CONFIG_HOME/u8con/config.yaml)
//  4. Hardcoded defaults
//
// # Key Configuration Options
//
//   - NoColor: suppresses color escape sequences in demo output
//   - CodePage: overrides the process code page for encode and decode
//   - Guard: holds a console guard while the demo writes
//   - Palette: named RGB triples used by the demo
//
// # Environment Variables
//
//   - U8CON_NO_COLOR or NO_COLOR: set to "true" or "1" to disable colors
//   - U8CON_DEBUG: set to any non-empty value to enable debug logging
//   - U8CON_CODE_PAGE: a numeric code page such as 936
package config
