package version

import (
	"fmt"
	"runtime"
)

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("u8con %s (%s, built %s, %s/%s)", Version, CommitHash, BuildDate, runtime.GOOS, runtime.GOARCH)
}
