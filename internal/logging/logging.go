// Package logging holds the zerolog logger shared by the u8con packages.
//
// Library code stays silent until a host installs a logger with Set; the
// CLI does that through Setup.
package logging

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var base atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	base.Store(&nop)
}

// Set installs l as the logger used by every component.
func Set(l zerolog.Logger) {
	base.Store(&l)
}

// For returns the shared logger tagged with a component name.
func For(component string) zerolog.Logger {
	return base.Load().With().Str("component", component).Logger()
}

// Setup configures a human-readable logger on w. Verbosity maps like the
// -v flag: 0 warn, 1 info, 2 debug, 3+ trace.
func Setup(verbosity int, w io.Writer, noColor bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 3:
		level = zerolog.TraceLevel
	case verbosity == 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}

	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
	l := zerolog.New(console).Level(level).With().Timestamp().Logger()
	if verbosity >= 2 {
		l = l.With().Caller().Logger()
	}
	Set(l)
	return l
}
