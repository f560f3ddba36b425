// Package u8con exposes process-wide UTF-8 views of the standard streams.
//
// Stdout and Stderr accept UTF-8 and write the active code page; Stdin reads
// the active code page and yields UTF-8; Wide writes UTF-16 to the console.
// Each is created on first use and shared for the life of the process, so
// writes through them interleave with direct writes to os.Stdout and friends
// in program order.
package u8con

import (
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dkoosis/u8con/internal/logging"
	"github.com/dkoosis/u8con/pkg/codepage"
	"github.com/dkoosis/u8con/pkg/guard"
	"github.com/dkoosis/u8con/pkg/textio"
)

var (
	stdout = sync.OnceValue(func() *textio.OutputAdapter { return textio.NewOutputAdapter(os.Stdout) })
	stderr = sync.OnceValue(func() *textio.OutputAdapter { return textio.NewOutputAdapter(os.Stderr) })
	stdin  = sync.OnceValue(func() *textio.InputAdapter { return textio.NewInputAdapter(os.Stdin) })
	wide   = sync.OnceValue(func() *textio.WideWriter { return textio.NewWideWriter(textio.ConsoleSink(os.Stdout)) })
)

// Stdout returns the adapter over os.Stdout.
func Stdout() *textio.OutputAdapter { return stdout() }

// Stderr returns the adapter over os.Stderr.
func Stderr() *textio.OutputAdapter { return stderr() }

// Stdin returns the adapter over os.Stdin.
func Stdin() *textio.InputAdapter { return stdin() }

// Wide returns the UTF-16 writer over the stdout console.
func Wide() *textio.WideWriter { return wide() }

// CodePage returns the process's active code page.
func CodePage() codepage.CodePage { return codepage.Default().CodePage() }

// SetLogger routes library diagnostics to l. The default discards them.
func SetLogger(l zerolog.Logger) { logging.Set(l) }

// RunUTF8 runs fn with the console switched to UTF-8 and, when stdout is a
// terminal, the C runtime locale set to UTF-8. Both are restored when fn
// returns or panics.
func RunUTF8(fn func() error, opts ...guard.Option) error {
	return guard.Scope(func() (err error) {
		lg, err := guard.AcquireLocale(os.Stdout, opts...)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, lg.Release()) }()
		return fn()
	}, opts...)
}
