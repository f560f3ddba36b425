// Package guard scopes process-wide console configuration.
//
// A guard is acquired, captures the state it is about to change, applies
// UTF-8 friendly settings, and puts the captured state back on Release.
// Release is meant to be deferred so that restoration also runs while a
// panic unwinds. Only one guard of each kind may be held at a time; a second
// acquisition fails with ErrAlreadyActive unless WithReentry is given.
package guard

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/dkoosis/u8con/internal/logging"
)

// ErrAlreadyActive is returned when a guard of the same kind is already held.
var ErrAlreadyActive = errors.New("guard: already active")

type kind int

const (
	kindLocale kind = iota
	kindConsole
	kindCount
)

func (k kind) String() string {
	if k == kindLocale {
		return "locale"
	}
	return "console"
}

// held counts the live guards of each kind.
var held [kindCount]atomic.Int32

// claim registers a holder of k. An ordinary claim needs k to be free; a
// reentrant one joins the current holders. k stays busy for ordinary claims
// until every holder has called the returned release func.
func claim(k kind, reentry bool) (func(), error) {
	if reentry {
		held[k].Add(1)
	} else if !held[k].CompareAndSwap(0, 1) {
		return nil, ErrAlreadyActive
	}
	var once sync.Once
	return func() { once.Do(func() { held[k].Add(-1) }) }, nil
}

// Option configures an acquisition.
type Option func(*options)

type options struct {
	console    Console
	locale     Locale
	isTerminal func(fd uintptr) bool
	reentry    bool
}

// WithConsole replaces the console backend.
func WithConsole(c Console) Option {
	return func(o *options) { o.console = c }
}

// WithLocale replaces the locale backend.
func WithLocale(l Locale) Option {
	return func(o *options) { o.locale = l }
}

// WithTerminalCheck replaces the test deciding whether a file descriptor is
// an interactive terminal.
func WithTerminalCheck(fn func(fd uintptr) bool) Option {
	return func(o *options) { o.isTerminal = fn }
}

// WithReentry skips the exclusivity check. Nested guards of one kind must
// then be released in reverse order of acquisition; released out of order,
// the state left behind is whatever the inner guard captured. A reentrant
// guard still counts as held: ordinary acquisitions of its kind keep failing
// until it is released, even after the guard it nested in is gone.
func WithReentry() Option {
	return func(o *options) { o.reentry = true }
}

func newOptions(opts []Option) options {
	o := options{isTerminal: IsTerminal}
	for _, opt := range opts {
		opt(&o)
	}
	if o.console == nil {
		o.console = SystemConsole()
	}
	if o.locale == nil {
		o.locale = SystemLocale()
	}
	return o
}

// IsTerminal reports whether fd is an interactive terminal, including
// cygwin and msys ptys.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

type fdHolder interface {
	Fd() uintptr
}

var _ fdHolder = (*os.File)(nil)

func terminal(out any, check func(uintptr) bool) bool {
	f, ok := out.(fdHolder)
	return ok && check(f.Fd())
}

func logger() *zerolog.Logger {
	l := logging.For("guard")
	return &l
}
