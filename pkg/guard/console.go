package guard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dkoosis/u8con/pkg/codepage"
)

// Console mode bits applied by a ConsoleGuard.
const (
	ModeProcessedOutput           uint32 = 0x0001
	ModeVirtualTerminalProcessing uint32 = 0x0004
	ModeVirtualTerminalInput      uint32 = 0x0200
)

// ConsoleState is the process-wide console configuration a ConsoleGuard
// captures and restores. Modes are only meaningful when the matching handle
// is a console.
type ConsoleState struct {
	InputCP         codepage.CodePage
	OutputCP        codepage.CodePage
	InputMode       uint32
	OutputMode      uint32
	InputIsConsole  bool
	OutputIsConsole bool
}

// Console reads and writes the process console configuration.
type Console interface {
	State() (ConsoleState, error)
	Apply(ConsoleState) error
}

// utf8State returns s switched to UTF-8 code pages with VT processing on.
func utf8State(s ConsoleState) ConsoleState {
	s.InputCP = codepage.UTF8
	s.OutputCP = codepage.UTF8
	if s.OutputIsConsole {
		s.OutputMode |= ModeProcessedOutput | ModeVirtualTerminalProcessing
	}
	if s.InputIsConsole {
		s.InputMode |= ModeVirtualTerminalInput
	}
	return s
}

// ConsoleGuard puts the console into UTF-8 mode while held.
type ConsoleGuard struct {
	backend  Console
	captured ConsoleState
	unclaim  func()
	once     sync.Once
	err      error
}

// AcquireConsole captures the console code pages and modes, then switches
// both code pages to UTF-8 and enables virtual terminal processing. If
// switching fails partway, the captured state is re-applied before the
// error is returned.
func AcquireConsole(opts ...Option) (*ConsoleGuard, error) {
	o := newOptions(opts)
	unclaim, err := claim(kindConsole, o.reentry)
	if err != nil {
		return nil, fmt.Errorf("acquire %s guard: %w", kindConsole, err)
	}

	captured, err := o.console.State()
	if err != nil {
		unclaim()
		return nil, fmt.Errorf("capture console state: %w", err)
	}
	target := utf8State(captured)
	if err := o.console.Apply(target); err != nil {
		rerr := o.console.Apply(captured)
		unclaim()
		if rerr != nil {
			rerr = fmt.Errorf("roll back console state: %w", rerr)
		}
		return nil, errors.Join(fmt.Errorf("apply UTF-8 console state: %w", err), rerr)
	}

	logger().Debug().
		Stringer("input_cp", captured.InputCP).
		Stringer("output_cp", captured.OutputCP).
		Msg("console guard acquired")
	return &ConsoleGuard{backend: o.console, captured: captured, unclaim: unclaim}, nil
}

// Captured returns the state that Release restores.
func (g *ConsoleGuard) Captured() ConsoleState {
	return g.captured
}

// Release restores the captured state. Later calls return the first call's
// result.
func (g *ConsoleGuard) Release() error {
	g.once.Do(func() {
		if err := g.backend.Apply(g.captured); err != nil {
			g.err = fmt.Errorf("restore console state: %w", err)
			logger().Warn().Err(g.err).Msg("console guard restore incomplete")
		}
		g.unclaim()
	})
	return g.err
}

// Scope runs fn with a console guard held. The guard is released even when
// fn panics.
func Scope(fn func() error, opts ...Option) (err error) {
	g, err := AcquireConsole(opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, g.Release())
	}()
	return fn()
}
