package guard

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// UTF8Locale is the locale a LocaleGuard installs.
const UTF8Locale = ".UTF-8"

// Locale is the C runtime locale of the calling thread.
type Locale interface {
	// Current returns the locale name in effect.
	Current() (string, error)
	// Set installs name for all categories.
	Set(name string) error
	// PerThread toggles thread-local locale for the calling thread.
	PerThread(enable bool) error
}

// LocaleGuard switches the C runtime locale of the current OS thread to
// UTF-8 while held. It is only active when bound to an interactive terminal;
// for anything else it does nothing.
type LocaleGuard struct {
	backend  Locale
	previous string
	active   bool
	unclaim  func()
	once     sync.Once
	err      error
}

// AcquireLocale acquires a locale guard for out. out is typically an
// *os.File; when it is not an interactive terminal the returned guard is
// inactive and acquisition cannot fail.
//
// An active guard locks the calling goroutine to its OS thread until
// Release, so Release must be called from the same goroutine.
func AcquireLocale(out any, opts ...Option) (*LocaleGuard, error) {
	o := newOptions(opts)
	if !terminal(out, o.isTerminal) {
		return &LocaleGuard{}, nil
	}
	unclaim, err := claim(kindLocale, o.reentry)
	if err != nil {
		return nil, fmt.Errorf("acquire %s guard: %w", kindLocale, err)
	}

	runtime.LockOSThread()
	g := &LocaleGuard{backend: o.locale, active: true, unclaim: unclaim}
	if err := g.apply(); err != nil {
		runtime.UnlockOSThread()
		unclaim()
		return nil, err
	}
	logger().Debug().Str("previous", g.previous).Str("locale", UTF8Locale).Msg("locale guard acquired")
	return g, nil
}

func (g *LocaleGuard) apply() error {
	if err := g.backend.PerThread(true); err != nil {
		return fmt.Errorf("enable per-thread locale: %w", err)
	}
	prev, err := g.backend.Current()
	if err != nil {
		return errors.Join(fmt.Errorf("query locale: %w", err), g.backend.PerThread(false))
	}
	if err := g.backend.Set(UTF8Locale); err != nil {
		return errors.Join(fmt.Errorf("set locale %q: %w", UTF8Locale, err), g.backend.PerThread(false))
	}
	g.previous = prev
	return nil
}

// Active reports whether the guard changed anything.
func (g *LocaleGuard) Active() bool {
	return g.active
}

// Previous returns the locale captured at acquisition.
func (g *LocaleGuard) Previous() string {
	return g.previous
}

// Release restores the captured locale, turns per-thread locale back off and
// unpins the goroutine. Later calls return the first call's result.
func (g *LocaleGuard) Release() error {
	if !g.active {
		return nil
	}
	g.once.Do(func() {
		var errs []error
		if g.previous != "" {
			if err := g.backend.Set(g.previous); err != nil {
				errs = append(errs, fmt.Errorf("restore locale %q: %w", g.previous, err))
			}
		}
		if err := g.backend.PerThread(false); err != nil {
			errs = append(errs, fmt.Errorf("disable per-thread locale: %w", err))
		}
		runtime.UnlockOSThread()
		g.unclaim()
		g.err = errors.Join(errs...)
		if g.err != nil {
			logger().Warn().Err(g.err).Msg("locale guard restore incomplete")
		}
	})
	return g.err
}

// ScopeLocale runs fn with a locale guard held for out.
func ScopeLocale(out any, fn func() error, opts ...Option) (err error) {
	g, err := AcquireLocale(out, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, g.Release())
	}()
	return fn()
}
