//go:build !windows

package guard

// Terminals outside Windows are configured through the environment, so
// both backends report a fixed state and change nothing.

type noopConsole struct{}

func (noopConsole) State() (ConsoleState, error) { return ConsoleState{}, nil }
func (noopConsole) Apply(ConsoleState) error     { return nil }

type noopLocale struct{}

func (noopLocale) Current() (string, error) { return "", nil }
func (noopLocale) Set(string) error         { return nil }
func (noopLocale) PerThread(bool) error     { return nil }

// SystemConsole returns the console backend for this platform.
func SystemConsole() Console { return noopConsole{} }

// SystemLocale returns the locale backend for this platform.
func SystemLocale() Locale { return noopLocale{} }
