//go:build windows

package guard

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dkoosis/u8con/pkg/codepage"
)

type winConsole struct{}

// SystemConsole returns the console backend for this platform.
func SystemConsole() Console { return winConsole{} }

func stdHandles() (in, out windows.Handle, err error) {
	in, err = windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return 0, 0, fmt.Errorf("stdin handle: %w", err)
	}
	out, err = windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return 0, 0, fmt.Errorf("stdout handle: %w", err)
	}
	return in, out, nil
}

func (winConsole) State() (ConsoleState, error) {
	var s ConsoleState
	icp, err := windows.GetConsoleCP()
	if err != nil {
		return s, fmt.Errorf("GetConsoleCP: %w", err)
	}
	ocp, err := windows.GetConsoleOutputCP()
	if err != nil {
		return s, fmt.Errorf("GetConsoleOutputCP: %w", err)
	}
	s.InputCP, s.OutputCP = codepage.CodePage(icp), codepage.CodePage(ocp)

	in, out, err := stdHandles()
	if err != nil {
		return s, err
	}
	// Redirected handles have no console mode; they are left untouched.
	s.InputIsConsole = windows.GetConsoleMode(in, &s.InputMode) == nil
	s.OutputIsConsole = windows.GetConsoleMode(out, &s.OutputMode) == nil
	return s, nil
}

func (winConsole) Apply(s ConsoleState) error {
	var errs []error
	if err := windows.SetConsoleCP(uint32(s.InputCP)); err != nil {
		errs = append(errs, fmt.Errorf("SetConsoleCP(%d): %w", s.InputCP, err))
	}
	if err := windows.SetConsoleOutputCP(uint32(s.OutputCP)); err != nil {
		errs = append(errs, fmt.Errorf("SetConsoleOutputCP(%d): %w", s.OutputCP, err))
	}
	in, out, err := stdHandles()
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	if s.InputIsConsole {
		if err := windows.SetConsoleMode(in, s.InputMode); err != nil {
			errs = append(errs, fmt.Errorf("SetConsoleMode(stdin, %#x): %w", s.InputMode, err))
		}
	}
	if s.OutputIsConsole {
		if err := windows.SetConsoleMode(out, s.OutputMode); err != nil {
			errs = append(errs, fmt.Errorf("SetConsoleMode(stdout, %#x): %w", s.OutputMode, err))
		}
	}
	return errors.Join(errs...)
}

const (
	lcAll                  = 0
	enablePerThreadLocale  = 1
	disablePerThreadLocale = 2
)

var (
	ucrt                   = windows.NewLazySystemDLL("ucrtbase.dll")
	procSetlocale          = ucrt.NewProc("setlocale")
	procConfigThreadLocale = ucrt.NewProc("_configthreadlocale")
)

type ucrtLocale struct{}

// SystemLocale returns the locale backend for this platform.
func SystemLocale() Locale { return ucrtLocale{} }

func (ucrtLocale) Current() (string, error) {
	if err := procSetlocale.Find(); err != nil {
		return "", err
	}
	r, _, _ := procSetlocale.Call(lcAll, 0)
	if r == 0 {
		return "", errors.New("setlocale: query failed")
	}
	return windows.BytePtrToString((*byte)(unsafe.Pointer(r))), nil
}

func (ucrtLocale) Set(name string) error {
	if err := procSetlocale.Find(); err != nil {
		return err
	}
	p, err := windows.BytePtrFromString(name)
	if err != nil {
		return err
	}
	r, _, _ := procSetlocale.Call(lcAll, uintptr(unsafe.Pointer(p)))
	if r == 0 {
		return fmt.Errorf("setlocale(%q): locale rejected", name)
	}
	return nil
}

func (ucrtLocale) PerThread(enable bool) error {
	if err := procConfigThreadLocale.Find(); err != nil {
		return err
	}
	mode := uintptr(disablePerThreadLocale)
	if enable {
		mode = enablePerThreadLocale
	}
	r, _, _ := procConfigThreadLocale.Call(mode)
	if int32(r) == -1 {
		return errors.New("_configthreadlocale failed")
	}
	return nil
}
