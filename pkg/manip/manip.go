// Package manip writes 24-bit color escape sequences and line endings to any
// string sink: plain writers, buffers, files and the textio adapters alike.
package manip

import (
	"io"
	"strconv"

	"github.com/muesli/termenv"
)

// Manipulator writes a control sequence to a sink.
type Manipulator interface {
	Manipulate(w io.StringWriter) error
}

// ManipulatorFunc adapts a function to Manipulator.
type ManipulatorFunc func(w io.StringWriter) error

func (f ManipulatorFunc) Manipulate(w io.StringWriter) error { return f(w) }

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

type reset struct{}

func (reset) Manipulate(w io.StringWriter) error {
	_, err := w.WriteString(resetSeq)
	return err
}

// Reset restores default terminal attributes.
var Reset Manipulator = reset{}

type resetThen struct {
	next Manipulator
}

func (r resetThen) Manipulate(w io.StringWriter) error {
	if err := Reset.Manipulate(w); err != nil {
		return err
	}
	if r.next == nil {
		return nil
	}
	return r.next.Manipulate(w)
}

// ResetThen writes Reset followed by next.
func ResetThen(next Manipulator) Manipulator {
	return resetThen{next: next}
}

type endl struct{}

func (endl) Manipulate(w io.StringWriter) error {
	if _, err := w.WriteString("\n"); err != nil {
		return err
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Endl writes a newline and flushes the sink when it buffers output.
var Endl Manipulator = endl{}

// Color is a pending 24-bit foreground color. It does nothing on its own;
// it takes effect when handed to a Chain.
type Color struct {
	R, G, B int
}

// RGB returns the color (r, g, b). Components are not clamped: whatever is
// given ends up in the escape sequence.
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// Sequence returns the SGR escape sequence selecting c as foreground.
func (c Color) Sequence() string {
	buf := make([]byte, 0, 20)
	buf = append(buf, termenv.CSI+termenv.Foreground+";2;"...)
	buf = strconv.AppendInt(buf, int64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(c.B), 10)
	buf = append(buf, 'm')
	return string(buf)
}
