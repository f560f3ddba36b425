package manip

import (
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Policy decides whether chains emit color sequences.
type Policy struct {
	NoColor bool
}

// Auto returns the policy from the environment: NO_COLOR or CLICOLOR=0
// disable color.
func Auto() Policy {
	return Policy{NoColor: termenv.EnvNoColor()}
}

// Begin is Begin under p.
func (p Policy) Begin(w io.StringWriter) *Chain {
	return &Chain{w: w, noColor: p.NoColor}
}

// BeginRGB is BeginRGB under p.
func (p Policy) BeginRGB(w io.StringWriter, r, g, b int) *Chain {
	return p.Begin(w).Color(RGB(r, g, b))
}

// NoColor wraps w so that escape sequences written through it are dropped.
// It suits sinks whose contents are already colored by other code.
func NoColor(w io.StringWriter) io.StringWriter {
	return &stripper{w: w}
}

type stripper struct {
	w io.StringWriter
}

func (s *stripper) WriteString(str string) (int, error) {
	if _, err := s.w.WriteString(ansi.Strip(str)); err != nil {
		return 0, err
	}
	return len(str), nil
}

func (s *stripper) Flush() error {
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
