package manip

import (
	"io"

	"github.com/dkoosis/u8con/pkg/textio"
)

// Chain writes values, colors and manipulators to one sink in order. The
// first error stops the chain; later calls do nothing.
type Chain struct {
	w       io.StringWriter
	noColor bool
	err     error
}

// Begin starts a chain on w without writing anything.
func Begin(w io.StringWriter) *Chain {
	return &Chain{w: w}
}

// BeginRGB starts a chain on w with the foreground set to (r, g, b).
func BeginRGB(w io.StringWriter, r, g, b int) *Chain {
	return Begin(w).Color(RGB(r, g, b))
}

// Color switches the foreground to c.
func (c *Chain) Color(col Color) *Chain {
	if c.noColor {
		return c
	}
	return c.write(col.Sequence())
}

// Print writes each value as rendered by textio.Render.
func (c *Chain) Print(values ...any) *Chain {
	for _, v := range values {
		c.write(textio.Render(v).S)
	}
	return c
}

// Put applies each manipulator in turn.
func (c *Chain) Put(ms ...Manipulator) *Chain {
	for _, m := range ms {
		if c.noColor {
			m = withoutColor(m)
		}
		if c.err != nil || m == nil {
			continue
		}
		c.err = m.Manipulate(c.w)
	}
	return c
}

// Reset is Put(Reset).
func (c *Chain) Reset() *Chain {
	return c.Put(Reset)
}

// Endl is Put(Endl).
func (c *Chain) Endl() *Chain {
	return c.Put(Endl)
}

// Err returns the first error the sink reported.
func (c *Chain) Err() error {
	return c.err
}

func (c *Chain) write(s string) *Chain {
	if c.err != nil || s == "" {
		return c
	}
	_, c.err = c.w.WriteString(s)
	return c
}

// withoutColor drops the escape sequence part of m.
func withoutColor(m Manipulator) Manipulator {
	switch m := m.(type) {
	case reset:
		return nil
	case resetThen:
		return m.next
	}
	return m
}
