package textio

import (
	"io"

	"github.com/dkoosis/u8con/pkg/codepage"
)

// OutputAdapter writes UTF-8 text to a legacy-encoded channel.
//
// It keeps the first write error, like bufio.Writer: once a write to the
// channel fails, later writes are skipped and return that error.
type OutputAdapter struct {
	w         io.Writer
	codec     *codepage.Codec
	renderers Renderers
	held      pending
	err       error
	failures  int
}

// NewOutputAdapter binds an adapter to w. w must outlive the adapter.
func NewOutputAdapter(w io.Writer, opts ...Option) *OutputAdapter {
	o := newOptions(opts)
	return &OutputAdapter{w: w, codec: o.codec, renderers: o.renderers}
}

// Write converts p from UTF-8 and writes it to the channel. It reports
// len(p) on success, whatever the size of the converted output. A character
// split across writes is held back until its last byte arrives.
func (a *OutputAdapter) Write(p []byte) (int, error) {
	if err := a.convert(a.held.join(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString is Write for strings.
func (a *OutputAdapter) WriteString(s string) (int, error) {
	if err := a.convert(a.held.join([]byte(s))); err != nil {
		return 0, err
	}
	return len(s), nil
}

// Print renders each value and writes it. Numbers and booleans are written
// unconverted; everything else is treated as UTF-8 text.
func (a *OutputAdapter) Print(values ...any) *OutputAdapter {
	_ = a.drain()
	for _, v := range values {
		t := a.renderers.Render(v)
		if t.ASCII {
			_ = a.raw([]byte(t.S))
		} else {
			_ = a.convert([]byte(t.S))
		}
	}
	return a
}

// Endl writes a line terminator and flushes the channel.
func (a *OutputAdapter) Endl() *OutputAdapter {
	_ = a.drain()
	if a.raw([]byte{'\n'}) == nil {
		_ = a.Flush()
	}
	return a
}

// Flush writes out any held-back bytes and flushes the channel if it buffers
// output.
func (a *OutputAdapter) Flush() error {
	if a.drain() != nil {
		return a.err
	}
	if err := flush(a.w); err != nil {
		a.err = err
	}
	return a.err
}

// Err returns the first error the channel reported.
func (a *OutputAdapter) Err() error {
	return a.err
}

// Failures returns how many conversions failed and were dropped.
func (a *OutputAdapter) Failures() int {
	return a.failures
}

// Codec returns the adapter's codec.
func (a *OutputAdapter) Codec() *codepage.Codec {
	return a.codec
}

// drain converts whatever an earlier Write held back.
func (a *OutputAdapter) drain() error {
	return a.convert(a.held.take())
}

func (a *OutputAdapter) convert(p []byte) error {
	out, err := a.codec.UTF8ToLegacy(p)
	if err != nil {
		a.failures++
		logFailure(err, "utf8-to-legacy", len(p))
		return a.err
	}
	return a.raw(out)
}

func (a *OutputAdapter) raw(b []byte) error {
	if a.err != nil {
		return a.err
	}
	if len(b) == 0 {
		return nil
	}
	if _, err := a.w.Write(b); err != nil {
		a.err = err
	}
	return a.err
}
