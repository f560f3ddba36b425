// Package textio adapts existing I/O channels so that program code reads
// and writes UTF-8 while the channel itself carries legacy-encoded bytes
// (OutputAdapter, InputAdapter) or UTF-16 code units (WideWriter).
//
// Adapters hold, but never own, the channel they wrap. Conversion failures
// are not errors at this level: the affected text is dropped, the failure is
// logged at debug level and counted.
package textio

import (
	"unicode/utf8"

	"github.com/dkoosis/u8con/internal/logging"
	"github.com/dkoosis/u8con/pkg/codepage"
)

// Option configures an adapter.
type Option func(*options)

type options struct {
	codec     *codepage.Codec
	renderers Renderers
}

// WithCodec sets the codec used for conversions. The default is
// codepage.Default().
func WithCodec(c *codepage.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithRenderers replaces the renderer set used by Print.
func WithRenderers(rs ...Renderer) Option {
	return func(o *options) {
		o.renderers = Renderers(rs)
	}
}

func newOptions(opts []Option) options {
	o := options{renderers: DefaultRenderers()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.codec == nil {
		o.codec = codepage.Default()
	}
	return o
}

type flusher interface {
	Flush() error
}

// flush flushes w when it buffers output.
func flush(w any) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// pending holds the start of a UTF-8 sequence cut off at the end of a write
// until the rest of it arrives.
type pending struct {
	buf []byte
}

// join prepends held bytes to p and holds back an incomplete trailing
// sequence of the result.
func (h *pending) join(p []byte) []byte {
	if len(h.buf) > 0 {
		p = append(h.buf, p...)
		h.buf = nil
	}
	if n := incompleteTail(p); n > 0 {
		h.buf = append([]byte(nil), p[len(p)-n:]...)
		p = p[:len(p)-n]
	}
	return p
}

// take returns and clears the held bytes.
func (h *pending) take() []byte {
	b := h.buf
	h.buf = nil
	return b
}

// incompleteTail returns the length of a trailing UTF-8 sequence in p that is
// a valid but unfinished prefix, or 0.
func incompleteTail(p []byte) int {
	for i := 1; i < utf8.UTFMax && i <= len(p); i++ {
		if utf8.RuneStart(p[len(p)-i]) {
			if utf8.FullRune(p[len(p)-i:]) {
				return 0
			}
			return i
		}
	}
	return 0
}

func logFailure(err error, op string, n int) {
	l := logging.For("textio")
	l.Debug().Err(err).Str("op", op).Int("bytes", n).Msg("conversion failed, text dropped")
}
