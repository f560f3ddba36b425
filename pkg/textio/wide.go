package textio

import (
	"encoding/binary"
	"io"

	"github.com/dkoosis/u8con/pkg/codepage"
)

// UTF16Sink receives UTF-16 code units.
type UTF16Sink interface {
	WriteUTF16(units []uint16) (int, error)
}

// WideWriter is a wide-character stream: it accepts UTF-8 text and hands
// UTF-16 code units to a UTF16Sink.
type WideWriter struct {
	sink      UTF16Sink
	codec     *codepage.Codec
	renderers Renderers
	held      pending
	err       error
	failures  int
}

// NewWideWriter binds a wide writer to sink.
func NewWideWriter(sink UTF16Sink, opts ...Option) *WideWriter {
	o := newOptions(opts)
	return &WideWriter{sink: sink, codec: o.codec, renderers: o.renderers}
}

// Write converts UTF-8 p to UTF-16 and forwards it. It reports len(p) on
// success. A character split across writes is held back until its last byte
// arrives.
func (w *WideWriter) Write(p []byte) (int, error) {
	if err := w.widen(w.held.join(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString is Write for strings.
func (w *WideWriter) WriteString(s string) (int, error) {
	if err := w.widen(w.held.join([]byte(s))); err != nil {
		return 0, err
	}
	return len(s), nil
}

// Print renders and writes each value. Every value is widened, ASCII or not.
func (w *WideWriter) Print(values ...any) *WideWriter {
	_ = w.widen(w.held.take())
	for _, v := range values {
		_ = w.widen([]byte(w.renderers.Render(v).S))
	}
	return w
}

// Endl writes a line terminator and flushes the sink.
func (w *WideWriter) Endl() *WideWriter {
	if w.widen(append(w.held.take(), '\n')) == nil {
		_ = w.Flush()
	}
	return w
}

// Flush writes out any held-back bytes and flushes the sink if it buffers
// output.
func (w *WideWriter) Flush() error {
	if w.widen(w.held.take()) != nil {
		return w.err
	}
	if err := flush(w.sink); err != nil {
		w.err = err
	}
	return w.err
}

// Err returns the first error the sink reported.
func (w *WideWriter) Err() error {
	return w.err
}

// Failures returns how many conversions failed and were dropped.
func (w *WideWriter) Failures() int {
	return w.failures
}

func (w *WideWriter) widen(p []byte) error {
	if w.err != nil {
		return w.err
	}
	units, err := w.codec.UTF8ToUTF16(p)
	if err != nil {
		w.failures++
		logFailure(err, "utf8-to-utf16", len(p))
		return nil
	}
	if len(units) == 0 {
		return nil
	}
	if _, err := w.sink.WriteUTF16(units); err != nil {
		w.err = err
	}
	return w.err
}

// UTF16LESink writes code units to w as little-endian bytes, the framing of
// a Windows UTF-16 text stream.
func UTF16LESink(w io.Writer) UTF16Sink {
	return &leSink{w: w}
}

type leSink struct {
	w   io.Writer
	buf []byte
}

func (s *leSink) WriteUTF16(units []uint16) (int, error) {
	s.buf = s.buf[:0]
	for _, u := range units {
		s.buf = binary.LittleEndian.AppendUint16(s.buf, u)
	}
	n, err := s.w.Write(s.buf)
	return n / 2, err
}

func (s *leSink) Flush() error { return flush(s.w) }

// UTF8Sink converts code units back to UTF-8 before writing them to w. It
// serves terminals that are natively UTF-8.
func UTF8Sink(w io.Writer, codec *codepage.Codec) UTF16Sink {
	if codec == nil {
		codec = codepage.Default()
	}
	return &utf8Sink{w: w, codec: codec}
}

type utf8Sink struct {
	w     io.Writer
	codec *codepage.Codec
}

func (s *utf8Sink) WriteUTF16(units []uint16) (int, error) {
	b, err := s.codec.UTF16ToUTF8(units)
	if err != nil {
		logFailure(err, "utf16-to-utf8", len(units)*2)
		return 0, nil
	}
	if _, err := s.w.Write(b); err != nil {
		return 0, err
	}
	return len(units), nil
}

func (s *utf8Sink) Flush() error { return flush(s.w) }
