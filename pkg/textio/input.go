package textio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/dkoosis/u8con/pkg/codepage"
)

// InputAdapter reads legacy-encoded lines from a channel and returns them as
// UTF-8.
type InputAdapter struct {
	r     *bufio.Reader
	codec *codepage.Codec
}

// NewInputAdapter binds an adapter to r. r must outlive the adapter.
func NewInputAdapter(r io.Reader, opts ...Option) *InputAdapter {
	o := newOptions(opts)
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &InputAdapter{r: br, codec: o.codec}
}

// ReadLine reads one line, drops its terminator ("\n" or "\r\n") and returns
// it as UTF-8. A final line without terminator is returned with a nil error;
// io.EOF is returned only when nothing was left to read. A line that fails to
// convert is returned as "".
func (a *InputAdapter) ReadLine() (string, error) {
	line, err := a.r.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return "", err
	}
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	out, cerr := a.codec.LegacyToUTF8(line)
	if cerr != nil {
		logFailure(cerr, "legacy-to-utf8", len(line))
		return "", nil
	}
	return string(out), nil
}

// Get is ReadLine without the error.
func (a *InputAdapter) Get() string {
	s, _ := a.ReadLine()
	return s
}

// Scan reads successive values into args. A *string receives a whole line,
// converted to UTF-8; any other argument is scanned unconverted with
// fmt.Fscan, since numeric tokens read the same in every code page. It
// returns the number of arguments filled.
func (a *InputAdapter) Scan(args ...any) (int, error) {
	for i, arg := range args {
		if s, ok := arg.(*string); ok {
			line, err := a.ReadLine()
			if err != nil {
				return i, err
			}
			*s = line
			continue
		}
		if _, err := fmt.Fscan(a.r, arg); err != nil {
			return i, err
		}
	}
	return len(args), nil
}

// Reader returns the buffered reader the adapter reads from.
func (a *InputAdapter) Reader() *bufio.Reader {
	return a.r
}
