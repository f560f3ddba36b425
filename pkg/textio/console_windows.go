//go:build windows

package textio

import (
	"io"
	"os"

	"golang.org/x/sys/windows"
)

// ConsoleSink returns the wide sink for f. A console handle receives code
// units through WriteConsoleW, which needs no code page; a redirected handle
// receives UTF-16LE bytes.
func ConsoleSink(f *os.File) UTF16Sink {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return UTF16LESink(f)
	}
	return consoleSink{h: h}
}

type consoleSink struct {
	h windows.Handle
}

func (s consoleSink) WriteUTF16(units []uint16) (int, error) {
	total := 0
	for len(units) > 0 {
		var written uint32
		if err := windows.WriteConsole(s.h, &units[0], uint32(len(units)), &written, nil); err != nil {
			return total, err
		}
		if written == 0 {
			return total, io.ErrShortWrite
		}
		total += int(written)
		units = units[written:]
	}
	return total, nil
}
