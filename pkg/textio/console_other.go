//go:build !windows

package textio

import (
	"os"

	"github.com/dkoosis/u8con/pkg/codepage"
)

// ConsoleSink returns the wide sink for f. Outside Windows terminals take
// UTF-8, so code units are converted back before writing.
func ConsoleSink(f *os.File) UTF16Sink {
	return UTF8Sink(f, codepage.Default())
}
