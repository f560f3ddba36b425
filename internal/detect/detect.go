// Package detect sniffs the leading bytes of input to determine its text
// encoding.
package detect

import (
	"bytes"
	"unicode/utf8"
)

// Format represents a recognized text encoding.
type Format int

const (
	Unknown Format = iota
	UTF8BOM        // UTF-8 with a leading EF BB BF
	UTF16LE        // UTF-16 little endian, FF FE mark
	UTF16BE        // UTF-16 big endian, FE FF mark
	UTF8           // valid UTF-8 without a mark
	Legacy         // anything else: bytes in some single- or double-byte code page
)

var names = [...]string{"unknown", "utf-8-bom", "utf-16le", "utf-16be", "utf-8", "legacy"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(names) {
		return names[Unknown]
	}
	return names[f]
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Sniff examines the first bytes of input to determine its encoding.
// Input may be a prefix of a longer stream: a multi-byte sequence cut off
// at the end does not make otherwise valid UTF-8 count as legacy.
func Sniff(data []byte) Format {
	switch {
	case len(data) == 0:
		return Unknown
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	}

	if utf8.Valid(trimPartialRune(data)) {
		return UTF8
	}
	return Legacy
}

// BOMLen returns the length of the byte order mark f starts with.
func (f Format) BOMLen() int {
	switch f {
	case UTF8BOM:
		return len(bomUTF8)
	case UTF16LE, UTF16BE:
		return 2
	}
	return 0
}

// trimPartialRune drops an incomplete UTF-8 sequence at the end of data.
func trimPartialRune(data []byte) []byte {
	// a rune is at most 4 bytes, so only the last 3 can start a cut-off one
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		if b < 0x80 {
			return data
		}
		if utf8.RuneStart(b) {
			if !utf8.FullRune(data[len(data)-i:]) {
				return data[:len(data)-i]
			}
			return data
		}
	}
	return data
}
