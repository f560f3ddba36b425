package codepage

import (
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Converter is the OS text-conversion primitive. Both methods follow the
// measure-then-convert protocol: with a nil dst they return the number of
// output units required; with a non-nil dst they convert into it and return
// the number of units written. A result <= 0 means the conversion failed.
type Converter interface {
	// ToUTF16 decodes src, encoded in cp, into UTF-16 code units.
	ToUTF16(cp CodePage, src []byte, dst []uint16) int
	// FromUTF16 encodes UTF-16 code units into cp.
	FromUTF16(cp CodePage, src []uint16, dst []byte) int
}

// TextConverter is a portable Converter backed by golang.org/x/text.
// Runes the target code page cannot represent are substituted by the
// encoding's own replacement byte.
type TextConverter struct{}

func (TextConverter) ToUTF16(cp CodePage, src []byte, dst []uint16) int {
	enc, ok := cp.Encoding()
	if !ok || len(src) == 0 {
		return 0
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), src)
	if err != nil {
		return 0
	}
	return fill(dst, utf16.Encode([]rune(string(decoded))))
}

func (TextConverter) FromUTF16(cp CodePage, src []uint16, dst []byte) int {
	enc, ok := cp.Encoding()
	if !ok || len(src) == 0 {
		return 0
	}
	encoded, _, err := transform.String(encoding.ReplaceUnsupported(enc.NewEncoder()), string(utf16.Decode(src)))
	if err != nil {
		return 0
	}
	return fill(dst, []byte(encoded))
}

// fill copies out into dst. A nil dst measures; a dst too small to hold out
// fails the same way the OS primitive does.
func fill[T byte | uint16](dst, out []T) int {
	if dst == nil {
		return len(out)
	}
	if len(dst) < len(out) {
		return 0
	}
	return copy(dst, out)
}
