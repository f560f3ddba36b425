// Package codepage converts text between the process's legacy code page,
// UTF-8, and UTF-16 code units.
//
// Every conversion uses the two-call protocol of the underlying OS primitive:
// the Converter is asked for the required output length first, then called
// again with a buffer of exactly that size. A non-positive length from either
// call is a conversion failure.
package codepage

import (
	"fmt"
	"sort"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// CodePage is an OS code page identifier.
type CodePage uint32

// Code pages with a known encoding.
const (
	CP437   CodePage = 437
	CP850   CodePage = 850
	CP852   CodePage = 852
	CP855   CodePage = 855
	CP858   CodePage = 858
	CP866   CodePage = 866
	CP874   CodePage = 874
	CP932   CodePage = 932
	CP936   CodePage = 936
	CP949   CodePage = 949
	CP950   CodePage = 950
	CP1250  CodePage = 1250
	CP1251  CodePage = 1251
	CP1252  CodePage = 1252
	CP1253  CodePage = 1253
	CP1254  CodePage = 1254
	CP1255  CodePage = 1255
	CP1256  CodePage = 1256
	CP1257  CodePage = 1257
	CP1258  CodePage = 1258
	KOI8R   CodePage = 20866
	KOI8U   CodePage = 21866
	GB18030 CodePage = 54936
	UTF8    CodePage = 65001
)

var encodings = map[CodePage]encoding.Encoding{
	CP437:   charmap.CodePage437,
	CP850:   charmap.CodePage850,
	CP852:   charmap.CodePage852,
	CP855:   charmap.CodePage855,
	CP858:   charmap.CodePage858,
	CP866:   charmap.CodePage866,
	CP874:   charmap.Windows874,
	CP932:   japanese.ShiftJIS,
	CP936:   simplifiedchinese.GBK,
	CP949:   korean.EUCKR,
	CP950:   traditionalchinese.Big5,
	CP1250:  charmap.Windows1250,
	CP1251:  charmap.Windows1251,
	CP1252:  charmap.Windows1252,
	CP1253:  charmap.Windows1253,
	CP1254:  charmap.Windows1254,
	CP1255:  charmap.Windows1255,
	CP1256:  charmap.Windows1256,
	CP1257:  charmap.Windows1257,
	CP1258:  charmap.Windows1258,
	KOI8R:   charmap.KOI8R,
	KOI8U:   charmap.KOI8U,
	GB18030: simplifiedchinese.GB18030,
	UTF8:    unicode.UTF8,
}

// Encoding returns the x/text encoding for cp.
func (cp CodePage) Encoding() (encoding.Encoding, bool) {
	enc, ok := encodings[cp]
	return enc, ok
}

func (cp CodePage) String() string {
	if cp == UTF8 {
		return "UTF-8"
	}
	return fmt.Sprintf("CP%d", uint32(cp))
}

// Supported lists the code pages the portable converter understands, in
// ascending order.
func Supported() []CodePage {
	out := make([]CodePage, 0, len(encodings))
	for cp := range encodings {
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
