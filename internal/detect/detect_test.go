package detect

import "testing"

func TestSniff_ByteOrderMarks(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  Format
	}{
		{"utf-8 bom", []byte("\xEF\xBB\xBFhello"), UTF8BOM},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'h', 0}, UTF16LE},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, 'h'}, UTF16BE},
		{"bom only", []byte{0xEF, 0xBB, 0xBF}, UTF8BOM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.input); got != tt.want {
				t.Errorf("Sniff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSniff_UTF8(t *testing.T) {
	if got := Sniff([]byte("plain ascii")); got != UTF8 {
		t.Errorf("expected UTF8 for ascii, got %v", got)
	}
	if got := Sniff([]byte("你好, мир")); got != UTF8 {
		t.Errorf("expected UTF8, got %v", got)
	}
}

func TestSniff_TruncatedRune(t *testing.T) {
	// "你" is E4 BD A0; keep only the first two bytes
	input := append([]byte("ab"), 0xE4, 0xBD)
	if got := Sniff(input); got != UTF8 {
		t.Errorf("expected UTF8 for cut-off rune, got %v", got)
	}
}

func TestSniff_Legacy(t *testing.T) {
	// "你好" in GBK
	if got := Sniff([]byte{0xC4, 0xE3, 0xBA, 0xC3}); got != Legacy {
		t.Errorf("expected Legacy for GBK, got %v", got)
	}
	// "café" in windows-1252
	if got := Sniff([]byte{'c', 'a', 'f', 0xE9}); got != UTF8 {
		// a lone lead byte at the end reads as a cut-off rune
		t.Errorf("expected UTF8 for trailing lead byte, got %v", got)
	}
	if got := Sniff([]byte{'c', 'a', 'f', 0xE9, '!'}); got != Legacy {
		t.Errorf("expected Legacy for windows-1252, got %v", got)
	}
}

func TestSniff_Empty(t *testing.T) {
	if got := Sniff(nil); got != Unknown {
		t.Errorf("expected Unknown for empty, got %v", got)
	}
}

func TestFormat_BOMLen(t *testing.T) {
	cases := map[Format]int{UTF8BOM: 3, UTF16LE: 2, UTF16BE: 2, UTF8: 0, Legacy: 0, Unknown: 0}
	for f, want := range cases {
		if got := f.BOMLen(); got != want {
			t.Errorf("%v.BOMLen() = %d, want %d", f, got, want)
		}
	}
}

func TestFormat_String(t *testing.T) {
	if got := UTF16LE.String(); got != "utf-16le" {
		t.Errorf("got %q", got)
	}
	if got := Format(42).String(); got != "unknown" {
		t.Errorf("got %q", got)
	}
}
