package magetasks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dkoosis/u8con/pkg/codepage"
	"github.com/dkoosis/u8con/pkg/textio"
)

// capture redirects Out to a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Out
	Out = &buf
	t.Cleanup(func() { Out = old })
	return &buf
}

func TestPrintH1Header(t *testing.T) {
	buf := capture(t)

	PrintH1Header("Test Title")

	output := buf.String()
	if !strings.Contains(output, "Test Title") {
		t.Errorf("PrintH1Header output should contain 'Test Title', got: %s", output)
	}
	if !strings.Contains(output, strings.Repeat("=", 80)) {
		t.Errorf("PrintH1Header output should contain '=' rule, got: %s", output)
	}
}

func TestPrintH2Header(t *testing.T) {
	buf := capture(t)

	PrintH2Header("Test Section")

	if output := buf.String(); !strings.Contains(output, "Test Section") || !strings.Contains(output, "===") {
		t.Errorf("PrintH2Header output should contain '=== Test Section ===', got: %s", output)
	}
}

func TestPrintMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func(string)
		glyph string
	}{
		{"success", PrintSuccess, "✅"},
		{"warning", PrintWarning, "⚠️"},
		{"error", PrintError, "❌"},
		{"info", PrintInfo, "ℹ️"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.print("Operation completed")

			want := tt.glyph
			if got := buf.String(); !strings.HasPrefix(got, want) || !strings.Contains(got, "Operation completed") {
				t.Errorf("output = %q, want prefix %q and the message", got, want)
			}
		})
	}
}

func TestPrint_ThroughLegacyAdapter(t *testing.T) {
	var raw bytes.Buffer
	old := Out
	Out = textio.NewOutputAdapter(&raw, textio.WithCodec(codepage.New(codepage.CP437, codepage.TextConverter{})))
	t.Cleanup(func() { Out = old })

	PrintInfo("ok")

	// no CP437 glyph exists for the info sign, so the line still ends in " ok\n"
	if got := raw.String(); !strings.HasSuffix(got, " ok\n") {
		t.Errorf("output = %q", got)
	}
}
