package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gbkNiHao = []byte{0xC4, 0xE3, 0xBA, 0xC3}

// runCLI runs u8con with a config path that does not exist and a clean
// environment, so only args and stdin matter.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	for _, key := range []string{"NO_COLOR", "U8CON_NO_COLOR", "U8CON_DEBUG", "U8CON_CODE_PAGE"} {
		t.Setenv(key, "")
	}
	args = append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml"))

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  []byte
	}{
		{"gbk", "你好", []string{"encode", "--code-page", "936"}, gbkNiHao},
		{"bom dropped", "\xEF\xBB\xBF你好", []string{"encode", "--code-page", "936"}, gbkNiHao},
		{"cp1252", "café", []string{"encode", "--code-page", "1252"}, []byte{'c', 'a', 'f', 0xE9}},
		{"utf-8 passthrough", "你好", []string{"encode", "--code-page", "65001"}, []byte("你好")},
		{"escape", "A你😀", []string{"encode", "--escape"}, []byte(`A\u4f60\ud83d\ude00`)},
		{"empty", "", []string{"encode", "--code-page", "936"}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tt.stdin, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, []byte(stdout))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		stdin []byte
		args  []string
		want  string
	}{
		{"gbk with crlf", append(append([]byte{}, gbkNiHao...), "\r\nok"...), []string{"--code-page", "936"}, "你好\nok\n"},
		{"utf-8 passthrough", []byte("世界\n"), []string{"--code-page", "936"}, "世界\n"},
		{"utf-8 bom", []byte("\xEF\xBB\xBFhi\n"), nil, "hi\n"},
		{"utf-16le bom", []byte{0xFF, 0xFE, 0x60, 0x4F, 0x7D, 0x59, '\n', 0}, nil, "你好\n"},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0x4F, 0x60, 0, '\n'}, nil, "你\n"},
		{"empty", nil, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, string(tt.stdin), append([]string{"decode"}, tt.args...)...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestEscape(t *testing.T) {
	stdout, _, code := runCLI(t, "", "escape", "你", "好")
	require.Equal(t, 0, code)
	assert.Equal(t, `\u4f60 \u597d`+"\n", stdout)

	stdout, _, code = runCLI(t, "Ω\n", "escape")
	require.Equal(t, 0, code)
	assert.Equal(t, `\u03a9`+"\n", stdout)
}

func TestDemo_NoColor(t *testing.T) {
	stdout, stderr, code := runCLI(t, "输入\n42\n", "demo", "--code-page", "65001", "--no-color")
	require.Equal(t, 0, code, stderr)

	want := strings.Join([]string{
		"你好！", "世界", "Hello, World!", "123", "你好！", "测试重载",
		"输入", "42", "42", "测试",
		"Hello", "你好", "Hello", "你好", "Hello World", "Hello World", "你好 世界",
		"红色文本", "默认文本", "测试",
	}, "\n") + "\n"
	assert.Equal(t, want, stdout)
}

func TestDemo_ColorsAndLegacyOutput(t *testing.T) {
	stdout, stderr, code := runCLI(t, "", "demo", "--code-page", "936", "--no-guard")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "\x1b[38;2;86;146;118mHello\x1b[0m\n")
	assert.Contains(t, stdout, "\x1b[38;2;182;185;98m"+string(gbkNiHao)+"\x1b[0m\n")
	assert.Contains(t, stdout, "\x1b[38;2;255;0;0m红色文本\x1b[0m\n")
	assert.NotContains(t, stdout, "42", "nothing to echo without input")
}

func TestInfo(t *testing.T) {
	stdout, stderr, code := runCLI(t, "", "info", "--no-color", "--code-page", "866")
	require.Equal(t, 0, code, stderr)

	for _, want := range []string{"Code pages", "in use", "CP866 (cli)", "Terminal", "stdout", "no color", "true (cli)", "(none)", "CP936"} {
		assert.Contains(t, stdout, want)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, code := runCLI(t, "", "version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "u8con dev"), stdout)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"frobnicate"}, "unknown command"},
		{"unsupported code page", []string{"encode", "--code-page", "12345"}, "unsupported code page"},
		{"missing file", []string{"decode", "/nonexistent/input.txt"}, "no such file"},
		{"too many args", []string{"encode", "a", "b"}, "accepts at most 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runCLI(t, "", tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}
