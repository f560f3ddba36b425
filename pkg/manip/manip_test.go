package manip

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/u8con/pkg/codepage"
	"github.com/dkoosis/u8con/pkg/textio"
)

const green = "\x1b[38;2;86;146;118m"

func TestChain_NamedAndTemporarySinksMatch(t *testing.T) {
	var named strings.Builder
	BeginRGB(&named, 86, 146, 118).Print("Hello").Put(Reset)

	temp := func() string {
		var b bytes.Buffer
		BeginRGB(&b, 86, 146, 118).Print("Hello").Put(Reset)
		return b.String()
	}()

	want := green + "Hello\x1b[0m"
	assert.Equal(t, want, named.String())
	assert.Equal(t, want, temp)
}

func TestChain_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Chain)
		want  string
	}{
		{"begin writes nothing", func(c *Chain) {}, ""},
		{"color via chain", func(c *Chain) { c.Color(RGB(255, 0, 0)).Print("x") }, "\x1b[38;2;255;0;0mx"},
		{"reset then next", func(c *Chain) {
			c.Put(ResetThen(ManipulatorFunc(func(w io.StringWriter) error {
				_, err := w.WriteString("!")
				return err
			})))
		}, "\x1b[0m!"},
		{"reset then nil", func(c *Chain) { c.Put(ResetThen(nil)) }, "\x1b[0m"},
		{"out of range forwarded", func(c *Chain) { c.Color(RGB(300, -1, 0)) }, "\x1b[38;2;300;-1;0m"},
		{"values rendered", func(c *Chain) { c.Print("n=", 42, []int{1, 2}).Endl() }, "n=42[1 2]\n"},
		{"reset and endl helpers", func(c *Chain) { c.Reset().Endl() }, "\x1b[0m\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			c := Begin(&b)
			tt.build(c)
			require.NoError(t, c.Err())
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestEndl_FlushesBufferedSink(t *testing.T) {
	var out bytes.Buffer
	bw := bufio.NewWriter(&out)

	Begin(bw).Print("line").Put(Endl)
	assert.Equal(t, "line\n", out.String())
}

func TestChain_AdapterSink(t *testing.T) {
	var out bytes.Buffer
	a := textio.NewOutputAdapter(&out, textio.WithCodec(codepage.New(codepage.CP936, codepage.TextConverter{})))

	BeginRGB(a, 86, 146, 118).Print("你好").Put(Reset)

	want := append([]byte(green), 0xC4, 0xE3, 0xBA, 0xC3)
	want = append(want, "\x1b[0m"...)
	assert.Equal(t, want, out.Bytes())
}

func TestChain_WideSink(t *testing.T) {
	var out bytes.Buffer
	codec := codepage.New(codepage.UTF8, nil)
	w := textio.NewWideWriter(textio.UTF8Sink(&out, codec), textio.WithCodec(codec))

	BeginRGB(w, 1, 2, 3).Print("红色文本").Put(Reset, Endl)
	assert.Equal(t, "\x1b[38;2;1;2;3m红色文本\x1b[0m\n", out.String())
}

type failingSink struct{ calls int }

func (f *failingSink) WriteString(string) (int, error) {
	f.calls++
	return 0, errors.New("closed")
}

func TestChain_StickyError(t *testing.T) {
	s := &failingSink{}
	c := BeginRGB(s, 1, 2, 3).Print("a").Put(Reset, Endl)

	assert.EqualError(t, c.Err(), "closed")
	assert.Equal(t, 1, s.calls)
}

func TestPolicy_NoColor(t *testing.T) {
	var b strings.Builder
	Policy{NoColor: true}.BeginRGB(&b, 86, 146, 118).Print("Hello").Put(Reset, Endl)
	assert.Equal(t, "Hello\n", b.String())

	b.Reset()
	Policy{}.BeginRGB(&b, 86, 146, 118).Print("Hello").Reset()
	assert.Equal(t, green+"Hello\x1b[0m", b.String())
}

func TestAuto_RespectsNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, Auto().NoColor)
}

func TestNoColor_StripsSequences(t *testing.T) {
	var out bytes.Buffer
	bw := bufio.NewWriter(&out)

	BeginRGB(NoColor(bw), 86, 146, 118).Print("Hello").Put(Reset, Endl)
	assert.Equal(t, "Hello\n", out.String())
}

func TestPolicy_NoColor_ResetThenKeepsNext(t *testing.T) {
	var b strings.Builder
	Policy{NoColor: true}.Begin(&b).Print("Hello").Put(ResetThen(Endl))
	assert.Equal(t, "Hello\n", b.String())
}
