package textio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/dkoosis/u8con/pkg/codepage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitSink records code units as they arrive.
type unitSink struct {
	units []uint16
}

func (s *unitSink) WriteUTF16(units []uint16) (int, error) {
	s.units = append(s.units, units...)
	return len(units), nil
}

func TestWideWriter_WidensText(t *testing.T) {
	sink := &unitSink{}
	w := NewWideWriter(sink, WithCodec(gbk()))

	w.Print("A你", 1)
	assert.Equal(t, []uint16{'A', 0x4F60, '1'}, sink.units)
	assert.NoError(t, w.Err())
}

func TestWideWriter_UTF16LESink(t *testing.T) {
	var buf bytes.Buffer
	w := NewWideWriter(UTF16LESink(&buf), WithCodec(gbk()))

	n, err := w.WriteString("A你")
	require.NoError(t, err)
	assert.Equal(t, len("A你"), n)
	assert.Equal(t, []byte{0x41, 0x00, 0x60, 0x4F}, buf.Bytes())
}

func TestWideWriter_Write_JoinsSplitCharacters(t *testing.T) {
	var buf bytes.Buffer
	w := NewWideWriter(UTF16LESink(&buf), WithCodec(gbk()))

	_, err := io.Copy(w, iotest.OneByteReader(strings.NewReader("你😀")))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x4F, 0x3D, 0xD8, 0x00, 0xDE}, buf.Bytes())
	assert.Zero(t, w.Failures())
}

func TestWideWriter_Endl_CompletesHeldCharacter(t *testing.T) {
	sink := &unitSink{}
	w := NewWideWriter(sink, WithCodec(gbk()))
	ni := []byte("你")

	_, err := w.Write(ni[:1])
	require.NoError(t, err)
	assert.Empty(t, sink.units)

	_, err = w.Write(ni[1:])
	require.NoError(t, err)
	w.Endl()
	assert.Equal(t, []uint16{0x4F60, '\n'}, sink.units)
}

func TestWideWriter_UTF8Sink_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	codec := codepage.New(codepage.UTF8, nil)
	w := NewWideWriter(UTF8Sink(&buf, codec), WithCodec(codec))

	w.Print("红色文本 😀").Endl()
	assert.Equal(t, "红色文本 😀\n", buf.String())
}

func TestWideWriter_Endl_FlushesThroughSink(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := NewWideWriter(UTF8Sink(bw, gbk()), WithCodec(gbk()))

	w.Print("默认文本")
	assert.Zero(t, buf.Len())
	w.Endl()
	assert.Equal(t, "默认文本\n", buf.String())
}

func TestWideWriter_ConversionFailure(t *testing.T) {
	sink := &unitSink{}
	w := NewWideWriter(sink, WithCodec(codepage.New(codepage.CP936, brokenConverter{})))

	w.Print("x")
	assert.Empty(t, sink.units)
	assert.Equal(t, 1, w.Failures())
	assert.NoError(t, w.Err())
}
