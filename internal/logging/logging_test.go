package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFor_IsSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := *base.Load()
	t.Cleanup(func() { Set(prev) })

	Set(zerolog.Nop())
	l := For("test")
	l.Error().Msg("nothing")
	assert.Zero(t, buf.Len())
}

func TestFor_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := *base.Load()
	t.Cleanup(func() { Set(prev) })

	Set(zerolog.New(&buf))
	l := For("codec")
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"codec"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestSetup_VerbosityLevels(t *testing.T) {
	prev := *base.Load()
	t.Cleanup(func() { Set(prev) })

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{5, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := Setup(tt.verbosity, &buf, true)
		assert.Equal(t, tt.want, l.GetLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestSetup_WritesPlainConsoleLines(t *testing.T) {
	prev := *base.Load()
	t.Cleanup(func() { Set(prev) })

	var buf bytes.Buffer
	Setup(1, &buf, true)
	l := For("guard")
	l.Info().Msg("acquired")
	out := buf.String()
	assert.True(t, strings.Contains(out, "acquired"), out)
	assert.Contains(t, out, "component=guard")
}
