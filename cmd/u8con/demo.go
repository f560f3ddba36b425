package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/u8con/internal/config"
	"github.com/dkoosis/u8con/pkg/guard"
	"github.com/dkoosis/u8con/pkg/manip"
	"github.com/dkoosis/u8con/pkg/textio"
)

// sample is a user type printed through its String method.
type sample struct {
	text string
}

func (s sample) String() string { return s.text }

func (c *cli) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through adapters, colored output and wide output",
		Long: `demo writes a fixed sequence of lines through the code page adapter, echoes
one line and one number read from stdin, prints colored text to plain and
adapted sinks, and finally writes UTF-16 output with the console switched
to UTF-8. Input is optional; the echo part is skipped at end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.demo()
		},
	}
}

func (c *cli) demo() error {
	codec := c.cfg.Codec()
	out := textio.NewOutputAdapter(c.stdout, textio.WithCodec(codec))
	in := textio.NewInputAdapter(c.stdin, textio.WithCodec(codec))
	direct := asStringWriter(c.stdout)
	policy := manip.Policy{NoColor: c.cfg.NoColor}
	color := func(name string) manip.Color { return paletteColor(c.cfg.Palette, name) }

	greeting := "你好！"
	out.Print(greeting, "\n").Print("世界", "\n").Print("Hello, World!", "\n").Print(123).Endl()
	// unconverted, for comparison
	direct.WriteString(greeting + "\n")
	out.Print(sample{"测试重载"}).Endl()

	c.echo(in, out, direct)

	if legacy, err := codec.UTF8ToLegacy([]byte("测试")); err == nil {
		direct.WriteString(string(legacy) + "\n")
	}

	policy.Begin(direct).Print("Hello").Put(manip.ResetThen(manip.Endl))
	policy.Begin(out).Print("你好").Put(manip.ResetThen(manip.Endl))
	policy.Begin(direct).Color(color("green")).Print("Hello").Put(manip.ResetThen(manip.Endl))
	policy.Begin(out).Color(color("gold")).Print("你好").Put(manip.ResetThen(manip.Endl))
	policy.Begin(direct).Color(color("green")).Print("Hello").Put(manip.Reset).Print(" World").Put(manip.ResetThen(manip.Endl))
	policy.Begin(direct).Color(color("gold")).Print("Hello").Color(color("green")).Print(" World").Put(manip.ResetThen(manip.Endl))
	policy.Begin(out).Color(color("gold")).Print("你好").Color(color("green")).Print(" 世界").Put(manip.ResetThen(manip.Endl))

	if err := out.Err(); err != nil {
		return err
	}
	if !c.cfg.Guard {
		return c.wideDemo(policy, color)
	}
	return guard.Scope(func() error { return c.wideDemo(policy, color) })
}

// echo reads a line and a number and writes them back, both through the
// adapter and directly.
func (c *cli) echo(in *textio.InputAdapter, out *textio.OutputAdapter, direct io.StringWriter) {
	line, err := in.ReadLine()
	if err != nil {
		c.log.Debug().Err(err).Msg("no input to echo")
		return
	}
	out.Print(line).Endl()

	var n int
	if _, err := in.Scan(&n); err != nil {
		c.log.Debug().Err(err).Msg("no number to echo")
		return
	}
	direct.WriteString(fmt.Sprintln(n))
	out.Print(n).Endl()
}

func (c *cli) wideDemo(policy manip.Policy, color func(string) manip.Color) error {
	w := c.wideWriter()
	policy.Begin(w).Color(color("red")).Print("红色文本").Put(manip.Reset, manip.Endl)
	policy.Begin(w).Print("默认文本").Put(manip.ResetThen(manip.Endl))
	w.Print("测试").Endl()
	return w.Err()
}

func (c *cli) wideWriter() *textio.WideWriter {
	if f, ok := c.stdout.(*os.File); ok {
		return textio.NewWideWriter(textio.ConsoleSink(f))
	}
	return textio.NewWideWriter(textio.UTF8Sink(c.stdout, utf8Codec), textio.WithCodec(utf8Codec))
}

func paletteColor(p map[string]config.RGB, name string) manip.Color {
	rgb, ok := p[name]
	if !ok {
		rgb = config.DefaultPalette()[name]
	}
	return manip.RGB(rgb[0], rgb[1], rgb[2])
}

type stringWriter struct {
	io.Writer
}

func (w stringWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func asStringWriter(w io.Writer) io.StringWriter {
	if sw, ok := w.(io.StringWriter); ok {
		return sw
	}
	return stringWriter{w}
}
