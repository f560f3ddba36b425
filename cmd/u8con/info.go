package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dkoosis/u8con/internal/version"
	"github.com/dkoosis/u8con/pkg/codepage"
	"github.com/dkoosis/u8con/pkg/guard"
)

type row struct {
	label string
	value string
}

func (c *cli) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show code pages, terminal state and the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.info()
		},
	}
}

func (c *cli) info() error {
	th := c.theme()
	var b strings.Builder

	section := func(title string, rows []row) {
		width := 0
		for _, r := range rows {
			width = max(width, runewidth.StringWidth(r.label))
		}
		b.WriteString(th.Heading.Render(title))
		b.WriteByte('\n')
		for _, r := range rows {
			b.WriteString("  ")
			b.WriteString(th.Label.Render(runewidth.FillRight(r.label, width)))
			b.WriteString("  ")
			b.WriteString(th.Value.Render(r.value))
			b.WriteByte('\n')
		}
	}

	section("Code pages", c.codePageRows())
	b.WriteByte('\n')
	section("Terminal", c.terminalRows(th))
	b.WriteByte('\n')
	section("Configuration", c.configRows())
	b.WriteByte('\n')
	section("Supported", supportedRows())

	_, err := io.WriteString(c.stdout, b.String())
	return err
}

func (c *cli) codePageRows() []row {
	rows := []row{
		{"system", codepage.Default().CodePage().String()},
		{"in use", fmt.Sprintf("%s (%s)", c.cfg.Codec().CodePage(), c.cfg.CodePageSource)},
	}
	state, err := guard.SystemConsole().State()
	switch {
	case err != nil:
		rows = append(rows, row{"console", "unavailable: " + err.Error()})
	case state.InputCP != 0 || state.OutputCP != 0:
		rows = append(rows,
			row{"console input", state.InputCP.String()},
			row{"console output", state.OutputCP.String()},
		)
	}
	return rows
}

func (c *cli) terminalRows(th Theme) []row {
	yesNo := func(ok bool) string {
		if ok {
			return th.Good.Render("yes")
		}
		return th.Muted.Render("no")
	}
	stream := func(w any) string {
		f, ok := w.(*os.File)
		return yesNo(ok && isTerminal(f))
	}
	return []row{
		{"stdin", stream(c.stdin)},
		{"stdout", stream(c.stdout)},
		{"stderr", stream(c.stderr)},
	}
}

func (c *cli) configRows() []row {
	path := c.cfg.Path
	if path == "" {
		path = "(none)"
	}
	names := make([]string, 0, len(c.cfg.Palette))
	for name := range c.cfg.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return []row{
		{"file", path},
		{"no color", fmt.Sprintf("%t (%s)", c.cfg.NoColor, c.cfg.NoColorSource)},
		{"guard", fmt.Sprintf("%t", c.cfg.Guard)},
		{"verbosity", fmt.Sprintf("%d", c.cfg.Verbosity)},
		{"palette", strings.Join(names, ", ")},
		{"version", version.Version},
	}
}

func supportedRows() []row {
	cps := codepage.Supported()
	names := make([]string, len(cps))
	for i, cp := range cps {
		names[i] = cp.String()
	}
	return []row{{"code pages", strings.Join(names, " ")}}
}

func isTerminal(f *os.File) bool {
	return guard.IsTerminal(f.Fd())
}
