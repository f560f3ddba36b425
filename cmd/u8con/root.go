package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dkoosis/u8con/internal/config"
	"github.com/dkoosis/u8con/internal/logging"
	"github.com/dkoosis/u8con/internal/version"
)

// cli is the state shared by every command of one invocation.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flags config.CliFlags
	cfg   *config.ResolvedConfig
	log   zerolog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "u8con",
		Short: "UTF-8 text on legacy code page consoles",
		Long: `u8con converts text between UTF-8 and the console's active code page,
prints \u escapes for sinks that cannot take multi-byte text, and shows
the console configuration it would change.`,
		Version:           version.Version,
		PersistentPreRunE: c.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.ConfigFile, "config", "", "config file (default .u8con.yaml or $XDG_CONFIG_HOME/u8con/config.yaml)")
	pf.BoolVar(&c.flags.NoColor, "no-color", false, "disable color escape sequences")
	pf.BoolVar(&c.flags.Debug, "debug", false, "enable debug logging")
	pf.Uint32Var(&c.flags.CodePage, "code-page", 0, "legacy code page to convert to and from (default: system)")
	pf.BoolVar(&c.flags.NoGuard, "no-guard", false, "do not switch the console to UTF-8 around wide output")
	pf.CountVarP(&c.flags.Verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	root.AddCommand(
		c.newEncodeCmd(),
		c.newDecodeCmd(),
		c.newEscapeCmd(),
		c.newInfoCmd(),
		c.newDemoCmd(),
		c.newVersionCmd(),
	)
	return root
}

// setup resolves configuration and installs the logger before any command
// runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	fs := cmd.Flags()
	c.flags.NoColorSet = fs.Changed("no-color")
	c.flags.DebugSet = fs.Changed("debug")
	c.flags.CodePageSet = fs.Changed("code-page")
	c.flags.NoGuardSet = fs.Changed("no-guard")
	c.flags.VerbositySet = fs.Changed("verbose")

	cfg, err := config.ResolveConfig(c.flags)
	if err != nil {
		return err
	}
	c.cfg = cfg

	noColor := cfg.NoColor
	if f, ok := c.stderr.(*os.File); !ok || !isTerminal(f) {
		noColor = true
	}
	logging.Setup(cfg.Verbosity, c.stderr, noColor)
	c.log = logging.For("cli")
	c.log.Debug().Str("command", cmd.Name()).Str("config", cfg.Path).Msg("command started")
	return nil
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(c.stdout, version.String()+"\n")
			return err
		},
	}
}
