package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dkoosis/u8con/internal/detect"
	"github.com/dkoosis/u8con/pkg/codepage"
	"github.com/dkoosis/u8con/pkg/textio"
)

// sniffSize is how much input decode inspects to pick an encoding.
const sniffSize = 4096

var utf8Codec = codepage.New(codepage.UTF8, nil)

func (c *cli) newEncodeCmd() *cobra.Command {
	var escape bool
	cmd := &cobra.Command{
		Use:   "encode [FILE]",
		Short: "Convert UTF-8 to the legacy code page",
		Long: `Reads UTF-8 text from FILE or stdin and writes it in the legacy code page.
A leading byte order mark is dropped. With --escape, characters above U+00FF
are written as \u escapes instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.readInput(args)
			if err != nil {
				return err
			}
			if escape {
				return c.writeEscaped(data)
			}
			return c.encode(data)
		},
	}
	cmd.Flags().BoolVar(&escape, "escape", false, `write \u escapes instead of legacy bytes`)
	return cmd
}

func (c *cli) readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return codepage.LoadWithoutBOM(args[0])
	}
	data, err := io.ReadAll(c.stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return codepage.StripBOM(data), nil
}

func (c *cli) encode(data []byte) error {
	codec := c.cfg.Codec()
	out := textio.NewOutputAdapter(c.stdout, textio.WithCodec(codec))
	if _, err := out.Write(data); err != nil {
		return err
	}
	if out.Failures() > 0 {
		return fmt.Errorf("encoding to %s: %w", codec.CodePage(), codepage.ErrConversion)
	}
	c.log.Debug().Int("bytes", len(data)).Stringer("code_page", codec.CodePage()).Msg("encoded")
	return out.Flush()
}

func (c *cli) writeEscaped(data []byte) error {
	s, err := c.cfg.Codec().UTF8ToEscapedASCII(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.stdout, s)
	return err
}

func (c *cli) newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [TEXT...]",
		Short: `Print text with \u escapes for characters above U+00FF`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				data, err := c.readInput(nil)
				if err != nil {
					return err
				}
				return c.writeEscaped(data)
			}
			return c.writeEscaped([]byte(strings.Join(args, " ") + "\n"))
		},
	}
}

func (c *cli) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Convert legacy or UTF-16 text to UTF-8",
		Long: `Reads text from FILE or stdin and writes it as UTF-8 with LF line endings.
UTF-16 and UTF-8 input is recognized by its byte order mark; valid UTF-8
passes through; anything else is decoded from the legacy code page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := c.stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			return c.decode(r)
		},
	}
}

func (c *cli) decode(r io.Reader) error {
	br := bufio.NewReaderSize(r, sniffSize)
	peeked, _ := br.Peek(sniffSize)
	format := detect.Sniff(peeked)
	c.log.Debug().Stringer("format", format).Msg("input sniffed")

	var src io.Reader = br
	codec := c.cfg.Codec()
	switch format {
	case detect.UTF8BOM:
		if _, err := br.Discard(format.BOMLen()); err != nil {
			return err
		}
		codec = utf8Codec
	case detect.UTF16LE:
		src = transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
		codec = utf8Codec
	case detect.UTF16BE:
		src = transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
		codec = utf8Codec
	case detect.UTF8:
		codec = utf8Codec
	}

	in := textio.NewInputAdapter(src, textio.WithCodec(codec))
	out := bufio.NewWriter(c.stdout)
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s input: %w", format, err)
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Flush()
}
