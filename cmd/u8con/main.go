// u8con moves text between UTF-8 and the console's legacy code page.
//
// Usage:
//
//	u8con encode < notes.txt > notes.cp936      # UTF-8 in, active code page out
//	u8con decode --code-page 936 < notes.cp936  # legacy or UTF-16 in, UTF-8 out
//	u8con escape 你好                           # \u escapes for ASCII-only sinks
//	u8con info                                  # code pages and terminal state
//	u8con demo                                  # adapters, colors and wide output
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the exit code, so tests can drive it
// without os.Exit.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "u8con: %v\n", err)
		return 1
	}
	return 0
}
