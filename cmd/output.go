package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"crdgen/internal/formatting"
)

// newFormatter builds the result formatter for a command from its --format
// and --quiet flags. Color is used only when writing to a terminal.
func newFormatter(cmd *cobra.Command, format string, quiet bool) (formatting.Formatter, error) {
	f, err := formatting.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	return formatting.New(formatting.Options{
		Format: f,
		Writer: out,
		Quiet:  quiet,
		Color:  !rootNoColor && out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())),
	}), nil
}
