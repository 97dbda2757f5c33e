package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"c0nst/internal/diag"
	"c0nst/internal/diagfmt"
	"c0nst/internal/observ"
	"c0nst/internal/source"
)

// printDiagnostics writes bag to stderr in the --diag-format format.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	flags := cmd.Root().PersistentFlags()
	formatName, err := flags.GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	out := cmd.ErrOrStderr()

	switch formatName {
	case "pretty":
		useColor, err := colorEnabled(cmd, os.Stderr)
		if err != nil {
			return err
		}
		return diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor,
			Context:   1,
			ShowNotes: true,
		})
	case "short":
		_, err := fmt.Fprintln(out, diag.FormatShort(bag.Items(), fs, true))
		return err
	case "json":
		return diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	default:
		return fmt.Errorf("unknown diagnostics format %q (want pretty|short|json)", formatName)
	}
}

// printTimings writes the --timings summary.
func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}
