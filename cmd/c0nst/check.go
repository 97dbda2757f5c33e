package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"c0nst/internal/diag"
	"c0nst/internal/driver"
	"c0nst/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Verify that files expand cleanly for both targets",
	Long: `Check expands every file for stable and nightly, verifies that the stable
output is a fixed point of expansion and that the printed output lexes back
to the same tokens. Nothing is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	addRewriteFlags(checkCmd)
	checkCmd.Flags().String("engine", "", "rewrite engine (structural|token); default from c0nst.toml")
}

func runCheck(cmd *cobra.Command, args []string) error {
	engineName, _ := cmd.Flags().GetString("engine")
	opts, err := rewriteOptions(cmd, engineName)
	if err != nil {
		return err
	}
	files, err := driver.ListSources(args)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	bag := diag.NewBag(opts.MaxDiagnostics)
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range files {
		id, err := fs.Load(path)
		if err != nil {
			id = fs.AddVirtual(path, nil)
			bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: id}, "failed to load file: "+err.Error()))
			failed++
			continue
		}
		res, err := driver.CheckFile(cmd.Context(), fs, id, opts)
		if err != nil {
			return err
		}
		for _, d := range res.Bag.Items() {
			bag.Add(d)
		}
		status := "ok"
		switch {
		case !res.OK():
			status = "FAIL"
			failed++
		case !res.Changed:
			status = "ok (no markers)"
		}
		if !quiet(cmd) || !res.OK() {
			fmt.Fprintf(out, "%-4s %s\n", status, res.Path)
		}
	}

	bag.Sort()
	if err := printDiagnostics(cmd, bag, fs); err != nil {
		return err
	}
	printTimings(cmd.ErrOrStderr(), opts.Timer)
	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d file(s) failed\n", failed, len(files))
		return errFailed
	}
	return nil
}
