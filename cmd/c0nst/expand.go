package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"c0nst/internal/driver"
	"c0nst/internal/source"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <path|-> [path...]",
	Short: "Expand #[c0nst] and #[adapt] declarations for one target",
	Long: `Expand applies the attribute macros to every top-level declaration that
carries #[c0nst] or #[adapt] and prints the result. Directories are walked
for *.rs files; "-" reads standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRewrite(cmd, args, "")
	},
}

func init() {
	addRewriteFlags(expandCmd)
	expandCmd.Flags().String("engine", "", "rewrite engine (structural|token); default from c0nst.toml")
	expandCmd.Flags().BoolP("write", "w", false, "rewrite changed files in place instead of printing")
}

func runRewrite(cmd *cobra.Command, args []string, engineName string) error {
	if engineName == "" {
		engineName, _ = cmd.Flags().GetString("engine")
	}
	opts, err := rewriteOptions(cmd, engineName)
	if err != nil {
		return err
	}
	write, _ := cmd.Flags().GetBool("write")
	jobs, _ := cmd.Flags().GetInt("jobs")

	var (
		fileSet *source.FileSet
		results []*driver.Result
	)
	if len(args) == 1 && args[0] == "-" {
		if write {
			return fmt.Errorf("--write cannot be used with standard input")
		}
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		fs, res, err := driver.ProcessSource(cmd.Context(), "<stdin>", content, opts)
		if err != nil {
			return err
		}
		fileSet, results = fs, []*driver.Result{res}
	} else {
		fileSet, results, err = driver.ProcessPaths(cmd.Context(), args, opts, jobs)
		if err != nil {
			return err
		}
	}

	bag := driver.MergeBags(results, opts.MaxDiagnostics)
	if err := printDiagnostics(cmd, bag, fileSet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rewritten := 0
	for _, res := range results {
		if res.HasErrors() {
			continue
		}
		if write {
			if !res.Changed {
				continue
			}
			if err := writeInPlace(res.Path, res.Output); err != nil {
				return err
			}
			rewritten++
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "// ==> %s <==\n", res.Path)
		}
		if _, err := out.Write(res.Output); err != nil {
			return err
		}
	}

	if write && !quiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "rewrote %d of %d file(s) for %s\n", rewritten, len(results), toolchainName(opts.Target))
	}
	printTimings(cmd.ErrOrStderr(), opts.Timer)

	if bag.HasErrors() {
		return errFailed
	}
	return nil
}

// writeInPlace keeps the file mode of path.
func writeInPlace(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
