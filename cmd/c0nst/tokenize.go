package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"c0nst/internal/diagfmt"
	"c0nst/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rs",
	Short: "Tokenize a Rust source file",
	Long:  `Tokenize breaks down a source file into the tokens and token trees the rewriters see`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("trees", false, "print token trees instead of flat tokens")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	trees, err := cmd.Flags().GetBool("trees")
	if err != nil {
		return fmt.Errorf("failed to get trees flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case formatName == "pretty" && trees:
		return diagfmt.FormatTreesPretty(out, result.Trees, result.FileSet)
	case formatName == "pretty":
		return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	case formatName == "json" && trees:
		return diagfmt.FormatTreesJSON(out, result.Trees)
	case formatName == "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", formatName)
	}
}
