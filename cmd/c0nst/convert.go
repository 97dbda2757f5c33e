package main

import (
	"github.com/spf13/cobra"

	"c0nst/internal/engine"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <path|-> [path...]",
	Short: "Rewrite c0nst block markers with the token substitution table",
	Long: `Convert runs the token engine over whole files: every c0nst and [c0nst]
marker becomes const and [const] for nightly, or disappears for stable.
No declaration is parsed and no legality check applies.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRewrite(cmd, args, engine.NameToken)
	},
}

func init() {
	addRewriteFlags(convertCmd)
	convertCmd.Flags().BoolP("write", "w", false, "rewrite changed files in place instead of printing")
}
