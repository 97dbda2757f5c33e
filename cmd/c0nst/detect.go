package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"c0nst/internal/diag"
	"c0nst/internal/driver"
	"c0nst/internal/source"
)

var detectCmd = &cobra.Command{
	Use:   "detect [flags] <path> [path...]",
	Short: "Report which const-trait syntax files are written in",
	Long: `Detect scores the const syntax of each file: portable (c0nst markers),
modern (native nightly const traits) or legacy (plain stable Rust).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	detectCmd.Flags().Bool("hints", false, "list the individual signals")
}

type detectHintJSON struct {
	Form   string `json:"form"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
}

type detectJSON struct {
	Path       string           `json:"path"`
	Form       string           `json:"form"`
	Confidence float64          `json:"confidence"`
	RunnerUp   string           `json:"runner_up,omitempty"`
	Signals    int              `json:"signals"`
	Hints      []detectHintJSON `json:"hints,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	if formatName != "pretty" && formatName != "json" {
		return fmt.Errorf("unknown format: %s", formatName)
	}
	showHints, _ := cmd.Flags().GetBool("hints")
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	files, err := driver.ListSources(args)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)
	reports := make([]detectJSON, 0, len(files))
	for _, path := range files {
		id, err := fs.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		res, err := driver.DetectFile(cmd.Context(), fs, id, maxDiagnostics)
		if err != nil {
			return err
		}
		for _, d := range res.Bag.Items() {
			bag.Add(d)
		}

		cls := res.Classification
		report := detectJSON{
			Path:       res.Path,
			Form:       cls.Form.String(),
			Confidence: cls.Confidence,
			Signals:    cls.ObservedSignals,
		}
		if cls.RunnerUpScore > 0 {
			report.RunnerUp = cls.RunnerUp.String()
		}
		if showHints || formatName == "json" {
			for _, h := range res.Hints {
				start, _ := fs.Resolve(h.Span)
				report.Hints = append(report.Hints, detectHintJSON{
					Form: h.Form.String(), Score: h.Score, Reason: h.Reason,
					Line: start.Line, Col: start.Col,
				})
			}
		}
		reports = append(reports, report)
	}

	if err := printDiagnostics(cmd, bag, fs); err != nil {
		return err
	}
	if formatName == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	renderDetectPretty(cmd.OutOrStdout(), reports)
	return nil
}

func renderDetectPretty(out io.Writer, reports []detectJSON) {
	for _, r := range reports {
		fmt.Fprintf(out, "%s: %s (confidence %.2f, %d signals", r.Path, r.Form, r.Confidence, r.Signals)
		if r.RunnerUp != "" {
			fmt.Fprintf(out, ", runner-up %s", r.RunnerUp)
		}
		fmt.Fprintln(out, ")")
		for _, h := range r.Hints {
			fmt.Fprintf(out, "  %d:%d %-8s +%d %s\n", h.Line, h.Col, h.Form, h.Score, h.Reason)
		}
	}
}
