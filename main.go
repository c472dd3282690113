package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Jobo16/excel-csv-processor/internal/converter"
	"github.com/Jobo16/excel-csv-processor/internal/types"
	"github.com/Jobo16/excel-csv-processor/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	inputDir  string
	outputDir string
	marker    string
	plain     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excel-csv-processor",
		Short: "Convert question-bank Excel files to CSV",
		Long: `excel-csv-processor converts every Excel file in the input directory to CSV,
resolving merged cells, forward-filling the instructions column, and deriving
a combined question-info column.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE:    run,
	}

	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "input", "Directory containing .xlsx files")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "Directory for CSV output (created if absent)")
	rootCmd.Flags().StringVar(&marker, "marker", "", "Override the instructions column header substring")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Print a plain-text summary instead of the interactive view")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := converter.DefaultConfig()
	if marker != "" {
		cfg.InstructionsMarker = marker
	}

	if plain {
		return runPlain(cfg)
	}

	p := tea.NewProgram(ui.InitialModel(inputDir, outputDir, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

func runPlain(cfg converter.Config) error {
	fmt.Printf("Input:  %s\nOutput: %s\n\n", inputDir, outputDir)

	summary := converter.Run(inputDir, outputDir, cfg, nil)

	for _, r := range summary.Results {
		switch r.MergeStatus {
		case types.MergeSkipped:
			fmt.Printf("~ %s -> %s (merge skipped: missing required columns)\n",
				filepath.Base(r.InputFile), filepath.Base(r.OutputFile))
		default:
			fmt.Printf("+ %s -> %s (%d rows)\n",
				filepath.Base(r.InputFile), filepath.Base(r.OutputFile), r.Rows)
		}
	}
	for _, e := range summary.Errors {
		fmt.Printf("! %s\n", e)
	}

	fmt.Printf("\nProcessed %d/%d file(s): %s\n", summary.Succeeded, summary.Total, summary.Status())

	if summary.Total > 0 && summary.Succeeded == 0 {
		return fmt.Errorf("no files processed successfully")
	}
	return nil
}
