package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Jobo16/excel-csv-processor/internal/types"
)

// ProcessFile runs the full pipeline for one workbook: flatten the first
// sheet, forward-fill the instructions column, then derive the question-info
// column. On success the output is "<stem>_processed.csv"; when the required
// columns are missing the flattened CSV is kept as "<stem>.csv" instead. The
// intermediate temp file never survives the call.
func ProcessFile(path, outputDir string, cfg Config) (*types.FileResult, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tempPath := filepath.Join(outputDir, "temp_"+stem+".csv")

	grid, err := FlattenWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("convert to CSV: %w", err)
	}
	grid = FillInstructions(grid, cfg.InstructionsMarker)

	if err := WriteGrid(tempPath, grid); err != nil {
		return nil, fmt.Errorf("write temp CSV: %w", err)
	}
	defer os.Remove(tempPath)

	table, err := ReadTable(tempPath)
	if err != nil {
		return nil, fmt.Errorf("read temp CSV: %w", err)
	}

	if err := MergeQuestionInfo(table, cfg); err != nil {
		if errors.Is(err, ErrMissingColumns) {
			// Designed fallback: promote the flattened CSV unmerged.
			finalPath := filepath.Join(outputDir, stem+".csv")
			if err := os.Rename(tempPath, finalPath); err != nil {
				return nil, fmt.Errorf("keep flattened CSV: %w", err)
			}
			return &types.FileResult{
				InputFile:   path,
				OutputFile:  finalPath,
				Rows:        len(table.Rows),
				MergeStatus: types.MergeSkipped,
			}, nil
		}
		return nil, fmt.Errorf("merge columns: %w", err)
	}

	finalPath := filepath.Join(outputDir, stem+"_processed.csv")
	if err := table.Write(finalPath); err != nil {
		return nil, fmt.Errorf("write processed CSV: %w", err)
	}

	return &types.FileResult{
		InputFile:   path,
		OutputFile:  finalPath,
		Rows:        len(table.Rows),
		MergeStatus: types.MergeDone,
	}, nil
}

// Run processes every xlsx file in inputDir sequentially, writing results to
// outputDir (created if absent). Per-file failures are recorded and the run
// continues; only a missing input directory or an empty one aborts early.
// Progress, when non-nil, receives a completion fraction after each file and
// is closed when the run ends.
func Run(inputDir, outputDir string, cfg Config, progress chan<- float64) *types.RunSummary {
	if progress != nil {
		defer close(progress)
	}

	summary := &types.RunSummary{}

	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		summary.Errors = append(summary.Errors, fmt.Sprintf("input directory does not exist: %s", inputDir))
		return summary
	}

	files, err := filepath.Glob(filepath.Join(inputDir, "*.xlsx"))
	if err == nil {
		// Skip Excel owner files left behind by open workbooks.
		kept := files[:0]
		for _, f := range files {
			if !strings.HasPrefix(filepath.Base(f), "~$") {
				kept = append(kept, f)
			}
		}
		files = kept
	}
	if len(files) == 0 {
		summary.Errors = append(summary.Errors, fmt.Sprintf("no Excel files found in %s", inputDir))
		return summary
	}
	sort.Strings(files)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("create output directory: %v", err))
		return summary
	}

	summary.Total = len(files)
	for i, file := range files {
		result, err := ProcessFile(file, outputDir, cfg)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", filepath.Base(file), err))
		} else {
			summary.Succeeded++
			summary.Results = append(summary.Results, result)
		}

		if progress != nil {
			select {
			case progress <- float64(i+1) / float64(len(files)):
			default:
			}
		}
	}

	return summary
}
