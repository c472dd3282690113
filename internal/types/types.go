package types

// FileResult describes the outcome of processing one input workbook.
type FileResult struct {
	InputFile   string
	OutputFile  string
	Rows        int
	MergeStatus MergeStatus
}

// MergeStatus records whether the question-info column was derived.
type MergeStatus int

const (
	MergeDone    MergeStatus = iota // full pipeline, "_processed" output
	MergeSkipped                    // required columns missing, flattened CSV kept
)

// RunSummary aggregates one batch run over the input directory.
type RunSummary struct {
	Succeeded int
	Total     int
	Results   []*FileResult
	Errors    []string
}

// Status classifies the run for operator-facing output.
func (s *RunSummary) Status() string {
	switch {
	case s.Total == 0:
		return "no input files found"
	case s.Succeeded == s.Total:
		return "all files processed successfully"
	case s.Succeeded > 0:
		return "some files processed successfully, check errors"
	default:
		return "no files processed successfully, check input and errors"
	}
}
