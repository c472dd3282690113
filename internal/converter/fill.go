package converter

import "strings"

// FillInstructions forward-fills blank cells in the instructions column and
// truncates the grid to the extent of the remaining columns. The column is
// located by the first header containing marker; if no header matches, the
// grid is returned unchanged. Row 0 is the header and is never filled.
func FillInstructions(grid [][]string, marker string) [][]string {
	if len(grid) < 2 {
		return grid
	}

	headerRow := grid[0]
	colIdx := -1
	for i, header := range headerRow {
		if marker != "" && strings.Contains(header, marker) {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return grid
	}

	// Largest 1-indexed row count where some column other than the
	// instructions column holds non-blank content.
	maxRowsOtherCols := 0
	for rIdx, row := range grid {
		for cIdx, cell := range row {
			if cIdx != colIdx && strings.TrimSpace(cell) != "" {
				if rIdx+1 > maxRowsOtherCols {
					maxRowsOtherCols = rIdx + 1
				}
			}
		}
	}

	// All other columns empty: leave the row extent alone rather than
	// collapsing the grid to nothing.
	if maxRowsOtherCols == 0 {
		maxRowsOtherCols = len(grid)
	}

	lastInstruction := ""
	for rowIdx := 1; rowIdx < maxRowsOtherCols && rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		for len(row) <= colIdx {
			row = append(row, "")
		}

		if strings.TrimSpace(row[colIdx]) != "" {
			lastInstruction = row[colIdx]
		} else if lastInstruction != "" {
			row[colIdx] = lastInstruction
		}
		grid[rowIdx] = row
	}

	// Drop rows past the data extent and trailing cells past the header width.
	if maxRowsOtherCols < len(grid) {
		grid = grid[:maxRowsOtherCols]
	}
	for i, row := range grid {
		if len(row) > len(headerRow) {
			grid[i] = row[:len(headerRow)]
		}
	}

	return grid
}
