package converter

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// mergedRange is one merged block with the value stored at its top-left cell.
type mergedRange struct {
	minRow, minCol int
	maxRow, maxCol int
	value          string
}

func (r mergedRange) contains(row, col int) bool {
	return row >= r.minRow && row <= r.maxRow && col >= r.minCol && col <= r.maxCol
}

// FlattenWorkbook reads the first sheet of an xlsx file and returns it as a
// rectangular grid of strings. Cells inside a merged range take the value of
// the range's top-left cell; empty cells become empty strings. Cached values
// are read, so formula cells yield their last evaluated result.
func FlattenWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	ranges, err := mergedRanges(f, sheetName)
	if err != nil {
		return nil, err
	}

	maxRow := len(rows)
	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	for _, mr := range ranges {
		if mr.maxRow > maxRow {
			maxRow = mr.maxRow
		}
		if mr.maxCol > maxCol {
			maxCol = mr.maxCol
		}
	}

	grid := make([][]string, 0, maxRow)
	for row := 1; row <= maxRow; row++ {
		rowData := make([]string, 0, maxCol)
		for col := 1; col <= maxCol; col++ {
			rowData = append(rowData, resolveCell(rows, ranges, row, col))
		}
		grid = append(grid, rowData)
	}

	return grid, nil
}

// resolveCell returns the effective value of a 1-indexed cell, consulting the
// merged ranges first.
func resolveCell(rows [][]string, ranges []mergedRange, row, col int) string {
	for _, mr := range ranges {
		if mr.contains(row, col) {
			return mr.value
		}
	}
	if row-1 < len(rows) && col-1 < len(rows[row-1]) {
		return rows[row-1][col-1]
	}
	return ""
}

func mergedRanges(f *excelize.File, sheetName string) ([]mergedRange, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	ranges := make([]mergedRange, 0, len(cells))
	for _, mc := range cells {
		minCol, minRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, fmt.Errorf("merged range %q: %w", mc.GetStartAxis(), err)
		}
		maxCol, maxRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merged range %q: %w", mc.GetEndAxis(), err)
		}
		ranges = append(ranges, mergedRange{
			minRow: minRow,
			minCol: minCol,
			maxRow: maxRow,
			maxCol: maxCol,
			value:  mc.GetCellValue(),
		})
	}

	return ranges, nil
}
