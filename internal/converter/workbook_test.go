package converter

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates an xlsx fixture from a cell map and merge ranges.
func writeWorkbook(t *testing.T, path string, cells map[string]string, merges [][2]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for axis, value := range cells {
		if err := f.SetCellValue(sheet, axis, value); err != nil {
			t.Fatalf("SetCellValue(%s): %v", axis, err)
		}
	}
	for _, m := range merges {
		if err := f.MergeCell(sheet, m[0], m[1]); err != nil {
			t.Fatalf("MergeCell(%s:%s): %v", m[0], m[1], err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs(%s): %v", path, err)
	}
}

func TestFlattenWorkbookNoMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	writeWorkbook(t, path, map[string]string{
		"A1": "题号", "B1": "题干",
		"A2": "1", "B2": "第一题",
		"B3": "第二题",
	}, nil)

	grid, err := FlattenWorkbook(path)
	if err != nil {
		t.Fatalf("FlattenWorkbook() error = %v", err)
	}

	want := [][]string{
		{"题号", "题干"},
		{"1", "第一题"},
		{"", "第二题"},
	}
	if !reflect.DeepEqual(grid, want) {
		t.Errorf("grid = %v; want %v", grid, want)
	}
}

func TestFlattenWorkbookResolvesMergedCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged.xlsx")
	writeWorkbook(t, path, map[string]string{
		"A1": "材料内容", "B1": "题干",
		"A2": "共享材料",
		"B2": "第一问", "B3": "第二问",
	}, [][2]string{{"A2", "A3"}})

	grid, err := FlattenWorkbook(path)
	if err != nil {
		t.Fatalf("FlattenWorkbook() error = %v", err)
	}

	want := [][]string{
		{"材料内容", "题干"},
		{"共享材料", "第一问"},
		{"共享材料", "第二问"},
	}
	if !reflect.DeepEqual(grid, want) {
		t.Errorf("grid = %v; want %v", grid, want)
	}
}

func TestFlattenWorkbookRectangularBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.xlsx")
	writeWorkbook(t, path, map[string]string{
		"A1": "块",
		"C3": "角",
	}, [][2]string{{"A1", "B2"}})

	grid, err := FlattenWorkbook(path)
	if err != nil {
		t.Fatalf("FlattenWorkbook() error = %v", err)
	}

	// Every cell of the 2x2 merged block carries the top-left value.
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if grid[row][col] != "块" {
				t.Errorf("grid[%d][%d] = %q; want %q", row, col, grid[row][col], "块")
			}
		}
	}
	if grid[2][2] != "角" {
		t.Errorf("grid[2][2] = %q; want %q", grid[2][2], "角")
	}
}

func TestFlattenWorkbookMissingFile(t *testing.T) {
	if _, err := FlattenWorkbook(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
