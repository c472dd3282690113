package converter

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table is an ordered record set parsed from a delimited file: a header row
// plus data rows of string cells. A row shorter than the header is tolerated;
// its missing fields read as absent.
type Table struct {
	Headers []string
	Rows    [][]string
}

// HasColumn reports whether a header with the given name exists.
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) != -1
}

// Field returns the value of the named column in the given data row. The
// second return is false when the column does not exist or the row is too
// short to hold it, which callers treat the same as a blank cell.
func (t *Table) Field(row int, name string) (string, bool) {
	idx := t.columnIndex(name)
	if idx == -1 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][idx], true
}

func (t *Table) columnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// AppendColumn adds one trailing column with the given header, padding short
// rows so the result stays rectangular. values must hold one entry per row.
func (t *Table) AppendColumn(header string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values for %d rows", header, len(values), len(t.Rows))
	}
	width := len(t.Headers)
	t.Headers = append(t.Headers, header)
	for i, row := range t.Rows {
		for len(row) < width {
			row = append(row, "")
		}
		t.Rows[i] = append(row, values[i])
	}
	return nil
}

// ReadTable parses a CSV file written by WriteGrid, stripping the UTF-8 BOM.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// Write serializes the table back to a BOM-prefixed CSV file.
func (t *Table) Write(path string) error {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Headers)
	records = append(records, t.Rows...)
	return WriteGrid(path, records)
}

// WriteGrid writes a grid as a CSV file with a UTF-8 byte-order marker, for
// compatibility with spreadsheet applications that sniff the encoding. The
// file is flushed and closed before return so a subsequent rename never
// promotes a partial write.
func WriteGrid(path string, grid [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	writer := csv.NewWriter(bw)
	if err := writer.WriteAll(grid); err != nil {
		f.Close()
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return err
	}
	if err := bw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
