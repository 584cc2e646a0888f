package directory

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadExcel reads a workbook whose header row has "Fund Name" and "URL" columns.
func LoadExcel(path, sheet string) (*Directory, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return fromRows(rows)
}

// fromRows interprets rows[0] as the header.
func fromRows(rows [][]string) (*Directory, error) {
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	nameCol, urlCol := -1, -1
	for i, h := range rows[0] {
		switch strings.TrimSpace(h) {
		case ColumnFundName:
			nameCol = i
		case ColumnURL:
			urlCol = i
		}
	}
	if nameCol < 0 || urlCol < 0 {
		return nil, ErrMissingColumns
	}

	d := New(nil)
	for _, row := range rows[1:] {
		// GetRows trims trailing empty cells, so short rows are common.
		if nameCol >= len(row) || urlCol >= len(row) {
			continue
		}
		d.add(row[nameCol], row[urlCol])
	}
	return d, nil
}
